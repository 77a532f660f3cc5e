// Copyright 2025 gsheet-writer. All rights reserved.
// Use of this source code is governed by an MIT-style license
// that can be found in the LICENSE file.

/*
Package gsheets demonstrates reading from and writing to a Google Sheets spreadsheet with a service account.

gsheet-writer is configured from the environment (or a .env file):

  - GSHEET_CREDENTIALS_JSON, the service account key (JSON)
  - GSHEET_SPREADSHEET_ID, the spreadsheet ID
  - LOG_LEVEL, one of DEBUG, INFO, WARNING, ERROR or CRITICAL (defaults to INFO)

gsheet-writer supports the following actions:

  - run_simple_read, to log the first row of the first worksheet
  - tweak_worksheet, to rename the first worksheet
  - run_simple_write, to write a value to cell B1 of the first worksheet
  - run_find, to find a value in the first worksheet
  - revision, to display the latest revision of the spreadsheet
  - version, to display the current version
*/
package gsheets
