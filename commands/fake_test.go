package commands

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

const SPREADSHEET = "1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms"

// fake is a minimal in-process stand-in for the Sheets v4 and Drive v3 endpoints.
type fake struct {
	sync.Mutex
	spreadsheet sheets.Spreadsheet
	values      map[string][][]any
	revisions   []drive.RevisionList

	gets    []string
	updates []update
	batches []sheets.BatchUpdateSpreadsheetRequest
	pages   []string
}

type update struct {
	area   string
	option string
	values [][]any
}

func newFake(titles ...string) *fake {
	f := fake{
		spreadsheet: sheets.Spreadsheet{
			SpreadsheetId: SPREADSHEET,
			Sheets:        []*sheets.Sheet{},
		},
		values: map[string][][]any{},
	}

	for i, title := range titles {
		f.spreadsheet.Sheets = append(f.spreadsheet.Sheets, &sheets.Sheet{
			Properties: &sheets.SheetProperties{
				SheetId: int64(i * 1000),
				Index:   int64(i),
				Title:   title,
			},
		})
	}

	return &f
}

func (f *fake) client(t *testing.T) *sheets.Service {
	t.Helper()

	srv := httptest.NewServer(f)
	t.Cleanup(srv.Close)

	google, err := sheets.NewService(context.Background(), option.WithEndpoint(srv.URL+"/"), option.WithHTTPClient(srv.Client()))
	if err != nil {
		t.Fatalf("Error creating Sheets client (%v)", err)
	}

	return google
}

func (f *fake) gdrive(t *testing.T) *drive.Service {
	t.Helper()

	srv := httptest.NewServer(f)
	t.Cleanup(srv.Close)

	gdrive, err := drive.NewService(context.Background(), option.WithEndpoint(srv.URL+"/"), option.WithHTTPClient(srv.Client()))
	if err != nil {
		t.Fatalf("Error creating Drive client (%v)", err)
	}

	return gdrive
}

func (f *fake) ServeHTTP(w http.ResponseWriter, rq *http.Request) {
	f.Lock()
	defer f.Unlock()

	spreadsheet := "/v4/spreadsheets/" + SPREADSHEET
	values := spreadsheet + "/values/"
	revisions := "/files/" + SPREADSHEET + "/revisions"
	path := rq.URL.Path

	switch {
	case rq.Method == http.MethodGet && path == spreadsheet:
		reply(w, f.spreadsheet)

	case rq.Method == http.MethodPost && path == spreadsheet+":batchUpdate":
		var batch sheets.BatchUpdateSpreadsheetRequest
		if err := json.NewDecoder(rq.Body).Decode(&batch); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		f.batches = append(f.batches, batch)
		for _, r := range batch.Requests {
			if r.UpdateSheetProperties != nil {
				for _, sheet := range f.spreadsheet.Sheets {
					if sheet.Properties.SheetId == r.UpdateSheetProperties.Properties.SheetId {
						sheet.Properties.Title = r.UpdateSheetProperties.Properties.Title
					}
				}
			}
		}

		reply(w, sheets.BatchUpdateSpreadsheetResponse{SpreadsheetId: SPREADSHEET})

	case rq.Method == http.MethodGet && strings.HasPrefix(path, values):
		area := strings.TrimPrefix(path, values)
		f.gets = append(f.gets, area)

		reply(w, sheets.ValueRange{Range: area, Values: f.values[area]})

	case rq.Method == http.MethodPut && strings.HasPrefix(path, values):
		var vr sheets.ValueRange
		if err := json.NewDecoder(rq.Body).Decode(&vr); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		area := strings.TrimPrefix(path, values)
		f.updates = append(f.updates, update{
			area:   area,
			option: rq.URL.Query().Get("valueInputOption"),
			values: vr.Values,
		})

		reply(w, sheets.UpdateValuesResponse{SpreadsheetId: SPREADSHEET, UpdatedRange: area, UpdatedCells: 1})

	case rq.Method == http.MethodGet && path == revisions:
		page := rq.URL.Query().Get("pageToken")
		f.pages = append(f.pages, page)

		for i, list := range f.revisions {
			if (i == 0 && page == "") || (i > 0 && f.revisions[i-1].NextPageToken == page) {
				reply(w, list)
				return
			}
		}

		http.NotFound(w, rq)

	default:
		http.NotFound(w, rq)
	}
}

func reply(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}
