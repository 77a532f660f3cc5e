package commands

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/api/sheets/v4"
)

func getSpreadsheet(ctx context.Context, google *sheets.Service, id string) (*sheets.Spreadsheet, error) {
	spreadsheet, err := google.Spreadsheets.Get(id).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch spreadsheet (%v)", err)
	}

	return spreadsheet, nil
}

// getWorksheet returns the worksheet at 'index' in tab order.
func getWorksheet(spreadsheet *sheets.Spreadsheet, index int) (*sheets.Sheet, error) {
	if len(spreadsheet.Sheets) == 0 {
		return nil, ErrNoWorksheets
	}

	if index < 0 || index >= len(spreadsheet.Sheets) {
		return nil, fmt.Errorf("invalid worksheet index %v (spreadsheet has %v worksheets)", index, len(spreadsheet.Sheets))
	}

	sheet := spreadsheet.Sheets[index]
	if sheet.Properties == nil {
		return nil, fmt.Errorf("worksheet %v has no properties", index)
	}

	return sheet, nil
}

func titles(spreadsheet *sheets.Spreadsheet) []string {
	list := []string{}
	for _, sheet := range spreadsheet.Sheets {
		if sheet.Properties != nil {
			list = append(list, sheet.Properties.Title)
		}
	}

	return list
}

// area returns the A1 notation for a range on the named worksheet e.g. 'Sheet 1'!B1.
// An empty range selects the whole worksheet.
func area(title, cells string) string {
	quoted := "'" + strings.ReplaceAll(title, "'", "''") + "'"
	if cells == "" {
		return quoted
	}

	return quoted + "!" + cells
}

func getRow(ctx context.Context, google *sheets.Service, spreadsheet string, title string, row int) ([]any, error) {
	rng := area(title, fmt.Sprintf("%[1]v:%[1]v", row))

	response, err := google.Spreadsheets.Values.Get(spreadsheet, rng).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("unable to retrieve row %v from worksheet '%v' (%v)", row, title, err)
	}

	if len(response.Values) == 0 {
		return []any{}, nil
	}

	return response.Values[0], nil
}
