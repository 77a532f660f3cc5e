package commands

import (
	"errors"
	"reflect"
	"testing"

	"google.golang.org/api/sheets/v4"
)

func TestArea(t *testing.T) {
	tests := []struct {
		title    string
		cells    string
		expected string
	}{
		{"Sheet1", "B1", "'Sheet1'!B1"},
		{"Sheet 1", "1:1", "'Sheet 1'!1:1"},
		{"Bob's", "A1:C3", "'Bob''s'!A1:C3"},
		{"Sheet1", "", "'Sheet1'"},
	}

	for _, test := range tests {
		if a1 := area(test.title, test.cells); a1 != test.expected {
			t.Errorf("Incorrect range - expected:%v, got:%v", test.expected, a1)
		}
	}
}

func TestGetWorksheet(t *testing.T) {
	f := newFake("Sheet1", "Sheet2")

	sheet, err := getWorksheet(&f.spreadsheet, 1)
	if err != nil {
		t.Fatalf("Unexpected error returned from getWorksheet (%v)", err)
	}

	if sheet.Properties.Title != "Sheet2" {
		t.Errorf("Incorrect worksheet - expected:%v, got:%v", "Sheet2", sheet.Properties.Title)
	}

	if _, err := getWorksheet(&f.spreadsheet, 2); err == nil {
		t.Errorf("Expected error for invalid worksheet index, got %v", err)
	}

	if _, err := getWorksheet(&sheets.Spreadsheet{}, 0); !errors.Is(err, ErrNoWorksheets) {
		t.Errorf("Expected %v, got %v", ErrNoWorksheets, err)
	}
}

func TestTitles(t *testing.T) {
	f := newFake("Sheet1", "Sheet2", "Log")

	if list := titles(&f.spreadsheet); !reflect.DeepEqual(list, []string{"Sheet1", "Sheet2", "Log"}) {
		t.Errorf("Incorrect titles - expected:%q, got:%q", []string{"Sheet1", "Sheet2", "Log"}, list)
	}
}
