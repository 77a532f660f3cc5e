package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"

	"google.golang.org/api/sheets/v4"
)

const DEFAULT_FIND = "secret-data-here"

var ErrNotFound = errors.New("not found")

var FindCmd = Find{
	command: command{
		credentials: "",
		spreadsheet: "",
		debug:       false,
	},

	value: DEFAULT_FIND,
}

// Find locates the first cell in the first worksheet that matches a value exactly.
type Find struct {
	command
	value string
}

// Cell is a worksheet cell with 1-based row and column.
type Cell struct {
	Row   int
	Col   int
	Value string
}

func (c Cell) String() string {
	return fmt.Sprintf("<Cell R%vC%v '%v'>", c.Row, c.Col, c.Value)
}

func (cmd *Find) Name() string {
	return "run_find"
}

func (cmd *Find) Description() string {
	return "Finds a value in the first worksheet of a Google Sheets spreadsheet"
}

func (cmd *Find) Usage() string {
	return "[--credentials <file>] [--spreadsheet <ID>] [--value <value>]"
}

func (cmd *Find) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] run_find [options]\n", APP)
	fmt.Println()
	fmt.Println("  Finds the first cell (by row, then column) in the first worksheet of a Google Sheets")
	fmt.Println("  spreadsheet with a value that matches exactly")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println("  Examples:")
	fmt.Printf("    %s run_find --spreadsheet 1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms --value %v\n", APP, DEFAULT_FIND)
	fmt.Println()
}

func (cmd *Find) FlagSet() *flag.FlagSet {
	flagset := cmd.flagset("run_find")

	flagset.StringVar(&cmd.value, "value", cmd.value, "Value to find")

	return flagset
}

func (cmd *Find) Execute(args ...any) error {
	ctx, options := parseArgs(args)

	if cmd.value == "" {
		return fmt.Errorf("--value is a required option")
	}

	google, spreadsheet, err := cmd.connect(ctx, options, SHEETS_READONLY)
	if err != nil {
		return err
	}

	cell, err := find(ctx, google, spreadsheet, cmd.value)
	if err != nil {
		return err
	}

	infof("cell: %v", cell)
	infof("cell.row: %v", cell.Row)
	infof("cell.col: %v", cell.Col)

	return nil
}

func find(ctx context.Context, google *sheets.Service, spreadsheetId string, value string) (*Cell, error) {
	spreadsheet, err := getSpreadsheet(ctx, google, spreadsheetId)
	if err != nil {
		return nil, err
	}

	sheet, err := getWorksheet(spreadsheet, 0)
	if err != nil {
		return nil, err
	}

	title := sheet.Properties.Title
	response, err := google.Spreadsheets.Values.Get(spreadsheetId, area(title, "")).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("unable to retrieve data from worksheet '%v' (%v)", title, err)
	}

	cell, ok := findCell(response.Values, value)
	if !ok {
		return nil, fmt.Errorf("'%v' %w in worksheet '%v'", value, ErrNotFound, title)
	}

	return cell, nil
}

// findCell scans the rows in order and returns the first cell with exactly 'value'.
func findCell(rows [][]any, value string) (*Cell, bool) {
	for r, row := range rows {
		for c, v := range row {
			if s, ok := v.(string); ok && s == value {
				return &Cell{Row: r + 1, Col: c + 1, Value: s}, true
			}
		}
	}

	return nil, false
}
