package commands

import (
	"context"
	"flag"
	"fmt"
	"math/rand/v2"

	"google.golang.org/api/sheets/v4"
)

var WriteCmd = Write{
	command: command{
		credentials: "",
		spreadsheet: "",
		debug:       false,
	},

	cell: "B1",
}

// Write stores a value in a cell of the first worksheet.
type Write struct {
	command
	cell  string
	value string
}

func (cmd *Write) Name() string {
	return "run_simple_write"
}

func (cmd *Write) Description() string {
	return "Writes a value to a cell in the first worksheet of a Google Sheets spreadsheet"
}

func (cmd *Write) Usage() string {
	return "[--credentials <file>] [--spreadsheet <ID>] [--cell <A1>] [--value <value>]"
}

func (cmd *Write) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] run_simple_write [options]\n", APP)
	fmt.Println()
	fmt.Println("  Writes a value to a cell in the first worksheet of a Google Sheets spreadsheet. The default")
	fmt.Println("  value is new_value_NNNN, where NNNN is a random number between 0 and 1000")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println("  Examples:")
	fmt.Printf("    %s run_simple_write --spreadsheet 1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms --cell B1\n", APP)
	fmt.Println()
}

func (cmd *Write) FlagSet() *flag.FlagSet {
	flagset := cmd.flagset("run_simple_write")

	flagset.StringVar(&cmd.cell, "cell", cmd.cell, "Cell to update in A1 notation")
	flagset.StringVar(&cmd.value, "value", cmd.value, "Value to write. Defaults to 'new_value_NNNN'")

	return flagset
}

func (cmd *Write) Execute(args ...any) error {
	ctx, options := parseArgs(args)

	if cmd.cell == "" {
		return fmt.Errorf("--cell is a required option")
	}

	google, spreadsheet, err := cmd.connect(ctx, options, SHEETS)
	if err != nil {
		return err
	}

	value := cmd.value
	if value == "" {
		value = newValue()
	}

	title, values, err := simpleWrite(ctx, google, spreadsheet, cmd.cell, value)
	if err != nil {
		return err
	}

	infof("target_sheet: '%v'", title)
	infof("values_list after update: %v", values)

	return nil
}

// simpleWrite updates the cell on the first worksheet and returns the worksheet title and
// the first row as it is after the update.
func simpleWrite(ctx context.Context, google *sheets.Service, spreadsheetId string, cell string, value string) (string, []any, error) {
	spreadsheet, err := getSpreadsheet(ctx, google, spreadsheetId)
	if err != nil {
		return "", nil, err
	}

	sheet, err := getWorksheet(spreadsheet, 0)
	if err != nil {
		return "", nil, err
	}

	title := sheet.Properties.Title
	rq := sheets.ValueRange{
		Values: [][]any{
			[]any{value},
		},
	}

	if _, err := google.Spreadsheets.Values.Update(spreadsheetId, area(title, cell), &rq).
		ValueInputOption("USER_ENTERED").
		Context(ctx).
		Do(); err != nil {
		return "", nil, fmt.Errorf("error writing %v to Google Sheets (%w)", cell, err)
	}

	values, err := getRow(ctx, google, spreadsheetId, title, 1)
	if err != nil {
		return "", nil, err
	}

	return title, values, nil
}

func newValue() string {
	return fmt.Sprintf("new_value_%04d", rand.IntN(1001))
}
