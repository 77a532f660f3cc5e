package commands

import (
	"context"
	"flag"
	"fmt"

	"google.golang.org/api/sheets/v4"
)

var ReadCmd = Read{
	command: command{
		credentials: "",
		spreadsheet: "",
		debug:       false,
	},

	row: 1,
}

// Read logs the values of a row of the first worksheet, using the read-only scope.
type Read struct {
	command
	row int
}

func (cmd *Read) Name() string {
	return "run_simple_read"
}

func (cmd *Read) Description() string {
	return "Reads a row from the first worksheet of a Google Sheets spreadsheet"
}

func (cmd *Read) Usage() string {
	return "[--credentials <file>] [--spreadsheet <ID>] [--row <row>]"
}

func (cmd *Read) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] run_simple_read [options]\n", APP)
	fmt.Println()
	fmt.Println("  Reads a row from the first worksheet of a Google Sheets spreadsheet with read-only access")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println("  Examples:")
	fmt.Printf("    %s run_simple_read --spreadsheet 1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms\n", APP)
	fmt.Println()
}

func (cmd *Read) FlagSet() *flag.FlagSet {
	flagset := cmd.flagset("run_simple_read")

	flagset.IntVar(&cmd.row, "row", cmd.row, "Row to read (1-based)")

	return flagset
}

func (cmd *Read) Execute(args ...any) error {
	ctx, options := parseArgs(args)

	if cmd.row < 1 {
		return fmt.Errorf("invalid --row %v - rows start at 1", cmd.row)
	}

	google, spreadsheet, err := cmd.connect(ctx, options, SHEETS_READONLY)
	if err != nil {
		return err
	}

	values, err := simpleRead(ctx, google, spreadsheet, cmd.row)
	if err != nil {
		return err
	}

	infof("values_list: %v", values)

	return nil
}

func simpleRead(ctx context.Context, google *sheets.Service, spreadsheetId string, row int) ([]any, error) {
	spreadsheet, err := getSpreadsheet(ctx, google, spreadsheetId)
	if err != nil {
		return nil, err
	}

	sheet, err := getWorksheet(spreadsheet, 0)
	if err != nil {
		return nil, err
	}

	return getRow(ctx, google, spreadsheetId, sheet.Properties.Title, row)
}
