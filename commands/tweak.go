package commands

import (
	"context"
	"flag"
	"fmt"
	"math/rand/v2"

	"google.golang.org/api/sheets/v4"
)

var TweakCmd = Tweak{
	command: command{
		credentials: "",
		spreadsheet: "",
		debug:       false,
	},
}

// Tweak renames the first worksheet to a randomly numbered title.
type Tweak struct {
	command
	title string
}

func (cmd *Tweak) Name() string {
	return "tweak_worksheet"
}

func (cmd *Tweak) Description() string {
	return "Renames the first worksheet of a Google Sheets spreadsheet"
}

func (cmd *Tweak) Usage() string {
	return "[--credentials <file>] [--spreadsheet <ID>] [--title <title>]"
}

func (cmd *Tweak) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] tweak_worksheet [options]\n", APP)
	fmt.Println()
	fmt.Println("  Renames the first worksheet of a Google Sheets spreadsheet. The default title is")
	fmt.Println("  new_title_NNNN, where NNNN is a random number between 0 and 1000")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println("  Examples:")
	fmt.Printf("    %s tweak_worksheet --spreadsheet 1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms\n", APP)
	fmt.Println()
}

func (cmd *Tweak) FlagSet() *flag.FlagSet {
	flagset := cmd.flagset("tweak_worksheet")

	flagset.StringVar(&cmd.title, "title", cmd.title, "New worksheet title. Defaults to 'new_title_NNNN'")

	return flagset
}

func (cmd *Tweak) Execute(args ...any) error {
	ctx, options := parseArgs(args)

	google, spreadsheet, err := cmd.connect(ctx, options, SHEETS)
	if err != nil {
		return err
	}

	title := cmd.title
	if title == "" {
		title = newTitle()
	}

	before, after, err := tweakWorksheet(ctx, google, spreadsheet, title)
	if err != nil {
		return err
	}

	infof("sheets initially: %q", before)
	infof("sheets now: %q", after)

	return nil
}

func tweakWorksheet(ctx context.Context, google *sheets.Service, spreadsheetId string, title string) ([]string, []string, error) {
	spreadsheet, err := getSpreadsheet(ctx, google, spreadsheetId)
	if err != nil {
		return nil, nil, err
	}

	before := titles(spreadsheet)

	sheet, err := getWorksheet(spreadsheet, 0)
	if err != nil {
		return nil, nil, err
	}

	rq := sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{
			&sheets.Request{
				UpdateSheetProperties: &sheets.UpdateSheetPropertiesRequest{
					Properties: &sheets.SheetProperties{
						SheetId:         sheet.Properties.SheetId,
						Title:           title,
						ForceSendFields: []string{"SheetId"},
					},
					Fields: "title",
				},
			},
		},
	}

	if _, err := google.Spreadsheets.BatchUpdate(spreadsheetId, &rq).Context(ctx).Do(); err != nil {
		return nil, nil, fmt.Errorf("unable to rename worksheet '%v' (%v)", sheet.Properties.Title, err)
	}

	spreadsheet, err = getSpreadsheet(ctx, google, spreadsheetId)
	if err != nil {
		return nil, nil, err
	}

	return before, titles(spreadsheet), nil
}

func newTitle() string {
	return fmt.Sprintf("new_title_%04d", rand.IntN(1001))
}
