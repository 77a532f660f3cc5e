package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"regexp"
	"strings"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/gsheet-writer/gsheet-writer/collections"
	"github.com/gsheet-writer/gsheet-writer/config"
	"github.com/gsheet-writer/gsheet-writer/logging"
)

const APP = "gsheet-writer"

var ErrNoWorksheets = errors.New("spreadsheet has no worksheets")

type Options struct {
	Debug  bool
	Config *config.Config
}

type command struct {
	credentials string
	spreadsheet string
	debug       bool
}

func (cmd *command) flagset(name string) *flag.FlagSet {
	flagset := flag.NewFlagSet(name, flag.ExitOnError)

	flagset.StringVar(&cmd.credentials, "credentials", cmd.credentials, fmt.Sprintf("Path for the service account 'credentials.json' file. Defaults to $%v", config.GSHEET_CREDENTIALS_JSON))
	flagset.StringVar(&cmd.spreadsheet, "spreadsheet", cmd.spreadsheet, fmt.Sprintf("Spreadsheet ID or URL. Defaults to $%v", config.GSHEET_SPREADSHEET_ID))

	return flagset
}

// connect resolves the spreadsheet ID and returns an authorised Sheets client for 'scope'.
func (cmd *command) connect(ctx context.Context, options *Options, scope string) (*sheets.Service, string, error) {
	cmd.debug = options.Debug

	spreadsheet, err := resolveSpreadsheet(cmd.spreadsheet, options.Config)
	if err != nil {
		return nil, "", err
	}

	if cmd.debug {
		debugf("spreadsheet - ID:%s  scope:%s", spreadsheet, scope)
	}

	client, err := authorize(ctx, cmd.credentials, options.Config, scope)
	if err != nil {
		return nil, "", fmt.Errorf("authentication/authorization error (%v)", err)
	}

	google, err := sheets.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, "", fmt.Errorf("unable to create new Sheets client (%v)", err)
	}

	return google, spreadsheet, nil
}

func (cmd *command) connectDrive(ctx context.Context, options *Options, scope string) (*drive.Service, string, error) {
	cmd.debug = options.Debug

	spreadsheet, err := resolveSpreadsheet(cmd.spreadsheet, options.Config)
	if err != nil {
		return nil, "", err
	}

	client, err := authorize(ctx, cmd.credentials, options.Config, scope)
	if err != nil {
		return nil, "", fmt.Errorf("authentication/authorization error (%v)", err)
	}

	gdrive, err := drive.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, "", fmt.Errorf("unable to create new Drive client (%v)", err)
	}

	return gdrive, spreadsheet, nil
}

// resolveSpreadsheet takes the spreadsheet from the command line if supplied, falling back
// to the configured GSHEET_SPREADSHEET_ID. Spreadsheet URLs are reduced to the ID.
func resolveSpreadsheet(spreadsheet string, conf *config.Config) (string, error) {
	raw := strings.TrimSpace(spreadsheet)
	if raw == "" && conf != nil {
		raw = strings.TrimSpace(conf.SpreadsheetID)
	}

	if raw == "" {
		return "", fmt.Errorf("--spreadsheet is a required option (or set %v)", config.GSHEET_SPREADSHEET_ID)
	}

	if match := regexp.MustCompile(`^https://docs.google.com/spreadsheets/d/(.*?)(?:/.*)?$`).FindStringSubmatch(raw); len(match) > 1 {
		raw = match[1]
	}

	ids, err := collections.ValidateString(raw)
	if err != nil {
		return "", fmt.Errorf("invalid spreadsheet ID (%w)", err)
	}

	if len(ids) != 1 {
		return "", fmt.Errorf("%w: expected a single spreadsheet ID, got %v", collections.ErrInvalidInput, len(ids))
	}

	if strings.ContainsAny(ids[0], " \t\r\n") {
		return "", fmt.Errorf("%w: invalid spreadsheet ID '%v'", collections.ErrInvalidInput, ids[0])
	}

	return ids[0], nil
}

// parseArgs extracts the context and options from the variadic Execute arguments.
func parseArgs(args []any) (context.Context, *Options) {
	ctx := context.Background()
	options := &Options{}

	for _, arg := range args {
		switch v := arg.(type) {
		case context.Context:
			ctx = v
		case *Options:
			if v != nil {
				options = v
			}
		}
	}

	return ctx, options
}

func helpOptions(flagset *flag.FlagSet) {
	fmt.Println("  Options:")
	fmt.Println()

	flagset.VisitAll(func(f *flag.Flag) {
		fmt.Printf("    --%-12s %s\n", f.Name, f.Usage)
	})

	fmt.Println()
	fmt.Println("    --debug       Displays internal information for diagnosing errors")
	fmt.Println()
}

var (
	debugf = logging.Debugf
	infof  = logging.Infof
)
