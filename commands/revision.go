package commands

import (
	"context"
	"flag"
	"fmt"
	"time"

	"google.golang.org/api/drive/v3"
)

var RevisionCmd = Revision{
	command: command{
		credentials: "",
		spreadsheet: "",
		debug:       false,
	},
}

// Revision logs the latest Google Drive revision of the spreadsheet.
type Revision struct {
	command
}

type version struct {
	revision string
	modified time.Time
}

func (cmd *Revision) Name() string {
	return "revision"
}

func (cmd *Revision) Description() string {
	return "Displays the latest revision of a Google Sheets spreadsheet"
}

func (cmd *Revision) Usage() string {
	return "[--credentials <file>] [--spreadsheet <ID>]"
}

func (cmd *Revision) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] revision [options]\n", APP)
	fmt.Println()
	fmt.Println("  Retrieves the spreadsheet revision history from Google Drive and displays the latest revision")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println("  Examples:")
	fmt.Printf("    %s revision --spreadsheet 1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms\n", APP)
	fmt.Println()
}

func (cmd *Revision) FlagSet() *flag.FlagSet {
	return cmd.flagset("revision")
}

func (cmd *Revision) Execute(args ...any) error {
	ctx, options := parseArgs(args)

	gdrive, spreadsheet, err := cmd.connectDrive(ctx, options, DRIVE_METADATA)
	if err != nil {
		return err
	}

	latest, err := getVersion(ctx, gdrive, spreadsheet)
	if err != nil {
		return err
	}

	infof("revision: %v", latest.revision)
	infof("modified: %v", latest.modified.Local().Format("2006-01-02 15:04:05 MST"))

	return nil
}

func getVersion(ctx context.Context, gdrive *drive.Service, fileId string) (*version, error) {
	page := ""
	latest := version{
		revision: "",
		modified: time.Time{},
	}

	for {
		call := drive.NewRevisionsService(gdrive).List(fileId).Context(ctx)
		if page != "" {
			call.PageToken(page)
		}

		revisions, err := call.Do()
		if err != nil {
			return nil, err
		}

		for _, revision := range revisions.Revisions {
			datetime, err := time.Parse(time.RFC3339Nano, revision.ModifiedTime)
			if err != nil {
				return nil, err
			}

			if latest.modified.Before(datetime) {
				latest.revision = revision.Id
				latest.modified = datetime
			}
		}

		if page = revisions.NextPageToken; page == "" {
			break
		}
	}

	if latest.modified.IsZero() {
		return nil, fmt.Errorf("unable to identify latest revision for file ID %s", fileId)
	}

	return &latest, nil
}
