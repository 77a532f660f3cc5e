package commands

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"

	"golang.org/x/oauth2/google"

	"github.com/gsheet-writer/gsheet-writer/config"
)

const (
	SHEETS          = "https://www.googleapis.com/auth/spreadsheets"
	SHEETS_READONLY = "https://www.googleapis.com/auth/spreadsheets.readonly"
	DRIVE_METADATA  = "https://www.googleapis.com/auth/drive.metadata.readonly"
)

// authorize returns an HTTP client authorised with the service account credentials for the
// requested scopes.
func authorize(ctx context.Context, credentials string, conf *config.Config, scope ...string) (*http.Client, error) {
	b, err := serviceAccount(credentials, conf)
	if err != nil {
		return nil, err
	}

	jwt, err := google.JWTConfigFromJSON(b, scope...)
	if err != nil {
		return nil, fmt.Errorf("invalid service account credentials (%v)", err)
	}

	return jwt.Client(ctx), nil
}

// serviceAccount returns the service account key from (in order of precedence) the
// --credentials file, $GSHEET_CREDENTIALS_JSON or the default credentials file.
func serviceAccount(credentials string, conf *config.Config) ([]byte, error) {
	if file := strings.TrimSpace(credentials); file != "" {
		if err := readable(file); err != nil {
			return nil, err
		}

		return os.ReadFile(file)
	}

	if conf != nil && strings.TrimSpace(conf.CredentialsJSON) != "" {
		return []byte(conf.CredentialsJSON), nil
	}

	if err := readable(DEFAULT_CREDENTIALS); err == nil {
		debugf("using default credentials file %v", DEFAULT_CREDENTIALS)
		return os.ReadFile(DEFAULT_CREDENTIALS)
	}

	return nil, fmt.Errorf("--credentials is a required option (or set %v)", config.GSHEET_CREDENTIALS_JSON)
}
