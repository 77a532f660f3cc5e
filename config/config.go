package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DEFAULT_DOTENV    = ".env"
	DEFAULT_LOG_LEVEL = "INFO"

	GSHEET_CREDENTIALS_JSON = "GSHEET_CREDENTIALS_JSON"
	GSHEET_SPREADSHEET_ID   = "GSHEET_SPREADSHEET_ID"
	LOG_LEVEL               = "LOG_LEVEL"
)

type Config struct {
	CredentialsJSON string
	SpreadsheetID   string
	LogLevel        string
}

// Load merges the environment with the (optional) dotenv file. Variables already set in
// the environment take precedence over the dotenv file. A missing default dotenv file is
// not an error but a missing explicitly named file is.
func Load(dotenv string) (*Config, error) {
	file := dotenv
	if file == "" {
		file = DEFAULT_DOTENV
	}

	if err := godotenv.Load(file); err != nil {
		if !errors.Is(err, fs.ErrNotExist) || dotenv != "" && dotenv != DEFAULT_DOTENV {
			return nil, fmt.Errorf("error loading %v (%w)", file, err)
		}
	}

	v := viper.New()

	v.SetDefault(LOG_LEVEL, DEFAULT_LOG_LEVEL)
	v.AutomaticEnv()

	return &Config{
		CredentialsJSON: v.GetString(GSHEET_CREDENTIALS_JSON),
		SpreadsheetID:   v.GetString(GSHEET_SPREADSHEET_ID),
		LogLevel:        v.GetString(LOG_LEVEL),
	}, nil
}
