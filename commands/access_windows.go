package commands

import (
	"fmt"
	"os"
)

func readable(file string) error {
	f, err := os.Open(file)
	if err != nil {
		return fmt.Errorf("credentials file '%v' is not readable (%w)", file, err)
	}

	return f.Close()
}
