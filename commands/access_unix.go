//go:build !windows

package commands

import (
	"fmt"

	"golang.org/x/sys/unix"
)

func readable(file string) error {
	if err := unix.Access(file, unix.R_OK); err != nil {
		return fmt.Errorf("credentials file '%v' is not readable (%w)", file, err)
	}

	return nil
}
