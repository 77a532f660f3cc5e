//go:build !linux && !darwin && !windows

package commands

const (
	_etc = "/usr/local/etc/gsheet-writer"

	DEFAULT_CREDENTIALS = _etc + "/.google/credentials.json"
)
