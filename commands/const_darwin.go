package commands

const (
	_etc = "/usr/local/etc/com.github.gsheet-writer"

	DEFAULT_CREDENTIALS = _etc + "/.google/credentials.json"
)
