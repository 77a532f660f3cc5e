package commands

const (
	_etc = `C:\ProgramData\gsheet-writer`

	DEFAULT_CREDENTIALS = _etc + `\.google\credentials.json`
)
