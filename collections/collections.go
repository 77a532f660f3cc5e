// Package collections parses user supplied lists of spreadsheet/worksheet identifiers.
package collections

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// ErrInvalidInput is returned for missing, blank or ambiguously separated identifier lists.
var ErrInvalidInput = errors.New("invalid input")

// Validate splits a comma separated list of identifiers into its trimmed, non-empty
// components. A list without commas is returned whole, i.e. space separated identifiers
// are not split. A comma separated list with a component that still contains whitespace
// is rejected as mixing separators.
func Validate(raw *string) ([]string, error) {
	if raw == nil {
		return nil, fmt.Errorf("%w: missing collection IDs", ErrInvalidInput)
	}

	s := strings.TrimSpace(*raw)
	if s == "" {
		return nil, fmt.Errorf("%w: blank collection IDs", ErrInvalidInput)
	}

	if !strings.Contains(s, ",") {
		return []string{s}, nil
	}

	ids := []string{}
	for _, v := range strings.Split(s, ",") {
		id := strings.TrimSpace(v)
		if id == "" {
			return nil, fmt.Errorf("%w: empty collection ID in '%s'", ErrInvalidInput, s)
		}

		if strings.IndexFunc(id, unicode.IsSpace) != -1 {
			return nil, fmt.Errorf("%w: mixed separators in '%s'", ErrInvalidInput, s)
		}

		ids = append(ids, id)
	}

	return ids, nil
}

// ValidateString is Validate for a value that is always present.
func ValidateString(raw string) ([]string, error) {
	return Validate(&raw)
}
