package commands

import (
	"strings"

	uhppoted "github.com/uhppoted/uhppoted-lib/command"
)

// Actions lists the named spreadsheet actions in the order they are offered on the command line.
var Actions = []uhppoted.Command{
	&ReadCmd,
	&TweakCmd,
	&WriteCmd,
	&FindCmd,
}

// Allowed returns the names of the spreadsheet actions.
func Allowed() []string {
	names := []string{}
	for _, action := range Actions {
		names = append(names, action.Name())
	}

	return names
}

func Lookup(name string) (uhppoted.Command, bool) {
	name = strings.TrimSpace(name)
	for _, action := range Actions {
		if name != "" && action.Name() == name {
			return action, true
		}
	}

	return nil, false
}
