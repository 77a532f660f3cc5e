package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	uhppoted "github.com/uhppoted/uhppoted-lib/command"

	"github.com/gsheet-writer/gsheet-writer/commands"
	"github.com/gsheet-writer/gsheet-writer/config"
	"github.com/gsheet-writer/gsheet-writer/logging"
)

var cli = []uhppoted.Command{
	&commands.VersionCmd,
	&commands.ReadCmd,
	&commands.TweakCmd,
	&commands.WriteCmd,
	&commands.FindCmd,
	&commands.RevisionCmd,
}

var options = commands.Options{
	Debug: false,
}

var dotenv = config.DEFAULT_DOTENV

var help = uhppoted.NewHelp(commands.APP, cli, nil)

func main() {
	flag.BoolVar(&options.Debug, "debug", options.Debug, "Enable debugging information")
	flag.StringVar(&dotenv, "env", dotenv, "dotenv file with the GSHEET_* settings")
	flag.Parse()

	conf, err := config.Load(dotenv)
	if err != nil {
		fmt.Printf("\nError loading configuration: %v\n\n", err)
		os.Exit(1)
	}

	if err := logging.Init(conf.LogLevel, options.Debug); err != nil {
		fmt.Printf("\nError initialising logging: %v\n\n", err)
		os.Exit(1)
	}

	defer logging.Sync()

	options.Config = conf

	cmd, err := uhppoted.Parse(cli, nil, help)
	if err != nil {
		logging.Errorf("Error parsing command line: %v", err)
	}

	if err != nil || cmd == nil {
		logging.Errorf("Invalid or missing action. Provide one of: %v", strings.Join(commands.Allowed(), ", "))
		help.Execute()
		logging.Sync()
		os.Exit(1)
	}

	if _, ok := commands.Lookup(cmd.Name()); ok {
		logging.Infof("running action: `%v`", cmd.Name())
	}

	if err = cmd.Execute(context.Background(), &options); err != nil {
		logging.Errorf("%v", err)
		logging.Sync()
		os.Exit(1)
	}
}
