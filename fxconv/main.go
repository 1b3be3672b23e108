// Command fxconv converts dated transactions between currencies and reconciles
// broker sales with their closed lots.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path"

	"github.com/google/subcommands"

	"github.com/etnz/fxconv/cmd"
	"github.com/etnz/fxconv/config"
	"github.com/etnz/fxconv/logger"
)

func main() {
	// Handles the shell completion requests, and exits if it was one.
	cmd.Completion().Complete("fxconv")

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(int(subcommands.ExitUsageError))
	}
	log := logger.New(logger.Config{Level: cfg.LogLevel, Pretty: cfg.LogPretty})

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander, cfg, log)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
