package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"

	"github.com/luminark/holdings/internal/app"
	"github.com/luminark/holdings/internal/cli"
	"github.com/luminark/holdings/internal/config"
	"github.com/luminark/holdings/internal/logger"
)

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")

	cli.Register(commander, openApp, os.Stdout, os.Stderr)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

func openApp(context.Context) (*app.App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	level := cfg.LogLevel
	if level == "" {
		level = "warn"
	}
	zl, err := logger.New(cfg.AppEnv, level)
	if err != nil {
		return nil, err
	}
	return app.New(cfg, zl)
}
