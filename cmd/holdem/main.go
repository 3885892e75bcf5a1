package main

import (
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/lox/pokercore/internal/display"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version  kong.VersionFlag `short:"v" help:"Show version"`
	LogLevel string           `help:"Log level (debug, info, warn, error)" default:"warn" enum:"debug,info,warn,error"`
	Color    string           `help:"Colorize output (auto, always, never)" default:"auto" enum:"auto,always,never"`

	Eval     EvalCmd     `cmd:"" help:"Evaluate and compare poker hands"`
	Play     PlayCmd     `cmd:"" help:"Play a single hand from an HCL scenario file"`
	Simulate SimulateCmd `cmd:"" help:"Play random hands in parallel and report statistics"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("holdem"),
		kong.Description("No-limit Texas Hold'em hand engine"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)

	level, err := log.ParseLevel(cli.LogLevel)
	ctx.FatalIfErrorf(err)
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Prefix:          "holdem",
		Level:           level,
	})

	colors, err := display.ColorMode(cli.Color)
	ctx.FatalIfErrorf(err)

	err = ctx.Run(logger, display.New(os.Stdout, colors...))
	ctx.FatalIfErrorf(err)
}
