package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version     kong.VersionFlag `short:"v" help:"Show version"`
	Playability PlayabilityCmd   `cmd:"" help:"Check whether a starting hand is playable"`
	Advise      AdviseCmd        `cmd:"" help:"Recommend an action and bet size for a scenario"`
	Range       RangeCmd         `cmd:"" help:"Evaluate every starting hand for a scenario"`
	Serve       ServeCmd         `cmd:"" help:"Run the advisor HTTP server"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("preflop-advisor"),
		kong.Description("Heads-up pre-flop decision engine: playability logic and bet-size search"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
