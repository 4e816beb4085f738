package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"path"

	"github.com/google/subcommands"
)

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	register(commander)

	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	status := commander.Execute(ctx)
	stop()
	os.Exit(int(status))
}

// register adds the dashboard subcommands.
func register(c *subcommands.Commander) {
	c.Register(&chartCmd{}, "views")
	c.Register(&predictCmd{}, "views")
	c.Register(&watchlistCmd{}, "views")
	c.Register(&tickerCmd{}, "views")
	c.Register(&monitorCmd{}, "views")
	c.Register(&analyzeCmd{}, "views")

	c.Register(&exportCmd{}, "data")
}
