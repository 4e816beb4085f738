package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"stocksense/internal/dashboard"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type watchlistCmd struct {
	add    string
	alert  string
	remove string
}

func (*watchlistCmd) Name() string     { return "watchlist" }
func (*watchlistCmd) Synopsis() string { return "show the watchlist and its totals" }
func (*watchlistCmd) Usage() string {
	return `watchlist [-add <symbol> [-alert <price>]] [-remove <symbol>]

  Shows the watchlist with total value and change. Changes made with -add and
  -remove apply to this run only.
`
}

func (c *watchlistCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.add, "add", "", "Add a symbol with a synthetic quote")
	f.StringVar(&c.alert, "alert", "", "Alert price for the added symbol")
	f.StringVar(&c.remove, "remove", "", "Remove every entry for a symbol")
}

func (c *watchlistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var alert decimal.NullDecimal
	if c.alert != "" {
		if c.add == "" {
			fmt.Fprintln(os.Stderr, "Error: -alert requires -add.")
			return subcommands.ExitUsageError
		}
		price, err := decimal.NewFromString(c.alert)
		if err != nil || !price.IsPositive() {
			fmt.Fprintf(os.Stderr, "Error: invalid alert price %q\n", c.alert)
			return subcommands.ExitUsageError
		}
		alert = decimal.NewNullDecimal(price)
	}

	a, err := newApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.add != "" {
		if _, err := a.engine.AddToWatchlist(ctx, c.add, alert); err != nil {
			fmt.Fprintf(os.Stderr, "Error adding %s: %v\n", c.add, err)
			return subcommands.ExitFailure
		}
	}
	if c.remove != "" {
		if _, err := a.engine.RemoveFromWatchlist(ctx, c.remove); err != nil {
			fmt.Fprintf(os.Stderr, "Error removing %s: %v\n", c.remove, err)
			return subcommands.ExitFailure
		}
	}

	view, err := a.engine.Watchlist(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading watchlist: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(dashboard.WatchlistMarkdown(view, a.cfg.Currency))
	return subcommands.ExitSuccess
}
