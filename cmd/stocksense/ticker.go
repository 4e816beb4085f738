package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"stocksense/internal/dashboard"
	"stocksense/internal/portfolio"

	"github.com/google/subcommands"
)

type tickerCmd struct {
	filter string
	sort   string
}

func (*tickerCmd) Name() string     { return "ticker" }
func (*tickerCmd) Synopsis() string { return "show the market ticker" }
func (*tickerCmd) Usage() string {
	return `ticker [-filter <text>] [-sort gainers|losers|none]

  Lists the ticker quotes whose symbol or name contains the filter text,
  ignoring case.
`
}

func (c *tickerCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.filter, "filter", "", "Only show symbols or names containing this text")
	f.StringVar(&c.sort, "sort", "none", "Sort order: gainers, losers or none")
}

func (c *tickerCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	order, ok := portfolio.ConvertSortOrder[strings.ToLower(c.sort)]
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown sort order %q\n", c.sort)
		return subcommands.ExitUsageError
	}

	a, err := newApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		return subcommands.ExitFailure
	}

	quotes, err := a.engine.Ticker(ctx, c.filter, order)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ticker: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(dashboard.TickerMarkdown(quotes, a.cfg.Currency))
	return subcommands.ExitSuccess
}
