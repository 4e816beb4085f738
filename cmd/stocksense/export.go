package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"stocksense/types"

	"github.com/google/subcommands"
)

type exportCmd struct {
	dir       string
	timeRange string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "write a CSV series for every ticker symbol" }
func (*exportCmd) Usage() string {
	return `export [-dir <dir>] [-r <range>]

  Writes <symbol>_<range>.csv into the directory for every ticker symbol,
  each series starting at the symbol's ticker price.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.dir, "dir", "export", "Output directory")
	f.StringVar(&c.timeRange, "r", "", "Time range: 1D, 1W, 1M, 1Y, 5Y (default from config)")
}

func (c *exportCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := newApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		return subcommands.ExitFailure
	}

	r := a.cfg.ChartRange()
	if c.timeRange != "" {
		var ok bool
		if r, ok = types.ConvertRange[strings.ToUpper(c.timeRange)]; !ok {
			fmt.Fprintf(os.Stderr, "Error: unknown range %q\n", c.timeRange)
			return subcommands.ExitUsageError
		}
	}

	paths, err := a.engine.Export(ctx, c.dir, r, os.Stderr)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error exporting: %v\n", err)
		return subcommands.ExitFailure
	}
	for _, p := range paths {
		fmt.Println(p)
	}
	return subcommands.ExitSuccess
}
