package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"stocksense/internal/dashboard"
	"stocksense/internal/render"
	"stocksense/types"

	"github.com/google/subcommands"
)

type chartCmd struct {
	symbol    string
	timeRange string
	chartType string
	png       string
	csv       string
	sma       int
}

func (*chartCmd) Name() string     { return "chart" }
func (*chartCmd) Synopsis() string { return "show a synthetic price chart with statistics" }
func (*chartCmd) Usage() string {
	return `chart [-s <symbol>] [-r <range>] [-type <type>] [-png <file>] [-csv <file>]

  Generates a random-walk price series for the symbol. Symbols from the ticker
  start at their ticker price; any other symbol starts at a random price.
  - range: 1D, 1W, 1M, 1Y or 5Y (default from config).
  - type: line, area, candlestick or volume, used for the PNG (default from config).
`
}

func (c *chartCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "s", "RELIANCE", "Stock symbol")
	f.StringVar(&c.timeRange, "r", "", "Time range: 1D, 1W, 1M, 1Y, 5Y")
	f.StringVar(&c.chartType, "type", "", "Chart type for the PNG: line, area, candlestick, volume")
	f.StringVar(&c.png, "png", "", "Write the chart as PNG to this file")
	f.StringVar(&c.csv, "csv", "", "Write the series as CSV to this file")
	f.IntVar(&c.sma, "sma", 20, "Moving average window drawn on the PNG, 0 to disable")
}

func (c *chartCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	chartType := a.cfg.ChartType()
	if c.chartType != "" {
		var ok bool
		if chartType, ok = types.ConvertChartType[strings.ToLower(c.chartType)]; !ok {
			fmt.Fprintf(os.Stderr, "Error: unknown chart type %q\n", c.chartType)
			return subcommands.ExitUsageError
		}
	}

	view, err := a.engine.Chart(ctx, c.symbol, r)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating chart: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.png != "" {
		png, err := render.RenderPriceChart(view.Chart, render.Options{
			Width:     a.cfg.Chart.Width,
			Height:    a.cfg.Chart.Height,
			Type:      chartType,
			SMAWindow: c.sma,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error rendering chart: %v\n", err)
			return subcommands.ExitFailure
		}
		if err := writeFile(c.png, png); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
	}

	if c.csv != "" {
		var buf bytes.Buffer
		if err := dashboard.WriteSeriesCSV(&buf, view.Chart); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing CSV: %v\n", err)
			return subcommands.ExitFailure
		}
		if err := writeFile(c.csv, buf.Bytes()); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
	}

	printMarkdown(dashboard.ChartMarkdown(view, a.cfg.Currency))
	return subcommands.ExitSuccess
}
