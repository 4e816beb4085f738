package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"stocksense/internal/dashboard"
	"stocksense/internal/render"
	"stocksense/internal/synth"

	"github.com/google/subcommands"
)

type predictCmd struct {
	symbol string
	past   int
	days   int
	png    string
	csv    string
}

func (*predictCmd) Name() string     { return "predict" }
func (*predictCmd) Synopsis() string { return "show a synthetic price forecast with confidence" }
func (*predictCmd) Usage() string {
	return `predict [-s <symbol>] [-past <n>] [-days <n>] [-png <file>] [-csv <file>]

  Generates -past days of history, today's price and a -days forecast whose
  confidence falls by 2% a day down to 20%.
`
}

func (c *predictCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "s", "RELIANCE", "Stock symbol")
	f.IntVar(&c.past, "past", 0, "Days of history (default from config)")
	f.IntVar(&c.days, "days", 0, "Days to forecast (default from config)")
	f.StringVar(&c.png, "png", "", "Write the forecast as PNG to this file")
	f.StringVar(&c.csv, "csv", "", "Write the forecast as CSV to this file")
}

func (c *predictCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := newApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		return subcommands.ExitFailure
	}

	past, days := predictionDays(f, c.past, c.days, a.cfg.Prediction.PastDays, a.cfg.Prediction.FutureDays)

	view, err := a.engine.Prediction(ctx, c.symbol, past, days)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating prediction: %v\n", err)
		if errors.Is(err, synth.ErrInvalidParameter) {
			return subcommands.ExitUsageError
		}
		return subcommands.ExitFailure
	}

	if c.png != "" {
		png, err := render.RenderPredictionChart(view.Symbol, view.Points, render.Options{
			Width:  a.cfg.Chart.Width,
			Height: a.cfg.Chart.Height,
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
		if err := dashboard.WritePredictionCSV(&buf, view.Symbol, view.Points); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing CSV: %v\n", err)
			return subcommands.ExitFailure
		}
		if err := writeFile(c.csv, buf.Bytes()); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
	}

	printMarkdown(dashboard.PredictionMarkdown(view, a.cfg.Currency))
	return subcommands.ExitSuccess
}

// predictionDays falls back to the configured day counts only for flags that
// were not given. Explicit values, negatives included, pass through.
func predictionDays(f *flag.FlagSet, past, days, defaultPast, defaultDays int) (int, int) {
	set := make(map[string]bool)
	f.Visit(func(fl *flag.Flag) { set[fl.Name] = true })
	if !set["past"] {
		past = defaultPast
	}
	if !set["days"] {
		days = defaultDays
	}
	return past, days
}
