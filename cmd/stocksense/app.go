package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"stocksense/internal/config"
	"stocksense/internal/dashboard"
	"stocksense/internal/repository"
	"stocksense/internal/synth"
	"stocksense/pkg/logger"

	"github.com/rs/zerolog"
)

var configPath = flag.String("config", "stocksense.toml", "Path to the TOML config file")
var markdownStyle = flag.String("style", "", "Report style (dark, light, notty, ascii); empty picks one from the terminal")

const reportWidth = 100

type app struct {
	cfg    *config.Config
	log    zerolog.Logger
	synth  *synth.Synthesizer
	engine *dashboard.Engine
}

// newApp loads the configuration and wires the dashboard for one command.
func newApp() (*app, error) {
	cfg, err := config.Load(*configPath)
	if err != nil {
		return nil, err
	}

	log := logger.New(logger.Config{Level: cfg.LogLevel, Pretty: cfg.LogPretty})
	logger.SetGlobalLogger(log)

	loc := cfg.Location()
	s := synth.NewSynthesizer(
		synth.NewSource(cfg.Seed),
		cfg.SeriesConfig(),
		cfg.PredictionConfig(),
		func() time.Time { return time.Now().In(loc) },
	)
	db := repository.NewDatabase(s)

	log.Debug().
		Str("config", *configPath).
		Str("currency", cfg.Currency).
		Str("timezone", loc.String()).
		Uint64("seed", cfg.Seed).
		Msg("Configuration loaded")

	return &app{
		cfg:    cfg,
		log:    log,
		synth:  s,
		engine: dashboard.NewEngine(&db, s, log),
	}, nil
}

func printMarkdown(md string) {
	out, err := dashboard.RenderMarkdown(md, *markdownStyle, reportWidth)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error rendering report: %v\n", err)
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}

func writeFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
