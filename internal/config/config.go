// Package config loads stocksense settings from defaults, TOML files, a .env
// file and STOCKSENSE_* environment variables, in that order.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"stocksense/internal/synth"
	"stocksense/types"

	money "github.com/Rhymond/go-money"
	"github.com/joho/godotenv"
	toml "github.com/pelletier/go-toml/v2"
)

var ErrInvalidConfig = errors.New("invalid config")

const envPrefix = "STOCKSENSE_"

// Config holds all configuration for stocksense
type Config struct {
	LogLevel        string           `toml:"log_level"`
	LogPretty       bool             `toml:"log_pretty"`
	Currency        string           `toml:"currency"`
	Timezone        string           `toml:"timezone"`
	RefreshInterval int              `toml:"refresh_interval"` // seconds, 0 = manual only
	Seed            uint64           `toml:"seed"`             // 0 = seeded from the clock
	Chart           ChartConfig      `toml:"chart"`
	Series          SeriesConfig     `toml:"series"`
	Prediction      PredictionConfig `toml:"prediction"`
}

// ChartConfig holds the chart preferences from the settings page
type ChartConfig struct {
	Type   string `toml:"type"`
	Range  string `toml:"range"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
}

// SeriesConfig tunes the historical random walk
type SeriesConfig struct {
	Step         float64 `toml:"step"`
	Volatility   float64 `toml:"volatility"`
	Floor        float64 `toml:"floor"`
	HighSpread   float64 `toml:"high_spread"`
	LowSpread    float64 `toml:"low_spread"`
	OpenSpread   float64 `toml:"open_spread"`
	MinVolume    int64   `toml:"min_volume"`
	MaxVolume    int64   `toml:"max_volume"`
	BasePriceMin float64 `toml:"base_price_min"`
	BasePriceMax float64 `toml:"base_price_max"`
}

// PredictionConfig tunes the prediction chart
type PredictionConfig struct {
	HistoryStep  float64 `toml:"history_step"`
	Drift        float64 `toml:"drift"`
	ForecastStep float64 `toml:"forecast_step"`
	Floor        float64 `toml:"floor"`
	PastDays     int     `toml:"past_days"`
	FutureDays   int     `toml:"future_days"`
}

// NewDefaultConfig returns a Config matching the dashboard defaults
func NewDefaultConfig() *Config {
	return &Config{
		LogLevel:        "info",
		Currency:        money.INR,
		Timezone:        "America/New_York",
		RefreshInterval: 30,
		Chart: ChartConfig{
			Type:   string(types.ChartLine),
			Range:  string(types.OneMonth),
			Width:  1024,
			Height: 480,
		},
		Series: SeriesConfig{
			Step:         5,
			Volatility:   1,
			Floor:        10,
			HighSpread:   5,
			LowSpread:    5,
			OpenSpread:   1.5,
			MinVolume:    1_000_000,
			MaxVolume:    11_000_000,
			BasePriceMin: 1500,
			BasePriceMax: 3500,
		},
		Prediction: PredictionConfig{
			HistoryStep:  4,
			Drift:        0.02,
			ForecastStep: 3,
			Floor:        10,
			PastDays:     30,
			FutureDays:   30,
		},
	}
}

// Load merges each config file over the defaults (later files override earlier,
// missing files are skipped), then applies .env and environment overrides.
func Load(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	for _, path := range paths {
		if path == "" {
			continue
		}

		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	// Load .env file if it exists
	_ = godotenv.Load()

	if err := applyEnvOverrides(config); err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func applyEnvOverrides(config *Config) error {
	if v := getEnv("LOG_LEVEL"); v != "" {
		config.LogLevel = v
	}
	if v := getEnv("LOG_PRETTY"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return envError("LOG_PRETTY", v, err)
		}
		config.LogPretty = b
	}
	if v := getEnv("CURRENCY"); v != "" {
		config.Currency = v
	}
	if v := getEnv("TIMEZONE"); v != "" {
		config.Timezone = v
	}
	if v := getEnv("REFRESH_INTERVAL"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return envError("REFRESH_INTERVAL", v, err)
		}
		config.RefreshInterval = n
	}
	if v := getEnv("SEED"); v != "" {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return envError("SEED", v, err)
		}
		config.Seed = n
	}
	if v := getEnv("CHART_TYPE"); v != "" {
		config.Chart.Type = v
	}
	if v := getEnv("CHART_RANGE"); v != "" {
		config.Chart.Range = v
	}
	return nil
}

func getEnv(key string) string {
	return strings.TrimSpace(os.Getenv(envPrefix + key))
}

func envError(key, value string, err error) error {
	return fmt.Errorf("%s%s=%q: %w", envPrefix, key, value, errors.Join(ErrInvalidConfig, err))
}

// Validate normalizes case-insensitive fields and rejects unknown values.
func (c *Config) Validate() error {
	c.Currency = strings.ToUpper(c.Currency)
	if money.GetCurrency(c.Currency) == nil {
		return fmt.Errorf("currency %q: %w", c.Currency, ErrInvalidConfig)
	}
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		return fmt.Errorf("timezone %q: %w", c.Timezone, errors.Join(ErrInvalidConfig, err))
	}
	if c.RefreshInterval < 0 {
		return fmt.Errorf("refresh interval %d: %w", c.RefreshInterval, ErrInvalidConfig)
	}

	c.Chart.Type = strings.ToLower(c.Chart.Type)
	if _, ok := types.ConvertChartType[c.Chart.Type]; !ok {
		return fmt.Errorf("chart type %q: %w", c.Chart.Type, ErrInvalidConfig)
	}
	c.Chart.Range = strings.ToUpper(c.Chart.Range)
	if _, ok := types.ConvertRange[c.Chart.Range]; !ok {
		return fmt.Errorf("chart range %q: %w", c.Chart.Range, ErrInvalidConfig)
	}
	if c.Chart.Width <= 0 || c.Chart.Height <= 0 {
		return fmt.Errorf("chart size %dx%d: %w", c.Chart.Width, c.Chart.Height, ErrInvalidConfig)
	}

	if c.Prediction.PastDays < 0 || c.Prediction.FutureDays < 0 {
		return fmt.Errorf("prediction days %d/%d: %w", c.Prediction.PastDays, c.Prediction.FutureDays, ErrInvalidConfig)
	}
	if err := c.SeriesConfig().Validate(); err != nil {
		return errors.Join(ErrInvalidConfig, err)
	}
	if err := c.PredictionConfig().Validate(); err != nil {
		return errors.Join(ErrInvalidConfig, err)
	}
	return nil
}

func (c *Config) SeriesConfig() *synth.SeriesConfig {
	s := c.Series
	return synth.NewSeriesConfig(s.Step, s.Volatility, s.Floor, s.HighSpread, s.LowSpread, s.OpenSpread, s.MinVolume, s.MaxVolume).
		WithBasePriceRange(s.BasePriceMin, s.BasePriceMax)
}

func (c *Config) PredictionConfig() *synth.PredictionConfig {
	p := c.Prediction
	return synth.NewPredictionConfig(p.HistoryStep, p.Drift, p.ForecastStep, p.Floor)
}

func (c *Config) ChartRange() types.Range {
	return types.ConvertRange[strings.ToUpper(c.Chart.Range)]
}

func (c *Config) ChartType() types.ChartType {
	return types.ConvertChartType[strings.ToLower(c.Chart.Type)]
}

// Refresh returns the refresh interval; zero means refresh on demand only.
func (c *Config) Refresh() time.Duration {
	return time.Duration(c.RefreshInterval) * time.Second
}

// Location resolves Timezone, falling back to UTC when it cannot be loaded.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
