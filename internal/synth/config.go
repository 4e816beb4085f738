package synth

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var ErrInvalidParameter = errors.New("invalid parameter")

// SeriesConfig tunes the historical random walk.
type SeriesConfig struct {
	step         float64
	volatility   float64
	floor        decimal.Decimal
	highSpread   float64
	lowSpread    float64
	openSpread   float64
	minVolume    int64
	maxVolume    int64
	basePriceMin float64
	basePriceMax float64
}

func NewSeriesConfig(step, volatility, floor, highSpread, lowSpread, openSpread float64, minVolume, maxVolume int64) *SeriesConfig {
	return &SeriesConfig{
		step:         step,
		volatility:   volatility,
		floor:        decimal.NewFromFloat(floor),
		highSpread:   highSpread,
		lowSpread:    lowSpread,
		openSpread:   openSpread,
		minVolume:    minVolume,
		maxVolume:    maxVolume,
		basePriceMin: 1500,
		basePriceMax: 3500,
	}
}

// DefaultSeriesConfig matches the dashboard chart: daily moves within ±5, a floor of 10
// and volumes between one and eleven million.
func DefaultSeriesConfig() *SeriesConfig {
	return NewSeriesConfig(5, 1, 10, 5, 5, 1.5, 1_000_000, 11_000_000)
}

// WithBasePriceRange sets the range random starting prices are drawn from.
func (c *SeriesConfig) WithBasePriceRange(lo, hi float64) *SeriesConfig {
	c.basePriceMin = lo
	c.basePriceMax = hi
	return c
}

func (c *SeriesConfig) Floor() decimal.Decimal {
	return c.floor
}

func (c *SeriesConfig) Validate() error {
	switch {
	case c.step < 0:
		return fmt.Errorf("series step %v: %w", c.step, ErrInvalidParameter)
	case c.volatility < 0:
		return fmt.Errorf("series volatility %v: %w", c.volatility, ErrInvalidParameter)
	case !c.floor.IsPositive():
		return fmt.Errorf("series floor %s: %w", c.floor, ErrInvalidParameter)
	case c.highSpread < 0 || c.lowSpread < 0 || c.openSpread < 0:
		return fmt.Errorf("series spreads must be non-negative: %w", ErrInvalidParameter)
	case c.minVolume < 0 || c.maxVolume <= c.minVolume:
		return fmt.Errorf("volume range [%d, %d): %w", c.minVolume, c.maxVolume, ErrInvalidParameter)
	case c.basePriceMin <= 0 || c.basePriceMax < c.basePriceMin:
		return fmt.Errorf("base price range [%v, %v): %w", c.basePriceMin, c.basePriceMax, ErrInvalidParameter)
	}
	return nil
}

// PredictionConfig tunes the prediction chart. The confidence schedule is fixed
// and is not part of the config.
type PredictionConfig struct {
	historyStep  float64
	drift        float64
	forecastStep float64
	floor        decimal.Decimal
}

func NewPredictionConfig(historyStep, drift, forecastStep, floor float64) *PredictionConfig {
	return &PredictionConfig{
		historyStep:  historyStep,
		drift:        drift,
		forecastStep: forecastStep,
		floor:        decimal.NewFromFloat(floor),
	}
}

// DefaultPredictionConfig: history moves within ±4, forecast drifts up 0.02 a day
// with ±3 noise, floor 10.
func DefaultPredictionConfig() *PredictionConfig {
	return NewPredictionConfig(4, 0.02, 3, 10)
}

func (c *PredictionConfig) Floor() decimal.Decimal {
	return c.floor
}

func (c *PredictionConfig) Validate() error {
	switch {
	case c.historyStep < 0:
		return fmt.Errorf("history step %v: %w", c.historyStep, ErrInvalidParameter)
	case c.forecastStep < 0:
		return fmt.Errorf("forecast step %v: %w", c.forecastStep, ErrInvalidParameter)
	case !c.floor.IsPositive():
		return fmt.Errorf("prediction floor %s: %w", c.floor, ErrInvalidParameter)
	}
	return nil
}
