package synth

import (
	"fmt"
	"math/rand/v2"
	"time"

	"stocksense/types"

	"github.com/shopspring/decimal"
)

type HistoricalParams struct {
	Days      int
	BasePrice decimal.Decimal
	Today     time.Time
}

// GenerateHistoricalSeries walks a price from BasePrice over the Days days before
// Today, oldest first. Every price is clamped to the config floor, and each point
// satisfies Low <= Open, Close <= High.
func GenerateHistoricalSeries(src rand.Source, cfg *SeriesConfig, p HistoricalParams) ([]types.PricePoint, error) {
	if cfg == nil {
		cfg = DefaultSeriesConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if p.Days < 1 {
		return nil, fmt.Errorf("days %d: %w", p.Days, ErrInvalidParameter)
	}
	if !p.BasePrice.IsPositive() {
		return nil, fmt.Errorf("base price %s: %w", p.BasePrice, ErrInvalidParameter)
	}

	today := startOfDay(p.Today)
	width := cfg.step * cfg.volatility
	price := p.BasePrice
	points := make([]types.PricePoint, 0, p.Days)

	for i := 0; i < p.Days; i++ {
		price = decimal.Max(price.Add(symmetric(src, width)), cfg.floor)

		high := price.Add(uniformDecimal(src, 0, cfg.highSpread))
		low := decimal.Max(price.Sub(uniformDecimal(src, 0, cfg.lowSpread)), cfg.floor)
		open := clamp(price.Add(symmetric(src, cfg.openSpread)), low, high)

		points = append(points, types.PricePoint{
			Date:   today.AddDate(0, 0, -(p.Days - i)),
			Price:  price,
			Volume: uniformInt(src, cfg.minVolume, cfg.maxVolume),
			Open:   open,
			High:   high,
			Low:    low,
			Close:  price,
		})
	}
	return points, nil
}

// RandomBasePrice draws a starting price from the config's base price range.
func RandomBasePrice(src rand.Source, cfg *SeriesConfig) decimal.Decimal {
	if cfg == nil {
		cfg = DefaultSeriesConfig()
	}
	return uniformDecimal(src, cfg.basePriceMin, cfg.basePriceMax).Round(2)
}

func clamp(v, lo, hi decimal.Decimal) decimal.Decimal {
	return decimal.Min(decimal.Max(v, lo), hi)
}
