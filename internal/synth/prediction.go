package synth

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"stocksense/types"

	"github.com/shopspring/decimal"
)

const (
	fullConfidence  = 100
	confidenceDecay = 2
	confidenceFloor = 20
)

var ErrNoForecast = errors.New("series has no predicted value")

type PredictionParams struct {
	PastDays     int
	FutureDays   int
	CurrentPrice decimal.Decimal
	Today        time.Time
}

// Confidence is the stated certainty for the forecast day offset by day from
// today: 100 - 2*day, never below 20.
func Confidence(day int) int {
	return max(fullConfidence-day*confidenceDecay, confidenceFloor)
}

// GeneratePredictionSeries returns PastDays historical points, one current point
// and FutureDays predicted points, in date order.
func GeneratePredictionSeries(src rand.Source, cfg *PredictionConfig, p PredictionParams) ([]types.PredictionPoint, error) {
	if cfg == nil {
		cfg = DefaultPredictionConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if p.PastDays < 0 {
		return nil, fmt.Errorf("past days %d: %w", p.PastDays, ErrInvalidParameter)
	}
	if p.FutureDays < 0 {
		return nil, fmt.Errorf("future days %d: %w", p.FutureDays, ErrInvalidParameter)
	}
	if !p.CurrentPrice.IsPositive() {
		return nil, fmt.Errorf("current price %s: %w", p.CurrentPrice, ErrInvalidParameter)
	}

	today := startOfDay(p.Today)
	points := make([]types.PredictionPoint, 0, p.PastDays+1+p.FutureDays)

	price := p.CurrentPrice
	for i := -p.PastDays; i < 0; i++ {
		price = decimal.Max(price.Add(symmetric(src, cfg.historyStep)), cfg.floor)
		points = append(points, types.PredictionPoint{
			Date:   today.AddDate(0, 0, i),
			Actual: decimal.NewNullDecimal(price),
			Kind:   types.PointHistorical,
		})
	}

	full := fullConfidence
	points = append(points, types.PredictionPoint{
		Date:       today,
		Actual:     decimal.NewNullDecimal(p.CurrentPrice),
		Predicted:  decimal.NewNullDecimal(p.CurrentPrice),
		Confidence: &full,
		Kind:       types.PointCurrent,
	})

	drift := decimal.NewFromFloat(cfg.drift)
	price = p.CurrentPrice
	for i := 1; i <= p.FutureDays; i++ {
		price = decimal.Max(price.Add(drift).Add(symmetric(src, cfg.forecastStep)), cfg.floor)
		confidence := Confidence(i)
		points = append(points, types.PredictionPoint{
			Date:       today.AddDate(0, 0, i),
			Predicted:  decimal.NewNullDecimal(price),
			Confidence: &confidence,
			Kind:       types.PointPredicted,
		})
	}
	return points, nil
}

// Summarize derives the summary cards from a prediction series: the last
// predicted value against currentPrice.
func Summarize(points []types.PredictionPoint, currentPrice decimal.Decimal) (types.ForecastSummary, error) {
	if !currentPrice.IsPositive() {
		return types.ForecastSummary{}, fmt.Errorf("current price %s: %w", currentPrice, ErrInvalidParameter)
	}
	if len(points) == 0 || !points[len(points)-1].Predicted.Valid {
		return types.ForecastSummary{}, ErrNoForecast
	}

	predicted := points[len(points)-1].Predicted.Decimal
	change := predicted.Sub(currentPrice)
	outlook := types.OutlookBearish
	if change.IsPositive() {
		outlook = types.OutlookBullish
	}
	return types.ForecastSummary{
		CurrentPrice:   currentPrice,
		PredictedPrice: predicted,
		Change:         change,
		ChangePercent:  change.Div(currentPrice).Mul(decimal.NewFromInt(100)),
		Outlook:        outlook,
	}, nil
}
