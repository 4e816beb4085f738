package synth

import (
	"math/rand/v2"
	"time"

	"stocksense/types"

	"github.com/shopspring/decimal"
)

// Synthesizer binds a random source, generator configs and a clock so view code
// can call the generators without threading them through. It holds no series state.
type Synthesizer struct {
	src        rand.Source
	series     *SeriesConfig
	prediction *PredictionConfig
	now        func() time.Time
}

func NewSynthesizer(src rand.Source, series *SeriesConfig, prediction *PredictionConfig, now func() time.Time) *Synthesizer {
	if series == nil {
		series = DefaultSeriesConfig()
	}
	if prediction == nil {
		prediction = DefaultPredictionConfig()
	}
	if now == nil {
		now = time.Now
	}
	return &Synthesizer{
		src:        src,
		series:     series,
		prediction: prediction,
		now:        now,
	}
}

func (s *Synthesizer) Today() time.Time {
	return startOfDay(s.now())
}

func (s *Synthesizer) Source() rand.Source {
	return s.src
}

func (s *Synthesizer) Historical(days int, basePrice decimal.Decimal) ([]types.PricePoint, error) {
	return GenerateHistoricalSeries(s.src, s.series, HistoricalParams{
		Days:      days,
		BasePrice: basePrice,
		Today:     s.now(),
	})
}

func (s *Synthesizer) Prediction(pastDays, futureDays int, currentPrice decimal.Decimal) ([]types.PredictionPoint, error) {
	return GeneratePredictionSeries(s.src, s.prediction, PredictionParams{
		PastDays:     pastDays,
		FutureDays:   futureDays,
		CurrentPrice: currentPrice,
		Today:        s.now(),
	})
}

func (s *Synthesizer) BasePrice() decimal.Decimal {
	return RandomBasePrice(s.src, s.series)
}

func (s *Synthesizer) Holding(symbol string, alertPrice decimal.NullDecimal) (types.Holding, error) {
	return SynthesizeHolding(s.src, symbol, alertPrice, s.now())
}
