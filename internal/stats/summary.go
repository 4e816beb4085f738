package stats

import (
	"errors"
	"math"
	"time"

	"stocksense/types"

	"github.com/shopspring/decimal"
	"gonum.org/v1/gonum/stat"
)

var ErrEmptySeries = errors.New("series has no points")

var hundred = decimal.NewFromInt(100)

// Summary holds the figures the chart header and stats cards show for a series.
type Summary struct {
	Current       decimal.Decimal
	Previous      decimal.Decimal
	Change        decimal.Decimal
	ChangePercent decimal.Decimal

	High decimal.Decimal
	Low  decimal.Decimal
	// RangePosition is where Current sits between Low and High, in percent.
	// Invalid when the series never moved.
	RangePosition decimal.NullDecimal

	MeanPrice     float64
	Volatility    float64
	AverageVolume int64

	MaxDrawdown        decimal.Decimal
	MaxDrawdownPercent decimal.Decimal
	MaxDrawdownPeriod  time.Duration
}

// Summarize computes the summary of a price series. With a single point the
// previous price is the current one and the change is zero.
func Summarize(points []types.PricePoint) (Summary, error) {
	if len(points) == 0 {
		return Summary{}, ErrEmptySeries
	}

	last := points[len(points)-1]
	s := Summary{
		Current:  last.Price,
		Previous: last.Price,
		High:     last.High,
		Low:      last.Low,
	}
	if len(points) > 1 {
		s.Previous = points[len(points)-2].Price
	}
	s.Change = s.Current.Sub(s.Previous)
	s.ChangePercent = s.Change.Div(s.Previous).Mul(hundred)

	var volume int64
	for _, p := range points {
		s.High = decimal.Max(s.High, p.High)
		s.Low = decimal.Min(s.Low, p.Low)
		volume += p.Volume
	}
	s.AverageVolume = volume / int64(len(points))

	if span := s.High.Sub(s.Low); span.IsPositive() {
		s.RangePosition = decimal.NewNullDecimal(s.Current.Sub(s.Low).Div(span).Mul(hundred))
	}

	prices := types.Prices(points)
	s.MeanPrice = stat.Mean(prices, nil)
	s.Volatility = Volatility(prices)
	s.MaxDrawdown, s.MaxDrawdownPercent, s.MaxDrawdownPeriod = Drawdown(points)
	return s, nil
}

// Returns converts prices to simple period returns.
func Returns(prices []float64) []float64 {
	if len(prices) < 2 {
		return []float64{}
	}
	out := make([]float64, len(prices)-1)
	for i := 1; i < len(prices); i++ {
		if prices[i-1] != 0 {
			out[i-1] = (prices[i] - prices[i-1]) / prices[i-1]
		}
	}
	return out
}

// Volatility is the standard deviation of period returns. Fewer than two
// returns give zero.
func Volatility(prices []float64) float64 {
	r := Returns(prices)
	if len(r) < 2 {
		return 0
	}
	v := stat.StdDev(r, nil)
	if math.IsNaN(v) {
		return 0
	}
	return v
}

// Drawdown returns the largest peak-to-trough fall of the price, as an amount,
// as a fraction of the peak, and as the time from the peak to the trough.
func Drawdown(points []types.PricePoint) (decimal.Decimal, decimal.Decimal, time.Duration) {
	if len(points) == 0 {
		return decimal.Zero, decimal.Zero, 0
	}

	peak := points[0].Price
	peakTime := points[0].Date

	maxDD := decimal.Zero
	maxDDPct := decimal.Zero
	var maxDDDuration time.Duration

	for _, p := range points {
		if p.Price.GreaterThan(peak) {
			peak = p.Price
			peakTime = p.Date
		}
		dd := peak.Sub(p.Price)
		if dd.GreaterThan(maxDD) {
			maxDD = dd
			maxDDPct = dd.Div(peak)
			maxDDDuration = p.Date.Sub(peakTime)
		}
	}
	return maxDD, maxDDPct, maxDDDuration
}
