package stats

import (
	"fmt"

	"stocksense/types"

	"github.com/shopspring/decimal"
)

// MovingAverage returns the simple moving average of the price over window
// points; the first value covers points[0:window].
func MovingAverage(points []types.PricePoint, window int) ([]decimal.Decimal, error) {
	if window < 1 || window > len(points) {
		return nil, fmt.Errorf("moving average window %d over %d points", window, len(points))
	}
	n := decimal.NewFromInt(int64(window))
	sum := decimal.Zero
	out := make([]decimal.Decimal, 0, len(points)-window+1)
	for i, p := range points {
		sum = sum.Add(p.Price)
		if i >= window {
			sum = sum.Sub(points[i-window].Price)
		}
		if i >= window-1 {
			out = append(out, sum.Div(n))
		}
	}
	return out, nil
}

// DonchianChannel returns the highest high and lowest low of the last window
// points, excluding the most recent one.
func DonchianChannel(points []types.PricePoint, window int) (decimal.Decimal, decimal.Decimal, error) {
	if window < 1 || len(points) < window+1 {
		return decimal.Zero, decimal.Zero, fmt.Errorf("donchian window %d needs %d points, have %d", window, window+1, len(points))
	}
	channel := points[len(points)-window-1 : len(points)-1]

	highest := channel[0].High
	lowest := channel[0].Low
	for _, p := range channel {
		if p.High.GreaterThan(highest) {
			highest = p.High
		}
		if p.Low.LessThan(lowest) {
			lowest = p.Low
		}
	}
	return highest, lowest, nil
}

// ATR is the Wilder-smoothed average true range over period.
func ATR(points []types.PricePoint, period int) (decimal.Decimal, error) {
	if period < 1 || len(points) < period+1 {
		return decimal.Zero, fmt.Errorf("atr period %d needs %d points, have %d", period, period+1, len(points))
	}

	trueRanges := make([]decimal.Decimal, 0, len(points)-1)
	for i := 1; i < len(points); i++ {
		high := points[i].High
		low := points[i].Low
		prevClose := points[i-1].Close

		trueRanges = append(trueRanges, decimal.Max(
			high.Sub(low),
			high.Sub(prevClose).Abs(),
			low.Sub(prevClose).Abs(),
		))
	}

	n := decimal.NewFromInt(int64(period))
	atr := decimal.Zero
	for _, tr := range trueRanges[:period] {
		atr = atr.Add(tr)
	}
	atr = atr.Div(n)

	for i := period; i < len(trueRanges); i++ {
		atr = atr.Mul(decimal.NewFromInt(int64(period - 1))).Add(trueRanges[i]).Div(n)
	}
	return atr, nil
}
