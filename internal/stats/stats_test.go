package stats

import (
	"testing"
	"time"

	"stocksense/types"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var start = time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

// series builds daily points one unit either side of each price.
func series(prices ...float64) []types.PricePoint {
	out := make([]types.PricePoint, len(prices))
	for i, p := range prices {
		price := decimal.NewFromFloat(p)
		out[i] = types.PricePoint{
			Date:   start.AddDate(0, 0, i),
			Price:  price,
			Volume: int64(1000 * (i + 1)),
			Open:   price,
			High:   price.Add(decimal.NewFromInt(1)),
			Low:    price.Sub(decimal.NewFromInt(1)),
			Close:  price,
		}
	}
	return out
}

func TestSummarize(t *testing.T) {
	s, err := Summarize(series(100, 110, 99, 120))
	require.NoError(t, err)

	assert.True(t, s.Current.Equal(decimal.NewFromInt(120)))
	assert.True(t, s.Previous.Equal(decimal.NewFromInt(99)))
	assert.True(t, s.Change.Equal(decimal.NewFromInt(21)))
	assert.Equal(t, "21.21", s.ChangePercent.StringFixed(2))
	assert.True(t, s.High.Equal(decimal.NewFromInt(121)))
	assert.True(t, s.Low.Equal(decimal.NewFromInt(98)))
	require.True(t, s.RangePosition.Valid)
	assert.Equal(t, "95.65", s.RangePosition.Decimal.StringFixed(2))
	assert.InDelta(t, 107.25, s.MeanPrice, 1e-9)
	assert.Equal(t, int64(2500), s.AverageVolume)
	assert.True(t, s.MaxDrawdown.Equal(decimal.NewFromInt(11)))
	assert.Equal(t, "0.1", s.MaxDrawdownPercent.String())
	assert.Equal(t, 24*time.Hour, s.MaxDrawdownPeriod)
	assert.Greater(t, s.Volatility, 0.0)
}

func TestSummarizeSinglePoint(t *testing.T) {
	s, err := Summarize(series(250))
	require.NoError(t, err)

	assert.True(t, s.Previous.Equal(s.Current))
	assert.True(t, s.Change.IsZero())
	assert.True(t, s.ChangePercent.IsZero())
	require.True(t, s.RangePosition.Valid)
	assert.Equal(t, "50", s.RangePosition.Decimal.String())
	assert.Zero(t, s.Volatility)
}

func TestSummarizeFlatRange(t *testing.T) {
	points := series(10, 10)
	for i := range points {
		points[i].High = points[i].Price
		points[i].Low = points[i].Price
	}
	s, err := Summarize(points)
	require.NoError(t, err)
	assert.False(t, s.RangePosition.Valid)
}

func TestSummarizeEmpty(t *testing.T) {
	_, err := Summarize(nil)
	assert.ErrorIs(t, err, ErrEmptySeries)
}

func TestVolatility(t *testing.T) {
	tests := []struct {
		name   string
		prices []float64
		want   float64
	}{
		{"empty", nil, 0},
		{"single return", []float64{100, 110}, 0},
		{"constant", []float64{50, 50, 50, 50}, 0},
		{"alternating", []float64{100, 110, 100, 110}, 0.11022141502711037},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Volatility(tt.prices), 1e-9)
		})
	}
}

func TestReturns(t *testing.T) {
	assert.Equal(t, []float64{}, Returns([]float64{1}))
	got := Returns([]float64{100, 110, 99})
	require.Len(t, got, 2)
	assert.InDelta(t, 0.1, got[0], 1e-12)
	assert.InDelta(t, -0.1, got[1], 1e-12)
}

func TestDrawdownRising(t *testing.T) {
	dd, pct, d := Drawdown(series(1, 2, 3, 4))
	assert.True(t, dd.IsZero())
	assert.True(t, pct.IsZero())
	assert.Zero(t, d)
}

func TestMovingAverage(t *testing.T) {
	got, err := MovingAverage(series(100, 110, 99, 120), 2)
	require.NoError(t, err)

	want := []string{"105", "104.5", "109.5"}
	require.Len(t, got, len(want))
	for i := range want {
		assert.Equal(t, want[i], got[i].String(), "index %d", i)
	}

	_, err = MovingAverage(series(1, 2), 3)
	assert.Error(t, err)
	_, err = MovingAverage(series(1, 2), 0)
	assert.Error(t, err)
}

func TestDonchianChannel(t *testing.T) {
	high, low, err := DonchianChannel(series(100, 110, 99, 120), 2)
	require.NoError(t, err)
	assert.Equal(t, "111", high.String())
	assert.Equal(t, "98", low.String())

	_, _, err = DonchianChannel(series(100, 110), 2)
	assert.Error(t, err)
}

func TestATR(t *testing.T) {
	atr, err := ATR(series(100, 110, 99, 120), 2)
	require.NoError(t, err)
	assert.Equal(t, "16.75", atr.String())

	_, err = ATR(series(100, 110), 2)
	assert.Error(t, err)
}
