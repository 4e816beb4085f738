package dashboard

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"io"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"stocksense/internal/monitor"
	"stocksense/internal/portfolio"
	"stocksense/internal/repository"
	"stocksense/internal/synth"
	"stocksense/types"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 3, 15, 14, 30, 0, 0, time.UTC)

func newTestEngine() *Engine {
	s := synth.NewSynthesizer(rand.NewPCG(1, 2), nil, nil, func() time.Time { return testNow })
	db := repository.NewDatabase(s)
	return NewEngine(&db, s, zerolog.Nop())
}

func TestEngine_ChartKnownSymbol(t *testing.T) {
	e := newTestEngine()
	v, err := e.Chart(context.Background(), "reliance", types.OneMonth)
	require.NoError(t, err)

	assert.Equal(t, "RELIANCE", v.Chart.Symbol)
	require.Len(t, v.Chart.Points, 30)
	first := v.Chart.Points[0].Price
	assert.True(t, first.Sub(decimal.RequireFromString("2847.50")).Abs().LessThanOrEqual(decimal.NewFromInt(5)),
		"series starts from the ticker price, got %s", first)

	assert.Len(t, v.MovingAverage, 30-smaWindow+1)
	assert.Equal(t, smaWindow, v.SMAWindow)
	assert.True(t, v.ChannelHigh.Valid)
	assert.True(t, v.ATR.Valid)
	assert.True(t, v.Summary.Current.Equal(v.Chart.Points[29].Price))
}

func TestEngine_ChartShortRange(t *testing.T) {
	e := newTestEngine()
	v, err := e.Chart(context.Background(), "TCS", types.OneDay)
	require.NoError(t, err)

	require.Len(t, v.Chart.Points, 1)
	assert.True(t, v.Summary.Change.IsZero())
	assert.Empty(t, v.MovingAverage)
	assert.False(t, v.ChannelHigh.Valid)
	assert.False(t, v.ATR.Valid)
}

func TestEngine_ChartUnknownSymbolUsesRandomBase(t *testing.T) {
	e := newTestEngine()
	v, err := e.Chart(context.Background(), "aapl", types.OneWeek)
	require.NoError(t, err)

	require.Len(t, v.Chart.Points, 7)
	first := v.Chart.Points[0].Price
	assert.True(t, first.GreaterThanOrEqual(decimal.NewFromInt(1495)), first.String())
	assert.True(t, first.LessThanOrEqual(decimal.NewFromInt(3505)), first.String())
}

func TestEngine_ChartErrors(t *testing.T) {
	e := newTestEngine()
	_, err := e.Chart(context.Background(), "  ", types.OneMonth)
	assert.ErrorIs(t, err, ErrEmptySymbol)

	_, err = e.Chart(context.Background(), "INFY", types.Range("3M"))
	assert.ErrorIs(t, err, repository.ErrRangeNotSupported)
}

type failingStore struct {
	dataStore
	err error
}

func (f failingStore) GetQuoteBySymbol(context.Context, string) (*types.Quote, error) {
	return nil, f.err
}

func (f failingStore) GetDefaultWatchlist(context.Context) ([]types.Holding, error) {
	return nil, f.err
}

func TestEngine_StoreErrorsPropagate(t *testing.T) {
	errDown := errors.New("store down")
	s := synth.NewSynthesizer(rand.NewPCG(1, 2), nil, nil, func() time.Time { return testNow })
	e := NewEngine(failingStore{err: errDown}, s, zerolog.Nop())

	_, err := e.Chart(context.Background(), "INFY", types.OneMonth)
	assert.ErrorIs(t, err, errDown)
	_, err = e.Prediction(context.Background(), "INFY", 5, 5)
	assert.ErrorIs(t, err, errDown)
	_, err = e.Watchlist(context.Background())
	assert.ErrorIs(t, err, errDown)
}

func TestEngine_Prediction(t *testing.T) {
	e := newTestEngine()
	v, err := e.Prediction(context.Background(), "reliance", 30, 7)
	require.NoError(t, err)

	assert.Equal(t, "RELIANCE", v.Symbol)
	require.Len(t, v.Points, 38)
	current := v.Points[30]
	assert.Equal(t, types.PointCurrent, current.Kind)
	assert.Equal(t, "2847.5", current.Actual.Decimal.String())

	require.NotNil(t, v.Summary)
	assert.Equal(t, "2847.5", v.Summary.CurrentPrice.String())
	assert.True(t, v.Summary.PredictedPrice.Equal(v.Points[37].Predicted.Decimal))
	assert.Len(t, v.Models, 3)

	_, err = e.Prediction(context.Background(), "INFY", -1, 7)
	assert.ErrorIs(t, err, synth.ErrInvalidParameter)
}

func TestEngine_Watchlist(t *testing.T) {
	e := newTestEngine()
	ctx := context.Background()

	v, err := e.Watchlist(ctx)
	require.NoError(t, err)
	require.Len(t, v.Holdings, 3)
	assert.Equal(t, "699.58", v.Aggregate.TotalValue.String())
	assert.Equal(t, "5.89", v.Aggregate.TotalChange.String())
	require.True(t, v.ChangePercent.Valid)
	assert.Empty(t, v.Alerts)

	h, err := e.AddToWatchlist(ctx, "tsla", decimal.NullDecimal{})
	require.NoError(t, err)
	assert.Equal(t, "TSLA", h.Symbol)
	assert.Equal(t, "TSLA Corp.", h.Name)

	v, err = e.Watchlist(ctx)
	require.NoError(t, err)
	assert.Len(t, v.Holdings, 4)

	n, err := e.RemoveFromWatchlist(ctx, "googl")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	n, err = e.RemoveFromWatchlist(ctx, "NFLX")
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	v, err = e.Watchlist(ctx)
	require.NoError(t, err)
	assert.Len(t, v.Holdings, 3)

	_, err = e.AddToWatchlist(ctx, "", decimal.NullDecimal{})
	assert.ErrorIs(t, err, ErrEmptySymbol)
}

type staticWatchlistStore struct {
	dataStore
	holdings []types.Holding
}

func (s staticWatchlistStore) GetDefaultWatchlist(context.Context) ([]types.Holding, error) {
	return s.holdings, nil
}

func TestEngine_WatchlistRejectsNonPositivePrice(t *testing.T) {
	s := synth.NewSynthesizer(rand.NewPCG(1, 2), nil, nil, func() time.Time { return testNow })
	store := staticWatchlistStore{holdings: []types.Holding{
		{Symbol: "FREE", Price: decimal.Zero, Change: decimal.NewFromInt(5)},
	}}
	e := NewEngine(store, s, zerolog.Nop())

	_, err := e.Watchlist(context.Background())
	assert.ErrorIs(t, err, types.ErrInvalidPrice)
	_, err = e.AddToWatchlist(context.Background(), "TSLA", decimal.NullDecimal{})
	assert.ErrorIs(t, err, types.ErrInvalidPrice)
}

func TestEngine_WatchlistEmpty(t *testing.T) {
	e := newTestEngine()
	ctx := context.Background()
	for _, s := range []string{"AAPL", "GOOGL", "MSFT"} {
		_, err := e.RemoveFromWatchlist(ctx, s)
		require.NoError(t, err)
	}

	v, err := e.Watchlist(ctx)
	require.NoError(t, err)
	assert.Empty(t, v.Holdings)
	assert.True(t, v.Aggregate.TotalValue.IsZero())
	assert.False(t, v.ChangePercent.Valid)
	assert.Contains(t, WatchlistMarkdown(v, "INR"), "n/a")
}

func TestEngine_Ticker(t *testing.T) {
	e := newTestEngine()
	quotes, err := e.Ticker(context.Background(), "bank", portfolio.SortGainers)
	require.NoError(t, err)
	require.Len(t, quotes, 2)
	assert.Equal(t, "ICICIBANK", quotes[0].Symbol)
	assert.Equal(t, "HDFCBANK", quotes[1].Symbol)
}

func TestEngine_Export(t *testing.T) {
	e := newTestEngine()
	dir := filepath.Join(t.TempDir(), "out")

	paths, err := e.Export(context.Background(), dir, types.OneWeek, io.Discard)
	require.NoError(t, err)
	require.Len(t, paths, 8)
	assert.Equal(t, filepath.Join(dir, "reliance_1W.csv"), paths[0])

	f, err := os.Open(paths[0])
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 8)
	assert.Equal(t, []string{"symbol", "date", "open", "high", "low", "close", "volume"}, records[0])
	assert.Equal(t, "RELIANCE", records[1][0])
	assert.Equal(t, "2024-03-14", records[7][1])
}

func TestEngine_ExportCancelled(t *testing.T) {
	e := newTestEngine()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := e.Export(ctx, t.TempDir(), types.OneWeek, io.Discard)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWriteSeriesCSV(t *testing.T) {
	p := decimal.RequireFromString("101.5")
	c := types.NewChart("ITC", types.OneDay, []types.PricePoint{{
		Date:   time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC),
		Price:  p,
		Open:   decimal.NewFromInt(100),
		High:   decimal.NewFromInt(103),
		Low:    decimal.NewFromInt(99),
		Close:  p,
		Volume: 1234567,
	}})

	var buf bytes.Buffer
	require.NoError(t, WriteSeriesCSV(&buf, c))
	assert.Equal(t,
		"symbol,date,open,high,low,close,volume\nITC,2024-03-14,100.00,103.00,99.00,101.50,1234567\n",
		buf.String())
}

func TestWritePredictionCSV(t *testing.T) {
	points, err := synth.GeneratePredictionSeries(rand.NewPCG(1, 2), nil, synth.PredictionParams{
		PastDays:     1,
		FutureDays:   1,
		CurrentPrice: decimal.NewFromInt(100),
		Today:        testNow,
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WritePredictionCSV(&buf, "X", points))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4)
	assert.Equal(t, "historical", records[1][2])
	assert.Empty(t, records[1][4], "historical rows have no prediction")
	assert.Empty(t, records[1][5])
	assert.Equal(t, []string{"X", "2024-03-15", "current", "100.00", "100.00", "100"}, records[2])
	assert.Empty(t, records[3][3], "predicted rows have no actual")
	assert.Equal(t, "98", records[3][5])
}

func TestMoney(t *testing.T) {
	tests := []struct {
		amount   string
		currency string
		want     string
	}{
		{"2847.50", "INR", "₹2,847.50"},
		{"0.005", "INR", "₹0.01"},
		{"-12.30", "INR", "-₹12.30"},
		{"182.52", "USD", "$182.52"},
		{"182.52", "NOPE", "182.52"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Money(decimal.RequireFromString(tt.amount), tt.currency), tt.amount)
	}
	assert.Equal(t, "+₹35.20", SignedMoney(decimal.RequireFromString("35.2"), "INR"))
	assert.Equal(t, "₹0.00", SignedMoney(decimal.Zero, "INR"))
}

func TestMarkdown(t *testing.T) {
	e := newTestEngine()
	ctx := context.Background()

	chart, err := e.Chart(ctx, "INFY", types.OneMonth)
	require.NoError(t, err)
	md := ChartMarkdown(chart, "INR")
	assert.Contains(t, md, "# INFY (1M)")
	assert.Contains(t, md, "| SMA 20 |")
	assert.Contains(t, md, "₹")
	assert.Contains(t, md, "## News")
	assert.Contains(t, md, "**INFY Reports Strong Q4 Earnings** [positive]")
	assert.Contains(t, md, "[negative]")

	pred, err := e.Prediction(ctx, "INFY", 5, 3)
	require.NoError(t, err)
	md = PredictionMarkdown(pred, "INR")
	assert.Contains(t, md, "# INFY predictions")
	assert.Contains(t, md, "Multi-Indicator Analysis")
	assert.Equal(t, 4, strings.Count(md, "% |\n"), "current and three predicted rows carry a confidence")

	w, err := e.Watchlist(ctx)
	require.NoError(t, err)
	md = WatchlistMarkdown(w, "USD")
	assert.Contains(t, md, "| AAPL | Apple Inc. | $182.52 |")
	assert.Contains(t, md, "**Total value** $699.58")

	quotes, err := e.Ticker(ctx, "zzz", portfolio.SortNone)
	require.NoError(t, err)
	assert.Contains(t, TickerMarkdown(quotes, "INR"), "No matching symbols.")

	live := monitor.NewLive(rand.NewPCG(1, 2), nil, zerolog.Nop())
	require.NoError(t, live.Run())
	md = MonitorMarkdown(MonitorSnapshot(live, nil))
	assert.Contains(t, md, "refresh 1")
	assert.Contains(t, md, "Bullish")
	assert.Contains(t, md, "**Network** ")
	assert.NotContains(t, md, "offline")

	assert.NotContains(t, md, "MARKET")

	md = MonitorMarkdown(MonitorSnapshot(monitor.NewLive(rand.NewPCG(1, 2), nil, zerolog.Nop()), nil))
	assert.Contains(t, md, "**Network** offline")

	market := monitor.NewMarketWatch(func() time.Time { return testNow }, zerolog.Nop())
	md = MonitorMarkdown(MonitorSnapshot(live, market))
	assert.NotContains(t, md, "MARKET", "no status before the first check")

	require.NoError(t, market.Run())
	md = MonitorMarkdown(MonitorSnapshot(live, market))
	assert.Contains(t, md, "**MARKET OPEN - Live Trading**")
}

func TestRenderMarkdown(t *testing.T) {
	out, err := RenderMarkdown("# Watchlist\n\n| A | B |\n|---|---|\n| 1 | 2 |\n", "notty", 80)
	require.NoError(t, err)
	assert.Contains(t, out, "Watchlist")
	assert.Contains(t, out, "1")
}
