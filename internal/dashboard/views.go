package dashboard

import (
	"context"
	"errors"
	"fmt"

	"stocksense/internal/analysis"
	"stocksense/internal/monitor"
	"stocksense/internal/portfolio"
	"stocksense/internal/stats"
	"stocksense/internal/synth"
	"stocksense/types"

	"github.com/shopspring/decimal"
)

const (
	smaWindow      = 20
	donchianWindow = 20
	atrPeriod      = 14
)

type ChartView struct {
	Chart   types.Chart
	Summary stats.Summary

	// MovingAverage is empty when the series is shorter than SMAWindow.
	MovingAverage []decimal.Decimal
	SMAWindow     int

	ChannelHigh decimal.NullDecimal
	ChannelLow  decimal.NullDecimal
	ATR         decimal.NullDecimal

	News []monitor.Headline
}

// Chart builds the price chart for symbol over r with its summary and
// indicators. Indicators that need more points than r provides are left unset.
func (e *Engine) Chart(ctx context.Context, symbol string, r types.Range) (*ChartView, error) {
	symbol, err := cleanSymbol(symbol)
	if err != nil {
		return nil, err
	}
	base, err := e.currentPrice(ctx, symbol)
	if err != nil {
		return nil, err
	}
	chart, err := e.db.GetSeries(ctx, symbol, base, r)
	if err != nil {
		return nil, fmt.Errorf("chart %s: %w", symbol, err)
	}
	summary, err := stats.Summarize(chart.Points)
	if err != nil {
		return nil, fmt.Errorf("chart %s: %w", symbol, err)
	}

	view := &ChartView{Chart: chart, Summary: summary, News: monitor.Headlines(symbol)}
	if sma, err := stats.MovingAverage(chart.Points, smaWindow); err == nil {
		view.MovingAverage = sma
		view.SMAWindow = smaWindow
	}
	if hi, lo, err := stats.DonchianChannel(chart.Points, donchianWindow); err == nil {
		view.ChannelHigh = decimal.NewNullDecimal(hi)
		view.ChannelLow = decimal.NewNullDecimal(lo)
	}
	if atr, err := stats.ATR(chart.Points, atrPeriod); err == nil {
		view.ATR = decimal.NewNullDecimal(atr)
	}

	e.log.Info().
		Str("symbol", symbol).
		Str("range", string(r)).
		Int("points", len(chart.Points)).
		Msg("Chart generated")
	return view, nil
}

type PredictionView struct {
	Symbol string
	Points []types.PredictionPoint
	// Summary is nil when the series carries no predicted value.
	Summary *types.ForecastSummary
	Models  []analysis.Model
}

func (e *Engine) Prediction(ctx context.Context, symbol string, pastDays, futureDays int) (*PredictionView, error) {
	symbol, err := cleanSymbol(symbol)
	if err != nil {
		return nil, err
	}
	current, err := e.currentPrice(ctx, symbol)
	if err != nil {
		return nil, err
	}
	points, err := e.synth.Prediction(pastDays, futureDays, current)
	if err != nil {
		return nil, fmt.Errorf("prediction %s: %w", symbol, err)
	}

	view := &PredictionView{Symbol: symbol, Points: points, Models: analysis.Models()}
	summary, err := synth.Summarize(points, current)
	switch {
	case err == nil:
		view.Summary = &summary
	case !errors.Is(err, synth.ErrNoForecast):
		return nil, fmt.Errorf("prediction %s: %w", symbol, err)
	}

	e.log.Info().
		Str("symbol", symbol).
		Int("past_days", pastDays).
		Int("future_days", futureDays).
		Msg("Prediction generated")
	return view, nil
}

type WatchlistView struct {
	Holdings  []types.Holding
	Aggregate types.PortfolioAggregate
	// ChangePercent is invalid when the portfolio has no base value.
	ChangePercent decimal.NullDecimal
	Alerts        []types.Holding
}

func (e *Engine) Watchlist(ctx context.Context) (*WatchlistView, error) {
	w, err := e.loadWatchlist(ctx)
	if err != nil {
		return nil, err
	}
	agg := w.Aggregate()
	view := &WatchlistView{
		Holdings:  w.Holdings(),
		Aggregate: agg,
		Alerts:    w.Alerts(),
	}
	if pct, err := agg.TotalChangePercent(); err == nil {
		view.ChangePercent = decimal.NewNullDecimal(pct)
	} else {
		e.log.Debug().Err(err).Msg("Watchlist change percent unavailable")
	}
	return view, nil
}

// AddToWatchlist appends a synthesized holding for symbol.
func (e *Engine) AddToWatchlist(ctx context.Context, symbol string, alertPrice decimal.NullDecimal) (types.Holding, error) {
	symbol, err := cleanSymbol(symbol)
	if err != nil {
		return types.Holding{}, err
	}
	w, err := e.loadWatchlist(ctx)
	if err != nil {
		return types.Holding{}, err
	}
	if _, i := w.Find(symbol); i >= 0 {
		e.log.Warn().Str("symbol", symbol).Int("index", i).Msg("Symbol already on watchlist, adding another entry")
	}
	h, err := e.synth.Holding(symbol, alertPrice)
	if err != nil {
		return types.Holding{}, err
	}
	if h, err = w.Add(h); err != nil {
		return types.Holding{}, err
	}
	e.log.Info().Str("symbol", h.Symbol).Str("price", h.Price.String()).Int("entries", w.Len()).Msg("Added to watchlist")
	return h, nil
}

// RemoveFromWatchlist removes every holding for symbol and reports how many
// were removed.
func (e *Engine) RemoveFromWatchlist(ctx context.Context, symbol string) (int, error) {
	w, err := e.loadWatchlist(ctx)
	if err != nil {
		return 0, err
	}
	n := w.Remove(symbol)
	e.log.Info().Str("symbol", symbol).Int("removed", n).Msg("Removed from watchlist")
	return n, nil
}

func (e *Engine) Ticker(ctx context.Context, filter string, order portfolio.SortOrder) ([]types.Quote, error) {
	quotes, err := e.db.GetQuotes(ctx)
	if err != nil {
		return nil, err
	}
	return portfolio.Board(quotes, filter, order)
}

type MonitorView struct {
	Metrics   []monitor.Metric
	Totals    monitor.Totals
	Ticks     int
	Sentiment monitor.SentimentReading
	LatencyMS int
	Network   monitor.Quality
	// Market is nil when no market check has run.
	Market *monitor.MarketStatus
}

// MonitorSnapshot reads the live metrics and, when market is not nil, its
// last status.
func MonitorSnapshot(live *monitor.Live, market *monitor.MarketWatch) MonitorView {
	metrics, ticks := live.Snapshot()
	latency := live.Latency()
	view := MonitorView{
		Metrics:   metrics,
		Totals:    monitor.Summarize(metrics),
		Ticks:     ticks,
		Sentiment: monitor.DefaultSentiment(),
		LatencyMS: latency,
		Network:   monitor.ClassifyLatency(latency),
	}
	if market != nil {
		if status, ok := market.Status(); ok {
			view.Market = &status
		}
	}
	return view
}
