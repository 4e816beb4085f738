package dashboard

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"stocksense/internal/portfolio"
	"stocksense/internal/repository"
	"stocksense/types"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

var ErrEmptySymbol = errors.New("symbol is required")

type dataStore interface {
	GetQuotes(ctx context.Context) ([]types.Quote, error)
	GetQuoteBySymbol(ctx context.Context, symbol string) (*types.Quote, error)
	GetDefaultWatchlist(ctx context.Context) ([]types.Holding, error)
	GetSeries(ctx context.Context, symbol string, base decimal.Decimal, r types.Range) (types.Chart, error)
}

type generator interface {
	Prediction(pastDays, futureDays int, currentPrice decimal.Decimal) ([]types.PredictionPoint, error)
	BasePrice() decimal.Decimal
	Holding(symbol string, alertPrice decimal.NullDecimal) (types.Holding, error)
}

// Engine composes the dashboard views. It owns the watchlist and is not safe
// for concurrent use.
type Engine struct {
	db        dataStore
	synth     generator
	log       zerolog.Logger
	watchlist *portfolio.Watchlist
}

func NewEngine(db dataStore, synth generator, log zerolog.Logger) *Engine {
	return &Engine{
		db:    db,
		synth: synth,
		log:   log.With().Str("component", "dashboard").Logger(),
	}
}

// currentPrice is the ticker price for known symbols and a random price
// for anything else.
func (e *Engine) currentPrice(ctx context.Context, symbol string) (decimal.Decimal, error) {
	q, err := e.db.GetQuoteBySymbol(ctx, symbol)
	if err == nil {
		return q.Price, nil
	}
	if !errors.Is(err, repository.ErrSymbolNotFound) {
		return decimal.Zero, err
	}
	price := e.synth.BasePrice()
	e.log.Debug().Str("symbol", symbol).Str("price", price.String()).Msg("Symbol not in ticker table, using random price")
	return price, nil
}

func (e *Engine) loadWatchlist(ctx context.Context) (*portfolio.Watchlist, error) {
	if e.watchlist != nil {
		return e.watchlist, nil
	}
	holdings, err := e.db.GetDefaultWatchlist(ctx)
	if err != nil {
		return nil, fmt.Errorf("load watchlist: %w", err)
	}
	w, err := portfolio.NewWatchlist(holdings...)
	if err != nil {
		return nil, fmt.Errorf("load watchlist: %w", err)
	}
	e.watchlist = w
	return w, nil
}

func cleanSymbol(symbol string) (string, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return "", ErrEmptySymbol
	}
	return symbol, nil
}
