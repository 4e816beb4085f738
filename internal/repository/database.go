package repository

import (
	"context"
	"errors"

	"stocksense/types"

	"github.com/shopspring/decimal"
)

// Global error declarations.
var (
	ErrRangeNotSupported = errors.New("range not supported")
	ErrSymbolNotFound    = errors.New("not found in datasource")
	ErrNoPoints          = errors.New("no points found in datasource")
)

type quotesRepository interface {
	ListQuotes(ctx context.Context) ([]types.Quote, error)
}

type holdingsRepository interface {
	ListHoldings(ctx context.Context) ([]types.Holding, error)
}

type seriesRepository interface {
	Historical(days int, base decimal.Decimal) ([]types.PricePoint, error)
}

// Database serves the dashboard's mock tables. Series are synthesized on
// every read.
type Database struct {
	quotes   quotesRepository
	holdings holdingsRepository
	series   seriesRepository
}

// NewDatabase creates a Database over the built-in tables.
func NewDatabase(series seriesRepository) Database {
	return Database{
		quotes:   staticTables{},
		holdings: staticTables{},
		series:   series,
	}
}
