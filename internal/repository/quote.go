package repository

import (
	"context"
	"fmt"
	"strings"

	"stocksense/types"
)

// GetQuotes returns the ticker table in display order.
func (db *Database) GetQuotes(ctx context.Context) ([]types.Quote, error) {
	return db.quotes.ListQuotes(ctx)
}

// GetQuoteBySymbol retrieves a quote by its symbol, ignoring case.
func (db *Database) GetQuoteBySymbol(ctx context.Context, symbol string) (*types.Quote, error) {
	quotes, err := db.quotes.ListQuotes(ctx)
	if err != nil {
		return nil, err
	}
	want := strings.ToUpper(strings.TrimSpace(symbol))
	for _, q := range quotes {
		if q.Symbol == want {
			return &q, nil
		}
	}
	return nil, fmt.Errorf("symbol %s %w", want, ErrSymbolNotFound)
}

// GetDefaultWatchlist returns the holdings a new watchlist starts with.
func (db *Database) GetDefaultWatchlist(ctx context.Context) ([]types.Holding, error) {
	return db.holdings.ListHoldings(ctx)
}
