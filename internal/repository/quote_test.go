package repository

import (
	"context"
	"errors"
	"testing"

	"stocksense/types"

	"github.com/shopspring/decimal"
)

type mockQuotesRepository struct {
	err error
}

func (m mockQuotesRepository) ListQuotes(_ context.Context) ([]types.Quote, error) {
	if m.err != nil {
		return nil, m.err
	}
	return []types.Quote{
		{Symbol: "AAA", Name: "Alpha", Price: decimal.NewFromInt(10)},
		{Symbol: "BBB", Name: "Beta", Price: decimal.NewFromInt(20)},
	}, nil
}

func TestDatabase_GetQuoteBySymbol(t *testing.T) {
	errDown := errors.New("table unavailable")
	tests := []struct {
		name      string
		symbol    string
		sourceErr error
		want      string
		wantErr   error
	}{
		{"should return quote", "BBB", nil, "20", nil},
		{"should ignore case", " aaa ", nil, "10", nil},
		{"should throw ErrSymbolNotFound", "ZZZ", nil, "", ErrSymbolNotFound},
		{"should pass source error", "AAA", errDown, "", errDown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := &Database{quotes: mockQuotesRepository{err: tt.sourceErr}}
			got, err := db.GetQuoteBySymbol(context.Background(), tt.symbol)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("GetQuoteBySymbol() error = %v, wantErr %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("GetQuoteBySymbol() unexpected error = %v", err)
			}
			if got.Price.String() != tt.want {
				t.Errorf("GetQuoteBySymbol() price = %v, want %v", got.Price, tt.want)
			}
		})
	}
}

func TestStaticTables(t *testing.T) {
	db := NewDatabase(nil)
	ctx := context.Background()

	quotes, err := db.GetQuotes(ctx)
	if err != nil {
		t.Fatalf("GetQuotes() error = %v", err)
	}
	if len(quotes) != 8 {
		t.Fatalf("GetQuotes() len = %d, want 8", len(quotes))
	}
	if quotes[0].Symbol != "RELIANCE" || quotes[7].Symbol != "LT" {
		t.Errorf("GetQuotes() order = %s..%s, want RELIANCE..LT", quotes[0].Symbol, quotes[7].Symbol)
	}

	reliance, err := db.GetQuoteBySymbol(ctx, "reliance")
	if err != nil {
		t.Fatalf("GetQuoteBySymbol() error = %v", err)
	}
	if reliance.Price.StringFixed(2) != "2847.50" {
		t.Errorf("GetQuoteBySymbol() price = %v, want 2847.50", reliance.Price)
	}

	holdings, err := db.GetDefaultWatchlist(ctx)
	if err != nil {
		t.Fatalf("GetDefaultWatchlist() error = %v", err)
	}
	if len(holdings) != 3 {
		t.Fatalf("GetDefaultWatchlist() len = %d, want 3", len(holdings))
	}
	if holdings[0].ChangePercent.StringFixed(2) != "1.34" {
		t.Errorf("AAPL change percent = %v, want 1.34", holdings[0].ChangePercent.StringFixed(2))
	}
	if !holdings[0].AlertPrice.Valid || holdings[1].AlertPrice.Valid {
		t.Errorf("alert prices = %v, %v", holdings[0].AlertPrice, holdings[1].AlertPrice)
	}
}

func TestStaticTablesCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	db := NewDatabase(nil)
	if _, err := db.GetQuotes(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("GetQuotes() error = %v, want context.Canceled", err)
	}
	if _, err := db.GetDefaultWatchlist(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("GetDefaultWatchlist() error = %v, want context.Canceled", err)
	}
}
