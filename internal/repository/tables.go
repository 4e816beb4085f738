package repository

import (
	"context"
	"time"

	"stocksense/types"

	"github.com/shopspring/decimal"
)

type staticTables struct{}

func (staticTables) ListQuotes(ctx context.Context) ([]types.Quote, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return []types.Quote{
		quote("RELIANCE", "Reliance Industries Ltd.", "2847.50", "35.20", "1.25"),
		quote("TCS", "Tata Consultancy Services", "4125.30", "-28.50", "-0.69"),
		quote("INFY", "Infosys Ltd.", "1789.45", "22.15", "1.25"),
		quote("HDFCBANK", "HDFC Bank Ltd.", "1642.80", "-12.30", "-0.74"),
		quote("ICICIBANK", "ICICI Bank Ltd.", "1289.20", "18.50", "1.46"),
		quote("BHARTIARTL", "Bharti Airtel Ltd.", "1567.90", "25.60", "1.66"),
		quote("ITC", "ITC Ltd.", "485.70", "-3.10", "-0.63"),
		quote("LT", "Larsen & Toubro Ltd.", "3625.40", "42.80", "1.20"),
	}, nil
}

func (staticTables) ListHoldings(ctx context.Context) ([]types.Holding, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	rows := []struct {
		symbol, name, price, change, alert string
		added                              time.Time
	}{
		{"AAPL", "Apple Inc.", "182.52", "2.45", "180.00", date(2024, time.January, 15)},
		{"GOOGL", "Alphabet Inc.", "138.21", "-1.23", "", date(2024, time.January, 10)},
		{"MSFT", "Microsoft Corp.", "378.85", "4.67", "375.00", date(2024, time.January, 8)},
	}

	holdings := make([]types.Holding, 0, len(rows))
	for _, r := range rows {
		h, err := types.NewHolding(r.symbol, r.name, dec(r.price), dec(r.change), r.added)
		if err != nil {
			return nil, err
		}
		if r.alert != "" {
			h.AlertPrice = decimal.NewNullDecimal(dec(r.alert))
		}
		holdings = append(holdings, h)
	}
	return holdings, nil
}

func quote(symbol, name, price, change, percent string) types.Quote {
	return types.Quote{
		Symbol:        symbol,
		Name:          name,
		Type:          types.AssetTypeStock,
		Price:         dec(price),
		Change:        dec(change),
		ChangePercent: dec(percent),
	}
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
