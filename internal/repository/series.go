package repository

import (
	"context"
	"fmt"
	"strings"

	"stocksense/types"

	"github.com/shopspring/decimal"
)

// GetSeries returns a daily series for symbol covering r, starting from base.
func (db *Database) GetSeries(ctx context.Context, symbol string, base decimal.Decimal, r types.Range) (types.Chart, error) {
	days, ok := types.RangeToDays[r]
	if !ok {
		return types.Chart{}, fmt.Errorf("%q %w", r, ErrRangeNotSupported)
	}
	if err := ctx.Err(); err != nil {
		return types.Chart{}, err
	}
	points, err := db.series.Historical(days, base)
	if err != nil {
		return types.Chart{}, err
	}
	if len(points) == 0 {
		return types.Chart{}, ErrNoPoints
	}
	return types.NewChart(strings.ToUpper(symbol), r, points), nil
}
