package portfolio

import (
	"stocksense/types"

	"github.com/shopspring/decimal"
)

// Aggregate sums prices and changes over holdings. The percent change is read
// through types.PortfolioAggregate.TotalChangePercent.
func Aggregate(holdings []types.Holding) types.PortfolioAggregate {
	agg := types.PortfolioAggregate{
		Count:       len(holdings),
		TotalValue:  decimal.Zero,
		TotalChange: decimal.Zero,
	}
	for _, h := range holdings {
		agg.TotalValue = agg.TotalValue.Add(h.Price)
		agg.TotalChange = agg.TotalChange.Add(h.Change)
	}
	return agg
}
