package types

import (
	"time"

	"github.com/shopspring/decimal"
)

// PricePoint is one day of a synthesized price series.
type PricePoint struct {
	Date   time.Time       `json:"date"`
	Price  decimal.Decimal `json:"price"`
	Volume int64           `json:"volume"`
	Open   decimal.Decimal `json:"open"`
	High   decimal.Decimal `json:"high"`
	Low    decimal.Decimal `json:"low"`
	Close  decimal.Decimal `json:"close"`
}

// Prices returns the price column of a series as float64, oldest first.
func Prices(points []PricePoint) []float64 {
	out := make([]float64, len(points))
	for i, p := range points {
		out[i] = p.Price.InexactFloat64()
	}
	return out
}
