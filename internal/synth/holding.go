package synth

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"stocksense/types"

	"github.com/shopspring/decimal"
)

// SynthesizeHolding makes up a watchlist entry for a symbol the dashboard has no
// data for: a "<SYMBOL> Corp." name, a price in [50, 250) and a change in [-5, 5).
func SynthesizeHolding(src rand.Source, symbol string, alertPrice decimal.NullDecimal, today time.Time) (types.Holding, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	price := uniformDecimal(src, 50, 250).Round(2)
	change := uniformDecimal(src, -5, 5).Round(2)

	h, err := types.NewHolding(symbol, fmt.Sprintf("%s Corp.", symbol), price, change, startOfDay(today))
	if err != nil {
		return types.Holding{}, err
	}
	h.AlertPrice = alertPrice
	return h, nil
}
