package portfolio

import (
	"fmt"
	"strings"

	"stocksense/types"
)

// Watchlist is an ordered holding collection owned by a view. It is not safe
// for concurrent use.
type Watchlist struct {
	holdings []types.Holding
}

func NewWatchlist(holdings ...types.Holding) (*Watchlist, error) {
	w := &Watchlist{}
	for _, h := range holdings {
		if _, err := w.Add(h); err != nil {
			return nil, err
		}
	}
	return w, nil
}

// Add upper-cases the symbol, recomputes the change percent from change and
// price, and appends. A symbol already present is appended again. A holding
// without a positive price is rejected with types.ErrInvalidPrice.
func (w *Watchlist) Add(h types.Holding) (types.Holding, error) {
	h.Symbol = normalize(h.Symbol)
	if err := h.Recompute(); err != nil {
		return types.Holding{}, fmt.Errorf("add to watchlist: %w", err)
	}
	w.holdings = append(w.holdings, h)
	return h, nil
}

// Remove deletes every holding whose symbol matches. Removing a symbol that
// is not present leaves the list unchanged.
func (w *Watchlist) Remove(symbol string) int {
	symbol = normalize(symbol)
	kept := w.holdings[:0]
	removed := 0
	for _, h := range w.holdings {
		if h.Symbol == symbol {
			removed++
			continue
		}
		kept = append(kept, h)
	}
	w.holdings = kept
	return removed
}

// Find returns the first holding with the symbol and its index, or -1.
func (w *Watchlist) Find(symbol string) (types.Holding, int) {
	symbol = normalize(symbol)
	for i, h := range w.holdings {
		if h.Symbol == symbol {
			return h, i
		}
	}
	return types.Holding{}, -1
}

func (w *Watchlist) Len() int {
	return len(w.holdings)
}

// Holdings returns a copy of the list in insertion order.
func (w *Watchlist) Holdings() []types.Holding {
	return append([]types.Holding(nil), w.holdings...)
}

func (w *Watchlist) Aggregate() types.PortfolioAggregate {
	return Aggregate(w.holdings)
}

// Alerts returns the holdings priced at or below their alert price.
func (w *Watchlist) Alerts() []types.Holding {
	var out []types.Holding
	for _, h := range w.holdings {
		if h.AlertReached() {
			out = append(out, h)
		}
	}
	return out
}

func normalize(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}
