package portfolio

import (
	"fmt"
	"slices"
	"strings"

	"stocksense/types"
)

type SortOrder string

const (
	SortNone    SortOrder = "none"
	SortGainers SortOrder = "gainers"
	SortLosers  SortOrder = "losers"
)

var ConvertSortOrder = map[string]SortOrder{
	"":        SortNone,
	"none":    SortNone,
	"gainers": SortGainers,
	"losers":  SortLosers,
}

// Board filters and orders the ticker table. Quotes match when the filter is a
// case-insensitive substring of the symbol or the name; an empty filter
// matches everything. Gainers sort by change percent descending, losers
// ascending, and ties keep table order.
func Board(quotes []types.Quote, filter string, order SortOrder) ([]types.Quote, error) {
	filter = strings.ToLower(strings.TrimSpace(filter))

	out := make([]types.Quote, 0, len(quotes))
	for _, q := range quotes {
		if strings.Contains(strings.ToLower(q.Symbol), filter) || strings.Contains(strings.ToLower(q.Name), filter) {
			out = append(out, q)
		}
	}

	switch order {
	case SortNone:
	case SortGainers:
		slices.SortStableFunc(out, func(a, b types.Quote) int { return b.ChangePercent.Cmp(a.ChangePercent) })
	case SortLosers:
		slices.SortStableFunc(out, func(a, b types.Quote) int { return a.ChangePercent.Cmp(b.ChangePercent) })
	default:
		return nil, fmt.Errorf("unknown sort order %q", order)
	}
	return out, nil
}
