package portfolio

import (
	"testing"

	"stocksense/types"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quote(symbol, name string, pct float64) types.Quote {
	return types.Quote{Symbol: symbol, Name: name, ChangePercent: decimal.NewFromFloat(pct)}
}

var testQuotes = []types.Quote{
	quote("RELIANCE", "Reliance Industries Ltd.", 1.25),
	quote("TCS", "Tata Consultancy Services", -0.69),
	quote("INFY", "Infosys Ltd.", 1.25),
	quote("HDFCBANK", "HDFC Bank Ltd.", -0.74),
	quote("ICICIBANK", "ICICI Bank Ltd.", 1.46),
}

func TestBoard(t *testing.T) {
	tests := []struct {
		name   string
		filter string
		order  SortOrder
		want   []string
	}{
		{"no filter no sort", "", SortNone, []string{"RELIANCE", "TCS", "INFY", "HDFCBANK", "ICICIBANK"}},
		{"gainers keep ties in table order", "", SortGainers, []string{"ICICIBANK", "RELIANCE", "INFY", "TCS", "HDFCBANK"}},
		{"losers", "", SortLosers, []string{"HDFCBANK", "TCS", "RELIANCE", "INFY", "ICICIBANK"}},
		{"filter by symbol", "bank", SortNone, []string{"HDFCBANK", "ICICIBANK"}},
		{"filter by name case-insensitive", "LTD", SortGainers, []string{"ICICIBANK", "RELIANCE", "INFY", "HDFCBANK"}},
		{"no match", "zzz", SortNone, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Board(testQuotes, tt.filter, tt.order)
			require.NoError(t, err)
			syms := make([]string, len(got))
			for i, q := range got {
				syms[i] = q.Symbol
			}
			assert.Equal(t, tt.want, syms)
		})
	}
}

func TestBoardUnknownOrder(t *testing.T) {
	_, err := Board(testQuotes, "", SortOrder("volume"))
	assert.Error(t, err)
}

func TestBoardDoesNotReorderInput(t *testing.T) {
	_, err := Board(testQuotes, "", SortLosers)
	require.NoError(t, err)
	assert.Equal(t, "RELIANCE", testQuotes[0].Symbol)
}
