package types

import (
	"github.com/shopspring/decimal"
)

type AssetType string

const (
	AssetTypeStock AssetType = "STOCK"
	AssetTypeEtf   AssetType = "ETF"
)

// Quote is a row of the static ticker table.
type Quote struct {
	Symbol        string          `json:"symbol"`
	Name          string          `json:"name"`
	Type          AssetType       `json:"type"`
	Price         decimal.Decimal `json:"price"`
	Change        decimal.Decimal `json:"change"`
	ChangePercent decimal.Decimal `json:"changePercent"`
}
