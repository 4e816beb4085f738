package types

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrDivisionByZero = errors.New("percent change over a zero base is undefined")
	ErrInvalidPrice   = errors.New("holding price must be positive")
)

var hundred = decimal.NewFromInt(100)

// Holding is a single watchlist entry.
type Holding struct {
	Symbol        string              `json:"symbol"`
	Name          string              `json:"name"`
	Price         decimal.Decimal     `json:"price"`
	Change        decimal.Decimal     `json:"change"`
	ChangePercent decimal.Decimal     `json:"changePercent"`
	AddedDate     time.Time           `json:"addedDate"`
	AlertPrice    decimal.NullDecimal `json:"alertPrice"`
}

// NewHolding builds a holding with an upper-cased symbol and a change percent
// derived from change and price. A non-positive price returns ErrInvalidPrice.
func NewHolding(symbol, name string, price, change decimal.Decimal, addedDate time.Time) (Holding, error) {
	h := Holding{
		Symbol:    strings.ToUpper(strings.TrimSpace(symbol)),
		Name:      name,
		Price:     price,
		Change:    change,
		AddedDate: addedDate,
	}
	if err := h.Recompute(); err != nil {
		return Holding{}, err
	}
	return h, nil
}

// Recompute derives ChangePercent as Change/Price*100. A non-positive price
// returns ErrInvalidPrice and leaves ChangePercent untouched.
func (h *Holding) Recompute() error {
	if !h.Price.IsPositive() {
		return fmt.Errorf("%s price %s: %w", h.Symbol, h.Price, ErrInvalidPrice)
	}
	h.ChangePercent = h.Change.Div(h.Price).Mul(hundred)
	return nil
}

// SetQuote replaces price and change and recomputes the percent. The holding
// is unchanged when price is not positive.
func (h *Holding) SetQuote(price, change decimal.Decimal) error {
	if !price.IsPositive() {
		return fmt.Errorf("%s price %s: %w", h.Symbol, price, ErrInvalidPrice)
	}
	h.Price = price
	h.Change = change
	return h.Recompute()
}

// AlertReached reports whether an alert price is set and the price is at or below it.
func (h Holding) AlertReached() bool {
	return h.AlertPrice.Valid && h.Price.LessThanOrEqual(h.AlertPrice.Decimal)
}

// PortfolioAggregate holds the summed totals of a set of holdings. The percent
// change is derived on every read by TotalChangePercent.
type PortfolioAggregate struct {
	Count       int             `json:"count"`
	TotalValue  decimal.Decimal `json:"totalValue"`
	TotalChange decimal.Decimal `json:"totalChange"`
}

// Base is the value before the change was applied.
func (a PortfolioAggregate) Base() decimal.Decimal {
	return a.TotalValue.Sub(a.TotalChange)
}

// TotalChangePercent is TotalChange/(TotalValue-TotalChange)*100, derived on
// every call. An empty aggregate, or any whose base is zero, returns
// ErrDivisionByZero and leaves rendering that case to the caller.
func (a PortfolioAggregate) TotalChangePercent() (decimal.Decimal, error) {
	base := a.Base()
	if base.IsZero() {
		return decimal.Decimal{}, ErrDivisionByZero
	}
	return a.TotalChange.Div(base).Mul(hundred), nil
}
