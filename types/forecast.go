package types

import (
	"time"

	"github.com/shopspring/decimal"
)

type PointKind string

const (
	PointHistorical PointKind = "historical"
	PointCurrent    PointKind = "current"
	PointPredicted  PointKind = "predicted"
)

type Outlook string

const (
	OutlookBullish Outlook = "BULLISH"
	OutlookBearish Outlook = "BEARISH"
)

// PredictionPoint is one point of a prediction chart. Historical points carry
// Actual, predicted points carry Predicted and Confidence, and the current point
// carries all three.
type PredictionPoint struct {
	Date       time.Time           `json:"date"`
	Actual     decimal.NullDecimal `json:"actual"`
	Predicted  decimal.NullDecimal `json:"predicted"`
	Confidence *int                `json:"confidence"`
	Kind       PointKind           `json:"type"`
}

// ForecastSummary is what the prediction summary cards show.
type ForecastSummary struct {
	CurrentPrice   decimal.Decimal `json:"currentPrice"`
	PredictedPrice decimal.Decimal `json:"predictedPrice"`
	Change         decimal.Decimal `json:"change"`
	ChangePercent  decimal.Decimal `json:"changePercent"`
	Outlook        Outlook         `json:"outlook"`
}
