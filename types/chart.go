package types

import (
	"time"
)

type ChartType string

const (
	ChartLine        ChartType = "line"
	ChartArea        ChartType = "area"
	ChartCandlestick ChartType = "candlestick"
	ChartVolume      ChartType = "volume"
)

var ConvertChartType = map[string]ChartType{
	"line":        ChartLine,
	"area":        ChartArea,
	"candlestick": ChartCandlestick,
	"volume":      ChartVolume,
}

type Chart struct {
	Symbol string       `json:"symbol"`
	Points []PricePoint `json:"points"`
	Start  time.Time    `json:"start"`
	End    time.Time    `json:"end"`
	Range  Range        `json:"range"`
}

// NewChart wraps a series, taking start and end from its first and last points.
func NewChart(symbol string, r Range, points []PricePoint) Chart {
	c := Chart{Symbol: symbol, Range: r, Points: points}
	if len(points) > 0 {
		c.Start = points[0].Date
		c.End = points[len(points)-1].Date
	}
	return c
}
