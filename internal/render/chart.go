// Package render draws price and prediction series as PNG images.
package render

import (
	"bytes"
	"fmt"
	"time"

	"stocksense/types"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

var (
	priceColor     = drawing.ColorFromHex("2563eb") // blue-600
	fillColor      = drawing.ColorFromHex("2563eb").WithAlpha(48)
	bandColor      = drawing.ColorFromHex("9ca3af") // gray-400
	averageColor   = drawing.ColorFromHex("f59e0b") // amber-500
	predictedColor = drawing.ColorFromHex("16a34a") // green-600
)

// Options controls the image size and chart style.
type Options struct {
	Width  int
	Height int
	Type   types.ChartType
	// SMAWindow overlays a simple moving average when positive.
	SMAWindow int
}

func (o Options) size() (int, int) {
	w, h := o.Width, o.Height
	if w <= 0 {
		w = 1024
	}
	if h <= 0 {
		h = 480
	}
	return w, h
}

// RenderPriceChart renders the price series of c in the requested style.
// Returns raw PNG bytes.
func RenderPriceChart(c types.Chart, opts Options) ([]byte, error) {
	if len(c.Points) < 2 {
		return nil, fmt.Errorf("need at least 2 data points, got %d", len(c.Points))
	}

	xValues := make([]time.Time, len(c.Points))
	prices := make([]float64, len(c.Points))
	highs := make([]float64, len(c.Points))
	lows := make([]float64, len(c.Points))
	volumes := make([]float64, len(c.Points))
	for i, p := range c.Points {
		xValues[i] = p.Date
		prices[i] = p.Price.InexactFloat64()
		highs[i] = p.High.InexactFloat64()
		lows[i] = p.Low.InexactFloat64()
		volumes[i] = float64(p.Volume)
	}

	priceSeries := chart.TimeSeries{
		Name: c.Symbol,
		Style: chart.Style{
			StrokeColor: priceColor,
			StrokeWidth: 2,
		},
		XValues: xValues,
		YValues: prices,
	}

	var series []chart.Series
	yFormat := priceFormatter
	yValues := prices

	switch opts.Type {
	case types.ChartArea:
		priceSeries.Style.FillColor = fillColor
		series = append(series, priceSeries)
	case types.ChartCandlestick:
		series = append(series,
			bandSeries("High", xValues, highs),
			bandSeries("Low", xValues, lows),
			priceSeries,
		)
		yValues = append(append([]float64{}, highs...), lows...)
	case types.ChartVolume:
		series = append(series, chart.TimeSeries{
			Name: "Volume",
			Style: chart.Style{
				StrokeColor: priceColor,
				FillColor:   fillColor,
				StrokeWidth: 1,
			},
			XValues: xValues,
			YValues: volumes,
		})
		yFormat = volumeFormatter
		yValues = volumes
	default:
		series = append(series, priceSeries)
	}

	if opts.SMAWindow > 1 && opts.Type != types.ChartVolume && opts.SMAWindow <= len(c.Points) {
		series = append(series, chart.SMASeries{
			Name: fmt.Sprintf("SMA %d", opts.SMAWindow),
			Style: chart.Style{
				StrokeColor:     averageColor,
				StrokeWidth:     1.5,
				StrokeDashArray: []float64{5.0, 3.0},
			},
			Period:      opts.SMAWindow,
			InnerSeries: priceSeries,
		})
	}

	title := c.Symbol
	if c.Range != "" {
		title = fmt.Sprintf("%s (%s)", c.Symbol, c.Range)
	}
	return draw(title, opts, dateFormat(c.Start, c.End), yFormat, yValues, series)
}

// RenderPredictionChart renders actual prices up to today and the projection
// after it. Returns raw PNG bytes.
func RenderPredictionChart(symbol string, points []types.PredictionPoint, opts Options) ([]byte, error) {
	if len(points) < 2 {
		return nil, fmt.Errorf("need at least 2 data points, got %d", len(points))
	}

	var actualX, predictedX []time.Time
	var actualY, predictedY, all []float64
	for _, p := range points {
		if p.Actual.Valid {
			actualX = append(actualX, p.Date)
			actualY = append(actualY, p.Actual.Decimal.InexactFloat64())
			all = append(all, actualY[len(actualY)-1])
		}
		if p.Predicted.Valid {
			predictedX = append(predictedX, p.Date)
			predictedY = append(predictedY, p.Predicted.Decimal.InexactFloat64())
			all = append(all, predictedY[len(predictedY)-1])
		}
	}

	var series []chart.Series
	if len(actualX) > 1 {
		series = append(series, chart.TimeSeries{
			Name: "Actual",
			Style: chart.Style{
				StrokeColor: priceColor,
				StrokeWidth: 2,
			},
			XValues: actualX,
			YValues: actualY,
		})
	}
	if len(predictedX) > 1 {
		series = append(series, chart.TimeSeries{
			Name: "Predicted",
			Style: chart.Style{
				StrokeColor:     predictedColor,
				StrokeWidth:     2,
				StrokeDashArray: []float64{5.0, 3.0},
			},
			XValues: predictedX,
			YValues: predictedY,
		})
	}

	title := fmt.Sprintf("%s forecast", symbol)
	return draw(title, opts, dateFormat(points[0].Date, points[len(points)-1].Date), priceFormatter, all, series)
}

func bandSeries(name string, x []time.Time, y []float64) chart.TimeSeries {
	return chart.TimeSeries{
		Name: name,
		Style: chart.Style{
			StrokeColor:     bandColor,
			StrokeWidth:     1,
			StrokeDashArray: []float64{2.0, 2.0},
		},
		XValues: x,
		YValues: y,
	}
}

func draw(title string, opts Options, xFormat string, yFormat chart.ValueFormatter, yValues []float64, series []chart.Series) ([]byte, error) {
	width, height := opts.size()

	graph := chart.Chart{
		Title:  title,
		Width:  width,
		Height: height,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 10, Right: 20, Bottom: 10},
		},
		XAxis: chart.XAxis{
			TickPosition: chart.TickPositionBetweenTicks,
			ValueFormatter: func(v interface{}) string {
				if t, ok := v.(float64); ok {
					return chart.TimeFromFloat64(t).Format(xFormat)
				}
				return ""
			},
		},
		YAxis: chart.YAxis{
			ValueFormatter: yFormat,
		},
		Series: series,
	}

	// A flat series has no y-range to scale to.
	if lo, hi := chart.MinMax(yValues...); lo == hi {
		graph.YAxis.Range = &chart.ContinuousRange{Min: lo - 1, Max: hi + 1}
	}

	graph.Elements = []chart.Renderable{
		chart.LegendLeft(&graph),
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("chart render failed: %w", err)
	}

	return buf.Bytes(), nil
}

func dateFormat(start, end time.Time) string {
	if end.Sub(start) > 400*24*time.Hour {
		return "Jan 06"
	}
	return "Jan 02"
}

func priceFormatter(v interface{}) string {
	if f, ok := v.(float64); ok {
		return fmt.Sprintf("%.2f", f)
	}
	return ""
}

func volumeFormatter(v interface{}) string {
	if f, ok := v.(float64); ok {
		return fmt.Sprintf("%.1fM", f/1_000_000)
	}
	return ""
}
