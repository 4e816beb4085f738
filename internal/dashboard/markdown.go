package dashboard

import (
	"fmt"
	"strings"
	"time"

	"stocksense/internal/analysis"
	"stocksense/internal/monitor"
	"stocksense/types"

	"github.com/charmbracelet/glamour"
)

// ChartMarkdown renders the chart header and statistics cards.
func ChartMarkdown(v *ChartView, currency string) string {
	var b strings.Builder
	s := v.Summary
	fmt.Fprintf(&b, "# %s (%s)\n\n", v.Chart.Symbol, v.Chart.Range)
	fmt.Fprintf(&b, "**%s** %s (%s)\n\n", Money(s.Current, currency), SignedMoney(s.Change, currency), percent(s.ChangePercent))
	fmt.Fprintf(&b, "%s to %s, %d points\n\n", v.Chart.Start.Format(time.DateOnly), v.Chart.End.Format(time.DateOnly), len(v.Chart.Points))

	fmt.Fprintln(&b, "| Statistic | Value |")
	fmt.Fprintln(&b, "|:---|---:|")
	fmt.Fprintf(&b, "| High | %s |\n", Money(s.High, currency))
	fmt.Fprintf(&b, "| Low | %s |\n", Money(s.Low, currency))
	if s.RangePosition.Valid {
		fmt.Fprintf(&b, "| Range position | %s%% |\n", s.RangePosition.Decimal.StringFixed(1))
	}
	fmt.Fprintf(&b, "| Avg volume | %s |\n", volume(s.AverageVolume))
	fmt.Fprintf(&b, "| Volatility | %.2f%% |\n", s.Volatility*100)
	fmt.Fprintf(&b, "| Max drawdown | %s (%s%%) |\n", Money(s.MaxDrawdown, currency), s.MaxDrawdownPercent.Shift(2).StringFixed(2))
	if n := len(v.MovingAverage); n > 0 {
		fmt.Fprintf(&b, "| SMA %d | %s |\n", v.SMAWindow, Money(v.MovingAverage[n-1], currency))
	}
	if v.ChannelHigh.Valid {
		fmt.Fprintf(&b, "| Donchian channel | %s to %s |\n", Money(v.ChannelLow.Decimal, currency), Money(v.ChannelHigh.Decimal, currency))
	}
	if v.ATR.Valid {
		fmt.Fprintf(&b, "| ATR %d | %s |\n", atrPeriod, Money(v.ATR.Decimal, currency))
	}

	if len(v.News) > 0 {
		fmt.Fprint(&b, "\n## News\n\n")
		for _, n := range v.News {
			fmt.Fprintf(&b, "- **%s** [%s] %s. _%s, %s_\n", n.Title, n.Tone, n.Summary, n.Source, n.Age)
		}
	}
	return b.String()
}

func PredictionMarkdown(v *PredictionView, currency string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s predictions\n\n", v.Symbol)

	if s := v.Summary; s != nil {
		fmt.Fprintln(&b, "| Current | Predicted | Change | Outlook |")
		fmt.Fprintln(&b, "|---:|---:|---:|:---|")
		fmt.Fprintf(&b, "| %s | %s | %s (%s) | %s |\n\n",
			Money(s.CurrentPrice, currency),
			Money(s.PredictedPrice, currency),
			SignedMoney(s.Change, currency),
			percent(s.ChangePercent),
			s.Outlook,
		)
	}

	fmt.Fprintln(&b, "| Date | Actual | Predicted | Confidence |")
	fmt.Fprintln(&b, "|:---|---:|---:|---:|")
	for _, p := range v.Points {
		if p.Kind == types.PointHistorical {
			continue
		}
		confidence := ""
		if p.Confidence != nil {
			confidence = fmt.Sprintf("%d%%", *p.Confidence)
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n", p.Date.Format(time.DateOnly), nullFixed(p.Actual), nullFixed(p.Predicted), confidence)
	}

	fmt.Fprint(&b, "\n## Models\n\n")
	for _, m := range v.Models {
		fmt.Fprintf(&b, "- **%s** %d%% (%s, %s)\n", m.Name, m.Accuracy, m.Algorithm, m.Complexity)
	}
	return b.String()
}

func WatchlistMarkdown(v *WatchlistView, currency string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Watchlist\n\n")
	fmt.Fprintln(&b, "| Symbol | Name | Price | Change | Added | Alert |")
	fmt.Fprintln(&b, "|:---|:---|---:|---:|:---|---:|")
	for _, h := range v.Holdings {
		alert := ""
		if h.AlertPrice.Valid {
			alert = Money(h.AlertPrice.Decimal, currency)
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s (%s) | %s | %s |\n",
			h.Symbol,
			h.Name,
			Money(h.Price, currency),
			SignedMoney(h.Change, currency),
			percent(h.ChangePercent),
			h.AddedDate.Format(time.DateOnly),
			alert,
		)
	}

	pct := "n/a"
	if v.ChangePercent.Valid {
		pct = percent(v.ChangePercent.Decimal)
	}
	fmt.Fprintf(&b, "\n**Total value** %s, **change** %s (%s) across %d holdings\n",
		Money(v.Aggregate.TotalValue, currency),
		SignedMoney(v.Aggregate.TotalChange, currency),
		pct,
		v.Aggregate.Count,
	)

	if len(v.Alerts) > 0 {
		fmt.Fprint(&b, "\n## Alerts\n\n")
		for _, h := range v.Alerts {
			fmt.Fprintf(&b, "- %s at %s (alert %s)\n", h.Symbol, Money(h.Price, currency), Money(h.AlertPrice.Decimal, currency))
		}
	}
	return b.String()
}

func TickerMarkdown(quotes []types.Quote, currency string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Market ticker\n\n")
	if len(quotes) == 0 {
		fmt.Fprintln(&b, "No matching symbols.")
		return b.String()
	}
	fmt.Fprintln(&b, "| Symbol | Name | Price | Change |")
	fmt.Fprintln(&b, "|:---|:---|---:|---:|")
	for _, q := range quotes {
		fmt.Fprintf(&b, "| %s | %s | %s | %s (%s) |\n", q.Symbol, q.Name, Money(q.Price, currency), SignedMoney(q.Change, currency), percent(q.ChangePercent))
	}
	return b.String()
}

func MonitorMarkdown(v MonitorView) string {
	var b strings.Builder
	t := v.Totals
	fmt.Fprintf(&b, "# Algorithm monitor (refresh %d)\n\n", v.Ticks)
	if v.Market != nil {
		fmt.Fprintf(&b, "**%s**\n\n", v.Market.String())
	}
	fmt.Fprintf(&b, "CPU %.1f%%, RAM %.1f%%, %d running, %d optimizing, %d ops/s, cache %.1f%%, avg %.1fms\n\n",
		t.CPUUsage, t.MemoryUsage, t.Running, t.Optimizing, t.Throughput, t.AvgCacheHitRate, t.AvgExecutionTime)

	fmt.Fprintln(&b, "| Algorithm | Complexity | Status | CPU | Memory | Time | Throughput | Cache |")
	fmt.Fprintln(&b, "|:---|:---|:---|---:|---:|---:|---:|---:|")
	for _, m := range v.Metrics {
		fmt.Fprintf(&b, "| %s | %s | %s | %.1f%% | %.1f%% | %.1fms | %d | %.0f%% |\n",
			m.Name, m.Complexity, m.Status, m.CPUUsage, m.MemoryUsage, m.ExecutionTime, m.Throughput, m.CacheHitRate)
	}

	s := v.Sentiment
	fmt.Fprintf(&b, "\n**Sentiment** %d (%s): analysts %s, social %d, news %d, technical %d\n",
		s.Score, s.Label(), s.Analyst, s.Social, s.News, s.Technical)
	if v.Network == monitor.QualityOffline {
		fmt.Fprintln(&b, "\n**Network** offline")
	} else {
		fmt.Fprintf(&b, "\n**Network** %dms (%s)\n", v.LatencyMS, v.Network)
	}
	return b.String()
}

func AnalysisMarkdown(a analysis.Analysis, symbol, currency string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s: %s\n\n", symbol, a.Name)
	fmt.Fprintf(&b, "%s\n\n", a.Description)
	fmt.Fprintf(&b, "Efficiency %s (%s), accuracy %d%% (%s)\n\n",
		a.Efficiency, analysis.ClassifyEfficiency(a.Efficiency), a.Accuracy, monitor.ClassifyAccuracy(float64(a.Accuracy)))

	fmt.Fprintln(&b, "| Result | Value |")
	fmt.Fprintln(&b, "|:---|---:|")
	for _, row := range a.Result.Rows() {
		value := row.Value
		if plan, ok := a.Result.(analysis.ProfitPlan); ok && row.Label == "Max profit" {
			value = Money(plan.MaxProfit, currency)
		}
		fmt.Fprintf(&b, "| %s | %s |\n", row.Label, value)
	}
	return b.String()
}

// RenderMarkdown renders markdown for a terminal of the given width. An empty
// style picks one from the terminal.
func RenderMarkdown(md, style string, width int) (string, error) {
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(width)}
	if style == "" {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle(style))
	}
	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return "", fmt.Errorf("markdown renderer: %w", err)
	}
	out, err := r.Render(md)
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return out, nil
}

func volume(v int64) string {
	switch {
	case v >= 1_000_000:
		return fmt.Sprintf("%.1fM", float64(v)/1_000_000)
	case v >= 1_000:
		return fmt.Sprintf("%.1fK", float64(v)/1_000)
	default:
		return fmt.Sprintf("%d", v)
	}
}
