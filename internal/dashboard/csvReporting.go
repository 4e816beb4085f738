package dashboard

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"stocksense/types"
)

// writeSeriesCSVFile writes a price series to a CSV file at the given path.
func writeSeriesCSVFile(path string, c types.Chart) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create series file: %w", err)
	}
	defer f.Close()

	return WriteSeriesCSV(f, c)
}

// WriteSeriesCSV writes a price series to any io.Writer as CSV, oldest first.
func WriteSeriesCSV(w io.Writer, c types.Chart) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{
		"symbol",
		"date", // YYYY-MM-DD
		"open",
		"high",
		"low",
		"close",
		"volume",
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, p := range c.Points {
		record := []string{
			c.Symbol,
			p.Date.Format(time.DateOnly),
			p.Open.StringFixed(2),
			p.High.StringFixed(2),
			p.Low.StringFixed(2),
			p.Close.StringFixed(2),
			strconv.FormatInt(p.Volume, 10),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write record: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}

	return nil
}

// WritePredictionCSV writes a prediction series as CSV. Missing actual or
// predicted values are left blank.
func WritePredictionCSV(w io.Writer, symbol string, points []types.PredictionPoint) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{"symbol", "date", "type", "actual", "predicted", "confidence"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, p := range points {
		record := []string{
			symbol,
			p.Date.Format(time.DateOnly),
			string(p.Kind),
			nullFixed(p.Actual),
			nullFixed(p.Predicted),
			"",
		}
		if p.Confidence != nil {
			record[5] = strconv.Itoa(*p.Confidence)
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write record: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}

	return nil
}
