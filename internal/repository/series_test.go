package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"stocksense/types"

	"github.com/shopspring/decimal"
)

var startTime = time.UnixMilli(0).UTC()

type mockSeriesRepository struct {
	err   error
	empty bool
}

func (m mockSeriesRepository) Historical(days int, base decimal.Decimal) ([]types.PricePoint, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.empty {
		return nil, nil
	}
	points := make([]types.PricePoint, days)
	for i := range points {
		points[i] = types.PricePoint{
			Date:  startTime.AddDate(0, 0, i),
			Price: base,
			Close: base,
			High:  base,
			Low:   base,
			Open:  base,
		}
	}
	return points, nil
}

func TestDatabase_GetSeries(t *testing.T) {
	errSynth := errors.New("bad params")
	tests := []struct {
		name     string
		r        types.Range
		series   mockSeriesRepository
		wantDays int
		wantErr  error
	}{
		{"should return one day", types.OneDay, mockSeriesRepository{}, 1, nil},
		{"should return a month", types.OneMonth, mockSeriesRepository{}, 30, nil},
		{"should return five years", types.FiveYears, mockSeriesRepository{}, 1825, nil},
		{"should throw ErrRangeNotSupported", types.Range("10Y"), mockSeriesRepository{}, 0, ErrRangeNotSupported},
		{"should throw ErrNoPoints", types.OneWeek, mockSeriesRepository{empty: true}, 0, ErrNoPoints},
		{"should pass generator error", types.OneWeek, mockSeriesRepository{err: errSynth}, 0, errSynth},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := &Database{series: tt.series}
			got, err := db.GetSeries(context.Background(), "infy", decimal.NewFromInt(1500), tt.r)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("GetSeries() error = %v, wantErr %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("GetSeries() unexpected error = %v", err)
			}
			if len(got.Points) != tt.wantDays {
				t.Errorf("GetSeries() points = %d, want %d", len(got.Points), tt.wantDays)
			}
			if got.Symbol != "INFY" {
				t.Errorf("GetSeries() symbol = %v, want INFY", got.Symbol)
			}
			if got.Range != tt.r {
				t.Errorf("GetSeries() range = %v, want %v", got.Range, tt.r)
			}
			if !got.Start.Equal(startTime) {
				t.Errorf("GetSeries() start = %v, want %v", got.Start, startTime)
			}
			if !got.End.Equal(startTime.AddDate(0, 0, tt.wantDays-1)) {
				t.Errorf("GetSeries() end = %v", got.End)
			}
		})
	}
}
