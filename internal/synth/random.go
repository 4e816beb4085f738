package synth

import (
	"math/rand/v2"
	"time"

	"github.com/shopspring/decimal"
	"gonum.org/v1/gonum/stat/distuv"
)

// priceScale is the number of decimal places kept on every random draw.
const priceScale = 4

// NewSource returns a PCG source seeded with seed, or from the clock and the
// runtime generator when seed is zero.
func NewSource(seed uint64) rand.Source {
	if seed == 0 {
		return rand.NewPCG(uint64(time.Now().UnixNano()), rand.Uint64())
	}
	return rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)
}

func uniform(src rand.Source, lo, hi float64) float64 {
	return distuv.Uniform{Min: lo, Max: hi, Src: src}.Rand()
}

func uniformDecimal(src rand.Source, lo, hi float64) decimal.Decimal {
	return decimal.NewFromFloat(uniform(src, lo, hi)).Round(priceScale)
}

// symmetric draws from [-width, +width].
func symmetric(src rand.Source, width float64) decimal.Decimal {
	return uniformDecimal(src, -width, width)
}

// uniformInt draws from [lo, hi).
func uniformInt(src rand.Source, lo, hi int64) int64 {
	return lo + rand.New(src).Int64N(hi-lo)
}

// startOfDay truncates t to midnight in its own location.
func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
