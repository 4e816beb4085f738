package analysis

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// Result is the kind-specific outcome of an analysis. Each kind has exactly
// one result type.
type Result interface {
	Kind() Kind
	// Rows lists the result fields in display order.
	Rows() []Row
	isResult()
}

type Row struct {
	Label string
	Value string
}

type SignalCounts struct {
	BuySignals   int `json:"buySignals"`
	SellSignals  int `json:"sellSignals"`
	NeutralZones int `json:"neutralZones"`
}

func (SignalCounts) Kind() Kind { return BinarySearchTree }
func (SignalCounts) isResult()  {}
func (r SignalCounts) Rows() []Row {
	return []Row{
		{"Buy signals", strconv.Itoa(r.BuySignals)},
		{"Sell signals", strconv.Itoa(r.SellSignals)},
		{"Neutral zones", strconv.Itoa(r.NeutralZones)},
	}
}

type Correlations struct {
	SimilarPatterns    int `json:"similarPatterns"`
	StrongCorrelations int `json:"strongCorrelations"`
	WeakCorrelations   int `json:"weakCorrelations"`
}

func (Correlations) Kind() Kind { return HashTable }
func (Correlations) isResult()  {}
func (r Correlations) Rows() []Row {
	return []Row{
		{"Similar patterns", strconv.Itoa(r.SimilarPatterns)},
		{"Strong correlations", strconv.Itoa(r.StrongCorrelations)},
		{"Weak correlations", strconv.Itoa(r.WeakCorrelations)},
	}
}

type Priorities struct {
	HighPriority   int `json:"highPriority"`
	MediumPriority int `json:"mediumPriority"`
	LowPriority    int `json:"lowPriority"`
}

func (Priorities) Kind() Kind { return PriorityQueue }
func (Priorities) isResult()  {}
func (r Priorities) Rows() []Row {
	return []Row{
		{"High priority", strconv.Itoa(r.HighPriority)},
		{"Medium priority", strconv.Itoa(r.MediumPriority)},
		{"Low priority", strconv.Itoa(r.LowPriority)},
	}
}

type Network struct {
	ConnectedStocks int `json:"connectedStocks"`
	StrongEdges     int `json:"strongEdges"`
	WeakEdges       int `json:"weakEdges"`
}

func (Network) Kind() Kind { return Graph }
func (Network) isResult()  {}
func (r Network) Rows() []Row {
	return []Row{
		{"Connected stocks", strconv.Itoa(r.ConnectedStocks)},
		{"Strong edges", strconv.Itoa(r.StrongEdges)},
		{"Weak edges", strconv.Itoa(r.WeakEdges)},
	}
}

// ProfitPlan carries MaxProfit as an amount; the caller chooses the currency.
type ProfitPlan struct {
	MaxProfit    decimal.Decimal `json:"maxProfit"`
	OptimalDays  int             `json:"optimalDays"`
	Transactions int             `json:"transactions"`
}

func (ProfitPlan) Kind() Kind { return DynamicProgramming }
func (ProfitPlan) isResult()  {}
func (r ProfitPlan) Rows() []Row {
	return []Row{
		{"Max profit", r.MaxProfit.StringFixed(2)},
		{"Optimal days", strconv.Itoa(r.OptimalDays)},
		{"Transactions", strconv.Itoa(r.Transactions)},
	}
}

type Performance struct {
	AvgProcessingTime time.Duration `json:"avgProcessingTime"`
	MemoryUsageMB     float64       `json:"memoryUsage"`
	OpsPerSecond      int           `json:"throughput"`
}

func (Performance) Kind() Kind { return TimeComplexity }
func (Performance) isResult()  {}
func (r Performance) Rows() []Row {
	return []Row{
		{"Avg processing time", r.AvgProcessingTime.String()},
		{"Memory usage", strconv.FormatFloat(r.MemoryUsageMB, 'f', 1, 64) + "MB"},
		{"Throughput", strconv.Itoa(r.OpsPerSecond) + " ops/sec"},
	}
}
