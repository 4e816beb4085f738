package analysis

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var ErrUnknownKind = errors.New("unknown analysis kind")

type Kind string

const (
	BinarySearchTree   Kind = "binarySearchTree"
	HashTable          Kind = "hashTable"
	PriorityQueue      Kind = "priorityQueue"
	Graph              Kind = "graph"
	DynamicProgramming Kind = "dynamicProgramming"
	TimeComplexity     Kind = "timeComplexity"
)

// Kinds in catalog order.
var Kinds = []Kind{BinarySearchTree, HashTable, PriorityQueue, Graph, DynamicProgramming, TimeComplexity}

// ParseKind matches a kind name case-insensitively.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds {
		if strings.EqualFold(string(k), strings.TrimSpace(s)) {
			return k, nil
		}
	}
	return "", fmt.Errorf("%q: %w", s, ErrUnknownKind)
}

// Analysis describes one entry of the analyzer panel.
type Analysis struct {
	Kind        Kind
	Name        string
	Description string
	Efficiency  string
	Accuracy    int
	Result      Result
}

func Catalog() []Analysis {
	return []Analysis{
		{
			Kind:        BinarySearchTree,
			Name:        "BST Price Analysis",
			Description: "Binary search for optimal buy/sell points",
			Efficiency:  "O(log n)",
			Accuracy:    87,
			Result:      SignalCounts{BuySignals: 3, SellSignals: 2, NeutralZones: 1},
		},
		{
			Kind:        HashTable,
			Name:        "Hash-based Correlation",
			Description: "Fast lookup of similar patterns",
			Efficiency:  "O(1)",
			Accuracy:    92,
			Result:      Correlations{SimilarPatterns: 15, StrongCorrelations: 8, WeakCorrelations: 7},
		},
		{
			Kind:        PriorityQueue,
			Name:        "Priority Alert System",
			Description: "Heap-based alert prioritization",
			Efficiency:  "O(log n)",
			Accuracy:    95,
			Result:      Priorities{HighPriority: 2, MediumPriority: 5, LowPriority: 8},
		},
		{
			Kind:        Graph,
			Name:        "Graph Network Analysis",
			Description: "Sector correlation mapping",
			Efficiency:  "O(V + E)",
			Accuracy:    83,
			Result:      Network{ConnectedStocks: 12, StrongEdges: 6, WeakEdges: 18},
		},
		{
			Kind:        DynamicProgramming,
			Name:        "DP Optimization",
			Description: "Maximum profit calculation",
			Efficiency:  "O(n)",
			Accuracy:    89,
			Result:      ProfitPlan{MaxProfit: decimal.RequireFromString("245.50"), OptimalDays: 7, Transactions: 3},
		},
		{
			Kind:        TimeComplexity,
			Name:        "Algorithm Performance",
			Description: "Real-time complexity analysis",
			Efficiency:  "O(n log n)",
			Accuracy:    91,
			Result:      Performance{AvgProcessingTime: 12 * time.Millisecond, MemoryUsageMB: 2.3, OpsPerSecond: 850},
		},
	}
}

func Lookup(kind Kind) (Analysis, error) {
	for _, a := range Catalog() {
		if a.Kind == kind {
			return a, nil
		}
	}
	return Analysis{}, fmt.Errorf("%q: %w", kind, ErrUnknownKind)
}

type Tier string

const (
	TierFast     Tier = "fast"
	TierModerate Tier = "moderate"
	TierSlow     Tier = "slow"
)

// ClassifyEfficiency grades a big-O label: constant and logarithmic are fast,
// linear is moderate, anything else is slow.
func ClassifyEfficiency(efficiency string) Tier {
	switch {
	case strings.Contains(efficiency, "O(1)"), strings.Contains(efficiency, "O(log n)"):
		return TierFast
	case strings.Contains(efficiency, "O(n)"):
		return TierModerate
	default:
		return TierSlow
	}
}
