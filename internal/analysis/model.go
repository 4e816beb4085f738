package analysis

// Model is a forecast model offered on the predictions page.
type Model struct {
	Key        string
	Name       string
	Accuracy   int
	Algorithm  string
	Complexity string
}

func Models() []Model {
	return []Model{
		{Key: "movingavg", Name: "Moving Average Analysis", Accuracy: 78, Algorithm: "Sliding Window", Complexity: "O(n)"},
		{Key: "fibonacci", Name: "Fibonacci Retracement", Accuracy: 74, Algorithm: "Dynamic Programming", Complexity: "O(1)"},
		{Key: "technical", Name: "Multi-Indicator Analysis", Accuracy: 82, Algorithm: "Ensemble Methods", Complexity: "O(n log n)"},
	}
}
