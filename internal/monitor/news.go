package monitor

import "fmt"

type Tone string

const (
	TonePositive Tone = "positive"
	ToneNeutral  Tone = "neutral"
	ToneNegative Tone = "negative"
)

// Headline is a canned news item shown beside a symbol. Age is display text.
type Headline struct {
	Title   string
	Source  string
	Age     string
	Tone    Tone
	Summary string
}

// Headlines returns the mock news panel for symbol. Only the first headline
// mentions the symbol.
func Headlines(symbol string) []Headline {
	return []Headline{
		{
			Title:   fmt.Sprintf("%s Reports Strong Q4 Earnings", symbol),
			Source:  "Financial Times",
			Age:     "2 hours ago",
			Tone:    TonePositive,
			Summary: "Company beats analyst expectations with revenue growth of 12%.",
		},
		{
			Title:   "Market Analysis: Tech Stocks Outlook",
			Source:  "Bloomberg",
			Age:     "4 hours ago",
			Tone:    ToneNeutral,
			Summary: "Industry experts discuss the future of technology investments.",
		},
		{
			Title:   "Regulatory Concerns Impact Stock Price",
			Source:  "Reuters",
			Age:     "1 day ago",
			Tone:    ToneNegative,
			Summary: "New regulations may affect company operations in key markets.",
		},
	}
}
