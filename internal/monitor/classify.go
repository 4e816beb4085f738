package monitor

type Sentiment string

const (
	Bullish Sentiment = "Bullish"
	Neutral Sentiment = "Neutral"
	Bearish Sentiment = "Bearish"
)

// ClassifySentiment maps a 0-100 score onto a sentiment band.
func ClassifySentiment(score int) Sentiment {
	switch {
	case score >= 70:
		return Bullish
	case score >= 40:
		return Neutral
	default:
		return Bearish
	}
}

// SentimentReading is the market sentiment card.
type SentimentReading struct {
	Score     int    `json:"score"`
	Analyst   string `json:"analystRating"`
	Social    int    `json:"socialMedia"`
	News      int    `json:"newsAnalysis"`
	Technical int    `json:"technicalIndicators"`
}

func DefaultSentiment() SentimentReading {
	return SentimentReading{Score: 72, Analyst: "Buy", Social: 68, News: 75, Technical: 70}
}

func (s SentimentReading) Label() Sentiment {
	return ClassifySentiment(s.Score)
}

type Band string

const (
	BandHigh   Band = "high"
	BandMedium Band = "medium"
	BandLow    Band = "low"
)

// ClassifyAccuracy bands an accuracy percentage.
func ClassifyAccuracy(accuracy float64) Band {
	switch {
	case accuracy >= 90:
		return BandHigh
	case accuracy >= 80:
		return BandMedium
	default:
		return BandLow
	}
}

type Quality string

const (
	QualityOffline   Quality = "offline"
	QualityExcellent Quality = "excellent"
	QualityGood      Quality = "good"
	QualityFair      Quality = "fair"
	QualityPoor      Quality = "poor"
)

// ClassifyLatency grades a round trip in milliseconds. Zero means no response.
func ClassifyLatency(ms int) Quality {
	switch {
	case ms <= 0:
		return QualityOffline
	case ms < 50:
		return QualityExcellent
	case ms < 100:
		return QualityGood
	case ms < 200:
		return QualityFair
	default:
		return QualityPoor
	}
}
