// Package mood derives a mood signature (tokens, keywords, sentiment,
// emotion) from free-text journal content.
package mood

import (
	"sync"

	"github.com/jonreiter/govader"
)

// Sentiment categories produced by the analyzer.
const (
	SentimentPositive = "positive"
	SentimentNeutral  = "neutral"
	SentimentNegative = "negative"
)

// Compound score thresholds for the category mapping. Both bounds are
// inclusive.
const (
	positiveThreshold = 0.5
	negativeThreshold = -0.5
)

// SentimentScorer produces a compound polarity score in [-1, 1] for a text
// span. Implementations stand in for the external sentiment classifier; an
// error means no mood signal is possible and the request must fail.
type SentimentScorer interface {
	Compound(text string) (float64, error)
}

// VaderScorer scores sentiment with the VADER lexicon. Safe for concurrent
// use.
type VaderScorer struct {
	sia *govader.SentimentIntensityAnalyzer
	mu  sync.Mutex
}

// NewVaderScorer builds a VADER-backed sentiment scorer.
func NewVaderScorer() *VaderScorer {
	return &VaderScorer{sia: govader.NewSentimentIntensityAnalyzer()}
}

// Compound returns the VADER compound polarity score for text.
func (v *VaderScorer) Compound(text string) (float64, error) {
	v.mu.Lock()
	scores := v.sia.PolarityScores(text)
	v.mu.Unlock()
	return scores.Compound, nil
}

// categorize maps a compound polarity score onto the three sentiment
// categories. Exactly 0.5 is positive and exactly -0.5 is negative.
func categorize(compound float64) string {
	switch {
	case compound >= positiveThreshold:
		return SentimentPositive
	case compound <= negativeThreshold:
		return SentimentNegative
	default:
		return SentimentNeutral
	}
}
