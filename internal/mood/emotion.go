package mood

import (
	"strings"
	"sync"

	"github.com/jonreiter/govader"
)

// Classification is the top label of an emotion classifier.
type Classification struct {
	Label      string
	Confidence float64
}

// EmotionClassifier assigns a single dominant emotion label to a text span.
// The label set belongs to the classifier, not to this package; labels are
// treated as opaque strings downstream. An error is fatal to the request.
type EmotionClassifier interface {
	Classify(text string) (Classification, error)
}

// Emotion lexicons for the default classifier. The label set matches the
// keys of the planner's emotion table.
var emotionLexicons = map[string][]string{
	"joy": {
		"happy", "happiness", "joy", "glad", "delighted", "excited",
		"cheerful", "smile", "laugh", "wonderful", "amazing", "great",
		"awesome", "fantastic", "fun", "thrilled", "grateful", "proud",
	},
	"sadness": {
		"sad", "sadness", "unhappy", "depressed", "down", "cry", "crying",
		"tears", "lonely", "miserable", "grief", "heartbroken", "hopeless",
		"gloomy", "hurt", "loss", "miss", "missing",
	},
	"anger": {
		"angry", "anger", "mad", "furious", "rage", "annoyed", "irritated",
		"frustrated", "hate", "resent", "outraged", "bitter", "fed",
	},
	"love": {
		"love", "loving", "adore", "affection", "romantic", "sweetheart",
		"darling", "crush", "cherish", "devoted", "kiss", "heart",
	},
	"fear": {
		"afraid", "fear", "scared", "terrified", "anxious", "anxiety",
		"worried", "worry", "nervous", "panic", "dread", "frightened",
		"overwhelmed", "stress", "stressed",
	},
	"surprise": {
		"surprised", "surprise", "shocked", "astonished", "unexpected",
		"sudden", "amazed", "stunned", "unbelievable", "wow",
	},
}

// LexiconClassifier is the default emotion classifier: it counts lexicon
// hits per label over the normalized text and returns the label with the
// most hits. When no lexicon word appears it falls back to a VADER
// polarity band mapping so that every text gets a label. Safe for
// concurrent use.
type LexiconClassifier struct {
	sia *govader.SentimentIntensityAnalyzer
	mu  sync.Mutex
}

// NewLexiconClassifier builds the default lexicon-based emotion classifier.
func NewLexiconClassifier() *LexiconClassifier {
	return &LexiconClassifier{sia: govader.NewSentimentIntensityAnalyzer()}
}

// labelOrder fixes the tie-break order between labels with equal hit
// counts, so classification is deterministic.
var labelOrder = []string{"joy", "sadness", "anger", "love", "fear", "surprise"}

// Classify returns the dominant emotion label for text.
func (c *LexiconClassifier) Classify(text string) (Classification, error) {
	words := strings.Fields(strings.ToLower(text))
	wordSet := make(map[string]struct{}, len(words))
	for _, w := range words {
		wordSet[w] = struct{}{}
	}

	var (
		best     string
		bestHits int
	)
	for _, label := range labelOrder {
		hits := 0
		for _, entry := range emotionLexicons[label] {
			if _, ok := wordSet[entry]; ok {
				hits++
			}
		}
		if hits > bestHits {
			best = label
			bestHits = hits
		}
	}

	if bestHits > 0 {
		total := 0
		for _, entries := range emotionLexicons {
			for _, entry := range entries {
				if _, ok := wordSet[entry]; ok {
					total++
				}
			}
		}
		return Classification{Label: best, Confidence: float64(bestHits) / float64(total)}, nil
	}

	return c.fallback(text), nil
}

// fallback maps VADER polarity bands to a coarse emotion label when the
// lexicons match nothing.
func (c *LexiconClassifier) fallback(text string) Classification {
	c.mu.Lock()
	scores := c.sia.PolarityScores(text)
	c.mu.Unlock()

	switch {
	case scores.Compound >= 0.6:
		return Classification{Label: "joy", Confidence: scores.Positive}
	case scores.Compound >= 0.2:
		return Classification{Label: "surprise", Confidence: scores.Positive}
	case scores.Compound <= -0.6:
		if scores.Negative > scores.Neutral {
			return Classification{Label: "anger", Confidence: scores.Negative}
		}
		return Classification{Label: "fear", Confidence: scores.Negative}
	case scores.Compound <= -0.2:
		return Classification{Label: "sadness", Confidence: scores.Negative}
	default:
		return Classification{Label: "neutral", Confidence: scores.Neutral}
	}
}
