package mood

import (
	"fmt"

	"github.com/echojournal/moodmatch/internal/textproc"
)

// Analysis is the mood signature of one piece of journal text. All fields
// are request-scoped; nothing here is shared or persisted.
type Analysis struct {
	// Tokens are the normalized, stop-word-free, lemmatized words of the
	// text in source order.
	Tokens []string
	// Keywords are up to K distinct terms ranked by importance descending.
	Keywords []string
	// Sentiment is one of SentimentPositive, SentimentNeutral,
	// SentimentNegative.
	Sentiment string
	// Emotion is the classifier's top label, passed through verbatim.
	Emotion string
}

// Analyzer turns raw journal text into an Analysis.
type Analyzer struct {
	sentiment SentimentScorer
	emotion   EmotionClassifier
	lemmas    *textproc.Lemmatizer
	keywords  int
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithKeywordCount overrides the number of keywords extracted (default 5).
func WithKeywordCount(k int) Option {
	return func(a *Analyzer) {
		if k > 0 {
			a.keywords = k
		}
	}
}

// NewAnalyzer builds an Analyzer from its classifier collaborators.
func NewAnalyzer(sentiment SentimentScorer, emotion EmotionClassifier, opts ...Option) (*Analyzer, error) {
	lemmas, err := textproc.NewLemmatizer()
	if err != nil {
		return nil, fmt.Errorf("creating lemmatizer: %w", err)
	}

	a := &Analyzer{
		sentiment: sentiment,
		emotion:   emotion,
		lemmas:    lemmas,
		keywords:  textproc.DefaultKeywordCount,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

// Analyze derives the mood signature of text. Sentiment is scored over the
// original text; tokens, keywords and emotion work on the normalized form.
// A failure in either classifier is returned as an error: without a mood
// signal there is nothing to match against.
func (a *Analyzer) Analyze(text string) (Analysis, error) {
	normalized := textproc.Normalize(text)

	tokens := textproc.RemoveStopWords(textproc.Tokenize(normalized))
	tokens = a.lemmas.LemmatizeAll(tokens)

	keywords := textproc.TopKeywords(normalized, a.keywords)

	compound, err := a.sentiment.Compound(text)
	if err != nil {
		return Analysis{}, fmt.Errorf("scoring sentiment: %w", err)
	}

	cls, err := a.emotion.Classify(normalized)
	if err != nil {
		return Analysis{}, fmt.Errorf("classifying emotion: %w", err)
	}

	return Analysis{
		Tokens:    tokens,
		Keywords:  keywords,
		Sentiment: categorize(compound),
		Emotion:   cls.Label,
	}, nil
}
