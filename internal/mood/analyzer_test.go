package mood

import (
	"errors"
	"strings"
	"testing"
)

// fakeScorer returns a fixed compound score or error.
type fakeScorer struct {
	compound float64
	err      error
}

func (f fakeScorer) Compound(string) (float64, error) {
	return f.compound, f.err
}

// fakeClassifier returns a fixed label or error.
type fakeClassifier struct {
	label string
	err   error
}

func (f fakeClassifier) Classify(string) (Classification, error) {
	if f.err != nil {
		return Classification{}, f.err
	}
	return Classification{Label: f.label, Confidence: 0.9}, nil
}

func TestCategorize(t *testing.T) {
	tests := []struct {
		name     string
		compound float64
		want     string
	}{
		{"exactly positive threshold", 0.5, SentimentPositive},
		{"exactly negative threshold", -0.5, SentimentNegative},
		{"just below positive threshold", 0.499, SentimentNeutral},
		{"just above negative threshold", -0.499, SentimentNeutral},
		{"strongly positive", 0.93, SentimentPositive},
		{"strongly negative", -0.81, SentimentNegative},
		{"zero", 0, SentimentNeutral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := categorize(tt.compound); got != tt.want {
				t.Errorf("categorize(%v) = %q, want %q", tt.compound, got, tt.want)
			}
		})
	}
}

func TestAnalyze(t *testing.T) {
	analyzer, err := NewAnalyzer(fakeScorer{compound: 0.8}, fakeClassifier{label: "joy"})
	if err != nil {
		t.Fatalf("NewAnalyzer: %v", err)
	}

	got, err := analyzer.Analyze("I am so happy today!")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	if got.Sentiment != SentimentPositive {
		t.Errorf("Sentiment = %q, want %q", got.Sentiment, SentimentPositive)
	}
	if got.Emotion != "joy" {
		t.Errorf("Emotion = %q, want joy", got.Emotion)
	}

	for _, tok := range got.Tokens {
		if tok == "i" || tok == "am" || tok == "so" {
			t.Errorf("stop word %q survived into tokens %v", tok, got.Tokens)
		}
	}

	if len(got.Keywords) > 5 {
		t.Errorf("got %d keywords, want at most 5", len(got.Keywords))
	}
	for _, kw := range got.Keywords {
		if kw != strings.ToLower(kw) {
			t.Errorf("keyword %q is not lower-cased", kw)
		}
	}
}

func TestAnalyzeClassifierFailuresAreFatal(t *testing.T) {
	sentinel := errors.New("model offline")

	tests := []struct {
		name      string
		sentiment SentimentScorer
		emotion   EmotionClassifier
	}{
		{
			name:      "sentiment scorer down",
			sentiment: fakeScorer{err: sentinel},
			emotion:   fakeClassifier{label: "joy"},
		},
		{
			name:      "emotion classifier down",
			sentiment: fakeScorer{compound: 0.1},
			emotion:   fakeClassifier{err: sentinel},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			analyzer, err := NewAnalyzer(tt.sentiment, tt.emotion)
			if err != nil {
				t.Fatalf("NewAnalyzer: %v", err)
			}
			if _, err := analyzer.Analyze("some text"); !errors.Is(err, sentinel) {
				t.Errorf("Analyze error = %v, want wrapped %v", err, sentinel)
			}
		})
	}
}

func TestVaderScorerDirection(t *testing.T) {
	scorer := NewVaderScorer()

	pos, err := scorer.Compound("I am so happy, this is wonderful and amazing!")
	if err != nil {
		t.Fatalf("Compound: %v", err)
	}
	neg, err := scorer.Compound("This is terrible, I hate everything, worst day ever.")
	if err != nil {
		t.Fatalf("Compound: %v", err)
	}

	if pos <= 0 {
		t.Errorf("positive text scored %v, want > 0", pos)
	}
	if neg >= 0 {
		t.Errorf("negative text scored %v, want < 0", neg)
	}
	if pos < -1 || pos > 1 || neg < -1 || neg > 1 {
		t.Errorf("compound scores out of [-1,1]: %v, %v", pos, neg)
	}
}

func TestLexiconClassifier(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"joy lexicon", "feeling happy and cheerful after a great day", "joy"},
		{"sadness lexicon", "lonely and heartbroken tonight missing her", "sadness"},
		{"anger lexicon", "furious and frustrated about the rage inside", "anger"},
		{"fear lexicon", "anxious and worried sick with dread", "fear"},
		{"love lexicon", "i adore my darling sweetheart", "love"},
		{"surprise lexicon", "totally shocked and stunned wow", "surprise"},
	}

	c := NewLexiconClassifier()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.Classify(tt.text)
			if err != nil {
				t.Fatalf("Classify: %v", err)
			}
			if got.Label != tt.want {
				t.Errorf("Classify(%q) = %q, want %q", tt.text, got.Label, tt.want)
			}
			if got.Confidence <= 0 || got.Confidence > 1 {
				t.Errorf("confidence %v out of (0,1]", got.Confidence)
			}
		})
	}
}
