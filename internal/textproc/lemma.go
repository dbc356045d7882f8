package textproc

import (
	"fmt"

	"github.com/aaaton/golem/v4"
	"github.com/aaaton/golem/v4/dicts/en"
)

// Lemmatizer reduces English words to their dictionary form.
type Lemmatizer struct {
	lem *golem.Lemmatizer
}

// NewLemmatizer loads the English lemma dictionary.
func NewLemmatizer() (*Lemmatizer, error) {
	lem, err := golem.New(en.New())
	if err != nil {
		return nil, fmt.Errorf("loading english lemma dictionary: %w", err)
	}
	return &Lemmatizer{lem: lem}, nil
}

// Lemma returns the dictionary form of word. Words not in the dictionary
// are returned unchanged.
func (l *Lemmatizer) Lemma(word string) string {
	return l.lem.Lemma(word)
}

// LemmatizeAll maps Lemma over tokens, preserving order.
func (l *Lemmatizer) LemmatizeAll(tokens []string) []string {
	out := make([]string, len(tokens))
	for i, tok := range tokens {
		out[i] = l.Lemma(tok)
	}
	return out
}
