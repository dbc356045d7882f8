// Package textproc provides the text preparation steps used by the mood
// analyzer: normalization, tokenization, stop-word removal, lemmatization
// and keyword ranking.
package textproc

import (
	"regexp"
	"strings"
)

// Word characters follow the Unicode definition (letters, digits,
// underscore), not just ASCII, so accented and non-Latin journal text
// survives normalization intact.
var (
	nonWordRe = regexp.MustCompile(`[^\p{L}\p{N}_\s]`)
	digitsRe  = regexp.MustCompile(`\p{Nd}+`)
)

// Normalize lower-cases the text, strips every character that is neither a
// word character nor whitespace, removes digit runs and trims surrounding
// whitespace. It never fails and is idempotent.
func Normalize(text string) string {
	text = strings.ToLower(text)
	text = nonWordRe.ReplaceAllString(text, "")
	text = digitsRe.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}

// Tokenize splits normalized text into words. Input is expected to contain
// only word characters and whitespace, so plain field splitting is enough.
func Tokenize(normalized string) []string {
	return strings.Fields(normalized)
}

// RemoveStopWords filters tokens against the fixed English stop-word list,
// preserving the original order of the survivors.
func RemoveStopWords(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if !IsStopWord(tok) {
			out = append(out, tok)
		}
	}
	return out
}
