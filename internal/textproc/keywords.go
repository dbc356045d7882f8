package textproc

import "sort"

// DefaultKeywordCount is the number of keywords extracted per document.
const DefaultKeywordCount = 5

// Keyword is a term with its importance weight.
type Keyword struct {
	Term   string
	Weight float64
}

// RankKeywords scores every non-stop-word term of the normalized text by
// importance and returns all terms ordered by weight descending, ties
// broken by first appearance in the text.
//
// The input is treated as a corpus of exactly one document, so "importance"
// deliberately reduces to raw term frequency: with a single document the
// inverse-document-frequency factor is the same constant for every term.
// This is a recognized approximation, not an oversight.
func RankKeywords(normalized string) []Keyword {
	tokens := Tokenize(normalized)

	freq := make(map[string]int)
	firstSeen := make(map[string]int)
	for i, tok := range tokens {
		if len(tok) < 2 || IsStopWord(tok) {
			continue
		}
		if _, ok := firstSeen[tok]; !ok {
			firstSeen[tok] = i
		}
		freq[tok]++
	}

	ranked := make([]Keyword, 0, len(freq))
	for term, n := range freq {
		ranked = append(ranked, Keyword{Term: term, Weight: float64(n)})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Weight != ranked[j].Weight {
			return ranked[i].Weight > ranked[j].Weight
		}
		return firstSeen[ranked[i].Term] < firstSeen[ranked[j].Term]
	})

	return ranked
}

// TopKeywords returns the k highest-ranked distinct terms of the
// normalized text.
func TopKeywords(normalized string, k int) []string {
	if k <= 0 {
		k = DefaultKeywordCount
	}
	ranked := RankKeywords(normalized)
	if len(ranked) > k {
		ranked = ranked[:k]
	}
	out := make([]string, len(ranked))
	for i, kw := range ranked {
		out[i] = kw.Term
	}
	return out
}
