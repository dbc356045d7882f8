package recommend

import "strings"

// latinRatioThreshold is the minimum share of ASCII-alphanumeric or common
// punctuation characters for a track to pass the language filter.
const latinRatioThreshold = 0.85

// nonEnglishDiacritics are characters whose presence rejects a track
// outright, whatever the ratio says.
var nonEnglishDiacritics = []rune{
	'ñ', 'ü', 'ä', 'ö', 'é', 'è', 'à', 'ç', 'ß', 'ø', 'å', 'æ',
}

// isLikelyEnglish applies a character-ratio heuristic to "{title} {artist}".
// It is not a language detector: the contract accepts false positives and
// false negatives. A track passes when more than 85% of its characters are
// ASCII letters, digits or common punctuation, and none of the fixed
// diacritic set appears.
func isLikelyEnglish(title, artist string) bool {
	text := strings.ToLower(title + " " + artist)

	runes := []rune(text)
	if len(runes) == 0 {
		return false
	}

	nonSpace := 0
	latin := 0
	for _, r := range runes {
		if r != ' ' {
			nonSpace++
		}
		if isLatinLike(r) {
			latin++
		}
	}
	if nonSpace == 0 {
		return false
	}

	if float64(latin)/float64(len(runes)) <= latinRatioThreshold {
		return false
	}

	for _, d := range nonEnglishDiacritics {
		if strings.ContainsRune(text, d) {
			return false
		}
	}
	return true
}

// isLatinLike reports whether r counts toward the Latin ratio: ASCII
// letters, digits, or the punctuation commonly found in track titles.
func isLatinLike(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z':
		return true
	case r >= 'A' && r <= 'Z':
		return true
	case r >= '0' && r <= '9':
		return true
	}
	switch r {
	case ' ', '-', '.', ',', '(', ')', '[', ']':
		return true
	}
	return false
}
