package recommend

import (
	"regexp"
	"slices"
	"strings"

	"github.com/echojournal/moodmatch/internal/mood"
)

// Score weights. Each signal contributes independently and additively.
const (
	titleKeywordBonus    = 50
	artistKeywordBonus   = 30
	lyricsEmotionBonus   = 25
	lyricsSentimentBonus = 15
	lyricsOverlapPerWord = 2
	scoringKeywordCount  = 3
	overlapMinWordLength = 4
)

var lyricWordRe = regexp.MustCompile(`\b\w{4,}\b`)

// scoreTrack computes the match score for one candidate: catalog
// popularity plus keyword hits in the metadata plus lyric-content signals.
// Lyrics may be empty, in which case only the non-lyric signals apply.
func scoreTrack(track Track, analysis mood.Analysis, lyrics string) int {
	score := track.Popularity

	keywords := analysis.Keywords
	if len(keywords) > scoringKeywordCount {
		keywords = keywords[:scoringKeywordCount]
	}

	titleLower := strings.ToLower(track.Title)
	artistLower := strings.ToLower(track.Artist)
	for _, kw := range keywords {
		kw = strings.ToLower(kw)
		if strings.Contains(titleLower, kw) {
			score += titleKeywordBonus
		}
		if strings.Contains(artistLower, kw) {
			score += artistKeywordBonus
		}
	}

	if lyrics != "" {
		lyricsLower := strings.ToLower(lyrics)
		if strings.Contains(lyricsLower, strings.ToLower(analysis.Emotion)) {
			score += lyricsEmotionBonus
		}
		if strings.Contains(lyricsLower, strings.ToLower(analysis.Sentiment)) {
			score += lyricsSentimentBonus
		}
		score += lyricsOverlapPerWord * tokenOverlap(analysis.Tokens, lyricsLower)
	}

	return score
}

// tokenOverlap counts distinct 4+-letter words shared between the journal
// tokens and the lyric text.
func tokenOverlap(tokens []string, lyricsLower string) int {
	journalWords := make(map[string]struct{})
	for _, tok := range tokens {
		if len(tok) >= overlapMinWordLength {
			journalWords[strings.ToLower(tok)] = struct{}{}
		}
	}
	if len(journalWords) == 0 {
		return 0
	}

	counted := make(map[string]struct{})
	for _, w := range lyricWordRe.FindAllString(lyricsLower, -1) {
		if _, ok := journalWords[w]; !ok {
			continue
		}
		counted[w] = struct{}{}
	}
	return len(counted)
}

// rank orders scored candidates by score descending. The sort is stable:
// candidates with equal scores keep their retrieval order. The result is
// capped at maxCandidates.
func rank(scored []ScoredTrack) []ScoredTrack {
	slices.SortStableFunc(scored, func(a, b ScoredTrack) int {
		return b.Score - a.Score
	})
	if len(scored) > maxCandidates {
		scored = scored[:maxCandidates]
	}
	return scored
}
