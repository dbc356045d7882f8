// Package planner maps a mood signature (emotion + sentiment) onto a
// bounded list of catalog search queries using fixed lookup tables.
package planner

// Tables is the versioned query configuration: per-emotion and
// per-sentiment ordered query lists plus the fallback pair used when
// neither key matches. Tables are data, not logic; extending the mood
// vocabulary means editing a table, not the pipeline.
type Tables struct {
	Version   int                 `yaml:"version"`
	Emotion   map[string][]string `yaml:"emotion_queries"`
	Sentiment map[string][]string `yaml:"sentiment_queries"`
	Default   []string            `yaml:"default_queries"`
}

// DefaultTables returns the built-in version-1 query tables.
func DefaultTables() Tables {
	return Tables{
		Version: 1,
		Emotion: map[string][]string{
			"joy":      {"happy songs", "feel good music", "upbeat pop"},
			"sadness":  {"sad songs", "heartbreak songs", "emotional ballads"},
			"anger":    {"angry songs", "rock music", "metal songs"},
			"love":     {"love songs", "romantic music", "love ballads"},
			"fear":     {"anxiety songs", "sad music", "emotional songs"},
			"surprise": {"upbeat music", "pop songs", "dance music"},
		},
		Sentiment: map[string][]string{
			"positive":      {"happy music", "pop hits", "feel good songs"},
			"very positive": {"celebration songs", "party music", "dance hits"},
			"negative":      {"sad music", "melancholy songs", "breakup songs"},
			"very negative": {"depressing songs", "dark music", "sad ballads"},
			"neutral":       {"chill music", "indie songs", "alternative music"},
		},
		Default: []string{"popular songs", "top hits"},
	}
}
