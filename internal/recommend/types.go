// Package recommend implements the mood-to-music matching engine: it turns
// a mood signature into a ranked list of catalog tracks, enriched with
// best-effort lyric analysis.
package recommend

import "context"

// Track is a catalog track eligible for scoring.
type Track struct {
	Title      string `json:"title"`
	Artist     string `json:"artist"`
	Popularity int    `json:"popularity"`
	Link       string `json:"link"`
}

// ScoredTrack is a Track with its accumulated match score.
type ScoredTrack struct {
	Track
	Score int `json:"score"`
}

// OutcomeKind discriminates the three results of a match request.
type OutcomeKind int

const (
	// OutcomeRanked means a non-empty ranked recommendation list.
	OutcomeRanked OutcomeKind = iota
	// OutcomeNoResults means the catalog was reachable but no candidate
	// survived the filters.
	OutcomeNoResults
	// OutcomeServiceUnavailable means the catalog token exchange failed;
	// no search was attempted.
	OutcomeServiceUnavailable
)

// String implements fmt.Stringer for log output.
func (k OutcomeKind) String() string {
	switch k {
	case OutcomeRanked:
		return "ranked"
	case OutcomeNoResults:
		return "no_results"
	case OutcomeServiceUnavailable:
		return "service_unavailable"
	default:
		return "unknown"
	}
}

// Outcome is the result of one match request. Tracks is populated only
// when Kind is OutcomeRanked, ordered by score descending, at most
// maxCandidates entries.
type Outcome struct {
	Kind   OutcomeKind
	Tracks []ScoredTrack
}

// Catalog searches the external track catalog. Implementations are
// expected to be authenticated already.
type Catalog interface {
	// Search returns tracks for one query. An error means this query
	// contributes no candidates; the caller does not retry.
	Search(ctx context.Context, query string) ([]Track, error)
}

// CatalogConnector performs the credential exchange that yields an
// authenticated Catalog. A failure here makes the whole match request
// report OutcomeServiceUnavailable.
type CatalogConnector interface {
	Connect(ctx context.Context) (Catalog, error)
}

// LyricFinder looks up lyric text for a track. An empty string with a nil
// error means no lyrics were found; errors are degraded to empty lyrics by
// the engine after logging.
type LyricFinder interface {
	Lyrics(ctx context.Context, title, artist string) (string, error)
}
