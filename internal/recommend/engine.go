package recommend

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/echojournal/moodmatch/internal/mood"
	"github.com/echojournal/moodmatch/internal/planner"
)

// MoodAnalyzer derives a mood signature from journal text. A failure here
// is fatal to the match request: without a mood signal there is nothing to
// plan queries from.
type MoodAnalyzer interface {
	Analyze(text string) (mood.Analysis, error)
}

// Engine chains the matching pipeline: analyze, plan, retrieve, enrich,
// score, rank. It holds no per-request state; Match may be called
// concurrently.
type Engine struct {
	analyzer    MoodAnalyzer
	connector   CatalogConnector
	lyrics      LyricFinder
	planner     *planner.Planner
	concurrency int
	log         *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithConcurrency sets the lyric fan-out worker count.
func WithConcurrency(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.concurrency = n
		}
	}
}

// WithLogger sets the engine's logger (default slog.Default).
func WithLogger(log *slog.Logger) Option {
	return func(e *Engine) {
		if log != nil {
			e.log = log
		}
	}
}

// NewEngine wires the matching pipeline from its collaborators.
func NewEngine(analyzer MoodAnalyzer, connector CatalogConnector, lyrics LyricFinder, p *planner.Planner, opts ...Option) *Engine {
	e := &Engine{
		analyzer:    analyzer,
		connector:   connector,
		lyrics:      lyrics,
		planner:     p,
		concurrency: DefaultConcurrency,
		log:         slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Match produces recommendations for one piece of journal text.
//
// The returned error is non-nil only when the mood analysis itself failed;
// every downstream failure is folded into the Outcome: a failed catalog
// token exchange yields OutcomeServiceUnavailable (no search attempted),
// an empty candidate pool yields OutcomeNoResults, and per-candidate lyric
// failures merely drop the lyric signals for that candidate.
func (e *Engine) Match(ctx context.Context, text string) (Outcome, error) {
	analysis, err := e.analyzer.Analyze(text)
	if err != nil {
		return Outcome{}, fmt.Errorf("analyzing mood: %w", err)
	}
	e.log.Debug("mood analyzed",
		"emotion", analysis.Emotion,
		"sentiment", analysis.Sentiment,
		"keywords", analysis.Keywords)

	catalog, err := e.connector.Connect(ctx)
	if err != nil {
		e.log.Warn("catalog unavailable", "error", err)
		return Outcome{Kind: OutcomeServiceUnavailable}, nil
	}

	queries := e.planner.Plan(analysis.Emotion, analysis.Sentiment)
	candidates := retrieve(ctx, catalog, queries, e.log)
	if len(candidates) == 0 {
		return Outcome{Kind: OutcomeNoResults}, nil
	}

	lyrics := enrichAll(ctx, e.lyrics, candidates, e.concurrency, e.log)

	scored := make([]ScoredTrack, len(candidates))
	for i, c := range candidates {
		scored[i] = ScoredTrack{
			Track: c,
			Score: scoreTrack(c, analysis, lyrics[i]),
		}
	}

	return Outcome{Kind: OutcomeRanked, Tracks: rank(scored)}, nil
}
