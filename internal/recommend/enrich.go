package recommend

import (
	"context"
	"log/slog"
	"sync"
)

// DefaultConcurrency is the worker count for the per-candidate lyric
// fan-out.
const DefaultConcurrency = 5

// enrichAll fetches lyrics for every candidate with a bounded worker pool.
// Results come back indexed, so retrieval order is preserved regardless of
// completion order. Every failure degrades to empty lyrics for that
// candidate alone; the cause is logged, never propagated. A cancelled
// context abandons the remaining fetches, leaving their lyrics empty.
func enrichAll(ctx context.Context, finder LyricFinder, candidates []Track, concurrency int, log *slog.Logger) []string {
	lyrics := make([]string, len(candidates))
	if len(candidates) == 0 {
		return lyrics
	}
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	type workItem struct {
		index int
		track Track
	}
	workCh := make(chan workItem, len(candidates))
	for i, c := range candidates {
		workCh <- workItem{index: i, track: c}
	}
	close(workCh)

	var wg sync.WaitGroup
	for i := 0; i < concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for work := range workCh {
				select {
				case <-ctx.Done():
					continue
				default:
				}

				text, err := finder.Lyrics(ctx, work.track.Title, work.track.Artist)
				if err != nil {
					log.Warn("lyric fetch failed, scoring without lyrics",
						"title", work.track.Title,
						"artist", work.track.Artist,
						"error", err)
					continue
				}
				lyrics[work.index] = text
			}
		}()
	}
	wg.Wait()

	return lyrics
}
