package recommend

import (
	"context"
	"log/slog"
	"slices"
)

const (
	// minPopularity is the floor below which catalog items are discarded.
	minPopularity = 40
	// maxCandidates bounds both the candidate pool and the final ranked
	// list.
	maxCandidates = 15
)

// retrieve runs every planned query against the catalog and assembles the
// candidate pool: language-filtered, popularity-filtered, de-duplicated,
// sorted by popularity descending and capped at maxCandidates. A failed
// query contributes zero candidates and is logged; it neither aborts nor
// retries.
func retrieve(ctx context.Context, catalog Catalog, queries []string, log *slog.Logger) []Track {
	type trackKey struct {
		title, artist, link string
	}
	var pool []Track
	seen := make(map[trackKey]struct{})

	for _, query := range queries {
		items, err := catalog.Search(ctx, query)
		if err != nil {
			log.Warn("catalog search failed, skipping query", "query", query, "error", err)
			continue
		}

		for _, item := range items {
			if item.Popularity < minPopularity {
				continue
			}
			if !isLikelyEnglish(item.Title, item.Artist) {
				continue
			}
			// Identical tracks returned across queries would otherwise be
			// scored and listed twice.
			key := trackKey{item.Title, item.Artist, item.Link}
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			pool = append(pool, item)
		}
	}

	slices.SortStableFunc(pool, func(a, b Track) int {
		return b.Popularity - a.Popularity
	})
	if len(pool) > maxCandidates {
		pool = pool[:maxCandidates]
	}
	return pool
}
