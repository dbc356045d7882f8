package spotify

import (
	"context"
	"fmt"

	"github.com/zmb3/spotify/v2"

	"github.com/echojournal/moodmatch/internal/recommend"
)

const (
	// searchLimit is the fixed page size for catalog searches.
	searchLimit = 20
	// searchMarket scopes searches to one market.
	searchMarket = "US"
)

// Client wraps the Spotify API client with the search method the engine
// needs. It implements recommend.Catalog.
type Client struct {
	api *spotify.Client
}

// New creates a new Spotify client wrapper.
// The underlying client should already be authenticated.
func New(api *spotify.Client) *Client {
	return &Client{api: api}
}

// Search runs one track search and converts the results. The response is a
// single page; the engine's own caps make pagination pointless.
func (c *Client) Search(ctx context.Context, query string) ([]recommend.Track, error) {
	result, err := c.api.Search(ctx, query, spotify.SearchTypeTrack,
		spotify.Limit(searchLimit), spotify.Market(searchMarket))
	if err != nil {
		return nil, fmt.Errorf("searching tracks for %q: %w", query, err)
	}
	if result.Tracks == nil {
		return nil, nil
	}

	tracks := make([]recommend.Track, 0, len(result.Tracks.Tracks))
	for _, item := range result.Tracks.Tracks {
		tracks = append(tracks, convertTrack(item))
	}
	return tracks, nil
}

// convertTrack converts a Spotify FullTrack to the engine's Track.
func convertTrack(item spotify.FullTrack) recommend.Track {
	artist := ""
	if len(item.Artists) > 0 {
		artist = item.Artists[0].Name
	}
	return recommend.Track{
		Title:      item.Name,
		Artist:     artist,
		Popularity: int(item.Popularity),
		Link:       item.ExternalURLs["spotify"],
	}
}
