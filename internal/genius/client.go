package genius

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const (
	baseURL   = "https://api.genius.com"
	userAgent = "moodmatch/1.0"

	// lyricTimeout bounds each lyric page fetch so one slow page cannot
	// stall a candidate's enrichment indefinitely.
	lyricTimeout = 10 * time.Second
)

// lyricContainerSelector matches the marked lyric blocks on a Genius song
// page.
const lyricContainerSelector = `div[data-lyrics-container='true']`

// Client is a Genius API client plus lyric page scraper.
type Client struct {
	apiKey     string
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a new Genius client from the provided configuration.
func NewClient(cfg *Config) *Client {
	return &Client{
		apiKey: cfg.APIKey,
		httpClient: &http.Client{
			Timeout: lyricTimeout,
		},
		baseURL: baseURL,
	}
}

// Search queries the Genius search endpoint and returns its hits in
// response order.
func (c *Client) Search(ctx context.Context, query string) ([]Hit, error) {
	reqURL := c.baseURL + "/search?" + url.Values{"q": {query}}.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating search request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing search request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search returned status %d", resp.StatusCode)
	}

	var parsed searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("parsing search response: %w", err)
	}

	hits := make([]Hit, 0, len(parsed.Response.Hits))
	for _, h := range parsed.Response.Hits {
		hits = append(hits, Hit{
			Title:  h.Result.Title,
			Artist: h.Result.PrimaryArtist.Name,
			URL:    h.Result.URL,
		})
	}
	return hits, nil
}

// Lyrics finds the lyric text for a track, implementing the engine's
// LyricFinder. It searches for "{title} {artist}", takes the first hit
// only, fetches its page and extracts the marked lyric containers. An
// empty string with a nil error means no match; errors describe what went
// wrong so the caller can log before degrading.
func (c *Client) Lyrics(ctx context.Context, title, artist string) (string, error) {
	hits, err := c.Search(ctx, title+" "+artist)
	if err != nil {
		return "", err
	}
	if len(hits) == 0 {
		return "", nil
	}
	return c.fetchLyrics(ctx, hits[0].URL)
}

// fetchLyrics downloads a song page and concatenates its lyric container
// blocks, joined by newline and trimmed.
func (c *Client) fetchLyrics(ctx context.Context, pageURL string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, lyricTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", fmt.Errorf("creating lyric page request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching lyric page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("lyric page returned status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", fmt.Errorf("parsing lyric page: %w", err)
	}

	var blocks []string
	doc.Find(lyricContainerSelector).Each(func(_ int, sel *goquery.Selection) {
		blocks = append(blocks, sel.Text())
	})

	return strings.TrimSpace(strings.Join(blocks, "\n")), nil
}
