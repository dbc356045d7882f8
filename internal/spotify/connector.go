package spotify

import (
	"context"
	"fmt"

	"github.com/zmb3/spotify/v2"
	spotifyauth "github.com/zmb3/spotify/v2/auth"
	"golang.org/x/oauth2/clientcredentials"

	"github.com/echojournal/moodmatch/internal/recommend"
)

// Connector performs the client-credentials exchange and hands back an
// authenticated catalog client. The exchange runs per match request: a
// rejected exchange must surface before any search is attempted, and
// server-to-server tokens are short-lived enough that caching buys little.
type Connector struct {
	cfg      *Config
	tokenURL string
}

// ConnectorOption configures a Connector.
type ConnectorOption func(*Connector)

// WithTokenURL overrides the token endpoint (used by tests).
func WithTokenURL(url string) ConnectorOption {
	return func(c *Connector) {
		if url != "" {
			c.tokenURL = url
		}
	}
}

// NewConnector creates a Connector for the given credentials.
func NewConnector(cfg *Config, opts ...ConnectorOption) *Connector {
	c := &Connector{
		cfg:      cfg,
		tokenURL: spotifyauth.TokenURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Connect exchanges the client credentials for an access token and returns
// a search-ready catalog client. The token is requested eagerly so that a
// failed exchange is reported here, not on first search.
func (c *Connector) Connect(ctx context.Context) (recommend.Catalog, error) {
	config := &clientcredentials.Config{
		ClientID:     c.cfg.ClientID,
		ClientSecret: c.cfg.ClientSecret,
		TokenURL:     c.tokenURL,
	}

	token, err := config.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("exchanging client credentials: %w", err)
	}

	httpClient := spotifyauth.New().Client(ctx, token)
	return New(spotify.New(httpClient)), nil
}
