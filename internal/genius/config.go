// Package genius provides Genius API integration for finding and scraping
// song lyrics.
package genius

import (
	"errors"
	"os"
)

// ErrMissingAPIKey is returned when GENIUS_KEY is not set.
var ErrMissingAPIKey = errors.New("missing GENIUS_KEY environment variable")

// Config holds Genius API configuration.
type Config struct {
	APIKey string
}

// LoadConfig reads Genius configuration from environment variables.
// Returns ErrMissingAPIKey if GENIUS_KEY is not set.
func LoadConfig() (*Config, error) {
	apiKey := os.Getenv("GENIUS_KEY")
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	return &Config{APIKey: apiKey}, nil
}
