// Package beehiiv provides a newsletter client for the Beehiiv API.
package beehiiv

import (
	"os"
	"time"
)

// Config holds configuration for the Beehiiv client.
type Config struct {
	APIKey        string        // API key for authentication
	PublicationID string        // Publication the subscriptions belong to
	BaseURL       string        // Base URL for the API (e.g., "https://api.beehiiv.com/v2")
	Timeout       time.Duration // HTTP request timeout
}

// LoadConfig loads Beehiiv configuration from environment variables.
func LoadConfig() Config {
	base := os.Getenv("BEEHIIV_BASE_URL")
	if base == "" {
		base = "https://api.beehiiv.com/v2"
	}
	return Config{
		APIKey:        os.Getenv("BEEHIIV_API_KEY"),
		PublicationID: os.Getenv("BEEHIIV_PUBLICATION_ID"),
		BaseURL:       base,
		Timeout:       10 * time.Second,
	}
}

// Configured reports whether the client has credentials to call the API.
func (c Config) Configured() bool {
	return c.APIKey != "" && c.PublicationID != ""
}
