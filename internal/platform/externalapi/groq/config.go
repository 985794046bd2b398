// Package groq provides a chat-completions client for the Groq API used to
// generate meals.
package groq

import (
	"os"
	"time"
)

// Config holds configuration for the Groq client.
type Config struct {
	APIKey  string        // API key for authentication
	BaseURL string        // Base URL for the API (e.g., "https://api.groq.com/openai/v1")
	Timeout time.Duration // HTTP request timeout
}

// LoadConfig loads Groq configuration from environment variables.
func LoadConfig() Config {
	base := os.Getenv("GROQ_BASE_URL")
	if base == "" {
		base = "https://api.groq.com/openai/v1"
	}
	return Config{
		APIKey:  os.Getenv("GROQ_API_KEY"),
		BaseURL: base,
		Timeout: 60 * time.Second,
	}
}
