// Package usda provides a client for the USDA FoodData Central search API.
package usda

import (
	"os"
	"time"
)

// Config holds configuration for the FoodData Central client.
type Config struct {
	APIKey  string        // API key for authentication
	BaseURL string        // Base URL for the API (e.g., "https://api.nal.usda.gov/fdc/v1")
	Timeout time.Duration // HTTP request timeout
}

// LoadConfig loads FoodData Central configuration from environment variables.
func LoadConfig() Config {
	base := os.Getenv("USDA_BASE_URL")
	if base == "" {
		base = "https://api.nal.usda.gov/fdc/v1"
	}
	return Config{
		APIKey:  os.Getenv("USDA_API_KEY"),
		BaseURL: base,
		Timeout: 10 * time.Second,
	}
}
