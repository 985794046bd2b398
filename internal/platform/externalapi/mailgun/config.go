// Package mailgun provides a transactional email client for the Mailgun API.
package mailgun

import (
	"fmt"
	"os"
	"time"
)

// Config holds configuration for the Mailgun client.
type Config struct {
	APIKey  string        // API key for authentication
	Domain  string        // Sending domain registered with Mailgun
	From    string        // From header for outgoing mail
	BaseURL string        // Base URL for the API (e.g., "https://api.mailgun.net/v3")
	Timeout time.Duration // HTTP request timeout
}

// LoadConfig loads Mailgun configuration from environment variables.
func LoadConfig() Config {
	base := os.Getenv("MAILGUN_BASE_URL")
	if base == "" {
		base = "https://api.mailgun.net/v3"
	}
	domain := os.Getenv("MAILGUN_DOMAIN")
	from := os.Getenv("MAILGUN_FROM")
	if from == "" && domain != "" {
		from = fmt.Sprintf("Calorie Joy <mailgun@%s>", domain)
	}
	return Config{
		APIKey:  os.Getenv("MAILGUN_API_KEY"),
		Domain:  domain,
		From:    from,
		BaseURL: base,
		Timeout: 10 * time.Second,
	}
}

// Configured reports whether the client has credentials to send mail.
func (c Config) Configured() bool {
	return c.APIKey != "" && c.Domain != ""
}
