package mailgun

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"calorie_backend/internal/feature/auth/usecase"
)

// Client is a CodeMailer implementation backed by the Mailgun messages API.
type Client struct {
	cfg    Config
	client *http.Client
}

// Compile-time check that Client implements CodeMailer.
var _ usecase.CodeMailer = (*Client)(nil)

// NewClient creates a new Client instance with the given configuration and
// HTTP client.
func NewClient(cfg Config, client *http.Client) *Client {
	return &Client{cfg: cfg, client: client}
}

// Send posts one plain-text message to /{domain}/messages. Mailgun
// authenticates with HTTP Basic auth, user "api" and the key as password.
func (m *Client) Send(ctx context.Context, to, subject, body string) error {
	form := url.Values{}
	form.Set("from", m.cfg.From)
	form.Set("to", to)
	form.Set("subject", subject)
	form.Set("text", body)

	u := fmt.Sprintf("%s/%s/messages", m.cfg.BaseURL, m.cfg.Domain)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth("api", m.cfg.APIKey)

	res, err := m.client.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode >= 400 {
		msg, _ := io.ReadAll(io.LimitReader(res.Body, 512))
		return fmt.Errorf("mailgun: http %d: %s", res.StatusCode, strings.TrimSpace(string(msg)))
	}
	return nil
}
