package beehiiv

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	authuc "calorie_backend/internal/feature/auth/usecase"
	newsuc "calorie_backend/internal/feature/newsletter/usecase"
)

// Subscription acquisition attribution, fixed per campaign.
const (
	utmSource     = "calofree"
	utmMedium     = "ads"
	utmCampaign   = "busybits"
	referringSite = "www.freecaloriecounter.com/"
)

type subscribeRequest struct {
	Email              string `json:"email"`
	ReactivateExisting bool   `json:"reactivate_existing"`
	SendWelcomeEmail   bool   `json:"send_welcome_email"`
	UTMSource          string `json:"utm_source"`
	UTMMedium          string `json:"utm_medium"`
	UTMCampaign        string `json:"utm_campaign"`
	ReferringSite      string `json:"referring_site"`
}

type subscriptionResponse struct {
	Data struct {
		Status string `json:"status"`
	} `json:"data"`
}

// Client talks to the Beehiiv subscriptions API for one publication.
type Client struct {
	cfg    Config
	client *http.Client
}

// Compile-time checks that Client serves both the newsletter feature and
// the signup-time enrollment in the auth feature.
var (
	_ newsuc.Subscriber = (*Client)(nil)
	_ authuc.Newsletter = (*Client)(nil)
)

// NewClient creates a new Client instance with the given configuration and
// HTTP client.
func NewClient(cfg Config, client *http.Client) *Client {
	return &Client{cfg: cfg, client: client}
}

// IsSubscribed looks the email up via the by_email endpoint. A 404 means no
// subscription and is not an error.
func (b *Client) IsSubscribed(ctx context.Context, email string) (bool, error) {
	u := fmt.Sprintf("%s/publications/%s/subscriptions/by_email/%s",
		b.cfg.BaseURL, b.cfg.PublicationID, url.PathEscape(email))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return false, err
	}
	req.Header.Set("Authorization", "Bearer "+b.cfg.APIKey)

	res, err := b.client.Do(req)
	if err != nil {
		return false, err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode == http.StatusNotFound {
		return false, nil
	}
	if res.StatusCode >= 400 {
		return false, fmt.Errorf("beehiiv: http %d", res.StatusCode)
	}

	var body subscriptionResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return false, err
	}
	return body.Data.Status == "active", nil
}

// Subscribe enrolls the email in the publication. The welcome email is
// suppressed because enrollment happens as a side effect of login.
func (b *Client) Subscribe(ctx context.Context, email string) error {
	payload := subscribeRequest{
		Email:              email,
		ReactivateExisting: false,
		SendWelcomeEmail:   false,
		UTMSource:          utmSource,
		UTMMedium:          utmMedium,
		UTMCampaign:        utmCampaign,
		ReferringSite:      referringSite,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	u := fmt.Sprintf("%s/publications/%s/subscriptions", b.cfg.BaseURL, b.cfg.PublicationID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+b.cfg.APIKey)

	res, err := b.client.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode >= 400 {
		return fmt.Errorf("beehiiv: http %d", res.StatusCode)
	}
	return nil
}
