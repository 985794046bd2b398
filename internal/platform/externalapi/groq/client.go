package groq

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"calorie_backend/internal/feature/meals/domain/entity"
	"calorie_backend/internal/feature/meals/usecase"
	"calorie_backend/internal/shared/ratelimiter"
)

// Generation parameters. The high temperature keeps repeated requests from
// returning the same dish; max_tokens leaves room for the full recipe.
const (
	model       = "llama-3.1-8b-instant"
	maxTokens   = 7999
	temperature = 1.2
)

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Client is a MealGenerator implementation backed by Groq chat completions.
type Client struct {
	cfg     Config
	client  *http.Client
	limiter ratelimiter.RateLimiterInterface
}

// Compile-time check that Client implements MealGenerator.
var _ usecase.MealGenerator = (*Client)(nil)

// NewClient creates a new Client instance with the given configuration,
// HTTP client, and rate limiter. The limiter may be nil.
func NewClient(cfg Config, client *http.Client, limiter ratelimiter.RateLimiterInterface) *Client {
	return &Client{cfg: cfg, client: client, limiter: limiter}
}

// Generate sends the rendered prompt to /chat/completions and parses the
// model's text into a typed meal.
func (g *Client) Generate(ctx context.Context, prefs entity.MealPreferences) (entity.GeneratedMeal, error) {
	if g.limiter != nil {
		g.limiter.WaitIfNeeded()
	}

	payload := chatRequest{
		Model: model,
		Messages: []chatMessage{
			{Role: "system", Content: usecase.BuildPrompt(prefs)},
		},
		MaxTokens:   maxTokens,
		Temperature: temperature,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return entity.GeneratedMeal{}, err
	}

	u := g.cfg.BaseURL + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(body))
	if err != nil {
		return entity.GeneratedMeal{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.cfg.APIKey)

	res, err := g.client.Do(req)
	if err != nil {
		return entity.GeneratedMeal{}, err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode >= 400 {
		return entity.GeneratedMeal{}, fmt.Errorf("groq: http %d", res.StatusCode)
	}

	var parsed chatResponse
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return entity.GeneratedMeal{}, err
	}
	if len(parsed.Choices) == 0 {
		return entity.GeneratedMeal{}, fmt.Errorf("groq: empty response")
	}

	return usecase.ParseMealText(parsed.Choices[0].Message.Content), nil
}
