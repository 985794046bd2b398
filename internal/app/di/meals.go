package di

import (
	"context"
	"log/slog"
	"os"
	"time"

	"calorie_backend/internal/feature/meals/adapters/gemini"
	mealsusecase "calorie_backend/internal/feature/meals/usecase"
	"calorie_backend/internal/platform/externalapi/groq"
	infrahttp "calorie_backend/internal/platform/http"
	"calorie_backend/internal/shared/ratelimiter"
)

// Groq's free tier allows thirty requests per minute.
const groqRequestsPerMinute = 30

// NewMealGenerator selects the generation backend. Gemini is preferred when
// its credentials are configured; otherwise the Groq chat API is used.
func NewMealGenerator(ctx context.Context) mealsusecase.MealGenerator {
	if os.Getenv("GOOGLE_GENAI_USE_VERTEXAI") != "" || os.Getenv("GEMINI_API_KEY") != "" {
		generator, err := gemini.NewGeminiGenerator(ctx)
		if err == nil {
			return generator
		}
		slog.Warn("gemini unavailable, falling back to groq", "error", err)
	}

	cfg := groq.LoadConfig()
	httpClient := infrahttp.NewHTTPClient(cfg.Timeout)
	limiter := ratelimiter.NewRateLimiter(groqRequestsPerMinute, time.Minute)
	return groq.NewClient(cfg, httpClient, limiter)
}
