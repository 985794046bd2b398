// Package di provides dependency injection factories for creating application components.
package di

import (
	"context"
	"log/slog"

	redisv9 "github.com/redis/go-redis/v9"

	"calorie_backend/internal/feature/foods/adapters/vision"
	foodsusecase "calorie_backend/internal/feature/foods/usecase"
	"calorie_backend/internal/platform/cache"
	"calorie_backend/internal/platform/externalapi/usda"
	infrahttp "calorie_backend/internal/platform/http"
)

// NewFoodRepository creates the FoodData Central client wrapped in the Redis
// cache. A nil rdb leaves the wrapper in pass-through mode.
func NewFoodRepository(rdb *redisv9.Client) foodsusecase.FoodRepository {
	cfg := usda.LoadConfig()
	httpClient := infrahttp.NewHTTPClient(cfg.Timeout)
	inner := usda.NewFoodDataClient(cfg, httpClient)
	return cache.NewCachingFoodRepository(rdb, 0, inner, "")
}

// NewFoodRecognizer creates the Vision label detector. When ADC credentials
// are absent it returns nil and the recognize endpoint reports itself
// unavailable instead of the whole service failing to start.
func NewFoodRecognizer(ctx context.Context) foodsusecase.FoodRecognizer {
	recognizer, err := vision.NewVisionFoodRecognizer(ctx)
	if err != nil {
		slog.Warn("photo recognition disabled", "error", err)
		return nil
	}
	return recognizer
}
