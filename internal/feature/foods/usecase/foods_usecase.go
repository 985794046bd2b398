package usecase

import (
	"context"
	"fmt"
	"strings"

	"calorie_backend/internal/feature/foods/domain/entity"
)

// MaxImageSize is the upper bound for uploaded food photos (10MB).
const MaxImageSize = 10 * 1024 * 1024

// FoodRepository abstracts the food-composition search backend.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type FoodRepository interface {
	// Search returns the foods matching a free-text query. An empty slice is
	// a valid result, not an error.
	Search(ctx context.Context, query string) ([]entity.Food, error)
}

// FoodRecognizer detects food labels in an image.
type FoodRecognizer interface {
	// DetectLabels returns the labels detected in the image bytes, most
	// confident first.
	DetectLabels(ctx context.Context, imageData []byte) ([]entity.FoodLabel, error)
}

// foodsUsecase implements food search and photo recognition.
type foodsUsecase struct {
	foods      FoodRepository
	recognizer FoodRecognizer // optional
}

// NewFoodsUsecase creates a new foodsUsecase instance. recognizer may be nil
// when photo recognition is not configured.
func NewFoodsUsecase(foods FoodRepository, recognizer FoodRecognizer) *foodsUsecase {
	return &foodsUsecase{foods: foods, recognizer: recognizer}
}

// Search looks up foods by free-text query.
func (u *foodsUsecase) Search(ctx context.Context, query string) ([]entity.Food, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptyQuery
	}
	return u.foods.Search(ctx, query)
}

// Recognize detects what food a photo shows and searches the database for
// the most confident label. No detected labels yields an empty result, the
// same "no foods found" state a fruitless search produces.
func (u *foodsUsecase) Recognize(ctx context.Context, imageData []byte) ([]entity.Food, error) {
	if u.recognizer == nil {
		return nil, ErrRecognitionUnavailable
	}
	if len(imageData) == 0 {
		return nil, fmt.Errorf("image data is empty")
	}
	if len(imageData) > MaxImageSize {
		return nil, fmt.Errorf("image size exceeds maximum of %d bytes", MaxImageSize)
	}

	labels, err := u.recognizer.DetectLabels(ctx, imageData)
	if err != nil {
		return nil, fmt.Errorf("label detection failed: %w", err)
	}
	if len(labels) == 0 {
		return []entity.Food{}, nil
	}
	return u.foods.Search(ctx, labels[0].Name)
}
