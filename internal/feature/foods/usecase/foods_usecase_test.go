package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"calorie_backend/internal/feature/foods/domain/entity"
)

// mockFoodRepository is a mock implementation of the FoodRepository interface.
type mockFoodRepository struct {
	SearchFunc func(ctx context.Context, query string) ([]entity.Food, error)
}

func (m *mockFoodRepository) Search(ctx context.Context, query string) ([]entity.Food, error) {
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, query)
	}
	return nil, nil
}

// mockFoodRecognizer is a mock implementation of the FoodRecognizer interface.
type mockFoodRecognizer struct {
	DetectLabelsFunc func(ctx context.Context, imageData []byte) ([]entity.FoodLabel, error)
}

func (m *mockFoodRecognizer) DetectLabels(ctx context.Context, imageData []byte) ([]entity.FoodLabel, error) {
	if m.DetectLabelsFunc != nil {
		return m.DetectLabelsFunc(ctx, imageData)
	}
	return nil, nil
}

func TestFoodsUsecase_Search(t *testing.T) {
	ctx := context.Background()

	t.Run("trims the query before searching", func(t *testing.T) {
		repo := &mockFoodRepository{
			SearchFunc: func(ctx context.Context, query string) ([]entity.Food, error) {
				assert.Equal(t, "banana", query)
				return []entity.Food{{FdcID: 1, Description: "Bananas, raw"}}, nil
			},
		}
		uc := NewFoodsUsecase(repo, nil)

		foods, err := uc.Search(ctx, "  banana  ")

		require.NoError(t, err)
		assert.Len(t, foods, 1)
	})

	t.Run("blank query", func(t *testing.T) {
		uc := NewFoodsUsecase(&mockFoodRepository{}, nil)

		_, err := uc.Search(ctx, "   ")

		assert.ErrorIs(t, err, ErrEmptyQuery)
	})
}

func TestFoodsUsecase_Recognize(t *testing.T) {
	ctx := context.Background()
	image := []byte("fake-image-bytes")

	t.Run("searches for the most confident label", func(t *testing.T) {
		recognizer := &mockFoodRecognizer{
			DetectLabelsFunc: func(ctx context.Context, imageData []byte) ([]entity.FoodLabel, error) {
				return []entity.FoodLabel{
					{Name: "Pizza", Confidence: 0.97},
					{Name: "Cheese", Confidence: 0.81},
				}, nil
			},
		}
		repo := &mockFoodRepository{
			SearchFunc: func(ctx context.Context, query string) ([]entity.Food, error) {
				assert.Equal(t, "Pizza", query)
				return []entity.Food{{Description: "Pizza, cheese"}}, nil
			},
		}
		uc := NewFoodsUsecase(repo, recognizer)

		foods, err := uc.Recognize(ctx, image)

		require.NoError(t, err)
		assert.Len(t, foods, 1)
	})

	t.Run("no recognizer configured", func(t *testing.T) {
		uc := NewFoodsUsecase(&mockFoodRepository{}, nil)

		_, err := uc.Recognize(ctx, image)

		assert.ErrorIs(t, err, ErrRecognitionUnavailable)
	})

	t.Run("no labels yields an empty result", func(t *testing.T) {
		uc := NewFoodsUsecase(&mockFoodRepository{}, &mockFoodRecognizer{})

		foods, err := uc.Recognize(ctx, image)

		require.NoError(t, err)
		assert.NotNil(t, foods)
		assert.Empty(t, foods)
	})

	t.Run("empty image", func(t *testing.T) {
		uc := NewFoodsUsecase(&mockFoodRepository{}, &mockFoodRecognizer{})

		_, err := uc.Recognize(ctx, nil)

		assert.Error(t, err)
	})

	t.Run("oversized image", func(t *testing.T) {
		uc := NewFoodsUsecase(&mockFoodRepository{}, &mockFoodRecognizer{})

		_, err := uc.Recognize(ctx, make([]byte, MaxImageSize+1))

		assert.Error(t, err)
	})

	t.Run("detection failure", func(t *testing.T) {
		recognizer := &mockFoodRecognizer{
			DetectLabelsFunc: func(ctx context.Context, imageData []byte) ([]entity.FoodLabel, error) {
				return nil, errors.New("vision api down")
			},
		}
		uc := NewFoodsUsecase(&mockFoodRepository{}, recognizer)

		_, err := uc.Recognize(ctx, image)

		assert.Error(t, err)
	})
}
