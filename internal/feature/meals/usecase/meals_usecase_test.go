package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	creditsusecase "calorie_backend/internal/feature/credits/usecase"
	"calorie_backend/internal/feature/meals/domain/entity"
)

// mockCreditLedger is a mock implementation of the CreditLedger interface.
type mockCreditLedger struct {
	ConsumeFunc func(ctx context.Context, userID uint, email string) error
	calls       int
}

func (m *mockCreditLedger) Consume(ctx context.Context, userID uint, email string) error {
	m.calls++
	if m.ConsumeFunc != nil {
		return m.ConsumeFunc(ctx, userID, email)
	}
	return nil
}

// mockMealGenerator is a mock implementation of the MealGenerator interface.
type mockMealGenerator struct {
	GenerateFunc func(ctx context.Context, prefs entity.MealPreferences) (entity.GeneratedMeal, error)
	calls        int
}

func (m *mockMealGenerator) Generate(ctx context.Context, prefs entity.MealPreferences) (entity.GeneratedMeal, error) {
	m.calls++
	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx, prefs)
	}
	return entity.GeneratedMeal{Name: "Test Meal", Calories: 500}, nil
}

func TestMealsUsecase_Generate(t *testing.T) {
	ctx := context.Background()

	t.Run("successful generation spends one credit", func(t *testing.T) {
		ledger := &mockCreditLedger{}
		generator := &mockMealGenerator{}
		uc := NewMealsUsecase(ledger, generator)

		meal, err := uc.Generate(ctx, 1, "user@example.com", entity.MealPreferences{
			Diet:        "vegetarian",
			MaxCalories: 600,
			MacroFocus:  entity.MacroFocusProtein,
		})

		require.NoError(t, err)
		assert.Equal(t, "Test Meal", meal.Name)
		assert.Equal(t, 1, ledger.calls)
		assert.Equal(t, 1, generator.calls)
	})

	t.Run("empty macro focus defaults to balanced", func(t *testing.T) {
		generator := &mockMealGenerator{
			GenerateFunc: func(ctx context.Context, prefs entity.MealPreferences) (entity.GeneratedMeal, error) {
				assert.Equal(t, entity.MacroFocusBalanced, prefs.MacroFocus)
				return entity.GeneratedMeal{}, nil
			},
		}
		uc := NewMealsUsecase(&mockCreditLedger{}, generator)

		_, err := uc.Generate(ctx, 1, "user@example.com", entity.MealPreferences{})

		require.NoError(t, err)
	})

	t.Run("invalid macro focus", func(t *testing.T) {
		ledger := &mockCreditLedger{}
		uc := NewMealsUsecase(ledger, &mockMealGenerator{})

		_, err := uc.Generate(ctx, 1, "user@example.com", entity.MealPreferences{
			MacroFocus: "Sugar",
		})

		assert.ErrorIs(t, err, ErrInvalidPreferences)
		assert.Zero(t, ledger.calls, "no credit may be spent on an invalid request")
	})

	t.Run("exhausted quota blocks generation", func(t *testing.T) {
		ledger := &mockCreditLedger{
			ConsumeFunc: func(ctx context.Context, userID uint, email string) error {
				return creditsusecase.ErrNoCredits
			},
		}
		generator := &mockMealGenerator{}
		uc := NewMealsUsecase(ledger, generator)

		_, err := uc.Generate(ctx, 1, "user@example.com", entity.MealPreferences{})

		assert.ErrorIs(t, err, creditsusecase.ErrNoCredits)
		assert.Zero(t, generator.calls, "generator must not run without a credit")
	})

	t.Run("generation failure after spend", func(t *testing.T) {
		generator := &mockMealGenerator{
			GenerateFunc: func(ctx context.Context, prefs entity.MealPreferences) (entity.GeneratedMeal, error) {
				return entity.GeneratedMeal{}, errors.New("model timeout")
			},
		}
		uc := NewMealsUsecase(&mockCreditLedger{}, generator)

		_, err := uc.Generate(ctx, 1, "user@example.com", entity.MealPreferences{})

		assert.ErrorIs(t, err, ErrGeneration)
	})
}

func TestBuildPrompt(t *testing.T) {
	prompt := BuildPrompt(entity.MealPreferences{
		Diet:            "vegan",
		MaxCalories:     550,
		FoodPreferences: "tofu, lentils",
		FoodsToAvoid:    "peanuts",
		MacroFocus:      entity.MacroFocusProtein,
		MaxBudget:       12.50,
	})

	assert.Contains(t, prompt, "Dietary Preference: vegan")
	assert.Contains(t, prompt, "Max Calories Limit: 550 kcal")
	assert.Contains(t, prompt, "Foods to Avoid: peanuts")
	assert.Contains(t, prompt, "What Macro to Focus On: Protein")
	assert.Contains(t, prompt, "Max Budget per Meal: $12.50")
	// The parser depends on these exact label lines being requested.
	assert.Contains(t, prompt, "Calories per Serving:")
	assert.Contains(t, prompt, "Protein per Serving:")
	assert.Contains(t, prompt, "Carbs per Serving:")
	assert.Contains(t, prompt, "Fats per Serving:")
}
