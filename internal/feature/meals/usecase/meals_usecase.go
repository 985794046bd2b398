package usecase

import (
	"context"
	"fmt"

	"calorie_backend/internal/feature/meals/domain/entity"
)

// CreditLedger is the part of the credits feature the meals usecase needs.
type CreditLedger interface {
	// Consume spends one credit for the user, returning an error when no
	// credits remain.
	Consume(ctx context.Context, userID uint, email string) error
}

// MealGenerator produces a meal from user preferences. Implementations call
// an external model.
type MealGenerator interface {
	Generate(ctx context.Context, prefs entity.MealPreferences) (entity.GeneratedMeal, error)
}

// MealsUsecase defines the meals business logic.
type MealsUsecase interface {
	Generate(ctx context.Context, userID uint, email string, prefs entity.MealPreferences) (entity.GeneratedMeal, error)
}

type mealsUsecase struct {
	credits   CreditLedger
	generator MealGenerator
}

// NewMealsUsecase creates a MealsUsecase backed by the given ledger and
// generator.
func NewMealsUsecase(credits CreditLedger, generator MealGenerator) MealsUsecase {
	return &mealsUsecase{credits: credits, generator: generator}
}

// Generate validates the preferences, spends one credit, then calls the
// generator. The credit is spent before the model call so a user cannot
// run unlimited generations by cancelling requests mid-flight; a failed
// generation after a successful spend is reported as ErrGeneration.
func (u *mealsUsecase) Generate(ctx context.Context, userID uint, email string, prefs entity.MealPreferences) (entity.GeneratedMeal, error) {
	if prefs.MacroFocus == "" {
		prefs.MacroFocus = entity.MacroFocusBalanced
	}
	if !prefs.MacroFocus.Valid() {
		return entity.GeneratedMeal{}, fmt.Errorf("%w: macro focus %q", ErrInvalidPreferences, prefs.MacroFocus)
	}
	if prefs.MaxCalories < 0 {
		return entity.GeneratedMeal{}, fmt.Errorf("%w: negative max calories", ErrInvalidPreferences)
	}
	if prefs.MaxBudget < 0 {
		return entity.GeneratedMeal{}, fmt.Errorf("%w: negative max budget", ErrInvalidPreferences)
	}

	if err := u.credits.Consume(ctx, userID, email); err != nil {
		return entity.GeneratedMeal{}, err
	}

	meal, err := u.generator.Generate(ctx, prefs)
	if err != nil {
		return entity.GeneratedMeal{}, fmt.Errorf("%w: %v", ErrGeneration, err)
	}
	return meal, nil
}
