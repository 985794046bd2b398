// Package handler provides the HTTP handlers for the meals feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"calorie_backend/internal/api"
	creditsuc "calorie_backend/internal/feature/credits/usecase"
	"calorie_backend/internal/feature/meals/domain/entity"
	"calorie_backend/internal/feature/meals/transport/http/dto"
	"calorie_backend/internal/feature/meals/usecase"
	jwtmw "calorie_backend/internal/platform/jwt"
)

// MealsUsecase defines the meal generation operation the handler needs.
type MealsUsecase interface {
	Generate(ctx context.Context, userID uint, email string, prefs entity.MealPreferences) (entity.GeneratedMeal, error)
}

// MealsHandler handles HTTP requests for AI meal generation.
type MealsHandler struct {
	meals MealsUsecase
}

// NewMealsHandler creates a new MealsHandler instance.
func NewMealsHandler(meals MealsUsecase) *MealsHandler {
	return &MealsHandler{meals: meals}
}

// Generate handles POST /meals/generate for the authenticated user.
// An exhausted quota is a 402; the credit is spent before the model call,
// so a generation failure after a successful spend is a 502.
func (h *MealsHandler) Generate(c *gin.Context) {
	userID, email, ok := jwtmw.UserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "unauthenticated"})
		return
	}

	var req dto.GenerateMealReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("invalid meal generation request", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request body"})
		return
	}

	prefs := entity.MealPreferences{
		Diet:            req.Diet,
		MaxCalories:     req.MaxCalories,
		FoodPreferences: req.FoodPreferences,
		FoodsToAvoid:    req.FoodsToAvoid,
		MacroFocus:      entity.MacroFocus(req.MacroFocus),
		MaxBudget:       req.MaxBudget,
	}

	meal, err := h.meals.Generate(c.Request.Context(), userID, email, prefs)
	if err != nil {
		switch {
		case errors.Is(err, creditsuc.ErrNoCredits):
			c.JSON(http.StatusPaymentRequired, api.ErrorResponse{Error: "no credits remaining"})
		case errors.Is(err, usecase.ErrInvalidPreferences):
			slog.Warn("invalid meal preferences", "error", err, "remote_addr", c.ClientIP())
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid meal preferences"})
		case errors.Is(err, usecase.ErrGeneration):
			slog.Error("meal generation failed", "error", err, "user_id", userID)
			c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: "meal generation failed, please try again"})
		default:
			slog.Error("meal generation failed", "error", err, "user_id", userID)
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "meal generation failed, please try again"})
		}
		return
	}

	c.JSON(http.StatusOK, api.MealResponse{
		Name:          meal.Name,
		Description:   meal.Description,
		Calories:      meal.Calories,
		Protein:       meal.Protein,
		Carbs:         meal.Carbs,
		Fat:           meal.Fat,
		MissingFields: meal.Missing,
		Raw:           meal.Raw,
	})
}
