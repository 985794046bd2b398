// Package handler provides the HTTP handlers for the foods feature.
package handler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"calorie_backend/internal/api"
	"calorie_backend/internal/feature/foods/domain/entity"
	"calorie_backend/internal/feature/foods/usecase"
)

// FoodsUsecase defines the food lookup operations.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type FoodsUsecase interface {
	Search(ctx context.Context, query string) ([]entity.Food, error)
	Recognize(ctx context.Context, imageData []byte) ([]entity.Food, error)
}

// FoodsHandler handles HTTP requests for food search and photo recognition.
type FoodsHandler struct {
	foods FoodsUsecase
}

// NewFoodsHandler creates a new FoodsHandler instance.
func NewFoodsHandler(foods FoodsUsecase) *FoodsHandler {
	return &FoodsHandler{foods: foods}
}

// Search handles GET /foods/search?query=.
// An empty result is a 200 with an empty list, not an error; an upstream
// failure is a 502 with a generic retry message.
func (h *FoodsHandler) Search(c *gin.Context) {
	query := c.Query("query")

	foods, err := h.foods.Search(c.Request.Context(), query)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrEmptyQuery):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "query is required"})
		case errors.Is(err, usecase.ErrUpstream):
			slog.Error("food search upstream failed", "error", err, "query", query)
			c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: "food search failed, please try again"})
		default:
			slog.Error("food search failed", "error", err, "query", query)
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "food search failed, please try again"})
		}
		return
	}

	c.JSON(http.StatusOK, toFoodResponses(foods))
}

// Recognize handles POST /foods/recognize.
//
// Content-Type: multipart/form-data, field "image" (max 10MB).
func (h *FoodsHandler) Recognize(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		slog.Warn("image upload missing", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "image file is required"})
		return
	}

	f, err := file.Open()
	if err != nil {
		slog.Error("failed to open uploaded image", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to read image"})
		return
	}
	defer func() {
		if err := f.Close(); err != nil {
			slog.Warn("failed to close uploaded image", "error", err)
		}
	}()

	imageData, err := io.ReadAll(f)
	if err != nil {
		slog.Error("failed to read uploaded image", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to read image"})
		return
	}

	foods, err := h.foods.Recognize(c.Request.Context(), imageData)
	if err != nil {
		if errors.Is(err, usecase.ErrRecognitionUnavailable) {
			c.JSON(http.StatusServiceUnavailable, api.ErrorResponse{Error: "photo recognition is not available"})
			return
		}
		slog.Error("food recognition failed", "error", err)
		c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: "recognition failed, please try again"})
		return
	}

	c.JSON(http.StatusOK, toFoodResponses(foods))
}

// toFoodResponses maps domain foods to their API representation.
// The result is never nil so an empty set serializes as [].
func toFoodResponses(foods []entity.Food) []api.FoodResponse {
	out := make([]api.FoodResponse, 0, len(foods))
	for _, f := range foods {
		out = append(out, api.FoodResponse{
			FdcID:           f.FdcID,
			Description:     f.Description,
			Calories:        f.Calories,
			Protein:         f.Protein,
			Carbs:           f.Carbs,
			Fat:             f.Fat,
			ServingSize:     f.ServingSize,
			ServingSizeUnit: f.ServingSizeUnit,
		})
	}
	return out
}
