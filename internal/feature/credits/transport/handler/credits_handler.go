// Package handler provides the HTTP handlers for the credits feature.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"calorie_backend/internal/api"
	jwtmw "calorie_backend/internal/platform/jwt"
)

// CreditsUsecase defines the quota operations the handler needs.
type CreditsUsecase interface {
	// Remaining returns the user's quota, creating the record on first access.
	Remaining(ctx context.Context, userID uint, email string) (int, error)
}

// CreditsHandler handles HTTP requests for the generation quota.
type CreditsHandler struct {
	credits CreditsUsecase
}

// NewCreditsHandler creates a new CreditsHandler instance.
func NewCreditsHandler(credits CreditsUsecase) *CreditsHandler {
	return &CreditsHandler{credits: credits}
}

// Remaining handles GET /credits for the authenticated user.
func (h *CreditsHandler) Remaining(c *gin.Context) {
	userID, email, ok := jwtmw.UserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "unauthenticated"})
		return
	}

	remaining, err := h.credits.Remaining(c.Request.Context(), userID, email)
	if err != nil {
		slog.Error("failed to read credits", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "could not load credits"})
		return
	}
	c.JSON(http.StatusOK, api.CreditsResponse{CreditsRemaining: remaining})
}
