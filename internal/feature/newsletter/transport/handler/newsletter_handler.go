// Package handler provides the HTTP handlers for the newsletter feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"calorie_backend/internal/api"
	"calorie_backend/internal/feature/newsletter/transport/http/dto"
	"calorie_backend/internal/feature/newsletter/usecase"
)

// NewsletterUsecase defines the newsletter operation the handler needs.
type NewsletterUsecase interface {
	Subscribe(ctx context.Context, email string) error
}

// NewsletterHandler handles HTTP requests for newsletter enrollment.
type NewsletterHandler struct {
	newsletter NewsletterUsecase
}

// NewNewsletterHandler creates a new NewsletterHandler instance.
func NewNewsletterHandler(newsletter NewsletterUsecase) *NewsletterHandler {
	return &NewsletterHandler{newsletter: newsletter}
}

// Subscribe handles POST /newsletter/subscribe. An already-subscribed email
// gets the same 200 as a fresh one.
func (h *NewsletterHandler) Subscribe(c *gin.Context) {
	var req dto.SubscribeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("invalid subscribe request", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "a valid email is required"})
		return
	}

	if err := h.newsletter.Subscribe(c.Request.Context(), req.Email); err != nil {
		if errors.Is(err, usecase.ErrNotConfigured) {
			c.JSON(http.StatusServiceUnavailable, api.ErrorResponse{Error: "newsletter is not available"})
			return
		}
		slog.Error("newsletter subscription failed", "error", err)
		c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: "subscription failed, please try again"})
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "subscribed"})
}
