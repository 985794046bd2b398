package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"calorie_backend/internal/api"
	"calorie_backend/internal/feature/auth/transport/http/dto"
	"calorie_backend/internal/feature/auth/usecase"
)

// OTPUsecase defines the email-code login operations.
type OTPUsecase interface {
	// RequestCode issues a login code and emails it to the address.
	RequestCode(ctx context.Context, email string) error
	// VerifyCode consumes a code and returns a session token on success.
	VerifyCode(ctx context.Context, email, code string) (string, error)
}

// OTPHandler handles HTTP requests for the email-code login flow.
type OTPHandler struct {
	otp OTPUsecase
}

// NewOTPHandler creates a new OTPHandler instance.
func NewOTPHandler(otp OTPUsecase) *OTPHandler {
	return &OTPHandler{otp: otp}
}

// RequestCode handles POST /auth/otp/request.
// Success means the code was persisted; email delivery is best effort and
// does not change the response.
func (h *OTPHandler) RequestCode(c *gin.Context) {
	var req dto.CodeRequestReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("code request validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}
	if err := h.otp.RequestCode(c.Request.Context(), req.Email); err != nil {
		slog.Error("code request failed", "error", err, "email", req.Email)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "could not send code, please try again"})
		return
	}
	slog.Info("login code issued", "email", req.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, api.MessageResponse{Message: "code sent"})
}

// VerifyCode handles POST /auth/otp/verify.
// The failure reason is surfaced when it is distinguishable (used, expired,
// invalid); all three map to 401.
func (h *OTPHandler) VerifyCode(c *gin.Context) {
	var req dto.CodeVerifyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("code verify validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	token, err := h.otp.VerifyCode(c.Request.Context(), req.Email, req.Code)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrCodeAlreadyUsed):
			c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "code already used"})
		case errors.Is(err, usecase.ErrCodeExpired):
			c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "code expired"})
		case errors.Is(err, usecase.ErrInvalidCode):
			c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "invalid code"})
		default:
			slog.Error("code verification failed", "error", err, "email", req.Email)
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "verification failed, please try again"})
		}
		return
	}

	slog.Info("code login successful", "email", req.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, api.TokenResponse{Token: token})
}
