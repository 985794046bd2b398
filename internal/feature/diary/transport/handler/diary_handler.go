// Package handler provides the HTTP handlers for the diary feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"calorie_backend/internal/api"
	"calorie_backend/internal/feature/diary/domain/entity"
	"calorie_backend/internal/feature/diary/transport/http/dto"
	"calorie_backend/internal/feature/diary/usecase"
	jwtmw "calorie_backend/internal/platform/jwt"
)

// DiaryUsecase defines the diary operations the handler needs.
type DiaryUsecase interface {
	AddEntry(ctx context.Context, userID uint, entry entity.FoodEntry) (*entity.FoodEntry, error)
	ListDay(ctx context.Context, userID uint, date string) ([]entity.FoodEntry, usecase.DayTotals, error)
	AdjustServings(ctx context.Context, userID, entryID uint, servings float64) error
	Remove(ctx context.Context, userID, entryID uint) error
}

// DiaryHandler handles HTTP requests for the daily food diary.
type DiaryHandler struct {
	diary DiaryUsecase
}

// NewDiaryHandler creates a new DiaryHandler instance.
func NewDiaryHandler(diary DiaryUsecase) *DiaryHandler {
	return &DiaryHandler{diary: diary}
}

// AddEntry handles POST /entries for the authenticated user.
func (h *DiaryHandler) AddEntry(c *gin.Context) {
	userID, _, ok := jwtmw.UserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "unauthenticated"})
		return
	}

	var req dto.AddEntryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("invalid diary entry request", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request body"})
		return
	}

	entry, err := h.diary.AddEntry(c.Request.Context(), userID, entity.FoodEntry{
		Date:            req.Date,
		FdcID:           req.FdcID,
		FoodName:        req.FoodName,
		Calories:        req.Calories,
		Protein:         req.Protein,
		Carbs:           req.Carbs,
		Fat:             req.Fat,
		ServingSize:     req.ServingSize,
		ServingSizeUnit: req.ServingSizeUnit,
		Servings:        req.Servings,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidDate), errors.Is(err, usecase.ErrInvalidEntry):
			slog.Warn("rejected diary entry", "error", err, "remote_addr", c.ClientIP())
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid entry"})
		default:
			slog.Error("failed to add diary entry", "error", err, "user_id", userID)
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "could not save entry"})
		}
		return
	}

	c.JSON(http.StatusCreated, toEntryResponse(*entry))
}

// ListDay handles GET /entries?date= for the authenticated user.
func (h *DiaryHandler) ListDay(c *gin.Context) {
	userID, _, ok := jwtmw.UserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "unauthenticated"})
		return
	}

	date := c.Query("date")
	entries, totals, err := h.diary.ListDay(c.Request.Context(), userID, date)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidDate) {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "date must be YYYY-MM-DD"})
			return
		}
		slog.Error("failed to list diary entries", "error", err, "user_id", userID, "date", date)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "could not load entries"})
		return
	}

	out := make([]api.EntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, toEntryResponse(e))
	}
	c.JSON(http.StatusOK, api.DayResponse{
		Date:    date,
		Entries: out,
		Totals: api.TotalsResponse{
			Calories: totals.Calories,
			Protein:  totals.Protein,
			Carbs:    totals.Carbs,
			Fat:      totals.Fat,
		},
	})
}

// AdjustServings handles PATCH /entries/:id/servings for the authenticated user.
func (h *DiaryHandler) AdjustServings(c *gin.Context) {
	userID, _, ok := jwtmw.UserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "unauthenticated"})
		return
	}

	entryID, ok := entryIDParam(c)
	if !ok {
		return
	}

	var req dto.AdjustServingsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("invalid servings request", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request body"})
		return
	}

	if err := h.diary.AdjustServings(c.Request.Context(), userID, entryID, req.Servings); err != nil {
		if errors.Is(err, usecase.ErrEntryNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "entry not found"})
			return
		}
		slog.Error("failed to adjust servings", "error", err, "user_id", userID, "entry_id", entryID)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "could not update entry"})
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "servings updated"})
}

// Remove handles DELETE /entries/:id for the authenticated user.
func (h *DiaryHandler) Remove(c *gin.Context) {
	userID, _, ok := jwtmw.UserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "unauthenticated"})
		return
	}

	entryID, ok := entryIDParam(c)
	if !ok {
		return
	}

	if err := h.diary.Remove(c.Request.Context(), userID, entryID); err != nil {
		if errors.Is(err, usecase.ErrEntryNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "entry not found"})
			return
		}
		slog.Error("failed to delete diary entry", "error", err, "user_id", userID, "entry_id", entryID)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "could not delete entry"})
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "entry deleted"})
}

// entryIDParam parses the :id path parameter, writing a 400 on failure.
func entryIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid entry id"})
		return 0, false
	}
	return uint(id), true
}

// toEntryResponse maps a domain entry to its API representation.
func toEntryResponse(e entity.FoodEntry) api.EntryResponse {
	return api.EntryResponse{
		ID:       e.ID,
		Date:     e.Date,
		FoodName: e.FoodName,
		Calories: e.Calories,
		Protein:  e.Protein,
		Carbs:    e.Carbs,
		Fat:      e.Fat,
		Servings: e.Servings,
	}
}
