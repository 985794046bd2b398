package usecase

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"calorie_backend/internal/feature/diary/domain/entity"
)

// Serving amounts are quarter-serving steps with a floor of one quarter.
const (
	MinServings  = 0.25
	ServingsStep = 0.25
)

// EntryRepository abstracts the persistence layer for diary entries.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type EntryRepository interface {
	// Create persists a new entry.
	Create(ctx context.Context, entry *entity.FoodEntry) error

	// ListByUserAndDate returns the user's entries for one day, oldest first.
	ListByUserAndDate(ctx context.Context, userID uint, date string) ([]entity.FoodEntry, error)

	// UpdateServings sets the serving count of the user's entry.
	// Returns ErrEntryNotFound when the entry does not exist or belongs to
	// another user.
	UpdateServings(ctx context.Context, userID, entryID uint, servings float64) error

	// Delete removes the user's entry. Returns ErrEntryNotFound when the
	// entry does not exist or belongs to another user.
	Delete(ctx context.Context, userID, entryID uint) error
}

// DayTotals is the aggregated intake for one calendar day.
type DayTotals struct {
	Calories float64
	Protein  float64
	Carbs    float64
	Fat      float64
}

// DiaryUsecase defines the food diary business logic.
type DiaryUsecase interface {
	AddEntry(ctx context.Context, userID uint, entry entity.FoodEntry) (*entity.FoodEntry, error)
	ListDay(ctx context.Context, userID uint, date string) ([]entity.FoodEntry, DayTotals, error)
	AdjustServings(ctx context.Context, userID, entryID uint, servings float64) error
	Remove(ctx context.Context, userID, entryID uint) error
}

type diaryUsecase struct {
	entries EntryRepository
}

// NewDiaryUsecase creates a DiaryUsecase backed by the given repository.
func NewDiaryUsecase(entries EntryRepository) DiaryUsecase {
	return &diaryUsecase{entries: entries}
}

// ClampServings snaps a serving count to the nearest quarter step and floors
// it at a quarter serving. Zero and negative inputs (including an omitted
// field) default to one serving.
func ClampServings(s float64) float64 {
	if s <= 0 {
		return 1
	}
	snapped := math.Round(s/ServingsStep) * ServingsStep
	if snapped < MinServings {
		return MinServings
	}
	return snapped
}

// AddEntry validates and logs a food for a calendar day. The caller's
// nutrient snapshot is stored as-is so later database updates never rewrite
// the user's history.
func (u *diaryUsecase) AddEntry(ctx context.Context, userID uint, entry entity.FoodEntry) (*entity.FoodEntry, error) {
	if err := validateDate(entry.Date); err != nil {
		return nil, err
	}
	if strings.TrimSpace(entry.FoodName) == "" {
		return nil, fmt.Errorf("%w: food name is required", ErrInvalidEntry)
	}
	if entry.Calories < 0 || entry.Protein < 0 || entry.Carbs < 0 || entry.Fat < 0 {
		return nil, fmt.Errorf("%w: negative nutrient value", ErrInvalidEntry)
	}

	entry.ID = 0
	entry.UserID = userID
	entry.Servings = ClampServings(entry.Servings)

	if err := u.entries.Create(ctx, &entry); err != nil {
		return nil, fmt.Errorf("failed to create entry: %w", err)
	}
	return &entry, nil
}

// ListDay returns the user's entries for one day along with the day's
// totals. Totals are computed on read, never stored, so they cannot drift
// from the entries they summarize.
func (u *diaryUsecase) ListDay(ctx context.Context, userID uint, date string) ([]entity.FoodEntry, DayTotals, error) {
	if err := validateDate(date); err != nil {
		return nil, DayTotals{}, err
	}

	entries, err := u.entries.ListByUserAndDate(ctx, userID, date)
	if err != nil {
		return nil, DayTotals{}, fmt.Errorf("failed to list entries: %w", err)
	}

	var totals DayTotals
	for _, e := range entries {
		totals.Calories += e.Calories * e.Servings
		totals.Protein += e.Protein * e.Servings
		totals.Carbs += e.Carbs * e.Servings
		totals.Fat += e.Fat * e.Servings
	}
	return entries, totals, nil
}

// AdjustServings changes the serving count of an existing entry, snapped to
// quarter steps.
func (u *diaryUsecase) AdjustServings(ctx context.Context, userID, entryID uint, servings float64) error {
	return u.entries.UpdateServings(ctx, userID, entryID, ClampServings(servings))
}

// Remove deletes the user's entry.
func (u *diaryUsecase) Remove(ctx context.Context, userID, entryID uint) error {
	return u.entries.Delete(ctx, userID, entryID)
}

// validateDate accepts only a real calendar day in "2006-01-02" form.
func validateDate(date string) error {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}
	return nil
}
