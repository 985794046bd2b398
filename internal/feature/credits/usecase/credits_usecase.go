package usecase

import (
	"context"
	"errors"
	"fmt"

	"calorie_backend/internal/feature/credits/domain/entity"
)

// DefaultCredits is the quota a user starts with and is reset to.
const DefaultCredits = 30

// CreditRepository abstracts the persistence layer for credit records.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type CreditRepository interface {
	// FindByUserID retrieves the credit row for a user.
	// Returns ErrCreditNotFound when none exists yet.
	FindByUserID(ctx context.Context, userID uint) (*entity.UserCredit, error)

	// Create persists a new credit row.
	Create(ctx context.Context, credit *entity.UserCredit) error

	// DecrementIfPositive atomically subtracts one credit, guarded by
	// credits_remaining > 0 in the same statement. Returns false when no row
	// qualified (missing row or exhausted quota). The single conditional
	// write is what prevents the lost-update race between concurrent
	// generation requests from the same user.
	DecrementIfPositive(ctx context.Context, userID uint) (bool, error)
}

// creditsUsecase implements the per-user generation quota.
type creditsUsecase struct {
	credits CreditRepository
}

// NewCreditsUsecase creates a new creditsUsecase instance.
func NewCreditsUsecase(credits CreditRepository) *creditsUsecase {
	return &creditsUsecase{credits: credits}
}

// Remaining returns the user's quota, creating the row with the default
// allowance on first access.
func (u *creditsUsecase) Remaining(ctx context.Context, userID uint, email string) (int, error) {
	credit, err := u.ensureRecord(ctx, userID, email)
	if err != nil {
		return 0, err
	}
	return credit.CreditsRemaining, nil
}

// Consume spends one credit. Returns ErrNoCredits when the quota is
// exhausted; the caller must not proceed with the generation in that case.
func (u *creditsUsecase) Consume(ctx context.Context, userID uint, email string) error {
	ok, err := u.credits.DecrementIfPositive(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to consume credit: %w", err)
	}
	if ok {
		return nil
	}

	// No row qualified: either the user has no row yet (first-ever request,
	// create it and retry once) or the quota is spent.
	if _, err := u.credits.FindByUserID(ctx, userID); err == nil {
		return ErrNoCredits
	} else if !errors.Is(err, ErrCreditNotFound) {
		return err
	}

	if _, err := u.ensureRecord(ctx, userID, email); err != nil {
		return err
	}
	ok, err = u.credits.DecrementIfPositive(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to consume credit: %w", err)
	}
	if !ok {
		return ErrNoCredits
	}
	return nil
}

// ensureRecord returns the user's row, creating it with the default
// allowance when absent. A concurrent create is tolerated by re-reading.
func (u *creditsUsecase) ensureRecord(ctx context.Context, userID uint, email string) (*entity.UserCredit, error) {
	credit, err := u.credits.FindByUserID(ctx, userID)
	if err == nil {
		return credit, nil
	}
	if !errors.Is(err, ErrCreditNotFound) {
		return nil, err
	}

	created := &entity.UserCredit{
		UserID:           userID,
		Email:            email,
		CreditsRemaining: DefaultCredits,
	}
	if err := u.credits.Create(ctx, created); err != nil {
		// Lost a creation race; the winner's row is authoritative.
		if existing, findErr := u.credits.FindByUserID(ctx, userID); findErr == nil {
			return existing, nil
		}
		return nil, err
	}
	return created, nil
}
