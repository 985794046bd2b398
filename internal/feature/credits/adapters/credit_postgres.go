// Package adapters provides the repository implementations for the credits feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"calorie_backend/internal/feature/credits/domain/entity"
	"calorie_backend/internal/feature/credits/usecase"
)

// creditPostgres is the Postgres implementation of the CreditRepository interface.
type creditPostgres struct {
	db *gorm.DB
}

// Compile-time check that creditPostgres implements CreditRepository.
var _ usecase.CreditRepository = (*creditPostgres)(nil)

// NewCreditPostgres creates a new creditPostgres instance with the given gorm.DB connection.
func NewCreditPostgres(db *gorm.DB) *creditPostgres {
	return &creditPostgres{db: db}
}

// FindByUserID retrieves the credit row for a user.
func (r *creditPostgres) FindByUserID(ctx context.Context, userID uint) (*entity.UserCredit, error) {
	var credit entity.UserCredit
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&credit).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrCreditNotFound
		}
		return nil, err
	}
	return &credit, nil
}

// Create persists a new credit row.
func (r *creditPostgres) Create(ctx context.Context, credit *entity.UserCredit) error {
	return r.db.WithContext(ctx).Create(credit).Error
}

// DecrementIfPositive runs a single conditional UPDATE:
//
//	UPDATE user_credits SET credits_remaining = credits_remaining - 1
//	WHERE user_id = ? AND credits_remaining > 0
//
// Two simultaneous requests therefore decrement twice, and the counter can
// never be driven below zero.
func (r *creditPostgres) DecrementIfPositive(ctx context.Context, userID uint) (bool, error) {
	tx := r.db.WithContext(ctx).
		Model(&entity.UserCredit{}).
		Where("user_id = ? AND credits_remaining > 0", userID).
		UpdateColumn("credits_remaining", gorm.Expr("credits_remaining - 1"))
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}
