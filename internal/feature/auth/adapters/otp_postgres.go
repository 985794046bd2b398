package adapters

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"calorie_backend/internal/feature/auth/domain/entity"
	"calorie_backend/internal/feature/auth/usecase"
)

// otpPostgres is the Postgres implementation of the OTPRepository interface.
type otpPostgres struct {
	db *gorm.DB
}

// Compile-time check that otpPostgres implements OTPRepository.
var _ usecase.OTPRepository = (*otpPostgres)(nil)

// NewOTPPostgres creates a new otpPostgres instance with the given gorm.DB connection.
func NewOTPPostgres(db *gorm.DB) *otpPostgres {
	return &otpPostgres{db: db}
}

// Create persists a new code row.
func (r *otpPostgres) Create(ctx context.Context, code *entity.OTPCode) error {
	return r.db.WithContext(ctx).Create(code).Error
}

// FindLatestActive retrieves the newest unused, unexpired row for the
// email/code pair. Multiple unused rows may exist for one email; ordering by
// creation time picks the code from the latest login attempt.
func (r *otpPostgres) FindLatestActive(ctx context.Context, email, code string, now time.Time) (*entity.OTPCode, error) {
	var rec entity.OTPCode
	err := r.db.WithContext(ctx).
		Where("email = ? AND code = ? AND used = ? AND expires_at > ?", email, code, false, now).
		Order("created_at DESC").
		First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrCodeNotFound
		}
		return nil, err
	}
	return &rec, nil
}

// FindLatest retrieves the newest row for the email/code pair without
// filtering on the used flag or expiry.
func (r *otpPostgres) FindLatest(ctx context.Context, email, code string) (*entity.OTPCode, error) {
	var rec entity.OTPCode
	err := r.db.WithContext(ctx).
		Where("email = ? AND code = ?", email, code).
		Order("created_at DESC").
		First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrCodeNotFound
		}
		return nil, err
	}
	return &rec, nil
}

// MarkUsed flips the used flag. The WHERE clause on used = false makes the
// update conditional, so of two concurrent verifies only one succeeds.
func (r *otpPostgres) MarkUsed(ctx context.Context, id uint) error {
	tx := r.db.WithContext(ctx).
		Model(&entity.OTPCode{}).
		Where("id = ? AND used = ?", id, false).
		Update("used", true)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return usecase.ErrCodeAlreadyUsed
	}
	return nil
}
