// Package adapters provides the repository implementations for the diary feature.
package adapters

import (
	"context"

	"gorm.io/gorm"

	"calorie_backend/internal/feature/diary/domain/entity"
	"calorie_backend/internal/feature/diary/usecase"
)

// entryPostgres is the Postgres implementation of the EntryRepository interface.
type entryPostgres struct {
	db *gorm.DB
}

// Compile-time check that entryPostgres implements EntryRepository.
var _ usecase.EntryRepository = (*entryPostgres)(nil)

// NewEntryPostgres creates a new entryPostgres instance with the given gorm.DB connection.
func NewEntryPostgres(db *gorm.DB) *entryPostgres {
	return &entryPostgres{db: db}
}

// Create persists a new entry.
func (r *entryPostgres) Create(ctx context.Context, entry *entity.FoodEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

// ListByUserAndDate returns the user's entries for one day, oldest first.
func (r *entryPostgres) ListByUserAndDate(ctx context.Context, userID uint, date string) ([]entity.FoodEntry, error) {
	var entries []entity.FoodEntry
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, date).
		Order("created_at asc, id asc").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// UpdateServings sets the serving count of the user's entry. Scoping the
// WHERE clause by user_id is what keeps one user from touching another's
// entries; a zero row count means the entry is not theirs or gone.
func (r *entryPostgres) UpdateServings(ctx context.Context, userID, entryID uint, servings float64) error {
	tx := r.db.WithContext(ctx).
		Model(&entity.FoodEntry{}).
		Where("id = ? AND user_id = ?", entryID, userID).
		UpdateColumn("servings", servings)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return usecase.ErrEntryNotFound
	}
	return nil
}

// Delete removes the user's entry.
func (r *entryPostgres) Delete(ctx context.Context, userID, entryID uint) error {
	tx := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", entryID, userID).
		Delete(&entity.FoodEntry{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return usecase.ErrEntryNotFound
	}
	return nil
}
