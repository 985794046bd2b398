package adapters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"calorie_backend/internal/feature/diary/domain/entity"
	"calorie_backend/internal/feature/diary/usecase"
)

// setupTestDB prepares an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "failed to initialize test database")

	err = db.AutoMigrate(&entity.FoodEntry{})
	require.NoError(t, err, "failed to migrate table")

	return db
}

func seedEntry(t *testing.T, repo *entryPostgres, userID uint, date, name string) *entity.FoodEntry {
	t.Helper()

	entry := &entity.FoodEntry{
		UserID:   userID,
		Date:     date,
		FoodName: name,
		Calories: 100,
		Servings: 1,
	}
	require.NoError(t, repo.Create(context.Background(), entry))
	return entry
}

func TestEntryPostgres_ListByUserAndDate(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewEntryPostgres(db)

	seedEntry(t, repo, 1, "2026-08-28", "Banana")
	seedEntry(t, repo, 1, "2026-08-28", "Egg")
	seedEntry(t, repo, 1, "2026-08-27", "Toast")
	seedEntry(t, repo, 2, "2026-08-28", "Salad")

	t.Run("scoped to user and day", func(t *testing.T) {
		entries, err := repo.ListByUserAndDate(ctx, 1, "2026-08-28")

		require.NoError(t, err)
		require.Len(t, entries, 2)
		// Oldest first
		assert.Equal(t, "Banana", entries[0].FoodName)
		assert.Equal(t, "Egg", entries[1].FoodName)
	})

	t.Run("empty day", func(t *testing.T) {
		entries, err := repo.ListByUserAndDate(ctx, 1, "2026-01-01")

		require.NoError(t, err)
		assert.Empty(t, entries)
	})
}

func TestEntryPostgres_UpdateServings(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewEntryPostgres(db)

	entry := seedEntry(t, repo, 1, "2026-08-28", "Banana")

	t.Run("updates own entry", func(t *testing.T) {
		require.NoError(t, repo.UpdateServings(ctx, 1, entry.ID, 2.5))

		entries, err := repo.ListByUserAndDate(ctx, 1, "2026-08-28")
		require.NoError(t, err)
		assert.Equal(t, 2.5, entries[0].Servings)
	})

	t.Run("another user's entry is not found", func(t *testing.T) {
		err := repo.UpdateServings(ctx, 2, entry.ID, 3)

		assert.ErrorIs(t, err, usecase.ErrEntryNotFound)
	})

	t.Run("unknown entry", func(t *testing.T) {
		err := repo.UpdateServings(ctx, 1, 9999, 3)

		assert.ErrorIs(t, err, usecase.ErrEntryNotFound)
	})
}

func TestEntryPostgres_Delete(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewEntryPostgres(db)

	entry := seedEntry(t, repo, 1, "2026-08-28", "Banana")

	t.Run("another user's entry is not found", func(t *testing.T) {
		err := repo.Delete(ctx, 2, entry.ID)

		assert.ErrorIs(t, err, usecase.ErrEntryNotFound)
	})

	t.Run("deletes own entry", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, 1, entry.ID))

		entries, err := repo.ListByUserAndDate(ctx, 1, "2026-08-28")
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("second delete is not found", func(t *testing.T) {
		err := repo.Delete(ctx, 1, entry.ID)

		assert.ErrorIs(t, err, usecase.ErrEntryNotFound)
	})
}
