package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"calorie_backend/internal/feature/diary/domain/entity"
)

// mockEntryRepository is a mock implementation of the EntryRepository interface.
type mockEntryRepository struct {
	CreateFunc            func(ctx context.Context, entry *entity.FoodEntry) error
	ListByUserAndDateFunc func(ctx context.Context, userID uint, date string) ([]entity.FoodEntry, error)
	UpdateServingsFunc    func(ctx context.Context, userID, entryID uint, servings float64) error
	DeleteFunc            func(ctx context.Context, userID, entryID uint) error
}

func (m *mockEntryRepository) Create(ctx context.Context, entry *entity.FoodEntry) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, entry)
	}
	return nil
}

func (m *mockEntryRepository) ListByUserAndDate(ctx context.Context, userID uint, date string) ([]entity.FoodEntry, error) {
	if m.ListByUserAndDateFunc != nil {
		return m.ListByUserAndDateFunc(ctx, userID, date)
	}
	return nil, nil
}

func (m *mockEntryRepository) UpdateServings(ctx context.Context, userID, entryID uint, servings float64) error {
	if m.UpdateServingsFunc != nil {
		return m.UpdateServingsFunc(ctx, userID, entryID, servings)
	}
	return nil
}

func (m *mockEntryRepository) Delete(ctx context.Context, userID, entryID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, userID, entryID)
	}
	return nil
}

func TestClampServings(t *testing.T) {
	cases := []struct {
		name string
		in   float64
		want float64
	}{
		{"zero defaults to one", 0, 1},
		{"negative defaults to one", -2, 1},
		{"exact step unchanged", 1.75, 1.75},
		{"snaps up", 1.13, 1.25},
		{"snaps down", 1.1, 1},
		{"below minimum floors at a quarter", 0.1, 0.25},
		{"large values keep quarter steps", 10.6, 10.5},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ClampServings(tc.in))
		})
	}
}

func TestDiaryUsecase_AddEntry(t *testing.T) {
	ctx := context.Background()

	t.Run("valid entry is persisted with clamped servings", func(t *testing.T) {
		var stored *entity.FoodEntry
		repo := &mockEntryRepository{
			CreateFunc: func(ctx context.Context, entry *entity.FoodEntry) error {
				entry.ID = 11
				stored = entry
				return nil
			},
		}
		uc := NewDiaryUsecase(repo)

		entry, err := uc.AddEntry(ctx, 1, entity.FoodEntry{
			Date:     "2026-08-28",
			FoodName: "Banana",
			Calories: 105,
			Servings: 2.1,
		})

		require.NoError(t, err)
		assert.Equal(t, uint(11), entry.ID)
		assert.Equal(t, uint(1), stored.UserID)
		assert.Equal(t, 2.0, stored.Servings, "servings are snapped to quarter steps")
	})

	t.Run("omitted servings default to one", func(t *testing.T) {
		var stored *entity.FoodEntry
		repo := &mockEntryRepository{
			CreateFunc: func(ctx context.Context, entry *entity.FoodEntry) error {
				stored = entry
				return nil
			},
		}
		uc := NewDiaryUsecase(repo)

		_, err := uc.AddEntry(ctx, 1, entity.FoodEntry{Date: "2026-08-28", FoodName: "Apple"})

		require.NoError(t, err)
		assert.Equal(t, 1.0, stored.Servings)
	})

	t.Run("bad date", func(t *testing.T) {
		uc := NewDiaryUsecase(&mockEntryRepository{})

		_, err := uc.AddEntry(ctx, 1, entity.FoodEntry{Date: "28/08/2026", FoodName: "Apple"})
		assert.ErrorIs(t, err, ErrInvalidDate)

		_, err = uc.AddEntry(ctx, 1, entity.FoodEntry{Date: "2026-02-30", FoodName: "Apple"})
		assert.ErrorIs(t, err, ErrInvalidDate)
	})

	t.Run("blank food name", func(t *testing.T) {
		uc := NewDiaryUsecase(&mockEntryRepository{})

		_, err := uc.AddEntry(ctx, 1, entity.FoodEntry{Date: "2026-08-28", FoodName: "   "})

		assert.ErrorIs(t, err, ErrInvalidEntry)
	})

	t.Run("negative nutrients", func(t *testing.T) {
		uc := NewDiaryUsecase(&mockEntryRepository{})

		_, err := uc.AddEntry(ctx, 1, entity.FoodEntry{
			Date:     "2026-08-28",
			FoodName: "Apple",
			Calories: -10,
		})

		assert.ErrorIs(t, err, ErrInvalidEntry)
	})
}

func TestDiaryUsecase_ListDay(t *testing.T) {
	ctx := context.Background()

	t.Run("totals multiply nutrients by servings", func(t *testing.T) {
		repo := &mockEntryRepository{
			ListByUserAndDateFunc: func(ctx context.Context, userID uint, date string) ([]entity.FoodEntry, error) {
				return []entity.FoodEntry{
					{FoodName: "Banana", Calories: 105, Protein: 1.3, Carbs: 27, Fat: 0.4, Servings: 2},
					{FoodName: "Egg", Calories: 78, Protein: 6.3, Carbs: 0.6, Fat: 5.3, Servings: 1},
				}, nil
			},
		}
		uc := NewDiaryUsecase(repo)

		entries, totals, err := uc.ListDay(ctx, 1, "2026-08-28")

		require.NoError(t, err)
		assert.Len(t, entries, 2)
		assert.InDelta(t, 105*2+78, totals.Calories, 1e-9)
		assert.InDelta(t, 1.3*2+6.3, totals.Protein, 1e-9)
		assert.InDelta(t, 27*2+0.6, totals.Carbs, 1e-9)
		assert.InDelta(t, 0.4*2+5.3, totals.Fat, 1e-9)
	})

	t.Run("empty day has zero totals", func(t *testing.T) {
		uc := NewDiaryUsecase(&mockEntryRepository{})

		entries, totals, err := uc.ListDay(ctx, 1, "2026-08-28")

		require.NoError(t, err)
		assert.Empty(t, entries)
		assert.Zero(t, totals.Calories)
	})

	t.Run("bad date", func(t *testing.T) {
		uc := NewDiaryUsecase(&mockEntryRepository{})

		_, _, err := uc.ListDay(ctx, 1, "today")

		assert.ErrorIs(t, err, ErrInvalidDate)
	})
}

func TestDiaryUsecase_AdjustServings(t *testing.T) {
	ctx := context.Background()

	t.Run("clamps before writing", func(t *testing.T) {
		repo := &mockEntryRepository{
			UpdateServingsFunc: func(ctx context.Context, userID, entryID uint, servings float64) error {
				assert.Equal(t, 0.25, servings)
				return nil
			},
		}
		uc := NewDiaryUsecase(repo)

		require.NoError(t, uc.AdjustServings(ctx, 1, 5, 0.1))
	})

	t.Run("missing entry surfaces", func(t *testing.T) {
		repo := &mockEntryRepository{
			UpdateServingsFunc: func(ctx context.Context, userID, entryID uint, servings float64) error {
				return ErrEntryNotFound
			},
		}
		uc := NewDiaryUsecase(repo)

		assert.ErrorIs(t, uc.AdjustServings(ctx, 1, 5, 1), ErrEntryNotFound)
	})
}
