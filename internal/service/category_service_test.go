package service

import (
	"context"
	"testing"
	"time"

	"money-manager/internal/dto"
	"money-manager/internal/models"
	"money-manager/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func seedCategory(t *testing.T, store *fakeCategoryStore, userID uuid.UUID, name string, isDefault bool) uuid.UUID {
	t.Helper()
	now := time.Now()
	category := &models.Category{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      name,
		Type:      models.CategoryTypeExpense,
		Icon:      "🍔",
		Color:     "#ef4444",
		IsDefault: isDefault,
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, store.Create(context.Background(), category))
	return category.ID
}

func TestCategoryServiceCreate(t *testing.T) {
	store := newFakeCategoryStore()
	svc := NewCategoryService(store, zap.NewNop())
	ctx := context.Background()
	userID := uuid.New()

	resp, err := svc.Create(ctx, userID, &dto.CreateCategoryRequest{
		Name:  "Groceries",
		Type:  "expense",
		Icon:  "🛒",
		Color: "#22c55e",
	})
	require.NoError(t, err)
	assert.Equal(t, "Groceries", resp.Name)
	assert.Equal(t, "expense", resp.Type)
	assert.False(t, resp.IsDefault)

	t.Run("optional fields fall back to defaults", func(t *testing.T) {
		resp, err := svc.Create(ctx, userID, &dto.CreateCategoryRequest{Name: "Misc"})
		require.NoError(t, err)
		assert.Equal(t, "both", resp.Type)
		assert.Equal(t, "📁", resp.Icon)
		assert.Equal(t, "#6366f1", resp.Color)
	})

	t.Run("duplicate name is rejected", func(t *testing.T) {
		_, err := svc.Create(ctx, userID, &dto.CreateCategoryRequest{Name: "Groceries"})
		assert.ErrorIs(t, err, ErrCategoryExists)
	})

	t.Run("another user may reuse the name", func(t *testing.T) {
		_, err := svc.Create(ctx, uuid.New(), &dto.CreateCategoryRequest{Name: "Groceries"})
		assert.NoError(t, err)
	})
}

func TestCategoryServiceUpdate(t *testing.T) {
	store := newFakeCategoryStore()
	svc := NewCategoryService(store, zap.NewNop())
	ctx := context.Background()
	userID := uuid.New()
	id := seedCategory(t, store, userID, "Food", false)

	resp, err := svc.Update(ctx, userID, id, &dto.UpdateCategoryRequest{Name: "Dining", Color: "#000000"})
	require.NoError(t, err)
	assert.Equal(t, "Dining", resp.Name)
	assert.Equal(t, "#000000", resp.Color)
	assert.Equal(t, "expense", resp.Type, "unset fields stay unchanged")
	assert.Equal(t, "🍔", resp.Icon)

	t.Run("unknown id", func(t *testing.T) {
		_, err := svc.Update(ctx, userID, uuid.New(), &dto.UpdateCategoryRequest{Name: "X"})
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})

	t.Run("renaming to a taken name is rejected", func(t *testing.T) {
		other := seedCategory(t, store, userID, "Travel", false)
		_, err := svc.Update(ctx, userID, other, &dto.UpdateCategoryRequest{Name: "Dining"})
		assert.ErrorIs(t, err, ErrCategoryExists)
	})

	t.Run("keeping the current name is not a conflict", func(t *testing.T) {
		resp, err := svc.Update(ctx, userID, id, &dto.UpdateCategoryRequest{Name: "Dining", Icon: "🍽️"})
		require.NoError(t, err)
		assert.Equal(t, "Dining", resp.Name)
		assert.Equal(t, "🍽️", resp.Icon)
	})

	t.Run("another user's category is invisible", func(t *testing.T) {
		_, err := svc.Update(ctx, uuid.New(), id, &dto.UpdateCategoryRequest{Name: "Hijack"})
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})
}

func TestCategoryServiceDelete(t *testing.T) {
	store := newFakeCategoryStore()
	svc := NewCategoryService(store, zap.NewNop())
	ctx := context.Background()
	userID := uuid.New()

	custom := seedCategory(t, store, userID, "Hobby", false)
	standard := seedCategory(t, store, userID, "Food", true)

	require.NoError(t, svc.Delete(ctx, userID, custom))
	_, err := store.GetByID(ctx, userID, custom)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	t.Run("default categories are protected", func(t *testing.T) {
		err := svc.Delete(ctx, userID, standard)
		assert.ErrorIs(t, err, ErrDefaultCategory)
		_, err = store.GetByID(ctx, userID, standard)
		assert.NoError(t, err, "protected category must survive the attempt")
	})

	t.Run("unknown id", func(t *testing.T) {
		err := svc.Delete(ctx, userID, uuid.New())
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})
}

func TestCategoryServiceList(t *testing.T) {
	store := newFakeCategoryStore()
	svc := NewCategoryService(store, zap.NewNop())
	ctx := context.Background()
	userID := uuid.New()

	now := time.Now()
	for _, seed := range []struct {
		name string
		typ  models.CategoryType
	}{
		{"Salary", models.CategoryTypeIncome},
		{"Food", models.CategoryTypeExpense},
		{"Misc", models.CategoryTypeBoth},
	} {
		require.NoError(t, store.Create(ctx, &models.Category{
			ID: uuid.New(), UserID: userID, Name: seed.name, Type: seed.typ,
			Icon: "📁", Color: "#6366f1", CreatedAt: now, UpdatedAt: now,
		}))
	}

	all, err := svc.List(ctx, userID, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	// A type filter matches that type plus "both".
	expenses, err := svc.List(ctx, userID, "expense")
	require.NoError(t, err)
	names := make([]string, 0, len(expenses))
	for _, c := range expenses {
		names = append(names, c.Name)
	}
	assert.ElementsMatch(t, []string{"Food", "Misc"}, names)

	incomes, err := svc.List(ctx, userID, "income")
	require.NoError(t, err)
	assert.Len(t, incomes, 2)
}
