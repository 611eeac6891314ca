package cookbook

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fitfeast/internal/catalog"
	"fitfeast/internal/database"
)

func setup(t *testing.T) (*Repository, *catalog.Repository) {
	t.Helper()
	db, err := database.NewDB(filepath.Join(t.TempDir(), "cookbook.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(db.SQL), catalog.NewRepository(db.SQL)
}

func TestSaveListRemove(t *testing.T) {
	ctx := context.Background()
	repo, recipes := setup(t)

	first := &catalog.Recipe{Name: "Pancakes", Servings: 4}
	second := &catalog.Recipe{Name: "Salad", Servings: 1}
	require.NoError(t, recipes.SaveRecipe(ctx, first))
	require.NoError(t, recipes.SaveRecipe(ctx, second))

	require.NoError(t, repo.Save(ctx, "user-1", first.ID))
	time.Sleep(5 * time.Millisecond)
	require.NoError(t, repo.Save(ctx, "user-1", second.ID))

	saved, err := repo.List(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, saved, 2)
	assert.Equal(t, "Salad", saved[0].Recipe.Name)
	assert.Equal(t, "Pancakes", saved[1].Recipe.Name)
	assert.Equal(t, 4, saved[1].Recipe.Servings)

	others, err := repo.List(ctx, "user-2")
	require.NoError(t, err)
	assert.Empty(t, others)

	require.NoError(t, repo.Remove(ctx, "user-1", first.ID))
	saved, err = repo.List(ctx, "user-1")
	require.NoError(t, err)
	assert.Len(t, saved, 1)

	assert.ErrorIs(t, repo.Remove(ctx, "user-1", first.ID), ErrNotSaved)
}

func TestSaveErrors(t *testing.T) {
	ctx := context.Background()
	repo, recipes := setup(t)

	rec := &catalog.Recipe{Name: "Soup"}
	require.NoError(t, recipes.SaveRecipe(ctx, rec))
	require.NoError(t, repo.Save(ctx, "user-1", rec.ID))

	assert.ErrorIs(t, repo.Save(ctx, "user-1", rec.ID), ErrAlreadySaved)
	assert.ErrorIs(t, repo.Save(ctx, "user-1", "missing"), catalog.ErrNotFound)
}

func TestDeletingRecipeCascades(t *testing.T) {
	ctx := context.Background()
	repo, recipes := setup(t)

	rec := &catalog.Recipe{Name: "Stew"}
	require.NoError(t, recipes.SaveRecipe(ctx, rec))
	require.NoError(t, repo.Save(ctx, "user-1", rec.ID))
	require.NoError(t, recipes.DeleteRecipe(ctx, rec.ID))

	saved, err := repo.List(ctx, "user-1")
	require.NoError(t, err)
	assert.Empty(t, saved)
}
