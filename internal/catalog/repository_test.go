package catalog

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fitfeast/internal/database"
)

func newTestRepository(t *testing.T) *Repository {
	t.Helper()
	db, err := database.NewDB(filepath.Join(t.TempDir(), "catalog.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(db.SQL)
}

func TestFindOrCreateIngredient(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	first, err := repo.FindOrCreateIngredient(ctx, "  Chicken Breast ", "Protein")
	require.NoError(t, err)
	assert.Equal(t, "chicken breast", first.Name)
	assert.Equal(t, "Protein", first.Category)
	assert.NotEmpty(t, first.ID)

	second, err := repo.FindOrCreateIngredient(ctx, "CHICKEN BREAST", "")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "Protein", second.Category)
}

func TestGetIngredientNotFound(t *testing.T) {
	repo := newTestRepository(t)

	_, err := repo.GetIngredient(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSearchIngredients(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	for _, name := range []string{"olive oil", "coconut oil", "rice", "boiled egg"} {
		_, err := repo.SaveIngredient(ctx, Ingredient{Name: name})
		require.NoError(t, err)
	}

	found, err := repo.SearchIngredients(ctx, "OIL")
	require.NoError(t, err)
	require.Len(t, found, 3)
	assert.Equal(t, "boiled egg", found[0].Name)
	assert.Equal(t, "coconut oil", found[1].Name)
	assert.Equal(t, "olive oil", found[2].Name)

	t.Run("Limit", func(t *testing.T) {
		for i := 0; i < 15; i++ {
			_, err := repo.SaveIngredient(ctx, Ingredient{Name: "bean " + string(rune('a'+i))})
			require.NoError(t, err)
		}
		found, err := repo.SearchIngredients(ctx, "bean")
		require.NoError(t, err)
		assert.Len(t, found, SearchLimit)
	})
}

func TestSaveAndGetRecipe(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	chicken, err := repo.SaveIngredient(ctx, Ingredient{Name: "chicken breast", Category: "Protein", ProteinPer100: 31, FatsPer100: 3.6})
	require.NoError(t, err)
	rice, err := repo.SaveIngredient(ctx, Ingredient{Name: "rice", Category: "Grain", ProteinPer100: 2.7, CarbsPer100: 28})
	require.NoError(t, err)

	rec := &Recipe{
		Name:              "Chicken and rice",
		Instructions:      "Cook both.",
		Servings:          2,
		ProteinPerServing: 35.5,
		Requirements: []Requirement{
			{Ingredient: *chicken, Quantity: 200, Unit: "gram"},
			{Ingredient: *rice, Quantity: 1, Unit: "cup"},
		},
	}
	require.NoError(t, repo.SaveRecipe(ctx, rec))
	require.NotEmpty(t, rec.ID)

	got, err := repo.GetRecipe(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, "Chicken and rice", got.Name)
	assert.Equal(t, 2, got.Servings)
	require.Len(t, got.Requirements, 2)
	assert.Equal(t, "chicken breast", got.Requirements[0].Ingredient.Name)
	assert.Equal(t, 31.0, got.Requirements[0].Ingredient.ProteinPer100)
	assert.Equal(t, "rice", got.Requirements[1].Ingredient.Name)
	assert.Equal(t, 71.0, got.TotalMacros().Protein)

	t.Run("ReplaceRequirements", func(t *testing.T) {
		rec.Requirements = rec.Requirements[:1]
		require.NoError(t, repo.SaveRecipe(ctx, rec))

		got, err := repo.GetRecipe(ctx, rec.ID)
		require.NoError(t, err)
		assert.Len(t, got.Requirements, 1)
	})

	t.Run("NotFound", func(t *testing.T) {
		_, err := repo.GetRecipe(ctx, "missing")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestListRecipesWithRequirements(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	egg, err := repo.SaveIngredient(ctx, Ingredient{Name: "egg"})
	require.NoError(t, err)
	milk, err := repo.SaveIngredient(ctx, Ingredient{Name: "milk"})
	require.NoError(t, err)

	base := time.Date(2024, time.January, 1, 12, 0, 0, 0, time.UTC)
	omelette := &Recipe{Name: "Omelette", CreatedAt: base, Requirements: []Requirement{{Ingredient: *egg, Quantity: 3, Unit: "piece"}, {Ingredient: *milk, Quantity: 0.25, Unit: "cup"}}}
	empty := &Recipe{Name: "Water", CreatedAt: base.Add(time.Hour)}
	boiled := &Recipe{Name: "Boiled egg", CreatedAt: base.Add(2 * time.Hour), Requirements: []Requirement{{Ingredient: *egg, Quantity: 1, Unit: "piece"}}}
	for _, rec := range []*Recipe{boiled, omelette, empty} {
		require.NoError(t, repo.SaveRecipe(ctx, rec))
	}

	recipes, err := repo.ListRecipesWithRequirements(ctx)
	require.NoError(t, err)
	require.Len(t, recipes, 3)
	assert.Equal(t, "Omelette", recipes[0].Name)
	assert.Len(t, recipes[0].Requirements, 2)
	assert.Equal(t, "Water", recipes[1].Name)
	assert.Empty(t, recipes[1].Requirements)
	assert.Equal(t, "Boiled egg", recipes[2].Name)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	require.NoError(t, repo.DeleteRecipe(ctx, omelette.ID))
	count, err = repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestRequiredIngredientsDeduplicates(t *testing.T) {
	rec := Recipe{Requirements: []Requirement{
		{Ingredient: Ingredient{ID: "a", Name: "egg"}, Quantity: 2},
		{Ingredient: Ingredient{ID: "b", Name: "milk"}},
		{Ingredient: Ingredient{ID: "a", Name: "egg"}, Quantity: 1},
	}}

	got := rec.RequiredIngredients()
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].ID)
	assert.Equal(t, "b", got[1].ID)
}
