package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	catalogdb "fitfeast/internal/catalog/db"
)

// SearchLimit caps the number of ingredients returned by SearchIngredients.
const SearchLimit = 10

// Repository handles persistence of ingredients and recipes.
type Repository struct {
	queries *catalogdb.Queries
	db      *sql.DB
}

// NewRepository creates a new catalog repository.
func NewRepository(d *sql.DB) *Repository {
	return &Repository{
		queries: catalogdb.New(d),
		db:      d,
	}
}

// NormalizeName lowercases and trims an ingredient name.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// SaveIngredient inserts or updates an ingredient. A missing ID is generated.
func (r *Repository) SaveIngredient(ctx context.Context, ing Ingredient) (*Ingredient, error) {
	ing.Name = NormalizeName(ing.Name)
	if ing.Name == "" {
		return nil, fmt.Errorf("ingredient name is required")
	}
	if ing.ID == "" {
		ing.ID = uuid.NewString()
	}

	err := r.queries.UpsertIngredient(ctx, catalogdb.UpsertIngredientParams{
		ID:            ing.ID,
		Name:          ing.Name,
		Category:      nullString(ing.Category),
		ProteinPer100: ing.ProteinPer100,
		CarbsPer100:   ing.CarbsPer100,
		FatsPer100:    ing.FatsPer100,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save ingredient %q: %w", ing.Name, err)
	}
	return &ing, nil
}

// FindOrCreateIngredient returns the ingredient with the given name, creating
// it with zero macros when it does not exist yet.
func (r *Repository) FindOrCreateIngredient(ctx context.Context, name, category string) (*Ingredient, error) {
	name = NormalizeName(name)
	if name == "" {
		return nil, fmt.Errorf("ingredient name is required")
	}

	existing, err := r.GetIngredientByName(ctx, name)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	created, err := r.SaveIngredient(ctx, Ingredient{Name: name, Category: category})
	if err != nil {
		// Someone else may have created it in the meantime.
		if existing, getErr := r.GetIngredientByName(ctx, name); getErr == nil {
			return existing, nil
		}
		return nil, err
	}
	return created, nil
}

// GetIngredient retrieves an ingredient by ID.
func (r *Repository) GetIngredient(ctx context.Context, id string) (*Ingredient, error) {
	row, err := r.queries.GetIngredientByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get ingredient by ID: %w", err)
	}
	ing := ingredientFromRow(row)
	return &ing, nil
}

// GetIngredientByName retrieves an ingredient by its (case-insensitive) name.
func (r *Repository) GetIngredientByName(ctx context.Context, name string) (*Ingredient, error) {
	row, err := r.queries.GetIngredientByName(ctx, NormalizeName(name))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get ingredient by name: %w", err)
	}
	ing := ingredientFromRow(row)
	return &ing, nil
}

// SearchIngredients returns up to SearchLimit ingredients whose name contains
// query, ordered by name.
func (r *Repository) SearchIngredients(ctx context.Context, query string) ([]Ingredient, error) {
	rows, err := r.queries.SearchIngredients(ctx, catalogdb.SearchIngredientsParams{
		Query: NormalizeName(query),
		Limit: SearchLimit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to search ingredients: %w", err)
	}

	out := make([]Ingredient, 0, len(rows))
	for _, row := range rows {
		out = append(out, ingredientFromRow(row))
	}
	return out, nil
}

// SaveRecipe inserts or replaces a recipe and its requirements in a single
// transaction. Requirement ingredients must already exist.
func (r *Repository) SaveRecipe(ctx context.Context, rec *Recipe) error {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}
	if rec.Servings <= 0 {
		rec.Servings = 1
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	q := r.queries.WithTx(tx)
	err = q.UpsertRecipe(ctx, catalogdb.UpsertRecipeParams{
		ID:                 rec.ID,
		Name:               rec.Name,
		Instructions:       rec.Instructions,
		ImageUrl:           nullString(rec.ImageURL),
		PrepTimeMinutes:    int64(rec.PrepTimeMinutes),
		CookTimeMinutes:    int64(rec.CookTimeMinutes),
		Servings:           int64(rec.Servings),
		ProteinGPerServing: rec.ProteinPerServing,
		CarbsGPerServing:   rec.CarbsPerServing,
		FatsGPerServing:    rec.FatsPerServing,
		CreatedAt:          rec.CreatedAt,
	})
	if err != nil {
		return fmt.Errorf("failed to save recipe %s: %w", rec.ID, err)
	}

	if err := q.DeleteRecipeIngredients(ctx, rec.ID); err != nil {
		return fmt.Errorf("failed to clear recipe ingredients: %w", err)
	}
	for i, req := range rec.Requirements {
		err := q.InsertRecipeIngredient(ctx, catalogdb.InsertRecipeIngredientParams{
			RecipeID:     rec.ID,
			IngredientID: req.Ingredient.ID,
			Position:     int64(i),
			Quantity:     req.Quantity,
			Unit:         req.Unit,
		})
		if err != nil {
			return fmt.Errorf("failed to insert recipe ingredient %s: %w", req.Ingredient.ID, err)
		}
	}

	return tx.Commit()
}

// GetRecipe retrieves a recipe with its requirements.
func (r *Repository) GetRecipe(ctx context.Context, id string) (*Recipe, error) {
	row, err := r.queries.GetRecipeByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get recipe by ID: %w", err)
	}

	reqRows, err := r.queries.ListRecipeIngredientsByRecipeID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list recipe ingredients: %w", err)
	}

	rec := recipeFromRow(row)
	for _, rr := range reqRows {
		rec.Requirements = append(rec.Requirements, Requirement{
			Ingredient: Ingredient{
				ID:            rr.ID,
				Name:          rr.Name,
				Category:      rr.Category.String,
				ProteinPer100: rr.ProteinPer100,
				CarbsPer100:   rr.CarbsPer100,
				FatsPer100:    rr.FatsPer100,
			},
			Quantity: rr.Quantity,
			Unit:     rr.Unit,
		})
	}
	return &rec, nil
}

// ListRecipesWithRequirements returns the whole catalog in creation order, each
// recipe carrying its resolved requirements.
func (r *Repository) ListRecipesWithRequirements(ctx context.Context) ([]Recipe, error) {
	rows, err := r.queries.ListRecipes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}
	reqRows, err := r.queries.ListRecipeIngredients(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list recipe ingredients: %w", err)
	}

	byRecipe := make(map[string][]Requirement, len(rows))
	for _, rr := range reqRows {
		byRecipe[rr.RecipeID] = append(byRecipe[rr.RecipeID], Requirement{
			Ingredient: Ingredient{
				ID:            rr.ID,
				Name:          rr.Name,
				Category:      rr.Category.String,
				ProteinPer100: rr.ProteinPer100,
				CarbsPer100:   rr.CarbsPer100,
				FatsPer100:    rr.FatsPer100,
			},
			Quantity: rr.Quantity,
			Unit:     rr.Unit,
		})
	}

	recipes := make([]Recipe, 0, len(rows))
	for _, row := range rows {
		rec := recipeFromRow(row)
		rec.Requirements = byRecipe[rec.ID]
		recipes = append(recipes, rec)
	}
	return recipes, nil
}

// DeleteRecipe removes a recipe. Its requirements and saved references cascade.
func (r *Repository) DeleteRecipe(ctx context.Context, id string) error {
	if err := r.queries.DeleteRecipe(ctx, id); err != nil {
		return fmt.Errorf("failed to delete recipe: %w", err)
	}
	return nil
}

// Count returns the number of recipes in the catalog.
func (r *Repository) Count(ctx context.Context) (int, error) {
	count, err := r.queries.CountRecipes(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count recipes: %w", err)
	}
	return int(count), nil
}

func ingredientFromRow(row catalogdb.Ingredient) Ingredient {
	return Ingredient{
		ID:            row.ID,
		Name:          row.Name,
		Category:      row.Category.String,
		ProteinPer100: row.ProteinPer100,
		CarbsPer100:   row.CarbsPer100,
		FatsPer100:    row.FatsPer100,
	}
}

func recipeFromRow(row catalogdb.Recipe) Recipe {
	return Recipe{
		ID:                row.ID,
		Name:              row.Name,
		Instructions:      row.Instructions,
		ImageURL:          row.ImageUrl.String,
		PrepTimeMinutes:   int(row.PrepTimeMinutes),
		CookTimeMinutes:   int(row.CookTimeMinutes),
		Servings:          int(row.Servings),
		ProteinPerServing: row.ProteinGPerServing,
		CarbsPerServing:   row.CarbsGPerServing,
		FatsPerServing:    row.FatsGPerServing,
		CreatedAt:         row.CreatedAt,
	}
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
