// Package cookbook stores the recipes a user has saved for later.
package cookbook

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"fitfeast/internal/catalog"
	cookbookdb "fitfeast/internal/cookbook/db"
	"fitfeast/internal/database"
)

var (
	// ErrAlreadySaved is returned when the user already saved the recipe.
	ErrAlreadySaved = errors.New("recipe already saved")
	// ErrNotSaved is returned when removing a recipe that is not saved.
	ErrNotSaved = errors.New("recipe not saved")
)

// SavedRecipe is a catalog recipe in a user's cookbook. Requirements are not
// loaded.
type SavedRecipe struct {
	Recipe  catalog.Recipe `json:"recipe"`
	SavedAt time.Time      `json:"saved_at"`
}

// Repository handles persistence of saved recipes.
type Repository struct {
	queries *cookbookdb.Queries
	db      *sql.DB
}

// NewRepository creates a new cookbook repository.
func NewRepository(d *sql.DB) *Repository {
	return &Repository{
		queries: cookbookdb.New(d),
		db:      d,
	}
}

// Save adds a recipe to the user's cookbook.
func (r *Repository) Save(ctx context.Context, userID, recipeID string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	q := r.queries.WithTx(tx)
	exists, err := q.RecipeExists(ctx, recipeID)
	if err != nil {
		return fmt.Errorf("failed to check recipe: %w", err)
	}
	if exists == 0 {
		return catalog.ErrNotFound
	}

	saved, err := q.CountSavedRecipe(ctx, cookbookdb.CountSavedRecipeParams{UserID: userID, RecipeID: recipeID})
	if err != nil {
		return fmt.Errorf("failed to check saved recipe: %w", err)
	}
	if saved > 0 {
		return ErrAlreadySaved
	}

	err = q.InsertSavedRecipe(ctx, cookbookdb.InsertSavedRecipeParams{
		UserID:   userID,
		RecipeID: recipeID,
		SavedAt:  time.Now().UTC(),
	})
	if err != nil {
		if database.IsUniqueViolation(err) {
			return ErrAlreadySaved
		}
		return fmt.Errorf("failed to save recipe: %w", err)
	}
	return tx.Commit()
}

// List returns the user's saved recipes, most recently saved first.
func (r *Repository) List(ctx context.Context, userID string) ([]SavedRecipe, error) {
	rows, err := r.queries.ListSavedRecipesByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list saved recipes: %w", err)
	}

	out := make([]SavedRecipe, 0, len(rows))
	for _, row := range rows {
		out = append(out, SavedRecipe{
			Recipe: catalog.Recipe{
				ID:                row.Recipe.ID,
				Name:              row.Recipe.Name,
				Instructions:      row.Recipe.Instructions,
				ImageURL:          row.Recipe.ImageUrl.String,
				PrepTimeMinutes:   int(row.Recipe.PrepTimeMinutes),
				CookTimeMinutes:   int(row.Recipe.CookTimeMinutes),
				Servings:          int(row.Recipe.Servings),
				ProteinPerServing: row.Recipe.ProteinGPerServing,
				CarbsPerServing:   row.Recipe.CarbsGPerServing,
				FatsPerServing:    row.Recipe.FatsGPerServing,
				CreatedAt:         row.Recipe.CreatedAt,
			},
			SavedAt: row.SavedAt,
		})
	}
	return out, nil
}

// Remove deletes a recipe from the user's cookbook.
func (r *Repository) Remove(ctx context.Context, userID, recipeID string) error {
	n, err := r.queries.DeleteSavedRecipe(ctx, cookbookdb.DeleteSavedRecipeParams{UserID: userID, RecipeID: recipeID})
	if err != nil {
		return fmt.Errorf("failed to remove saved recipe: %w", err)
	}
	if n == 0 {
		return ErrNotSaved
	}
	return nil
}
