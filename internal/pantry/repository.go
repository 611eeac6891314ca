package pantry

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"fitfeast/internal/catalog"
	"fitfeast/internal/freshness"
	pantrydb "fitfeast/internal/pantry/db"
)

// Repository handles persistence of pantry entries.
type Repository struct {
	queries *pantrydb.Queries
	db      *sql.DB
}

// NewRepository creates a new pantry repository.
func NewRepository(d *sql.DB) *Repository {
	return &Repository{
		queries: pantrydb.New(d),
		db:      d,
	}
}

// InTx runs fn with a repository bound to a single transaction. The
// transaction is committed when fn returns nil.
func (r *Repository) InTx(ctx context.Context, fn func(tx *Repository) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := fn(&Repository{queries: r.queries.WithTx(tx), db: r.db}); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// Get retrieves an entry by ID.
func (r *Repository) Get(ctx context.Context, id string) (*Entry, error) {
	row, err := r.queries.GetPantryItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get pantry entry: %w", err)
	}
	e := entryFromRow(row.PantryItem, row.Ingredient)
	return &e, nil
}

// FindByIngredient retrieves the owner's entry for an ingredient.
func (r *Repository) FindByIngredient(ctx context.Context, ownerID, ingredientID string) (*Entry, error) {
	row, err := r.queries.GetPantryItemByOwnerAndIngredient(ctx, pantrydb.GetPantryItemByOwnerAndIngredientParams{
		OwnerID:      ownerID,
		IngredientID: ingredientID,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get pantry entry by ingredient: %w", err)
	}
	e := entryFromRow(row.PantryItem, row.Ingredient)
	return &e, nil
}

// List returns all entries of an owner in the order they were added.
func (r *Repository) List(ctx context.Context, ownerID string) ([]Entry, error) {
	rows, err := r.queries.ListPantryItemsByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list pantry entries: %w", err)
	}
	out := make([]Entry, 0, len(rows))
	for _, row := range rows {
		out = append(out, entryFromRow(row.PantryItem, row.Ingredient))
	}
	return out, nil
}

// ListAvailable returns the owner's available entries.
func (r *Repository) ListAvailable(ctx context.Context, ownerID string) ([]Entry, error) {
	rows, err := r.queries.ListPantryItemsByOwnerAndStatus(ctx, pantrydb.ListPantryItemsByOwnerAndStatusParams{
		OwnerID: ownerID,
		Status:  string(StatusAvailable),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list available pantry entries: %w", err)
	}
	out := make([]Entry, 0, len(rows))
	for _, row := range rows {
		out = append(out, entryFromRow(row.PantryItem, row.Ingredient))
	}
	return out, nil
}

// Insert stores a new entry.
func (r *Repository) Insert(ctx context.Context, e Entry) error {
	err := r.queries.InsertPantryItem(ctx, pantrydb.InsertPantryItemParams{
		ID:             e.ID,
		OwnerID:        e.OwnerID,
		IngredientID:   e.Ingredient.ID,
		Quantity:       e.Quantity,
		Unit:           e.Unit,
		Status:         string(e.Status),
		ExpirationDate: nullTime(e.ExpirationDate),
		AddedAt:        e.AddedAt,
	})
	if err != nil {
		return fmt.Errorf("failed to insert pantry entry: %w", err)
	}
	return nil
}

// Update overwrites the mutable fields of an entry.
func (r *Repository) Update(ctx context.Context, e Entry) error {
	n, err := r.queries.UpdatePantryItem(ctx, pantrydb.UpdatePantryItemParams{
		Quantity:       e.Quantity,
		Unit:           e.Unit,
		Status:         string(e.Status),
		ExpirationDate: nullTime(e.ExpirationDate),
		ID:             e.ID,
	})
	if err != nil {
		return fmt.Errorf("failed to update pantry entry: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdateQuantity sets the quantity and unit of an entry.
func (r *Repository) UpdateQuantity(ctx context.Context, id string, quantity float64, unit string) error {
	n, err := r.queries.UpdatePantryItemQuantity(ctx, pantrydb.UpdatePantryItemQuantityParams{
		Quantity: quantity,
		Unit:     unit,
		ID:       id,
	})
	if err != nil {
		return fmt.Errorf("failed to update pantry quantity: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdateExpiration sets or clears the expiration date of an entry.
func (r *Repository) UpdateExpiration(ctx context.Context, id string, expiration *time.Time) error {
	n, err := r.queries.UpdatePantryItemExpiration(ctx, pantrydb.UpdatePantryItemExpirationParams{
		ExpirationDate: nullTime(expiration),
		ID:             id,
	})
	if err != nil {
		return fmt.Errorf("failed to update pantry expiration: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes an entry.
func (r *Repository) Delete(ctx context.Context, id string) error {
	n, err := r.queries.DeletePantryItem(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete pantry entry: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func entryFromRow(item pantrydb.PantryItem, ing pantrydb.Ingredient) Entry {
	e := Entry{
		ID:      item.ID,
		OwnerID: item.OwnerID,
		Ingredient: catalog.Ingredient{
			ID:            ing.ID,
			Name:          ing.Name,
			Category:      ing.Category.String,
			ProteinPer100: ing.ProteinPer100,
			CarbsPer100:   ing.CarbsPer100,
			FatsPer100:    ing.FatsPer100,
		},
		Quantity: item.Quantity,
		Unit:     item.Unit,
		Status:   Status(item.Status),
		AddedAt:  item.AddedAt,
	}
	if item.ExpirationDate.Valid {
		exp := freshness.Date(item.ExpirationDate.Time.UTC())
		e.ExpirationDate = &exp
	}
	return e
}

// nullTime stores an expiration as its calendar date at UTC midnight.
func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: freshness.Date(*t), Valid: true}
}
