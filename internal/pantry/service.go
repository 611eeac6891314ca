package pantry

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Service applies the pantry lifecycle rules on top of the repository.
type Service struct {
	repo *Repository
	now  func() time.Time
}

// NewService creates a pantry service backed by repo.
func NewService(repo *Repository) *Service {
	return &Service{
		repo: repo,
		now:  func() time.Time { return time.Now().UTC() },
	}
}

// AddIngredient adds an amount of an ingredient to the owner's pantry,
// creating, restocking or topping up the entry. The read and the write happen
// in one transaction; a concurrent insert for the same owner and ingredient
// fails on the uniqueness constraint and is returned as is.
func (s *Service) AddIngredient(ctx context.Context, ownerID, ingredientID string, req AddRequest) (*Entry, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var id string
	err := s.repo.InTx(ctx, func(tx *Repository) error {
		existing, err := tx.FindByIngredient(ctx, ownerID, ingredientID)
		if errors.Is(err, ErrNotFound) {
			existing = nil
		} else if err != nil {
			return err
		}

		next := ApplyAdd(existing, req)
		if existing != nil {
			id = existing.ID
			return tx.Update(ctx, next)
		}

		next.ID = uuid.NewString()
		next.OwnerID = ownerID
		next.Ingredient.ID = ingredientID
		next.AddedAt = s.now()
		id = next.ID
		return tx.Insert(ctx, next)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to add ingredient to pantry: %w", err)
	}

	return s.repo.Get(ctx, id)
}

// MarkAsUsed moves an available entry to used.
func (s *Service) MarkAsUsed(ctx context.Context, id string) (*Entry, error) {
	var updated Entry
	err := s.repo.InTx(ctx, func(tx *Repository) error {
		e, err := tx.Get(ctx, id)
		if err != nil {
			return err
		}
		updated, err = ApplyMarkUsed(*e)
		if err != nil {
			return err
		}
		return tx.Update(ctx, updated)
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// UpdateQuantity replaces the quantity and unit of an entry in any state.
func (s *Service) UpdateQuantity(ctx context.Context, id string, quantity float64, unit string) (*Entry, error) {
	if !(quantity > 0) {
		return nil, ErrInvalidQuantity
	}
	if err := s.repo.UpdateQuantity(ctx, id, quantity, unit); err != nil {
		return nil, err
	}
	return s.repo.Get(ctx, id)
}

// UpdateExpiration sets or, with nil, clears the expiration date of an entry.
func (s *Service) UpdateExpiration(ctx context.Context, id string, expiration *time.Time) (*Entry, error) {
	if err := s.repo.UpdateExpiration(ctx, id, expiration); err != nil {
		return nil, err
	}
	return s.repo.Get(ctx, id)
}

// Remove deletes an entry.
func (s *Service) Remove(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// Get returns an entry by ID.
func (s *Service) Get(ctx context.Context, id string) (*Entry, error) {
	return s.repo.Get(ctx, id)
}

// List returns every entry of an owner.
func (s *Service) List(ctx context.Context, ownerID string) ([]Entry, error) {
	return s.repo.List(ctx, ownerID)
}

// ListAvailable returns the owner's available entries.
func (s *Service) ListAvailable(ctx context.Context, ownerID string) ([]Entry, error) {
	return s.repo.ListAvailable(ctx, ownerID)
}
