package pantry

import (
	"errors"
	"time"

	"fitfeast/internal/catalog"
)

var (
	// ErrNotFound is returned when a pantry entry does not exist.
	ErrNotFound = errors.New("pantry entry not found")
	// ErrInvalidTransition is returned when marking an already used entry as used.
	ErrInvalidTransition = errors.New("invalid pantry transition")
	// ErrInvalidQuantity is returned for non-positive quantities.
	ErrInvalidQuantity = errors.New("quantity must be positive")
)

// Status is the lifecycle state of a pantry entry.
type Status string

const (
	StatusAvailable Status = "available"
	StatusUsed      Status = "used"
)

// Entry is an ingredient held by an owner. There is at most one entry per
// owner and ingredient.
type Entry struct {
	ID             string             `json:"id"`
	OwnerID        string             `json:"owner_id"`
	Ingredient     catalog.Ingredient `json:"ingredient"`
	Quantity       float64            `json:"quantity"`
	Unit           string             `json:"unit"`
	Status         Status             `json:"status"`
	ExpirationDate *time.Time         `json:"expiration_date,omitempty"`
	AddedAt        time.Time          `json:"added_at"`
}

// Available reports whether the entry can be used in recipes.
func (e Entry) Available() bool {
	return e.Status == StatusAvailable
}

// AddRequest is an amount of an ingredient being added to the pantry.
// DefaultUnit is used when Unit is empty and the entry is new.
type AddRequest struct {
	Quantity       float64
	Unit           string
	DefaultUnit    string
	ExpirationDate *time.Time
}

// Validate checks that the request carries a positive quantity.
func (r AddRequest) Validate() error {
	if !(r.Quantity > 0) {
		return ErrInvalidQuantity
	}
	return nil
}
