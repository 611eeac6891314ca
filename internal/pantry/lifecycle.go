package pantry

import "fmt"

// ApplyAdd returns the state of an entry after adding req to it. existing is
// nil when the owner has no entry for the ingredient yet; the caller then
// fills in the identity fields.
//
// Adding to a used entry restocks it: quantity and expiration are replaced.
// Adding to an available entry accumulates the quantity and only replaces the
// expiration when one is supplied. Either way the unit is replaced only when
// one is supplied.
func ApplyAdd(existing *Entry, req AddRequest) Entry {
	if existing == nil {
		unit := req.Unit
		if unit == "" {
			unit = req.DefaultUnit
		}
		return Entry{
			Quantity:       req.Quantity,
			Unit:           unit,
			Status:         StatusAvailable,
			ExpirationDate: req.ExpirationDate,
		}
	}

	next := *existing
	switch existing.Status {
	case StatusUsed:
		next.Quantity = req.Quantity
		next.ExpirationDate = req.ExpirationDate
	default:
		next.Quantity = existing.Quantity + req.Quantity
		if req.ExpirationDate != nil {
			next.ExpirationDate = req.ExpirationDate
		}
	}
	if req.Unit != "" {
		next.Unit = req.Unit
	}
	next.Status = StatusAvailable
	return next
}

// ApplyMarkUsed moves an available entry to used. Other fields are untouched.
func ApplyMarkUsed(e Entry) (Entry, error) {
	if e.Status != StatusAvailable {
		return e, fmt.Errorf("cannot mark %s entry %s as used: %w", e.Status, e.ID, ErrInvalidTransition)
	}
	e.Status = StatusUsed
	return e, nil
}
