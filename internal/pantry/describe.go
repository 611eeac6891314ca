package pantry

import (
	"strconv"
	"strings"
	"time"

	"fitfeast/internal/freshness"
	"fitfeast/internal/macros"
	"fitfeast/internal/matching"
	"fitfeast/internal/units"
)

// View is an entry together with everything needed to display it.
type View struct {
	Entry
	Macros      macros.Totals     `json:"macros"`
	Freshness   *freshness.Status `json:"freshness,omitempty"`
	UnitOptions []units.Option    `json:"unit_options"`
}

// Describe computes the macros, freshness and unit options of an entry.
func Describe(e Entry, today time.Time) View {
	v := View{
		Entry:       e,
		Macros:      macros.ForQuantity(e.Ingredient.Densities(), e.Quantity, e.Unit),
		UnitOptions: units.OptionsFor(e.Ingredient.Category, e.Ingredient.Name),
	}
	if st, ok := freshness.Classify(e.ExpirationDate, today); ok {
		v.Freshness = &st
	}
	return v
}

// DescribeAll describes each entry.
func DescribeAll(entries []Entry, today time.Time) []View {
	out := make([]View, 0, len(entries))
	for _, e := range entries {
		out = append(out, Describe(e, today))
	}
	return out
}

// Totals sums the macros of the available entries.
func Totals(entries []Entry) macros.Totals {
	var t macros.Totals
	for _, e := range entries {
		if !e.Available() {
			continue
		}
		t = t.Add(macros.ForQuantity(e.Ingredient.Densities(), e.Quantity, e.Unit))
	}
	return t
}

// Set returns the ingredient IDs of the available entries as a matching set.
func Set(entries []Entry) matching.PantrySet {
	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.Available() {
			ids = append(ids, e.Ingredient.ID)
		}
	}
	return matching.NewPantrySet(ids...)
}

// ParseQuantity reads a user-entered quantity. Anything that is not a
// positive number becomes 1.
func ParseQuantity(s string) float64 {
	q, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 1
	}
	return NormalizeQuantity(q)
}

// NormalizeQuantity replaces non-positive or NaN quantities with 1.
func NormalizeQuantity(q float64) float64 {
	if !(q > 0) {
		return 1
	}
	return q
}
