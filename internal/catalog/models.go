package catalog

import (
	"errors"
	"time"

	"fitfeast/internal/macros"
)

// ErrNotFound is returned when an ingredient or recipe does not exist.
var ErrNotFound = errors.New("not found")

// Ingredient is a reference food item. Names are stored lowercase.
type Ingredient struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Category      string  `json:"category,omitempty"`
	ProteinPer100 float64 `json:"protein_per_100"`
	CarbsPer100   float64 `json:"carbs_per_100"`
	FatsPer100    float64 `json:"fats_per_100"`
}

// Densities returns the macro densities of the ingredient.
func (i Ingredient) Densities() macros.Densities {
	return macros.Densities{
		ProteinPer100: i.ProteinPer100,
		CarbsPer100:   i.CarbsPer100,
		FatsPer100:    i.FatsPer100,
	}
}

// Requirement is one ingredient line of a recipe.
type Requirement struct {
	Ingredient Ingredient `json:"ingredient"`
	Quantity   float64    `json:"quantity"`
	Unit       string     `json:"unit"`
}

// Recipe is a catalog recipe with its ordered ingredient requirements.
type Recipe struct {
	ID                string        `json:"id"`
	Name              string        `json:"name"`
	Instructions      string        `json:"instructions"`
	ImageURL          string        `json:"image_url,omitempty"`
	PrepTimeMinutes   int           `json:"prep_time_minutes"`
	CookTimeMinutes   int           `json:"cook_time_minutes"`
	Servings          int           `json:"servings"`
	ProteinPerServing float64       `json:"protein_per_serving"`
	CarbsPerServing   float64       `json:"carbs_per_serving"`
	FatsPerServing    float64       `json:"fats_per_serving"`
	Requirements      []Requirement `json:"requirements"`
	CreatedAt         time.Time     `json:"created_at"`
}

// RequiredIngredients returns the required ingredients de-duplicated by ID,
// keeping the first occurrence and the recipe order.
func (r Recipe) RequiredIngredients() []Ingredient {
	seen := make(map[string]bool, len(r.Requirements))
	out := make([]Ingredient, 0, len(r.Requirements))
	for _, req := range r.Requirements {
		if seen[req.Ingredient.ID] {
			continue
		}
		seen[req.Ingredient.ID] = true
		out = append(out, req.Ingredient)
	}
	return out
}

// PerServing returns the stated macros of one serving.
func (r Recipe) PerServing() macros.Totals {
	return macros.Totals{
		Protein: r.ProteinPerServing,
		Carbs:   r.CarbsPerServing,
		Fats:    r.FatsPerServing,
	}
}

// TotalMacros returns the macros of the whole recipe.
func (r Recipe) TotalMacros() macros.Totals {
	return macros.PerRecipe(r.PerServing(), r.Servings)
}

// TotalTimeMinutes is prep plus cook time.
func (r Recipe) TotalTimeMinutes() int {
	return r.PrepTimeMinutes + r.CookTimeMinutes
}
