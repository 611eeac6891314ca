// Package matching classifies catalog recipes against a pantry snapshot.
package matching

import "fitfeast/internal/catalog"

// A recipe is makeable when at least MakeableNum/MakeableDen of its distinct
// ingredients are in the pantry. The ratio is compared in integers so that
// 4 of 5 is exactly on the threshold.
const (
	MakeableNum = 4
	MakeableDen = 5
	// MaxMissing is the largest number of missing ingredients for a near miss.
	MaxMissing = 2
)

// PantrySet is the set of ingredient IDs available to the user.
type PantrySet map[string]struct{}

// NewPantrySet builds a set from ingredient IDs.
func NewPantrySet(ids ...string) PantrySet {
	s := make(PantrySet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Has reports whether the ingredient is available.
func (s PantrySet) Has(id string) bool {
	_, ok := s[id]
	return ok
}

// Verdict is the classification of a recipe.
type Verdict int

const (
	NotMakeable Verdict = iota
	Makeable
	NearMiss
)

func (v Verdict) String() string {
	switch v {
	case Makeable:
		return "makeable"
	case NearMiss:
		return "near_miss"
	default:
		return "not_makeable"
	}
}

// Result is the outcome of classifying one recipe.
type Result struct {
	Verdict    Verdict
	Recipe     catalog.Recipe
	Missing    []catalog.Ingredient
	MatchRatio float64
}

// Classify matches a single recipe against the pantry. Recipes without
// requirements are never makeable.
func Classify(pantry PantrySet, recipe catalog.Recipe) Result {
	required := recipe.RequiredIngredients()
	res := Result{Verdict: NotMakeable, Recipe: recipe}
	if len(required) == 0 {
		return res
	}

	available := 0
	for _, ing := range required {
		if pantry.Has(ing.ID) {
			available++
		} else {
			res.Missing = append(res.Missing, ing)
		}
	}
	res.MatchRatio = float64(available) / float64(len(required))

	switch {
	case MakeableDen*available >= MakeableNum*len(required):
		res.Verdict = Makeable
	case len(res.Missing) >= 1 && len(res.Missing) <= MaxMissing:
		res.Verdict = NearMiss
	}
	return res
}

// NearMissRecipe is a recipe that lacks only a few ingredients.
type NearMissRecipe struct {
	Recipe             catalog.Recipe       `json:"recipe"`
	MissingIngredients []catalog.Ingredient `json:"missing_ingredients"`
}

// Suggestions are the makeable and near-miss recipes, in catalog order.
type Suggestions struct {
	Makeable []catalog.Recipe `json:"makeable"`
	NearMiss []NearMissRecipe `json:"near_miss"`
}

// ComputeSuggestions classifies every recipe. A recipe appears in at most one
// of the two lists.
func ComputeSuggestions(pantry PantrySet, recipes []catalog.Recipe) Suggestions {
	out := Suggestions{
		Makeable: []catalog.Recipe{},
		NearMiss: []NearMissRecipe{},
	}
	for _, recipe := range recipes {
		res := Classify(pantry, recipe)
		switch res.Verdict {
		case Makeable:
			out.Makeable = append(out.Makeable, recipe)
		case NearMiss:
			out.NearMiss = append(out.NearMiss, NearMissRecipe{Recipe: recipe, MissingIngredients: res.Missing})
		}
	}
	return out
}
