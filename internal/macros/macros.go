package macros

import (
	"math"

	"fitfeast/internal/units"
)

// Densities are grams of each macro per 100 reference units of an ingredient.
type Densities struct {
	ProteinPer100 float64 `json:"protein_per_100"`
	CarbsPer100   float64 `json:"carbs_per_100"`
	FatsPer100    float64 `json:"fats_per_100"`
}

// Totals are absolute macro amounts in grams.
type Totals struct {
	Protein float64 `json:"protein"`
	Carbs   float64 `json:"carbs"`
	Fats    float64 `json:"fats"`
}

// Split is the share of each macro in a total, in percent.
type Split struct {
	ProteinPct float64 `json:"protein_pct"`
	CarbsPct   float64 `json:"carbs_pct"`
	FatsPct    float64 `json:"fats_pct"`
}

// Round1 rounds x to one decimal place.
func Round1(x float64) float64 {
	return math.Round(x*10) / 10
}

// Scale returns the macros contained in quantity units of an ingredient with
// densities d, rounded to one decimal place.
func Scale(d Densities, quantity float64) Totals {
	return Totals{
		Protein: Round1(d.ProteinPer100 * quantity / 100),
		Carbs:   Round1(d.CarbsPer100 * quantity / 100),
		Fats:    Round1(d.FatsPer100 * quantity / 100),
	}
}

// ForQuantity is Scale applied after converting quantity from unit into the
// density base.
func ForQuantity(d Densities, quantity float64, unit string) Totals {
	return Scale(d, units.ToBaseUnits(quantity, unit))
}

// PerRecipe returns the macros for the given number of servings of a recipe.
func PerRecipe(perServing Totals, servings int) Totals {
	n := float64(servings)
	return Totals{
		Protein: Round1(perServing.Protein * n),
		Carbs:   Round1(perServing.Carbs * n),
		Fats:    Round1(perServing.Fats * n),
	}
}

// Add returns the element-wise sum of t and o.
func (t Totals) Add(o Totals) Totals {
	return Totals{
		Protein: Round1(t.Protein + o.Protein),
		Carbs:   Round1(t.Carbs + o.Carbs),
		Fats:    Round1(t.Fats + o.Fats),
	}
}

// Grams is the sum of all three macros.
func (t Totals) Grams() float64 {
	return t.Protein + t.Carbs + t.Fats
}

// Sum adds up all totals.
func Sum(all ...Totals) Totals {
	var out Totals
	for _, t := range all {
		out = out.Add(t)
	}
	return out
}

// Distribution returns the percentage of each macro in t. A zero total gives
// a zero split.
func Distribution(t Totals) Split {
	total := t.Grams()
	if total == 0 {
		return Split{}
	}
	return Split{
		ProteinPct: Round1(t.Protein / total * 100),
		CarbsPct:   Round1(t.Carbs / total * 100),
		FatsPct:    Round1(t.Fats / total * 100),
	}
}
