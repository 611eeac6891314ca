package units

import "strings"

// Option is a measurement unit offered for an ingredient.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

var (
	piece   = Option{Value: "piece", Label: "piece(s)"}
	gram    = Option{Value: "gram", Label: "gram(s)"}
	oz      = Option{Value: "oz", Label: "oz"}
	lb      = Option{Value: "lb", Label: "lb"}
	cup     = Option{Value: "cup", Label: "cup(s)"}
	tbsp    = Option{Value: "tbsp", Label: "tbsp"}
	tsp     = Option{Value: "tsp", Label: "tsp"}
	ml      = Option{Value: "ml", Label: "ml"}
	fillet  = Option{Value: "fillet", Label: "fillet(s)"}
	whites  = Option{Value: "whites", Label: "white(s)"}
	yolks   = Option{Value: "yolks", Label: "yolk(s)"}
	scoop   = Option{Value: "scoop", Label: "scoop(s)"}
	handful = Option{Value: "handful", Label: "handful(s)"}
	clove   = Option{Value: "clove", Label: "clove(s)"}
	slice   = Option{Value: "slice", Label: "slice(s)"}
	pinch   = Option{Value: "pinch", Label: "pinch(es)"}
)

// Ingredient categories known to the unit policy.
const (
	CategoryProtein   = "Protein"
	CategoryVegetable = "Vegetable"
	CategoryGrain     = "Grain"
	CategoryFat       = "Fat"
	CategoryDairy     = "Dairy"
	CategoryFruit     = "Fruit"
	CategorySeasoning = "Seasoning"
)

// rule matches when the category is equal and the name contains any of the
// tokens. A rule without tokens is the fallback for its category.
type rule struct {
	category string
	tokens   []string
	options  []Option
}

// rules is evaluated top to bottom; the first match wins. Category fallbacks
// must stay after the token rules of the same category.
var rules = []rule{
	{CategoryProtein, []string{"breast", "steak", "chop"}, []Option{piece, oz, gram, lb}},
	{CategoryProtein, []string{"ground", "mince"}, []Option{oz, gram, lb, cup}},
	{CategoryProtein, []string{"fish", "salmon", "tuna", "tilapia", "cod"}, []Option{fillet, oz, gram, piece}},
	{CategoryProtein, []string{"shrimp", "prawn"}, []Option{piece, oz, gram, cup}},
	{CategoryProtein, []string{"egg"}, []Option{piece, whites, yolks}},
	{CategoryProtein, []string{"protein powder"}, []Option{scoop, gram, oz}},
	{CategoryProtein, nil, []Option{oz, gram, lb, piece}},

	{CategoryVegetable, []string{"leafy", "spinach", "kale", "lettuce"}, []Option{cup, gram, oz, handful}},
	{CategoryVegetable, []string{"pepper", "tomato", "cucumber", "zucchini"}, []Option{piece, cup, gram, oz}},
	{CategoryVegetable, []string{"onion", "garlic"}, []Option{piece, clove, cup, gram}},
	{CategoryVegetable, nil, []Option{cup, piece, gram, oz}},

	{CategoryGrain, []string{"rice", "quinoa", "oats", "pasta"}, []Option{cup, gram, oz, tbsp}},
	{CategoryGrain, []string{"bread"}, []Option{slice, piece, gram, oz}},
	{CategoryGrain, nil, []Option{cup, gram, oz, tbsp}},

	{CategoryFat, []string{"oil"}, []Option{tbsp, tsp, ml, cup}},
	{CategoryFat, []string{"nut", "seed"}, []Option{cup, tbsp, gram, oz}},
	{CategoryFat, []string{"butter", "peanut", "almond"}, []Option{tbsp, tsp, gram, oz}},
	{CategoryFat, nil, []Option{tbsp, tsp, gram, oz}},

	{CategoryDairy, []string{"milk"}, []Option{cup, ml, oz, tbsp}},
	{CategoryDairy, []string{"cheese"}, []Option{oz, gram, cup, slice}},
	{CategoryDairy, []string{"yogurt"}, []Option{cup, gram, oz, tbsp}},
	{CategoryDairy, nil, []Option{cup, gram, oz, tbsp}},

	{CategoryFruit, []string{"berry"}, []Option{cup, gram, oz, piece}},
	{CategoryFruit, nil, []Option{piece, cup, gram, oz}},

	{CategorySeasoning, nil, []Option{tsp, tbsp, gram, pinch}},
}

// genericOptions applies to ingredients without a recognized category.
var genericOptions = []Option{piece, cup, gram, oz, tbsp, tsp}

func (r rule) matches(category, name string) bool {
	if r.category != category {
		return false
	}
	if len(r.tokens) == 0 {
		return true
	}
	for _, token := range r.tokens {
		if strings.Contains(name, token) {
			return true
		}
	}
	return false
}

// OptionsFor returns the permitted units for an ingredient, the recommended
// default first. The result is never empty and is safe to modify.
func OptionsFor(category, name string) []Option {
	name = strings.ToLower(name)
	for _, r := range rules {
		if r.matches(category, name) {
			return append([]Option(nil), r.options...)
		}
	}
	return append([]Option(nil), genericOptions...)
}

// DefaultUnit returns the value of the first option for the ingredient.
func DefaultUnit(category, name string) string {
	return OptionsFor(category, name)[0].Value
}

// Permits reports whether unit is one of the options for the ingredient.
func Permits(category, name, unit string) bool {
	for _, opt := range OptionsFor(category, name) {
		if opt.Value == unit {
			return true
		}
	}
	return false
}

// ToBaseUnits converts a quantity into the unit base that macro densities are
// expressed in. Quantities are currently treated as already being in that
// base, whatever the unit.
// TODO: replace with a per-unit conversion table once ingredients carry densities (g/ml).
func ToBaseUnits(quantity float64, unit string) float64 {
	return quantity
}
