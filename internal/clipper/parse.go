package clipper

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// IngredientLine is one parsed ingredient line of a recipe.
type IngredientLine struct {
	Raw      string
	Quantity float64
	Unit     string
	Name     string
}

// unitAliases maps spellings found on recipe sites to unit values.
var unitAliases = map[string]string{
	"g": "gram", "gr": "gram", "gram": "gram", "grams": "gram",
	"oz": "oz", "ounce": "oz", "ounces": "oz",
	"lb": "lb", "lbs": "lb", "pound": "lb", "pounds": "lb",
	"ml": "ml", "milliliter": "ml", "milliliters": "ml",
	"cup": "cup", "cups": "cup", "c": "cup",
	"tbsp": "tbsp", "tbs": "tbsp", "tablespoon": "tbsp", "tablespoons": "tbsp",
	"tsp": "tsp", "teaspoon": "tsp", "teaspoons": "tsp",
	"piece": "piece", "pieces": "piece", "pc": "piece", "pcs": "piece",
	"clove": "clove", "cloves": "clove",
	"slice": "slice", "slices": "slice",
	"fillet": "fillet", "fillets": "fillet",
	"scoop": "scoop", "scoops": "scoop",
	"handful": "handful", "handfuls": "handful",
	"pinch": "pinch", "pinches": "pinch",
}

var vulgarFractions = map[rune]float64{
	'¼': 0.25, '½': 0.5, '¾': 0.75, '⅓': 1.0 / 3, '⅔': 2.0 / 3, '⅛': 0.125,
}

var parenthetical = regexp.MustCompile(`\([^)]*\)`)

// ParseIngredientLine splits a line such as "1 1/2 cups rolled oats, dry"
// into quantity, unit and a lowercase ingredient name. A missing quantity is
// 1 and a missing unit is empty.
func ParseIngredientLine(line string) IngredientLine {
	out := IngredientLine{Raw: line, Quantity: 1}

	text := parenthetical.ReplaceAllString(line, " ")
	if i := strings.Index(text, ","); i >= 0 {
		text = text[:i]
	}
	fields := strings.Fields(text)

	var qty float64
	n := 0
	for n < len(fields) {
		v, ok := parseAmount(fields[n])
		if !ok {
			// "200g" style
			num, rest := splitNumberPrefix(fields[n])
			if num > 0 && n == 0 {
				if unit, ok := unitAliases[strings.ToLower(rest)]; ok {
					qty = num
					out.Unit = unit
					n++
				}
			}
			break
		}
		qty += v
		n++
	}
	if qty > 0 {
		out.Quantity = qty
	}

	if out.Unit == "" && n < len(fields) {
		token := strings.ToLower(strings.TrimSuffix(fields[n], "."))
		if unit, ok := unitAliases[token]; ok && n+1 < len(fields) {
			out.Unit = unit
			n++
		}
	}

	rest := fields[n:]
	if len(rest) > 0 && strings.EqualFold(rest[0], "of") {
		rest = rest[1:]
	}
	out.Name = strings.ToLower(strings.Join(rest, " "))
	return out
}

// parseAmount reads "2", "1.5", "1/2", "½" or "1½".
func parseAmount(s string) (float64, bool) {
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return v, v > 0
	}
	if num, den, ok := strings.Cut(s, "/"); ok {
		a, errA := strconv.ParseFloat(num, 64)
		b, errB := strconv.ParseFloat(den, 64)
		if errA == nil && errB == nil && b != 0 {
			return a / b, a > 0
		}
		return 0, false
	}

	runes := []rune(s)
	last := runes[len(runes)-1]
	frac, ok := vulgarFractions[last]
	if !ok {
		return 0, false
	}
	if len(runes) == 1 {
		return frac, true
	}
	whole, err := strconv.ParseFloat(string(runes[:len(runes)-1]), 64)
	if err != nil {
		return 0, false
	}
	return whole + frac, true
}

func splitNumberPrefix(s string) (float64, string) {
	i := strings.IndexFunc(s, func(r rune) bool { return !unicode.IsDigit(r) && r != '.' })
	if i <= 0 {
		return 0, s
	}
	v, err := strconv.ParseFloat(s[:i], 64)
	if err != nil {
		return 0, s
	}
	return v, s[i:]
}

var isoDuration = regexp.MustCompile(`^P(?:(\d+)D)?(?:T(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?)?$`)

// ParseISODuration converts an ISO 8601 duration such as "PT1H30M" to whole
// minutes. Unparseable input is 0.
func ParseISODuration(s string) int {
	m := isoDuration.FindStringSubmatch(strings.ToUpper(strings.TrimSpace(s)))
	if m == nil {
		return 0
	}
	atoi := func(s string) int {
		v, _ := strconv.Atoi(s)
		return v
	}
	return atoi(m[1])*24*60 + atoi(m[2])*60 + atoi(m[3]) + atoi(m[4])/60
}

var firstNumber = regexp.MustCompile(`\d+(?:\.\d+)?`)

// parseYield returns the first whole number in a yield such as "4 servings".
func parseYield(s string) int {
	v := leadingNumber(s)
	if v < 1 {
		return 1
	}
	return int(v)
}

func leadingNumber(s string) float64 {
	m := firstNumber.FindString(s)
	if m == "" {
		return 0
	}
	v, _ := strconv.ParseFloat(m, 64)
	return v
}
