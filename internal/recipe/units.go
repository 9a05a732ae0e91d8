package recipe

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ----------------------------------------------------------------------
// US <-> metric unit conversion for display
// ----------------------------------------------------------------------

type metricConversion struct {
	unit string
	rate float64
}

// toMetric maps US volume and weight units to their metric equivalents.
// Count-like units (cloves, cans, pinches) have no entry and pass through.
var toMetric = map[string]metricConversion{
	"cup":         {"ml", 240},
	"cups":        {"ml", 240},
	"tablespoon":  {"ml", 15},
	"tablespoons": {"ml", 15},
	"tbsp":        {"ml", 15},
	"teaspoon":    {"ml", 5},
	"teaspoons":   {"ml", 5},
	"tsp":         {"ml", 5},
	"pint":        {"ml", 473},
	"pints":       {"ml", 473},
	"quart":       {"ml", 946},
	"quarts":      {"ml", 946},
	"gallon":      {"l", 3.785},
	"gallons":     {"l", 3.785},
	"ounce":       {"g", 28.35},
	"ounces":      {"g", 28.35},
	"oz":          {"g", 28.35},
	"pound":       {"g", 453.6},
	"pounds":      {"g", 453.6},
	"lb":          {"g", 453.6},
	"lbs":         {"g", 453.6},
}

// ConvertToMetric converts a US amount/unit pair for display. Unknown units
// and nil amounts come back unchanged.
func ConvertToMetric(amount *float64, unit *string) (*float64, *string) {
	if amount == nil || unit == nil {
		return amount, unit
	}
	conv, ok := toMetric[strings.ToLower(*unit)]
	if !ok {
		return amount, unit
	}
	value := roundMetric(*amount * conv.rate)
	metricUnit := conv.unit
	return &value, &metricUnit
}

// roundMetric keeps metric amounts readable: whole numbers above 10,
// one decimal below.
func roundMetric(v float64) float64 {
	if v >= 10 {
		return math.Round(v)
	}
	return math.Round(v*10) / 10
}

// DisplayGroups returns a copy of the groups with display strings filled in,
// optionally converted to metric. The input is never mutated, repositories
// may hand out shared data.
func DisplayGroups(groups []IngredientGroup, metric bool) []IngredientGroup {
	out := make([]IngredientGroup, len(groups))
	for i, g := range groups {
		cg := g
		cg.Ingredients = make([]Ingredient, len(g.Ingredients))
		for j, ing := range g.Ingredients {
			if metric {
				ing.Amount, ing.Unit = ConvertToMetric(ing.Amount, ing.Unit)
			}
			ing.AmountDisplay = FormatAmount(ing.Amount)
			cg.Ingredients[j] = ing
		}
		out[i] = cg
	}
	return out
}

// commonFractions maps display-friendly fraction glyphs, largest first.
var commonFractions = []struct {
	value float64
	glyph string
}{
	{0.75, "¾"},
	{0.667, "⅔"},
	{0.5, "½"},
	{0.333, "⅓"},
	{0.25, "¼"},
	{0.125, "⅛"},
}

// FormatAmount renders an amount the way a cook reads it: "1 ½" instead of
// "1.5". Nil renders as the empty string.
func FormatAmount(amount *float64) string {
	if amount == nil {
		return ""
	}
	whole := math.Floor(*amount)
	frac := *amount - whole

	glyph := ""
	for _, f := range commonFractions {
		if math.Abs(frac-f.value) < 0.05 {
			glyph = f.glyph
			break
		}
	}

	switch {
	case glyph == "" && frac < 0.05:
		return strconv.FormatFloat(whole, 'f', -1, 64)
	case glyph == "":
		return strconv.FormatFloat(*amount, 'f', -1, 64)
	case whole == 0:
		return glyph
	default:
		return fmt.Sprintf("%s %s", strconv.FormatFloat(whole, 'f', -1, 64), glyph)
	}
}
