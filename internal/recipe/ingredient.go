package recipe

import (
	"strings"

	"easytocook/internal/parse"
)

// knownUnits is the measurement vocabulary used when splitting a raw line
// into amount / unit / name. A leading word after the number only becomes the
// unit if it appears here, otherwise it stays part of the name.
var knownUnits = map[string]bool{
	"cup": true, "cups": true,
	"tablespoon": true, "tablespoons": true, "tbsp": true,
	"teaspoon": true, "teaspoons": true, "tsp": true,
	"ounce": true, "ounces": true, "oz": true,
	"pound": true, "pounds": true, "lb": true, "lbs": true,
	"gram": true, "grams": true, "g": true,
	"kilogram": true, "kilograms": true, "kg": true,
	"milliliter": true, "milliliters": true, "ml": true,
	"liter": true, "liters": true, "l": true,
	"pint": true, "pints": true,
	"quart": true, "quarts": true,
	"gallon": true, "gallons": true,
	"pinch": true, "pinches": true,
	"dash": true, "dashes": true,
	"clove": true, "cloves": true,
	"can": true, "cans": true,
	"slice": true, "slices": true,
	"stick": true, "sticks": true,
	"bunch": true, "bunches": true,
	"handful": true, "handfuls": true,
	"piece": true, "pieces": true,
}

// ParseIngredientLine splits a free-text line like "1 1/2 cups flour, sifted"
// into its parts. The name never ends up empty: it falls back to the raw line.
func ParseIngredientLine(line string) Ingredient {
	trimmed := strings.TrimSpace(line)

	rest := trimmed
	var notes *string
	if idx := strings.Index(rest, ","); idx >= 0 {
		if n := strings.TrimSpace(rest[idx+1:]); n != "" {
			notes = &n
		}
		rest = strings.TrimSpace(rest[:idx])
	}

	amount, remainder := parse.ParseAmount(rest)
	ing := Ingredient{Amount: amount, Notes: notes}

	switch {
	case amount == nil:
		// No numeric lead, the whole line is the name ("a pinch of salt").
		ing.Name = trimmed
	case remainder == nil:
		ing.Name = trimmed
	default:
		fields := strings.Fields(*remainder)
		if len(fields) > 1 && knownUnits[strings.ToLower(fields[0])] {
			unit := fields[0]
			ing.Unit = &unit
			ing.Name = strings.Join(fields[1:], " ")
		} else {
			ing.Name = *remainder
		}
	}

	if strings.TrimSpace(ing.Name) == "" {
		ing.Name = trimmed
	}
	return ing
}
