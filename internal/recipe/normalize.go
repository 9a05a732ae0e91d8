package recipe

import "strings"

const defaultGroupTitle = "Ingredients"

// Normalize converts raw extraction output into a canonical draft. Exactly
// one grouping strategy applies: explicit groups win over variations, which
// win over the flat list wrapped in a single default group.
func Normalize(raw RawRecipe) *Draft {
	d := &Draft{
		Title:           strings.TrimSpace(raw.Title),
		Description:     strings.TrimSpace(raw.Description),
		PrepTimeMinutes: raw.PrepTime,
		CookTimeMinutes: raw.CookTime,
		RestTimeMinutes: raw.RestTime,
		Servings:        raw.Servings,
		ServingsUnit:    "servings",
		Cuisine:         SplitList(raw.Cuisine),
		Course:          SplitList(raw.Course),
		Keywords:        raw.Keywords,
		Status:          StatusDraft,
		Source:          raw.Source,
		SourceURL:       raw.SourceURL,
	}
	if d.Title == "" {
		d.Title = "Untitled Recipe"
	}
	if d.Servings <= 0 {
		d.Servings = 4
	}
	if d.Keywords == nil {
		d.Keywords = []string{}
	}
	d.Slug = Slugify(d.Title)

	var groups []RawGroup
	switch {
	case len(raw.Groups) > 0:
		groups = raw.Groups
	case len(raw.Variations) > 0:
		groups = raw.Variations
	default:
		groups = []RawGroup{{Title: defaultGroupTitle, Lines: raw.Ingredients}}
	}

	for i, g := range groups {
		group := IngredientGroup{SortOrder: i}
		if t := strings.TrimSpace(g.Title); t != "" {
			group.Title = &t
		}
		for _, line := range g.Lines {
			if strings.TrimSpace(line) == "" {
				continue
			}
			ing := ParseIngredientLine(line)
			ing.SortOrder = len(group.Ingredients)
			group.Ingredients = append(group.Ingredients, ing)
		}
		d.IngredientGroups = append(d.IngredientGroups, group)
	}

	for _, text := range raw.Instructions {
		t := strings.TrimSpace(text)
		if t == "" {
			continue
		}
		d.Instructions = append(d.Instructions, Instruction{
			StepNumber: len(d.Instructions) + 1,
			Text:       t,
		})
	}

	return d
}

// SplitList turns a comma-separated scalar into a trimmed list. Empty input
// yields an empty list, never nil.
func SplitList(value string) []string {
	out := []string{}
	for _, p := range strings.Split(value, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
