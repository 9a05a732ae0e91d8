package scrape

import (
	"regexp"
	"strings"
)

// Mode selects which lexical conventions the text extractor applies.
type Mode int

const (
	ModeCaption Mode = iota // social media caption
	ModePasted              // free-form pasted text
)

// MarkerSet holds the glyphs the caption extractor recognizes. The defaults
// match common Instagram caption conventions; new marker styles only need a
// new set, not changes to the scan logic.
type MarkerSet struct {
	Bullets    []string // ingredient line prefixes
	StepGlyphs []string // glyphs marking an instruction line anywhere in it
	Decorative []string // stripped from the title line
}

func DefaultMarkers() MarkerSet {
	return MarkerSet{
		Bullets:    []string{"-", "•"},
		StepGlyphs: []string{"➡️"},
		Decorative: []string{"➡️", "🤤", "💚", "📸", "🍽️", "🌱", "✨", "🔥", "👇"},
	}
}

var (
	numberedStepRe  = regexp.MustCompile(`^\d+[.)]\s*`)
	leadingMarkerRe = regexp.MustCompile(`^[-•*]\s*`)
)

// ExtractText segments a caption or pasted blob into title, ingredient lines
// and instruction lines using lexical cues only. It never fails: worst case
// the result is a titled shell with empty lists.
func ExtractText(text string, mode Mode, markers MarkerSet) *ScrapedRecipe {
	lines := nonBlankLines(text)

	title := ""
	if len(lines) > 0 {
		title = stripDecorative(lines[0], markers)
	}

	r := &ScrapedRecipe{Title: title}
	switch mode {
	case ModeCaption:
		if r.Title == "" {
			r.Title = "Instagram Recipe"
		}
		r.Description = strings.TrimSpace(text)
		r.Source = "Instagram"
		r.Ingredients, r.Instructions = scanCaption(lines, markers)
	default:
		if r.Title == "" {
			r.Title = "Untitled Recipe"
		}
		r.Source = "manual"
		r.Ingredients, r.Instructions = scanSections(lines)
	}
	return r
}

// scanCaption classifies caption lines by their markers: bullet prefixes are
// ingredients, step glyphs and "1." / "1)" numbering are instructions.
// Unmarked lines are prose and get dropped.
func scanCaption(lines []string, markers MarkerSet) (ingredients, instructions []string) {
	for _, line := range lines {
		if prefix := bulletPrefix(line, markers); prefix != "" {
			item := strings.TrimSpace(strings.TrimPrefix(line, prefix))
			if item != "" {
				ingredients = append(ingredients, item)
			}
			continue
		}
		if hasStepGlyph(line, markers) || numberedStepRe.MatchString(line) {
			step := stripStepMarkers(line, markers)
			if step != "" {
				instructions = append(instructions, step)
			}
		}
	}
	return ingredients, instructions
}

type section int

const (
	sectionNone section = iota
	sectionIngredients
	sectionInstructions
)

// scanSections is a two-state scan over ordered lines. Keyword lines toggle
// the collection state and are never collected themselves: "ingredient"
// starts ingredient collection, "instruction"/"direction"/"method" starts
// instruction collection, "note"/"tip" stops collection entirely.
func scanSections(lines []string) (ingredients, instructions []string) {
	state := sectionNone
	for _, line := range lines {
		lower := strings.ToLower(line)
		switch {
		case strings.Contains(lower, "ingredient"):
			state = sectionIngredients
			continue
		case strings.Contains(lower, "instruction"), strings.Contains(lower, "direction"), strings.Contains(lower, "method"):
			state = sectionInstructions
			continue
		case strings.Contains(lower, "note"), strings.Contains(lower, "tip"):
			state = sectionNone
			continue
		}

		item := numberedStepRe.ReplaceAllString(leadingMarkerRe.ReplaceAllString(line, ""), "")
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		switch state {
		case sectionIngredients:
			ingredients = append(ingredients, item)
		case sectionInstructions:
			instructions = append(instructions, item)
		}
	}
	return ingredients, instructions
}

func bulletPrefix(line string, markers MarkerSet) string {
	for _, b := range markers.Bullets {
		if strings.HasPrefix(line, b) {
			return b
		}
	}
	return ""
}

func hasStepGlyph(line string, markers MarkerSet) bool {
	for _, g := range markers.StepGlyphs {
		if strings.Contains(line, g) {
			return true
		}
	}
	return false
}

func stripStepMarkers(line string, markers MarkerSet) string {
	for _, g := range markers.StepGlyphs {
		line = strings.ReplaceAll(line, g, "")
	}
	line = numberedStepRe.ReplaceAllString(strings.TrimSpace(line), "")
	return strings.TrimSpace(line)
}

func stripDecorative(line string, markers MarkerSet) string {
	for _, d := range markers.Decorative {
		line = strings.ReplaceAll(line, d, "")
	}
	return strings.TrimSpace(line)
}

func nonBlankLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return lines
}
