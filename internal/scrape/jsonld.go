package scrape

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"easytocook/internal/parse"
)

var yieldNumberRe = regexp.MustCompile(`\d+`)

// ExtractStructured looks for a schema.org Recipe object in the page's
// JSON-LD blocks. Returns nil when no recipe node exists anywhere in the
// document, including inside @graph containers.
func ExtractStructured(doc *goquery.Document, sourceURL string) *ScrapedRecipe {
	var found map[string]any
	doc.Find(`script[type="application/ld+json"]`).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		var data any
		if err := json.Unmarshal([]byte(s.Text()), &data); err != nil {
			// Malformed blocks are common in the wild, skip them.
			return true
		}
		if node := findRecipeNode(data); node != nil {
			found = node
			return false
		}
		return true
	})
	if found == nil {
		return nil
	}
	return mapStructuredRecipe(found, sourceURL)
}

// findRecipeNode walks arrays and @graph containers for the first node
// declaring @type Recipe.
func findRecipeNode(data any) map[string]any {
	switch v := data.(type) {
	case []any:
		for _, item := range v {
			if node := findRecipeNode(item); node != nil {
				return node
			}
		}
	case map[string]any:
		if isRecipeType(v["@type"]) {
			return v
		}
		if graph, ok := v["@graph"]; ok {
			return findRecipeNode(graph)
		}
	}
	return nil
}

// isRecipeType handles both scalar and array @type declarations.
func isRecipeType(t any) bool {
	switch v := t.(type) {
	case string:
		return v == "Recipe"
	case []any:
		for _, item := range v {
			if s, ok := item.(string); ok && s == "Recipe" {
				return true
			}
		}
	}
	return false
}

func mapStructuredRecipe(node map[string]any, sourceURL string) *ScrapedRecipe {
	r := &ScrapedRecipe{
		Title:       stringField(node, "name"),
		Description: stringField(node, "description"),
		Servings:    4,
		Source:      hostOf(sourceURL),
		SourceURL:   sourceURL,
	}
	if r.Title == "" {
		r.Title = "Untitled Recipe"
	}

	if list, ok := node["recipeIngredient"].([]any); ok {
		for _, item := range list {
			if s, ok := item.(string); ok && strings.TrimSpace(s) != "" {
				r.Ingredients = append(r.Ingredients, strings.TrimSpace(s))
			}
		}
	}

	if list, ok := node["recipeInstructions"].([]any); ok {
		for _, item := range list {
			if text := instructionText(item); text != "" {
				r.Instructions = append(r.Instructions, text)
			}
		}
	}

	r.PrepTime = parse.DurationToMinutes(stringField(node, "prepTime"))
	r.CookTime = parse.DurationToMinutes(stringField(node, "cookTime"))

	if y, ok := node["recipeYield"]; ok {
		if m := yieldNumberRe.FindString(stringify(y)); m != "" {
			if n, err := strconv.Atoi(m); err == nil && n > 0 {
				r.Servings = n
			}
		}
	}

	switch cuisine := node["recipeCuisine"].(type) {
	case string:
		r.Cuisine = cuisine
	case []any:
		if len(cuisine) > 0 {
			if s, ok := cuisine[0].(string); ok {
				r.Cuisine = s
			}
		}
	}

	return r
}

// instructionText accepts plain strings and HowToStep objects, which carry
// the step text under either "text" or "name".
func instructionText(item any) string {
	switch v := item.(type) {
	case string:
		return strings.TrimSpace(v)
	case map[string]any:
		if s, ok := v["text"].(string); ok && strings.TrimSpace(s) != "" {
			return strings.TrimSpace(s)
		}
		if s, ok := v["name"].(string); ok && strings.TrimSpace(s) != "" {
			return strings.TrimSpace(s)
		}
	}
	return ""
}

func stringField(node map[string]any, key string) string {
	if s, ok := node[key].(string); ok {
		return s
	}
	return ""
}

// stringify flattens the mixed types recipeYield shows up as: a string,
// a number, or an array of either.
func stringify(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case []any:
		if len(t) > 0 {
			return stringify(t[0])
		}
	}
	return ""
}
