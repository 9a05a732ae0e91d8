package llm

import (
	"fmt"
	"strings"

	"easytocook/internal/scrape"
)

// BrandVoicePrompt is the system instruction for every rewrite. It sets the
// food-blog register and bans copying source prose verbatim.
const BrandVoicePrompt = `You are the recipe writer for Easy To Cook Meals, a food blog about
approachable everyday cooking.

Voice and style:
- Warm, encouraging, and practical. Write like a friend who cooks a lot.
- Short sentences. No filler phrases like "elevate" or "culinary journey".
- Rewrite everything in your own words. NEVER copy sentences from the source.
- Ingredient names are cleaned up and properly capitalized.
- Instructions are clear imperative steps a beginner can follow.
- The story is 2-3 short paragraphs: why this recipe works, when to make it.

You always answer with a single JSON object and nothing else.`

// BuildRewritePrompt renders the scraped recipe plus the exact JSON schema
// the response must follow.
func BuildRewritePrompt(r *scrape.ScrapedRecipe) string {
	var b strings.Builder

	b.WriteString("Rewrite the following scraped recipe for our blog.\n\n")
	fmt.Fprintf(&b, "TITLE: %s\n", r.Title)
	if r.Description != "" {
		fmt.Fprintf(&b, "DESCRIPTION: %s\n", r.Description)
	}
	if r.Cuisine != "" {
		fmt.Fprintf(&b, "CUISINE: %s\n", r.Cuisine)
	}
	if r.PrepTime != nil {
		fmt.Fprintf(&b, "PREP TIME MINUTES: %d\n", *r.PrepTime)
	}
	if r.CookTime != nil {
		fmt.Fprintf(&b, "COOK TIME MINUTES: %d\n", *r.CookTime)
	}
	fmt.Fprintf(&b, "SERVINGS: %d\n", r.Servings)

	b.WriteString("\nINGREDIENTS:\n")
	for _, ing := range r.Ingredients {
		fmt.Fprintf(&b, "- %s\n", ing)
	}

	b.WriteString("\nINSTRUCTIONS:\n")
	for i, step := range r.Instructions {
		fmt.Fprintf(&b, "%d. %s\n", i+1, step)
	}

	b.WriteString(`
Respond with ONLY a JSON object in exactly this shape:
{
  "title": "string",
  "slug": "lowercase-hyphenated",
  "description": "string, 1-2 sentences",
  "story": "string, 2-3 short paragraphs",
  "prepTime": number (minutes) or null,
  "cookTime": number (minutes) or null,
  "restTime": number (minutes) or null,
  "servings": number,
  "cuisine": ["string"],
  "course": ["string"],
  "keywords": ["string"],
  "ingredientGroups": [
    {
      "name": "string or null for a single unnamed group",
      "ingredients": [
        {"amount": number or null, "unit": "string or null", "name": "string", "notes": "string or null"}
      ]
    }
  ],
  "instructions": [
    {"step": number, "text": "string", "tip": "string or null"}
  ],
  "nutrition": {
    "serving_size": "string or null",
    "calories": number or null,
    "carbs_g": number or null,
    "protein_g": number or null,
    "fat_g": number or null,
    "saturated_fat_g": number or null,
    "fiber_g": number or null,
    "sugar_g": number or null,
    "sodium_mg": number or null,
    "vitamin_a_iu": number or null,
    "vitamin_c_mg": number or null,
    "calcium_mg": number or null,
    "iron_mg": number or null,
    "potassium_mg": number or null
  } or null
}`)

	return b.String()
}
