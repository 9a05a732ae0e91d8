package llm

import (
	"context"
	"fmt"
	"log"
	"strings"

	"easytocook/internal/recipe"
	"easytocook/internal/scrape"
)

// Rewriter turns scraped recipes into brand-voice drafts via the model.
type Rewriter struct {
	client Client
}

func NewRewriter(client Client) *Rewriter {
	return &Rewriter{client: client}
}

// Rewrite sends the scraped recipe through the model and validates the JSON
// that comes back into a draft. Model failures and malformed JSON are hard
// errors, the caller decides whether to fall back.
func (rw *Rewriter) Rewrite(ctx context.Context, scraped *scrape.ScrapedRecipe) (*recipe.Draft, error) {
	raw, err := rw.client.Complete(ctx, BrandVoicePrompt, BuildRewritePrompt(scraped))
	if err != nil {
		return nil, fmt.Errorf("rewrite request: %w", err)
	}

	resp, err := ParseRewriteResponse(raw)
	if err != nil {
		return nil, err
	}

	draft, err := draftFromResponse(resp, scraped)
	if err != nil {
		return nil, err
	}
	log.Printf("✅ Recipe rewritten: %q (%d groups, %d steps)", draft.Title, len(draft.IngredientGroups), len(draft.Instructions))
	return draft, nil
}

// draftFromResponse validates the untrusted response field by field. Missing
// values fall back to the scraped input, so a sloppy model answer degrades
// instead of corrupting the draft.
func draftFromResponse(resp *RewriteResponse, scraped *scrape.ScrapedRecipe) (*recipe.Draft, error) {
	title := strings.TrimSpace(resp.Title)
	if title == "" {
		title = strings.TrimSpace(scraped.Title)
	}
	if title == "" {
		return nil, fmt.Errorf("%w: no title", ErrMalformedRewrite)
	}

	slug := recipe.Slugify(resp.Slug)
	if slug == "" {
		slug = recipe.Slugify(title)
	}

	servings := 0
	if n := resp.Servings.Int(); n != nil {
		servings = *n
	}
	if servings <= 0 {
		servings = scraped.Servings
	}
	if servings <= 0 {
		servings = 4
	}

	d := &recipe.Draft{
		Title:           title,
		Slug:            slug,
		Description:     strings.TrimSpace(resp.Description),
		Story:           strings.TrimSpace(resp.Story),
		PrepTimeMinutes: orFallback(resp.PrepTime.Int(), scraped.PrepTime),
		CookTimeMinutes: orFallback(resp.CookTime.Int(), scraped.CookTime),
		RestTimeMinutes: resp.RestTime.Int(),
		Servings:        servings,
		ServingsUnit:    "servings",
		Cuisine:         cleanList(resp.Cuisine),
		Course:          cleanList(resp.Course),
		Keywords:        cleanList(resp.Keywords),
		Status:          recipe.StatusDraft,
		Source:          scraped.Source,
		SourceURL:       scraped.SourceURL,
	}

	for i, g := range resp.IngredientGroups {
		group := recipe.IngredientGroup{SortOrder: i}
		if g.Name != nil {
			if name := strings.TrimSpace(*g.Name); name != "" {
				group.Title = &name
			}
		}
		for _, ing := range g.Ingredients {
			name := strings.TrimSpace(ing.Name)
			if name == "" {
				continue
			}
			group.Ingredients = append(group.Ingredients, recipe.Ingredient{
				Amount:    ing.Amount.Value(),
				Unit:      cleanPtr(ing.Unit),
				Name:      name,
				Notes:     cleanPtr(ing.Notes),
				SortOrder: len(group.Ingredients),
			})
		}
		if len(group.Ingredients) > 0 {
			d.IngredientGroups = append(d.IngredientGroups, group)
		}
	}

	// A response without usable ingredients falls back to re-parsing the
	// scraped lines, keeping the rewritten prose.
	if len(d.IngredientGroups) == 0 {
		groupTitle := "Ingredients"
		group := recipe.IngredientGroup{Title: &groupTitle}
		for _, line := range scraped.Ingredients {
			ing := recipe.ParseIngredientLine(line)
			ing.SortOrder = len(group.Ingredients)
			group.Ingredients = append(group.Ingredients, ing)
		}
		d.IngredientGroups = []recipe.IngredientGroup{group}
	}

	// Step numbers from the model are not trusted, order is. Renumber
	// densely from 1.
	for _, step := range resp.Instructions {
		text := strings.TrimSpace(step.Text)
		if text == "" {
			continue
		}
		d.Instructions = append(d.Instructions, recipe.Instruction{
			StepNumber: len(d.Instructions) + 1,
			Text:       text,
			Tip:        cleanPtr(step.Tip),
		})
	}
	if len(d.Instructions) == 0 {
		for _, text := range scraped.Instructions {
			d.Instructions = append(d.Instructions, recipe.Instruction{
				StepNumber: len(d.Instructions) + 1,
				Text:       text,
			})
		}
	}

	if resp.Nutrition != nil {
		n := resp.Nutrition
		d.Nutrition = &recipe.Nutrition{
			ServingSize:   cleanPtr(n.ServingSize),
			Calories:      n.Calories.Value(),
			CarbsG:        n.CarbsG.Value(),
			ProteinG:      n.ProteinG.Value(),
			FatG:          n.FatG.Value(),
			SaturatedFatG: n.SaturatedFatG.Value(),
			FiberG:        n.FiberG.Value(),
			SugarG:        n.SugarG.Value(),
			SodiumMg:      n.SodiumMg.Value(),
			VitaminAIU:    n.VitaminAIU.Value(),
			VitaminCMg:    n.VitaminCMg.Value(),
			CalciumMg:     n.CalciumMg.Value(),
			IronMg:        n.IronMg.Value(),
			PotassiumMg:   n.PotassiumMg.Value(),
		}
	}

	return d, nil
}

func orFallback(primary, fallback *int) *int {
	if primary != nil {
		return primary
	}
	return fallback
}

func cleanList(in []string) []string {
	out := []string{}
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func cleanPtr(in *string) *string {
	if in == nil {
		return nil
	}
	s := strings.TrimSpace(*in)
	if s == "" {
		return nil
	}
	return &s
}
