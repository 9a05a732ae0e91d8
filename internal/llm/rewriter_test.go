package llm

import (
	"context"
	"errors"
	"testing"

	"easytocook/internal/scrape"
)

type fakeClient struct {
	response string
	err      error
	gotSys   string
	gotUser  string
}

func (f *fakeClient) Complete(ctx context.Context, system, prompt string) (string, error) {
	f.gotSys = system
	f.gotUser = prompt
	return f.response, f.err
}

func scrapedFixture() *scrape.ScrapedRecipe {
	prep := 10
	return &scrape.ScrapedRecipe{
		Title:        "Original Tacos",
		Ingredients:  []string{"1 cup beans", "2 tortillas"},
		Instructions: []string{"Warm the tortillas.", "Fill with beans."},
		PrepTime:     &prep,
		Servings:     2,
		Source:       "example.com",
		SourceURL:    "https://example.com/tacos",
	}
}

func TestRewriteHappyPath(t *testing.T) {
	client := &fakeClient{response: `{
		"title": "Weeknight Bean Tacos",
		"slug": "weeknight-bean-tacos",
		"description": "Fast, filling tacos.",
		"story": "These come together in minutes.",
		"cookTime": 15,
		"servings": 2,
		"cuisine": ["Mexican"],
		"ingredientGroups": [
			{"name": "Filling", "ingredients": [
				{"amount": 1, "unit": "cup", "name": "black beans", "notes": "rinsed"}
			]},
			{"name": null, "ingredients": [
				{"amount": 2, "unit": null, "name": "tortillas", "notes": null}
			]}
		],
		"instructions": [
			{"step": 5, "text": "Warm everything up.", "tip": "A dry skillet works best."},
			{"step": 9, "text": "Assemble the tacos.", "tip": null}
		],
		"nutrition": {"calories": "320", "protein_g": 12}
	}`}

	draft, err := NewRewriter(client).Rewrite(context.Background(), scrapedFixture())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if client.gotSys != BrandVoicePrompt {
		t.Error("system prompt not sent")
	}
	if draft.Title != "Weeknight Bean Tacos" {
		t.Errorf("title = %q", draft.Title)
	}
	if draft.Source != "example.com" || draft.SourceURL != "https://example.com/tacos" {
		t.Errorf("source attribution lost: %q %q", draft.Source, draft.SourceURL)
	}
	if draft.PrepTimeMinutes == nil || *draft.PrepTimeMinutes != 10 {
		t.Errorf("prep time should fall back to scraped value, got %v", draft.PrepTimeMinutes)
	}
	if draft.CookTimeMinutes == nil || *draft.CookTimeMinutes != 15 {
		t.Errorf("cook time = %v", draft.CookTimeMinutes)
	}

	if len(draft.IngredientGroups) != 2 {
		t.Fatalf("groups = %d", len(draft.IngredientGroups))
	}
	if draft.IngredientGroups[1].Title != nil {
		t.Errorf("null group name must stay nil, got %v", *draft.IngredientGroups[1].Title)
	}

	// Model step numbers are ignored, order wins.
	if draft.Instructions[0].StepNumber != 1 || draft.Instructions[1].StepNumber != 2 {
		t.Errorf("steps = %d, %d", draft.Instructions[0].StepNumber, draft.Instructions[1].StepNumber)
	}
	if draft.Instructions[0].Tip == nil {
		t.Error("tip lost")
	}

	if draft.Nutrition == nil || draft.Nutrition.Calories == nil || *draft.Nutrition.Calories != 320 {
		t.Errorf("nutrition = %+v", draft.Nutrition)
	}
}

func TestRewriteMalformedResponse(t *testing.T) {
	client := &fakeClient{response: "I am sorry, I cannot help with that."}
	_, err := NewRewriter(client).Rewrite(context.Background(), scrapedFixture())
	if !errors.Is(err, ErrMalformedRewrite) {
		t.Fatalf("expected ErrMalformedRewrite, got %v", err)
	}
}

func TestRewriteClientError(t *testing.T) {
	wantErr := errors.New("api quota exceeded")
	client := &fakeClient{err: wantErr}
	_, err := NewRewriter(client).Rewrite(context.Background(), scrapedFixture())
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected wrapped client error, got %v", err)
	}
}

func TestRewriteFallsBackToScrapedIngredients(t *testing.T) {
	client := &fakeClient{response: `{"title": "Rewritten Tacos", "instructions": []}`}
	draft, err := NewRewriter(client).Rewrite(context.Background(), scrapedFixture())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(draft.IngredientGroups) != 1 || len(draft.IngredientGroups[0].Ingredients) != 2 {
		t.Fatalf("expected scraped ingredients fallback, got %+v", draft.IngredientGroups)
	}
	if len(draft.Instructions) != 2 {
		t.Fatalf("expected scraped instructions fallback, got %+v", draft.Instructions)
	}
}

func TestRewriteMissingTitle(t *testing.T) {
	client := &fakeClient{response: `{"description": "no title at all"}`}
	scraped := scrapedFixture()
	scraped.Title = ""
	_, err := NewRewriter(client).Rewrite(context.Background(), scraped)
	if !errors.Is(err, ErrMalformedRewrite) {
		t.Fatalf("expected ErrMalformedRewrite, got %v", err)
	}
}
