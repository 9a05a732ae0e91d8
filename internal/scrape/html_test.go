package scrape

import "testing"

func TestExtractFromHTMLRecipePlugin(t *testing.T) {
	html := `<html><body>
	<h1>Garlic Butter Noodles</h1>
	<div class="recipe-summary">Ready in 15 minutes.</div>
	<li class="wprm-recipe-ingredient">8 oz noodles</li>
	<li class="wprm-recipe-ingredient">3 cloves garlic</li>
	<div class="wprm-recipe-instruction">Cook the noodles.</div>
	</body></html>`

	r := ExtractFromHTML(docFrom(t, html), "https://blog.example.com/noodles")
	if r.Title != "Garlic Butter Noodles" {
		t.Errorf("title = %q", r.Title)
	}
	if r.Description != "Ready in 15 minutes." {
		t.Errorf("description = %q", r.Description)
	}
	if len(r.Ingredients) != 2 {
		t.Errorf("ingredients = %v", r.Ingredients)
	}
	if len(r.Instructions) != 1 || r.Instructions[0] != "Cook the noodles." {
		t.Errorf("instructions = %v", r.Instructions)
	}
	if r.Source != "blog.example.com" {
		t.Errorf("source = %q", r.Source)
	}
}

func TestExtractFromHTMLSelectorOrder(t *testing.T) {
	// Plugin markup present alongside generic markup: the earlier strategy
	// must win and the lists must not mix.
	html := `<html><body>
	<h1>Title</h1>
	<li class="wprm-recipe-ingredient">from plugin</li>
	<li class="ingredient">from generic</li>
	</body></html>`

	r := ExtractFromHTML(docFrom(t, html), "https://example.com/x")
	if len(r.Ingredients) != 1 || r.Ingredients[0] != "from plugin" {
		t.Fatalf("ingredients = %v, want only the plugin item", r.Ingredients)
	}
}

func TestExtractFromHTMLEmptyPage(t *testing.T) {
	r := ExtractFromHTML(docFrom(t, "<html><body><p>nothing here</p></body></html>"), "https://example.com/x")
	if r == nil {
		t.Fatal("fallback extractor must always return a result")
	}
	if r.Title != "Untitled Recipe" {
		t.Errorf("title = %q", r.Title)
	}
	if len(r.Ingredients) != 0 || len(r.Instructions) != 0 {
		t.Errorf("expected empty lists, got %v / %v", r.Ingredients, r.Instructions)
	}
}
