package scrape

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Selector strategies, tried strictly in order. Each list runs from
// recipe-plugin markup down to generic fallbacks.
var (
	titleSelectors       = []string{"h1", ".recipe-title", `[itemprop="name"]`}
	descriptionSelectors = []string{".recipe-summary", `[itemprop="description"]`, ".entry-content p"}
	ingredientSelectors  = []string{".wprm-recipe-ingredient", `[itemprop="recipeIngredient"]`, ".ingredient"}
	instructionSelectors = []string{".wprm-recipe-instruction", `[itemprop="recipeInstructions"] li`, ".instruction"}
)

// ExtractFromHTML is the last-resort extractor: a best-effort pass over
// common recipe markup. It always returns a result, possibly with empty
// ingredient and instruction lists, so the operator can fix it up by hand.
func ExtractFromHTML(doc *goquery.Document, sourceURL string) *ScrapedRecipe {
	title := firstText(doc, titleSelectors)
	if title == "" {
		title = "Untitled Recipe"
	}
	return &ScrapedRecipe{
		Title:        title,
		Description:  firstText(doc, descriptionSelectors),
		Ingredients:  firstList(doc, ingredientSelectors),
		Instructions: firstList(doc, instructionSelectors),
		Source:       hostOf(sourceURL),
		SourceURL:    sourceURL,
	}
}

// firstText returns the first selector's first non-empty text.
func firstText(doc *goquery.Document, selectors []string) string {
	for _, sel := range selectors {
		if t := strings.TrimSpace(doc.Find(sel).First().Text()); t != "" {
			return t
		}
	}
	return ""
}

// firstList returns all matches of the first selector that yields any
// non-empty items. Strategies never mix: one selector provides the whole list.
func firstList(doc *goquery.Document, selectors []string) []string {
	for _, sel := range selectors {
		var items []string
		doc.Find(sel).Each(func(_ int, s *goquery.Selection) {
			if t := strings.TrimSpace(s.Text()); t != "" {
				items = append(items, t)
			}
		})
		if len(items) > 0 {
			return items
		}
	}
	return nil
}

func hostOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return rawURL
	}
	return u.Host
}
