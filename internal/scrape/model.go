package scrape

// ScrapedRecipe is the raw output every extractor produces, before
// normalization and rewriting.
type ScrapedRecipe struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Ingredients  []string `json:"ingredients"`
	Instructions []string `json:"instructions"`
	PrepTime     *int     `json:"prep_time"` // minutes
	CookTime     *int     `json:"cook_time"` // minutes
	Servings     int      `json:"servings"`
	Cuisine      string   `json:"cuisine"`
	Source       string   `json:"source"`
	SourceURL    string   `json:"source_url"`
}
