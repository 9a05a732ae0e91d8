package recipe

import "time"

// ----------------------------------------------------------------------
// Recipe domain models
// ----------------------------------------------------------------------

type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
	StatusArchived  Status = "archived"
)

// Draft is the canonical in-memory recipe the pipeline builds. It stays
// owned by the pipeline until it is handed to the repository.
type Draft struct {
	Title            string            `json:"title"`
	Slug             string            `json:"slug"`
	Description      string            `json:"description"`
	Story            string            `json:"story"`
	PrepTimeMinutes  *int              `json:"prep_time_minutes"`
	CookTimeMinutes  *int              `json:"cook_time_minutes"`
	RestTimeMinutes  *int              `json:"rest_time_minutes"`
	Servings         int               `json:"servings"`
	ServingsUnit     string            `json:"servings_unit"`
	Cuisine          []string          `json:"cuisine"`
	Course           []string          `json:"course"`
	Keywords         []string          `json:"keywords"`
	IngredientGroups []IngredientGroup `json:"ingredient_groups"`
	Instructions     []Instruction     `json:"instructions"`
	Nutrition        *Nutrition        `json:"nutrition,omitempty"`
	FeaturedImageURL string            `json:"featured_image_url,omitempty"`
	Status           Status            `json:"status"`
	Source           string            `json:"source"`
	SourceURL        string            `json:"source_url"`
}

// IngredientGroup is an ordered section of the ingredient list. Title is nil
// for the single unnamed group of a flat recipe.
type IngredientGroup struct {
	Title       *string      `json:"title"`
	SortOrder   int          `json:"sort_order"`
	Ingredients []Ingredient `json:"ingredients"`
}

type Ingredient struct {
	Amount    *float64 `json:"amount"`
	Unit      *string  `json:"unit"`
	Name      string   `json:"name"`
	Notes     *string  `json:"notes,omitempty"`
	SortOrder int      `json:"sort_order"`

	// AmountDisplay is filled in by the read layer, never stored.
	AmountDisplay string `json:"amount_display,omitempty"`
}

type Instruction struct {
	StepNumber int     `json:"step_number"`
	Text       string  `json:"text"`
	Tip        *string `json:"tip,omitempty"`
	ImageURL   *string `json:"image_url,omitempty"`
}

// Nutrition holds per-serving values. Everything is optional, absent values
// stay nil rather than zero.
type Nutrition struct {
	ServingSize   *string  `json:"serving_size,omitempty"`
	Calories      *float64 `json:"calories,omitempty"`
	CarbsG        *float64 `json:"carbs_g,omitempty"`
	ProteinG      *float64 `json:"protein_g,omitempty"`
	FatG          *float64 `json:"fat_g,omitempty"`
	SaturatedFatG *float64 `json:"saturated_fat_g,omitempty"`
	FiberG        *float64 `json:"fiber_g,omitempty"`
	SugarG        *float64 `json:"sugar_g,omitempty"`
	SodiumMg      *float64 `json:"sodium_mg,omitempty"`
	VitaminAIU    *float64 `json:"vitamin_a_iu,omitempty"`
	VitaminCMg    *float64 `json:"vitamin_c_mg,omitempty"`
	CalciumMg     *float64 `json:"calcium_mg,omitempty"`
	IronMg        *float64 `json:"iron_mg,omitempty"`
	PotassiumMg   *float64 `json:"potassium_mg,omitempty"`
}

// Recipe is a stored recipe as read back from the store.
type Recipe struct {
	ID string `json:"id"`
	Draft
	PublishedAt *time.Time `json:"published_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// Summary is the lightweight shape for list endpoints.
type Summary struct {
	ID               string    `json:"id"`
	Slug             string    `json:"slug"`
	Title            string    `json:"title"`
	Status           Status    `json:"status"`
	FeaturedImageURL string    `json:"featured_image_url,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

// ----------------------------------------------------------------------
// Raw input for normalization
// ----------------------------------------------------------------------

// RawRecipe is the normalizer's input: raw extraction output plus optional
// structured grouping hints.
type RawRecipe struct {
	Title        string
	Description  string
	Ingredients  []string // flat raw lines
	Groups       []RawGroup
	Variations   []RawGroup
	Instructions []string
	PrepTime     *int
	CookTime     *int
	RestTime     *int
	Servings     int
	Cuisine      string // scalar or comma-separated
	Course       string
	Keywords     []string
	Source       string
	SourceURL    string
}

// RawGroup is a named set of raw ingredient lines.
type RawGroup struct {
	Title string
	Lines []string
}
