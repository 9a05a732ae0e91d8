package llm

import (
	"encoding/json"
	"strings"

	"easytocook/internal/parse"
)

// RewriteResponse mirrors the JSON shape the rewrite prompt asks for. The
// model's output is untrusted, so numeric fields are deliberately loose and
// everything optional is a pointer.
type RewriteResponse struct {
	Title            string            `json:"title"`
	Slug             string            `json:"slug"`
	Description      string            `json:"description"`
	Story            string            `json:"story"`
	PrepTime         FlexNumber        `json:"prepTime"`
	CookTime         FlexNumber        `json:"cookTime"`
	RestTime         FlexNumber        `json:"restTime"`
	Servings         FlexNumber        `json:"servings"`
	Cuisine          []string          `json:"cuisine"`
	Course           []string          `json:"course"`
	Keywords         []string          `json:"keywords"`
	IngredientGroups []RewriteGroup    `json:"ingredientGroups"`
	Instructions     []RewriteStep     `json:"instructions"`
	Nutrition        *RewriteNutrition `json:"nutrition"`
}

type RewriteGroup struct {
	Name        *string             `json:"name"`
	Ingredients []RewriteIngredient `json:"ingredients"`
}

type RewriteIngredient struct {
	Amount FlexNumber `json:"amount"`
	Unit   *string    `json:"unit"`
	Name   string     `json:"name"`
	Notes  *string    `json:"notes"`
}

type RewriteStep struct {
	Step int     `json:"step"`
	Text string  `json:"text"`
	Tip  *string `json:"tip"`
}

type RewriteNutrition struct {
	ServingSize   *string    `json:"serving_size"`
	Calories      FlexNumber `json:"calories"`
	CarbsG        FlexNumber `json:"carbs_g"`
	ProteinG      FlexNumber `json:"protein_g"`
	FatG          FlexNumber `json:"fat_g"`
	SaturatedFatG FlexNumber `json:"saturated_fat_g"`
	FiberG        FlexNumber `json:"fiber_g"`
	SugarG        FlexNumber `json:"sugar_g"`
	SodiumMg      FlexNumber `json:"sodium_mg"`
	VitaminAIU    FlexNumber `json:"vitamin_a_iu"`
	VitaminCMg    FlexNumber `json:"vitamin_c_mg"`
	CalciumMg     FlexNumber `json:"calcium_mg"`
	IronMg        FlexNumber `json:"iron_mg"`
	PotassiumMg   FlexNumber `json:"potassium_mg"`
}

// FlexNumber tolerates the three ways models write numbers: a JSON number,
// a string ("1 1/2", "450"), or null. Anything unparseable becomes nil
// instead of failing the whole response.
type FlexNumber struct {
	value *float64
}

func (f *FlexNumber) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		f.value = nil
		return nil
	}

	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		amount, _ := parse.ParseAmount(str)
		f.value = amount
		return nil
	}

	var n float64
	if err := json.Unmarshal(data, &n); err != nil {
		f.value = nil
		return nil
	}
	f.value = &n
	return nil
}

func (f FlexNumber) Value() *float64 {
	return f.value
}

// Int truncates to whole units, for minute and serving counts.
func (f FlexNumber) Int() *int {
	if f.value == nil {
		return nil
	}
	n := int(*f.value)
	return &n
}
