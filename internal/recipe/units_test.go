package recipe

import "testing"

func fptr(v float64) *float64 { return &v }
func sptr(s string) *string   { return &s }

func TestConvertToMetric(t *testing.T) {
	amount, unit := ConvertToMetric(fptr(2), sptr("cups"))
	if *amount != 480 || *unit != "ml" {
		t.Errorf("got %v %v, want 480 ml", *amount, *unit)
	}

	amount, unit = ConvertToMetric(fptr(1), sptr("lb"))
	if *amount != 454 || *unit != "g" {
		t.Errorf("got %v %v, want 454 g", *amount, *unit)
	}

	// Small amounts keep one decimal.
	amount, unit = ConvertToMetric(fptr(0.25), sptr("oz"))
	if *amount != 7.1 || *unit != "g" {
		t.Errorf("got %v %v, want 7.1 g", *amount, *unit)
	}
}

func TestConvertToMetricPassThrough(t *testing.T) {
	amount, unit := ConvertToMetric(fptr(3), sptr("cloves"))
	if *amount != 3 || *unit != "cloves" {
		t.Errorf("count units must pass through, got %v %v", *amount, *unit)
	}

	amount, unit = ConvertToMetric(nil, sptr("cups"))
	if amount != nil || *unit != "cups" {
		t.Errorf("nil amount must pass through")
	}
}

func TestDisplayGroups(t *testing.T) {
	groups := []IngredientGroup{
		{Ingredients: []Ingredient{
			{Amount: fptr(2), Unit: sptr("cups"), Name: "flour"},
			{Amount: nil, Unit: nil, Name: "salt to taste"},
		}},
	}

	metric := DisplayGroups(groups, true)
	if *metric[0].Ingredients[0].Amount != 480 || *metric[0].Ingredients[0].Unit != "ml" {
		t.Errorf("metric conversion failed: %+v", metric[0].Ingredients[0])
	}
	if metric[0].Ingredients[0].AmountDisplay != "480" {
		t.Errorf("display = %q", metric[0].Ingredients[0].AmountDisplay)
	}
	if metric[0].Ingredients[1].AmountDisplay != "" {
		t.Errorf("nil amount display = %q", metric[0].Ingredients[1].AmountDisplay)
	}

	// Source groups stay untouched.
	if *groups[0].Ingredients[0].Amount != 2 || *groups[0].Ingredients[0].Unit != "cups" {
		t.Error("DisplayGroups mutated its input")
	}

	us := DisplayGroups(groups, false)
	if us[0].Ingredients[0].AmountDisplay != "2" {
		t.Errorf("display = %q", us[0].Ingredients[0].AmountDisplay)
	}
}

func TestFormatAmount(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{1.5, "1 ½"},
		{0.5, "½"},
		{0.25, "¼"},
		{2, "2"},
		{3.75, "3 ¾"},
		{1.9, "1.9"},
	}
	for _, c := range cases {
		if got := FormatAmount(&c.in); got != c.want {
			t.Errorf("FormatAmount(%v) = %q, want %q", c.in, got, c.want)
		}
	}

	if got := FormatAmount(nil); got != "" {
		t.Errorf("FormatAmount(nil) = %q, want empty", got)
	}
}
