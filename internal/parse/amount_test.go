package parse

import "testing"

func TestParseAmountFraction(t *testing.T) {
	amount, unit := ParseAmount("1 1/2 cups")
	if amount == nil || *amount != 1.5 {
		t.Fatalf("expected amount 1.5, got %v", amount)
	}
	if unit == nil || *unit != "cups" {
		t.Fatalf("expected unit cups, got %v", unit)
	}
}

func TestParseAmountBareFraction(t *testing.T) {
	amount, unit := ParseAmount("3/4 tsp")
	if amount == nil || *amount != 0.75 {
		t.Fatalf("expected amount 0.75, got %v", amount)
	}
	if unit == nil || *unit != "tsp" {
		t.Fatalf("expected unit tsp, got %v", unit)
	}
}

func TestParseAmountDecimal(t *testing.T) {
	amount, unit := ParseAmount("2.5 cups")
	if amount == nil || *amount != 2.5 {
		t.Fatalf("expected amount 2.5, got %v", amount)
	}
	if unit == nil || *unit != "cups" {
		t.Fatalf("expected unit cups, got %v", unit)
	}
}

func TestParseAmountNoNumber(t *testing.T) {
	amount, unit := ParseAmount("a pinch")
	if amount != nil {
		t.Fatalf("expected nil amount, got %v", *amount)
	}
	if unit == nil || *unit != "a pinch" {
		t.Fatalf("expected unit to carry the raw text, got %v", unit)
	}
}

func TestParseAmountEmpty(t *testing.T) {
	amount, unit := ParseAmount("   ")
	if amount != nil || unit != nil {
		t.Fatalf("expected nil/nil for blank input, got %v %v", amount, unit)
	}
}

func TestParseAmountNumberOnly(t *testing.T) {
	amount, unit := ParseAmount("3")
	if amount == nil || *amount != 3 {
		t.Fatalf("expected amount 3, got %v", amount)
	}
	if unit != nil {
		t.Fatalf("expected nil unit, got %q", *unit)
	}
}

func TestParseNumber(t *testing.T) {
	cases := map[string]float64{
		"24g":    24,
		"450 IU": 450,
		"3.5":    3.5,
	}
	for in, want := range cases {
		got := ParseNumber(in)
		if got == nil || *got != want {
			t.Errorf("ParseNumber(%q) = %v, want %v", in, got, want)
		}
	}

	if got := ParseNumber("trace"); got != nil {
		t.Errorf("ParseNumber(trace) = %v, want nil", *got)
	}
	if got := ParseNumber(""); got != nil {
		t.Errorf("ParseNumber(empty) = %v, want nil", *got)
	}
}
