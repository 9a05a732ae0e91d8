package parse

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	// Mixed numbers and bare fractions: "1 1/2", "3/4".
	fractionRe = regexp.MustCompile(`(\d+)?\s*(\d+)/(\d+)`)
	// Leading integer or decimal: "2.5 cups".
	leadingNumberRe = regexp.MustCompile(`^([\d.]+)`)
	nonNumericRe    = regexp.MustCompile(`[^\d.]`)
)

// ParseAmount splits a free-text quantity like "1 1/2 cups" into a numeric
// amount and the remaining unit text. The fraction pattern is checked before
// the plain-number pattern so "3/4" is not read as 3.
func ParseAmount(raw string) (amount *float64, unit *string) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, nil
	}

	if m := fractionRe.FindStringSubmatch(trimmed); m != nil {
		whole := 0.0
		if m[1] != "" {
			whole, _ = strconv.ParseFloat(m[1], 64)
		}
		num, _ := strconv.ParseFloat(m[2], 64)
		den, _ := strconv.ParseFloat(m[3], 64)
		if den != 0 {
			value := whole + num/den
			rest := strings.TrimSpace(strings.Replace(trimmed, m[0], "", 1))
			return &value, optional(rest)
		}
	}

	if m := leadingNumberRe.FindStringSubmatch(trimmed); m != nil {
		if value, err := strconv.ParseFloat(m[1], 64); err == nil {
			rest := strings.TrimSpace(trimmed[len(m[0]):])
			return &value, optional(rest)
		}
	}

	// No numeric token at all: the whole string is a free-text quantity
	// description ("a pinch").
	return nil, optional(trimmed)
}

// ParseNumber pulls a float out of loosely formatted values like "24g" or
// "450 IU". Returns nil when nothing numeric is left after cleanup.
func ParseNumber(value string) *float64 {
	cleaned := nonNumericRe.ReplaceAllString(value, "")
	if cleaned == "" {
		return nil
	}
	parsed, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return nil
	}
	return &parsed
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
