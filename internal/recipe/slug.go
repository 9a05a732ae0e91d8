package recipe

import (
	"regexp"
	"strings"
)

var (
	slugInvalidRe = regexp.MustCompile(`[^a-z0-9\s-]`)
	slugSpaceRe   = regexp.MustCompile(`\s+`)
	slugDashRe    = regexp.MustCompile(`-+`)
)

// Slugify derives a URL-safe slug: lowercase, special characters stripped,
// whitespace to hyphens, runs of hyphens collapsed.
func Slugify(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	s = slugInvalidRe.ReplaceAllString(s, "")
	s = slugSpaceRe.ReplaceAllString(s, "-")
	s = slugDashRe.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
