package llm

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrMalformedRewrite means no usable JSON object could be recovered from
// the model response. A malformed rewrite must never silently become a
// stored recipe.
var ErrMalformedRewrite = errors.New("malformed rewrite response")

var codeFenceRe = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)```")

// ExtractJSON recovers a single JSON object from free model text. Fenced
// code blocks are unwrapped first, then the first '{' through the last '}'
// is taken as the candidate.
func ExtractJSON(text string) (string, bool) {
	if m := codeFenceRe.FindStringSubmatch(text); m != nil {
		text = m[1]
	}
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end <= start {
		return "", false
	}
	return text[start : end+1], true
}

// ParseRewriteResponse extracts and decodes the JSON object from a raw model
// response.
func ParseRewriteResponse(raw string) (*RewriteResponse, error) {
	candidate, ok := ExtractJSON(raw)
	if !ok {
		return nil, ErrMalformedRewrite
	}

	var resp RewriteResponse
	if err := json.Unmarshal([]byte(candidate), &resp); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedRewrite, err)
	}
	return &resp, nil
}
