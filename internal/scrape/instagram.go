package scrape

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// Instagram blocks generic page scraping, so captions come from the public
// oEmbed endpoint instead of the post page itself.
const defaultOEmbedEndpoint = "https://api.instagram.com/oembed"

// ErrCaptionUnavailable means the oEmbed lookup could not produce a caption,
// typically because the post is private or deleted.
var ErrCaptionUnavailable = errors.New("could not fetch caption: the post may be private or unavailable")

// IsInstagramURL reports whether the URL is an Instagram post or reel
// permalink. Profile and story URLs are not scrapeable and don't count.
func IsInstagramURL(raw string) bool {
	return strings.Contains(raw, "instagram.com/p/") || strings.Contains(raw, "instagram.com/reel/")
}

type oembedResponse struct {
	Title      string `json:"title"`
	AuthorName string `json:"author_name"`
}

func (s *Scraper) fetchInstagramCaption(ctx context.Context, postURL string) (caption, author string, err error) {
	// Drop tracking params, oEmbed wants the bare permalink.
	cleanURL := strings.SplitN(postURL, "?", 2)[0]

	endpoint := s.OEmbedEndpoint + "?url=" + url.QueryEscape(cleanURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", "", err
	}
	req.Header.Set("User-Agent", browserUserAgent)

	resp, err := s.Client.Do(req)
	if err != nil {
		return "", "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", "", fmt.Errorf("instagram oembed returned status %d: %w", resp.StatusCode, ErrCaptionUnavailable)
	}

	var data oembedResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return "", "", fmt.Errorf("instagram oembed: %w", err)
	}
	if strings.TrimSpace(data.Title) == "" {
		return "", "", ErrCaptionUnavailable
	}
	return data.Title, data.AuthorName, nil
}
