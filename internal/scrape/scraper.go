package scrape

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// Browser-like User-Agent: the default Go user agent gets blocked by most
// recipe sites.
const browserUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

var urlRe = regexp.MustCompile(`^https?://`)

// FetchError reports a non-success HTTP status while fetching a source page.
type FetchError struct {
	URL    string
	Status int
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("failed to fetch %s: status %d", e.URL, e.Status)
}

// Scraper routes a URL or text blob to the right extractor and owns the
// outbound HTTP plumbing. Fields are settable for tests.
type Scraper struct {
	Client         *http.Client
	OEmbedEndpoint string
	Markers        MarkerSet
}

func NewScraper() *Scraper {
	return &Scraper{
		Client:         &http.Client{Timeout: 30 * time.Second},
		OEmbedEndpoint: defaultOEmbedEndpoint,
		Markers:        DefaultMarkers(),
	}
}

// Scrape dispatches on the input shape. Pasted text never touches the
// network; Instagram permalinks go through oEmbed; all other URLs are
// fetched and parsed, structured data first, heuristics second.
func (s *Scraper) Scrape(ctx context.Context, urlOrText string) (*ScrapedRecipe, error) {
	input := strings.TrimSpace(urlOrText)

	if !urlRe.MatchString(input) {
		return ExtractText(input, ModePasted, s.Markers), nil
	}

	if IsInstagramURL(input) {
		caption, author, err := s.fetchInstagramCaption(ctx, input)
		if err != nil {
			return nil, err
		}
		r := ExtractText(caption, ModeCaption, s.Markers)
		if author != "" {
			r.Source = fmt.Sprintf("Instagram (@%s)", author)
		}
		r.SourceURL = strings.SplitN(input, "?", 2)[0]
		return r, nil
	}

	html, err := s.fetchHTML(ctx, input)
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	if r := ExtractStructured(doc, input); r != nil {
		log.Printf("✅ Structured recipe data found: %q (%d ingredients, %d steps)", r.Title, len(r.Ingredients), len(r.Instructions))
		return r, nil
	}

	// A degraded guess beats a hard failure for a paste-and-fix workflow.
	r := ExtractFromHTML(doc, input)
	log.Printf("No structured data on %s, falling back to HTML heuristics (%d ingredients, %d steps)", input, len(r.Ingredients), len(r.Instructions))
	return r, nil
}

func (s *Scraper) fetchHTML(ctx context.Context, pageURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", browserUserAgent)

	resp, err := s.Client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return "", &FetchError{URL: pageURL, Status: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return string(body), nil
}
