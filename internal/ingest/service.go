package ingest

import (
	"context"
	"errors"
	"log"
	"strings"

	"easytocook/internal/image"
	"easytocook/internal/llm"
	"easytocook/internal/recipe"
	"easytocook/internal/scrape"
	"easytocook/internal/session"
)

// ErrNoPendingDraft means the operator asked to publish or preview with
// nothing in flight.
var ErrNoPendingDraft = errors.New("no pending recipe: import or paste one first")

// Service runs the ingestion pipeline: extract, normalize, rewrite, generate
// an image, and park the result as the operator's pending draft until they
// confirm or cancel.
type Service struct {
	scraper  *scrape.Scraper
	rewriter *llm.Rewriter // nil disables rewriting
	images   *image.Generator
	recipes  *recipe.Service
	sessions *session.Manager
}

func NewService(
	scraper *scrape.Scraper,
	rewriter *llm.Rewriter,
	images *image.Generator,
	recipes *recipe.Service,
	sessions *session.Manager,
) *Service {
	return &Service{
		scraper:  scraper,
		rewriter: rewriter,
		images:   images,
		recipes:  recipes,
		sessions: sessions,
	}
}

// ImportFromURL runs the full pipeline for a web or Instagram source.
func (s *Service) ImportFromURL(ctx context.Context, operatorID, rawURL string) (*recipe.Draft, error) {
	scraped, err := s.scraper.Scrape(ctx, rawURL)
	if err != nil {
		return nil, err
	}
	return s.finish(ctx, operatorID, scraped)
}

// PasteText ingests operator-pasted recipe text. No network fetch happens.
func (s *Service) PasteText(ctx context.Context, operatorID, text string) (*recipe.Draft, error) {
	scraped := scrape.ExtractText(text, scrape.ModePasted, s.scraper.Markers)
	return s.finish(ctx, operatorID, scraped)
}

// ImportCaption ingests a caption the operator copied by hand, for Instagram
// posts the oEmbed endpoint refuses to serve.
func (s *Service) ImportCaption(ctx context.Context, operatorID, postURL, caption string) (*recipe.Draft, error) {
	scraped := scrape.ExtractText(caption, scrape.ModeCaption, s.scraper.Markers)
	scraped.SourceURL = strings.SplitN(strings.TrimSpace(postURL), "?", 2)[0]
	return s.finish(ctx, operatorID, scraped)
}

// finish runs normalize -> rewrite -> image over the scraped recipe and
// stores the result in the operator's session.
func (s *Service) finish(ctx context.Context, operatorID string, scraped *scrape.ScrapedRecipe) (*recipe.Draft, error) {
	draft := recipe.Normalize(rawFromScraped(scraped))

	if s.rewriter != nil {
		rewritten, err := s.rewriter.Rewrite(ctx, scraped)
		if err != nil {
			return nil, err
		}
		// Attribution and extracted times survive the rewrite.
		rewritten.Source = draft.Source
		rewritten.SourceURL = draft.SourceURL
		if rewritten.PrepTimeMinutes == nil {
			rewritten.PrepTimeMinutes = draft.PrepTimeMinutes
		}
		if rewritten.CookTimeMinutes == nil {
			rewritten.CookTimeMinutes = draft.CookTimeMinutes
		}
		draft = rewritten
	}

	if s.images != nil {
		if url := s.images.GenerateFeaturedImage(ctx, draft); url != "" {
			draft.FeaturedImageURL = url
		}
	}

	s.sessions.SetPending(operatorID, draft)

	log.Printf("✅ Draft ready for %s: %q (%d groups, %d steps)",
		operatorID, draft.Title, len(draft.IngredientGroups), len(draft.Instructions))
	return draft, nil
}

// Preview returns the pending draft without persisting anything.
func (s *Service) Preview(operatorID string) (*recipe.Draft, error) {
	draft := s.sessions.Pending(operatorID)
	if draft == nil {
		return nil, ErrNoPendingDraft
	}
	return draft, nil
}

// Confirm persists the pending draft. On failure the draft stays pending so
// the operator can retry.
func (s *Service) Confirm(ctx context.Context, operatorID string) (*recipe.Recipe, error) {
	draft := s.sessions.Pending(operatorID)
	if draft == nil {
		return nil, ErrNoPendingDraft
	}

	rec, err := s.recipes.SaveAsDraft(ctx, draft)
	if err != nil {
		return nil, err
	}
	s.sessions.ClearPending(operatorID)
	return rec, nil
}

// Cancel throws away the operator's in-flight state.
func (s *Service) Cancel(operatorID string) {
	s.sessions.Reset(operatorID)
}

func rawFromScraped(r *scrape.ScrapedRecipe) recipe.RawRecipe {
	return recipe.RawRecipe{
		Title:        r.Title,
		Description:  r.Description,
		Ingredients:  r.Ingredients,
		Instructions: r.Instructions,
		PrepTime:     r.PrepTime,
		CookTime:     r.CookTime,
		Servings:     r.Servings,
		Cuisine:      r.Cuisine,
		Source:       r.Source,
		SourceURL:    r.SourceURL,
	}
}
