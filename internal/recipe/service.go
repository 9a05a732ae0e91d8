package recipe

import (
	"context"
	"errors"
	"fmt"
	"log"
)

// ErrSlugExhausted means 100 numbered suffixes were already taken.
var ErrSlugExhausted = errors.New("could not generate a unique slug")

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// EnsureUniqueSlug tries the candidate, then candidate-1 through
// candidate-100, and fails after that. The check-then-insert is not
// transactional, which is fine for a single-operator tool.
func (s *Service) EnsureUniqueSlug(ctx context.Context, candidate string) (string, error) {
	slug := candidate
	for attempt := 0; attempt <= 100; attempt++ {
		if attempt > 0 {
			slug = fmt.Sprintf("%s-%d", candidate, attempt)
		}
		exists, err := s.repo.SlugExists(ctx, slug)
		if err != nil {
			return "", err
		}
		if !exists {
			return slug, nil
		}
	}
	return "", ErrSlugExhausted
}

// SaveAsDraft persists a draft under a unique slug. Ingested recipes never
// auto-publish: status is forced to draft no matter what the pipeline set.
func (s *Service) SaveAsDraft(ctx context.Context, d *Draft) (*Recipe, error) {
	if d.Title == "" {
		return nil, errors.New("draft has no title")
	}

	candidate := d.Slug
	if candidate == "" {
		candidate = Slugify(d.Title)
	}
	slug, err := s.EnsureUniqueSlug(ctx, candidate)
	if err != nil {
		return nil, err
	}

	d.Slug = slug
	d.Status = StatusDraft

	rec, err := s.repo.InsertDraft(ctx, d)
	if err != nil {
		return nil, err
	}
	log.Printf("✅ Recipe saved as draft: %s (slug: %s)", rec.Title, rec.Slug)
	return rec, nil
}

func (s *Service) GetBySlug(ctx context.Context, slug string) (*Recipe, error) {
	return s.repo.GetBySlug(ctx, slug)
}

func (s *Service) GetByID(ctx context.Context, id string) (*Recipe, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListByStatus(ctx context.Context, status Status) ([]Summary, error) {
	return s.repo.ListByStatus(ctx, status)
}

// SetStatus moves a recipe between draft, published and archived.
func (s *Service) SetStatus(ctx context.Context, id string, status Status) error {
	switch status {
	case StatusDraft, StatusPublished, StatusArchived:
	default:
		return fmt.Errorf("invalid status %q", status)
	}
	return s.repo.UpdateStatus(ctx, id, status)
}
