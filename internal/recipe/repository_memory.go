package recipe

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ----------------------------------------------------------------------
// In-memory repository (for tests and local development)
// ----------------------------------------------------------------------

type InMemoryRepository struct {
	mu      sync.Mutex
	recipes map[string]*Recipe // keyed by id
	slugs   map[string]string  // slug -> id
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		recipes: make(map[string]*Recipe),
		slugs:   make(map[string]string),
	}
}

func (r *InMemoryRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.slugs[slug]
	return ok, nil
}

func (r *InMemoryRepository) InsertDraft(ctx context.Context, d *Draft) (*Recipe, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.slugs[d.Slug]; ok {
		return nil, fmt.Errorf("duplicate slug %q", d.Slug)
	}

	now := time.Now().UTC()
	rec := &Recipe{
		ID:        uuid.New().String(),
		Draft:     *d,
		CreatedAt: now,
		UpdatedAt: now,
	}
	r.recipes[rec.ID] = rec
	r.slugs[rec.Slug] = rec.ID
	return rec, nil
}

func (r *InMemoryRepository) GetBySlug(ctx context.Context, slug string) (*Recipe, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	id, ok := r.slugs[slug]
	if !ok {
		return nil, ErrNotFound
	}
	return r.recipes[id], nil
}

func (r *InMemoryRepository) GetByID(ctx context.Context, id string) (*Recipe, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.recipes[id]
	if !ok {
		return nil, ErrNotFound
	}
	return rec, nil
}

func (r *InMemoryRepository) ListByStatus(ctx context.Context, status Status) ([]Summary, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []Summary
	for _, rec := range r.recipes {
		if rec.Status != status {
			continue
		}
		out = append(out, Summary{
			ID:               rec.ID,
			Slug:             rec.Slug,
			Title:            rec.Title,
			Status:           rec.Status,
			FeaturedImageURL: rec.FeaturedImageURL,
			CreatedAt:        rec.CreatedAt,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *InMemoryRepository) UpdateStatus(ctx context.Context, id string, status Status) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.recipes[id]
	if !ok {
		return ErrNotFound
	}
	rec.Status = status
	rec.UpdatedAt = time.Now().UTC()
	if status == StatusPublished && rec.PublishedAt == nil {
		now := time.Now().UTC()
		rec.PublishedAt = &now
	}
	return nil
}
