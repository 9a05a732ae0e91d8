package recipe

import (
	"context"
	"errors"
)

// ErrNotFound is returned for lookups that match no recipe.
var ErrNotFound = errors.New("recipe not found")

// Repository defines all database operations for recipes.
type Repository interface {
	SlugExists(ctx context.Context, slug string) (bool, error)
	InsertDraft(ctx context.Context, d *Draft) (*Recipe, error)
	GetBySlug(ctx context.Context, slug string) (*Recipe, error)
	GetByID(ctx context.Context, id string) (*Recipe, error)
	ListByStatus(ctx context.Context, status Status) ([]Summary, error)
	UpdateStatus(ctx context.Context, id string, status Status) error
}
