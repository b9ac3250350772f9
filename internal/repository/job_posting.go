package repository

import (
	"context"

	"github.com/dewinson2/MJCL/internal/domain"
)

// JobPosting defines the data access interface for job postings.
// Lookups of a missing row return an error wrapping domain.ErrJobNotFound.
type JobPosting interface {
	// List returns every posting, newest first.
	List(ctx context.Context) ([]domain.JobPosting, error)
	// ListActive returns active postings, newest first. An empty category means all.
	ListActive(ctx context.Context, category string) ([]domain.JobPosting, error)
	GetByID(ctx context.Context, id int64) (*domain.JobPosting, error)
	GetActiveBySlug(ctx context.Context, slug string) (*domain.JobPosting, error)
	GetSlug(ctx context.Context, id int64) (string, error)
	// SlugExists reports whether a row other than excludeID uses slug.
	SlugExists(ctx context.Context, slug string, excludeID int64) (bool, error)
	Create(ctx context.Context, job *domain.JobPosting) (*domain.JobPosting, error)
	Update(ctx context.Context, job *domain.JobPosting) error
	Delete(ctx context.Context, id int64) error
}
