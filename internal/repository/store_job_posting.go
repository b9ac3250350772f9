package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/dewinson2/MJCL/internal/domain"
	"github.com/dewinson2/MJCL/internal/storage"
)

type jobPostingStore struct {
	client *storage.Client
	now    func() time.Time
}

// NewJobPostingRepository creates a job posting repository over the facade
func NewJobPostingRepository(client *storage.Client) JobPosting {
	return &jobPostingStore{client: client, now: time.Now}
}

func (s *jobPostingStore) jobs() *storage.Table {
	return s.client.From(storage.TableJobs)
}

func (s *jobPostingStore) List(ctx context.Context) ([]domain.JobPosting, error) {
	rows, err := s.jobs().Select().
		Order(storage.ColumnCreatedAt, false).
		Many(ctx)
	if err != nil {
		return nil, wrapStorageError("list jobs", err)
	}
	return jobsFromRows(rows), nil
}

func (s *jobPostingStore) ListActive(ctx context.Context, category string) ([]domain.JobPosting, error) {
	q := s.jobs().Select().Eq(storage.ColumnIsActive, true)
	if category != "" {
		q = q.Eq(storage.ColumnCategory, category)
	}
	rows, err := q.Order(storage.ColumnCreatedAt, false).Many(ctx)
	if err != nil {
		return nil, wrapStorageError("list active jobs", err)
	}
	return jobsFromRows(rows), nil
}

func (s *jobPostingStore) GetByID(ctx context.Context, id int64) (*domain.JobPosting, error) {
	row, err := s.jobs().Select().Eq(storage.ColumnID, id).Single(ctx)
	if err != nil {
		return nil, wrapStorageError("get job", err)
	}
	if row == nil {
		return nil, fmt.Errorf("%w: id %d", domain.ErrJobNotFound, id)
	}
	job := jobFromRow(row)
	return &job, nil
}

func (s *jobPostingStore) GetActiveBySlug(ctx context.Context, slug string) (*domain.JobPosting, error) {
	row, err := s.jobs().Select().
		Eq(storage.ColumnSlug, slug).
		Eq(storage.ColumnIsActive, true).
		Single(ctx)
	if err != nil {
		return nil, wrapStorageError("get job by slug", err)
	}
	if row == nil {
		return nil, fmt.Errorf("%w: slug %q", domain.ErrJobNotFound, slug)
	}
	job := jobFromRow(row)
	return &job, nil
}

func (s *jobPostingStore) GetSlug(ctx context.Context, id int64) (string, error) {
	row, err := s.jobs().Select(storage.ColumnSlug).Eq(storage.ColumnID, id).Single(ctx)
	if err != nil {
		return "", wrapStorageError("get job slug", err)
	}
	if row == nil {
		return "", fmt.Errorf("%w: id %d", domain.ErrJobNotFound, id)
	}
	return toString(row[storage.ColumnSlug]), nil
}

func (s *jobPostingStore) SlugExists(ctx context.Context, slug string, excludeID int64) (bool, error) {
	q := s.jobs().Select(storage.ColumnID).Eq(storage.ColumnSlug, slug)
	if excludeID != 0 {
		q = q.Neq(storage.ColumnID, excludeID)
	}
	row, err := q.Single(ctx)
	if err != nil {
		return false, wrapStorageError("check slug", err)
	}
	return row != nil, nil
}

func (s *jobPostingStore) Create(ctx context.Context, job *domain.JobPosting) (*domain.JobPosting, error) {
	now := s.now()
	values := jobValues(job)
	values[storage.ColumnCreatedAt] = now
	values[storage.ColumnUpdatedAt] = now

	row, err := s.jobs().Insert(ctx, values)
	if err != nil {
		return nil, wrapStorageError("create job", err)
	}
	created := jobFromRow(row)
	return &created, nil
}

func (s *jobPostingStore) Update(ctx context.Context, job *domain.JobPosting) error {
	values := jobValues(job)
	values[storage.ColumnUpdatedAt] = s.now()

	n, err := s.jobs().Update(values).Eq(storage.ColumnID, job.ID).Exec(ctx)
	if err != nil {
		return wrapStorageError("update job", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: id %d", domain.ErrJobNotFound, job.ID)
	}
	return nil
}

func (s *jobPostingStore) Delete(ctx context.Context, id int64) error {
	n, err := s.jobs().Delete().Eq(storage.ColumnID, id).Exec(ctx)
	if err != nil {
		return wrapStorageError("delete job", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: id %d", domain.ErrJobNotFound, id)
	}
	return nil
}

func jobsFromRows(rows []storage.Row) []domain.JobPosting {
	jobs := make([]domain.JobPosting, 0, len(rows))
	for _, r := range rows {
		jobs = append(jobs, jobFromRow(r))
	}
	return jobs
}
