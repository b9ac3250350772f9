// Package job implements the job posting use cases behind the public careers
// pages and the admin panel.
package job

import (
	"context"
	"errors"
	"strings"

	"github.com/dewinson2/MJCL/internal/domain"
	"github.com/dewinson2/MJCL/internal/event"
	"github.com/dewinson2/MJCL/internal/logger"
	"github.com/dewinson2/MJCL/internal/repository"
	"github.com/dewinson2/MJCL/internal/slug"
	"github.com/dewinson2/MJCL/internal/validation"
)

// Service defines the job posting business logic.
// Reads never fail: storage errors are logged and an empty result returned.
// The public reads also report whether the result came from storage; false
// marks a fallback that must not be cached. Writes report expected failures
// in the ActionResult.
type Service interface {
	// Public reads
	ListActive(ctx context.Context, category string) ([]domain.JobPosting, bool)
	ListActiveByCategory(ctx context.Context) (domain.GroupedJobs, bool)
	GetActiveBySlug(ctx context.Context, slug string) (*domain.JobPosting, bool)

	// Admin
	ListAll(ctx context.Context) []domain.JobPosting
	GetByID(ctx context.Context, id int64) *domain.JobPosting
	Create(ctx context.Context, form domain.JobPostingForm) domain.ActionResult
	Update(ctx context.Context, id int64, form domain.JobPostingForm) domain.ActionResult
	Delete(ctx context.Context, id int64) domain.ActionResult
}

// RetryObserver is notified each time a write is retried after a slug conflict
type RetryObserver interface {
	SlugRetry()
}

// Option configures the service
type Option func(*service)

// WithRetryObserver attaches a retry observer
func WithRetryObserver(o RetryObserver) Option {
	return func(s *service) { s.retries = o }
}

type service struct {
	repo     repository.JobPosting
	slugs    *slug.Generator
	bus      event.Bus
	validate *validation.Validator
	retries  RetryObserver
}

// NewService creates a new job posting service. The bus may be nil.
func NewService(repo repository.JobPosting, slugs *slug.Generator, bus event.Bus, opts ...Option) Service {
	s := &service{
		repo:     repo,
		slugs:    slugs,
		bus:      bus,
		validate: validation.Get(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *service) ListAll(ctx context.Context) []domain.JobPosting {
	jobs, err := s.repo.List(ctx)
	if err != nil {
		logger.FromContext(ctx).Error(LogMsgListFailed, "error", err)
		return []domain.JobPosting{}
	}
	return jobs
}

func (s *service) ListActive(ctx context.Context, category string) ([]domain.JobPosting, bool) {
	if category == domain.CategoryAll {
		category = ""
	}
	jobs, err := s.repo.ListActive(ctx, category)
	if err != nil {
		logger.FromContext(ctx).Error(LogMsgListFailed, "error", err, "category", category)
		return []domain.JobPosting{}, false
	}
	return jobs, true
}

// ListActiveByCategory groups active postings under CategoryAll and under
// each known category. Every bucket is present, possibly empty.
func (s *service) ListActiveByCategory(ctx context.Context) (domain.GroupedJobs, bool) {
	all, fresh := s.ListActive(ctx, "")

	grouped := domain.GroupedJobs{domain.CategoryAll: all}
	for _, c := range domain.Categories {
		grouped[c] = []domain.JobPosting{}
	}
	for _, j := range all {
		if _, ok := grouped[j.Category]; ok && j.Category != domain.CategoryAll {
			grouped[j.Category] = append(grouped[j.Category], j)
		}
	}
	return grouped, fresh
}

func (s *service) GetByID(ctx context.Context, id int64) *domain.JobPosting {
	job, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logReadError(ctx, err, "id", id)
		return nil
	}
	return job
}

// GetActiveBySlug reports a missing posting as (nil, true); only a storage
// failure yields false.
func (s *service) GetActiveBySlug(ctx context.Context, slug string) (*domain.JobPosting, bool) {
	job, err := s.repo.GetActiveBySlug(ctx, slug)
	if err != nil {
		return nil, s.logReadError(ctx, err, "slug", slug)
	}
	return job, true
}

// logReadError logs err and reports whether it was a plain not-found.
func (s *service) logReadError(ctx context.Context, err error, args ...any) bool {
	log := logger.FromContext(ctx)
	if errors.Is(err, domain.ErrJobNotFound) {
		log.Debug(domain.ErrMsgJobNotFound, args...)
		return true
	}
	log.Error(LogMsgGetFailed, append(args, "error", err)...)
	return false
}

func (s *service) Create(ctx context.Context, form domain.JobPostingForm) domain.ActionResult {
	form = trimForm(form)
	if res, ok := s.check(form, false); !ok {
		return res
	}

	job := jobFromForm(form)
	job.Slug = s.slugs.Generate(ctx, form.Title, 0)

	var created *domain.JobPosting
	for attempt := 1; ; attempt++ {
		var err error
		created, err = s.repo.Create(ctx, job)
		if err == nil {
			break
		}
		if s.shouldRetry(ctx, err, attempt, job.Slug) {
			job.Slug = s.slugs.Generate(ctx, form.Title, 0)
			continue
		}
		return s.writeFailed(ctx, err, "create", MsgCreateFailed)
	}

	event.PublishBestEffort(ctx, s.bus,
		event.NewJobEvent(event.JobCreated, created.ID, created.Slug, "", created.Category))

	logger.FromContext(ctx).Info("Job posting created", "id", created.ID, "slug", created.Slug)
	return domain.ActionResult{Success: true, Message: MsgCreated, Slug: created.Slug, ID: created.ID}
}

// Update keeps the submitted slug unless another row already uses it, in
// which case a fresh slug is generated from the title excluding this row.
func (s *service) Update(ctx context.Context, id int64, form domain.JobPostingForm) domain.ActionResult {
	form = trimForm(form)
	if res, ok := s.check(form, true); !ok {
		return res
	}

	current, err := s.repo.GetSlug(ctx, id)
	if err != nil {
		return s.writeFailed(ctx, err, "update", MsgUpdateFailed)
	}

	wanted := slug.Normalize(form.Slug)
	switch {
	case wanted == "":
		wanted = s.slugs.Generate(ctx, form.Title, id)
	case wanted != current:
		taken, err := s.repo.SlugExists(ctx, wanted, id)
		if err != nil {
			logger.FromContext(ctx).Warn(LogMsgSlugCheckError, "slug", wanted, "error", err)
		} else if taken {
			wanted = s.slugs.Generate(ctx, form.Title, id)
		}
	}

	job := jobFromForm(form)
	job.ID = id
	job.Slug = wanted
	for attempt := 1; ; attempt++ {
		err := s.repo.Update(ctx, job)
		if err == nil {
			break
		}
		if s.shouldRetry(ctx, err, attempt, job.Slug) {
			job.Slug = s.slugs.Generate(ctx, form.Title, id)
			continue
		}
		return s.writeFailed(ctx, err, "update", MsgUpdateFailed)
	}

	previous := ""
	if current != job.Slug {
		previous = current
	}
	event.PublishBestEffort(ctx, s.bus,
		event.NewJobEvent(event.JobUpdated, id, job.Slug, previous, job.Category))

	logger.FromContext(ctx).Info("Job posting updated", "id", id, "slug", job.Slug)
	return domain.ActionResult{Success: true, Message: MsgUpdated, Slug: job.Slug, ID: id}
}

func (s *service) Delete(ctx context.Context, id int64) domain.ActionResult {
	current, err := s.repo.GetSlug(ctx, id)
	if err != nil {
		return s.writeFailed(ctx, err, "delete", MsgDeleteFailed)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return s.writeFailed(ctx, err, "delete", MsgDeleteFailed)
	}

	event.PublishBestEffort(ctx, s.bus, event.NewJobEvent(event.JobDeleted, id, current, "", ""))

	logger.FromContext(ctx).Info("Job posting deleted", "id", id, "slug", current)
	return domain.ActionResult{Success: true, Message: MsgDeleted, Slug: current, ID: id}
}

// check validates the form. On update the slug is required.
func (s *service) check(form domain.JobPostingForm, update bool) (domain.ActionResult, bool) {
	fields := validation.FormatValidationError(s.validate.ValidateStruct(form))
	if update && form.Slug == "" {
		if fields == nil {
			fields = make(map[string]string)
		}
		fields["slug"] = validation.MsgRequired
	}
	if len(fields) > 0 {
		return domain.Invalid(MsgMissingFields, fields), false
	}
	return domain.ActionResult{}, true
}

func (s *service) shouldRetry(ctx context.Context, err error, attempt int, taken string) bool {
	if !errors.Is(err, domain.ErrSlugConflict) || attempt >= MaxWriteAttempts {
		return false
	}
	logger.FromContext(ctx).Warn(LogMsgSlugRetry, "slug", taken, "attempt", attempt)
	if s.retries != nil {
		s.retries.SlugRetry()
	}
	return true
}

func (s *service) writeFailed(ctx context.Context, err error, op, message string) domain.ActionResult {
	switch {
	case errors.Is(err, domain.ErrJobNotFound):
		return domain.Failed(err, MsgNotFound)
	case errors.Is(err, domain.ErrSlugConflict):
		logger.FromContext(ctx).Warn(LogMsgWriteFailed, "op", op, "error", err)
		return domain.Failed(err, MsgSlugConflict)
	}
	logger.FromContext(ctx).Error(LogMsgWriteFailed, "op", op, "error", err)
	return domain.Failed(err, message)
}

func trimForm(f domain.JobPostingForm) domain.JobPostingForm {
	f.Title = strings.TrimSpace(f.Title)
	f.Location = strings.TrimSpace(f.Location)
	f.JobType = strings.TrimSpace(f.JobType)
	f.Description = strings.TrimSpace(f.Description)
	f.Category = strings.TrimSpace(f.Category)
	f.Slug = strings.TrimSpace(f.Slug)
	return f
}

func jobFromForm(f domain.JobPostingForm) *domain.JobPosting {
	return &domain.JobPosting{
		Title:        f.Title,
		Location:     f.Location,
		JobType:      f.JobType,
		Description:  f.Description,
		Requirements: lines(f.Requirements),
		Benefits:     lines(f.Benefits),
		Category:     f.Category,
		IsActive:     f.IsActive,
	}
}

func lines(l domain.Lines) []string {
	if l == nil {
		return []string{}
	}
	return []string(l)
}
