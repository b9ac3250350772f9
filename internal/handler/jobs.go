package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dewinson2/MJCL/internal/cache"
	"github.com/dewinson2/MJCL/internal/domain"
	"github.com/dewinson2/MJCL/internal/job"
)

// JobsResponse wraps a list of postings
type JobsResponse struct {
	Jobs []domain.JobPosting `json:"jobs"`
}

// JobHandler serves the public careers API and the admin job endpoints
type JobHandler struct {
	service job.Service
	cache   cache.Cache
}

// NewJobHandler creates a job handler. A nil cache disables caching.
func NewJobHandler(service job.Service, c cache.Cache) *JobHandler {
	if c == nil {
		c = cache.Nop{}
	}
	return &JobHandler{service: service, cache: c}
}

// HandleListActive returns active postings, newest first, optionally
// filtered by the category query parameter.
func (h *JobHandler) HandleListActive(w http.ResponseWriter, r *http.Request) {
	category := GetOptionalQueryParam(r, "category", domain.CategoryAll)
	serveCached(w, r, h.cache, cache.PrefixJobs+"list:"+category, func() (int, interface{}, bool) {
		jobs, fresh := h.service.ListActive(r.Context(), category)
		return http.StatusOK, JobsResponse{Jobs: jobs}, fresh
	})
}

// HandleListGrouped returns active postings grouped by category
func (h *JobHandler) HandleListGrouped(w http.ResponseWriter, r *http.Request) {
	serveCached(w, r, h.cache, cache.PrefixJobs+"grouped", func() (int, interface{}, bool) {
		grouped, fresh := h.service.ListActiveByCategory(r.Context())
		return http.StatusOK, grouped, fresh
	})
}

// HandleGetBySlug returns one active posting, or 404
func (h *JobHandler) HandleGetBySlug(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	serveCached(w, r, h.cache, cache.PrefixJobs+"slug:"+slug, func() (int, interface{}, bool) {
		j, fresh := h.service.GetActiveBySlug(r.Context(), slug)
		if j == nil {
			return http.StatusNotFound, ErrorResponse{Error: ErrMsgJobNotFound}, fresh
		}
		return http.StatusOK, j, fresh
	})
}

// HandleAdminList returns every posting, active or not
func (h *JobHandler) HandleAdminList(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, JobsResponse{Jobs: h.service.ListAll(r.Context())})
}

// HandleAdminGet returns one posting by id, or 404
func (h *JobHandler) HandleAdminGet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	j := h.service.GetByID(r.Context(), id)
	if j == nil {
		respondError(w, http.StatusNotFound, ErrMsgJobNotFound)
		return
	}
	respondJSON(w, http.StatusOK, j)
}

// HandleCreate creates a posting from a JSON or form body
func (h *JobHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var form domain.JobPostingForm
	if !decodeBody(w, r, &form, jobFormFromValues(&form), "Create job") {
		return
	}
	respondAction(w, http.StatusCreated, h.service.Create(r.Context(), form))
}

// HandleUpdate replaces a posting's fields
func (h *JobHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var form domain.JobPostingForm
	if !decodeBody(w, r, &form, jobFormFromValues(&form), "Update job") {
		return
	}
	respondAction(w, http.StatusOK, h.service.Update(r.Context(), id, form))
}

// HandleDelete removes a posting
func (h *JobHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	respondAction(w, http.StatusOK, h.service.Delete(r.Context(), id))
}
