package handler

import (
	"net/http"

	"github.com/dewinson2/MJCL/internal/cache"
	"github.com/dewinson2/MJCL/internal/contact"
	"github.com/dewinson2/MJCL/internal/domain"
)

// ContactHandler serves and edits the contact details
type ContactHandler struct {
	service contact.Service
	cache   cache.Cache
}

// NewContactHandler creates a contact handler. A nil cache disables caching.
func NewContactHandler(service contact.Service, c cache.Cache) *ContactHandler {
	if c == nil {
		c = cache.Nop{}
	}
	return &ContactHandler{service: service, cache: c}
}

// HandleGet returns the contact details. It never fails: defaults are served
// when storage cannot be read.
func (h *ContactHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	serveCached(w, r, h.cache, cache.PrefixContact+"info", func() (int, interface{}, bool) {
		info, fresh := h.service.Get(r.Context())
		return http.StatusOK, info, fresh
	})
}

// HandleAdminGet returns the contact details without caching
func (h *ContactHandler) HandleAdminGet(w http.ResponseWriter, r *http.Request) {
	info, _ := h.service.Get(r.Context())
	respondJSON(w, http.StatusOK, info)
}

// HandleUpdate saves the contact details from a JSON or form body
func (h *ContactHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var form domain.ContactInfoForm
	if !decodeBody(w, r, &form, contactFormFromValues(&form), "Update contact") {
		return
	}
	respondAction(w, http.StatusOK, h.service.Update(r.Context(), form))
}
