package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/dewinson2/MJCL/internal/domain"
	"github.com/dewinson2/MJCL/internal/logger"
)

// maxMultipartMemory bounds the in-memory part of multipart form parsing
const maxMultipartMemory = 1 << 20

// errUnsupportedMedia is returned for bodies that are neither JSON nor a form
var errUnsupportedMedia = errors.New("unsupported content type")

// Content types accepted for admin submissions
const (
	contentTypeJSON      = "application/json"
	contentTypeForm      = "application/x-www-form-urlencoded"
	contentTypeMultipart = "multipart/form-data"
)

// formValues abstracts over parsed url-encoded and multipart bodies
type formValues func(key string) string

// decodeBody decodes a JSON body into dst, or hands the parsed form values to
// fromForm. It writes the error response itself and returns false on failure.
func decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}, fromForm func(formValues), actionName string) bool {
	log := logger.FromContext(r.Context())

	err := decodeBodyErr(r, dst, fromForm)
	switch {
	case err == nil:
		log.Debug(fmt.Sprintf("%s request decoded", actionName))
		return true
	case errors.Is(err, errUnsupportedMedia):
		log.Warn(fmt.Sprintf("Unsupported %s request body", actionName), "content_type", r.Header.Get("Content-Type"))
		respondError(w, http.StatusUnsupportedMediaType, ErrMsgUnsupportedMedia)
	default:
		log.Warn(fmt.Sprintf("Failed to decode %s request", actionName), "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
	}
	return false
}

func decodeBodyErr(r *http.Request, dst interface{}, fromForm func(formValues)) error {
	mediaType := contentTypeJSON
	if ct := r.Header.Get("Content-Type"); ct != "" {
		parsed, _, err := mime.ParseMediaType(ct)
		if err != nil {
			return fmt.Errorf("%w: %s", errUnsupportedMedia, ct)
		}
		mediaType = parsed
	}

	switch mediaType {
	case contentTypeJSON:
		return json.NewDecoder(r.Body).Decode(dst)
	case contentTypeForm:
		if err := r.ParseForm(); err != nil {
			return err
		}
		fromForm(r.PostForm.Get)
		return nil
	case contentTypeMultipart:
		if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
			return err
		}
		fromForm(r.PostFormValue)
		return nil
	}
	return fmt.Errorf("%w: %s", errUnsupportedMedia, mediaType)
}

// jobFormFromValues reads the admin job form the way the HTML form posts it:
// list fields newline-separated and the active checkbox as "on".
func jobFormFromValues(form *domain.JobPostingForm) func(formValues) {
	return func(get formValues) {
		*form = domain.JobPostingForm{
			Title:        get("title"),
			Location:     get("location"),
			JobType:      get("job_type"),
			Description:  get("description"),
			Category:     get("category"),
			Requirements: domain.SplitLines(get("requirements")),
			Benefits:     domain.SplitLines(get("benefits")),
			IsActive:     isChecked(get("is_active")),
			Slug:         get("slug"),
		}
	}
}

func contactFormFromValues(form *domain.ContactInfoForm) func(formValues) {
	return func(get formValues) {
		*form = domain.ContactInfoForm{
			Phone1:       get("phone1"),
			Phone2:       get("phone2"),
			Email1:       get("email1"),
			Email2:       get("email2"),
			AddressLine1: get("address_line1"),
			AddressLine2: get("address_line2"),
			FacebookURL:  get("facebook_url"),
			TwitterURL:   get("twitter_url"),
			InstagramURL: get("instagram_url"),
			LinkedInURL:  get("linkedin_url"),
		}
	}
}

func isChecked(v string) bool {
	if v == domain.FormCheckboxOn {
		return true
	}
	b, err := strconv.ParseBool(v)
	return err == nil && b
}

// pathID parses a positive int64 URL parameter. It writes a 400 response and
// returns false when the parameter is malformed.
func pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		logger.FromContext(r.Context()).Warn("Invalid path id", "param", name, "value", raw)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidID)
		return 0, false
	}
	return id, true
}

// GetOptionalQueryParam returns the query parameter, or defaultValue when it
// is missing.
func GetOptionalQueryParam(r *http.Request, paramName string, defaultValue string) string {
	value := r.URL.Query().Get(paramName)
	if value == "" {
		return defaultValue
	}
	return value
}
