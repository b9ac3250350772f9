package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/dewinson2/MJCL/internal/domain"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	body, err := encodeJSON(payload)
	if err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
		http.Error(w, ErrMsgGenericServerError, http.StatusInternalServerError)
		return
	}
	respondRaw(w, status, body)
}

// respondRaw writes an already encoded JSON body
func respondRaw(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		slog.Error("Failed to write response", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondAction answers an admin write with its result. successStatus is used
// when the action succeeded.
func respondAction(w http.ResponseWriter, successStatus int, res domain.ActionResult) {
	if res.Success {
		respondJSON(w, successStatus, res)
		return
	}
	status, _ := mapServiceErrorToUserMessage(res.Err)
	respondJSON(w, status, res)
}

// mapServiceErrorToUserMessage maps domain errors to HTTP status codes and
// messages that do not leak internal details.
func mapServiceErrorToUserMessage(err error) (int, string) {
	switch {
	case err == nil:
		return http.StatusInternalServerError, ErrMsgUnknownError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidRequestError
	case errors.Is(err, domain.ErrJobNotFound):
		return http.StatusNotFound, ErrMsgJobNotFound
	case errors.Is(err, domain.ErrSlugConflict):
		return http.StatusConflict, ErrMsgSlugConflict
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized, ErrMsgUnauthorized
	case errors.Is(err, domain.ErrStorageUnavailable):
		return http.StatusInternalServerError, ErrMsgGenericServerError
	}
	return http.StatusInternalServerError, ErrMsgGenericServerError
}
