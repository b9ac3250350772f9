package domain

// ActionResult is the outcome of an admin write. Expected failures
// (validation, missing rows, storage errors) are reported here rather than
// returned as errors.
type ActionResult struct {
	Success bool              `json:"success"`
	Message string            `json:"message,omitempty"`
	Slug    string            `json:"slug,omitempty"`
	ID      int64             `json:"id,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`

	// Err carries the sentinel behind a failure for status mapping.
	Err error `json:"-"`
}

// Succeeded builds a successful result.
func Succeeded(message string) ActionResult {
	return ActionResult{Success: true, Message: message}
}

// Failed builds a failed result carrying err for status mapping.
func Failed(err error, message string) ActionResult {
	return ActionResult{Success: false, Message: message, Err: err}
}

// Invalid builds a validation failure with per-field messages.
func Invalid(message string, fields map[string]string) ActionResult {
	return ActionResult{Success: false, Message: message, Errors: fields, Err: ErrInvalidInput}
}
