package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Job posting errors
	ErrMsgJobNotFound   = "job posting not found"
	ErrMsgSlugConflict  = "slug already in use"
	ErrMsgInvalidInput  = "invalid input"
	ErrMsgMissingFields = "all required fields must be completed"

	// Storage errors
	ErrMsgStorageUnavailable = "storage unavailable"

	// Admin errors
	ErrMsgUnauthorized = "unauthorized"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrJobNotFound        = errors.New(ErrMsgJobNotFound)
	ErrSlugConflict       = errors.New(ErrMsgSlugConflict)
	ErrInvalidInput       = errors.New(ErrMsgInvalidInput)
	ErrStorageUnavailable = errors.New(ErrMsgStorageUnavailable)
	ErrUnauthorized       = errors.New(ErrMsgUnauthorized)
)
