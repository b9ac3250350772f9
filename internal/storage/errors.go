package storage

import (
	"errors"
	"fmt"
)

// Error message constants
const (
	ErrMsgInvalidQuery    = "invalid query"
	ErrMsgUniqueViolation = "unique constraint violation"
	ErrMsgUnknownTable    = "unknown table"
	ErrMsgUnknownColumn   = "unknown column"
)

var (
	// ErrInvalidQuery is returned at the terminal call when the chain was
	// built with invalid arguments.
	ErrInvalidQuery = errors.New(ErrMsgInvalidQuery)
	// ErrUniqueViolation signals a write that collided with a unique column.
	ErrUniqueViolation = errors.New(ErrMsgUniqueViolation)
	ErrUnknownTable    = errors.New(ErrMsgUnknownTable)
	ErrUnknownColumn   = errors.New(ErrMsgUnknownColumn)
)

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidQuery, fmt.Sprintf(format, args...))
}
