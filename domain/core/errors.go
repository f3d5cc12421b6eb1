package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	ErrNotFound       = errors.New("resource not found")
	ErrImportNotFound = fmt.Errorf("%w: import", ErrNotFound)

	ErrUnsupportedFormat = errors.New("unsupported spreadsheet format")
	ErrMalformedFile     = errors.New("malformed spreadsheet file")
)

// NewNotFoundError builds a not-found error with resource context
func NewNotFoundError(resource string, id string) error {
	return fmt.Errorf("%w: %s with id %s", ErrNotFound, resource, id)
}

// IsNotFoundError checks whether err is any not-found error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}
