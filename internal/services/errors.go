package services

import (
	"errors"
	"fmt"

	"election-monitor/internal/httpclient"
)

// ErrNotFound is the sentinel all missing-record failures match via
// errors.Is.
var ErrNotFound = errors.New("not found")

// NotFoundError identifies the missing record
type NotFoundError struct {
	Resource string
	ID       string
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Resource, e.ID)
}

// Is lets errors.Is match against ErrNotFound
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

func notFound(resource, id string) error {
	return &NotFoundError{Resource: resource, ID: id}
}

// translateHTTPError converts a classified 404 from the live backend into
// the same NotFoundError mock mode produces. Other failures pass through.
func translateHTTPError(err error, resource, id string) error {
	if err == nil {
		return nil
	}
	var apiErr *httpclient.APIError
	if errors.As(err, &apiErr) && apiErr.Category == httpclient.CategoryNotFound {
		return notFound(resource, id)
	}
	return err
}

// ErrInvalidInput marks create/update payloads that fail validation
var ErrInvalidInput = errors.New("invalid input")

func invalidInput(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}
