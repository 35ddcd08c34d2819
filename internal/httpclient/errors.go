package httpclient

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
)

// Category buckets HTTP failures into the user-facing classes the
// dashboard distinguishes.
type Category string

const (
	CategoryUnauthorized Category = "unauthorized"
	CategoryForbidden    Category = "forbidden"
	CategoryNotFound     Category = "not_found"
	CategoryConflict     Category = "conflict"
	CategoryValidation   Category = "validation"
	CategoryServer       Category = "server"
	CategoryTimeout      Category = "timeout"
	CategoryUnknown      Category = "unknown"
)

// APIError is a classified failure from the backend
type APIError struct {
	Category   Category `json:"category"`
	StatusCode int      `json:"status_code"`
	Message    string   `json:"message"`
	URL        string   `json:"url"`
	Method     string   `json:"method"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	return fmt.Sprintf("%s %s failed: %s (%d %s)", e.Method, e.URL, e.Message, e.StatusCode, e.Category)
}

// Classify maps an HTTP status code to its error category
func Classify(status int) Category {
	switch {
	case status == http.StatusUnauthorized:
		return CategoryUnauthorized
	case status == http.StatusForbidden:
		return CategoryForbidden
	case status == http.StatusNotFound:
		return CategoryNotFound
	case status == http.StatusConflict:
		return CategoryConflict
	case status == http.StatusUnprocessableEntity || status == http.StatusBadRequest:
		return CategoryValidation
	case status == http.StatusRequestTimeout || status == http.StatusGatewayTimeout:
		return CategoryTimeout
	case status >= 500:
		return CategoryServer
	default:
		return CategoryUnknown
	}
}

// IsRetryable reports whether a failed attempt is worth repeating.
// Auth and not-found classes never are; timeouts, rate limiting, server
// errors and transport-level failures may be transient.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		switch apiErr.StatusCode {
		case http.StatusUnauthorized, http.StatusForbidden, http.StatusNotFound:
			return false
		case http.StatusRequestTimeout, http.StatusTooManyRequests:
			return true
		}
		return apiErr.StatusCode >= 500
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	// Transport-level failures reach here wrapped by net/http
	return true
}
