package services

import (
	"context"
	"net/url"
)

// clientAPI is the slice of the shared HTTP client the live
// implementations depend on. Narrowing it to an interface lets tests
// stub the backend without a network.
type clientAPI interface {
	Get(ctx context.Context, path string, query url.Values, out interface{}) error
	GetRaw(ctx context.Context, path string, query url.Values) ([]byte, error)
	Post(ctx context.Context, path string, body, out interface{}) error
	Put(ctx context.Context, path string, body, out interface{}) error
	Patch(ctx context.Context, path string, body, out interface{}) error
	Delete(ctx context.Context, path string) error
}

// Backend responses wrap payloads in a success envelope

type listEnvelope[T any] struct {
	Success bool `json:"success"`
	Data    []T  `json:"data"`
}

type itemEnvelope[T any] struct {
	Success bool `json:"success"`
	Data    T    `json:"data"`
}
