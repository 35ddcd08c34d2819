package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"election-monitor/pkg/config"
	"election-monitor/pkg/logger"
)

// TokenSource supplies bearer tokens and knows how to refresh them once a
// request comes back unauthorized.
type TokenSource interface {
	AccessToken() string
	Refresh(ctx context.Context) error
}

// Client is the shared HTTP client all live-mode services go through. It
// injects the bearer token, logs structured request/response metadata,
// classifies failures and retries transient ones with bounded backoff.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	logger  *logger.Logger
	retry   RetryOptions
}

// NewClient creates a client rooted at baseURL. tokens may be nil for
// unauthenticated use.
func NewClient(cfg config.ClientConfig, baseURL string, tokens TokenSource, log *logger.Logger) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		http: &http.Client{
			Timeout: cfg.Timeout,
		},
		tokens: tokens,
		logger: log.WithComponent("httpclient"),
		retry: RetryOptions{
			MaxAttempts: cfg.MaxAttempts,
			BaseWait:    cfg.RetryBaseWait,
			MaxWait:     cfg.RetryMaxWait,
			Factor:      cfg.RetryFactor,
		},
	}
}

// Get issues a GET request and decodes the response into out
func (c *Client) Get(ctx context.Context, path string, query url.Values, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

// Post issues a POST request with a JSON body
func (c *Client) Post(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

// Put issues a PUT request with a JSON body
func (c *Client) Put(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out)
}

// Patch issues a PATCH request with a JSON body
func (c *Client) Patch(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPatch, path, nil, body, out)
}

// Delete issues a DELETE request
func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}

// GetRaw issues a GET request and returns the raw body, for exports
func (c *Client) GetRaw(ctx context.Context, path string, query url.Values) ([]byte, error) {
	var raw []byte
	err := Retry(ctx, c.retry, func() error {
		var attemptErr error
		raw, attemptErr = c.attemptRaw(ctx, http.MethodGet, path, query, nil, false)
		return attemptErr
	})
	return raw, err
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	return Retry(ctx, c.retry, func() error {
		raw, err := c.attemptRaw(ctx, method, path, query, body, false)
		if err != nil {
			return err
		}
		if out == nil || len(raw) == 0 {
			return nil
		}
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("decoding %s %s response: %w", method, path, err)
		}
		return nil
	})
}

// attemptRaw performs one request. On a 401 it refreshes the token once
// and replays before giving up.
func (c *Client) attemptRaw(ctx context.Context, method, path string, query url.Values, body interface{}, retried bool) ([]byte, error) {
	fullURL := c.baseURL + path
	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encoding %s %s body: %w", method, path, err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, reader)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.tokens != nil {
		if token := c.tokens.AccessToken(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Error("Request failed", "method", method, "url", fullURL, "error", err.Error())
		return nil, err
	}
	defer resp.Body.Close()

	latency := time.Since(start)
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		c.logger.Debug("Request completed", "method", method, "url", fullURL,
			"status", resp.StatusCode, "latency", latency.String())
		return raw, nil
	}

	// A single refresh-and-replay for expired access tokens
	if resp.StatusCode == http.StatusUnauthorized && c.tokens != nil && !retried {
		c.logger.Info("Access token rejected, attempting refresh", "url", fullURL)
		if refreshErr := c.tokens.Refresh(ctx); refreshErr == nil {
			return c.attemptRaw(ctx, method, path, query, body, true)
		}
	}

	apiErr := &APIError{
		Category:   Classify(resp.StatusCode),
		StatusCode: resp.StatusCode,
		Message:    errorMessage(raw, resp.StatusCode),
		URL:        fullURL,
		Method:     method,
	}

	c.logger.Error("Request failed", "method", method, "url", fullURL,
		"status", resp.StatusCode, "category", string(apiErr.Category), "latency", latency.String())

	return nil, apiErr
}

// errorMessage pulls a message out of a JSON error body, falling back to
// the status text.
func errorMessage(raw []byte, status int) string {
	var parsed struct {
		Message string `json:"message"`
		Error   struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(raw, &parsed); err == nil {
		if parsed.Message != "" {
			return parsed.Message
		}
		if parsed.Error.Message != "" {
			return parsed.Error.Message
		}
	}
	return http.StatusText(status)
}
