package httpclient

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastRetry(attempts int) RetryOptions {
	return RetryOptions{
		MaxAttempts: attempts,
		BaseWait:    time.Millisecond,
		MaxWait:     5 * time.Millisecond,
		Factor:      2.0,
	}
}

func serverError() error {
	return &APIError{Category: CategoryServer, StatusCode: http.StatusInternalServerError, Message: "boom"}
}

func TestRetrySucceedsOnThirdAttempt(t *testing.T) {
	calls := 0
	err := Retry(context.Background(), fastRetry(3), func() error {
		calls++
		if calls < 3 {
			return serverError()
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestRetryExhaustsAttempts(t *testing.T) {
	calls := 0
	err := Retry(context.Background(), fastRetry(2), func() error {
		calls++
		return serverError()
	})

	require.Error(t, err)
	assert.Equal(t, 2, calls)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
}

func TestRetryStopsOnNonRetryable(t *testing.T) {
	calls := 0
	err := Retry(context.Background(), fastRetry(3), func() error {
		calls++
		return &APIError{Category: CategoryNotFound, StatusCode: http.StatusNotFound}
	})

	require.Error(t, err)
	assert.Equal(t, 1, calls, "404 must not be retried")
}

func TestRetryFirstAttemptSucceeds(t *testing.T) {
	calls := 0
	err := Retry(context.Background(), fastRetry(3), func() error {
		calls++
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestRetryHonorsContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	calls := 0
	err := Retry(ctx, RetryOptions{MaxAttempts: 5, BaseWait: time.Second}, func() error {
		calls++
		cancel()
		return serverError()
	})

	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls)
}

func TestRetryZeroOptionsUseDefaults(t *testing.T) {
	opts := RetryOptions{}.normalized()

	assert.Equal(t, 3, opts.MaxAttempts)
	assert.Equal(t, 500*time.Millisecond, opts.BaseWait)
	assert.Equal(t, 10*time.Second, opts.MaxWait)
	assert.Equal(t, 2.0, opts.Factor)
}

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"unauthorized", &APIError{StatusCode: http.StatusUnauthorized}, false},
		{"forbidden", &APIError{StatusCode: http.StatusForbidden}, false},
		{"not found", &APIError{StatusCode: http.StatusNotFound}, false},
		{"validation", &APIError{StatusCode: http.StatusBadRequest}, false},
		{"request timeout", &APIError{StatusCode: http.StatusRequestTimeout}, true},
		{"rate limited", &APIError{StatusCode: http.StatusTooManyRequests}, true},
		{"server error", &APIError{StatusCode: http.StatusInternalServerError}, true},
		{"bad gateway", &APIError{StatusCode: http.StatusBadGateway}, true},
		{"context canceled", context.Canceled, false},
		{"deadline exceeded", context.DeadlineExceeded, false},
		{"plain transport error", errors.New("connection reset"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsRetryable(tt.err))
		})
	}
}

func TestClassify(t *testing.T) {
	assert.Equal(t, CategoryUnauthorized, Classify(http.StatusUnauthorized))
	assert.Equal(t, CategoryForbidden, Classify(http.StatusForbidden))
	assert.Equal(t, CategoryNotFound, Classify(http.StatusNotFound))
	assert.Equal(t, CategoryConflict, Classify(http.StatusConflict))
	assert.Equal(t, CategoryValidation, Classify(http.StatusBadRequest))
	assert.Equal(t, CategoryValidation, Classify(http.StatusUnprocessableEntity))
	assert.Equal(t, CategoryTimeout, Classify(http.StatusRequestTimeout))
	assert.Equal(t, CategoryTimeout, Classify(http.StatusGatewayTimeout))
	assert.Equal(t, CategoryServer, Classify(http.StatusInternalServerError))
	assert.Equal(t, CategoryUnknown, Classify(http.StatusTeapot))
}
