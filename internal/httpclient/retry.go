package httpclient

import (
	"context"
	"time"
)

// RetryOptions bounds the exponential backoff schedule
type RetryOptions struct {
	MaxAttempts int
	BaseWait    time.Duration
	MaxWait     time.Duration
	Factor      float64
}

// DefaultRetryOptions is used when a caller passes a zero-valued options
// struct.
var DefaultRetryOptions = RetryOptions{
	MaxAttempts: 3,
	BaseWait:    500 * time.Millisecond,
	MaxWait:     10 * time.Second,
	Factor:      2.0,
}

func (o RetryOptions) normalized() RetryOptions {
	if o.MaxAttempts < 1 {
		o.MaxAttempts = DefaultRetryOptions.MaxAttempts
	}
	if o.BaseWait <= 0 {
		o.BaseWait = DefaultRetryOptions.BaseWait
	}
	if o.MaxWait <= 0 {
		o.MaxWait = DefaultRetryOptions.MaxWait
	}
	if o.Factor < 1 {
		o.Factor = DefaultRetryOptions.Factor
	}
	return o
}

// Retry invokes fn up to MaxAttempts times, sleeping an exponentially
// growing capped delay between attempts. It stops early when fn succeeds,
// the error is not retryable, or the context ends. The last error is
// returned on exhaustion.
func Retry(ctx context.Context, opts RetryOptions, fn func() error) error {
	opts = opts.normalized()

	wait := opts.BaseWait
	var lastErr error

	for attempt := 1; attempt <= opts.MaxAttempts; attempt++ {
		lastErr = fn()
		if lastErr == nil {
			return nil
		}

		if !IsRetryable(lastErr) || attempt == opts.MaxAttempts {
			return lastErr
		}

		select {
		case <-time.After(wait):
		case <-ctx.Done():
			return ctx.Err()
		}

		wait = time.Duration(float64(wait) * opts.Factor)
		if wait > opts.MaxWait {
			wait = opts.MaxWait
		}
	}

	return lastErr
}
