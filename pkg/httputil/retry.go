package httputil

import (
	"context"
	"errors"
	"time"
)

// Back office reads are the only remote calls in the pipeline, and they
// sit in front of an operator waiting for a label. Three quick attempts
// ride out a flaky connection or a restarting backend without making a
// genuinely down backend feel hung.
const (
	defaultAttempts = 3
	defaultDelay    = 500 * time.Millisecond
)

// RetryableError marks a failure as transient. The back office client
// wraps network errors and 5xx responses with it; anything else (404,
// a decode failure) is final and must not be retried.
type RetryableError struct{ Err error }

func (e *RetryableError) Error() string { return e.Err.Error() }
func (e *RetryableError) Unwrap() error { return e.Err }

// Retry runs fn up to attempts times, doubling delay between attempts.
// Only errors wrapped in [RetryableError] trigger another attempt; other
// errors return immediately. A cancelled ctx wins over a pending delay.
func Retry(ctx context.Context, attempts int, delay time.Duration, fn func() error) error {
	attempts = max(attempts, 1)
	var lastErr error

	for i := range attempts {
		if err := fn(); err == nil {
			return nil
		} else if lastErr = err; !isRetryable(err) {
			return err
		}

		if i < attempts-1 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
				delay *= 2
			}
		}
	}
	return lastErr
}

// RetryWithBackoff applies the package's back office read policy to fn.
func RetryWithBackoff(ctx context.Context, fn func() error) error {
	return Retry(ctx, defaultAttempts, defaultDelay, fn)
}

func isRetryable(err error) bool {
	return errors.As(err, new(*RetryableError))
}
