package retry

import (
	"context"
	"time"
)

// Do executes fn with backoff until it succeeds, a permanent error
// occurs, or the attempts run out. Context cancellation is respected
// during backoff waits. On failure the last error is returned.
func Do[T any](ctx context.Context, cfg Config, fn func() (T, error)) (T, error) {
	var zero T
	var lastErr error

	for attempt := 0; attempt < cfg.MaxAttempts; attempt++ {
		result, err := fn()
		if err == nil {
			return result, nil
		}
		lastErr = err

		if !IsTransient(err) {
			return zero, err
		}

		if attempt < cfg.MaxAttempts-1 {
			select {
			case <-ctx.Done():
				return zero, ctx.Err()
			case <-time.After(cfg.Delay(attempt)):
			}
		}
	}
	return zero, lastErr
}
