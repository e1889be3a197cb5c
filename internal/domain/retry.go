package domain

import (
	"context"
	"time"
)

// Retry calls fn up to attempts times at a fixed interval until it reports
// done. It returns false with a nil error when attempts are exhausted; the
// caller decides whether exhaustion matters. A non-nil error from fn aborts
// the loop immediately.
func Retry(
	ctx context.Context,
	attempts int,
	interval time.Duration,
	fn func(ctx context.Context) (done bool, err error),
) (bool, error) {
	for i := 0; i < attempts; i++ {
		done, err := fn(ctx)
		if err != nil {
			return false, err
		}
		if done {
			return true, nil
		}

		if i == attempts-1 {
			break
		}
		select {
		case <-ctx.Done():
			return false, ctx.Err()
		case <-time.After(interval):
		}
	}

	return false, nil
}
