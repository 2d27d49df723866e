package cache

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrUnavailable reports a backend that could not be reached. Operations
// failing with it are retried before the error is returned.
var ErrUnavailable = errors.New("cache backend unavailable")

// unavailable marks cause as a connection-level failure.
func unavailable(cause error) error {
	if cause == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrUnavailable, cause)
}

// retryPolicy retries operations that fail with ErrUnavailable, doubling
// the delay between attempts.
type retryPolicy struct {
	attempts int
	delay    time.Duration
}

var retry = retryPolicy{attempts: 3, delay: 100 * time.Millisecond}

func (p retryPolicy) do(ctx context.Context, op func() error) error {
	delay := p.delay
	var err error
	for attempt := 1; ; attempt++ {
		if err = op(); err == nil || !errors.Is(err, ErrUnavailable) || attempt >= p.attempts {
			return err
		}
		t := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			t.Stop()
			return ctx.Err()
		case <-t.C:
		}
		delay *= 2
	}
}
