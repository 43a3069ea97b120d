// Package retry re-runs failed broker calls with capped exponential backoff.
package retry

import (
	"context"
	"errors"
	"time"

	"food-marketplace/internal/logx"
)

type counter interface {
	Inc()
}

// Config describes retry behaviour. MaxAttempts below 1 means a single attempt.
type Config struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
}

// Retrier runs calls against one destination.
type Retrier struct {
	name      string
	logger    logx.Logger
	retries   counter
	cfg       Config
	retryable func(error) bool
	sleep     func(context.Context, time.Duration) bool
}

// New returns a Retrier for the named destination. retries may be nil.
func New(name string, logger logx.Logger, retries counter, cfg Config) *Retrier {
	if logger == nil {
		logger = logx.Nop()
	}
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	return &Retrier{
		name:      name,
		logger:    logger,
		retries:   retries,
		cfg:       cfg,
		retryable: IsRetryable,
		sleep:     sleepWithContext,
	}
}

// Do calls fn until it succeeds, fails with a non-retryable error, runs out of
// attempts or ctx ends. The last error is returned.
func (r *Retrier) Do(ctx context.Context, fn func(context.Context) error) error {
	var lastErr error
	for attempt := 1; attempt <= r.cfg.MaxAttempts; attempt++ {
		err := fn(ctx)
		if err == nil {
			return nil
		}
		lastErr = err

		if ctx.Err() != nil || attempt == r.cfg.MaxAttempts || !r.retryable(err) {
			break
		}

		delay := backoff(r.cfg.BaseDelay, r.cfg.MaxDelay, attempt)
		if r.retries != nil {
			r.retries.Inc()
		}
		r.logger.Warn("publish retry",
			logx.String("destination", r.name),
			logx.Int("attempt", attempt),
			logx.Duration("delay", delay),
			logx.Err(err),
		)
		if !r.sleep(ctx, delay) {
			break
		}
	}
	return lastErr
}

// IsRetryable reports whether err may succeed on another attempt.
// Cancellation and deadlines are final.
func IsRetryable(err error) bool {
	return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}

func backoff(base, max time.Duration, attempt int) time.Duration {
	d := base << (attempt - 1)
	if d > max || d < 0 {
		return max
	}
	return d
}

func sleepWithContext(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
