// Package retry provides exponential backoff retry for transient failures,
// such as optimistic concurrency conflicts on route commits.
package retry

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/loopline/dispatch/internal/pkg/logger"
)

// RetryableFunc is one attempt of the operation under retry.
type RetryableFunc func(ctx context.Context) error

// Config controls how attempts are spaced and which errors earn another one.
type Config struct {
	MaxRetries    int
	BaseDelay     time.Duration
	MaxDelay      time.Duration
	Multiplier    float64
	Jitter        bool
	RetryableFunc func(error) bool
}

// DefaultConfig retries three times from a 100ms base. Callers narrow
// RetryableFunc to their own transient errors.
func DefaultConfig() Config {
	return Config{
		MaxRetries: 3,
		BaseDelay:  100 * time.Millisecond,
		MaxDelay:   30 * time.Second,
		Multiplier: 2.0,
		Jitter:     true,
		RetryableFunc: func(err error) bool {
			return true
		},
	}
}

// Retrier runs operations under the configured backoff policy.
type Retrier struct {
	config Config
	logger *logger.ZapLogger
}

// New creates a retrier with the given configuration.
func New(config Config, l *logger.ZapLogger) *Retrier {
	return &Retrier{config: config, logger: l}
}

// NewWithDefaults creates a retrier with the default configuration.
func NewWithDefaults(l *logger.ZapLogger) *Retrier {
	return New(DefaultConfig(), l)
}

// Execute runs fn until it succeeds, returns a non-retryable error, the
// attempt budget runs out, or the context is cancelled.
func (r *Retrier) Execute(ctx context.Context, fn RetryableFunc) error {
	var lastErr error

	for attempt := 0; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		lastErr = fn(ctx)
		if lastErr == nil {
			if attempt > 0 {
				r.logger.Info("Operation succeeded after retries",
					logger.Int("total_attempts", attempt+1))
			}
			return nil
		}

		if !r.config.RetryableFunc(lastErr) {
			r.logger.Debug("Error is not retryable, giving up",
				logger.Err(lastErr),
				logger.Int("attempt", attempt+1))
			return lastErr
		}

		if attempt == r.config.MaxRetries {
			break
		}

		delay := r.backoff(attempt)
		r.logger.Debug("Attempt failed, backing off",
			logger.Err(lastErr),
			logger.Int("attempt", attempt+1),
			logger.Duration("delay", delay))

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}

	r.logger.Error("Operation failed after all retries",
		logger.Err(lastErr),
		logger.Int("total_attempts", r.config.MaxRetries+1))

	return fmt.Errorf("retry limit exceeded after %d attempts: %w", r.config.MaxRetries+1, lastErr)
}

func (r *Retrier) backoff(attempt int) time.Duration {
	delay := float64(r.config.BaseDelay) * math.Pow(r.config.Multiplier, float64(attempt))
	if delay > float64(r.config.MaxDelay) {
		delay = float64(r.config.MaxDelay)
	}
	if r.config.Jitter {
		// Up to 10% spread so colliding writers do not stay in lockstep.
		delay += delay * 0.1 * rand.Float64()
	}
	return time.Duration(delay)
}
