package retry

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/piresc/campusride/internal/pkg/logger"
)

// Config holds retry configuration
type Config struct {
	MaxRetries int           // attempts after the first one
	BaseDelay  time.Duration // delay before the first retry
	MaxDelay   time.Duration
	Multiplier float64
	Jitter     bool
	Retryable  func(error) bool // nil retries every error
}

// DefaultConfig returns the configuration used for outbound service calls
func DefaultConfig() Config {
	return Config{
		MaxRetries: 2,
		BaseDelay:  100 * time.Millisecond,
		MaxDelay:   2 * time.Second,
		Multiplier: 2.0,
		Jitter:     true,
	}
}

// Retrier runs a function with exponential backoff between attempts
type Retrier struct {
	name   string
	config Config
}

// New creates a retrier; name only shows up in logs
func New(name string, config Config) *Retrier {
	if config.Multiplier < 1 {
		config.Multiplier = 1
	}
	return &Retrier{name: name, config: config}
}

// Do executes fn until it succeeds, returns a non-retryable error, the
// attempts run out or ctx is done.
func (r *Retrier) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	var lastErr error

	for attempt := 0; attempt <= r.config.MaxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		err := fn(ctx)
		if err == nil {
			if attempt > 0 {
				logger.InfoCtx(ctx, "Call succeeded after retries",
					logger.String("call", r.name),
					logger.Int("attempts", attempt+1))
			}
			return nil
		}
		lastErr = err

		if r.config.Retryable != nil && !r.config.Retryable(err) {
			return err
		}
		if attempt == r.config.MaxRetries {
			break
		}

		delay := r.Delay(attempt)
		logger.Debug("Call failed, retrying",
			logger.String("call", r.name),
			logger.Err(err),
			logger.Int("attempt", attempt+1),
			logger.Duration("delay", delay))

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}

	logger.WarnCtx(ctx, "Call failed after all retries",
		logger.String("call", r.name),
		logger.Err(lastErr),
		logger.Int("attempts", r.config.MaxRetries+1))

	return fmt.Errorf("%s failed after %d attempts: %w", r.name, r.config.MaxRetries+1, lastErr)
}

// Delay returns the backoff before retry number attempt+1
func (r *Retrier) Delay(attempt int) time.Duration {
	delay := float64(r.config.BaseDelay) * math.Pow(r.config.Multiplier, float64(attempt))
	if r.config.MaxDelay > 0 && delay > float64(r.config.MaxDelay) {
		delay = float64(r.config.MaxDelay)
	}
	if r.config.Jitter {
		// up to 10% extra
		delay += delay * 0.1 * rand.Float64()
	}
	return time.Duration(delay)
}
