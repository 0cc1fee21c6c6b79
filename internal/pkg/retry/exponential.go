package retry

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"net"
	"time"

	"github.com/ecofleet/fleet-telemetry/internal/pkg/logger"
)

// RetryableFunc represents a function that can be retried
type RetryableFunc func(ctx context.Context) error

// Config holds retry configuration
type Config struct {
	MaxRetries    int              // retries after the first attempt
	BaseDelay     time.Duration    // delay before the first retry
	MaxDelay      time.Duration    // upper bound of a single delay
	Multiplier    float64          // exponential backoff multiplier
	Jitter        bool             // add up to 10% random delay
	RetryableFunc func(error) bool // nil retries every error
}

// DefaultConfig returns a default retry configuration
func DefaultConfig() Config {
	return Config{
		MaxRetries: 3,
		BaseDelay:  100 * time.Millisecond,
		MaxDelay:   30 * time.Second,
		Multiplier: 2.0,
		Jitter:     true,
	}
}

// Retrier handles retry logic with exponential backoff
type Retrier struct {
	config Config
}

// New creates a new retrier with the given configuration
func New(config Config) *Retrier {
	if config.Multiplier <= 0 {
		config.Multiplier = 1
	}
	return &Retrier{config: config}
}

// Execute runs fn until it succeeds, returns a non-retryable error,
// exhausts MaxRetries or ctx is done
func (r *Retrier) Execute(ctx context.Context, fn RetryableFunc) error {
	var lastErr error

	for attempt := 0; attempt <= r.config.MaxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		err := fn(ctx)
		if err == nil {
			if attempt > 0 {
				logger.Info("Function succeeded after retries", logger.Int("attempt", attempt+1))
			}
			return nil
		}

		lastErr = err

		if r.config.RetryableFunc != nil && !r.config.RetryableFunc(err) {
			logger.Debug("Error is not retryable, stopping",
				logger.Err(err),
				logger.Int("attempt", attempt+1))
			return err
		}

		if attempt == r.config.MaxRetries {
			break
		}

		delay := r.calculateDelay(attempt)

		logger.Debug("Function failed, retrying",
			logger.Err(err),
			logger.Int("attempt", attempt+1),
			logger.Duration("delay", delay),
			logger.Int("max_retries", r.config.MaxRetries))

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}

	logger.Warn("Function failed after all retries",
		logger.Err(lastErr),
		logger.Int("total_attempts", r.config.MaxRetries+1))

	return fmt.Errorf("retry limit exceeded after %d attempts: %w", r.config.MaxRetries+1, lastErr)
}

func (r *Retrier) calculateDelay(attempt int) time.Duration {
	delay := float64(r.config.BaseDelay) * math.Pow(r.config.Multiplier, float64(attempt))

	if r.config.MaxDelay > 0 && delay > float64(r.config.MaxDelay) {
		delay = float64(r.config.MaxDelay)
	}

	if r.config.Jitter {
		delay += delay * 0.1 * rand.Float64()
	}

	return time.Duration(delay)
}

// StatusError is implemented by errors that carry an HTTP status code
type StatusError interface {
	error
	Status() int
}

// NetworkRetryableFunc retries network failures and 5xx/429 responses
func NetworkRetryableFunc() func(error) bool {
	return func(err error) bool {
		if err == nil {
			return false
		}
		if errors.Is(err, context.Canceled) {
			return false
		}

		var statusErr StatusError
		if errors.As(err, &statusErr) {
			code := statusErr.Status()
			return code >= 500 || code == 429
		}

		var netErr net.Error
		if errors.As(err, &netErr) {
			return true
		}
		var opErr *net.OpError
		return errors.As(err, &opErr)
	}
}
