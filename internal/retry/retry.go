package retry

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/rs/zerolog/log"
)

// Config bounds one retried operation: attempt count, backoff window, and
// a per-attempt timeout.
type Config struct {
	MaxRetries int
	BaseDelay  time.Duration
	MaxDelay   time.Duration
	Timeout    time.Duration
}

// WithRetry runs operation until it succeeds, the attempts run out, or ctx
// is done. Each attempt gets its own timeout context; delays between
// attempts grow exponentially with jitter.
func WithRetry[T any](ctx context.Context, config Config, operation func(context.Context) (T, error)) (T, error) {
	var zero T
	var lastErr error

	for attempt := 0; attempt <= config.MaxRetries; attempt++ {
		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		default:
		}

		opCtx, cancel := context.WithTimeout(ctx, config.Timeout)
		result, err := operation(opCtx)
		cancel()

		if err == nil {
			return result, nil
		}
		lastErr = err

		log.Debug().
			Err(err).
			Int("attempt", attempt+1).
			Msg("Operation failed")

		if attempt == config.MaxRetries {
			break
		}

		delay := backoffDelay(attempt, config.BaseDelay, config.MaxDelay)
		log.Debug().
			Dur("delay", delay).
			Int("next_attempt", attempt+2).
			Msg("Retrying after delay")

		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		case <-time.After(delay):
		}
	}

	return zero, fmt.Errorf("operation failed after %d attempts: %w", config.MaxRetries+1, lastErr)
}

// backoffDelay doubles the base delay per attempt, caps it at maxDelay,
// and jitters the result between 0.5x and 1.5x to avoid lockstep retries.
func backoffDelay(attempt int, baseDelay, maxDelay time.Duration) time.Duration {
	// cap the shift so the multiplier cannot overflow
	shift := min(attempt, 30)
	delay := time.Duration(1<<shift) * baseDelay
	if delay > maxDelay {
		delay = maxDelay
	}

	delay = time.Duration(float64(delay) * (0.5 + rand.Float64()))
	if delay > maxDelay {
		delay = maxDelay
	}
	return delay
}
