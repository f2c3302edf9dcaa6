package retry

import (
	"context"
	"math"
	"math/rand"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Config controls retry behavior with exponential backoff.
type Config struct {
	MaxRetries int           // maximum retry attempts after the first try
	BaseDelay  time.Duration // delay before the first retry
	MaxDelay   time.Duration // cap on the backoff delay
	Multiplier float64       // exponential backoff multiplier
	Jitter     bool          // add random jitter to the delay
}

// Result describes how a retried operation ended.
type Result struct {
	Attempts      int
	TotalDuration time.Duration
	LastError     error
	Success       bool
}

// EnrichmentConfig returns the retry policy for the enrichment call:
// at most one retry, and only for transient failures.
func EnrichmentConfig() Config {
	return Config{
		MaxRetries: 1,
		BaseDelay:  2 * time.Second,
		MaxDelay:   10 * time.Second,
		Multiplier: 2.0,
		Jitter:     true,
	}
}

// Do executes op with exponential backoff. A non-retryable error stops the
// loop immediately; context cancellation is honored between attempts.
func Do(ctx context.Context, cfg Config, log zerolog.Logger, op func() error) Result {
	start := time.Now()
	result := Result{}

	for attempt := 0; attempt <= cfg.MaxRetries; attempt++ {
		result.Attempts = attempt + 1

		err := op()
		if err == nil {
			result.Success = true
			result.TotalDuration = time.Since(start)
			if attempt > 0 {
				log.Debug().Int("attempts", result.Attempts).Dur("duration", result.TotalDuration).
					Msg("operation succeeded after retry")
			}
			return result
		}
		result.LastError = err

		if attempt >= cfg.MaxRetries {
			break
		}
		if !IsRetryable(err) {
			log.Debug().Err(err).Msg("error is not retryable, giving up")
			break
		}
		if ctx.Err() != nil {
			result.LastError = ctx.Err()
			break
		}

		delay := backoffDelay(cfg, attempt)
		log.Warn().Err(err).Int("attempt", attempt+1).Dur("delay", delay).
			Msg("operation failed, retrying after backoff")

		select {
		case <-ctx.Done():
			result.LastError = ctx.Err()
			result.TotalDuration = time.Since(start)
			return result
		case <-time.After(delay):
		}
	}

	result.TotalDuration = time.Since(start)
	return result
}

// backoffDelay computes baseDelay * multiplier^attempt, capped at MaxDelay,
// with up to 10% jitter when enabled.
func backoffDelay(cfg Config, attempt int) time.Duration {
	delay := float64(cfg.BaseDelay) * math.Pow(cfg.Multiplier, float64(attempt))
	if delay > float64(cfg.MaxDelay) {
		delay = float64(cfg.MaxDelay)
	}
	if cfg.Jitter {
		jitterRange := delay * 0.1
		delay += (rand.Float64() - 0.5) * 2 * jitterRange
		if delay < 0 {
			delay = float64(cfg.BaseDelay)
		}
	}
	return time.Duration(delay)
}

// retryableFragments are error message fragments that indicate a transient
// failure worth one more attempt.
var retryableFragments = []string{
	"connection refused",
	"connection reset",
	"timeout",
	"temporary failure",
	"service unavailable",
	"too many requests",
	"rate limit",
	"429",
	"502",
	"503",
	"504",
	"no such host",
	"network unreachable",
	"broken pipe",
	"context deadline exceeded",
}

// IsRetryable reports whether an error looks transient.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	for _, fragment := range retryableFragments {
		if strings.Contains(msg, fragment) {
			return true
		}
	}
	return false
}
