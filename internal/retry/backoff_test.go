package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastConfig(maxRetries int) Config {
	return Config{
		MaxRetries: maxRetries,
		BaseDelay:  time.Millisecond,
		MaxDelay:   5 * time.Millisecond,
		Multiplier: 2.0,
	}
}

func TestDo_SucceedsFirstAttempt(t *testing.T) {
	calls := 0
	res := Do(context.Background(), fastConfig(3), zerolog.Nop(), func() error {
		calls++
		return nil
	})
	assert.True(t, res.Success)
	assert.Equal(t, 1, res.Attempts)
	assert.Equal(t, 1, calls)
}

func TestDo_RetriesTransientError(t *testing.T) {
	calls := 0
	res := Do(context.Background(), fastConfig(3), zerolog.Nop(), func() error {
		calls++
		if calls < 3 {
			return errors.New("503 service unavailable")
		}
		return nil
	})
	assert.True(t, res.Success)
	assert.Equal(t, 3, calls)
}

func TestDo_StopsOnNonRetryableError(t *testing.T) {
	calls := 0
	permanent := errors.New("invalid api key")
	res := Do(context.Background(), fastConfig(3), zerolog.Nop(), func() error {
		calls++
		return permanent
	})
	assert.False(t, res.Success)
	assert.Equal(t, 1, calls)
	assert.Equal(t, permanent, res.LastError)
}

func TestDo_RespectsMaxRetries(t *testing.T) {
	calls := 0
	res := Do(context.Background(), fastConfig(1), zerolog.Nop(), func() error {
		calls++
		return errors.New("timeout")
	})
	assert.False(t, res.Success)
	assert.Equal(t, 2, calls) // first attempt + one retry
	assert.Equal(t, 2, res.Attempts)
}

func TestDo_ContextCancellationDuringBackoff(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cfg := Config{MaxRetries: 5, BaseDelay: time.Minute, MaxDelay: time.Minute, Multiplier: 2.0}

	done := make(chan Result, 1)
	go func() {
		done <- Do(ctx, cfg, zerolog.Nop(), func() error {
			return errors.New("connection refused")
		})
	}()
	cancel()

	select {
	case res := <-done:
		assert.False(t, res.Success)
		require.ErrorIs(t, res.LastError, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("Do did not return after context cancellation")
	}
}

func TestIsRetryable(t *testing.T) {
	assert.False(t, IsRetryable(nil))
	assert.True(t, IsRetryable(errors.New("Rate Limit exceeded")))
	assert.True(t, IsRetryable(errors.New("context deadline exceeded")))
	assert.True(t, IsRetryable(errors.New("HTTP 429")))
	assert.False(t, IsRetryable(errors.New("model not found")))
	assert.False(t, IsRetryable(errors.New("invalid credentials")))
}
