package retry_test

import (
	"errors"
	"testing"
	"time"

	"github.com/niksmo/storefront/pkg/retry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoWithResult(t *testing.T) {
	cfg := func() retry.RetryConfig {
		return retry.RetryConfig{
			MaxAttempts: 3,
			Backoff:     retry.LineareBackoff(time.Millisecond),
		}
	}

	t.Run("FirstAttemptSucceeds", func(t *testing.T) {
		calls := 0
		got, err := retry.DoWithResult(t.Context(), cfg(), func() (int, error) {
			calls++
			return 42, nil
		})
		require.NoError(t, err)
		assert.Equal(t, 42, got)
		assert.Equal(t, 1, calls)
	})

	t.Run("RetriesUntilSuccess", func(t *testing.T) {
		calls := 0
		got, err := retry.DoWithResult(t.Context(), cfg(), func() (int, error) {
			calls++
			if calls < 3 {
				return 0, errors.New("transient")
			}
			return 42, nil
		})
		require.NoError(t, err)
		assert.Equal(t, 42, got)
		assert.Equal(t, 3, calls)
	})

	t.Run("ExhaustedAttemptsReturnLastError", func(t *testing.T) {
		failure := errors.New("still down")
		calls := 0
		_, err := retry.DoWithResult(t.Context(), cfg(), func() (int, error) {
			calls++
			return 0, failure
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, failure)
		assert.Equal(t, 3, calls)
	})

	t.Run("RejectedRetryPropagatesError", func(t *testing.T) {
		permanent := errors.New("permanent")
		c := cfg()
		c.ShouldRetry = func(err error) bool {
			return !errors.Is(err, permanent)
		}

		calls := 0
		_, err := retry.DoWithResult(t.Context(), c, func() (int, error) {
			calls++
			return 0, permanent
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, permanent)
		assert.Equal(t, 1, calls)
	})
}
