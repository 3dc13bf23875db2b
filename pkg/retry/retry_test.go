package retry_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/motorline/partstore/pkg/retry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errTransient = errors.New("transient")

func instant() retry.Backoff {
	return retry.LinearBackoff(time.Microsecond)
}

func TestDoWithResult(t *testing.T) {
	t.Run("FirstAttemptSucceeds", func(t *testing.T) {
		calls := 0
		cfg := retry.Config{MaxAttempts: 3, Backoff: instant()}

		got, err := retry.DoWithResult(t.Context(), cfg, func() (int, error) {
			calls++
			return 42, nil
		})
		require.NoError(t, err)
		assert.Equal(t, 42, got)
		assert.Equal(t, 1, calls)
	})

	t.Run("RecoversWithinBudget", func(t *testing.T) {
		calls := 0
		cfg := retry.Config{MaxAttempts: 3, Backoff: instant()}

		got, err := retry.DoWithResult(t.Context(), cfg, func() (string, error) {
			calls++
			if calls < 3 {
				return "", errTransient
			}
			return "ok", nil
		})
		require.NoError(t, err)
		assert.Equal(t, "ok", got)
		assert.Equal(t, 3, calls)
	})

	t.Run("ExhaustedBudgetReturnsLastErr", func(t *testing.T) {
		calls := 0
		cfg := retry.Config{MaxAttempts: 2, Backoff: instant()}

		_, err := retry.DoWithResult(t.Context(), cfg, func() (int, error) {
			calls++
			return 0, errTransient
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, errTransient)
		assert.Equal(t, 2, calls)
	})

	t.Run("NonRetryableStopsEarly", func(t *testing.T) {
		calls := 0
		cfg := retry.Config{
			MaxAttempts: 5,
			Backoff:     instant(),
			ShouldRetry: func(error) bool { return false },
		}

		_, err := retry.DoWithResult(t.Context(), cfg, func() (int, error) {
			calls++
			return 0, errTransient
		})
		require.Error(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("CanceledContext", func(t *testing.T) {
		ctx, cancel := context.WithCancel(t.Context())
		cancel()

		_, err := retry.DoWithResult(ctx, retry.Config{}, func() (int, error) {
			t.Fatal("fn must not run")
			return 0, nil
		})
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestDo(t *testing.T) {
	t.Run("WrapsDoWithResult", func(t *testing.T) {
		calls := 0
		cfg := retry.Config{MaxAttempts: 2, Backoff: instant()}

		err := retry.Do(t.Context(), cfg, func() error {
			calls++
			if calls == 1 {
				return errTransient
			}
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, 2, calls)
	})
}
