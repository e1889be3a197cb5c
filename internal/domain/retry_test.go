package domain

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRetry(t *testing.T) {
	t.Run("succeeds_on_first_attempt", func(t *testing.T) {
		calls := 0
		done, err := Retry(context.Background(), 5, time.Millisecond, func(context.Context) (bool, error) {
			calls++
			return true, nil
		})

		require.NoError(t, err)
		assert.True(t, done)
		assert.Equal(t, 1, calls)
	})

	t.Run("succeeds_on_later_attempt", func(t *testing.T) {
		calls := 0
		done, err := Retry(context.Background(), 5, time.Millisecond, func(context.Context) (bool, error) {
			calls++
			return calls == 3, nil
		})

		require.NoError(t, err)
		assert.True(t, done)
		assert.Equal(t, 3, calls)
	})

	t.Run("reports_exhaustion", func(t *testing.T) {
		calls := 0
		done, err := Retry(context.Background(), 5, time.Millisecond, func(context.Context) (bool, error) {
			calls++
			return false, nil
		})

		require.NoError(t, err)
		assert.False(t, done)
		assert.Equal(t, 5, calls)
	})

	t.Run("aborts_on_error", func(t *testing.T) {
		wantErr := errors.New("lookup failed")
		calls := 0
		done, err := Retry(context.Background(), 5, time.Millisecond, func(context.Context) (bool, error) {
			calls++
			return false, wantErr
		})

		require.ErrorIs(t, err, wantErr)
		assert.False(t, done)
		assert.Equal(t, 1, calls)
	})

	t.Run("aborts_on_context_cancellation", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		done, err := Retry(ctx, 5, time.Minute, func(context.Context) (bool, error) {
			return false, nil
		})

		require.ErrorIs(t, err, context.Canceled)
		assert.False(t, done)
	})
}
