package transport_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/target-inventory/internal/transport"
)

func TestRateLimiter_Wait(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		rate    float64
		burst   int
		daily   int64
		calls   int
		wantErr bool
	}{
		{
			name:  "allows calls within rate",
			rate:  100,
			burst: 10,
			daily: 5000,
			calls: 3,
		},
		{
			name:  "allows burst",
			rate:  100,
			burst: 5,
			daily: 5000,
			calls: 5,
		},
		{
			name:  "zero daily limit is unlimited",
			rate:  100,
			burst: 10,
			daily: 0,
			calls: 4,
		},
		{
			name:    "rejects when daily limit reached",
			rate:    100,
			burst:   10,
			daily:   2,
			calls:   3,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rl := transport.NewRateLimiter(tt.rate, tt.burst, tt.daily)

			var lastErr error
			for range tt.calls {
				lastErr = rl.Wait(context.Background())
				if lastErr != nil {
					break
				}
			}

			if tt.wantErr {
				require.Error(t, lastErr)
				assert.ErrorIs(t, lastErr, transport.ErrDailyLimitReached)
			} else {
				require.NoError(t, lastErr)
			}
		})
	}
}

func TestRateLimiter_Remaining(t *testing.T) {
	t.Parallel()

	rl := transport.NewRateLimiter(100, 10, 3)
	assert.Equal(t, int64(3), rl.Remaining())
	assert.Equal(t, int64(3), rl.MaxDaily())

	require.NoError(t, rl.Wait(context.Background()))
	assert.Equal(t, int64(2), rl.Remaining())
	assert.Equal(t, int64(1), rl.DailyCount())

	unlimited := transport.NewRateLimiter(100, 10, 0)
	assert.Equal(t, int64(-1), unlimited.Remaining())
}

func TestRateLimiter_DailyReset(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 1, 15, 23, 59, 0, 0, time.UTC)
	var mu sync.Mutex
	currentTime := now

	rl := transport.NewRateLimiter(
		100, 10, 5000,
		transport.WithRateLimiterNowFunc(func() time.Time {
			mu.Lock()
			defer mu.Unlock()
			return currentTime
		}),
	)

	require.NoError(t, rl.Wait(context.Background()))
	require.NoError(t, rl.Wait(context.Background()))
	assert.Equal(t, int64(2), rl.DailyCount())
	assert.Equal(t, now.Add(24*time.Hour), rl.ResetAt())

	// Advance past the window.
	mu.Lock()
	currentTime = now.Add(25 * time.Hour)
	mu.Unlock()

	require.NoError(t, rl.Wait(context.Background()))
	assert.Equal(t, int64(1), rl.DailyCount())
}

func TestRateLimiter_ContextCanceled(t *testing.T) {
	t.Parallel()

	// 1 per 10 seconds, burst 1.
	rl := transport.NewRateLimiter(0.1, 1, 5000)

	require.NoError(t, rl.Wait(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := rl.Wait(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate limiter wait")
}
