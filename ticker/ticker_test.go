package ticker

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStart_FiresImmediately(t *testing.T) {
	var calls atomic.Int32

	tk := Start(context.Background(), time.Hour, func(time.Time) {
		calls.Add(1)
	})
	defer tk.Stop()

	assert.Equal(t, int32(1), calls.Load())
}

func TestStart_FiresPeriodically(t *testing.T) {
	var calls atomic.Int32

	tk := Start(context.Background(), 5*time.Millisecond, func(time.Time) {
		calls.Add(1)
	})
	defer tk.Stop()

	require.Eventually(t, func() bool {
		return calls.Load() >= 3
	}, 2*time.Second, time.Millisecond)
}

func TestStop(t *testing.T) {
	var calls atomic.Int32

	tk := Start(context.Background(), time.Millisecond, func(time.Time) {
		calls.Add(1)
	})

	tk.Stop()
	tk.Stop()

	select {
	case <-tk.Done():
	default:
		t.Fatal("loop still running after Stop")
	}

	after := calls.Load()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, after, calls.Load(), "no calls after Stop returns")
}

func TestStart_ContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	tk := Start(ctx, time.Hour, func(time.Time) {})
	cancel()

	select {
	case <-tk.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("loop did not exit on context cancellation")
	}
	tk.Stop()
}
