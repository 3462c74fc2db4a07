//go:build unit

package ratelimit

import (
	"context"
	"testing"
	"time"

	"hotel-booking/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
)

func TestGuestLimiter(t *testing.T) {
	t.Run("allows up to the limit inside the window", func(t *testing.T) {
		clk := clock.NewMockClock(time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC))
		l := NewGuestLimiter(3, time.Minute, clk)

		for range 3 {
			assert.True(t, l.Allow("ana@example.com"))
		}
		assert.False(t, l.Allow("ana@example.com"))
		assert.False(t, l.Allow(" ANA@example.com "), "keys are normalized")
		assert.True(t, l.Allow("bob@example.com"), "guests are independent")
	})

	t.Run("window slides", func(t *testing.T) {
		clk := clock.NewMockClock(time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC))
		l := NewGuestLimiter(2, time.Minute, clk)

		assert.True(t, l.Allow("ana@example.com"))
		clk.Add(30 * time.Second)
		assert.True(t, l.Allow("ana@example.com"))
		assert.False(t, l.Allow("ana@example.com"))

		clk.Add(30 * time.Second)
		assert.True(t, l.Allow("ana@example.com"), "first attempt left the window")
		assert.False(t, l.Allow("ana@example.com"))
	})

	t.Run("non-positive limit disables limiting", func(t *testing.T) {
		l := NewGuestLimiter(0, time.Minute, clock.NewRealClock())
		for range 100 {
			assert.True(t, l.Allow("ana@example.com"))
		}
		assert.Equal(t, 0, l.tracked())
	})

	t.Run("sweep forgets idle guests", func(t *testing.T) {
		clk := clock.NewMockClock(time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC))
		l := NewGuestLimiter(5, time.Minute, clk)
		l.Allow("ana@example.com")
		clk.Add(30 * time.Second)
		l.Allow("bob@example.com")

		clk.Add(45 * time.Second)
		l.Sweep()
		assert.Equal(t, 1, l.tracked())
	})

	t.Run("run stops with its context", func(t *testing.T) {
		l := NewGuestLimiter(1, time.Minute, clock.NewRealClock())
		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan struct{})
		go func() {
			l.Run(ctx, time.Millisecond)
			close(done)
		}()
		cancel()
		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("Run did not return after cancel")
		}
	})
}
