package ratelimit

import (
	"context"
	"strings"
	"sync"
	"time"

	"hotel-booking/internal/pkg/clock"
)

// GuestLimiter is a sliding-window limiter keyed by lower-cased guest email.
// A non-positive limit disables it.
type GuestLimiter struct {
	mu       sync.Mutex
	attempts map[string][]time.Time
	limit    int
	window   time.Duration
	clock    clock.Clock
}

func NewGuestLimiter(limit int, window time.Duration, clk clock.Clock) *GuestLimiter {
	return &GuestLimiter{
		attempts: make(map[string][]time.Time),
		limit:    limit,
		window:   window,
		clock:    clk,
	}
}

func (l *GuestLimiter) Allow(guestEmail string) bool {
	if l.limit <= 0 || l.window <= 0 {
		return true
	}
	key := strings.ToLower(strings.TrimSpace(guestEmail))
	now := l.clock.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	recent := prune(l.attempts[key], now.Add(-l.window))
	if len(recent) >= l.limit {
		l.attempts[key] = recent
		return false
	}
	l.attempts[key] = append(recent, now)
	return true
}

// Sweep drops guests with no attempt inside the window.
func (l *GuestLimiter) Sweep() {
	cutoff := l.clock.Now().Add(-l.window)

	l.mu.Lock()
	defer l.mu.Unlock()

	for key, ts := range l.attempts {
		if recent := prune(ts, cutoff); len(recent) == 0 {
			delete(l.attempts, key)
		} else {
			l.attempts[key] = recent
		}
	}
}

// Run sweeps every interval until ctx is done.
func (l *GuestLimiter) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			l.Sweep()
		}
	}
}

func (l *GuestLimiter) tracked() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.attempts)
}

func prune(ts []time.Time, cutoff time.Time) []time.Time {
	i := 0
	for i < len(ts) && !ts[i].After(cutoff) {
		i++
	}
	return ts[i:]
}
