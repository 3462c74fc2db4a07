package cache

import (
	"context"
	"sync"
	"time"

	"hotel-booking/internal/pkg/clock"
	"hotel-booking/internal/usecase/queries"
)

type entry struct {
	hotels    []*queries.HotelView
	expiresAt time.Time
}

// MemoryCache is a process-local search cache with a fixed TTL.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]entry
	ttl     time.Duration
	clock   clock.Clock
}

func NewMemoryCache(ttl time.Duration, clk clock.Clock) *MemoryCache {
	return &MemoryCache{
		entries: make(map[string]entry),
		ttl:     ttl,
		clock:   clk,
	}
}

func (c *MemoryCache) Get(_ context.Context, key string) ([]*queries.HotelView, bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok {
		return nil, false
	}

	if !c.clock.Now().Before(e.expiresAt) {
		c.mu.Lock()
		if cur, still := c.entries[key]; still && cur.expiresAt.Equal(e.expiresAt) {
			delete(c.entries, key)
		}
		c.mu.Unlock()
		return nil, false
	}
	return append([]*queries.HotelView(nil), e.hotels...), true
}

func (c *MemoryCache) Set(_ context.Context, key string, hotels []*queries.HotelView) {
	if c.ttl <= 0 {
		return
	}
	c.mu.Lock()
	c.entries[key] = entry{
		hotels:    append([]*queries.HotelView(nil), hotels...),
		expiresAt: c.clock.Now().Add(c.ttl),
	}
	c.mu.Unlock()
}

func (c *MemoryCache) Purge(_ context.Context) {
	c.mu.Lock()
	c.entries = make(map[string]entry)
	c.mu.Unlock()
}

func (c *MemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
