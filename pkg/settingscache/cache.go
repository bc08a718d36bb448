package settingscache

import (
	"context"
	"sync"
	"time"
)

// Snapshot holds the store settings the checkout path reads on every computation.
type Snapshot struct {
	VATRateBps        int64  `json:"vat_rate_bps"`
	LowStockThreshold int    `json:"low_stock_threshold"`
	Currency          string `json:"currency"`
}

// Cache caches the settings snapshot between reads. Invalidate must be called
// whenever settings are updated so the next read goes back to the store.
type Cache interface {
	Get(ctx context.Context) (*Snapshot, bool, error)
	Set(ctx context.Context, snap *Snapshot, ttl time.Duration) error
	Invalidate(ctx context.Context) error
}

// NoopCache never caches anything
type NoopCache struct{}

func (NoopCache) Get(_ context.Context) (*Snapshot, bool, error) {
	return nil, false, nil
}

func (NoopCache) Set(_ context.Context, _ *Snapshot, _ time.Duration) error {
	return nil
}

func (NoopCache) Invalidate(_ context.Context) error {
	return nil
}

// MemoryCache is a single-entry in-process cache
type MemoryCache struct {
	mu        sync.RWMutex
	snap      *Snapshot
	expiresAt time.Time
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{}
}

func (c *MemoryCache) Get(_ context.Context) (*Snapshot, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.snap == nil || time.Now().After(c.expiresAt) {
		return nil, false, nil
	}
	snap := *c.snap
	return &snap, true, nil
}

func (c *MemoryCache) Set(_ context.Context, snap *Snapshot, ttl time.Duration) error {
	if snap == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	copied := *snap
	c.snap = &copied
	c.expiresAt = time.Now().Add(ttl)
	return nil
}

func (c *MemoryCache) Invalidate(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.snap = nil
	return nil
}
