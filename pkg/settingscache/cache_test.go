package settingscache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCacheRoundTrip(t *testing.T) {
	ctx := context.Background()
	cache := NewMemoryCache()

	_, hit, err := cache.Get(ctx)
	require.NoError(t, err)
	assert.False(t, hit)

	snap := &Snapshot{VATRateBps: 1500, LowStockThreshold: 10, Currency: "SAR"}
	require.NoError(t, cache.Set(ctx, snap, time.Minute))

	got, hit, err := cache.Get(ctx)
	require.NoError(t, err)
	require.True(t, hit)
	assert.Equal(t, *snap, *got)

	// The cache hands out copies, not the stored pointer
	got.VATRateBps = 9999
	again, hit, err := cache.Get(ctx)
	require.NoError(t, err)
	require.True(t, hit)
	assert.Equal(t, int64(1500), again.VATRateBps)
}

func TestMemoryCacheTTLExpiry(t *testing.T) {
	ctx := context.Background()
	cache := NewMemoryCache()

	require.NoError(t, cache.Set(ctx, &Snapshot{VATRateBps: 1500}, -time.Second))

	_, hit, err := cache.Get(ctx)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestMemoryCacheInvalidate(t *testing.T) {
	ctx := context.Background()
	cache := NewMemoryCache()

	require.NoError(t, cache.Set(ctx, &Snapshot{VATRateBps: 1500}, time.Minute))
	require.NoError(t, cache.Invalidate(ctx))

	_, hit, err := cache.Get(ctx)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestNoopCacheNeverHits(t *testing.T) {
	ctx := context.Background()
	cache := NoopCache{}

	require.NoError(t, cache.Set(ctx, &Snapshot{VATRateBps: 1500}, time.Minute))

	_, hit, err := cache.Get(ctx)
	require.NoError(t, err)
	assert.False(t, hit)
}
