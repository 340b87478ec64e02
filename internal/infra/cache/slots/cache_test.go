package slots

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScreenAvailability/internal/domain"
)

func newCache(t *testing.T) (*Cache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	return NewCache(rdb, time.Minute), mr
}

var (
	startDate = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	endDate   = time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC)
)

func TestCache_SetGet(t *testing.T) {
	cache, _ := newCache(t)
	ctx := context.Background()

	version, err := cache.Version(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(0), version)

	_, err = cache.Get(ctx, 1, version, startDate, endDate)
	assert.ErrorIs(t, err, ErrCacheMiss)

	slots := []*domain.Slot{{
		ID:        10,
		ScreenID:  1,
		Movie:     "Mirror",
		StartTime: startDate.Add(18 * time.Hour),
		EndTime:   startDate.Add(20 * time.Hour),
	}}
	require.NoError(t, cache.Set(ctx, 1, version, startDate, endDate, slots))

	got, err := cache.Get(ctx, 1, version, startDate, endDate)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Mirror", got[0].Movie)
	assert.True(t, got[0].StartTime.Equal(slots[0].StartTime))
}

func TestCache_EmptyListIsHit(t *testing.T) {
	cache, _ := newCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, 1, 0, startDate, endDate, nil))

	got, err := cache.Get(ctx, 1, 0, startDate, endDate)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestCache_InvalidateBumpsVersion(t *testing.T) {
	cache, _ := newCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, 1, 0, startDate, endDate, []*domain.Slot{{ID: 1}}))
	require.NoError(t, cache.Invalidate(ctx, 1))

	version, err := cache.Version(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), version)

	_, err = cache.Get(ctx, 1, version, startDate, endDate)
	assert.ErrorIs(t, err, ErrCacheMiss)

	other, err := cache.Version(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(0), other)
}

func TestCache_TTL(t *testing.T) {
	cache, mr := newCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, 1, 0, startDate, endDate, []*domain.Slot{{ID: 1}}))
	mr.FastForward(2 * time.Minute)

	_, err := cache.Get(ctx, 1, 0, startDate, endDate)
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestCache_RedisDown(t *testing.T) {
	cache, mr := newCache(t)
	mr.Close()

	_, err := cache.Version(context.Background(), 1)
	assert.ErrorIs(t, err, ErrRedis)
}

func TestNoop(t *testing.T) {
	var cache Noop
	_, err := cache.Get(context.Background(), 1, 0, startDate, endDate)
	assert.ErrorIs(t, err, ErrCacheMiss)
	assert.NoError(t, cache.Invalidate(context.Background(), 1))
}
