package redis

import (
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	return rdb, mr
}

func TestIdempotencyStore(t *testing.T) {
	rdb, mr := newTestClient(t)
	s := NewIdempotencyStore(rdb, time.Hour)
	ctx := t.Context()
	key := KeyIdemPurchase("1", "abc")

	ok, err := s.AcquireLock(ctx, key, time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = s.AcquireLock(ctx, key, time.Minute)
	require.NoError(t, err)
	assert.False(t, ok)

	_, _, found, err := s.GetResult(ctx, key)
	require.NoError(t, err)
	assert.False(t, found, "a lock is not a result")

	require.NoError(t, s.SaveResult(ctx, key, 201, `{"success":true}`))

	status, payload, found, err := s.GetResult(ctx, key)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, 201, status)
	assert.JSONEq(t, `{"success":true}`, payload)
	assert.Equal(t, time.Hour, mr.TTL(key))

	require.NoError(t, s.Release(ctx, key))
	ok, err = s.AcquireLock(ctx, key, time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestIdempotencyLockExpires(t *testing.T) {
	rdb, mr := newTestClient(t)
	s := NewIdempotencyStore(rdb, time.Hour)
	key := KeyIdemPurchase("1", "stale")

	ok, err := s.AcquireLock(t.Context(), key, 30*time.Second)
	require.NoError(t, err)
	require.True(t, ok)

	mr.FastForward(31 * time.Second)

	ok, err = s.AcquireLock(t.Context(), key, 30*time.Second)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestSlidingWindowLimiter(t *testing.T) {
	rdb, _ := newTestClient(t)
	l := NewSlidingWindowLimiter(rdb, "purchase", 2, time.Minute)
	ctx := t.Context()

	for i := 1; i <= 2; i++ {
		allowed, current, retry, err := l.Allow(ctx, "ip:192.0.2.1")
		require.NoError(t, err)
		assert.True(t, allowed)
		assert.EqualValues(t, i, current)
		assert.Zero(t, retry)
	}

	allowed, current, retry, err := l.Allow(ctx, "ip:192.0.2.1")
	require.NoError(t, err)
	assert.False(t, allowed)
	assert.EqualValues(t, 2, current)
	assert.Positive(t, retry)
	assert.LessOrEqual(t, retry, time.Minute)

	allowed, _, _, err = l.Allow(ctx, "ip:192.0.2.2")
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestNilLimiterAllows(t *testing.T) {
	var l *SlidingWindowLimiter

	allowed, _, _, err := l.Allow(t.Context(), "ip:192.0.2.1")
	require.NoError(t, err)
	assert.True(t, allowed)
}
