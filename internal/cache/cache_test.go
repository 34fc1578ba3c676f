package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stats struct {
	Total int    `json:"total"`
	Name  string `json:"name"`
}

func newTestCache(t *testing.T) (*RedisCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	c, err := NewRedisCache(context.Background(), Options{Addr: mr.Addr()})
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c, mr
}

func TestRedisCache_RoundTrip(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	var miss stats
	found, err := c.GetJSON(ctx, "k", &miss)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, c.SetJSON(ctx, "k", stats{Total: 3, Name: "x"}, time.Minute))
	assert.True(t, mr.Exists("k"))

	var got stats
	found, err = c.GetJSON(ctx, "k", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, stats{Total: 3, Name: "x"}, got)

	mr.FastForward(2 * time.Minute)
	found, err = c.GetJSON(ctx, "k", &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestRedisCache_Delete(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.SetJSON(ctx, "a", 1, 0))
	require.NoError(t, c.SetJSON(ctx, "b", 2, 0))
	require.NoError(t, c.Delete(ctx, "a", "b", "missing"))
	assert.False(t, mr.Exists("a"))
	assert.False(t, mr.Exists("b"))
	assert.NoError(t, c.Delete(ctx))
}

func TestRedisCache_CorruptValue(t *testing.T) {
	c, mr := newTestCache(t)
	require.NoError(t, mr.Set("bad", "{not json"))

	var got stats
	found, err := c.GetJSON(context.Background(), "bad", &got)
	assert.Error(t, err)
	assert.False(t, found)
}

func TestRedisCache_Unavailable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	client := redis.NewClient(&redis.Options{Addr: addr})
	c := NewRedisCacheFromClient(client)
	mr.Close()

	_, err := c.GetJSON(context.Background(), "k", &stats{})
	assert.Error(t, err)
	assert.Error(t, c.Ping(context.Background()))

	_, err = NewRedisCache(context.Background(), Options{Addr: addr})
	assert.Error(t, err)
}

func TestNoop(t *testing.T) {
	var c Cache = Noop{}
	ctx := context.Background()
	require.NoError(t, c.SetJSON(ctx, "k", 1, time.Minute))
	found, err := c.GetJSON(ctx, "k", new(int))
	assert.NoError(t, err)
	assert.False(t, found)
	assert.NoError(t, c.Delete(ctx, "k"))
	assert.NoError(t, c.Ping(ctx))
}

func TestKeys(t *testing.T) {
	assert.Equal(t, "dashboard:stats:u1", DashboardStatsKey("u1"))
	assert.Equal(t, "orgs:user:u1", UserOrganizationsKey("u1"))
}
