package cache

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type snapshot struct {
	Competence float64 `json:"competence"`
	Mode       string  `json:"mode"`
}

func newTestCache(t *testing.T) (CacheService, *miniredis.Miniredis) {
	t.Helper()
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedisCache(client, slog.New(slog.NewTextHandler(io.Discard, nil))), server
}

func TestRedisCache_Set(t *testing.T) {
	c, server := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, InsightsKey("s1"), snapshot{Competence: 59, Mode: "balanced"}, time.Minute))
	assert.True(t, server.Exists("tutor:insights:s1"))
	assert.Equal(t, time.Minute, server.TTL("tutor:insights:s1"))

	raw, err := server.Get("tutor:insights:s1")
	require.NoError(t, err)
	var got snapshot
	require.NoError(t, json.Unmarshal([]byte(raw), &got))
	assert.Equal(t, snapshot{Competence: 59, Mode: "balanced"}, got)
}

func TestRedisCache_Expiry(t *testing.T) {
	c, server := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k", 1, time.Second))
	server.FastForward(2 * time.Second)

	assert.False(t, server.Exists("k"))
}

func TestRedisCache_Delete(t *testing.T) {
	c, server := newTestCache(t)
	ctx := context.Background()

	for _, key := range []string{InsightsKey("a"), InsightsKey("b"), "other"} {
		require.NoError(t, c.Set(ctx, key, "v", 0))
	}

	require.NoError(t, c.Delete(ctx, InsightsKey("a")))
	assert.False(t, server.Exists(InsightsKey("a")))
	assert.True(t, server.Exists(InsightsKey("b")))
	assert.True(t, server.Exists("other"))

	// Deleting a missing key is not an error.
	assert.NoError(t, c.Delete(ctx, InsightsKey("a")))
}

func TestRedisCache_Unavailable(t *testing.T) {
	c, server := newTestCache(t)
	server.Close()

	err := c.Set(context.Background(), "k", 1, 0)
	assert.Error(t, err)
}

func TestNoopCache(t *testing.T) {
	var c CacheService = NoopCache{}
	ctx := context.Background()

	assert.NoError(t, c.Set(ctx, "k", 1, time.Minute))
	assert.NoError(t, c.Delete(ctx, "k"))
}
