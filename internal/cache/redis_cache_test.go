package cache

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNopCache(t *testing.T) {
	ctx := context.Background()
	c := NewNopCache()

	require.NoError(t, c.Set(ctx, "k", "v", time.Minute))
	var got string
	assert.ErrorIs(t, c.Get(ctx, "k", &got), ErrCacheMiss)
	assert.NoError(t, c.Delete(ctx, "k"))
}

func TestPublicQuizKey(t *testing.T) {
	assert.Equal(t, "quiz:public:abc", PublicQuizKey("abc"))
}

// Runs against a live server when REDIS_URL is set.
func TestRedisCache(t *testing.T) {
	url := os.Getenv("REDIS_URL")
	if url == "" {
		t.Skip("REDIS_URL not set")
	}
	opt, err := redis.ParseURL(url)
	require.NoError(t, err)
	client := redis.NewClient(opt)
	t.Cleanup(func() { client.Close() })

	ctx := context.Background()
	c := NewRedisCache(client, slog.New(slog.NewTextHandler(os.Stderr, nil)))

	type entry struct {
		Title string `json:"title"`
	}
	key := "quiz:test:" + t.Name()
	require.NoError(t, c.Set(ctx, key, entry{Title: "Capitals"}, time.Minute))

	var got entry
	require.NoError(t, c.Get(ctx, key, &got))
	assert.Equal(t, "Capitals", got.Title)

	require.NoError(t, c.Delete(ctx, key))
	assert.ErrorIs(t, c.Get(ctx, key, &got), ErrCacheMiss)
}
