package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"

	lcerrors "github.com/matzehuels/linkchart/pkg/errors"
)

// newTestRedis connects to LINKCHART_REDIS_ADDR or skips.
func newTestRedis(t *testing.T) Cache {
	t.Helper()
	addr := os.Getenv("LINKCHART_REDIS_ADDR")
	if addr == "" {
		t.Skip("LINKCHART_REDIS_ADDR not set")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	c, err := NewRedisCache(ctx, addr)
	if err != nil {
		t.Fatalf("NewRedisCache(%s): %v", addr, err)
	}
	t.Cleanup(func() { c.Close() })
	return c
}

func TestRedisCache(t *testing.T) {
	c := newTestRedis(t)
	ctx := context.Background()
	key := "linkchart-test:" + uuid.NewString()

	if _, hit, err := c.Get(ctx, key); err != nil || hit {
		t.Fatalf("Get on fresh key = hit %v, err %v", hit, err)
	}
	if err := c.Set(ctx, key, []byte("payload"), time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}
	data, hit, err := c.Get(ctx, key)
	if err != nil || !hit || string(data) != "payload" {
		t.Fatalf("Get = %q, %v, %v", data, hit, err)
	}
	if err := c.Delete(ctx, key); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, hit, _ := c.Get(ctx, key); hit {
		t.Error("entry survived Delete")
	}
}

func TestNewRedisCacheUnreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()
	_, err := NewRedisCache(ctx, "127.0.0.1:1")
	if !lcerrors.Is(err, lcerrors.ErrCodeCache) {
		t.Errorf("NewRedisCache to a closed port = %v, want CACHE_ERROR", err)
	}
}
