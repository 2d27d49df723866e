package cache

import (
	"context"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	redis "github.com/redis/go-redis/v9"
)

func newTestRedis(t *testing.T, opts ...RedisOption) (*RedisCache, *miniredis.Miniredis) {
	t.Helper()

	srv, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	t.Cleanup(srv.Close)

	c, err := NewRedisCache(redis.NewClient(&redis.Options{Addr: srv.Addr()}), opts...)
	if err != nil {
		t.Fatalf("NewRedisCache: %v", err)
	}
	t.Cleanup(func() { _ = c.Close() })
	return c, srv
}

func TestRedisCacheSetGet(t *testing.T) {
	c, srv := newTestRedis(t)
	ctx := context.Background()

	if _, hit, err := c.Get(ctx, "doc:1"); hit || err != nil {
		t.Fatalf("Get on empty server = %v, %v", hit, err)
	}

	if err := c.Set(ctx, "doc:1", []byte("<A/>"), 5*time.Second); err != nil {
		t.Fatalf("Set: %v", err)
	}
	data, hit, err := c.Get(ctx, "doc:1")
	if err != nil || !hit || string(data) != "<A/>" {
		t.Fatalf("Get = %q, %v, %v", data, hit, err)
	}
	if ttl := srv.TTL("doc:1"); ttl <= 0 || ttl > 5*time.Second {
		t.Errorf("TTL = %v", ttl)
	}

	srv.FastForward(6 * time.Second)
	if _, hit, _ := c.Get(ctx, "doc:1"); hit {
		t.Error("entry survived its TTL")
	}
}

func TestRedisCacheDelete(t *testing.T) {
	c, _ := newTestRedis(t)
	ctx := context.Background()

	if err := c.Set(ctx, "k", []byte("v"), 0); err != nil {
		t.Fatal(err)
	}
	if err := c.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, hit, _ := c.Get(ctx, "k"); hit {
		t.Error("entry survived Delete")
	}
}

func TestRedisCachePrefix(t *testing.T) {
	c, srv := newTestRedis(t, WithKeyPrefix("lottiedoc:"))
	if err := c.Set(context.Background(), "k", []byte("v"), 0); err != nil {
		t.Fatal(err)
	}
	if !srv.Exists("lottiedoc:k") {
		t.Errorf("keys = %v, want lottiedoc:k", srv.Keys())
	}
}

func TestRedisCacheUnavailable(t *testing.T) {
	defer func(p retryPolicy) { retry = p }(retry)
	retry.delay = time.Millisecond

	c, srv := newTestRedis(t)
	srv.Close()

	if _, _, err := c.Get(context.Background(), "k"); err == nil {
		t.Error("Get against a stopped server succeeded")
	}
}

func TestNewRedisCacheNilClient(t *testing.T) {
	if _, err := NewRedisCache(nil); err == nil {
		t.Error("expected error for nil client")
	}
}
