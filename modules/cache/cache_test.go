package cache

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

const testRedisAddr = "localhost:6379"

func setupCache(t *testing.T) *Cache {
	t.Helper()

	client := redis.NewClient(&redis.Options{Addr: testRedisAddr})
	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		t.Skipf("Redis not available at %s: %v", testRedisAddr, err)
	}

	prefix := "test:" + t.Name() + ":"
	t.Cleanup(func() {
		client.Del(ctx, prefix+"k")
		client.Close()
	})
	return New(client, prefix, time.Minute)
}

func TestCache_RoundTrip(t *testing.T) {
	c := setupCache(t)
	ctx := context.Background()

	type payload struct {
		Name  string  `json:"name"`
		Price float64 `json:"price"`
	}

	if err := c.Set(ctx, "k", payload{Name: "Xi măng", Price: 95000}); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	var got payload
	hit, err := c.Get(ctx, "k", &got)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if !hit {
		t.Fatal("expected cache hit")
	}
	if got.Name != "Xi măng" || got.Price != 95000 {
		t.Errorf("unexpected payload: %+v", got)
	}

	if err := c.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	hit, err = c.Get(ctx, "k", &got)
	if err != nil {
		t.Fatalf("Get() after delete error = %v", err)
	}
	if hit {
		t.Error("expected miss after delete")
	}
}
