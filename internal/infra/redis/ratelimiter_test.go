package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
)

func newTestRedisClient(t *testing.T) *goredis.Client {
	t.Helper()

	srv := miniredis.RunT(t)
	return goredis.NewClient(&goredis.Options{Addr: srv.Addr()})
}

func TestRedisRateLimiterAllow(t *testing.T) {
	t.Parallel()

	rdb := newTestRedisClient(t)

	now := time.Unix(1_700_000_000, 0)
	limiter, err := newRedisRateLimiter(rdb, 2, func() time.Time { return now })
	if err != nil {
		t.Fatalf("newRedisRateLimiter() error = %v", err)
	}

	for i := 0; i < 2; i++ {
		allowed, err := limiter.Allow(context.Background(), "203.0.113.7")
		if err != nil {
			t.Fatalf("Allow() error = %v", err)
		}
		if !allowed {
			t.Fatalf("call %d should be allowed", i+1)
		}
	}

	allowed, err := limiter.Allow(context.Background(), "203.0.113.7")
	if err != nil {
		t.Fatalf("Allow() error = %v", err)
	}
	if allowed {
		t.Fatal("third call in the window should be rejected")
	}

	now = now.Add(time.Minute)
	allowed, err = limiter.Allow(context.Background(), "203.0.113.7")
	if err != nil {
		t.Fatalf("Allow() error = %v", err)
	}
	if !allowed {
		t.Fatal("new minute window should allow the call")
	}
}

func TestRedisRateLimiterAllowPerClient(t *testing.T) {
	t.Parallel()

	rdb := newTestRedisClient(t)

	now := time.Unix(1_700_000_100, 0)
	limiter, err := newRedisRateLimiter(rdb, 1, func() time.Time { return now })
	if err != nil {
		t.Fatalf("newRedisRateLimiter() error = %v", err)
	}

	allowed, err := limiter.Allow(context.Background(), "203.0.113.7")
	if err != nil {
		t.Fatalf("Allow(first client) error = %v", err)
	}
	if !allowed {
		t.Fatal("first client should be allowed")
	}

	allowed, err = limiter.Allow(context.Background(), "198.51.100.4")
	if err != nil {
		t.Fatalf("Allow(second client) error = %v", err)
	}
	if !allowed {
		t.Fatal("limits are per client, second client should be allowed")
	}

	allowed, err = limiter.Allow(context.Background(), "203.0.113.7")
	if err != nil {
		t.Fatalf("Allow(first client again) error = %v", err)
	}
	if allowed {
		t.Fatal("first client should now be rejected")
	}
}

func TestRedisRateLimiterValidation(t *testing.T) {
	t.Parallel()

	if _, err := NewRedisRateLimiter(nil, 10); err == nil {
		t.Fatal("expected error for nil client")
	}

	rdb := newTestRedisClient(t)
	limiter, err := NewRedisRateLimiter(rdb, 10)
	if err != nil {
		t.Fatalf("NewRedisRateLimiter() error = %v", err)
	}

	if _, err := limiter.Allow(context.Background(), "  "); err == nil {
		t.Fatal("expected error for empty key")
	}
}
