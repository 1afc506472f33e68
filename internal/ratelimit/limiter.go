package ratelimit

import "context"

// RateLimiter bounds booking submissions per client.
type RateLimiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}
