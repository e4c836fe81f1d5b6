package ratelimit

import (
	"context"
	"time"
)

type RateLimitConfig struct {
	RequestsPerMinute int
	RequestsPerHour   int
	RequestsPerDay    int
}

type limitWindow struct {
	span  time.Duration
	limit int
}

// windows expands the config into the sliding windows a client is checked
// against, shortest first so the cheapest window denies early.
func (c RateLimitConfig) windows() []limitWindow {
	return []limitWindow{
		{span: time.Minute, limit: c.RequestsPerMinute},
		{span: time.Hour, limit: c.RequestsPerHour},
		{span: 24 * time.Hour, limit: c.RequestsPerDay},
	}
}

// RateLimiter throttles confirmation-endpoint traffic per client. The token
// itself is unguessable; the limiter exists to blunt enumeration attempts.
// Keys are bare client identifiers (an IP); namespacing is the limiter's job.
type RateLimiter interface {
	Allow(ctx context.Context, key string, config RateLimitConfig) (bool, error)
	UsedInWindow(ctx context.Context, key string, window time.Duration) (int64, error)
	Reset(ctx context.Context, key string) error
}
