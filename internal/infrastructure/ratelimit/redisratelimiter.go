package ratelimit

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// keyPrefix namespaces all limiter state; the confirmation endpoints are the
// only rate-limited surface.
const keyPrefix = "ratelimit:confirmations"

// RedisRateLimiter keeps one sorted set of request timestamps per client and
// window. A request is admitted only when every configured window still has
// room at the time of the check.
type RedisRateLimiter struct {
	client *redis.Client
}

func NewRedisRateLimiter(client *redis.Client) RateLimiter {
	return &RedisRateLimiter{client: client}
}

func (l *RedisRateLimiter) Allow(ctx context.Context, key string, config RateLimitConfig) (bool, error) {
	now := time.Now()

	for _, w := range config.windows() {
		if w.limit <= 0 {
			continue
		}

		used, err := l.slideWindow(ctx, windowKey(key, w.span), w.span, now, true)
		if err != nil {
			return false, err
		}
		if used >= int64(w.limit) {
			return false, nil
		}
	}

	return true, nil
}

// UsedInWindow reports how many requests the client has made inside the
// window. Callers derive remaining quota from it for response headers.
func (l *RedisRateLimiter) UsedInWindow(ctx context.Context, key string, window time.Duration) (int64, error) {
	return l.slideWindow(ctx, windowKey(key, window), window, time.Now(), false)
}

func (l *RedisRateLimiter) Reset(ctx context.Context, key string) error {
	pattern := fmt.Sprintf("%s:%s:*", keyPrefix, key)

	iter := l.client.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		if err := l.client.Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("failed to delete key %s: %w", iter.Val(), err)
		}
	}

	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to scan keys: %w", err)
	}

	return nil
}

// slideWindow trims timestamps older than the window, counts what is left,
// and, when record is set, stamps the current request. The count excludes the
// request being recorded, so admission is `used < limit`.
func (l *RedisRateLimiter) slideWindow(ctx context.Context, redisKey string, span time.Duration, now time.Time, record bool) (int64, error) {
	cutoff := strconv.FormatInt(now.Add(-span).UnixNano(), 10)

	pipe := l.client.Pipeline()
	pipe.ZRemRangeByScore(ctx, redisKey, "0", cutoff)
	used := pipe.ZCard(ctx, redisKey)
	if record {
		stamp := now.UnixNano()
		pipe.ZAdd(ctx, redisKey, redis.Z{Score: float64(stamp), Member: stamp})
		// Keep the key a little past the window so a trailing read still
		// sees it, then let redis reclaim it.
		pipe.Expire(ctx, redisKey, span+time.Minute)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return 0, fmt.Errorf("rate limit pipeline failed: %w", err)
	}

	return used.Val(), nil
}

func windowKey(key string, span time.Duration) string {
	return fmt.Sprintf("%s:%s:%s", keyPrefix, key, windowLabel(span))
}

func windowLabel(span time.Duration) string {
	switch span {
	case time.Minute:
		return "1m"
	case time.Hour:
		return "1h"
	case 24 * time.Hour:
		return "24h"
	default:
		return span.String()
	}
}
