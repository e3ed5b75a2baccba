package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/hoorayhoa/hoa-api/internal/config"
)

const redisKeyPrefix = "hoa:ratelimit:"

// redisCounter is the subset of *redis.Client the limiter uses.
type redisCounter interface {
	Incr(ctx context.Context, key string) *redis.IntCmd
	Expire(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd
	TTL(ctx context.Context, key string) *redis.DurationCmd
	Close() error
}

// RedisRateLimiter shares fixed-window counters between instances through
// Redis INCR and EXPIRE. Redis failures are logged and the request allowed.
// The window expiry is applied whenever a request finds the key without one,
// so a lost EXPIRE cannot pin the counter.
type RedisRateLimiter struct {
	client  redisCounter
	limit   int
	window  time.Duration
	timeout time.Duration
	logger  *slog.Logger
}

// NewRedisRateLimiter connects to the Redis instance named in cfg and
// verifies it with a PING.
func NewRedisRateLimiter(ctx context.Context, cfg config.RateLimitConfig, logger *slog.Logger) (*RedisRateLimiter, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	return newRedisRateLimiter(client, cfg.AuthRequests, cfg.Window, logger), nil
}

func newRedisRateLimiter(client redisCounter, limit int, window time.Duration, logger *slog.Logger) *RedisRateLimiter {
	if window <= 0 {
		window = time.Minute
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &RedisRateLimiter{
		client:  client,
		limit:   limit,
		window:  window,
		timeout: 250 * time.Millisecond,
		logger:  logger.With(slog.String("component", "redis_rate_limiter")),
	}
}

// Allow implements RateLimiter.
func (rl *RedisRateLimiter) Allow(ctx context.Context, key string) Decision {
	if rl.limit <= 0 {
		return Decision{Allowed: true}
	}

	ctx, cancel := context.WithTimeout(ctx, rl.timeout)
	defer cancel()

	redisKey := redisKeyPrefix + key
	counter, err := rl.client.Incr(ctx, redisKey).Result()
	if err != nil {
		rl.logger.Error("redis rate limiter error", "op", "incr", "error", err)
		return Decision{Allowed: true}
	}

	// TTL is negative for a key fresh from INCR and for one whose EXPIRE
	// was lost.
	ttl, err := rl.client.TTL(ctx, redisKey).Result()
	switch {
	case err != nil:
		rl.logger.Error("redis rate limiter error", "op", "ttl", "error", err)
		ttl = rl.window
	case ttl < 0:
		if err := rl.client.Expire(ctx, redisKey, rl.window).Err(); err != nil {
			rl.logger.Error("redis rate limiter error", "op", "expire", "error", err)
		}
		ttl = rl.window
	}

	return Decision{
		Allowed: int(counter) <= rl.limit,
		Limit:   rl.limit,
		Count:   int(counter),
		ResetAt: time.Now().Add(ttl),
	}
}

// Close releases the Redis connection pool.
func (rl *RedisRateLimiter) Close() error {
	return rl.client.Close()
}

var _ RateLimiter = (*RedisRateLimiter)(nil)
