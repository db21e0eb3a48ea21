package ratelimit

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// incrScript atomically increments a subject's window counter and starts its
// expiry on first increment, so the INCR and PEXPIRE cannot interleave with
// other instances. Returns {count, remaining ttl in ms}.
var incrScript = redis.NewScript(`
local count = redis.call('INCR', KEYS[1])
if count == 1 then
    redis.call('PEXPIRE', KEYS[1], ARGV[1])
end
local ttl = redis.call('PTTL', KEYS[1])
return {count, ttl}
`)

// RedisLimiter is a fixed-window limiter backed by Redis, for deployments
// where several instances must share one quota per subject. The key TTL plays
// the role of the window: expiry is the hard reset at the window boundary,
// and the counter keeps incrementing on denied requests just like the
// in-memory limiter.
type RedisLimiter struct {
	client    *redis.Client
	limit     int
	windowLen time.Duration
	prefix    string
}

// RedisOptions configures the connection for NewRedisLimiter.
type RedisOptions struct {
	Addr     string
	Password string
	DB       int
}

// NewRedisLimiter creates a Redis-backed limiter allowing limit requests per
// subject per windowLen. It validates the connection with a ping before
// returning.
func NewRedisLimiter(opts RedisOptions, limit int, windowLen time.Duration) (*RedisLimiter, error) {
	if opts.Addr == "" {
		return nil, fmt.Errorf("redis address is required")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return &RedisLimiter{
		client:    client,
		limit:     limit,
		windowLen: windowLen,
		prefix:    "ratelimit:",
	}, nil
}

// Allow checks whether a request from the given subject should be allowed.
// When Redis is unreachable the request is allowed, trading strictness for
// availability; the error is logged.
func (l *RedisLimiter) Allow(ctx context.Context, subject string) (bool, Info) {
	now := time.Now()
	info := Info{
		Limit:     l.limit,
		Window:    l.windowLen,
		Remaining: l.limit,
		ResetAt:   now.Add(l.windowLen),
	}

	res, err := incrScript.Run(ctx, l.client,
		[]string{l.prefix + subject}, l.windowLen.Milliseconds()).Int64Slice()
	if err != nil || len(res) != 2 {
		slog.Warn("rate limit check failed, allowing request", "subject", subject, "error", err)
		return true, info
	}

	count, ttlMillis := int(res[0]), res[1]
	if ttlMillis > 0 {
		ttl := time.Duration(ttlMillis) * time.Millisecond
		info.ResetAt = now.Add(ttl)
	}

	remaining := l.limit - count
	if remaining < 0 {
		remaining = 0
	}
	info.Remaining = remaining

	if count > l.limit {
		info.RetryAfter = info.ResetAt.Sub(now)
		return false, info
	}
	return true, info
}

// Close releases the Redis connection.
func (l *RedisLimiter) Close() {
	if err := l.client.Close(); err != nil {
		slog.Warn("failed to close redis client", "error", err)
	}
}
