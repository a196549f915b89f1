package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Limiter implements a fixed-window request counter backed by Redis.
// Key format: ratelimit:<client_key>
type Limiter struct {
	client *redis.Client
	limit  int64
	window time.Duration
}

// NewLimiter creates a Limiter allowing limit requests per window for each key.
func NewLimiter(client *redis.Client, limit int, window time.Duration) *Limiter {
	return &Limiter{client: client, limit: int64(limit), window: window}
}

// Allow increments the counter for key and reports whether the request falls
// within the window budget. INCR and EXPIRE run in one MULTI/EXEC block so a
// counter can never be left without a TTL; EXPIRE NX keeps the window anchored
// to its first hit.
func (l *Limiter) Allow(ctx context.Context, key string) (bool, error) {
	k := l.key(key)

	var incr *redis.IntCmd
	_, err := l.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, k)
		pipe.ExpireNX(ctx, k, l.window)
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("rate limit incr: %w", err)
	}

	return incr.Val() <= l.limit, nil
}

func (l *Limiter) key(key string) string {
	return "ratelimit:" + key
}
