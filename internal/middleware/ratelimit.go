package middleware

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"hireloop/internal/utils"

	"github.com/redis/go-redis/v9"
)

// RateLimiter counts requests per client key in fixed windows.
type RateLimiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// RedisRateLimiter keeps fixed-window counters in Redis so the limit holds
// across service instances.
type RedisRateLimiter struct {
	rdb    *redis.Client
	limit  int
	window time.Duration
}

func NewRedisRateLimiter(rdb *redis.Client, limit int, window time.Duration) *RedisRateLimiter {
	return &RedisRateLimiter{rdb: rdb, limit: limit, window: window}
}

func (rl *RedisRateLimiter) Allow(ctx context.Context, key string) (bool, error) {
	bucket := time.Now().UnixNano() / rl.window.Nanoseconds()
	counterKey := fmt.Sprintf("ratelimit:%s:%d", key, bucket)

	count, err := rl.rdb.Incr(ctx, counterKey).Result()
	if err != nil {
		return false, err
	}
	if count == 1 {
		rl.rdb.Expire(ctx, counterKey, rl.window)
	}
	return count <= int64(rl.limit), nil
}

// LocalRateLimiter is the best-effort in-process fallback: counters live in
// a map, reset on restart and are not shared across instances.
type LocalRateLimiter struct {
	limit  int
	window time.Duration

	mu       sync.Mutex
	bucket   int64
	counters map[string]int
}

func NewLocalRateLimiter(limit int, window time.Duration) *LocalRateLimiter {
	return &LocalRateLimiter{
		limit:    limit,
		window:   window,
		counters: make(map[string]int),
	}
}

func (rl *LocalRateLimiter) Allow(_ context.Context, key string) (bool, error) {
	bucket := time.Now().UnixNano() / rl.window.Nanoseconds()

	rl.mu.Lock()
	defer rl.mu.Unlock()

	if bucket != rl.bucket {
		rl.bucket = bucket
		rl.counters = make(map[string]int)
	}
	rl.counters[key]++
	return rl.counters[key] <= rl.limit, nil
}

// RateLimit rejects requests over the per-IP budget with 429. A limiter
// error never blocks the request; the AI endpoints stay usable if Redis
// is down.
func RateLimit(limiter RateLimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			allowed, err := limiter.Allow(r.Context(), r.RemoteAddr)
			if err != nil {
				log.Printf("rate limiter unavailable, letting request through: %v", err)
				allowed = true
			}
			if !allowed {
				utils.JSONError(w, http.StatusTooManyRequests, "Too many requests, slow down")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
