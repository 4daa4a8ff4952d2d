package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	rateLimitKeyPrefix = "ratelimit:"
	maxLocalEntries    = 10000 // expired local entries are swept past this size
)

// RateLimiter is a fixed-window per-IP request limiter. Counters live in redis
// when a client is configured so every instance shares them; otherwise, or while
// redis is failing, they live in process memory.
type RateLimiter struct {
	limit  int
	window time.Duration
	rdb    *redis.Client
	now    func() time.Time

	mu    sync.Mutex
	items map[string]*rateEntry
}

type rateEntry struct {
	count int64
	reset time.Time
}

// NewRateLimiter creates a limiter allowing limit requests per window. rdb may be nil.
func NewRateLimiter(limit int, window time.Duration, rdb *redis.Client) *RateLimiter {
	return &RateLimiter{
		limit:  limit,
		window: window,
		rdb:    rdb,
		now:    time.Now,
		items:  make(map[string]*rateEntry),
	}
}

// Middleware rejects requests over the limit with 429 and a Retry-After header
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		count, reset := rl.hit(c.Request.Context(), c.ClientIP())

		c.Header("X-RateLimit-Limit", strconv.Itoa(rl.limit))
		remaining := int64(rl.limit) - count
		if remaining < 0 {
			remaining = 0
		}
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))

		if count > int64(rl.limit) {
			retry := int(reset.Sub(rl.now()).Seconds()) + 1
			c.Header("Retry-After", strconv.Itoa(retry))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests from this IP, please try again later."})
			return
		}
		c.Next()
	}
}

func (rl *RateLimiter) hit(ctx context.Context, ip string) (int64, time.Time) {
	now := rl.now()
	if rl.rdb != nil {
		count, reset, err := rl.hitRedis(ctx, ip, now)
		if err == nil {
			return count, reset
		}
		logrus.WithError(err).Warn("rate limit store unavailable, using local counters")
	}
	return rl.hitLocal(ip, now)
}

// hitRedis counts the request in the window bucket containing now
func (rl *RateLimiter) hitRedis(ctx context.Context, ip string, now time.Time) (int64, time.Time, error) {
	windowStart := now.Truncate(rl.window)
	reset := windowStart.Add(rl.window)
	key := fmt.Sprintf("%s%s:%d", rateLimitKeyPrefix, ip, windowStart.Unix())

	var incr *redis.IntCmd
	_, err := rl.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, key)
		pipe.ExpireAt(ctx, key, reset)
		return nil
	})
	if err != nil {
		return 0, time.Time{}, err
	}
	return incr.Val(), reset, nil
}

func (rl *RateLimiter) hitLocal(ip string, now time.Time) (int64, time.Time) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if len(rl.items) >= maxLocalEntries {
		for k, e := range rl.items {
			if !now.Before(e.reset) {
				delete(rl.items, k)
			}
		}
	}

	entry, ok := rl.items[ip]
	if !ok || !now.Before(entry.reset) {
		entry = &rateEntry{reset: now.Add(rl.window)}
		rl.items[ip] = entry
	}
	entry.count++
	return entry.count, entry.reset
}
