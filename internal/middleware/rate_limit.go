package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RateLimitConfig defines configuration for rate limiting
type RateLimitConfig struct {
	// Window is the fixed window length
	Window time.Duration
	// Limit is the maximum number of requests allowed in the window; 0 disables limiting
	Limit int
	// KeyPrefix namespaces the Redis counters
	KeyPrefix string
}

// RateLimiter counts requests per client in Redis.
type RateLimiter struct {
	redis  *redis.Client
	config RateLimitConfig
	now    func() time.Time
	log    *zap.Logger
}

// NewRateLimiter creates a new rate limiter. A nil client yields a limiter that
// lets every request through.
func NewRateLimiter(redisClient *redis.Client, config RateLimitConfig, log *zap.Logger) *RateLimiter {
	if log == nil {
		log = zap.NewNop()
	}
	return &RateLimiter{
		redis:  redisClient,
		config: config,
		now:    time.Now,
		log:    log,
	}
}

// Enabled reports whether requests are actually being counted.
func (rl *RateLimiter) Enabled() bool {
	return rl.redis != nil && rl.config.Limit > 0 && rl.config.Window > 0
}

// Middleware enforces the limit, keyed by the authenticated subject when
// present and the client IP otherwise.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.Enabled() {
			c.Next()
			return
		}

		client := c.ClientIP()
		if subject := c.GetString(SubjectKey); subject != "" {
			client = subject
		}

		allowed, remaining, resetTime, err := rl.IsAllowed(c.Request.Context(), client)
		if err != nil {
			// Counting failures never block the request.
			rl.log.Warn("rate limit check failed", zap.String("client", client), zap.Error(err))
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(rl.config.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(resetTime.Unix(), 10))

		if !allowed {
			retryAfter := int(resetTime.Sub(rl.now()).Seconds())
			c.Header("Retry-After", strconv.Itoa(retryAfter))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":       "rate limit exceeded",
				"message":     fmt.Sprintf("limit of %d requests per %v reached", rl.config.Limit, rl.config.Window),
				"retry_after": retryAfter,
			})
			return
		}

		c.Next()
	}
}

// IsAllowed increments the client's counter for the current window and
// reports whether the request fits. Returns allowed, remaining, window reset.
func (rl *RateLimiter) IsAllowed(ctx context.Context, client string) (bool, int, time.Time, error) {
	windowStart := rl.now().Truncate(rl.config.Window)
	key := fmt.Sprintf("%s:%s:%d", rl.config.KeyPrefix, client, windowStart.Unix())

	pipe := rl.redis.Pipeline()
	incrCmd := pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, rl.config.Window)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, 0, time.Time{}, err
	}

	count := int(incrCmd.Val())
	remaining := rl.config.Limit - count
	if remaining < 0 {
		remaining = 0
	}

	return count <= rl.config.Limit, remaining, windowStart.Add(rl.config.Window), nil
}
