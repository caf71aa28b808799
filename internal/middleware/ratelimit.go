package middleware

import (
	"fmt"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"github.com/clinicdesk/clinic-manager/internal/httperr"
)

const (
	defaultRateLimit  = 5
	defaultRateWindow = 15 * time.Minute
)

type RateLimitConfig struct {
	Limit  int
	Window time.Duration
}

// RateLimiter counts requests per client IP and path in a fixed redis
// window. Redis being unreachable fails open: the limiter must never
// take the API down with it.
func RateLimiter(rdb *redis.Client, cfg RateLimitConfig) gin.HandlerFunc {
	if cfg.Limit <= 0 {
		cfg.Limit = defaultRateLimit
	}
	if cfg.Window <= 0 {
		cfg.Window = defaultRateWindow
	}

	return func(c *gin.Context) {
		if rdb == nil {
			c.Next()
			return
		}

		key := fmt.Sprintf("ratelimit:%s:%s", c.Request.URL.Path, c.ClientIP())
		ctx := c.Request.Context()

		count, err := rdb.Incr(ctx, key).Result()
		if err != nil {
			log.Println("rate limit check failed:", err)
			c.Next()
			return
		}

		if count == 1 {
			rdb.Expire(ctx, key, cfg.Window)
		}

		if count > int64(cfg.Limit) {
			httperr.TooManyRequests(c, "rate_limited", "Too many attempts, try again later.")
			c.Abort()
			return
		}

		c.Next()
	}
}
