package middleware

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"github.com/BruksfildServices01/appointment-system/internal/httperr"
)

// LoginRateLimit counts attempts per client IP in a fixed redis window.
// With a nil client it is a pass-through, and redis outages fail open:
// losing the limiter must never take logins down with it.
func LoginRateLimit(rdb *redis.Client, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rdb == nil {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		key := fmt.Sprintf("ratelimit:login:%s", c.ClientIP())

		count, err := rdb.Incr(ctx, key).Result()
		if err != nil {
			log.Println("rate limit error:", err)
			c.Next()
			return
		}
		if count == 1 {
			rdb.Expire(ctx, key, window)
		}

		if count > int64(limit) {
			httperr.Write(c, http.StatusTooManyRequests, "too_many_requests", "too many login attempts, try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
