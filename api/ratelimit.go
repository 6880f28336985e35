package api

import (
	"log/slog"
	"math"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/catalog-api/api/auth"
	"github.com/killallgit/catalog-api/api/types"
	"github.com/killallgit/catalog-api/internal/services/ratelimit"
	"golang.org/x/time/rate"
)

// backendWarnInterval spaces out warnings while the limiter backend is down
const backendWarnInterval = 30 * time.Second

// RateLimitKey identifies the caller: the token subject when authenticated, else the client IP
func RateLimitKey(c *gin.Context) string {
	if userID := auth.UserID(c); userID != "" {
		return "api:" + userID
	}
	return "api:" + c.ClientIP()
}

// PerClientRateLimit counts every request against the caller's quota.
// Over quota the request is answered with 429; a failing backend lets it through.
func PerClientRateLimit(limiter ratelimit.Limiter, logger *slog.Logger) gin.HandlerFunc {
	backendWarn := &rate.Sometimes{First: 1, Interval: backendWarnInterval}

	return func(c *gin.Context) {
		key := RateLimitKey(c)

		res, err := limiter.Allow(c.Request.Context(), key)
		if err != nil {
			backendWarn.Do(func() {
				logger.Warn("rate limiter unavailable, allowing requests",
					slog.String("key", key),
					slog.Any("error", err))
			})
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(res.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(res.Remaining))
		if res.ResetAfter > 0 {
			c.Header("X-RateLimit-Reset", strconv.FormatInt(time.Now().Add(res.ResetAfter).Unix(), 10))
		}

		if !res.Allowed {
			types.SendTooManyRequests(c, ceilSeconds(res.RetryAfter))
			return
		}
		c.Next()
	}
}

// ceilSeconds rounds up so a client never retries too early
func ceilSeconds(d time.Duration) int {
	return max(1, int(math.Ceil(d.Seconds())))
}
