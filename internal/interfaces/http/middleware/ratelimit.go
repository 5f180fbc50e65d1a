package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/infrastructure/ratelimit"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

// RateLimit returns a Gin middleware that throttles requests per client key.
// Authenticated requests are limited per user, anonymous ones per IP.
func RateLimit(limiter ratelimit.Limiter, cfg ratelimit.Config, log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := "ip:" + c.ClientIP()
		if a, ok := ActorFromContext(c); ok {
			key = fmt.Sprintf("user:%d", a.ID)
		}

		allowed, err := limiter.Allow(c.Request.Context(), key, cfg)
		if err != nil {
			// If the limiter backend is unavailable, allow the request
			// to avoid blocking all traffic.
			log.Warnw("rate limiter unavailable", "error", err)
			c.Next()
			return
		}

		if !allowed {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "rate limit exceeded, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
