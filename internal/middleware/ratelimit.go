package middleware

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"taskpilot/pkg/response"
)

// RateLimit throttles requests with a token bucket per client IP. When
// disabled in config it degrades to a passthrough.
func (m Middleware) RateLimit() gin.HandlerFunc {
	if !m.cfg.Enabled {
		return func(c *gin.Context) {
			c.Next()
		}
	}

	return func(c *gin.Context) {
		key := c.ClientIP()

		limiter, ok := m.limiters.Get(key)
		if !ok {
			limiter = rate.NewLimiter(m.rate, m.burst)
			m.limiters.Add(key, limiter)
		}

		if !limiter.Allow() {
			m.l.Warnf(c.Request.Context(), "middleware.RateLimit: throttling %s", key)
			response.TooManyRequests(c)
			c.Abort()
			return
		}

		c.Next()
	}
}
