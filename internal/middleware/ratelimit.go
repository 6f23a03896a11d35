package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"foodhub-support/pkg/response"
)

// RateLimit throttles chat turns per caller. The key is the X-Customer-ID
// header when a fronting proxy supplies one, the client IP otherwise.
// Limiter state is in-memory, matching the single-process session store.
func (m *Middleware) RateLimit() gin.HandlerFunc {
	if m.cfg.RequestsPerMin <= 0 {
		return func(c *gin.Context) { c.Next() }
	}

	return func(c *gin.Context) {
		key := c.GetHeader("X-Customer-ID")
		if key == "" {
			key = c.ClientIP()
		}

		if !m.limiterFor(key).Allow() {
			m.l.Warnf(c.Request.Context(), "RateLimit: throttled key=%s", key)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, response.Resp{
				ErrorCode: http.StatusTooManyRequests,
				Message:   "too many requests, slow down",
			})
			return
		}

		c.Next()
	}
}

func (m *Middleware) limiterFor(key string) *rate.Limiter {
	m.mu.Lock()
	defer m.mu.Unlock()

	lim, ok := m.limiters[key]
	if !ok {
		burst := m.cfg.Burst
		if burst <= 0 {
			burst = m.cfg.RequestsPerMin
		}
		lim = rate.NewLimiter(rate.Limit(float64(m.cfg.RequestsPerMin)/60.0), burst)
		m.limiters[key] = lim
	}
	return lim
}
