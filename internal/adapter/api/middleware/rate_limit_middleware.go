package middleware

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"xenopets/internal/infrastructure/ratelimit"
	"xenopets/pkg/logger"
)

// RateLimitMiddleware guards chatty endpoints (player search) per caller.
type RateLimitMiddleware struct {
	limiter    *ratelimit.RateLimiter
	maxTokens  int
	refillRate int
	refillTime time.Duration
}

func NewRateLimitMiddleware(maxTokens, refillRate int, refillTime time.Duration) *RateLimitMiddleware {
	m := &RateLimitMiddleware{
		limiter:    ratelimit.NewRateLimiter(),
		maxTokens:  maxTokens,
		refillRate: refillRate,
		refillTime: refillTime,
	}

	go func() {
		ticker := time.NewTicker(10 * time.Minute)
		defer ticker.Stop()
		for range ticker.C {
			m.limiter.Cleanup(time.Hour)
		}
	}()

	return m
}

func (m *RateLimitMiddleware) Limit(action string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key := action + "|" + c.RealIP()
			if uid, ok := c.Get("uid").(string); ok && uid != "" {
				key = action + "|" + uid
			}

			allowed, wait := m.limiter.Allow(key, m.maxTokens, m.refillRate, m.refillTime)
			if !allowed {
				logger.Warn("Rate limit hit: %s", key)
				return c.JSON(http.StatusTooManyRequests, map[string]interface{}{
					"error":       "Rate limit exceeded",
					"retry_after": int(wait.Seconds()) + 1,
				})
			}

			return next(c)
		}
	}
}
