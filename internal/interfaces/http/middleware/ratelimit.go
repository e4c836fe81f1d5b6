package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/replenish-inc/replenish/internal/infrastructure/ratelimit"
	"github.com/replenish-inc/replenish/internal/shared/config"
	"github.com/replenish-inc/replenish/internal/shared/logger"
	"github.com/replenish-inc/replenish/internal/shared/utils"
)

// ConfirmationRateLimitMiddleware throttles the public confirmation endpoints
// per client IP. Tokens are unguessable; this blunts enumeration and scripted
// replay attempts on the unauthenticated surface.
type ConfirmationRateLimitMiddleware struct {
	limiter ratelimit.RateLimiter
	cfg     config.RateLimitConfig
	logger  logger.Interface
}

func NewConfirmationRateLimitMiddleware(
	limiter ratelimit.RateLimiter,
	cfg config.RateLimitConfig,
	logger logger.Interface,
) *ConfirmationRateLimitMiddleware {
	return &ConfirmationRateLimitMiddleware{
		limiter: limiter,
		cfg:     cfg,
		logger:  logger,
	}
}

func (m *ConfirmationRateLimitMiddleware) LimitByClientIP() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.ClientIP()
		limitConfig := ratelimit.RateLimitConfig{
			RequestsPerMinute: m.cfg.RequestsPerMinute,
			RequestsPerHour:   m.cfg.RequestsPerHour,
			RequestsPerDay:    m.cfg.RequestsPerDay,
		}

		allowed, err := m.limiter.Allow(c.Request.Context(), key, limitConfig)
		if err != nil {
			// Fail open: a limiter outage must not lock customers out of
			// their confirmation links.
			m.logger.Errorw("rate limit check failed", "error", err, "client_ip", c.ClientIP())
			c.Next()
			return
		}

		used, err := m.limiter.UsedInWindow(c.Request.Context(), key, time.Minute)
		if err != nil {
			m.logger.Warnw("failed to read rate limit usage", "error", err)
			used = 0
		}

		limit := int64(m.cfg.RequestsPerMinute)
		left := limit - used
		if left < 0 {
			left = 0
		}

		c.Header("X-RateLimit-Limit", strconv.FormatInt(limit, 10))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(left, 10))

		if !allowed {
			m.logger.Warnw("rate limit exceeded", "client_ip", c.ClientIP())
			c.Header("Retry-After", "60")
			utils.ErrorResponse(c, http.StatusTooManyRequests, "too many requests")
			c.Abort()
			return
		}

		c.Next()
	}
}
