// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/integration/entrypoint/dto"
)

// keyPrefix namespaces rate limit counters in shared stores.
const keyPrefix = "ratelimit:"

// RateLimitStore counts hits per key in fixed windows.
type RateLimitStore interface {
	// Increment records a hit for key and returns the number of hits in the
	// current window. The window starts with the first hit.
	Increment(ctx context.Context, key string, window time.Duration) (int64, error)
}

// RateLimiter provides IP-based rate limiting functionality.
type RateLimiter struct {
	store          RateLimitStore
	maxAttempts    int
	windowDuration time.Duration
}

// NewRateLimiterWithConfig creates a new rate limiter with custom settings.
func NewRateLimiterWithConfig(store RateLimitStore, maxAttempts int, windowDuration time.Duration) *RateLimiter {
	return &RateLimiter{
		store:          store,
		maxAttempts:    maxAttempts,
		windowDuration: windowDuration,
	}
}

// Middleware returns a Gin middleware handler that enforces rate limiting.
// Store failures let the request through.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Get client IP
		clientIP := c.ClientIP()
		if clientIP == "" {
			clientIP = c.Request.RemoteAddr
		}

		hits, err := rl.store.Increment(c.Request.Context(), keyPrefix+clientIP, rl.windowDuration)
		if err != nil {
			slog.WarnContext(c.Request.Context(), "Rate limit store unavailable", "error", err)
			c.Next()
			return
		}

		if hits > int64(rl.maxAttempts) {
			_ = c.Error(domainerror.ErrRateLimited)
			c.JSON(http.StatusTooManyRequests, dto.ErrorResponse{
				Error: "Too many requests. Please try again later.",
				Code:  string(domainerror.ErrCodeRateLimited),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
