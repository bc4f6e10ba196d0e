package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront-backend/internal/config"
)

// RateLimitMiddleware limits request rate per client IP. The webhook
// route is exempt: the payment processor retries aggressively and a 429
// there would delay order ingestion.
func RateLimitMiddleware(cfg *config.Config, manager *RateLimitManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if manager == nil || shouldBypassRateLimit(c.Request.URL.Path) {
			c.Next()
			return
		}

		limiter := manager.GetVisitor(
			c.ClientIP(),
			cfg.RateLimitRequests,
			cfg.RateLimitWindow,
			cfg.RateLimitBurst,
		)

		if limiter == nil {
			c.Next()
			return
		}

		if !limiter.Allow() {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error": "too many requests, please try again later",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

func shouldBypassRateLimit(path string) bool {
	switch path {
	case "/health", "/metrics", "/favicon.ico":
		return true
	}
	return path == "/api/webhooks/orders"
}
