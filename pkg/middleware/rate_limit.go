package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	mem "routeplanner/pkg/memcache"
	"routeplanner/pkg/utils"
)

// RateLimitMiddleware keys limiters by user_id when an earlier middleware set it, else by client IP.
func RateLimitMiddleware(store mem.LimiterStore, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetString("user_id")
		if key == "" {
			key = c.ClientIP()
		}

		if !store.Get(key).Allow() {
			logger.Warn("Rate limit exceeded", zap.String("client", key),
				zap.String("path", c.FullPath()),
				zap.Int("tracked_clients", store.Len()))
			utils.RespondError(c, http.StatusTooManyRequests, "Too many requests, try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
