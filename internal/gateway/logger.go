package gateway

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"time"
)

func requestLogger(logger *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		fields := []any{
			"status", c.Writer.Status(),
			"latency", time.Since(start),
			"method", c.Request.Method,
			"path", path,
			"clientIp", c.ClientIP(),
		}
		if len(c.Errors) > 0 {
			logger.Errorw("request failed", append(fields, "error", c.Errors.String())...)
			return
		}
		logger.Infow("request", fields...)
	}
}
