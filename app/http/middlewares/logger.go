package middlewares

import (
	"time"

	"guestsign/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Logger 记录请求日志
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		cost := time.Since(start)
		responseStatus := c.Writer.Status()

		logFields := []zap.Field{
			zap.Int("status", responseStatus),
			zap.String("request", c.Request.Method+" "+c.Request.URL.String()),
			zap.String("ip", c.ClientIP()),
			zap.String("user-agent", c.Request.UserAgent()),
			zap.String("errors", c.Errors.ByType(gin.ErrorTypePrivate).String()),
			zap.String("time", cost.String()),
		}

		if responseStatus >= 500 {
			logger.Error("HTTP Error "+c.Request.Method, logFields...)
		} else if responseStatus >= 400 {
			logger.Warn("HTTP Warning "+c.Request.Method, logFields...)
		} else {
			logger.Debug("HTTP Access Log", logFields...)
		}
	}
}
