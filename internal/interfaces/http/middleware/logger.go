package middleware

import (
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gin-gonic/gin"

	"github.com/easayliu/yadisk-relay/pkg/logger"
)

// slowRequestThreshold 超过该耗时的请求额外标记
const slowRequestThreshold = 5 * time.Second

// LoggerMiddleware 请求日志，健康检查只在debug级别输出
func LoggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()

		args := []interface{}{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", status,
			"latency", latency.Round(time.Microsecond).String(),
			"client", c.ClientIP(),
			"size", humanize.Bytes(uint64(max(c.Writer.Size(), 0))),
			"request_id", c.GetString(RequestIDKey),
		}
		if latency > slowRequestThreshold {
			args = append(args, "slow", true)
		}

		switch {
		case status >= 500:
			logger.Error("Request completed", args...)
		case status >= 400:
			logger.Warn("Request completed", args...)
		case strings.HasSuffix(c.Request.URL.Path, "/health"):
			logger.Debug("Request completed", args...)
		default:
			logger.Info("Request completed", args...)
		}
	}
}
