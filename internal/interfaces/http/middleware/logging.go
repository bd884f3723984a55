package middleware

import (
	"github.com/gin-gonic/gin"

	"stride/internal/shared/logger"
)

// Logger logs each request through the structured logger. Level tracks the
// response status.
func Logger(log logger.Interface) gin.HandlerFunc {
	return gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		args := []any{
			"method", param.Method,
			"path", param.Path,
			"status", param.StatusCode,
			"latency", param.Latency,
			"client_ip", param.ClientIP,
		}

		if param.ErrorMessage != "" {
			args = append(args, "error", param.ErrorMessage)
		}

		switch {
		case param.StatusCode >= 500:
			log.Errorw("HTTP request completed", args...)
		case param.StatusCode >= 400:
			log.Warnw("HTTP request completed", args...)
		default:
			log.Debugw("HTTP request completed", args...)
		}

		return ""
	})
}
