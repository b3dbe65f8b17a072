package middleware

import (
	"net/http"
	"time"

	"github.com/DhavalSuthar-24/ladder/pkg/apperrors"
	"github.com/DhavalSuthar-24/ladder/pkg/logger"
	"github.com/DhavalSuthar-24/ladder/pkg/responses"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AccessLog writes one line per request. Must run after TraceContext.
func AccessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", status),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
		}
		ctx := c.Request.Context()
		switch {
		case status >= http.StatusInternalServerError:
			logger.Error(ctx, "request completed", fields...)
		case status >= http.StatusBadRequest:
			logger.Warn(ctx, "request completed", fields...)
		default:
			logger.Info(ctx, "request completed", fields...)
		}
	}
}

// Recovery turns a panic into a 500 error envelope.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Error(c.Request.Context(), "panic recovered",
			zap.Any("panic", recovered),
			zap.Stack("stack"),
		)
		responses.Error(c, apperrors.New(apperrors.InternalServerError))
	})
}
