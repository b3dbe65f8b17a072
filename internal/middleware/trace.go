package middleware

import (
	"strings"

	"github.com/DhavalSuthar-24/ladder/internal/common"
	"github.com/DhavalSuthar-24/ladder/pkg/logger"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TraceContext makes sure every request carries a trace id and a request id,
// taken from the incoming headers or generated. Both are echoed back and
// attached to the request context so service logs include them.
func TraceContext() gin.HandlerFunc {
	return func(c *gin.Context) {
		traceID := strings.TrimSpace(c.GetHeader(common.TraceIDHeader))
		if traceID == "" {
			traceID = uuid.NewString()
		}
		requestID := strings.TrimSpace(c.GetHeader(common.RequestIDHeader))
		if requestID == "" {
			requestID = uuid.NewString()
		}

		ctx := logger.ContextWithTraceID(c.Request.Context(), traceID)
		ctx = logger.ContextWithRequestID(ctx, requestID)
		c.Request = c.Request.WithContext(ctx)

		c.Writer.Header().Set(common.TraceIDHeader, traceID)
		c.Writer.Header().Set(common.RequestIDHeader, requestID)

		c.Next()
	}
}
