package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/realty-decks/deck-backend/internal/logging"
)

const (
	RequestIDHeader = "X-Request-Id"

	maxRequestIDLen = 128
)

// RequestIDMiddleware tags every request with an ID, taken from the
// X-Request-Id header when the caller sent a usable one, and writes one
// access log line once the handler chain returns.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := inboundRequestID(c.GetHeader(RequestIDHeader))
		if rid == "" {
			rid = uuid.NewString()
		}

		c.Set("request_id", rid)
		c.Request = c.Request.WithContext(logging.WithRequestID(c.Request.Context(), rid))
		c.Writer.Header().Set(RequestIDHeader, rid)

		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		fields := []zap.Field{
			zap.String("request_id", rid),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.String("route", c.FullPath()),
			zap.Int("status", status),
			zap.Duration("latency", time.Since(start)),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}
		if status >= 500 {
			logging.L().Warn("request", fields...)
			return
		}
		logging.L().Info("request", fields...)
	}
}

// inboundRequestID rejects IDs that would pollute log lines.
func inboundRequestID(h string) string {
	h = strings.TrimSpace(h)
	if len(h) > maxRequestIDLen {
		return ""
	}
	for _, r := range h {
		if r < 0x21 || r > 0x7e {
			return ""
		}
	}
	return h
}
