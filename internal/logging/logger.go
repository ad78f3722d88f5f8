// Package logging wires zap into the request-scoped Logger used by services
// and handlers.
package logging

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var base atomic.Pointer[zap.Logger]

func init() {
	base.Store(zap.NewNop())
}

// Init builds the process logger. "production" selects the JSON encoder,
// anything else the console encoder.
func Init(env, level string) (*zap.Logger, error) {
	var cfg zap.Config
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "prod", "production":
		cfg = zap.NewProductionConfig()
	default:
		cfg = zap.NewDevelopmentConfig()
	}

	lvl, err := zapcore.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		lvl = zapcore.InfoLevel
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	z, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	Set(z)
	return z, nil
}

// Set replaces the process logger.
func Set(z *zap.Logger) {
	if z == nil {
		z = zap.NewNop()
	}
	base.Store(z)
}

// L returns the process logger.
func L() *zap.Logger {
	return base.Load()
}

// Sync flushes buffered entries.
func Sync() {
	_ = base.Load().Sync()
}

type requestIDKey struct{}

// WithRequestID stores the request ID on ctx.
func WithRequestID(ctx context.Context, rid string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, rid)
}

// RequestID returns the request ID stored on ctx, or "".
func RequestID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if rid, ok := ctx.Value(requestIDKey{}).(string); ok {
		return rid
	}
	return ""
}

// Logger provides structured logging for services
type Logger struct {
	requestID string
	sugar     *zap.SugaredLogger
}

// NewLogger creates a logger with request context
func NewLogger(ctx context.Context) *Logger {
	requestID := RequestID(ctx)
	if requestID == "" {
		requestID = "unknown"
	}
	return &Logger{
		requestID: requestID,
		sugar:     L().Sugar().With("request_id", requestID),
	}
}

// With returns a logger carrying extra fields. Sensitive keys are redacted.
func (l *Logger) With(keysAndValues ...any) *Logger {
	return &Logger{requestID: l.requestID, sugar: l.sugar.With(sanitizeKVs(keysAndValues)...)}
}

// RequestID returns the request ID the logger was built with.
func (l *Logger) RequestID() string {
	return l.requestID
}

// LogError logs an error with context
func (l *Logger) LogError(operation string, err error) {
	l.sugar.Errorw("operation failed", "operation", operation, "error", err)
}

// LogErrorf logs a formatted error with context
func (l *Logger) LogErrorf(operation string, format string, args ...any) {
	l.sugar.Errorw(fmt.Sprintf(format, args...), "operation", operation)
}

// LogInfo logs an info message with context
func (l *Logger) LogInfo(operation string, message string) {
	l.sugar.Infow(message, "operation", operation)
}

// LogInfof logs a formatted info message with context
func (l *Logger) LogInfof(operation string, format string, args ...any) {
	l.sugar.Infow(fmt.Sprintf(format, args...), "operation", operation)
}

// LogWarn logs a warning with context
func (l *Logger) LogWarn(operation string, message string) {
	l.sugar.Warnw(message, "operation", operation)
}

// LogWarnf logs a formatted warning with context
func (l *Logger) LogWarnf(operation string, format string, args ...any) {
	l.sugar.Warnw(fmt.Sprintf(format, args...), "operation", operation)
}
