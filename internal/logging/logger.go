package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

const (
	EnvLocal = "local"
	EnvProd  = "production"
	EnvTest  = "test"
	EnvDev   = "development"
)

// requestIDKey is the key used to store request ID in context
type requestIDKey struct{}

// WithRequestID returns a copy of ctx carrying the request id.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

// RequestID extracts the request ID from a standard context
func RequestID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if rid, ok := ctx.Value(requestIDKey{}).(string); ok {
		return rid
	}
	// gin.Context resolves string keys against its own key store
	if rid, ok := ctx.Value("request_id").(string); ok {
		return rid
	}
	return ""
}

// Setup installs the process-wide slog logger for the given environment.
func Setup(env, level string) *slog.Logger {
	return setup(os.Stdout, env, level)
}

func setup(w io.Writer, env, level string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(level)}

	var log *slog.Logger
	switch env {
	case EnvProd, EnvTest, EnvDev:
		log = slog.New(slog.NewJSONHandler(w, opts))
	default:
		log = slog.New(slog.NewTextHandler(w, opts))
	}
	slog.SetDefault(log)
	return log
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Logger provides structured logging for services
type Logger struct {
	requestID string
	log       *slog.Logger
}

// NewLogger creates a logger with request context
func NewLogger(ctx context.Context) *Logger {
	requestID := RequestID(ctx)
	if requestID == "" {
		requestID = "unknown"
	}
	return &Logger{requestID: requestID, log: slog.Default()}
}

// LogError logs an error with context
func (l *Logger) LogError(operation string, err error) {
	l.log.Error("operation failed", "request_id", l.requestID, "operation", operation, "error", err)
}

// LogErrorf logs a formatted error with context
func (l *Logger) LogErrorf(operation string, format string, args ...any) {
	l.log.Error(fmt.Sprintf(format, args...), "request_id", l.requestID, "operation", operation)
}

// LogInfo logs an info message with context
func (l *Logger) LogInfo(operation string, message string) {
	l.log.Info(message, "request_id", l.requestID, "operation", operation)
}

// LogInfof logs a formatted info message with context
func (l *Logger) LogInfof(operation string, format string, args ...any) {
	l.log.Info(fmt.Sprintf(format, args...), "request_id", l.requestID, "operation", operation)
}

// LogWarn logs a warning with context
func (l *Logger) LogWarn(operation string, message string) {
	l.log.Warn(message, "request_id", l.requestID, "operation", operation)
}

// LogWarnf logs a formatted warning with context
func (l *Logger) LogWarnf(operation string, format string, args ...any) {
	l.log.Warn(fmt.Sprintf(format, args...), "request_id", l.requestID, "operation", operation)
}
