package logger

import (
	"context"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/we3pr0/AbundantLifeChurch/internal/config"
)

const (
	// TracingKey is the log field carrying the request trace ID
	TracingKey          = "trace_id"
	tracingIDContextKey = "trace_id_ctx_key"
)

var (
	log      *zap.Logger
	logMutex sync.Mutex // guards lazy initialization
)

// InitLogger initializes the global logger
func InitLogger(cfg config.Logger) (*zap.Logger, error) {
	var level zapcore.Level
	switch cfg.Level {
	case "debug":
		level = zapcore.DebugLevel
	case "info":
		level = zapcore.InfoLevel
	case "warn":
		level = zapcore.WarnLevel
	case "error":
		level = zapcore.ErrorLevel
	default:
		level = zapcore.InfoLevel
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var encoding string
	if cfg.Encoding == "console" {
		encoding = "console"
	} else {
		encoding = "json"
	}

	zapCfg := zap.Config{
		Level:       zap.NewAtomicLevelAt(level),
		Development: false,
		Sampling: &zap.SamplingConfig{
			Initial:    100,
			Thereafter: 100,
		},
		Encoding:         encoding,
		EncoderConfig:    encoderConfig,
		OutputPaths:      []string{cfg.OutputPath},
		ErrorOutputPaths: []string{cfg.OutputPath},
	}

	logger, err := zapCfg.Build()
	if err != nil {
		return nil, err
	}

	logMutex.Lock()
	log = logger
	logMutex.Unlock()

	return logger, nil
}

// SetLogger installs an external logger instance (useful for tests)
func SetLogger(logger *zap.Logger) {
	logMutex.Lock()
	defer logMutex.Unlock()
	log = logger
}

// ensureLogger guarantees the logger is initialized
func ensureLogger() {
	logMutex.Lock()
	defer logMutex.Unlock()

	if log == nil {
		cfg := zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
		logger, _ := cfg.Build()
		log = logger
	}
}

// Get returns the global logger
func Get() *zap.Logger {
	ensureLogger()
	return log
}

// With creates a new logger with the given fields
func With(fields ...zap.Field) *zap.Logger {
	ensureLogger()
	return log.With(fields...)
}

// FromContext returns a logger enriched with context information
func FromContext(ctx context.Context) *zap.Logger {
	ensureLogger()

	logger := log

	if ctx == nil {
		return logger
	}

	if traceID := TraceIDFromContext(ctx); traceID != "" {
		logger = logger.With(zap.String(TracingKey, traceID))
	}

	return logger
}

// ContextWithTraceID adds a trace ID to the context
func ContextWithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, tracingIDContextKey, traceID)
}

// TraceIDFromContext extracts the trace ID from the context
func TraceIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if traceID, ok := ctx.Value(tracingIDContextKey).(string); ok {
		return traceID
	}
	return ""
}

// Debug logs a message at Debug level using the context
func Debug(ctx context.Context, msg string, fields ...zap.Field) {
	FromContext(ctx).Debug(msg, fields...)
}

// Info logs a message at Info level using the context
func Info(ctx context.Context, msg string, fields ...zap.Field) {
	FromContext(ctx).Info(msg, fields...)
}

// Warn logs a message at Warn level using the context
func Warn(ctx context.Context, msg string, fields ...zap.Field) {
	FromContext(ctx).Warn(msg, fields...)
}

// Error logs a message at Error level using the context
func Error(ctx context.Context, msg string, fields ...zap.Field) {
	FromContext(ctx).Error(msg, fields...)
}

// Fatal logs a message at Fatal level using the context
func Fatal(ctx context.Context, msg string, fields ...zap.Field) {
	FromContext(ctx).Fatal(msg, fields...)
}
