// Package logger provides context-aware structured logging on top of zap.
// Request and job scoped fields travel in the context; everything else goes
// through the process-wide logger configured by Setup.
package logger

import (
	"context"
	"errors"
	"syscall"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	// DevelopmentEnvironment logs human-readable lines from debug level up.
	DevelopmentEnvironment = "development"
	// ProductionEnvironment logs JSON lines from info level up.
	ProductionEnvironment = "production"

	// ServiceName is attached to every entry of the default logger.
	ServiceName = "midcar"
)

// defaultLogger is used when the context carries no logger.
var defaultLogger = zap.NewNop() //nolint: gochecknoglobals

// Setup replaces the default logger with one configured for environment.
// Unknown environments fall back to development settings.
func Setup(environment string) {
	var cfg zap.Config
	switch environment {
	case ProductionEnvironment:
		cfg = zap.NewProductionConfig()
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	default:
		cfg = zap.NewDevelopmentConfig()
	}

	l, err := cfg.Build(zap.Fields(zap.String("service", ServiceName)))
	if err != nil {
		// the configs above only fail on unusable output paths
		l = zap.NewExample()
	}
	defaultLogger = l
}

// SetDefault replaces the default logger, e.g. with an observer in tests.
func SetDefault(l *zap.Logger) {
	defaultLogger = l
}

type key struct{}

// Get returns the logger stored in ctx, or the default logger.
func Get(ctx context.Context) *zap.Logger {
	if logger, _ := ctx.Value(key{}).(*zap.Logger); logger != nil {
		return logger
	}

	return defaultLogger
}

// WithLogger returns a copy of ctx carrying logger.
func WithLogger(ctx context.Context, logger *zap.Logger) context.Context {
	return context.WithValue(ctx, key{}, logger)
}

// WithFields returns a copy of ctx whose logger adds fields to every entry.
func WithFields(ctx context.Context, fields ...zapcore.Field) context.Context {
	return WithLogger(ctx, Get(ctx).With(fields...))
}

// IsDebug reports whether the logger of ctx writes debug entries.
func IsDebug(ctx context.Context) bool {
	return Get(ctx).Core().Enabled(zap.DebugLevel)
}

// Sync flushes buffered entries. Sync errors from terminals, which do not
// support fsync, are ignored.
func Sync(ctx context.Context) {
	if err := Get(ctx).Sync(); err != nil && !errors.Is(err, syscall.EINVAL) && !errors.Is(err, syscall.ENOTTY) {
		Get(ctx).Warn("could not sync logger", zap.Error(err))
	}
}

func Debug(ctx context.Context, msg string, fields ...zapcore.Field) {
	Get(ctx).Debug(msg, fields...)
}

func Info(ctx context.Context, msg string, fields ...zapcore.Field) {
	Get(ctx).Info(msg, fields...)
}

func Warn(ctx context.Context, msg string, fields ...zapcore.Field) {
	Get(ctx).Warn(msg, fields...)
}

func Error(ctx context.Context, msg string, fields ...zapcore.Field) {
	Get(ctx).Error(msg, fields...)
}

// Fatal logs at fatal level and exits the process.
func Fatal(ctx context.Context, msg string, fields ...zapcore.Field) {
	Get(ctx).Fatal(msg, fields...)
}
