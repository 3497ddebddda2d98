// Package logger holds the process-wide zap logger.
package logger

import (
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const envLocal = "local"

var global atomic.Pointer[zap.Logger]

func init() {
	global.Store(zap.NewNop())
}

// SetupLogger builds the logger for env and installs it as the global one.
// The local environment gets a colored console encoder, everything else JSON.
func SetupLogger(env, level string) *zap.Logger {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}

	var cfg zap.Config
	if env == envLocal {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		cfg = zap.NewProductionConfig()
		cfg.EncoderConfig.TimeKey = "time"
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	l, err := cfg.Build(zap.Fields(zap.String("env", env)))
	if err != nil {
		l = zap.NewExample()
	}

	SetLogger(l)

	return l
}

func SetLogger(l *zap.Logger) {
	global.Store(l)
}

func Logger() *zap.Logger {
	return global.Load()
}

func Debug(msg string, fields ...zap.Field) {
	Logger().Debug(msg, fields...)
}

func Info(msg string, fields ...zap.Field) {
	Logger().Info(msg, fields...)
}

func Warn(msg string, fields ...zap.Field) {
	Logger().Warn(msg, fields...)
}

func Error(msg string, fields ...zap.Field) {
	Logger().Error(msg, fields...)
}

func Sync() {
	_ = Logger().Sync()
}
