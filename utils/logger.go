package utils

import (
	"log"
	"sync"

	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	logger *zap.Logger
	once   sync.Once
)

// InitLogger builds the process-wide structured logger. Level comes from the
// log.level config key; anything unparseable falls back to info.
func InitLogger() {
	once.Do(func() {
		level := zapcore.InfoLevel
		if raw := viper.GetString("log.level"); raw != "" {
			if parsed, err := zapcore.ParseLevel(raw); err == nil {
				level = parsed
			}
		}

		cfg := zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(level)
		cfg.Encoding = "console"
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

		built, err := cfg.Build()
		if err != nil {
			log.Printf("Could not build zap logger, falling back to no-op: %v", err)
			built = zap.NewNop()
		}
		logger = built
	})
}

// SetLogger replaces the process logger. Tests use this with zap.NewNop().
func SetLogger(l *zap.Logger) {
	logger = l
}

func get() *zap.Logger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return logger
}

// Info logs an informational message for a module operation.
func Info(module, operation, details string) {
	get().Info(details, zap.String("module", module), zap.String("operation", operation))
}

// Warn logs a warning message.
func Warn(module, operation, details string) {
	get().Warn(details, zap.String("module", module), zap.String("operation", operation))
}

// Error logs an error message.
func Error(module, operation, details string) {
	get().Error(details, zap.String("module", module), zap.String("operation", operation))
}

// Sync flushes buffered log entries. Called on shutdown.
func Sync() {
	if logger != nil {
		_ = logger.Sync()
	}
}
