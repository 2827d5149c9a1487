package logger

import (
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	base *zap.Logger
	mu   sync.RWMutex
)

// Init builds the process-wide logger. Production uses the JSON encoder,
// everything else the human-readable development encoder.
func Init(production bool) error {
	var (
		l   *zap.Logger
		err error
	)
	if production {
		l, err = zap.NewProduction()
	} else {
		cfg := zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		l, err = cfg.Build()
	}
	if err != nil {
		return err
	}

	mu.Lock()
	base = l
	mu.Unlock()
	return nil
}

// L returns the global logger, falling back to a no-op logger before Init.
func L() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	if base == nil {
		return zap.NewNop()
	}
	return base
}

// Named returns a child logger tagged with a component name.
func Named(component string) *zap.Logger {
	return L().Named(component)
}

// Sync flushes any buffered log entries.
func Sync() {
	_ = L().Sync()
}

func Info(msg string, fields ...zap.Field) {
	L().Info(msg, fields...)
}

func Warn(msg string, fields ...zap.Field) {
	L().Warn(msg, fields...)
}

func Error(msg string, fields ...zap.Field) {
	L().Error(msg, fields...)
}

func Debug(msg string, fields ...zap.Field) {
	L().Debug(msg, fields...)
}
