package logger

import (
	"sync"

	"go.uber.org/zap"
)

var (
	logger *zap.SugaredLogger
	once   sync.Once
)

// Init initializes the global structured logger. Safe to call more than once;
// only the first call takes effect.
func Init() {
	once.Do(func() {
		zl, err := zap.NewProduction()
		if err != nil {
			// fall back to a no-op logger rather than crashing at startup
			zl = zap.NewNop()
		}
		logger = zl.Sugar()
	})
}

// L returns the global logger instance.
func L() *zap.SugaredLogger {
	if logger == nil {
		Init()
	}
	return logger
}

// Info is a shorthand for L().Infow
func Info(msg string, args ...any) {
	L().Infow(msg, args...)
}

// Warn is a shorthand for L().Warnw
func Warn(msg string, args ...any) {
	L().Warnw(msg, args...)
}

// Error is a shorthand for L().Errorw
func Error(msg string, args ...any) {
	L().Errorw(msg, args...)
}

// Debug is a shorthand for L().Debugw
func Debug(msg string, args ...any) {
	L().Debugw(msg, args...)
}
