package logger

import (
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var global atomic.Pointer[zap.Logger]

func init() {
	global.Store(zap.NewNop())
}

// Initialize replaces the process logger with a console logger at the given level.
func Initialize(level zap.AtomicLevel) error {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = level
	cfg.DisableStacktrace = true
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	log, err := cfg.Build()
	if err != nil {
		return err
	}
	Set(log)
	return nil
}

// Set installs log as the process logger. A nil logger disables logging.
func Set(log *zap.Logger) {
	if log == nil {
		log = zap.NewNop()
	}
	global.Store(log)
}

// Logger returns the process logger.
func Logger() *zap.Logger {
	return global.Load()
}

// Sugar returns the sugared process logger.
func Sugar() *zap.SugaredLogger {
	return global.Load().Sugar()
}

// Sync flushes buffered log entries.
func Sync() {
	_ = global.Load().Sync()
}
