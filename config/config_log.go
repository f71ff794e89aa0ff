package config

import (
	"go.uber.org/zap"
	gormlogger "gorm.io/gorm/logger"
)

type LogLevel string

const (
	LogLevelDebug  LogLevel = "debug"
	LogLevelInfo   LogLevel = "info"
	LogLevelWarn   LogLevel = "warn"
	LogLevelError  LogLevel = "error"
	LogLevelFatal  LogLevel = "fatal"
	LogLevelSilent LogLevel = "silent"
)

func (l LogLevel) String() string {
	return string(l)
}

func (l LogLevel) Zap() zap.AtomicLevel {
	switch l {
	case LogLevelDebug, "trace":
		return zap.NewAtomicLevelAt(zap.DebugLevel)
	case LogLevelInfo, "information", "notice":
		return zap.NewAtomicLevelAt(zap.InfoLevel)
	case LogLevelWarn, "warning":
		return zap.NewAtomicLevelAt(zap.WarnLevel)
	case LogLevelError:
		return zap.NewAtomicLevelAt(zap.ErrorLevel)
	case LogLevelFatal, LogLevelSilent:
		return zap.NewAtomicLevelAt(zap.FatalLevel)
	default:
		return zap.NewAtomicLevelAt(zap.ErrorLevel)
	}
}

// Gorm maps the level onto gorm's SQL logger, which only knows info, warn, error and silent.
func (l LogLevel) Gorm() gormlogger.LogLevel {
	switch l {
	case LogLevelDebug, "trace", LogLevelInfo, "information", "notice":
		return gormlogger.Info
	case LogLevelWarn, "warning":
		return gormlogger.Warn
	case LogLevelSilent, LogLevelFatal:
		return gormlogger.Silent
	default:
		return gormlogger.Error
	}
}
