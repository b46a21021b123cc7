// Package log holds the process-wide zap logger. The terminal renderer owns
// stdout, so file output is the default sink.
package log

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var Logger = zap.NewNop()

// Init replaces the package logger with a production-encoded logger writing
// to path at the given level. Unknown levels fall back to info.
func Init(level, path string) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}

	logger, err := cfg.Build()
	if err != nil {
		return err
	}
	Logger = logger
	return nil
}

// Sync flushes buffered entries. Safe to call on the nop logger.
func Sync() {
	_ = Logger.Sync()
}
