// Package logger builds the zap loggers used by the silver command.
package logger

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a logger writing human readable lines to stderr at the given level.
// Accepted levels (case-insensitive): "debug", "info", "warn", "error".
func New(level string) (*zap.Logger, error) {
	return NewWithSink(level, zapcore.Lock(os.Stderr), false)
}

// NewWithSink is like New but writes to w, as JSON if json is set.
func NewWithSink(level string, w zapcore.WriteSyncer, json bool) (*zap.Logger, error) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "ts"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	enc := zapcore.NewConsoleEncoder(encCfg)
	if json {
		enc = zapcore.NewJSONEncoder(encCfg)
	}
	return zap.New(zapcore.NewCore(enc, w, lvl)), nil
}

// Flush writes any buffered entries. Sync errors on console outputs are ignored.
func Flush(l *zap.Logger) { _ = l.Sync() }
