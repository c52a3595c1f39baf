// Package logging configures the process-wide logger. All output goes to
// stderr: in MCP stdio mode stdout carries the protocol stream.
package logging

import (
	"os"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a logr.Logger backed by zap writing to stderr. Level is one of
// "debug", "info", "warn", "error"; anything else falls back to info.
// The returned zap logger should be Sync'd on shutdown.
func New(level string) (logr.Logger, *zap.Logger) {
	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "warn":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		zapLevel = zapcore.InfoLevel
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderCfg),
		zapcore.Lock(os.Stderr),
		zapLevel,
	)

	zapLog := zap.New(core)
	return zapr.NewLogger(zapLog), zapLog
}
