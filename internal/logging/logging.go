// Package logging builds the structured logger. The terminal belongs to
// the TUI, so logs only go to a file, as JSON, when one is configured.
package logging

import (
	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Keys attached to every record.
const (
	AppKey     = "app"
	CommandKey = "command"
)

// New returns a logger writing JSON to path, plus a flush func to call
// before exit. An empty path yields a discarding logger.
func New(path string, debug bool) (logr.Logger, func() error, error) {
	if path == "" {
		return logr.Discard(), func() error { return nil }, nil
	}

	level := zapcore.InfoLevel
	if debug {
		level = zapcore.DebugLevel
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	cfg.Sampling = nil

	zl, err := cfg.Build()
	if err != nil {
		return logr.Discard(), func() error { return nil }, err
	}
	return zapr.NewLogger(zl).WithValues(AppKey, "pick"), zl.Sync, nil
}
