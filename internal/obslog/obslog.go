// Package obslog builds the structured logger shared by cmd/jqstream. It
// is never imported by pkg/jqstream or pkg/jqchain: the core streams stay
// silent, and logging is strictly a CLI/collaborator concern layered on
// top of them.
package obslog

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a zap.Logger for cmd/jqstream. verbose selects development
// mode (human-readable console encoding, debug level enabled); otherwise
// the logger uses production JSON encoding at info level, matching the
// level split a CLI tool wants between interactive use and scripted runs.
func New(verbose bool) (*zap.Logger, error) {
	if verbose {
		cfg := zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		logger, err := cfg.Build()
		if err != nil {
			return nil, err
		}
		return logger, nil
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	logger, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return logger, nil
}

// Nop returns a logger that discards everything, for code paths (like
// tests) that need an *zap.Logger but not its output.
func Nop() *zap.Logger {
	return zap.NewNop()
}
