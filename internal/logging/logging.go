package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger wraps a sugared zap logger configured for CLI use.
type Logger struct {
	*zap.SugaredLogger
}

// NewLogger builds a console logger writing to stderr. With verbose set,
// debug-level messages and caller information are included.
func NewLogger(verbose bool) *Logger {
	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.DisableStacktrace = true
	if !verbose {
		cfg.DisableCaller = true
	}

	logger, err := cfg.Build()
	if err != nil {
		// zap only fails on invalid configuration; fall back to a no-op
		// logger rather than aborting the CLI.
		return &Logger{zap.NewNop().Sugar()}
	}

	return &Logger{logger.Sugar()}
}

// NewNop returns a logger that discards everything. Used in tests.
func NewNop() *Logger {
	return &Logger{zap.NewNop().Sugar()}
}

// Close flushes buffered log entries.
func (l *Logger) Close() {
	_ = l.Sync()
}
