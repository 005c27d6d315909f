// Package observability provides the process-wide loggers.
//
// The CLI logger writes human-oriented console output to stderr so stdout
// stays clean for JSONL/document output. The service logger is structured
// JSON for the inspector server.
package observability

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// CLILogger is the logger used by CLI commands.
//
// Initialized at package load with console encoding at info level; use
// SetCLILevel to raise or lower verbosity from flags.
var CLILogger = newCLILogger()

var cliLevel = zap.NewAtomicLevelAt(zapcore.InfoLevel)

func newCLILogger() *zap.Logger {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = cliLevel
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.DisableStacktrace = true
	cfg.DisableCaller = true

	logger, err := cfg.Build()
	if err != nil {
		// Development config with static options cannot fail to build;
		// fall back to a no-op logger rather than panic at init.
		return zap.NewNop()
	}
	return logger
}

// SetCLILevel adjusts the CLI logger's level (e.g. from a --verbose flag).
func SetCLILevel(level zapcore.Level) {
	cliLevel.SetLevel(level)
}

// NewServiceLogger builds a structured JSON logger for the inspector
// service at the given level ("debug", "info", "warn", "error").
func NewServiceLogger(level string) (*zap.Logger, error) {
	parsed, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(parsed)
	cfg.OutputPaths = []string{"stderr"}
	return cfg.Build()
}
