// Package elog wraps a zap logger for eta's internal, structured
// diagnostics: "read source file", "parse completed with N errors",
// "evaluating N statement(s)". This is strictly separate from the pure
// (source, position, message) -> string diagnostic banner in package
// diag, which never logs and is never routed through this package.
//
// Grounded on FollowTheProcess-spok's logger package: same
// interface-behind-zap shape, same verbose-toggles-level behavior.
package elog

import "go.uber.org/zap"

// Logger is the interface cmd/eta and repl log through.
type Logger interface {
	Debug(format string, args ...any)
	Info(format string, args ...any)
	Sync() error
}

// zapLogger is a Logger backed by zap's development console encoder.
type zapLogger struct {
	inner *zap.SugaredLogger
}

// New builds a Logger writing to stderr. Debug-level lines are only
// emitted when verbose is true; Info is always emitted.
func New(verbose bool) (Logger, error) {
	level := zap.InfoLevel
	if verbose {
		level = zap.DebugLevel
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.DisableCaller = true
	cfg.DisableStacktrace = true
	logger, err := cfg.Build(zap.IncreaseLevel(level))
	if err != nil {
		return nil, err
	}

	return &zapLogger{inner: logger.Sugar()}, nil
}

func (z *zapLogger) Debug(format string, args ...any) { z.inner.Debugf(format, args...) }
func (z *zapLogger) Info(format string, args ...any)  { z.inner.Infof(format, args...) }
func (z *zapLogger) Sync() error                      { return z.inner.Sync() }

// Noop is a Logger that discards everything; used where a Logger is
// required but no --verbose flag applies (e.g. library-style callers).
type Noop struct{}

func (Noop) Debug(string, ...any) {}
func (Noop) Info(string, ...any)  {}
func (Noop) Sync() error          { return nil }
