// Package logging provides module-scoped leveled loggers for admonitions.
//
// The Logger contract mirrors github.com/goliatone/go-logger so the glog
// backed Provider plugs in without translation. Packages that receive no
// logger fall back to NoOp.
package logging

import "maps"

// Module names used across the tool.
const (
	ModuleCore   = "admonitions.core"
	ModuleCorpus = "admonitions.corpus"
	ModuleMCP    = "admonitions.mcp"
)

// Logger is the leveled, structured logging contract.
// Args are alternating key/value pairs.
type Logger interface {
	Trace(msg string, args ...any)
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	WithFields(fields map[string]any) Logger
}

// Provider hands out named loggers.
type Provider interface {
	GetLogger(name string) Logger
}

// ModuleLogger returns the named logger from provider with a "module" field
// attached. A nil provider yields NoOp.
func ModuleLogger(provider Provider, module string) Logger {
	if provider == nil {
		return NoOp()
	}
	logger := provider.GetLogger(module)
	if logger == nil {
		return NoOp()
	}
	return logger.WithFields(map[string]any{"module": module})
}

// WithFields attaches a copy of fields to logger. Nil loggers and empty
// field sets are returned as-is.
func WithFields(logger Logger, fields map[string]any) Logger {
	if logger == nil || len(fields) == 0 {
		return logger
	}
	copied := make(map[string]any, len(fields))
	maps.Copy(copied, fields)
	return logger.WithFields(copied)
}

// NoOp returns a logger that drops every entry.
func NoOp() Logger {
	return noopLogger{}
}

type noopLogger struct{}

func (noopLogger) Trace(string, ...any) {}
func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}

func (n noopLogger) WithFields(map[string]any) Logger { return n }
