package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"slices"
	"strings"

	glog "github.com/goliatone/go-logger/glog"
)

const levelTrace = glog.LevelTrace

// SlogLogger is a Provider that writes to an explicit writer. Commands whose
// stdout carries a document or the MCP stream use it to keep diagnostics on
// stderr.
type SlogLogger struct {
	root *slog.Logger
}

// NewSlogLogger builds a provider writing to w with the level and format of
// cfg. Console output uses the go-logger color handler.
func NewSlogLogger(w io.Writer, cfg Config) (*SlogLogger, error) {
	level, err := slogLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	switch strings.ToLower(strings.TrimSpace(cfg.Format)) {
	case "", "console", "pretty":
		handler = glog.NewColorConsoleHandler(w, opts)
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	default:
		return nil, fmt.Errorf("logging: unsupported format %q", cfg.Format)
	}
	return &SlogLogger{root: slog.New(handler)}, nil
}

// GetLogger implements Provider.
func (p *SlogLogger) GetLogger(name string) Logger {
	if p == nil || p.root == nil {
		return NoOp()
	}
	if name = strings.TrimSpace(name); name == "" {
		return slogAdapter{inner: p.root}
	}
	return slogAdapter{inner: p.root.With("logger", name)}
}

type slogAdapter struct {
	inner *slog.Logger
}

func (l slogAdapter) Trace(msg string, args ...any) {
	l.inner.Log(context.Background(), levelTrace, msg, args...)
}
func (l slogAdapter) Debug(msg string, args ...any) { l.inner.Debug(msg, args...) }
func (l slogAdapter) Info(msg string, args ...any)  { l.inner.Info(msg, args...) }
func (l slogAdapter) Warn(msg string, args ...any)  { l.inner.Warn(msg, args...) }
func (l slogAdapter) Error(msg string, args ...any) { l.inner.Error(msg, args...) }

// WithFields attaches fields in key order so output is stable.
func (l slogAdapter) WithFields(fields map[string]any) Logger {
	if len(fields) == 0 {
		return l
	}
	args := make([]any, 0, len(fields)*2)
	for _, key := range slices.Sorted(maps.Keys(fields)) {
		args = append(args, key, fields[key])
	}
	return slogAdapter{inner: l.inner.With(args...)}
}

func slogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return levelTrace, nil
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "", "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("logging: unsupported level %q", level)
	}
}
