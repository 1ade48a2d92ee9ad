package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"taskbridge/config"
)

// Logger is a thin wrapper around slog. The zero value logs through slog.Default().
type Logger struct {
	sl *slog.Logger
}

func NewLogger(cfg *config.Config) (*Logger, error) {
	return newLogger(cfg, os.Stdout)
}

func newLogger(cfg *config.Config, w io.Writer) (*Logger, error) {
	level, err := parseLevel(cfg.LoggerMode.Level)
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: level, AddSource: cfg.LoggerMode.Development}

	var h slog.Handler
	if cfg.LoggerMode.Development && !cfg.LoggerMode.Prod {
		h = slog.NewTextHandler(w, opts)
	} else {
		h = slog.NewJSONHandler(w, opts)
	}
	return &Logger{sl: slog.New(h)}, nil
}

func parseLevel(lvl string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(lvl)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", lvl)
	}
}

func (l *Logger) base() *slog.Logger {
	if l == nil || l.sl == nil {
		return slog.Default()
	}
	return l.sl
}

// Slog exposes the underlying slog logger.
func (l *Logger) Slog() *slog.Logger { return l.base() }

func (l *Logger) With(args ...any) *Logger {
	return &Logger{sl: l.base().With(args...)}
}

func (l *Logger) Debug(msg string, args ...any) { l.base().Debug(msg, args...) }
func (l *Logger) Info(msg string, args ...any)  { l.base().Info(msg, args...) }
func (l *Logger) Warn(msg string, args ...any)  { l.base().Warn(msg, args...) }
func (l *Logger) Error(msg string, args ...any) { l.base().Error(msg, args...) }

func (l *Logger) Infof(format string, args ...any) {
	l.base().Info(fmt.Sprintf(format, args...))
}

func (l *Logger) Errorf(format string, args ...any) {
	l.base().Error(fmt.Sprintf(format, args...))
}
