package config

import (
	"io"
	"log/slog"
)

var levels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// NewLogger creates a slog.Logger writing to w. It does not set the global
// logger. Unknown levels fall back to info, unknown formats to text.
func NewLogger(levelStr, formatStr string, w io.Writer) *slog.Logger {
	level, ok := levels[levelStr]
	if !ok {
		level = slog.LevelInfo
	}

	handlerOpts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler

	if formatStr == "json" {
		handler = slog.NewJSONHandler(w, handlerOpts)
	} else {
		handler = slog.NewTextHandler(w, handlerOpts)
	}

	return slog.New(handler)
}

// Logger builds the logger described by c.Log.
func (c Config) Logger(w io.Writer) *slog.Logger {
	return NewLogger(c.Log.Level, c.Log.Format, w)
}
