package app

import (
	"io"
	"log/slog"
	"strings"

	"github.com/npillmayer/sarf/internal/config"
)

// NewLogger returns the logger of the sarf commands and makes it the slog
// default. Records go to w, as JSON lines for format "json" and as
// key=value text with call sites otherwise.
func NewLogger(cfg config.LogConfig, w io.Writer) *slog.Logger {
	text := !strings.EqualFold(cfg.Format, "json")
	opts := &slog.HandlerOptions{Level: parseLevel(cfg.Level), AddSource: text}
	var h slog.Handler = slog.NewJSONHandler(w, opts)
	if text {
		h = slog.NewTextHandler(w, opts)
	}
	logger := slog.New(h)
	slog.SetDefault(logger)
	return logger
}

// parseLevel falls back to info for unknown names.
func parseLevel(s string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo
	}
	return l
}
