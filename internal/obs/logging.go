// Package obs contains observability utilities such as logging.
package obs

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// Logger is the global structured logger. It discards everything until
// InitLogger is called, so packages can log unconditionally.
var Logger = slog.New(slog.DiscardHandler)

// InitLogger points Logger at a JSON log file. The terminal belongs to the
// UI, so an empty path keeps logging disabled. The returned func closes the file.
func InitLogger(path, level string) (func() error, error) {
	if path == "" {
		Logger = slog.New(slog.DiscardHandler)
		return func() error { return nil }, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	h := slog.NewJSONHandler(f, &slog.HandlerOptions{Level: ParseLevel(level)})
	Logger = slog.New(h)
	return f.Close, nil
}

// ParseLevel maps debug/info/warn/error to a slog level, defaulting to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}
