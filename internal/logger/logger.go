// Package logger builds the slog.Logger used by the client.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

const (
	// FormatText человекочитаемый вывод (по умолчанию для CLI)
	FormatText = "text"
	// FormatJSON структурированный JSON вывод
	FormatJSON = "json"
)

// ParseLevel разбирает уровень логирования: debug, info, warn, error
func ParseLevel(level string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return l, nil
}

// Setup создает slog.Logger с выводом в w.
// format: "text" или "json".
func Setup(w io.Writer, level, format string) (*slog.Logger, error) {
	if w == nil {
		w = os.Stderr
	}

	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: lvl}

	var handler slog.Handler
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", FormatText:
		handler = slog.NewTextHandler(w, opts)
	case FormatJSON:
		handler = slog.NewJSONHandler(w, opts)
	default:
		return nil, fmt.Errorf("invalid log format %q: expected %q or %q", format, FormatText, FormatJSON)
	}

	return slog.New(handler), nil
}

// SetupDefault настраивает логгер и делает его глобальным
func SetupDefault(w io.Writer, level, format string) (*slog.Logger, error) {
	logger, err := Setup(w, level, format)
	if err != nil {
		return nil, err
	}
	slog.SetDefault(logger)
	return logger, nil
}
