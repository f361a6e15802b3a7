package configs

import (
	"io"
	"log/slog"
	"strings"
)

// Logger configures the process logger.
type Logger struct {
	// Level accepts slog level names with an optional offset, e.g. "debug"
	// or "info+2". "warning" and "err" are aliases.
	Level string `env:"LEVEL" envDefault:"info"`
	// Format is "json" or "text". Anything else means text.
	Format    string `env:"FORMAT" envDefault:"text"`
	AddSource bool   `env:"ADD_SOURCE"`
}

// SlogLevel parses Level. Unparseable values mean info.
func (c Logger) SlogLevel() slog.Level {
	name := strings.ToLower(strings.TrimSpace(c.Level))
	switch {
	case strings.HasPrefix(name, "warning"):
		name = "warn" + strings.TrimPrefix(name, "warning")
	case strings.HasPrefix(name, "err") && !strings.HasPrefix(name, "error"):
		name = "error" + strings.TrimPrefix(name, "err")
	}
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(name)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}

// Handler builds the slog handler writing to w.
func (c Logger) Handler(w io.Writer) slog.Handler {
	opts := &slog.HandlerOptions{Level: c.SlogLevel(), AddSource: c.AddSource}
	if strings.EqualFold(c.Format, "json") {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}
