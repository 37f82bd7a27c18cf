// Package logging builds the slog logger used by the formtree commands.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"
)

// Config selects level, handler format and destination.
type Config struct {
	Level  string // debug, info, warn or error
	Format string // text or json
	Output io.Writer
}

// DefaultConfig returns a warn level text configuration writing to out.
// Commands print their results on stdout, so logs go to stderr.
func DefaultConfig(out io.Writer) Config {
	return Config{Level: "warn", Format: "text", Output: out}
}

// New builds a logger from cfg. Every record carries a run_id so the lines
// of one invocation can be told apart in shared logs.
func New(cfg Config) (*slog.Logger, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler

	switch strings.ToLower(cfg.Format) {
	case "text", "":
		handler = slog.NewTextHandler(cfg.Output, opts)
	case "json":
		handler = slog.NewJSONHandler(cfg.Output, opts)
	default:
		return nil, fmt.Errorf("unknown log format %q (want text or json)", cfg.Format)
	}

	return slog.New(handler).With("run_id", uuid.NewString()), nil
}

// ParseLevel maps a level name to a slog.Level.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning", "":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level %q", name)
	}
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}
