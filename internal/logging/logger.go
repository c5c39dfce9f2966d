package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"krk/internal/config"
)

// Options describes logger construction parameters.
type Options struct {
	Level  string
	Format string
	// Output is a file path, "stdout", or "stderr". Empty means stdout.
	Output      string
	Development bool
	// SessionID, when set, is attached to every record.
	SessionID string
	// Console mirrors warnings and errors to stderr in the console format.
	Console bool
}

// New constructs a slog logger using the provided options.
func New(opts Options) (*slog.Logger, error) {
	level := parseLevel(opts.Level)
	out, err := openOutput(opts.Output)
	if err != nil {
		return nil, err
	}
	addSource := opts.Development || level <= slog.LevelDebug

	var handler slog.Handler
	switch strings.ToLower(strings.TrimSpace(opts.Format)) {
	case "", "console":
		handler = newConsoleHandler(out, level, addSource)
	case "json":
		handler = newJSONHandler(out, level, addSource)
	default:
		return nil, fmt.Errorf("log format: unsupported value %q", opts.Format)
	}

	if opts.Console && out != os.Stderr {
		handler = newTeeHandler(
			sink{handler: handler, min: everything},
			sink{handler: newConsoleHandler(os.Stderr, level, false), min: slog.LevelWarn},
		)
	}
	if id := strings.TrimSpace(opts.SessionID); id != "" {
		handler = handler.WithAttrs([]slog.Attr{slog.String(FieldSessionID, id)})
	}
	return slog.New(handler), nil
}

// NewFromConfig creates a logger writing to <log_dir>/krk.log, or to stderr
// when no log directory is configured.
func NewFromConfig(cfg *config.Config, sessionID string) (*slog.Logger, error) {
	if cfg == nil {
		return New(Options{Output: "stderr", SessionID: sessionID})
	}
	output := "stderr"
	if cfg.Paths.LogDir != "" {
		if err := os.MkdirAll(cfg.Paths.LogDir, 0o755); err != nil {
			return nil, fmt.Errorf("ensure log directory: %w", err)
		}
		output = cfg.LogPath()
	}
	return New(Options{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Output:    output,
		SessionID: sessionID,
		Console:   cfg.Logging.Console,
	})
}

func parseLevel(level string) slog.Level {
	var l slog.Level
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "warning":
		return slog.LevelWarn
	case "":
		return slog.LevelInfo
	}
	if err := l.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		return slog.LevelInfo
	}
	return l
}

func openOutput(target string) (io.Writer, error) {
	switch target = strings.TrimSpace(target); target {
	case "", "stdout":
		return os.Stdout, nil
	case "stderr":
		return os.Stderr, nil
	}
	file, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o664)
	if err != nil {
		return nil, fmt.Errorf("open log file %s: %w", target, err)
	}
	return file, nil
}
