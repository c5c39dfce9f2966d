package logging

import (
	"context"
	"errors"
	"log/slog"
)

// NoopHandler discards all log output.
type NoopHandler struct{}

func (NoopHandler) Enabled(context.Context, slog.Level) bool { return false }

func (NoopHandler) Handle(context.Context, slog.Record) error { return nil }

func (NoopHandler) WithAttrs([]slog.Attr) slog.Handler { return NoopHandler{} }

func (NoopHandler) WithGroup(string) slog.Handler { return NoopHandler{} }

// sink is one destination of a tee with its own minimum level on top of
// whatever the handler itself enforces.
type sink struct {
	handler slog.Handler
	min     slog.Level
}

func (s sink) enabled(ctx context.Context, level slog.Level) bool {
	return level >= s.min && s.handler.Enabled(ctx, level)
}

// teeHandler writes each record to every sink that accepts its level. The log
// file sink takes everything; the stderr mirror only takes warnings.
type teeHandler struct {
	sinks []sink
}

func newTeeHandler(sinks ...sink) slog.Handler {
	kept := make([]sink, 0, len(sinks))
	for _, s := range sinks {
		if s.handler != nil {
			kept = append(kept, s)
		}
	}
	switch {
	case len(kept) == 0:
		return NoopHandler{}
	case len(kept) == 1 && kept[0].min == everything:
		return kept[0].handler
	}
	return &teeHandler{sinks: kept}
}

func (h *teeHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, s := range h.sinks {
		if s.enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (h *teeHandler) Handle(ctx context.Context, record slog.Record) error {
	var errs []error
	for _, s := range h.sinks {
		if !s.enabled(ctx, record.Level) {
			continue
		}
		if err := s.handler.Handle(ctx, record.Clone()); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (h *teeHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return h.derive(func(next slog.Handler) slog.Handler { return next.WithAttrs(attrs) })
}

func (h *teeHandler) WithGroup(name string) slog.Handler {
	return h.derive(func(next slog.Handler) slog.Handler { return next.WithGroup(name) })
}

func (h *teeHandler) derive(fn func(slog.Handler) slog.Handler) slog.Handler {
	sinks := make([]sink, len(h.sinks))
	for i, s := range h.sinks {
		sinks[i] = sink{handler: fn(s.handler), min: s.min}
	}
	return &teeHandler{sinks: sinks}
}

// everything is the sink level that accepts any record.
const everything = slog.Level(-1 << 10)
