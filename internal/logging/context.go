package logging

import (
	"context"
	"log/slog"

	"krk/internal/services"
)

const (
	// FieldComponent is the standardized structured logging key for component names.
	FieldComponent = "component"
	// FieldTurn is the standardized structured logging key for the 1-based chat turn number.
	FieldTurn = "turn"
	// FieldCorrelationID is the standardized structured logging key for per-turn correlation identifiers.
	FieldCorrelationID = "correlation_id"
	// FieldEventType names the kind of event a record describes.
	FieldEventType = "event_type"
	// FieldErrorHint tells the reader what to do next about a failure.
	FieldErrorHint = "error_hint"
	// FieldDecisionType names the choice a decision record explains.
	FieldDecisionType = "decision_type"
)

// ContextFields extracts standardized slog attributes from the provided context.
func ContextFields(ctx context.Context) []slog.Attr {
	if ctx == nil {
		return nil
	}
	fields := make([]slog.Attr, 0, 3)
	if id, ok := services.SessionIDFromContext(ctx); ok {
		fields = append(fields, slog.String(FieldSessionID, id))
	}
	if turn, ok := services.TurnFromContext(ctx); ok {
		fields = append(fields, slog.Int(FieldTurn, turn))
	}
	if rid, ok := services.RequestIDFromContext(ctx); ok {
		fields = append(fields, slog.String(FieldCorrelationID, rid))
	}
	return fields
}

// WithContext returns a logger augmented with structured fields derived from the supplied context.
func WithContext(ctx context.Context, logger *slog.Logger) *slog.Logger {
	if logger == nil {
		logger = NewNop()
	}
	fields := ContextFields(ctx)
	if len(fields) == 0 {
		return logger
	}
	return slog.New(logger.Handler().WithAttrs(fields))
}
