package services

import "context"

type contextKey string

const (
	sessionIDKey contextKey = "session_id"
	turnKey      contextKey = "turn"
	requestIDKey contextKey = "request_id"
)

// WithSessionID annotates context with the chat session identifier.
func WithSessionID(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, sessionIDKey, id)
}

// SessionIDFromContext extracts the chat session identifier if present.
func SessionIDFromContext(ctx context.Context) (string, bool) {
	if v, ok := ctx.Value(sessionIDKey).(string); ok && v != "" {
		return v, true
	}
	return "", false
}

// WithTurn annotates context with the 1-based utterance number.
func WithTurn(ctx context.Context, turn int) context.Context {
	if turn <= 0 {
		return ctx
	}
	return context.WithValue(ctx, turnKey, turn)
}

// TurnFromContext returns the utterance number if present.
func TurnFromContext(ctx context.Context) (int, bool) {
	v, ok := ctx.Value(turnKey).(int)
	return v, ok && v > 0
}

// WithRequestID annotates context with a correlation identifier.
func WithRequestID(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromContext extracts the correlation identifier if present.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	if v, ok := ctx.Value(requestIDKey).(string); ok && v != "" {
		return v, true
	}
	return "", false
}
