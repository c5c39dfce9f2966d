package fallback

import (
	"context"
	"log/slog"
	"time"

	"krk/internal/logging"
	"krk/internal/prefs"
	"krk/internal/services"
	"krk/internal/vocab"
)

// DefaultMaxTokens bounds the model's reply.
const DefaultMaxTokens = 200

// Completer is a text-completion backend.
type Completer interface {
	Complete(ctx context.Context, prompt string, maxTokens int) (string, error)
}

// CompleterFunc adapts a function to Completer.
type CompleterFunc func(ctx context.Context, prompt string, maxTokens int) (string, error)

// Complete calls f.
func (f CompleterFunc) Complete(ctx context.Context, prompt string, maxTokens int) (string, error) {
	return f(ctx, prompt, maxTokens)
}

// Adapter sends the constrained prompt to a Completer.
type Adapter struct {
	completer Completer
	vocab     *vocab.Vocabulary
	maxTokens int
	logger    *slog.Logger
}

// Option customizes an Adapter.
type Option func(*Adapter)

// WithMaxTokens overrides DefaultMaxTokens. Non-positive values are ignored.
func WithMaxTokens(n int) Option {
	return func(a *Adapter) {
		if n > 0 {
			a.maxTokens = n
		}
	}
}

// WithLogger sets the adapter logger.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Adapter) {
		a.logger = logger
	}
}

// NewAdapter builds an adapter. A nil completer yields a nil adapter, which
// callers treat as local-only mode.
func NewAdapter(completer Completer, v *vocab.Vocabulary, opts ...Option) *Adapter {
	if completer == nil {
		return nil
	}
	a := &Adapter{completer: completer, vocab: v, maxTokens: DefaultMaxTokens}
	for _, opt := range opts {
		if opt != nil {
			opt(a)
		}
	}
	a.logger = logging.NewComponentLogger(a.logger, "fallback")
	return a
}

// Complete returns the model's raw reply to text. Transport failures are
// returned wrapped with services.ErrExternalTool and are not retried here.
func (a *Adapter) Complete(ctx context.Context, text string, prior prefs.Session) (string, error) {
	prompt := BuildPrompt(text, a.vocab, prior)
	logger := logging.WithContext(ctx, a.logger)
	logger.Debug("requesting model completion",
		logging.String(logging.FieldEventType, "fallback_request"),
		logging.Int("prompt_chars", len(prompt)),
		logging.Int("max_tokens", a.maxTokens),
	)

	start := time.Now()
	raw, err := a.completer.Complete(ctx, prompt, a.maxTokens)
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", services.Wrap(services.ErrExternalTool, "fallback", "complete", "", err)
	}
	logger.Debug("model completion received",
		logging.String(logging.FieldEventType, "fallback_response"),
		logging.Duration("latency", time.Since(start)),
		logging.Int("response_chars", len(raw)),
	)
	return raw, nil
}
