package pipeline

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"krk/internal/fallback"
	"krk/internal/inference"
	"krk/internal/logging"
	"krk/internal/prefs"
	"krk/internal/services"
)

// Turn records what happened to one utterance.
type Turn struct {
	ID           string
	Text         string
	Inferred     prefs.Result
	Parsed       prefs.Result
	RawOutput    string
	UsedFallback bool
	Before       prefs.Session
	After        prefs.Session
	Changed      []prefs.Field
	Duration     time.Duration
}

// Pipeline resolves utterances against a session.
type Pipeline struct {
	engine  *inference.Engine
	adapter *fallback.Adapter
	logger  *slog.Logger
}

// New builds a pipeline. A nil adapter runs local inference only.
func New(engine *inference.Engine, adapter *fallback.Adapter, logger *slog.Logger) *Pipeline {
	return &Pipeline{
		engine:  engine,
		adapter: adapter,
		logger:  logging.NewComponentLogger(logger, "pipeline"),
	}
}

// LocalOnly reports whether the pipeline runs without a model.
func (p *Pipeline) LocalOnly() bool {
	return p.adapter == nil
}

// Process resolves text and updates session in place. When the fallback
// fails the error is returned and session is left untouched.
func (p *Pipeline) Process(ctx context.Context, text string, session *prefs.Session) (Turn, error) {
	text = strings.TrimSpace(text)
	turn := Turn{ID: uuid.NewString(), Text: text, Before: *session}
	if text == "" {
		return turn, services.Wrap(services.ErrValidation, "pipeline", "process", "empty utterance", nil)
	}
	ctx = services.WithRequestID(ctx, turn.ID)
	logger := logging.WithContext(ctx, p.logger)
	start := time.Now()

	turn.Inferred = p.engine.Infer(text)
	complete := turn.Inferred.Complete()

	if !complete && p.adapter != nil {
		raw, err := p.adapter.Complete(ctx, text, *session)
		if err != nil {
			turn.Duration = time.Since(start)
			turn.After = *session
			logging.WarnWithContext(logger, "fallback failed; preferences unchanged", "fallback_failed",
				logging.Error(err),
				logging.String(logging.FieldErrorHint, "check the llm settings or run `krk llm ping`"),
				logging.String(logging.FieldImpact, "this utterance was not applied"),
			)
			return turn, err
		}
		turn.RawOutput = raw
		turn.Parsed = fallback.Parse(raw)
		turn.UsedFallback = true
	} else if !complete {
		logger.Debug("fallback skipped in local-only mode",
			logging.String(logging.FieldDecisionType, "fallback"),
			logging.Int("missing_fields", len(turn.Inferred.Missing())),
		)
	}

	*session = prefs.Merge(turn.Parsed, turn.Inferred, *session)
	turn.After = *session
	turn.Changed = prefs.Changed(turn.Before, turn.After)
	turn.Duration = time.Since(start)

	changed := make([]string, 0, len(turn.Changed))
	for _, f := range turn.Changed {
		changed = append(changed, f.Name())
	}
	logger.Info("preferences updated",
		logging.String(logging.FieldEventType, "turn_processed"),
		logging.Bool("used_fallback", turn.UsedFallback),
		logging.Int("inferred_fields", turn.Inferred.Len()),
		logging.Int("parsed_fields", turn.Parsed.Len()),
		logging.String("changed", strings.Join(changed, ",")),
		logging.Duration("duration", turn.Duration),
	)
	return turn, nil
}
