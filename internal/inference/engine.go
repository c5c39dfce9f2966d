package inference

import (
	"log/slog"
	"strings"

	"krk/internal/daterange"
	"krk/internal/logging"
	"krk/internal/prefs"
	"krk/internal/textutil"
	"krk/internal/vocab"
)

// Similarity cutoffs for the fuzzy fallbacks. Single words are more
// ambiguous than two-word phrases, so the last-word retry is stricter.
const (
	ActorPhraseCutoff = 0.82
	ActorWordCutoff   = 0.90
	GenreWordCutoff   = 0.80
)

// Engine runs local inference against a fixed vocabulary.
type Engine struct {
	logger *slog.Logger

	actors    *vocab.Mapping
	genres    *vocab.Mapping
	languages *vocab.Mapping

	actorsByLength []string
	genresByLength []string
	actorAliases   []string
	genreAliases   []string
	languageOrder  []string
}

// New prepares an engine for v. Alias orderings are computed once because
// the vocabulary does not change after load.
func New(v *vocab.Vocabulary, logger *slog.Logger) *Engine {
	actors := v.Mapping(vocab.KindActor)
	genres := v.Mapping(vocab.KindGenre)
	languages := v.Mapping(vocab.KindLanguage)
	return &Engine{
		logger:         logging.NewComponentLogger(logger, "inference"),
		actors:         actors,
		genres:         genres,
		languages:      languages,
		actorsByLength: actors.AliasesByLength(),
		genresByLength: genres.AliasesByLength(),
		actorAliases:   actors.Aliases(),
		genreAliases:   genres.Aliases(),
		languageOrder:  languages.Aliases(),
	}
}

// Infer returns the fields text resolves to. Absent fields mean unknown.
func (e *Engine) Infer(text string) prefs.Result {
	lowered := strings.ToLower(text)
	var out prefs.Result

	actorID, actorSource := e.inferActor(lowered)
	if actorID != "" {
		out = out.With(prefs.ActorID, actorID)
	}
	genreID, genreSource := e.inferGenre(lowered)
	if genreID != "" {
		out = out.With(prefs.GenreID, genreID)
	}
	if alias, ok := firstContained(lowered, e.languageOrder); ok {
		id, _ := e.languages.Lookup(alias)
		out = out.With(prefs.Language, id)
	}
	if r, ok := daterange.Resolve(lowered); ok {
		out = out.With(prefs.DateFrom, r.From).With(prefs.DateTo, r.To)
		e.logger.Debug("era resolved",
			logging.String(logging.FieldEventType, "era_resolved"),
			logging.String("era_kind", string(r.Kind)),
			logging.String("date_from", r.From),
			logging.String("date_to", r.To),
		)
	}

	e.logger.Debug("local inference complete",
		logging.String(logging.FieldEventType, "local_inference_complete"),
		logging.String("actor_source", actorSource),
		logging.String("genre_source", genreSource),
		logging.Int("resolved_fields", out.Len()),
		logging.String("result", out.String()),
	)
	return out
}

func (e *Engine) inferActor(text string) (string, string) {
	if alias, ok := firstContained(text, e.actorsByLength); ok {
		id, _ := e.actors.Lookup(alias)
		return id, "substring"
	}
	for _, token := range textutil.WordPairs(text) {
		if match, ok := textutil.CloseMatch(token, e.actorAliases, ActorPhraseCutoff); ok {
			e.logFuzzy("actor", token, match, ActorPhraseCutoff)
			id, _ := e.actors.Lookup(match.Candidate)
			return id, "fuzzy_phrase"
		}
		last := textutil.LastWord(token)
		if match, ok := textutil.CloseMatch(last, e.actorAliases, ActorWordCutoff); ok {
			e.logFuzzy("actor", last, match, ActorWordCutoff)
			id, _ := e.actors.Lookup(match.Candidate)
			return id, "fuzzy_word"
		}
	}
	return "", "none"
}

func (e *Engine) inferGenre(text string) (string, string) {
	if alias, ok := firstContained(text, e.genresByLength); ok {
		id, _ := e.genres.Lookup(alias)
		return id, "substring"
	}
	for _, word := range textutil.Words(text) {
		if match, ok := textutil.CloseMatch(word, e.genreAliases, GenreWordCutoff); ok {
			e.logFuzzy("genre", word, match, GenreWordCutoff)
			id, _ := e.genres.Lookup(match.Candidate)
			return id, "fuzzy_word"
		}
	}
	return "", "none"
}

func (e *Engine) logFuzzy(field, token string, match textutil.Match, cutoff float64) {
	e.logger.Debug("fuzzy alias match",
		logging.String(logging.FieldDecisionType, field+"_fuzzy_match"),
		logging.String("token", token),
		logging.String("alias", match.Candidate),
		logging.Float64("score", match.Score),
		logging.Float64("cutoff", cutoff),
	)
}

func firstContained(text string, aliases []string) (string, bool) {
	for _, alias := range aliases {
		if strings.Contains(text, alias) {
			return alias, true
		}
	}
	return "", false
}
