package prefs

import (
	"golang.org/x/text/cases"
	textlang "golang.org/x/text/language"

	"krk/internal/language"
	"krk/internal/vocab"
)

// Line is one row of the human-readable preference summary.
type Line struct {
	Field Field
	Value string
	Label string
}

// Describe renders s for display, resolving ids back to their vocabulary
// aliases. v may be nil.
func Describe(s Session, v *vocab.Vocabulary) []Line {
	title := cases.Title(textlang.Und)
	lines := make([]Line, 0, fieldCount)
	for _, f := range Fields {
		value := s.Get(f)
		line := Line{Field: f, Value: value}
		switch f {
		case ActorID:
			line.Label = aliasLabel(v, vocab.KindActor, value, title)
		case GenreID:
			line.Label = aliasLabel(v, vocab.KindGenre, value, title)
		case Language:
			line.Label = language.DisplayName(value)
		}
		lines = append(lines, line)
	}
	return lines
}

func aliasLabel(v *vocab.Vocabulary, kind vocab.Kind, id string, title cases.Caser) string {
	if id == "" {
		return "Any"
	}
	if alias, ok := v.Alias(kind, id); ok {
		return title.String(alias)
	}
	return ""
}
