package fallback

import (
	"fmt"
	"strings"

	"krk/internal/prefs"
	"krk/internal/vocab"
)

const instructions = `You are KRK, a movie preference assistant.
Translate what the user says about the movies they want into assignments.
You may reply conversationally, but every preference you understand must be
written on its own line in exactly this form:
ACTOR_ID = "<id>"
GENRE_ID = "<id>"
LANGUAGE = "<ISO 639-1 code>"
DATE_FROM = "YYYY-MM-DD"
DATE_TO = "YYYY-MM-DD"
Only these five keys are allowed. Use ids from the tables below. Leave out any
key the user did not mention.
Example:
ACTOR_ID = "35070"
GENRE_ID = "28"
LANGUAGE = "hi"
DATE_FROM = "2000-01-01"
DATE_TO = "2010-12-31"`

// BuildPrompt assembles the instruction block, the three vocabulary tables,
// the current preferences and the utterance.
func BuildPrompt(text string, v *vocab.Vocabulary, prior prefs.Session) string {
	var b strings.Builder
	b.WriteString(instructions)
	b.WriteString("\n")
	for _, kind := range vocab.Kinds {
		fmt.Fprintf(&b, "\n%s:\n", strings.ToUpper(kind.String()))
		if lines := v.Lines(kind); lines != "" {
			b.WriteString(lines)
			b.WriteString("\n")
		}
	}
	b.WriteString("\nCURRENT PREFERENCES:\n")
	for _, f := range prefs.Fields {
		fmt.Fprintf(&b, "%s = %q\n", f.Key(), prior.Get(f))
	}
	b.WriteString("\nUser: ")
	b.WriteString(strings.TrimSpace(text))
	b.WriteString("\nKRK:")
	return b.String()
}
