package fallback

import (
	"regexp"
	"strings"

	"krk/internal/prefs"
)

var assignmentPattern = regexp.MustCompile(`^(ACTOR_ID|GENRE_ID|LANGUAGE|DATE_FROM|DATE_TO)\s*=\s*["']?(.*?)["']?\s*$`)

// Parse extracts assignment lines from model output. Lines that do not fit
// `KEY = value` with an optional quote around the value are ignored, and a
// later assignment to the same key replaces an earlier one.
func Parse(raw string) prefs.Result {
	var out prefs.Result
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		m := assignmentPattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		field, ok := prefs.FieldForKey(m[1])
		if !ok {
			continue
		}
		out = out.With(field, m[2])
	}
	return out
}
