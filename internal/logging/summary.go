package logging

import (
	"log/slog"
	"strings"
	"time"
)

type summaryLine struct {
	label string
	value string
}

// priorityKeys are listed first, in this order, when present.
var priorityKeys = []string{
	FieldEventType,
	FieldDecisionType,
	"decision_result",
	"decision_reason",
	"error",
	FieldErrorHint,
	FieldImpact,
	"changed",
	"used_fallback",
	"missing",
	"provider",
	"model",
	"results",
	"status",
	"duration",
}

var labels = map[string]string{
	FieldEventType:    "Event",
	FieldDecisionType: "Decision",
	"decision_result": "Decision",
	"decision_reason": "Reason",
	FieldErrorHint:    "Hint",
	"used_fallback":   "Fallback",
	"llm":             "LLM",
	"tmdb_status":     "TMDB Status",
}

const maxErrorLen = 200

// summarize picks the fields worth showing at info level. Identifiers,
// paths, raw model text, and overly long values are counted as hidden.
func summarize(fields []field) ([]summaryLine, int) {
	ordered := make([]field, 0, len(fields))
	taken := make(map[string]bool, len(fields))
	for _, key := range priorityKeys {
		for _, f := range fields {
			if f.key == key {
				ordered = append(ordered, f)
				taken[key] = true
				break
			}
		}
	}
	for _, f := range fields {
		if !taken[f.key] {
			ordered = append(ordered, f)
		}
	}

	lines := make([]summaryLine, 0, len(ordered))
	hidden := 0
	for _, f := range ordered {
		if f.key == FieldComponent || f.key == FieldTurn {
			continue
		}
		if debugOnly(f.key) {
			hidden++
			continue
		}
		value := summaryValue(f.key, f.value)
		if len(value) > 120 && f.key != "error" && f.key != FieldErrorHint {
			hidden++
			continue
		}
		lines = append(lines, summaryLine{label: label(f.key), value: value})
	}
	return lines, hidden
}

func debugOnly(key string) bool {
	switch key {
	case FieldCorrelationID, FieldSessionID, "prompt", "raw_output", "score":
		return true
	}
	for _, suffix := range []string{"_id", "_path", "_dir"} {
		if strings.HasSuffix(key, suffix) {
			return true
		}
	}
	return false
}

func summaryValue(key string, v slog.Value) string {
	switch v.Kind() {
	case slog.KindBool:
		if v.Bool() {
			return "yes"
		}
		return "no"
	case slog.KindDuration:
		return v.Duration().Round(time.Millisecond).String()
	}
	s := formatValue(v)
	if key == "error" {
		s = strings.TrimSpace(s)
		if len(s) > maxErrorLen {
			s = s[:maxErrorLen] + "…"
		}
	}
	return s
}

// label turns snake_case keys into "Title Case" unless a fixed label exists.
func label(key string) string {
	if l, ok := labels[key]; ok {
		return l
	}
	words := strings.FieldsFunc(key, func(r rune) bool { return r == '_' || r == '-' || r == '.' })
	for i, w := range words {
		w = strings.ToLower(w)
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
