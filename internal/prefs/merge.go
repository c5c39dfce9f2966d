package prefs

import (
	"strings"

	"krk/internal/daterange"
	"krk/internal/language"
)

// Sanitize drops or normalizes untrusted values from model output. Languages
// are reduced to ISO 639-1 and discarded when unrecognizable; dates that are
// not valid YYYY-MM-DD are discarded. Ids are trimmed and otherwise opaque.
func Sanitize(r Result) Result {
	var out Result
	for _, f := range Fields {
		value, ok := r.Get(f)
		if !ok {
			continue
		}
		value = strings.TrimSpace(value)
		switch f {
		case Language:
			if value != "" {
				value = language.ToISO2(value)
				if value == "" {
					continue
				}
			}
		case DateFrom, DateTo:
			if value != "" && !daterange.ValidDate(value) {
				continue
			}
		}
		out = out.With(f, value)
	}
	return out
}

// Merge folds one turn into current. For every field the first non-empty
// value of parsed, inferred, current wins, so an empty or absent resolution
// never clears a known value. parsed is sanitized first. When the resulting
// dates are out of order the model's dates are ignored, and if inference
// still leaves them inverted the current dates are kept.
func Merge(parsed, inferred Result, current Session) Session {
	parsed = Sanitize(parsed)

	next := current
	for _, f := range Fields {
		if value := firstNonEmpty(f, parsed, inferred); value != "" {
			next.set(f, value)
		}
	}

	if !daterange.Ordered(next.DateFrom, next.DateTo) {
		next.DateFrom, next.DateTo = current.DateFrom, current.DateTo
		for _, f := range []Field{DateFrom, DateTo} {
			if value := firstNonEmpty(f, inferred); value != "" {
				next.set(f, value)
			}
		}
		if !daterange.Ordered(next.DateFrom, next.DateTo) {
			next.DateFrom, next.DateTo = current.DateFrom, current.DateTo
		}
	}
	return next
}

func firstNonEmpty(field Field, results ...Result) string {
	for _, r := range results {
		if value, ok := r.Get(field); ok {
			if value = strings.TrimSpace(value); value != "" {
				return value
			}
		}
	}
	return ""
}

// Changed lists the fields whose values differ between before and after.
func Changed(before, after Session) []Field {
	var out []Field
	for _, f := range Fields {
		if before.Get(f) != after.Get(f) {
			out = append(out, f)
		}
	}
	return out
}
