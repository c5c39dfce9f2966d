package prefs

import "strings"

// Result is a partial, per-stage extraction: each field is either present
// with a value or absent. Results are values; With returns a modified copy.
type Result struct {
	values  [fieldCount]string
	present [fieldCount]bool
}

// With returns a copy of r with field set to value.
func (r Result) With(field Field, value string) Result {
	if !field.valid() {
		return r
	}
	r.values[field] = value
	r.present[field] = true
	return r
}

// Get returns the field's value and whether the stage produced one.
func (r Result) Get(field Field) (string, bool) {
	if !field.valid() || !r.present[field] {
		return "", false
	}
	return r.values[field], true
}

// Has reports whether field is present.
func (r Result) Has(field Field) bool {
	_, ok := r.Get(field)
	return ok
}

// Missing lists the absent fields in canonical order.
func (r Result) Missing() []Field {
	var out []Field
	for _, f := range Fields {
		if !r.present[f] {
			out = append(out, f)
		}
	}
	return out
}

// Complete reports whether every field is present.
func (r Result) Complete() bool {
	return len(r.Missing()) == 0
}

// Len reports how many fields are present.
func (r Result) Len() int {
	n := 0
	for _, ok := range r.present {
		if ok {
			n++
		}
	}
	return n
}

// Map returns the present fields keyed by snake name.
func (r Result) Map() map[string]string {
	out := make(map[string]string, r.Len())
	for _, f := range Fields {
		if r.present[f] {
			out[f.Name()] = r.values[f]
		}
	}
	return out
}

func (r Result) String() string {
	parts := make([]string, 0, fieldCount)
	for _, f := range Fields {
		if r.present[f] {
			parts = append(parts, f.Name()+"="+r.values[f])
		}
	}
	return "{" + strings.Join(parts, " ") + "}"
}
