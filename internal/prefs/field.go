package prefs

import (
	"fmt"
	"strings"
)

// Field is one of the five preference slots.
type Field int

const (
	ActorID Field = iota
	GenreID
	Language
	DateFrom
	DateTo

	fieldCount
)

// Fields lists every field in canonical order.
var Fields = [fieldCount]Field{ActorID, GenreID, Language, DateFrom, DateTo}

var (
	fieldKeys  = [fieldCount]string{"ACTOR_ID", "GENRE_ID", "LANGUAGE", "DATE_FROM", "DATE_TO"}
	fieldNames = [fieldCount]string{"actor_id", "genre_id", "language", "date_from", "date_to"}
)

// Key is the upper-case assignment key used in model output.
func (f Field) Key() string {
	if !f.valid() {
		return ""
	}
	return fieldKeys[f]
}

// Name is the snake_case name used in logs and exports.
func (f Field) Name() string {
	if !f.valid() {
		return ""
	}
	return fieldNames[f]
}

func (f Field) String() string {
	if !f.valid() {
		return fmt.Sprintf("field(%d)", int(f))
	}
	return fieldNames[f]
}

func (f Field) valid() bool {
	return f >= 0 && f < fieldCount
}

// FieldForKey resolves an assignment key or snake name, case-insensitively.
func FieldForKey(key string) (Field, bool) {
	key = strings.TrimSpace(key)
	for _, f := range Fields {
		if strings.EqualFold(key, fieldKeys[f]) || strings.EqualFold(key, fieldNames[f]) {
			return f, true
		}
	}
	return 0, false
}
