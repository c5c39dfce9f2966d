package vocab

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"krk/internal/services"
)

// Kind identifies one of the three alias tables.
type Kind int

const (
	KindActor Kind = iota
	KindGenre
	KindLanguage
)

// Kinds lists every table in prompt order.
var Kinds = []Kind{KindActor, KindGenre, KindLanguage}

func (k Kind) String() string {
	switch k {
	case KindActor:
		return "actors"
	case KindGenre:
		return "genres"
	case KindLanguage:
		return "languages"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// FileName is the table's file name inside the vocabulary directory.
func (k Kind) FileName() string {
	switch k {
	case KindActor:
		return "actors.txt"
	case KindGenre:
		return "genre.txt"
	case KindLanguage:
		return "languages.txt"
	default:
		return ""
	}
}

// Vocabulary bundles the three alias tables. It is loaded once and treated as
// immutable afterwards.
type Vocabulary struct {
	Actors    *Mapping
	Genres    *Mapping
	Languages *Mapping
}

// Mapping returns the table for kind. Unknown kinds yield an empty mapping.
func (v *Vocabulary) Mapping(kind Kind) *Mapping {
	var m *Mapping
	if v != nil {
		switch kind {
		case KindActor:
			m = v.Actors
		case KindGenre:
			m = v.Genres
		case KindLanguage:
			m = v.Languages
		}
	}
	if m == nil {
		return &Mapping{}
	}
	return m
}

// Lines renders one table as `alias: id` lines.
func (v *Vocabulary) Lines(kind Kind) string {
	return v.Mapping(kind).Lines()
}

// Alias returns the display alias for id in the given table.
func (v *Vocabulary) Alias(kind Kind, id string) (string, bool) {
	return v.Mapping(kind).AliasFor(id)
}

// Counts returns the entry count of every table keyed by kind.
func (v *Vocabulary) Counts() map[Kind]int {
	counts := make(map[Kind]int, len(Kinds))
	for _, kind := range Kinds {
		counts[kind] = v.Mapping(kind).Len()
	}
	return counts
}

// LoadDir reads actors.txt, genre.txt and languages.txt from dir.
func LoadDir(dir string) (*Vocabulary, error) {
	v := &Vocabulary{}
	for _, kind := range Kinds {
		path := filepath.Join(dir, kind.FileName())
		m, err := LoadFile(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil, services.Wrap(services.ErrConfiguration, "vocab", "load "+kind.String(),
					fmt.Sprintf("%s not found (run `krk vocab init`)", path), nil)
			}
			return nil, services.Wrap(services.ErrConfiguration, "vocab", "load "+kind.String(), path, err)
		}
		switch kind {
		case KindActor:
			v.Actors = m
		case KindGenre:
			v.Genres = m
		case KindLanguage:
			v.Languages = m
		}
	}
	return v, nil
}
