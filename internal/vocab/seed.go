package vocab

import (
	"bytes"
	"embed"
	"fmt"
	"os"
	"path/filepath"
)

//go:embed seed/*.txt
var seedFiles embed.FS

// Seed returns the bundled starter vocabulary.
func Seed() *Vocabulary {
	v := &Vocabulary{}
	for _, kind := range Kinds {
		data, err := seedFiles.ReadFile("seed/" + kind.FileName())
		if err != nil {
			panic(fmt.Sprintf("vocab: missing seed %s: %v", kind.FileName(), err))
		}
		m, err := Load(bytes.NewReader(data))
		if err != nil {
			panic(fmt.Sprintf("vocab: parse seed %s: %v", kind.FileName(), err))
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
	return v
}

// WriteSeed copies the bundled tables into dir. Existing files are left
// alone unless overwrite is set. It returns the paths that were written.
func WriteSeed(dir string, overwrite bool) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create vocabulary directory: %w", err)
	}
	seed := Seed()
	var written []string
	for _, kind := range Kinds {
		path := filepath.Join(dir, kind.FileName())
		if !overwrite {
			if _, err := os.Stat(path); err == nil {
				continue
			}
		}
		if err := WriteMapping(path, seed.Mapping(kind)); err != nil {
			return written, err
		}
		written = append(written, path)
	}
	return written, nil
}

// WriteMapping writes m to path in `alias : id` form, replacing the file
// atomically.
func WriteMapping(path string, m *Mapping) error {
	var buf bytes.Buffer
	for _, e := range m.Entries() {
		fmt.Fprintf(&buf, "%s : %s\n", e.Alias, e.ID)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}
