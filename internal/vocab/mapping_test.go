package vocab

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleActors = "\ufeffTom Hanks : 31\n" +
	"no separator here\n" +
	"  Brad Pitt:287  \n" +
	"\n" +
	"empty id :\n" +
	" : 99\n" +
	"tom hanks : 32\n" +
	"ratio: 16:9 : x\n"

func TestLoadNormalizesAndSkipsMalformedLines(t *testing.T) {
	m, err := Load(strings.NewReader(sampleActors))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if m.Len() != 3 {
		t.Fatalf("expected 3 entries, got %d: %v", m.Len(), m.Entries())
	}
	if id, ok := m.Lookup("TOM HANKS"); !ok || id != "32" {
		t.Fatalf("expected last write to win for tom hanks, got %q %v", id, ok)
	}
	if id, ok := m.Lookup("brad pitt"); !ok || id != "287" {
		t.Fatalf("expected trimmed brad pitt entry, got %q %v", id, ok)
	}
	if id, ok := m.Lookup("ratio"); !ok || id != "16:9 : x" {
		t.Fatalf("expected split on first colon, got %q %v", id, ok)
	}
	if _, ok := m.Lookup("empty id"); ok {
		t.Fatal("expected entry without id to be dropped")
	}
	want := []string{"tom hanks", "brad pitt", "ratio"}
	got := m.Aliases()
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("aliases = %q, want first-appearance order %q", got, want)
		}
	}
}

func TestLoadIsIdempotent(t *testing.T) {
	first, err := Load(strings.NewReader(sampleActors))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	second, err := Load(strings.NewReader(sampleActors))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !first.Equal(second) {
		t.Fatalf("expected equal mappings, got %v and %v", first.Entries(), second.Entries())
	}

	again, err := Load(strings.NewReader(first.Lines()))
	if err != nil {
		t.Fatalf("Load rendered lines: %v", err)
	}
	if !first.Equal(again) {
		t.Fatalf("expected rendered lines to load back to the same mapping")
	}
}

func TestAliasesByLength(t *testing.T) {
	m := NewMapping(
		Entry{Alias: "tom", ID: "1"},
		Entry{Alias: "tom hanks", ID: "31"},
		Entry{Alias: "ben", ID: "2"},
		Entry{Alias: "amy", ID: "3"},
	)
	got := m.AliasesByLength()
	want := []string{"tom hanks", "amy", "ben", "tom"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("AliasesByLength = %q, want %q", got, want)
		}
	}
}

func TestAliasForAndNilMapping(t *testing.T) {
	m := NewMapping(Entry{Alias: "sci-fi", ID: "878"}, Entry{Alias: "science fiction", ID: "878"})
	if alias, ok := m.AliasFor("878"); !ok || alias != "sci-fi" {
		t.Fatalf("AliasFor = %q %v, want first alias", alias, ok)
	}
	var empty *Mapping
	if empty.Len() != 0 || empty.Lines() != "" {
		t.Fatal("expected nil mapping to behave as empty")
	}
	if _, ok := empty.Lookup("x"); ok {
		t.Fatal("expected nil mapping lookup to miss")
	}
}

func TestLoadDirAndSeed(t *testing.T) {
	dir := t.TempDir()
	written, err := WriteSeed(dir, false)
	if err != nil {
		t.Fatalf("WriteSeed: %v", err)
	}
	if len(written) != 3 {
		t.Fatalf("expected 3 seed files, got %v", written)
	}

	v, err := LoadDir(dir)
	if err != nil {
		t.Fatalf("LoadDir: %v", err)
	}
	if id, ok := v.Genres.Lookup("comedy"); !ok || id != "35" {
		t.Fatalf("expected comedy genre, got %q %v", id, ok)
	}
	if id, ok := v.Actors.Lookup("tom hanks"); !ok || id != "31" {
		t.Fatalf("expected tom hanks actor, got %q %v", id, ok)
	}
	if !v.Languages.Equal(Seed().Languages) {
		t.Fatal("expected loaded languages to match the bundled seed")
	}
	if alias, ok := v.Alias(KindLanguage, "hi"); !ok || alias != "hindi" {
		t.Fatalf("Alias(language, hi) = %q %v", alias, ok)
	}

	custom := filepath.Join(dir, KindGenre.FileName())
	if err := os.WriteFile(custom, []byte("noir : 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	written, err = WriteSeed(dir, false)
	if err != nil {
		t.Fatalf("WriteSeed again: %v", err)
	}
	if len(written) != 0 {
		t.Fatalf("expected existing files to be kept, wrote %v", written)
	}
}

func TestLoadDirMissingFile(t *testing.T) {
	_, err := LoadDir(t.TempDir())
	if err == nil {
		t.Fatal("expected error for empty directory")
	}
	if !strings.Contains(err.Error(), "krk vocab init") {
		t.Fatalf("expected init hint, got %v", err)
	}
}

func TestWriteMappingRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "genre.txt")
	m := NewMapping(Entry{Alias: "Drama", ID: "18"}, Entry{Alias: "war", ID: "10752"})
	if err := WriteMapping(path, m); err != nil {
		t.Fatalf("WriteMapping: %v", err)
	}
	loaded, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if !loaded.Equal(m) {
		t.Fatalf("expected %v, got %v", m.Entries(), loaded.Entries())
	}
}
