package inference

import (
	"strings"
	"testing"

	"krk/internal/logging"
	"krk/internal/prefs"
	"krk/internal/vocab"
)

func testVocabulary() *vocab.Vocabulary {
	return &vocab.Vocabulary{
		Actors: vocab.NewMapping(
			vocab.Entry{Alias: "tom", ID: "1"},
			vocab.Entry{Alias: "tom hanks", ID: "31"},
			vocab.Entry{Alias: "brad pitt", ID: "287"},
		),
		Genres: vocab.NewMapping(
			vocab.Entry{Alias: "comedy", ID: "35"},
			vocab.Entry{Alias: "drama", ID: "18"},
			vocab.Entry{Alias: "romantic comedy", ID: "10749"},
		),
		Languages: vocab.NewMapping(
			vocab.Entry{Alias: "hindi", ID: "hi"},
			vocab.Entry{Alias: "hindi dubbed english", ID: "en"},
			vocab.Entry{Alias: "english", ID: "en"},
		),
	}
}

func mustGet(t *testing.T, r prefs.Result, f prefs.Field) string {
	t.Helper()
	value, ok := r.Get(f)
	if !ok {
		t.Fatalf("expected %s to be resolved in %v", f, r)
	}
	return value
}

func TestInferPrefersLongestAlias(t *testing.T) {
	engine := New(testVocabulary(), logging.NewNop())

	got := engine.Infer("I like Tom Hanks movies")
	if id := mustGet(t, got, prefs.ActorID); id != "31" {
		t.Fatalf("expected tom hanks (31), got %q", id)
	}

	got = engine.Infer("a romantic comedy tonight")
	if id := mustGet(t, got, prefs.GenreID); id != "10749" {
		t.Fatalf("expected romantic comedy (10749), got %q", id)
	}
}

// Languages are checked in file order rather than by length, so an earlier
// short alias shadows a longer, later one.
func TestInferLanguageUsesFileOrder(t *testing.T) {
	engine := New(testVocabulary(), logging.NewNop())
	got := engine.Infer("hindi dubbed english films")
	if lang := mustGet(t, got, prefs.Language); lang != "hi" {
		t.Fatalf("expected first alias in file order (hi), got %q", lang)
	}
}

func TestInferFuzzyActor(t *testing.T) {
	v := testVocabulary()
	v.Actors = vocab.NewMapping(
		vocab.Entry{Alias: "tom hanks", ID: "31"},
		vocab.Entry{Alias: "tom cruise", ID: "500"},
	)
	engine := New(v, logging.NewNop())

	got := engine.Infer("i love tom hanx films")
	if id := mustGet(t, got, prefs.ActorID); id != "31" {
		t.Fatalf("expected fuzzy match on tom hanks, got %q", id)
	}
}

func TestInferFuzzyActorLastWord(t *testing.T) {
	v := testVocabulary()
	v.Actors = vocab.NewMapping(vocab.Entry{Alias: "rajinikanth", ID: "91555"})
	engine := New(v, logging.NewNop())

	// "thalaivar rajnikanth" as a phrase scores below 0.82 but the last word
	// alone clears 0.90.
	got := engine.Infer("thalaivar rajnikanth")
	if id := mustGet(t, got, prefs.ActorID); id != "91555" {
		t.Fatalf("expected last-word match, got %q", id)
	}
}

func TestInferActorCutoffBoundary(t *testing.T) {
	alias := strings.Repeat("a", 41) + strings.Repeat("c", 9)
	v := testVocabulary()
	v.Actors = vocab.NewMapping(vocab.Entry{Alias: alias, ID: "7"})
	engine := New(v, logging.NewNop())

	atCutoff := strings.Repeat("a", 41) + strings.Repeat("b", 9)
	if id := mustGet(t, engine.Infer(atCutoff), prefs.ActorID); id != "7" {
		t.Fatalf("expected score of exactly 0.82 to match, got %q", id)
	}

	wide := strings.Repeat("a", 81) + strings.Repeat("c", 19)
	v.Actors = vocab.NewMapping(vocab.Entry{Alias: wide, ID: "8"})
	engine = New(v, logging.NewNop())
	below := strings.Repeat("a", 81) + strings.Repeat("b", 19)
	if got := engine.Infer(below); got.Has(prefs.ActorID) {
		t.Fatalf("expected score of 0.81 to be rejected, got %v", got)
	}
}

func TestInferFuzzyGenre(t *testing.T) {
	engine := New(testVocabulary(), logging.NewNop())
	got := engine.Infer("a good comdy please")
	if id := mustGet(t, got, prefs.GenreID); id != "35" {
		t.Fatalf("expected comedy via fuzzy match, got %q", id)
	}
}

func TestInferDatesAndUnknowns(t *testing.T) {
	engine := New(testVocabulary(), logging.NewNop())

	got := engine.Infer("something from the late 1980s")
	if from := mustGet(t, got, prefs.DateFrom); from != "1986-01-01" {
		t.Fatalf("unexpected date_from %q", from)
	}
	if to := mustGet(t, got, prefs.DateTo); to != "1989-12-31" {
		t.Fatalf("unexpected date_to %q", to)
	}
	for _, f := range []prefs.Field{prefs.ActorID, prefs.GenreID, prefs.Language} {
		if got.Has(f) {
			t.Fatalf("expected %s to stay unresolved, got %v", f, got)
		}
	}
}

func TestInferEmptyVocabulary(t *testing.T) {
	engine := New(&vocab.Vocabulary{}, nil)
	got := engine.Infer("tom hanks comedies in 1999")
	if got.Len() != 2 || !got.Has(prefs.DateFrom) {
		t.Fatalf("expected only the date range, got %v", got)
	}
}
