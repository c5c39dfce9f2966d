package fallback

import (
	"reflect"
	"testing"

	"krk/internal/prefs"
)

func TestParseLastAssignmentWins(t *testing.T) {
	raw := `Sure! Here is what I understood.
ACTOR_ID = "1"
Some commentary in between.
ACTOR_ID = "2"`
	got := Parse(raw)
	if want := map[string]string{"actor_id": "2"}; !reflect.DeepEqual(got.Map(), want) {
		t.Fatalf("Parse = %v, want %v", got.Map(), want)
	}
}

func TestParseFormats(t *testing.T) {
	raw := "  GENRE_ID = '28'  \n" +
		"LANGUAGE=hi\n" +
		"DATE_FROM = \"2000-01-01\"\n" +
		"\tDATE_TO =   \"2010-12-31\"\n" +
		"actor_id = \"5\"\n" +
		"YEAR = \"1999\"\n" +
		"The ACTOR_ID = \"9\" is a guess\n"
	got := Parse(raw)
	want := map[string]string{
		"genre_id":  "28",
		"language":  "hi",
		"date_from": "2000-01-01",
		"date_to":   "2010-12-31",
	}
	if !reflect.DeepEqual(got.Map(), want) {
		t.Fatalf("Parse = %v, want %v", got.Map(), want)
	}
}

func TestParseEmptyValueIsPresent(t *testing.T) {
	got := Parse(`ACTOR_ID = ""`)
	value, ok := got.Get(prefs.ActorID)
	if !ok || value != "" {
		t.Fatalf("expected present empty actor, got %q %v", value, ok)
	}
}

func TestParseNothing(t *testing.T) {
	for _, raw := range []string{"", "hello there", "ACTOR_ID: 31"} {
		if got := Parse(raw); got.Len() != 0 {
			t.Errorf("Parse(%q) = %v, want empty", raw, got)
		}
	}
}
