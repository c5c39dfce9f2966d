package daterange

import "testing"

func TestResolve(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantFrom string
		wantTo   string
		wantKind Kind
	}{
		{"explicit range", "movies from 2000 to 2010", "2000-01-01", "2010-12-31", KindYearRange},
		{"dash range", "something 1995-1999 please", "1995-01-01", "1999-12-31", KindYearRange},
		{"inverted range is swapped", "from 2010 to 2000", "2000-01-01", "2010-12-31", KindYearRange},
		{"decade", "anything from the 1970s", "1970-01-01", "1979-12-31", KindDecade},
		{"decade beats bare year", "the 1990s and also 1995", "1990-01-01", "1999-12-31", KindDecade},
		{"range beats decade", "2001 to 2003, not the 1980s", "2001-01-01", "2003-12-31", KindYearRange},
		{"early decade", "early 1980s", "1980-01-01", "1984-12-31", KindQualifiedDecade},
		{"mid decade", "Mid 1990s thrillers", "1994-01-01", "1996-12-31", KindQualifiedDecade},
		{"late decade", "late 1980s", "1986-01-01", "1989-12-31", KindQualifiedDecade},
		{"unqualified decade wins over later qualified one", "the 2000s or early 1980s", "2000-01-01", "2009-12-31", KindDecade},
		{"single year", "released in 2012", "2012-01-01", "2012-12-31", KindYear},
		{"upper case", "EARLY 2010S", "2010-01-01", "2014-12-31", KindQualifiedDecade},
		{"qualifier inside a word is not a qualifier", "nearly 1980s", "1980-01-01", "1989-12-31", KindDecade},
		{"mid inside a word is not a qualifier", "pyramid 1990s", "1990-01-01", "1999-12-31", KindDecade},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Resolve(tt.input)
			if !ok {
				t.Fatalf("Resolve(%q) found no range", tt.input)
			}
			if got.From != tt.wantFrom || got.To != tt.wantTo {
				t.Fatalf("Resolve(%q) = %s..%s, want %s..%s", tt.input, got.From, got.To, tt.wantFrom, tt.wantTo)
			}
			if got.Kind != tt.wantKind {
				t.Fatalf("Resolve(%q) kind = %s, want %s", tt.input, got.Kind, tt.wantKind)
			}
		})
	}
}

func TestResolveNoMatch(t *testing.T) {
	for _, input := range []string{"", "tom hanks comedies", "the year 1850", "room 12345"} {
		if got, ok := Resolve(input); ok {
			t.Errorf("Resolve(%q) = %+v, want no match", input, got)
		}
	}
}

func TestResolvedRangesAreOrdered(t *testing.T) {
	inputs := []string{"2020 - 1990", "late 1990s", "1960s", "2024", "mid 2000s"}
	for _, input := range inputs {
		got, ok := Resolve(input)
		if !ok {
			t.Fatalf("Resolve(%q) found no range", input)
		}
		if !Ordered(got.From, got.To) {
			t.Errorf("Resolve(%q) = %s..%s is not ordered", input, got.From, got.To)
		}
	}
}

func TestValidDateAndOrdered(t *testing.T) {
	if !ValidDate("2000-02-29") {
		t.Error("expected leap day to be valid")
	}
	for _, value := range []string{"", "2001-02-29", "2000/01/01", "soon"} {
		if ValidDate(value) {
			t.Errorf("ValidDate(%q) = true, want false", value)
		}
	}
	if Ordered("2010-01-01", "2000-12-31") {
		t.Error("expected inverted range to be unordered")
	}
	if !Ordered("2000-01-01", "2000-01-01") {
		t.Error("expected equal bounds to be ordered")
	}
	if Ordered("bad", "2000-01-01") {
		t.Error("expected malformed bound to be unordered")
	}
}
