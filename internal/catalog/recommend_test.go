package catalog

import (
	"context"
	"errors"
	"testing"

	"krk/internal/logging"
	"krk/internal/prefs"
	"krk/internal/services"
	"krk/internal/tmdb"
	"krk/internal/vocab"
)

type stubDiscoverer struct {
	resp *tmdb.Response
	err  error
	got  tmdb.DiscoverOptions
}

func (s *stubDiscoverer) DiscoverMovies(_ context.Context, opts tmdb.DiscoverOptions) (*tmdb.Response, error) {
	s.got = opts
	return s.resp, s.err
}

func (s *stubDiscoverer) MovieGenres(context.Context) ([]tmdb.Genre, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []tmdb.Genre{{ID: 28, Name: "Action"}, {ID: 878, Name: "Science Fiction"}}, nil
}

func TestRecommendLimitsAndRanks(t *testing.T) {
	results := make([]tmdb.Movie, 0, 7)
	for i := 0; i < 7; i++ {
		results = append(results, tmdb.Movie{ID: int64(i + 1), Title: "Movie", ReleaseDate: "2001-02-03", VoteAverage: 6.5})
	}
	results[0].Title = ""
	stub := &stubDiscoverer{resp: &tmdb.Response{Results: results, TotalResults: 7}}
	r := NewRecommender(stub, 0, logging.NewNop())

	session := prefs.Session{ActorID: "31", Language: "en", DateFrom: "2000-01-01", DateTo: "2010-12-31"}
	got, err := r.Recommend(context.Background(), session)
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if len(got) != DefaultLimit {
		t.Fatalf("expected %d results, got %d", DefaultLimit, len(got))
	}
	if got[0].Rank != 1 || got[0].Title != "N/A" || got[0].Year != "2001" || got[4].Rank != 5 {
		t.Fatalf("unexpected ranking %+v", got)
	}
	if stub.got.CastID != "31" || stub.got.GenreID != "" || stub.got.SortBy != "popularity.desc" {
		t.Fatalf("unexpected query %+v", stub.got)
	}
}

func TestRecommendEmptyIsNotAnError(t *testing.T) {
	r := NewRecommender(&stubDiscoverer{resp: &tmdb.Response{}}, 5, nil)
	got, err := r.Recommend(context.Background(), prefs.Defaults("", "", ""))
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no results, got %+v", got)
	}
}

func TestRecommendClassifiesFailures(t *testing.T) {
	r := NewRecommender(&stubDiscoverer{err: &tmdb.StatusError{Op: "tmdb discover", StatusCode: 401}}, 5, nil)
	_, err := r.Recommend(context.Background(), prefs.Session{})
	if !errors.Is(err, services.ErrConfiguration) {
		t.Fatalf("expected configuration error for 401, got %v", err)
	}

	r = NewRecommender(&stubDiscoverer{err: errors.New("connection reset")}, 5, nil)
	_, err = r.Recommend(context.Background(), prefs.Session{})
	if !errors.Is(err, services.ErrExternalTool) {
		t.Fatalf("expected external tool error, got %v", err)
	}

	r = NewRecommender(nil, 5, nil)
	if _, err := r.Recommend(context.Background(), prefs.Session{}); !errors.Is(err, services.ErrConfiguration) {
		t.Fatalf("expected configuration error without a client, got %v", err)
	}
}

func TestSyncGenresKeepsCustomAliases(t *testing.T) {
	current := vocab.NewMapping(
		vocab.Entry{Alias: "sci-fi", ID: "878"},
		vocab.Entry{Alias: "action", ID: "1"},
	)
	got, err := SyncGenres(context.Background(), &stubDiscoverer{}, current)
	if err != nil {
		t.Fatalf("SyncGenres: %v", err)
	}
	want := []string{"action", "science fiction", "sci-fi"}
	aliases := got.Aliases()
	if len(aliases) != len(want) {
		t.Fatalf("aliases = %q, want %q", aliases, want)
	}
	for i := range want {
		if aliases[i] != want[i] {
			t.Fatalf("aliases = %q, want %q", aliases, want)
		}
	}
	if id, _ := got.Lookup("action"); id != "28" {
		t.Fatalf("expected catalog id to win, got %q", id)
	}
}
