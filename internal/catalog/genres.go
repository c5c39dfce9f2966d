package catalog

import (
	"context"
	"strconv"
	"strings"

	"krk/internal/services"
	"krk/internal/tmdb"
	"krk/internal/vocab"
)

// GenreLister fetches the catalog's genre list.
type GenreLister interface {
	MovieGenres(ctx context.Context) ([]tmdb.Genre, error)
}

// SyncGenres merges the catalog genre list into current. Catalog names win
// for their ids; hand-added aliases (such as "sci-fi") are kept after them.
func SyncGenres(ctx context.Context, lister GenreLister, current *vocab.Mapping) (*vocab.Mapping, error) {
	genres, err := lister.MovieGenres(ctx)
	if err != nil {
		return nil, services.Wrap(services.ErrExternalTool, "catalog", "genre list", "", err)
	}
	entries := make([]vocab.Entry, 0, len(genres)+current.Len())
	official := make(map[string]struct{}, len(genres))
	for _, g := range genres {
		name := strings.ToLower(strings.TrimSpace(g.Name))
		if name == "" || g.ID <= 0 {
			continue
		}
		official[name] = struct{}{}
		entries = append(entries, vocab.Entry{Alias: name, ID: strconv.FormatInt(g.ID, 10)})
	}
	for _, e := range current.Entries() {
		if _, ok := official[e.Alias]; ok {
			continue
		}
		entries = append(entries, e)
	}
	return vocab.NewMapping(entries...), nil
}
