package catalog

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"krk/internal/logging"
	"krk/internal/prefs"
	"krk/internal/services"
	"krk/internal/tmdb"
)

// DefaultLimit is how many matches are shown.
const DefaultLimit = 5

// Recommendation is one ranked match.
type Recommendation struct {
	Rank     int     `json:"rank" yaml:"rank"`
	ID       int64   `json:"id" yaml:"id"`
	Title    string  `json:"title" yaml:"title"`
	Year     string  `json:"year" yaml:"year"`
	Score    float64 `json:"score" yaml:"score"`
	Language string  `json:"language" yaml:"language"`
}

// Recommender queries the catalog with the current session.
type Recommender struct {
	client tmdb.Discoverer
	limit  int
	logger *slog.Logger
}

// NewRecommender builds a recommender. Non-positive limits use DefaultLimit.
func NewRecommender(client tmdb.Discoverer, limit int, logger *slog.Logger) *Recommender {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Recommender{
		client: client,
		limit:  limit,
		logger: logging.NewComponentLogger(logger, "catalog"),
	}
}

// Query builds the discovery filters for s. Empty actor or genre ids leave
// that dimension unfiltered.
func Query(s prefs.Session) tmdb.DiscoverOptions {
	return tmdb.DiscoverOptions{
		Language:    s.Language,
		CastID:      s.ActorID,
		GenreID:     s.GenreID,
		ReleaseFrom: s.DateFrom,
		ReleaseTo:   s.DateTo,
		SortBy:      "popularity.desc",
		Page:        1,
	}
}

// Recommend returns up to the configured number of matches, most popular
// first. An empty slice with a nil error means the catalog had no match.
func (r *Recommender) Recommend(ctx context.Context, s prefs.Session) ([]Recommendation, error) {
	if r.client == nil {
		return nil, services.Wrap(services.ErrConfiguration, "catalog", "recommend",
			"tmdb api key not configured (set tmdb.api_key or TMDB_API_KEY)", nil)
	}
	logger := logging.WithContext(ctx, r.logger)
	resp, err := r.client.DiscoverMovies(ctx, Query(s))
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		marker := services.ErrExternalTool
		var statusErr *tmdb.StatusError
		if errors.As(err, &statusErr) && statusErr.Unauthorized() {
			marker = services.ErrConfiguration
		}
		logging.WarnWithContext(logger, "catalog query failed", "catalog_query_failed",
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "check tmdb.api_key and network access"),
			logging.String(logging.FieldImpact, "no recommendations shown; preferences unchanged"),
		)
		return nil, services.Wrap(marker, "catalog", "discover", "", err)
	}

	out := make([]Recommendation, 0, r.limit)
	for _, movie := range resp.Results {
		if len(out) == r.limit {
			break
		}
		title := strings.TrimSpace(movie.Title)
		if title == "" {
			title = "N/A"
		}
		out = append(out, Recommendation{
			Rank:     len(out) + 1,
			ID:       movie.ID,
			Title:    title,
			Year:     movie.Year(),
			Score:    movie.VoteAverage,
			Language: movie.OriginalLanguage,
		})
	}
	logger.Info("catalog query complete",
		logging.String(logging.FieldEventType, "catalog_query_complete"),
		logging.Int("total_results", resp.TotalResults),
		logging.Int("shown", len(out)),
	)
	return out, nil
}
