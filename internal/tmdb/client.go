package tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultBaseURL is the public TMDB v3 API root.
const DefaultBaseURL = "https://api.themoviedb.org/3"

// Movie is a single discovery match.
type Movie struct {
	ID               int64   `json:"id"`
	Title            string  `json:"title"`
	OriginalTitle    string  `json:"original_title"`
	OriginalLanguage string  `json:"original_language"`
	Overview         string  `json:"overview"`
	ReleaseDate      string  `json:"release_date"`
	GenreIDs         []int64 `json:"genre_ids"`
	Popularity       float64 `json:"popularity"`
	VoteAverage      float64 `json:"vote_average"`
	VoteCount        int64   `json:"vote_count"`
}

// Year returns the release year, or "" when the date is unknown.
func (m Movie) Year() string {
	if len(m.ReleaseDate) < 4 {
		return ""
	}
	return m.ReleaseDate[:4]
}

// Response models the TMDB paginated discovery response.
type Response struct {
	Page         int     `json:"page"`
	Results      []Movie `json:"results"`
	TotalPages   int     `json:"total_pages"`
	TotalResults int     `json:"total_results"`
}

// Genre is one entry of the movie genre list.
type Genre struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// DiscoverOptions filters a discovery query. Empty fields are not sent.
type DiscoverOptions struct {
	Language    string
	CastID      string
	GenreID     string
	ReleaseFrom string
	ReleaseTo   string
	SortBy      string
	Page        int
}

// Discoverer is the catalog surface used by recommendations.
type Discoverer interface {
	DiscoverMovies(ctx context.Context, opts DiscoverOptions) (*Response, error)
}

// Client provides access to the TMDB API.
type Client struct {
	apiKey     string
	baseURL    string
	language   string
	httpClient *http.Client
}

var _ Discoverer = (*Client)(nil)

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithTimeout sets the request timeout of the default HTTP client.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient = &http.Client{Timeout: timeout}
		}
	}
}

// New creates a TMDB client. language is the display language for titles
// (for example "en-US") and may be empty.
func New(apiKey, baseURL, language string, opts ...Option) (*Client, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("tmdb api key required")
	}
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	client := &Client{
		apiKey:     apiKey,
		baseURL:    strings.TrimRight(baseURL, "/"),
		language:   strings.TrimSpace(language),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// DiscoverMovies runs /discover/movie with the supplied filters. Sorting
// defaults to popularity.desc and the page to 1.
func (c *Client) DiscoverMovies(ctx context.Context, opts DiscoverOptions) (*Response, error) {
	params := url.Values{}
	setIf(params, "with_original_language", opts.Language)
	setIf(params, "with_cast", opts.CastID)
	setIf(params, "with_genres", opts.GenreID)
	setIf(params, "primary_release_date.gte", opts.ReleaseFrom)
	setIf(params, "primary_release_date.lte", opts.ReleaseTo)
	sortBy := strings.TrimSpace(opts.SortBy)
	if sortBy == "" {
		sortBy = "popularity.desc"
	}
	params.Set("sort_by", sortBy)
	page := opts.Page
	if page <= 0 {
		page = 1
	}
	params.Set("page", fmt.Sprint(page))

	var payload Response
	if err := c.get(ctx, "/discover/movie", params, "tmdb discover", &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// MovieGenres fetches the official movie genre list.
func (c *Client) MovieGenres(ctx context.Context) ([]Genre, error) {
	var payload struct {
		Genres []Genre `json:"genres"`
	}
	if err := c.get(ctx, "/genre/movie/list", url.Values{}, "tmdb genre list", &payload); err != nil {
		return nil, err
	}
	return payload.Genres, nil
}

// HealthCheck verifies the credential by fetching the genre list.
func (c *Client) HealthCheck(ctx context.Context) error {
	_, err := c.MovieGenres(ctx)
	return err
}

func (c *Client) get(ctx context.Context, path string, params url.Values, op string, target any) error {
	endpoint, err := url.Parse(c.baseURL + path)
	if err != nil {
		return fmt.Errorf("parse tmdb url: %w", err)
	}
	if c.language != "" {
		params.Set("language", c.language)
	}
	bearer := isReadAccessToken(c.apiKey)
	if !bearer {
		params.Set("api_key", c.apiKey)
	}
	endpoint.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if bearer {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	requestStart := time.Now()
	resp, err := c.httpClient.Do(req)
	latency := time.Since(requestStart)
	if err != nil {
		return fmt.Errorf("execute request (latency=%v): %w", latency, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &StatusError{Op: op, StatusCode: resp.StatusCode, Latency: latency}
	}

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return fmt.Errorf("decode %s response: %w", op, err)
	}
	return nil
}

// StatusError reports a non-200 TMDB response.
type StatusError struct {
	Op         string
	StatusCode int
	Latency    time.Duration
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s returned %d (latency=%v)", e.Op, e.StatusCode, e.Latency)
}

// Unauthorized reports whether TMDB rejected the credentials.
func (e *StatusError) Unauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized
}

func setIf(params url.Values, key, value string) {
	if value = strings.TrimSpace(value); value != "" {
		params.Set(key, value)
	}
}

// v4 read-access tokens are JWTs; v3 keys are 32 hex characters.
func isReadAccessToken(key string) bool {
	return strings.Count(key, ".") == 2 && len(key) > 64
}
