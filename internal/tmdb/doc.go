// Package tmdb provides the minimal TMDB API client behind recommendations.
//
// It exposes movie discovery filtered by language, cast, genre and release
// window, plus the movie genre list used to refresh the genre vocabulary.
// Both v3 API keys and v4 read-access tokens are accepted. Options allow
// tests to supply custom HTTP clients.
package tmdb
