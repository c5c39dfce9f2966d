// Package config loads, normalizes, and validates krk configuration data.
//
// It supplies defaults, expands user paths (including tilde shortcuts), reads
// TOML files, and honours environment fallbacks such as TMDB_API_KEY and the
// model provider keys. The Config type centralizes the vocabulary, catalog,
// model, session, and logging settings so the CLI discovers them in one pass.
//
// Always obtain settings through this package so downstream code receives
// expanded paths, canonical provider names, and clear validation errors.
package config
