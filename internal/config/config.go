package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"krk/internal/prefs"
)

//go:embed sample_config.toml
var sampleConfig string

// Model providers accepted by llm.provider.
const (
	ProviderOpenAI = "openai"
	ProviderOllama = "ollama"
	ProviderGemini = "gemini"
	ProviderNone   = "none"
)

// Paths contains directory configuration.
type Paths struct {
	VocabDir string `toml:"vocab_dir"`
	StateDir string `toml:"state_dir"`
	LogDir   string `toml:"log_dir"`
}

// TMDB contains configuration for The Movie Database API.
type TMDB struct {
	APIKey         string `toml:"api_key"`
	BaseURL        string `toml:"base_url"`
	Language       string `toml:"language"`
	ResultLimit    int    `toml:"result_limit"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

// LLM contains the fallback model connection settings.
type LLM struct {
	Provider       string `toml:"provider"`
	APIKey         string `toml:"api_key"`
	BaseURL        string `toml:"base_url"`
	Model          string `toml:"model"`
	Referer        string `toml:"referer"`
	Title          string `toml:"title"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
	MaxTokens      int    `toml:"max_tokens"`
	RetryAttempts  int    `toml:"retry_attempts"`
}

// Session contains chat defaults and persistence switches.
type Session struct {
	DefaultLanguage string `toml:"default_language"`
	DefaultDateFrom string `toml:"default_date_from"`
	DefaultDateTo   string `toml:"default_date_to"`
	Persist         bool   `toml:"persist"`
	ShowModelOutput bool   `toml:"show_model_output"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format        string `toml:"format"`
	Level         string `toml:"level"`
	Console       bool   `toml:"console"`
	RetentionDays int    `toml:"retention_days"`
}

// Config encapsulates all configuration values for krk.
//
// Configuration sections by subsystem:
//   - Paths: vocabulary, state, and log directories
//   - TMDB: catalog recommendations and genre sync
//   - LLM: fallback model provider for sentences the vocabulary misses
//   - Session: starting preferences and persistence
//   - Logging: log format, level, and retention
type Config struct {
	Paths   Paths   `toml:"paths"`
	TMDB    TMDB    `toml:"tmdb"`
	LLM     LLM     `toml:"llm"`
	Session Session `toml:"session"`
	Logging Logging `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/krk/config.toml")
}

// Load locates, parses, and validates a configuration file. The returned config has all
// path fields expanded and normalized.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config %s: %w", resolvedPath, err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("krk.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// EnsureDirectories creates the state and log directories.
func (c *Config) EnsureDirectories() error {
	for _, dir := range []string{c.Paths.StateDir, c.Paths.LogDir} {
		if strings.TrimSpace(dir) == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %q: %w", dir, err)
		}
	}
	return nil
}

// LogPath returns the krk log file location.
func (c *Config) LogPath() string {
	return filepath.Join(c.Paths.LogDir, "krk.log")
}

// SessionDefaults returns the preferences a new session starts from.
func (c *Config) SessionDefaults() prefs.Session {
	return prefs.Defaults(c.Session.DefaultLanguage, c.Session.DefaultDateFrom, c.Session.DefaultDateTo)
}

// LocalOnly reports whether the model fallback is disabled.
func (c *Config) LocalOnly() bool {
	return c.LLM.Provider == ProviderNone
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}

// Encode renders cfg as TOML in the same layout Load accepts.
func Encode(cfg *Config) ([]byte, error) {
	if cfg == nil {
		return nil, errors.New("encode config: nil config")
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	return data, nil
}

// Redacted returns a copy with credentials masked for display.
func (c *Config) Redacted() Config {
	out := *c
	out.TMDB.APIKey = mask(out.TMDB.APIKey)
	out.LLM.APIKey = mask(out.LLM.APIKey)
	return out
}

func mask(secret string) string {
	secret = strings.TrimSpace(secret)
	switch {
	case secret == "":
		return ""
	case len(secret) <= 8:
		return "********"
	default:
		return secret[:4] + "..." + secret[len(secret)-4:]
	}
}
