package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"krk/internal/config"
	"krk/internal/vocab"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp directories per test.
// The model fallback is disabled and no TMDB key is set unless an option
// says otherwise.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.VocabDir = filepath.Join(base, "vocab")
	cfgVal.Paths.StateDir = filepath.Join(base, "state")
	cfgVal.Paths.LogDir = filepath.Join(base, "state", "logs")
	cfgVal.LLM.Provider = config.ProviderNone
	cfgVal.Logging.Console = false

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithTMDB points the catalog client at baseURL with the given key.
func WithTMDB(key, baseURL string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.TMDB.APIKey = key
		if baseURL != "" {
			b.cfg.TMDB.BaseURL = baseURL
		}
	}
}

// WithOpenAIServer enables the OpenAI-compatible fallback against baseURL.
func WithOpenAIServer(baseURL string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.LLM.Provider = config.ProviderOpenAI
		b.cfg.LLM.APIKey = "test"
		b.cfg.LLM.BaseURL = baseURL
		b.cfg.LLM.Model = "test-model"
		b.cfg.LLM.TimeoutSeconds = 5
	}
}

// WithPersistence turns on per-user session storage.
func WithPersistence() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Session.Persist = true
	}
}

// WithSeededVocabulary writes the bundled vocabulary files into the vocab dir.
func WithSeededVocabulary() ConfigOption {
	return func(b *configBuilder) {
		if _, err := vocab.WriteSeed(b.cfg.Paths.VocabDir, true); err != nil {
			b.t.Fatalf("seed vocabulary: %v", err)
		}
	}
}

// WithDirectories creates the state and log directories up front.
func WithDirectories() ConfigOption {
	return func(b *configBuilder) {
		for _, dir := range []string{b.cfg.Paths.StateDir, b.cfg.Paths.LogDir} {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				b.t.Fatalf("mkdir %s: %v", dir, err)
			}
		}
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.VocabDir)
}

// WriteConfigFile encodes cfg as TOML into the base directory and returns its path.
func WriteConfigFile(t testing.TB, cfg *config.Config) string {
	t.Helper()

	data, err := config.Encode(cfg)
	if err != nil {
		t.Fatalf("encode config: %v", err)
	}
	path := filepath.Join(BaseDir(cfg), "config.toml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}
