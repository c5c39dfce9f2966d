package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"krk/internal/config"
)

func clearProviderEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"TMDB_API_KEY", "KRK_LLM_API_KEY", "OPENROUTER_API_KEY", "OPENAI_API_KEY", "GEMINI_API_KEY", "XDG_STATE_HOME"} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaultConfigUsesEnvAndExpandsPaths(t *testing.T) {
	clearProviderEnv(t)
	t.Setenv("TMDB_API_KEY", "test-key")
	t.Setenv("OPENROUTER_API_KEY", "router-key")
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	t.Chdir(t.TempDir())

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved != filepath.Join(tempHome, ".config", "krk", "config.toml") {
		t.Fatalf("unexpected resolved path %q", resolved)
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}

	if want := filepath.Join(tempHome, ".config", "krk", "vocab"); cfg.Paths.VocabDir != want {
		t.Fatalf("vocab dir = %q, want %q", cfg.Paths.VocabDir, want)
	}
	if want := filepath.Join(tempHome, ".local", "state", "krk"); cfg.Paths.StateDir != want {
		t.Fatalf("state dir = %q, want %q", cfg.Paths.StateDir, want)
	}
	if cfg.LogPath() != filepath.Join(cfg.Paths.StateDir, "logs", "krk.log") {
		t.Fatalf("unexpected log path %q", cfg.LogPath())
	}
	if cfg.TMDB.APIKey != "test-key" {
		t.Fatalf("expected TMDB key from env, got %q", cfg.TMDB.APIKey)
	}
	if cfg.LLM.APIKey != "router-key" {
		t.Fatalf("expected LLM key from env, got %q", cfg.LLM.APIKey)
	}
	if cfg.LLM.Provider != config.ProviderOpenAI || cfg.LLM.MaxTokens != 200 || cfg.LLM.RetryAttempts != 1 {
		t.Fatalf("unexpected llm defaults %+v", cfg.LLM)
	}
	if cfg.TMDB.ResultLimit != 5 {
		t.Fatalf("unexpected result limit %d", cfg.TMDB.ResultLimit)
	}
	if cfg.Session.Persist || cfg.Session.ShowModelOutput {
		t.Fatal("expected persistence and model echo off by default")
	}

	session := cfg.SessionDefaults()
	if session.Language != "en" || session.DateFrom != "2000-01-01" || session.DateTo != "2025-12-31" {
		t.Fatalf("unexpected session defaults %+v", session)
	}

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories failed: %v", err)
	}
	for _, dir := range []string{cfg.Paths.StateDir, cfg.Paths.LogDir} {
		if info, err := os.Stat(dir); err != nil || !info.IsDir() {
			t.Fatalf("expected directory %q: %v", dir, err)
		}
	}
}

func TestLoadCustomPath(t *testing.T) {
	clearProviderEnv(t)
	t.Setenv("GEMINI_API_KEY", "gem-key")
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "krk.toml")

	type payload struct {
		Paths struct {
			VocabDir string `toml:"vocab_dir"`
		} `toml:"paths"`
		LLM struct {
			Provider string `toml:"provider"`
		} `toml:"llm"`
		Session struct {
			DefaultLanguage string `toml:"default_language"`
			Persist         bool   `toml:"persist"`
		} `toml:"session"`
	}
	custom := payload{}
	custom.Paths.VocabDir = filepath.Join(tempDir, "words")
	custom.LLM.Provider = "Gemini"
	custom.Session.DefaultLanguage = "Hindi"
	custom.Session.Persist = true

	data, err := toml.Marshal(custom)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved != configPath {
		t.Fatalf("expected custom path to resolve, got %q exists=%v", resolved, exists)
	}
	if cfg.Paths.VocabDir != custom.Paths.VocabDir {
		t.Fatalf("vocab dir = %q", cfg.Paths.VocabDir)
	}
	if cfg.LLM.Provider != config.ProviderGemini || cfg.LLM.Model != "gemini-2.0-flash" || cfg.LLM.APIKey != "gem-key" {
		t.Fatalf("unexpected llm settings %+v", cfg.LLM)
	}
	if cfg.Session.DefaultLanguage != "hi" || !cfg.Session.Persist {
		t.Fatalf("unexpected session settings %+v", cfg.Session)
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	clearProviderEnv(t)
	configPath := filepath.Join(t.TempDir(), "krk.toml")
	if err := os.WriteFile(configPath, []byte("[tmdb]\napi_kye = \"typo\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, _, _, err := config.Load(configPath); err == nil {
		t.Fatal("expected unknown key to fail parsing")
	}
}

func TestValidateRejectsBadSettings(t *testing.T) {
	clearProviderEnv(t)
	tests := []struct {
		name   string
		body   string
		substr string
	}{
		{"unknown provider", "[llm]\nprovider = \"claude\"\n", "llm.provider"},
		{"negative tokens", "[llm]\nmax_tokens = -1\n", "max_tokens"},
		{"bad date", "[session]\ndefault_date_from = \"2000/01/01\"\n", "default_date_from"},
		{"inverted dates", "[session]\ndefault_date_from = \"2020-01-01\"\ndefault_date_to = \"2010-01-01\"\n", "must not be after"},
		{"unknown language", "[session]\ndefault_language = \"klingon\"\n", "default_language"},
		{"bad level", "[logging]\nlevel = \"loud\"\n", "logging.level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configPath := filepath.Join(t.TempDir(), "krk.toml")
			if err := os.WriteFile(configPath, []byte(tt.body), 0o644); err != nil {
				t.Fatalf("write config: %v", err)
			}
			_, _, _, err := config.Load(configPath)
			if err == nil || !strings.Contains(err.Error(), tt.substr) {
				t.Fatalf("expected error containing %q, got %v", tt.substr, err)
			}
		})
	}
}

func TestRequireCredentials(t *testing.T) {
	clearProviderEnv(t)
	cfg, _, _, err := config.Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if err := cfg.RequireTMDB(); err == nil || !strings.Contains(err.Error(), "TMDB_API_KEY") {
		t.Fatalf("expected TMDB credential error, got %v", err)
	}
	if err := cfg.RequireLLM(); err == nil {
		t.Fatal("expected default OpenRouter endpoint to need a key")
	}

	cfg.LLM.BaseURL = "http://localhost:8080/v1/chat/completions"
	if err := cfg.RequireLLM(); err != nil {
		t.Fatalf("self-hosted endpoint should not need a key: %v", err)
	}
	cfg.LLM.Provider = config.ProviderOllama
	if err := cfg.RequireLLM(); err != nil {
		t.Fatalf("ollama should not need a key: %v", err)
	}
	cfg.LLM.Provider = config.ProviderNone
	if !cfg.LocalOnly() {
		t.Fatal("expected provider none to be local only")
	}
}

func TestCreateSampleLoads(t *testing.T) {
	clearProviderEnv(t)
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}
	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("sample config should load: %v", err)
	}
	if !exists || cfg.TMDB.ResultLimit != 5 || cfg.LLM.MaxTokens != 200 {
		t.Fatalf("unexpected sample config %+v", cfg)
	}
}

func TestEncodeRoundTripsAndRedacts(t *testing.T) {
	clearProviderEnv(t)
	t.Setenv("HOME", t.TempDir())
	cfg := config.Default()
	cfg.TMDB.APIKey = "abcdefghijklmnop"
	cfg.LLM.APIKey = "short"
	cfg.Session.Persist = true

	data, err := config.Encode(&cfg)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	loaded, _, _, err := config.Load(path)
	if err != nil {
		t.Fatalf("encoded config should load: %v", err)
	}
	if loaded.TMDB.APIKey != cfg.TMDB.APIKey || !loaded.Session.Persist {
		t.Fatalf("round trip lost values: %+v", loaded)
	}

	redacted := loaded.Redacted()
	if redacted.TMDB.APIKey != "abcd...mnop" || redacted.LLM.APIKey != "********" {
		t.Fatalf("unexpected redaction tmdb=%q llm=%q", redacted.TMDB.APIKey, redacted.LLM.APIKey)
	}
	if loaded.TMDB.APIKey != cfg.TMDB.APIKey {
		t.Fatal("Redacted must not modify the receiver")
	}
}
