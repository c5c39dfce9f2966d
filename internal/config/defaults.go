package config

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	defaultVocabDir           = "~/.config/krk/vocab"
	defaultLogRetentionDays   = 30
	defaultTMDBLanguage       = "en-US"
	defaultTMDBBaseURL        = "https://api.themoviedb.org/3"
	defaultTMDBResultLimit    = 5
	defaultTMDBTimeoutSeconds = 15
	defaultLogFormat          = "console"
	defaultLogLevel           = "info"
	defaultLLMProvider        = ProviderOpenAI
	defaultOpenAIBaseURL      = "https://openrouter.ai/api/v1/chat/completions"
	defaultOpenAIModel        = "openai/gpt-4o-mini"
	defaultOllamaBaseURL      = "http://localhost:11434"
	defaultOllamaModel        = "llama3.2"
	defaultGeminiModel        = "gemini-2.0-flash"
	defaultLLMReferer         = "https://github.com/krk-movies/krk"
	defaultLLMTitle           = "krk preference extractor"
	defaultLLMTimeoutSeconds  = 30
	defaultLLMMaxTokens       = 200
	defaultLLMRetryAttempts   = 1
	defaultSessionLanguage    = "en"
	defaultSessionDateFrom    = "2000-01-01"
	defaultSessionDateTo      = "2025-12-31"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			VocabDir: defaultVocabDir,
			StateDir: defaultStateDir(),
			LogDir:   filepath.Join(defaultStateDir(), "logs"),
		},
		TMDB: TMDB{
			BaseURL:        defaultTMDBBaseURL,
			Language:       defaultTMDBLanguage,
			ResultLimit:    defaultTMDBResultLimit,
			TimeoutSeconds: defaultTMDBTimeoutSeconds,
		},
		LLM: LLM{
			Provider:       defaultLLMProvider,
			Referer:        defaultLLMReferer,
			Title:          defaultLLMTitle,
			TimeoutSeconds: defaultLLMTimeoutSeconds,
			MaxTokens:      defaultLLMMaxTokens,
			RetryAttempts:  defaultLLMRetryAttempts,
		},
		Session: Session{
			DefaultLanguage: defaultSessionLanguage,
			DefaultDateFrom: defaultSessionDateFrom,
			DefaultDateTo:   defaultSessionDateTo,
		},
		Logging: Logging{
			Format:        defaultLogFormat,
			Level:         defaultLogLevel,
			RetentionDays: defaultLogRetentionDays,
		},
	}
}

func defaultStateDir() string {
	if base, ok := os.LookupEnv("XDG_STATE_HOME"); ok && strings.TrimSpace(base) != "" {
		return filepath.Join(base, "krk")
	}
	return "~/.local/state/krk"
}
