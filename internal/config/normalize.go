package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"krk/internal/language"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeTMDB()
	c.normalizeLLM()
	c.normalizeSession()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.VocabDir) == "" {
		c.Paths.VocabDir = defaultVocabDir
	}
	if c.Paths.VocabDir, err = expandPath(c.Paths.VocabDir); err != nil {
		return fmt.Errorf("paths.vocab_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.StateDir) == "" {
		c.Paths.StateDir = defaultStateDir()
	}
	if c.Paths.StateDir, err = expandPath(c.Paths.StateDir); err != nil {
		return fmt.Errorf("paths.state_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = filepath.Join(c.Paths.StateDir, "logs")
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeTMDB() {
	c.TMDB.APIKey = strings.TrimSpace(c.TMDB.APIKey)
	if c.TMDB.APIKey == "" {
		if value, ok := os.LookupEnv("TMDB_API_KEY"); ok {
			c.TMDB.APIKey = strings.TrimSpace(value)
		}
	}
	c.TMDB.BaseURL = strings.TrimSpace(c.TMDB.BaseURL)
	if c.TMDB.BaseURL == "" {
		c.TMDB.BaseURL = defaultTMDBBaseURL
	}
	c.TMDB.Language = strings.TrimSpace(c.TMDB.Language)
	if c.TMDB.Language == "" {
		c.TMDB.Language = defaultTMDBLanguage
	}
	if c.TMDB.ResultLimit <= 0 {
		c.TMDB.ResultLimit = defaultTMDBResultLimit
	}
	if c.TMDB.TimeoutSeconds <= 0 {
		c.TMDB.TimeoutSeconds = defaultTMDBTimeoutSeconds
	}
}

func (c *Config) normalizeLLM() {
	c.LLM.Provider = strings.ToLower(strings.TrimSpace(c.LLM.Provider))
	switch c.LLM.Provider {
	case "":
		c.LLM.Provider = defaultLLMProvider
	case "openrouter", "openai-compatible":
		c.LLM.Provider = ProviderOpenAI
	case "off", "local":
		c.LLM.Provider = ProviderNone
	}

	c.LLM.BaseURL = strings.TrimSpace(c.LLM.BaseURL)
	c.LLM.Model = strings.TrimSpace(c.LLM.Model)
	switch c.LLM.Provider {
	case ProviderOpenAI:
		if c.LLM.BaseURL == "" {
			c.LLM.BaseURL = defaultOpenAIBaseURL
		}
		if c.LLM.Model == "" {
			c.LLM.Model = defaultOpenAIModel
		}
	case ProviderOllama:
		if c.LLM.BaseURL == "" {
			c.LLM.BaseURL = defaultOllamaBaseURL
		}
		if c.LLM.Model == "" {
			c.LLM.Model = defaultOllamaModel
		}
	case ProviderGemini:
		if c.LLM.Model == "" {
			c.LLM.Model = defaultGeminiModel
		}
	}

	c.LLM.APIKey = strings.TrimSpace(c.LLM.APIKey)
	if c.LLM.APIKey == "" {
		c.LLM.APIKey = lookupFirstEnv(apiKeyEnv(c.LLM.Provider)...)
	}
	c.LLM.Referer = strings.TrimSpace(c.LLM.Referer)
	if c.LLM.Referer == "" {
		c.LLM.Referer = defaultLLMReferer
	}
	c.LLM.Title = strings.TrimSpace(c.LLM.Title)
	if c.LLM.Title == "" {
		c.LLM.Title = defaultLLMTitle
	}
	if c.LLM.TimeoutSeconds <= 0 {
		c.LLM.TimeoutSeconds = defaultLLMTimeoutSeconds
	}
	if c.LLM.MaxTokens == 0 {
		c.LLM.MaxTokens = defaultLLMMaxTokens
	}
	if c.LLM.RetryAttempts <= 0 {
		c.LLM.RetryAttempts = defaultLLMRetryAttempts
	}
}

func apiKeyEnv(provider string) []string {
	switch provider {
	case ProviderOpenAI:
		return []string{"KRK_LLM_API_KEY", "OPENROUTER_API_KEY", "OPENAI_API_KEY"}
	case ProviderGemini:
		return []string{"KRK_LLM_API_KEY", "GEMINI_API_KEY"}
	default:
		return []string{"KRK_LLM_API_KEY"}
	}
}

func lookupFirstEnv(keys ...string) string {
	for _, key := range keys {
		if value, ok := os.LookupEnv(key); ok && strings.TrimSpace(value) != "" {
			return strings.TrimSpace(value)
		}
	}
	return ""
}

func (c *Config) normalizeSession() {
	lang := strings.TrimSpace(c.Session.DefaultLanguage)
	if lang == "" {
		lang = defaultSessionLanguage
	}
	c.Session.DefaultLanguage = language.ToISO2(lang)
	c.Session.DefaultDateFrom = strings.TrimSpace(c.Session.DefaultDateFrom)
	if c.Session.DefaultDateFrom == "" {
		c.Session.DefaultDateFrom = defaultSessionDateFrom
	}
	c.Session.DefaultDateTo = strings.TrimSpace(c.Session.DefaultDateTo)
	if c.Session.DefaultDateTo == "" {
		c.Session.DefaultDateTo = defaultSessionDateTo
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if c.Logging.RetentionDays < 0 {
		c.Logging.RetentionDays = 0
	}
}
