package config

import (
	"errors"
	"fmt"
	"strings"

	"krk/internal/daterange"
)

// Validate ensures the configuration is usable. Credentials are checked by
// RequireTMDB and RequireLLM so commands that never reach a remote service
// still run without them.
func (c *Config) Validate() error {
	if err := c.validateLLM(); err != nil {
		return err
	}
	if err := c.validateSession(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateLLM() error {
	switch c.LLM.Provider {
	case ProviderOpenAI, ProviderOllama, ProviderGemini, ProviderNone:
	default:
		return fmt.Errorf("llm.provider %q is not supported (use openai, ollama, gemini, or none)", c.LLM.Provider)
	}
	if c.LLM.MaxTokens <= 0 {
		return errors.New("llm.max_tokens must be positive")
	}
	return nil
}

func (c *Config) validateSession() error {
	if c.Session.DefaultLanguage == "" {
		return errors.New("session.default_language must be an ISO 639 code or a known language name")
	}
	if !daterange.ValidDate(c.Session.DefaultDateFrom) {
		return fmt.Errorf("session.default_date_from %q must be YYYY-MM-DD", c.Session.DefaultDateFrom)
	}
	if !daterange.ValidDate(c.Session.DefaultDateTo) {
		return fmt.Errorf("session.default_date_to %q must be YYYY-MM-DD", c.Session.DefaultDateTo)
	}
	if !daterange.Ordered(c.Session.DefaultDateFrom, c.Session.DefaultDateTo) {
		return errors.New("session.default_date_from must not be after session.default_date_to")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("logging.level %q is not supported (use debug, info, warn, or error)", c.Logging.Level)
	}
}

// RequireTMDB reports a configuration error when no catalog credential is set.
func (c *Config) RequireTMDB() error {
	if strings.TrimSpace(c.TMDB.APIKey) != "" {
		return nil
	}
	return fmt.Errorf("tmdb.api_key is required. Set TMDB_API_KEY env var or edit %s (create with 'krk config init')", configPathHint())
}

// RequireLLM reports a configuration error when the selected provider cannot
// be reached without a credential that is missing.
func (c *Config) RequireLLM() error {
	switch c.LLM.Provider {
	case ProviderOpenAI:
		if c.LLM.APIKey == "" && c.LLM.BaseURL == defaultOpenAIBaseURL {
			return fmt.Errorf("llm.api_key is required for %s. Set KRK_LLM_API_KEY or OPENROUTER_API_KEY, or edit %s", c.LLM.BaseURL, configPathHint())
		}
	case ProviderGemini:
		if c.LLM.APIKey == "" {
			return fmt.Errorf("llm.api_key is required for gemini. Set GEMINI_API_KEY or edit %s", configPathHint())
		}
	}
	return nil
}

func configPathHint() string {
	path, err := DefaultConfigPath()
	if err != nil {
		return "~/.config/krk/config.toml"
	}
	return path
}
