package main

import (
	"context"
	"fmt"

	"krk/internal/config"
	"krk/internal/services/gemini"
	"krk/internal/services/llm"
	"krk/internal/services/ollama"
)

// modelBackend is a text generator that can also report its own health.
type modelBackend interface {
	Complete(ctx context.Context, prompt string, maxTokens int) (string, error)
	HealthCheck(ctx context.Context) error
}

// newModelBackend returns nil without error when the provider is "none".
func newModelBackend(ctx context.Context, cfg *config.Config) (modelBackend, error) {
	if cfg.LocalOnly() {
		return nil, nil
	}
	if err := cfg.RequireLLM(); err != nil {
		return nil, err
	}

	switch cfg.LLM.Provider {
	case config.ProviderOpenAI:
		return llm.NewClient(llm.Config{
			APIKey:         cfg.LLM.APIKey,
			BaseURL:        cfg.LLM.BaseURL,
			Model:          cfg.LLM.Model,
			Referer:        cfg.LLM.Referer,
			Title:          cfg.LLM.Title,
			TimeoutSeconds: cfg.LLM.TimeoutSeconds,
		}, llm.WithRetryMaxAttempts(cfg.LLM.RetryAttempts)), nil
	case config.ProviderOllama:
		return ollama.NewClient(ollama.Config{
			Host:           cfg.LLM.BaseURL,
			Model:          cfg.LLM.Model,
			TimeoutSeconds: cfg.LLM.TimeoutSeconds,
		}), nil
	case config.ProviderGemini:
		client, err := gemini.NewClient(ctx, gemini.Config{
			APIKey:         cfg.LLM.APIKey,
			BaseURL:        cfg.LLM.BaseURL,
			Model:          cfg.LLM.Model,
			TimeoutSeconds: cfg.LLM.TimeoutSeconds,
		})
		if err != nil {
			return nil, err
		}
		return client, nil
	default:
		return nil, fmt.Errorf("unsupported llm provider %q", cfg.LLM.Provider)
	}
}
