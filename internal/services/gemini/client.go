// Package gemini adapts Google's Gemini API to the fallback completion
// contract.
package gemini

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"google.golang.org/genai"
)

const defaultModel = "gemini-2.0-flash"

// Config captures the API credentials and model.
type Config struct {
	APIKey         string
	BaseURL        string
	Model          string
	TimeoutSeconds int
}

type generator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Client generates text with a Gemini model.
type Client struct {
	models generator
	model  string
}

// NewClient creates a Gemini API client.
func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	apiKey := strings.TrimSpace(cfg.APIKey)
	if apiKey == "" {
		return nil, fmt.Errorf("gemini: api key is required")
	}
	clientCfg := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.TimeoutSeconds > 0 {
		clientCfg.HTTPClient = &http.Client{Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second}
	}
	if base := strings.TrimSpace(cfg.BaseURL); base != "" {
		clientCfg.HTTPOptions = genai.HTTPOptions{BaseURL: base}
	}
	client, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return newWithGenerator(client.Models, cfg.Model), nil
}

func newWithGenerator(models generator, model string) *Client {
	model = strings.TrimSpace(model)
	if model == "" {
		model = defaultModel
	}
	return &Client{models: models, model: model}
}

// Complete generates a reply to prompt bounded to maxTokens output tokens.
func (c *Client) Complete(ctx context.Context, prompt string, maxTokens int) (string, error) {
	config := &genai.GenerateContentConfig{Temperature: genai.Ptr[float32](0)}
	if maxTokens > 0 {
		config.MaxOutputTokens = int32(maxTokens)
	}
	resp, err := c.models.GenerateContent(ctx, c.model, genai.Text(prompt), config)
	if err != nil {
		return "", fmt.Errorf("gemini generate failed: %w", err)
	}
	if resp == nil || len(resp.Candidates) == 0 {
		return "", fmt.Errorf("gemini generate: no candidates returned")
	}
	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", fmt.Errorf("gemini generate: empty content (finish_reason=%s)", resp.Candidates[0].FinishReason)
	}
	return text, nil
}

// HealthCheck issues a minimal generation to verify key and model.
func (c *Client) HealthCheck(ctx context.Context) error {
	if _, err := c.Complete(ctx, "Reply with the single word OK.", 5); err != nil {
		return fmt.Errorf("gemini health: %w", err)
	}
	return nil
}
