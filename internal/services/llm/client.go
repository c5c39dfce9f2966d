package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	defaultBaseURL     = "https://openrouter.ai/api/v1/chat/completions"
	defaultHTTPTimeout = 30 * time.Second
)

// Config captures the runtime settings required to talk to the model.
type Config struct {
	APIKey         string
	BaseURL        string
	Model          string
	Referer        string
	Title          string
	TimeoutSeconds int
}

func (c Config) normalized() Config {
	c.APIKey = strings.TrimSpace(c.APIKey)
	c.BaseURL = strings.TrimSpace(c.BaseURL)
	c.Model = strings.TrimSpace(c.Model)
	c.Referer = strings.TrimSpace(c.Referer)
	c.Title = strings.TrimSpace(c.Title)
	if c.BaseURL == "" {
		c.BaseURL = defaultBaseURL
	}
	return c
}

func (c Config) timeout() time.Duration {
	if c.TimeoutSeconds > 0 {
		return time.Duration(c.TimeoutSeconds) * time.Second
	}
	return defaultHTTPTimeout
}

// Client talks to an OpenAI-compatible /chat/completions endpoint such as
// OpenRouter, OpenAI, or a local llama.cpp server.
type Client struct {
	cfg   Config
	http  *http.Client
	retry retryPolicy
}

// Option customizes the client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.http = client
		}
	}
}

// WithRetryMaxAttempts sets the total attempt count. Values below one mean a
// single attempt.
func WithRetryMaxAttempts(attempts int) Option {
	return func(c *Client) { c.retry.attempts = attempts }
}

// WithRetryBackoff overrides the exponential backoff bounds.
func WithRetryBackoff(baseDelay, maxDelay time.Duration) Option {
	return func(c *Client) {
		c.retry.base = baseDelay
		c.retry.max = maxDelay
	}
}

// WithSleeper replaces the real timer between attempts.
func WithSleeper(sleeper func(time.Duration)) Option {
	return func(c *Client) { c.retry.sleeper = sleeper }
}

// NewClient constructs a client using the supplied configuration.
func NewClient(cfg Config, opts ...Option) *Client {
	cfg = cfg.normalized()
	client := &Client{
		cfg:   cfg,
		http:  &http.Client{Timeout: cfg.timeout()},
		retry: defaultRetryPolicy(),
	}
	for _, opt := range opts {
		opt(client)
	}
	return client
}

// Complete sends prompt as a single user message and returns the model's
// text, bounded to maxTokens when positive.
func (c *Client) Complete(ctx context.Context, prompt string, maxTokens int) (string, error) {
	const op = "llm complete"
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return "", errors.New(op + ": prompt required")
	}
	if c.cfg.APIKey == "" && c.cfg.BaseURL == defaultBaseURL {
		return "", errors.New(op + ": api key required")
	}
	req := chatCompletionRequest{
		Model:     c.cfg.Model,
		Messages:  []chatMessage{{Role: "user", Content: prompt}},
		MaxTokens: max(maxTokens, 0),
	}

	var text string
	err := c.retry.do(ctx, op, func() error {
		resp, raw, err := c.post(ctx, req)
		if err != nil {
			return err
		}
		text, err = resp.text(op, raw)
		return err
	})
	return text, err
}

// HealthCheck issues a tiny completion to verify the endpoint, key and model.
func (c *Client) HealthCheck(ctx context.Context) error {
	reply, err := c.Complete(ctx, "Reply with the single word OK.", 5)
	if err != nil {
		return fmt.Errorf("llm health: %w", err)
	}
	if strings.TrimSpace(reply) == "" {
		return errors.New("llm health: unexpected response")
	}
	return nil
}

func (c *Client) post(ctx context.Context, payload chatCompletionRequest) (chatCompletionResponse, []byte, error) {
	var out chatCompletionResponse
	body, err := json.Marshal(payload)
	if err != nil {
		return out, nil, fmt.Errorf("llm request: encode body: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL, bytes.NewReader(body))
	if err != nil {
		return out, nil, fmt.Errorf("llm request: new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	}
	// OpenRouter attributes traffic through these optional headers.
	if c.cfg.Referer != "" {
		req.Header.Set("HTTP-Referer", c.cfg.Referer)
	}
	if c.cfg.Title != "" {
		req.Header.Set("X-Title", c.cfg.Title)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return out, nil, fmt.Errorf("llm request: %w", err)
	}
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return out, nil, fmt.Errorf("llm request: read body: %w", err)
	}
	if resp.StatusCode >= http.StatusMultipleChoices {
		return out, raw, newStatusError(resp, raw)
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, raw, fmt.Errorf("llm request: decode response: %w", err)
	}
	if out.Error != nil {
		return out, raw, fmt.Errorf("llm request: api error: %s", strings.TrimSpace(out.Error.Message))
	}
	return out, raw, nil
}
