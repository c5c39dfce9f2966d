// Package llm provides an OpenAI-compatible chat completion client used as a
// fallback backend.
//
// # Configuration
//
// Requires model and, for hosted endpoints, api_key. base_url defaults to
// OpenRouter; any server speaking the /chat/completions schema works.
//
// # Entry Points
//
// NewClient: construct client from Config.
// Client.Complete: send a prompt, receive the model's text.
// Client.HealthCheck: verify key, endpoint and model.
//
// # Retry Behaviour
//
// A single attempt is made by default. With WithRetryMaxAttempts the client
// retries HTTP 408/429/5xx responses, empty completions and network timeouts
// with exponential backoff (base 1s, max 10s). Context cancellation aborts
// retries immediately.
package llm
