// Package services defines shared utilities consumed by the turn pipeline and
// its external integrations.
//
// Key responsibilities:
//   - Context helpers that stamp session IDs, turn numbers, and correlation
//     identifiers for logging.
//   - Structured error markers plus the Wrap helper, and UserMessage which
//     condenses a failed turn into the line shown on the chat surface.
//
// Backends for the generative fallback live in the sub-packages (llm, ollama,
// gemini); each satisfies the same Complete(ctx, prompt, maxTokens) contract.
package services
