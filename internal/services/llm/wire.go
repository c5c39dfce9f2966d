package llm

import (
	"fmt"
	"strings"
)

type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatChoice accepts the streaming delta shape and legacy text completions
// too, since some servers send them even when stream=false.
type chatChoice struct {
	Message      chatCompletionMessage `json:"message"`
	Delta        chatCompletionMessage `json:"delta"`
	Text         string                `json:"text"`
	FinishReason string                `json:"finish_reason"`
}

type chatCompletionMessage struct {
	Content string `json:"content"`
	Refusal string `json:"refusal"`
}

type chatCompletionResponse struct {
	Choices []chatChoice `json:"choices"`
	Error   *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// text returns the first non-blank content across choices. Blank responses
// become an *emptyContentError so the retry policy can try again.
func (r chatCompletionResponse) text(op string, raw []byte) (string, error) {
	empty := &emptyContentError{op: op, snippet: snippet(string(raw))}
	for _, choice := range r.Choices {
		for _, candidate := range []string{choice.Message.Content, choice.Delta.Content, choice.Text} {
			if s := strings.TrimSpace(candidate); s != "" {
				return s, nil
			}
		}
		if empty.finishReason == "" {
			empty.finishReason = strings.TrimSpace(choice.FinishReason)
		}
		if empty.refusal == "" {
			empty.refusal = strings.TrimSpace(choice.Message.Refusal + choice.Delta.Refusal)
		}
	}
	return "", empty
}

type emptyContentError struct {
	op           string
	finishReason string
	refusal      string
	snippet      string
}

func (e *emptyContentError) Error() string {
	return fmt.Sprintf("%s: empty content (finish_reason=%q, refusal=%q, response_snippet=%s)",
		e.op, e.finishReason, e.refusal, e.snippet)
}

// snippet collapses whitespace and keeps the first 160 runes of a body.
func snippet(body string) string {
	clean := strings.Join(strings.Fields(body), " ")
	if clean == "" {
		return "<empty>"
	}
	if runes := []rune(clean); len(runes) > 160 {
		return string(runes[:160]) + "..."
	}
	return clean
}
