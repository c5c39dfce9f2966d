package gemini

import (
	"context"
	"errors"
	"strings"
	"testing"

	"google.golang.org/genai"
)

type stubGenerator struct {
	reply  *genai.GenerateContentResponse
	err    error
	model  string
	prompt string
	config *genai.GenerateContentConfig
}

func (s *stubGenerator) GenerateContent(_ context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	s.model = model
	s.config = config
	if len(contents) > 0 && len(contents[0].Parts) > 0 {
		s.prompt = contents[0].Parts[0].Text
	}
	return s.reply, s.err
}

func reply(text string) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{Content: genai.NewContentFromText(text, genai.RoleModel)}},
	}
}

func TestCompleteSendsPromptAndLimit(t *testing.T) {
	stub := &stubGenerator{reply: reply("LANGUAGE = \"ta\"\n")}
	client := newWithGenerator(stub, "")

	content, err := client.Complete(context.Background(), "tamil films", 200)
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if content != `LANGUAGE = "ta"` {
		t.Fatalf("unexpected content %q", content)
	}
	if stub.model != defaultModel || stub.prompt != "tamil films" {
		t.Fatalf("unexpected request model=%q prompt=%q", stub.model, stub.prompt)
	}
	if stub.config.MaxOutputTokens != 200 {
		t.Fatalf("expected max output tokens 200, got %d", stub.config.MaxOutputTokens)
	}
}

func TestCompleteErrors(t *testing.T) {
	base := errors.New("quota exceeded")
	client := newWithGenerator(&stubGenerator{err: base}, "gemini-pro")
	if _, err := client.Complete(context.Background(), "x", 10); !errors.Is(err, base) {
		t.Fatalf("expected wrapped error, got %v", err)
	}

	client = newWithGenerator(&stubGenerator{reply: &genai.GenerateContentResponse{}}, "gemini-pro")
	if _, err := client.Complete(context.Background(), "x", 10); err == nil || !strings.Contains(err.Error(), "no candidates") {
		t.Fatalf("expected no candidates error, got %v", err)
	}
}

func TestNewClientRequiresKey(t *testing.T) {
	if _, err := NewClient(context.Background(), Config{}); err == nil {
		t.Fatal("expected missing key error")
	}
}
