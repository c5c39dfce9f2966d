package services_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"krk/internal/services"
)

func TestWrapIncludesContext(t *testing.T) {
	base := errors.New("boom")
	err := services.Wrap(services.ErrExternalTool, "fallback", "complete", "request failed", base)
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, services.ErrExternalTool) {
		t.Fatalf("expected marker to be retained, got %v", err)
	}
	if !errors.Is(err, base) {
		t.Fatalf("expected wrapped error to contain base error, got %v", err)
	}
	msg := err.Error()
	for _, fragment := range []string{"fallback", "complete", "request failed"} {
		if !strings.Contains(msg, fragment) {
			t.Fatalf("expected %q in error string %q", fragment, msg)
		}
	}
}

func TestWrapDefaultsToTransient(t *testing.T) {
	err := services.Wrap(nil, "", "", "", nil)
	if !errors.Is(err, services.ErrTransient) {
		t.Fatalf("expected transient marker, got %v", err)
	}
	if !strings.Contains(err.Error(), "service failure") {
		t.Fatalf("expected placeholder detail, got %q", err.Error())
	}
}

func TestMarker(t *testing.T) {
	wrapped := fmt.Errorf("turn 3: %w", services.Wrap(services.ErrConfiguration, "config", "load", "bad", nil))
	if got := services.Marker(wrapped); got != services.ErrConfiguration {
		t.Fatalf("Marker = %v, want configuration", got)
	}
	if got := services.Marker(errors.New("plain")); got != nil {
		t.Fatalf("Marker(plain) = %v, want nil", got)
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"cancelled", fmt.Errorf("llm: %w", context.Canceled), "cancelled"},
		{"deadline", context.DeadlineExceeded, "timed out waiting for a response"},
		{
			"external",
			services.Wrap(services.ErrExternalTool, "fallback", "complete", "", errors.New("connection refused")),
			"service unavailable: fallback: complete: connection refused",
		},
		{
			"configuration",
			services.Wrap(services.ErrConfiguration, "tmdb", "discover", "api key missing", nil),
			"configuration problem: tmdb: discover: api key missing",
		},
		{"plain", errors.New("first\nsecond"), "first"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := services.UserMessage(tt.err); got != tt.want {
				t.Fatalf("UserMessage = %q, want %q", got, tt.want)
			}
		})
	}
}
