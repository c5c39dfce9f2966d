package preflight

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"krk/internal/config"
	"krk/internal/vocab"
)

type stubChecker struct{ err error }

func (s stubChecker) HealthCheck(context.Context) error { return s.err }

func TestCheckDirectoryAccess(t *testing.T) {
	if result := CheckDirectoryAccess("test", t.TempDir()); !result.Passed {
		t.Fatalf("expected pass for temp dir, got: %s", result.Detail)
	}
	if result := CheckDirectoryAccess("test", filepath.Join(t.TempDir(), "nope")); result.Passed || !strings.Contains(result.Detail, "does not exist") {
		t.Fatalf("expected missing dir failure, got %+v", result)
	}
	file := filepath.Join(t.TempDir(), "file.txt")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if result := CheckDirectoryAccess("test", file); result.Passed {
		t.Fatal("expected failure for file path")
	}
}

func TestCheckVocabulary(t *testing.T) {
	dir := t.TempDir()
	if result := CheckVocabulary(dir); result.Passed {
		t.Fatalf("expected failure for empty dir, got %+v", result)
	}
	if _, err := vocab.WriteSeed(dir, false); err != nil {
		t.Fatalf("WriteSeed: %v", err)
	}
	result := CheckVocabulary(dir)
	if !result.Passed || !strings.Contains(result.Detail, "actors") {
		t.Fatalf("expected seeded vocabulary to pass, got %+v", result)
	}
}

func TestCheckServiceSummarizesTimeouts(t *testing.T) {
	result := CheckService(context.Background(), "LLM", stubChecker{err: context.DeadlineExceeded})
	if result.Passed || !strings.Contains(result.Detail, "timed out") {
		t.Fatalf("unexpected result %+v", result)
	}
	if result := CheckService(context.Background(), "TMDB", stubChecker{}); !result.Passed {
		t.Fatalf("expected pass, got %+v", result)
	}
}

func TestRunAll(t *testing.T) {
	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.VocabDir = filepath.Join(base, "vocab")
	cfg.Paths.StateDir = filepath.Join(base, "state")
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	for _, dir := range []string{cfg.Paths.StateDir, cfg.Paths.LogDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := vocab.WriteSeed(cfg.Paths.VocabDir, false); err != nil {
		t.Fatalf("WriteSeed: %v", err)
	}

	results := RunAll(context.Background(), &cfg, Targets{Model: stubChecker{err: errors.New("401 unauthorized")}})
	if len(results) != 5 {
		t.Fatalf("expected 5 results, got %+v", results)
	}
	if !results[3].Skipped || results[3].Name != "TMDB" {
		t.Fatalf("expected TMDB skipped without a client, got %+v", results[3])
	}
	if results[4].Passed || results[4].Name != "LLM (openai)" {
		t.Fatalf("expected failing model check, got %+v", results[4])
	}
	if !Failed(results) {
		t.Fatal("expected overall failure")
	}

	cfg.LLM.Provider = config.ProviderNone
	results = RunAll(context.Background(), &cfg, Targets{Catalog: stubChecker{}})
	if Failed(results) {
		t.Fatalf("expected all checks to pass or skip, got %+v", results)
	}
}
