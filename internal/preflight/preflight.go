package preflight

import (
	"context"

	"krk/internal/config"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name    string
	Passed  bool
	Skipped bool
	Detail  string
}

// HealthChecker is any remote service that can verify its own reachability.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// Targets are the service clients built from the configuration. Nil targets
// are reported as skipped.
type Targets struct {
	Catalog HealthChecker
	Model   HealthChecker
}

// RunAll executes every check for cfg.
func RunAll(ctx context.Context, cfg *config.Config, targets Targets) []Result {
	if cfg == nil {
		return nil
	}

	results := []Result{
		CheckVocabulary(cfg.Paths.VocabDir),
		CheckDirectoryAccess("State directory", cfg.Paths.StateDir),
		CheckDirectoryAccess("Log directory", cfg.Paths.LogDir),
	}

	switch {
	case targets.Catalog != nil:
		results = append(results, CheckService(ctx, "TMDB", targets.Catalog))
	default:
		results = append(results, Result{Name: "TMDB", Skipped: true, Detail: "api key not set"})
	}

	modelName := "LLM (" + cfg.LLM.Provider + ")"
	switch {
	case cfg.LocalOnly():
		results = append(results, Result{Name: "LLM", Skipped: true, Detail: "provider is none (local inference only)"})
	case targets.Model != nil:
		results = append(results, CheckService(ctx, modelName, targets.Model))
	default:
		results = append(results, Result{Name: modelName, Skipped: true, Detail: "credentials not set"})
	}
	return results
}

// Failed reports whether any non-skipped check failed.
func Failed(results []Result) bool {
	for _, r := range results {
		if !r.Passed && !r.Skipped {
			return true
		}
	}
	return false
}
