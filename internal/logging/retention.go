package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

// PruneLogs deletes *.log files in dir whose modification time is older than
// retentionDays. Paths listed in keep are never touched. It returns the number
// of files removed; retentionDays <= 0 disables pruning.
func PruneLogs(logger *slog.Logger, dir string, retentionDays int, keep ...string) int {
	if retentionDays <= 0 || dir == "" {
		return 0
	}
	matches, err := filepath.Glob(filepath.Join(dir, "*.log"))
	if err != nil {
		return 0
	}
	kept := make(map[string]bool, len(keep))
	for _, path := range keep {
		kept[filepath.Clean(path)] = true
	}

	cutoff := time.Now().AddDate(0, 0, -retentionDays)
	removed := 0
	for _, path := range matches {
		if kept[filepath.Clean(path)] {
			continue
		}
		info, err := os.Stat(path)
		if err != nil || info.IsDir() || info.ModTime().After(cutoff) {
			continue
		}
		if err := os.Remove(path); err != nil {
			WarnWithContext(logger, "could not prune old log", "log_prune_failed",
				String("path", path),
				Error(err),
				String(FieldErrorHint, "check permissions on paths.log_dir"),
				String(FieldImpact, "old log file stays on disk"),
			)
			continue
		}
		removed++
		if logger != nil {
			logger.Debug("pruned old log", String("path", path), String(FieldEventType, "log_pruned"))
		}
	}
	return removed
}
