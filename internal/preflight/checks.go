package preflight

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net"
	"os"
	"time"

	"golang.org/x/sys/unix"

	"krk/internal/vocab"
)

const serviceCheckTimeout = 30 * time.Second

// CheckService runs a single health check with a bounded timeout.
func CheckService(ctx context.Context, name string, checker HealthChecker) Result {
	checkCtx, cancel := context.WithTimeout(ctx, serviceCheckTimeout)
	defer cancel()

	if err := checker.HealthCheck(checkCtx); err != nil {
		return Result{Name: name, Detail: summarizeError(err)}
	}
	return Result{Name: name, Passed: true, Detail: "API reachable"}
}

// CheckVocabulary loads the vocabulary directory and reports entry counts.
func CheckVocabulary(dir string) Result {
	const name = "Vocabulary"
	v, err := vocab.LoadDir(dir)
	if err != nil {
		return Result{Name: name, Detail: err.Error()}
	}
	counts := v.Counts()
	detail := fmt.Sprintf("%s (%d actors, %d genres, %d languages)", dir,
		counts[vocab.KindActor], counts[vocab.KindGenre], counts[vocab.KindLanguage])
	if counts[vocab.KindActor]+counts[vocab.KindGenre]+counts[vocab.KindLanguage] == 0 {
		return Result{Name: name, Detail: detail + " (error: no entries)"}
	}
	return Result{Name: name, Passed: true, Detail: detail}
}

// CheckDirectoryAccess passes when path is a directory the current user can
// list, create files in, and read back.
func CheckDirectoryAccess(name, path string) Result {
	if problem := directoryProblem(path); problem != "" {
		return Result{Name: name, Detail: path + " (error: " + problem + ")"}
	}
	return Result{Name: name, Passed: true, Detail: path + " (read/write ok)"}
}

func directoryProblem(path string) string {
	if path == "" {
		return "not configured"
	}
	info, err := os.Stat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return "does not exist"
	case err != nil:
		return "stat: " + err.Error()
	case !info.IsDir():
		return "is not a directory"
	}
	if err := unix.Access(path, unix.R_OK|unix.W_OK|unix.X_OK); err != nil {
		return "insufficient permissions: " + err.Error()
	}
	return ""
}

func summarizeError(err error) string {
	if errors.Is(err, context.DeadlineExceeded) {
		return "health check timed out (API unresponsive)"
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return "health check timed out (API unreachable)"
	}
	return err.Error()
}
