package logs

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

const (
	defaultPollInterval = 250 * time.Millisecond
	maxLineBytes        = 1024 * 1024
)

// Last returns up to limit trailing lines of path that contain search (case
// insensitive; empty matches everything) and the end-of-file offset. A
// missing file yields no lines and offset 0.
func Last(path string, limit int, search string) ([]string, int64, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, 0, nil
		}
		return nil, 0, fmt.Errorf("open log file: %w", err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, 0, fmt.Errorf("stat log file: %w", err)
	}
	if info.IsDir() {
		return nil, 0, fmt.Errorf("log path %q is a directory", path)
	}
	if limit <= 0 {
		return nil, info.Size(), nil
	}

	ring := make([]string, limit)
	count, idx := 0, 0
	offset, err := scanLines(file, func(line string) error {
		if !matches(line, search) {
			return nil
		}
		ring[idx] = line
		idx = (idx + 1) % limit
		if count < limit {
			count++
		}
		return nil
	})
	if err != nil {
		return nil, 0, err
	}

	lines := make([]string, count)
	if count == limit {
		for i := range count {
			lines[i] = ring[(idx+i)%limit]
		}
	} else {
		copy(lines, ring[:count])
	}
	return lines, offset, nil
}

// FollowOptions controls Follow.
type FollowOptions struct {
	Offset int64
	Search string
	// Poll defaults to 250ms.
	Poll time.Duration
}

// Follow calls emit for every matching line appended after opts.Offset until
// ctx is done or emit fails. A truncated file is read again from the start.
// Cancellation is not reported as an error.
func Follow(ctx context.Context, path string, opts FollowOptions, emit func(string) error) error {
	poll := opts.Poll
	if poll <= 0 {
		poll = defaultPollInterval
	}
	ticker := time.NewTicker(poll)
	defer ticker.Stop()

	offset := opts.Offset
	for {
		next, err := readFrom(path, offset, opts.Search, emit)
		if err != nil {
			return err
		}
		offset = next

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

func readFrom(path string, offset int64, search string, emit func(string) error) (int64, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return 0, nil
		}
		return offset, fmt.Errorf("open log file: %w", err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return offset, fmt.Errorf("stat log file: %w", err)
	}
	if offset < 0 || offset > info.Size() {
		offset = 0
	}
	if _, err := file.Seek(offset, io.SeekStart); err != nil {
		return offset, fmt.Errorf("seek log file: %w", err)
	}

	read, err := scanLines(file, func(line string) error {
		if !matches(line, search) {
			return nil
		}
		return emit(line)
	})
	if err != nil {
		return offset, err
	}
	return read, nil
}

// scanLines feeds complete lines to fn and returns the offset just past the
// last complete line, so a partially written line is picked up next time.
func scanLines(file *os.File, fn func(string) error) (int64, error) {
	start, err := file.Seek(0, io.SeekCurrent)
	if err != nil {
		return 0, fmt.Errorf("determine log offset: %w", err)
	}
	reader := bufio.NewReaderSize(file, 64*1024)
	offset := start
	for {
		line, err := reader.ReadString('\n')
		if errors.Is(err, io.EOF) {
			return offset, nil
		}
		if err != nil {
			return offset, fmt.Errorf("read log file: %w", err)
		}
		offset += int64(len(line))
		line = strings.TrimRight(line, "\r\n")
		if len(line) > maxLineBytes {
			line = line[:maxLineBytes]
		}
		if err := fn(line); err != nil {
			return offset, err
		}
	}
}

func matches(line, search string) bool {
	search = strings.TrimSpace(search)
	if search == "" {
		return true
	}
	return strings.Contains(strings.ToLower(line), strings.ToLower(search))
}
