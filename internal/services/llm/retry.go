package llm

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"
)

type statusError struct {
	code       int
	body       string
	retryAfter time.Duration
}

func newStatusError(resp *http.Response, body []byte) *statusError {
	return &statusError{
		code:       resp.StatusCode,
		body:       strings.TrimSpace(string(body)),
		retryAfter: parseRetryAfter(resp.Header.Get("Retry-After"), time.Now()),
	}
}

func (e *statusError) Error() string {
	return fmt.Sprintf("llm request: http %d: %s", e.code, e.body)
}

type retryPolicy struct {
	attempts int
	base     time.Duration
	max      time.Duration
	sleeper  func(time.Duration)
}

func defaultRetryPolicy() retryPolicy {
	return retryPolicy{attempts: 1, base: time.Second, max: 10 * time.Second}
}

// do runs call until it succeeds, fails permanently, or attempts run out.
func (p retryPolicy) do(ctx context.Context, op string, call func() error) error {
	attempts := max(p.attempts, 1)
	for attempt := 1; ; attempt++ {
		err := call()
		if err == nil {
			return nil
		}
		wait, retryable := p.delayFor(err, attempt)
		if !retryable || attempt >= attempts || ctx.Err() != nil {
			if attempt > 1 {
				return fmt.Errorf("%s: failed after %d attempts: %w", op, attempt, err)
			}
			return err
		}
		if err := p.sleep(ctx, wait); err != nil {
			return err
		}
	}
}

// delayFor classifies err. Rate limits, timeouts, server errors, and empty
// completions are retried; everything else fails immediately.
func (p retryPolicy) delayFor(err error, attempt int) (time.Duration, bool) {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return 0, false
	}
	var empty *emptyContentError
	if errors.As(err, &empty) {
		return p.backoff(attempt), true
	}
	var status *statusError
	if errors.As(err, &status) {
		if status.code != http.StatusRequestTimeout && status.code != http.StatusTooManyRequests && status.code < 500 {
			return 0, false
		}
		if status.retryAfter > 0 {
			return p.clamp(status.retryAfter), true
		}
		return p.backoff(attempt), true
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return p.backoff(attempt), true
	}
	return 0, false
}

// backoff doubles base per attempt: base, 2*base, 4*base, ... up to max.
func (p retryPolicy) backoff(attempt int) time.Duration {
	if p.base <= 0 {
		return 0
	}
	delay := p.base
	for i := 1; i < attempt && (p.max <= 0 || delay < p.max); i++ {
		delay *= 2
	}
	return p.clamp(delay)
}

func (p retryPolicy) clamp(d time.Duration) time.Duration {
	if p.max > 0 && d > p.max {
		return p.max
	}
	return max(d, 0)
}

func (p retryPolicy) sleep(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if d <= 0 {
		return nil
	}
	if p.sleeper != nil {
		p.sleeper(d)
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// parseRetryAfter accepts delta-seconds or an HTTP date.
func parseRetryAfter(value string, now time.Time) time.Duration {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0
	}
	if seconds, err := strconv.Atoi(value); err == nil {
		return max(time.Duration(seconds)*time.Second, 0)
	}
	if when, err := http.ParseTime(value); err == nil {
		return max(when.Sub(now), 0)
	}
	return 0
}
