package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/fwojciec/stockquote"
)

var _ stockquote.Fetcher = (*RetryFetcher)(nil)

// DefaultRetryDelays returns the backoff delays for fetch retries: 500ms, 1s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{500 * time.Millisecond, 1 * time.Second}
}

// RetryFetcher wraps a Fetcher and retries transient failures with backoff.
// It makes one attempt more than it has delays.
type RetryFetcher struct {
	next   stockquote.Fetcher
	delays []time.Duration
}

// NewRetryFetcher creates a RetryFetcher. A nil delays slice uses
// DefaultRetryDelays.
func NewRetryFetcher(next stockquote.Fetcher, delays []time.Duration) *RetryFetcher {
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	return &RetryFetcher{next: next, delays: delays}
}

// Fetch retrieves url, retrying while the error is transient.
func (f *RetryFetcher) Fetch(ctx context.Context, url string) (string, error) {
	var lastErr error
	for attempt := 0; attempt <= len(f.delays); attempt++ {
		html, err := f.next.Fetch(ctx, url)
		if err == nil {
			return html, nil
		}
		lastErr = err

		if attempt == len(f.delays) || !Transient(err) {
			break
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(f.delays[attempt]):
		}
	}
	return "", lastErr
}

// Close closes the wrapped fetcher.
func (f *RetryFetcher) Close() error {
	return f.next.Close()
}

// Transient reports whether a fetch error may succeed on retry: server
// errors, rate limiting and connection failures. Redirects, client errors
// and context cancellation are final.
func Transient(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.StatusCode >= 500 || statusErr.StatusCode == http.StatusTooManyRequests
	}
	return true
}
