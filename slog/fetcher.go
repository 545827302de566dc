// Package slog provides log/slog decorators for stockquote services.
package slog

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/fwojciec/stockquote"
)

// Ensure LoggingFetcher implements stockquote.Fetcher.
var _ stockquote.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with request logging.
type LoggingFetcher struct {
	next   stockquote.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next stockquote.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// redirector is implemented by fetch errors that report a redirect.
type redirector interface {
	Redirect() bool
}

// Fetch logs the URL being fetched and delegates to the wrapped fetcher.
// Failed fetches are logged at warn level; a redirect is flagged since the
// quote site redirects unknown symbols.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (html string, err error) {
	defer func(begin time.Time) {
		if err == nil {
			f.logger.Info("fetch",
				"url", url,
				"bytes", len(html),
				"duration", time.Since(begin),
			)
			return
		}

		var r redirector
		f.logger.Warn("fetch",
			"url", url,
			"redirect", errors.As(err, &r) && r.Redirect(),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.Fetch(ctx, url)
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}
