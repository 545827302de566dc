package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/stockquote"
)

// Ensure LoggingQuoteService implements stockquote.QuoteService.
var _ stockquote.QuoteService = (*LoggingQuoteService)(nil)

// LoggingQuoteService wraps a QuoteService with logging.
type LoggingQuoteService struct {
	next   stockquote.QuoteService
	logger *slog.Logger
}

// NewLoggingQuoteService creates a new LoggingQuoteService.
func NewLoggingQuoteService(next stockquote.QuoteService, logger *slog.Logger) *LoggingQuoteService {
	return &LoggingQuoteService{next: next, logger: logger}
}

// Quote delegates to the wrapped service and logs the session found and the
// error code on failure.
func (s *LoggingQuoteService) Quote(ctx context.Context, symbol string) (q *stockquote.Quote, err error) {
	defer func(begin time.Time) {
		var session string
		if q != nil {
			session = q.Date
		}
		s.logger.Info("quote",
			"symbol", symbol,
			"session", session,
			"code", stockquote.ErrorCode(err),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Quote(ctx, symbol)
}

// Ensure LoggingQuoteStore implements stockquote.QuoteStore.
var _ stockquote.QuoteStore = (*LoggingQuoteStore)(nil)

// LoggingQuoteStore wraps a QuoteStore with logging.
type LoggingQuoteStore struct {
	next   stockquote.QuoteStore
	logger *slog.Logger
}

// NewLoggingQuoteStore creates a new LoggingQuoteStore.
func NewLoggingQuoteStore(next stockquote.QuoteStore, logger *slog.Logger) *LoggingQuoteStore {
	return &LoggingQuoteStore{next: next, logger: logger}
}

// CreateQuote delegates to the wrapped store and logs the stored record.
func (s *LoggingQuoteStore) CreateQuote(ctx context.Context, r *stockquote.QuoteRecord) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("record quote",
			"symbol", r.Symbol,
			"session", r.Quote.Date,
			"id", r.ID,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CreateQuote(ctx, r)
}

// FindQuoteByID delegates to the wrapped store.
func (s *LoggingQuoteStore) FindQuoteByID(ctx context.Context, id string) (*stockquote.QuoteRecord, error) {
	return s.next.FindQuoteByID(ctx, id)
}

// FindQuotes delegates to the wrapped store and logs the result size.
func (s *LoggingQuoteStore) FindQuotes(ctx context.Context, filter stockquote.QuoteFilter) (records []*stockquote.QuoteRecord, err error) {
	defer func(begin time.Time) {
		s.logger.Info("find quotes",
			"count", len(records),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindQuotes(ctx, filter)
}
