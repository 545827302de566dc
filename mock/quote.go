package mock

import (
	"context"

	"github.com/fwojciec/stockquote"
)

var _ stockquote.QuoteService = (*QuoteService)(nil)

// QuoteService is a mock implementation of stockquote.QuoteService.
type QuoteService struct {
	QuoteFn func(ctx context.Context, symbol string) (*stockquote.Quote, error)
}

func (s *QuoteService) Quote(ctx context.Context, symbol string) (*stockquote.Quote, error) {
	return s.QuoteFn(ctx, symbol)
}

var _ stockquote.QuoteStore = (*QuoteStore)(nil)

// QuoteStore is a mock implementation of stockquote.QuoteStore.
type QuoteStore struct {
	CreateQuoteFn   func(ctx context.Context, r *stockquote.QuoteRecord) error
	FindQuoteByIDFn func(ctx context.Context, id string) (*stockquote.QuoteRecord, error)
	FindQuotesFn    func(ctx context.Context, filter stockquote.QuoteFilter) ([]*stockquote.QuoteRecord, error)
}

func (s *QuoteStore) CreateQuote(ctx context.Context, r *stockquote.QuoteRecord) error {
	return s.CreateQuoteFn(ctx, r)
}

func (s *QuoteStore) FindQuoteByID(ctx context.Context, id string) (*stockquote.QuoteRecord, error) {
	return s.FindQuoteByIDFn(ctx, id)
}

func (s *QuoteStore) FindQuotes(ctx context.Context, filter stockquote.QuoteFilter) ([]*stockquote.QuoteRecord, error) {
	return s.FindQuotesFn(ctx, filter)
}
