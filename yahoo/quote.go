// Package yahoo implements stockquote.QuoteService against the historical
// prices pages of Yahoo Finance.
package yahoo

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/fwojciec/stockquote"
	"github.com/fwojciec/stockquote/html"
	"golang.org/x/sync/errgroup"
)

// DefaultBaseURL is the origin serving the historical prices pages.
const DefaultBaseURL = "https://finance.yahoo.com"

// DefaultConcurrency bounds the number of in-flight requests in QuoteAll.
const DefaultConcurrency = 3

// Ensure QuoteService implements stockquote.QuoteService at compile time.
var _ stockquote.QuoteService = (*QuoteService)(nil)

// ParserFunc returns a fresh TableParser. QuoteService calls it once per
// quote so that concurrent quotes never share parser state.
type ParserFunc func() stockquote.TableParser

// QuoteService fetches a symbol's historical prices page, parses the price
// table and returns the most recent session.
type QuoteService struct {
	fetcher     stockquote.Fetcher
	newParser   ParserFunc
	baseURL     string
	concurrency int
}

// Option configures a QuoteService.
type Option func(*QuoteService)

// WithBaseURL overrides DefaultBaseURL.
func WithBaseURL(baseURL string) Option {
	return func(s *QuoteService) {
		s.baseURL = baseURL
	}
}

// WithParser sets the parser constructor. Defaults to html.NewParser.
func WithParser(fn ParserFunc) Option {
	return func(s *QuoteService) {
		s.newParser = fn
	}
}

// WithConcurrency sets how many symbols QuoteAll fetches at once.
func WithConcurrency(n int) Option {
	return func(s *QuoteService) {
		s.concurrency = n
	}
}

// NewQuoteService creates a new QuoteService using fetcher for page retrieval.
func NewQuoteService(fetcher stockquote.Fetcher, opts ...Option) *QuoteService {
	s := &QuoteService{
		fetcher:     fetcher,
		newParser:   func() stockquote.TableParser { return html.NewParser() },
		baseURL:     DefaultBaseURL,
		concurrency: DefaultConcurrency,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.concurrency <= 0 {
		s.concurrency = 1
	}
	return s
}

// HistoryURL returns the historical prices page URL for symbol.
func (s *QuoteService) HistoryURL(symbol string) string {
	return fmt.Sprintf("%s/quote/%s/history?p=%s", s.baseURL, url.PathEscape(symbol), url.QueryEscape(symbol))
}

// Quote returns the most recent trading session of symbol.
func (s *QuoteService) Quote(ctx context.Context, symbol string) (*stockquote.Quote, error) {
	if err := stockquote.ValidateSymbol(symbol); err != nil {
		return nil, err
	}

	page, err := s.fetch(ctx, symbol)
	if err != nil {
		return nil, err
	}

	p := s.newParser()
	if err := p.Feed(page); err != nil {
		return nil, stockquote.WrapError(stockquote.EINTERNAL, err, "cannot parse historical prices page of %s", symbol)
	}

	return stockquote.SelectQuote(p.TableHeads(), p.TimeSeries())
}

// redirector is implemented by fetch errors that report a redirect response.
type redirector interface {
	Redirect() bool
}

func (s *QuoteService) fetch(ctx context.Context, symbol string) (string, error) {
	page, err := s.fetcher.Fetch(ctx, s.HistoryURL(symbol))
	if err == nil {
		return page, nil
	}

	// The site redirects to a lookup page for symbols it does not know.
	var r redirector
	if errors.As(err, &r) && r.Redirect() {
		return "", stockquote.Errorf(stockquote.EINVALID, "invalid stock symbol: %s", symbol)
	}

	var appErr *stockquote.Error
	if errors.As(err, &appErr) {
		return "", err
	}

	return "", stockquote.WrapError(stockquote.ETRANSPORT, err, "cannot fetch historical prices of %s from %s", symbol, s.baseURL)
}

// Result is the outcome of quoting one symbol in QuoteAll.
type Result struct {
	Symbol string
	Quote  *stockquote.Quote
	Err    error
}

// QuoteAll quotes every symbol, running up to the configured concurrency at
// once. Results are returned in the order of symbols; a failure for one
// symbol does not stop the others.
func (s *QuoteService) QuoteAll(ctx context.Context, symbols []string) []Result {
	results := make([]Result, len(symbols))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)

	for i, symbol := range symbols {
		g.Go(func() error {
			q, err := s.Quote(gctx, symbol)
			results[i] = Result{Symbol: symbol, Quote: q, Err: err}
			return nil
		})
	}
	_ = g.Wait()

	return results
}
