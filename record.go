package stockquote

import (
	"context"
	"time"
)

// QuoteRecord is a quote returned for a symbol and kept in the history store.
type QuoteRecord struct {
	ID          string    `json:"id"`
	Symbol      string    `json:"symbol"`
	Quote       Quote     `json:"quote"`
	ContentHash string    `json:"contentHash"`
	FetchedAt   time.Time `json:"fetchedAt"`
}

// Validate returns an error if the record contains invalid fields.
func (r *QuoteRecord) Validate() error {
	if err := ValidateSymbol(r.Symbol); err != nil {
		return err
	}
	if r.Quote.Date == "" {
		return Errorf(EINVALID, "quote record session date required")
	}
	return nil
}

// QuoteStore keeps a history of returned quotes.
type QuoteStore interface {
	// CreateQuote stores a record. A record for a session already stored
	// for the same symbol with identical prices is skipped; the existing
	// ID is copied into r.
	CreateQuote(ctx context.Context, r *QuoteRecord) error

	// FindQuoteByID retrieves a record by ID.
	// Returns ENOTFOUND if the record does not exist.
	FindQuoteByID(ctx context.Context, id string) (*QuoteRecord, error)

	// FindQuotes retrieves records matching the filter, newest first.
	FindQuotes(ctx context.Context, filter QuoteFilter) ([]*QuoteRecord, error)
}

// QuoteFilter represents a filter for FindQuotes.
type QuoteFilter struct {
	Symbol *string `json:"symbol"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
