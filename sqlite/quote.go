package sqlite

import (
	"context"
	"database/sql"
	"encoding/binary"
	"encoding/hex"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/stockquote"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ stockquote.QuoteStore = (*QuoteStore)(nil)

// QuoteStore implements stockquote.QuoteStore using SQLite.
type QuoteStore struct {
	db *DB
}

// NewQuoteStore creates a new QuoteStore.
func NewQuoteStore(db *DB) *QuoteStore {
	return &QuoteStore{db: db}
}

// hashQuote computes the xxHash of a symbol's session prices as a hex string.
// Two records with the same hash describe the same observation.
func hashQuote(symbol string, q stockquote.Quote) string {
	d := xxhash.New()
	for _, field := range []string{symbol, q.Date, q.Open, q.High, q.Low, q.Close} {
		_, _ = d.WriteString(field)
		_, _ = d.Write([]byte{0})
	}
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, d.Sum64())
	return hex.EncodeToString(b)
}

// CreateQuote stores a quote record. Duplicate observations are skipped and
// r receives the ID and timestamp of the stored record.
func (s *QuoteStore) CreateQuote(ctx context.Context, r *stockquote.QuoteRecord) error {
	if err := r.Validate(); err != nil {
		return err
	}

	r.ID = uuid.New().String()
	r.FetchedAt = time.Now().UTC()
	r.ContentHash = hashQuote(r.Symbol, r.Quote)

	result, err := s.db.ExecContext(ctx, `
		INSERT OR IGNORE INTO quotes (id, symbol, session_date, open, high, low, close, content_hash, fetched_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, r.ID, r.Symbol, r.Quote.Date, r.Quote.Open, r.Quote.High, r.Quote.Low, r.Quote.Close,
		r.ContentHash, formatTime(r.FetchedAt))
	if err != nil {
		return err
	}

	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	var fetchedAt string
	if err := s.db.QueryRowContext(ctx, `
		SELECT id, fetched_at FROM quotes WHERE content_hash = ?
	`, r.ContentHash).Scan(&r.ID, &fetchedAt); err != nil {
		return err
	}
	r.FetchedAt, err = parseTime(fetchedAt, "fetched_at")
	return err
}

// FindQuoteByID retrieves a quote record by ID.
func (s *QuoteStore) FindQuoteByID(ctx context.Context, id string) (*stockquote.QuoteRecord, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, symbol, session_date, open, high, low, close, content_hash, fetched_at
		FROM quotes
		WHERE id = ?
	`, id)

	r, err := scanQuote(row)
	if err == sql.ErrNoRows {
		return nil, stockquote.Errorf(stockquote.ENOTFOUND, "quote not found")
	}
	if err != nil {
		return nil, err
	}
	return r, nil
}

// FindQuotes retrieves quote records matching the filter, newest first.
func (s *QuoteStore) FindQuotes(ctx context.Context, filter stockquote.QuoteFilter) ([]*stockquote.QuoteRecord, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, symbol, session_date, open, high, low, close, content_hash, fetched_at FROM quotes WHERE 1=1")

	if filter.Symbol != nil {
		query.WriteString(" AND symbol = ?")
		args = append(args, *filter.Symbol)
	}

	query.WriteString(" ORDER BY fetched_at DESC, rowid DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*stockquote.QuoteRecord
	for rows.Next() {
		r, err := scanQuote(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}

	return records, rows.Err()
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanQuote(sc scanner) (*stockquote.QuoteRecord, error) {
	var r stockquote.QuoteRecord
	var fetchedAt string

	if err := sc.Scan(&r.ID, &r.Symbol, &r.Quote.Date, &r.Quote.Open, &r.Quote.High, &r.Quote.Low,
		&r.Quote.Close, &r.ContentHash, &fetchedAt); err != nil {
		return nil, err
	}

	var err error
	r.FetchedAt, err = parseTime(fetchedAt, "fetched_at")
	if err != nil {
		return nil, err
	}
	return &r, nil
}
