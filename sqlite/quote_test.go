package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/fwojciec/stockquote"
	"github.com/fwojciec/stockquote/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *sqlite.DB {
	t.Helper()
	db := sqlite.NewDB(":memory:")
	require.NoError(t, db.Open())
	t.Cleanup(func() { db.Close() })
	return db
}

func intuRecord() *stockquote.QuoteRecord {
	return &stockquote.QuoteRecord{
		Symbol: "INTU",
		Quote: stockquote.Quote{
			Date:  "Jan 11, 2019",
			Open:  "212.38",
			High:  "215.88",
			Low:   "211.62",
			Close: "215.48",
		},
	}
}

func TestQuoteStore_CreateQuote(t *testing.T) {
	t.Parallel()

	t.Run("creates record with generated ID, hash and timestamp", func(t *testing.T) {
		t.Parallel()

		store := sqlite.NewQuoteStore(setupTestDB(t))
		r := intuRecord()

		err := store.CreateQuote(context.Background(), r)
		require.NoError(t, err)

		assert.NotEmpty(t, r.ID, "ID should be generated")
		assert.Len(t, r.ContentHash, 16, "ContentHash should be 8 hex-encoded bytes")
		assert.False(t, r.FetchedAt.IsZero(), "FetchedAt should be set")
	})

	t.Run("returns error for invalid record", func(t *testing.T) {
		t.Parallel()

		store := sqlite.NewQuoteStore(setupTestDB(t))

		err := store.CreateQuote(context.Background(), &stockquote.QuoteRecord{})
		require.Error(t, err)
		assert.Equal(t, stockquote.EINVALID, stockquote.ErrorCode(err))
	})

	t.Run("skips duplicate observations", func(t *testing.T) {
		t.Parallel()

		store := sqlite.NewQuoteStore(setupTestDB(t))
		ctx := context.Background()

		first := intuRecord()
		require.NoError(t, store.CreateQuote(ctx, first))

		second := intuRecord()
		require.NoError(t, store.CreateQuote(ctx, second))

		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, first.ContentHash, second.ContentHash)

		records, err := store.FindQuotes(ctx, stockquote.QuoteFilter{})
		require.NoError(t, err)
		assert.Len(t, records, 1)
	})

	t.Run("stores changed prices for the same session", func(t *testing.T) {
		t.Parallel()

		store := sqlite.NewQuoteStore(setupTestDB(t))
		ctx := context.Background()

		require.NoError(t, store.CreateQuote(ctx, intuRecord()))

		intraday := intuRecord()
		intraday.Quote.Close = "216.00"
		require.NoError(t, store.CreateQuote(ctx, intraday))

		records, err := store.FindQuotes(ctx, stockquote.QuoteFilter{})
		require.NoError(t, err)
		assert.Len(t, records, 2)
	})

	t.Run("hash depends on the symbol", func(t *testing.T) {
		t.Parallel()

		store := sqlite.NewQuoteStore(setupTestDB(t))
		ctx := context.Background()

		a := intuRecord()
		b := intuRecord()
		b.Symbol = "ISRG"
		require.NoError(t, store.CreateQuote(ctx, a))
		require.NoError(t, store.CreateQuote(ctx, b))

		assert.NotEqual(t, a.ContentHash, b.ContentHash)
		assert.NotEqual(t, a.ID, b.ID)
	})
}

func TestQuoteStore_FindQuoteByID(t *testing.T) {
	t.Parallel()

	t.Run("returns stored record", func(t *testing.T) {
		t.Parallel()

		store := sqlite.NewQuoteStore(setupTestDB(t))
		ctx := context.Background()

		r := intuRecord()
		require.NoError(t, store.CreateQuote(ctx, r))

		found, err := store.FindQuoteByID(ctx, r.ID)
		require.NoError(t, err)

		assert.Equal(t, r.ID, found.ID)
		assert.Equal(t, "INTU", found.Symbol)
		assert.Equal(t, r.Quote, found.Quote)
		assert.Equal(t, r.ContentHash, found.ContentHash)
		assert.WithinDuration(t, r.FetchedAt, found.FetchedAt, time.Second)
	})

	t.Run("returns ENOTFOUND when not found", func(t *testing.T) {
		t.Parallel()

		store := sqlite.NewQuoteStore(setupTestDB(t))

		_, err := store.FindQuoteByID(context.Background(), "missing")
		require.Error(t, err)
		assert.Equal(t, stockquote.ENOTFOUND, stockquote.ErrorCode(err))
	})
}

func TestQuoteStore_FindQuotes(t *testing.T) {
	t.Parallel()

	seed := func(t *testing.T, store *sqlite.QuoteStore, symbol string, closes ...string) {
		t.Helper()
		for _, c := range closes {
			r := intuRecord()
			r.Symbol = symbol
			r.Quote.Close = c
			require.NoError(t, store.CreateQuote(context.Background(), r))
		}
	}

	t.Run("filters by symbol newest first", func(t *testing.T) {
		t.Parallel()

		store := sqlite.NewQuoteStore(setupTestDB(t))
		seed(t, store, "INTU", "1", "2", "3")
		seed(t, store, "ISRG", "4")

		symbol := "INTU"
		records, err := store.FindQuotes(context.Background(), stockquote.QuoteFilter{Symbol: &symbol})
		require.NoError(t, err)

		require.Len(t, records, 3)
		assert.Equal(t, "3", records[0].Quote.Close)
		assert.Equal(t, "1", records[2].Quote.Close)
		for _, r := range records {
			assert.Equal(t, "INTU", r.Symbol)
		}
	})

	t.Run("applies limit and offset", func(t *testing.T) {
		t.Parallel()

		store := sqlite.NewQuoteStore(setupTestDB(t))
		seed(t, store, "INTU", "1", "2", "3", "4")

		records, err := store.FindQuotes(context.Background(), stockquote.QuoteFilter{Limit: 2, Offset: 1})
		require.NoError(t, err)

		require.Len(t, records, 2)
		assert.Equal(t, "3", records[0].Quote.Close)
		assert.Equal(t, "2", records[1].Quote.Close)
	})

	t.Run("applies offset without limit", func(t *testing.T) {
		t.Parallel()

		store := sqlite.NewQuoteStore(setupTestDB(t))
		seed(t, store, "INTU", "1", "2", "3")

		records, err := store.FindQuotes(context.Background(), stockquote.QuoteFilter{Offset: 2})
		require.NoError(t, err)

		require.Len(t, records, 1)
		assert.Equal(t, "1", records[0].Quote.Close)
	})

	t.Run("returns empty result for unknown symbol", func(t *testing.T) {
		t.Parallel()

		store := sqlite.NewQuoteStore(setupTestDB(t))
		seed(t, store, "INTU", "1")

		symbol := "NOPE"
		records, err := store.FindQuotes(context.Background(), stockquote.QuoteFilter{Symbol: &symbol})
		require.NoError(t, err)
		assert.Empty(t, records)
	})
}
