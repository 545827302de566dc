package mock_test

import (
	"context"
	"testing"

	"github.com/fwojciec/stockquote"
	"github.com/fwojciec/stockquote/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuoteStore_CreateQuote(t *testing.T) {
	t.Parallel()

	t.Run("delegates to CreateQuoteFn", func(t *testing.T) {
		t.Parallel()

		var calledWith *stockquote.QuoteRecord
		s := &mock.QuoteStore{
			CreateQuoteFn: func(_ context.Context, r *stockquote.QuoteRecord) error {
				calledWith = r
				return nil
			},
		}

		r := &stockquote.QuoteRecord{
			Symbol: "INTU",
			Quote:  stockquote.Quote{Date: "Jan 11, 2019", Close: "215.48"},
		}

		err := s.CreateQuote(context.Background(), r)

		require.NoError(t, err)
		assert.Equal(t, r, calledWith)
	})
}

func TestTableParser_Feed(t *testing.T) {
	t.Parallel()

	var fed string
	p := &mock.TableParser{
		FeedFn: func(html string) error {
			fed = html
			return nil
		},
		TableHeadsFn: func() stockquote.TableHeads { return stockquote.TableHeads{"Date"} },
		TimeSeriesFn: func() stockquote.TimeSeries { return stockquote.TimeSeries{{"Jan 1"}} },
	}

	require.NoError(t, p.Feed("<table></table>"))

	assert.Equal(t, "<table></table>", fed)
	assert.Equal(t, stockquote.TableHeads{"Date"}, p.TableHeads())
	assert.Equal(t, stockquote.TimeSeries{{"Jan 1"}}, p.TimeSeries())
}
