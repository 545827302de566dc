package goquery_test

import (
	"os"
	"testing"

	"github.com/fwojciec/stockquote"
	"github.com/fwojciec/stockquote/goquery"
	"github.com/fwojciec/stockquote/html"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadHistoryPage(t *testing.T) string {
	t.Helper()
	b, err := os.ReadFile("../testdata/history.html")
	require.NoError(t, err)
	return string(b)
}

func TestParser_Feed(t *testing.T) {
	t.Parallel()

	t.Run("agrees with the streaming parser on well-formed markup", func(t *testing.T) {
		t.Parallel()

		doc := loadHistoryPage(t)

		streaming := html.NewParser()
		require.NoError(t, streaming.Feed(doc))

		p := goquery.NewParser("")
		require.NoError(t, p.Feed(doc))

		assert.Equal(t, streaming.TableHeads(), p.TableHeads())
		assert.Equal(t, streaming.TimeSeries(), p.TimeSeries())
	})

	t.Run("yields the most recent session through SelectQuote", func(t *testing.T) {
		t.Parallel()

		p := goquery.NewParser(stockquote.DefaultTableMarker)
		require.NoError(t, p.Feed(loadHistoryPage(t)))

		q, err := stockquote.SelectQuote(p.TableHeads(), p.TimeSeries())
		require.NoError(t, err)
		assert.Equal(t, "Jan 11, 2019", q.Date)
		assert.Equal(t, "215.48", q.Close)
	})

	t.Run("document without the marked table yields nothing", func(t *testing.T) {
		t.Parallel()

		p := goquery.NewParser("")
		require.NoError(t, p.Feed(`<table class="other"><tbody><tr><td>x</td></tr></tbody></table>`))

		assert.Empty(t, p.TableHeads())
		assert.Empty(t, p.TimeSeries())
	})

	t.Run("closes unclosed rows", func(t *testing.T) {
		t.Parallel()

		doc := `<table data-test="historical-prices"><thead><tr><th>Date<th>Open</thead>` +
			`<tbody><tr><td>Jan 1<td>100</tr><tr><td>Dec 31<td>99</tbody></table>`

		p := goquery.NewParser("")
		require.NoError(t, p.Feed(doc))

		assert.Equal(t, stockquote.TableHeads{"Date", "Open"}, p.TableHeads())
		assert.Equal(t, stockquote.TimeSeries{{"Jan 1", "100"}, {"Dec 31", "99"}}, p.TimeSeries())
	})

	t.Run("rows without tbody get an implied body", func(t *testing.T) {
		t.Parallel()

		doc := `<table data-test="historical-prices"><tr><td>Jan 1</td></tr></table>`

		p := goquery.NewParser("")
		require.NoError(t, p.Feed(doc))

		assert.Equal(t, stockquote.TimeSeries{{"Jan 1"}}, p.TimeSeries())
	})

	t.Run("picks the first of several marked tables", func(t *testing.T) {
		t.Parallel()

		doc := `<table data-test="historical-prices"><tbody><tr><td>first</td></tr></tbody></table>` +
			`<table data-test="historical-prices"><tbody><tr><td>second</td></tr></tbody></table>`

		p := goquery.NewParser("")
		require.NoError(t, p.Feed(doc))

		assert.Equal(t, stockquote.TimeSeries{{"first"}}, p.TimeSeries())
	})
}

func TestParser_Reset(t *testing.T) {
	t.Parallel()

	p := goquery.NewParser("")
	require.NoError(t, p.Feed(loadHistoryPage(t)))
	require.NotEmpty(t, p.TableHeads())

	p.Reset()

	assert.Empty(t, p.TableHeads())
	assert.Empty(t, p.TimeSeries())
}
