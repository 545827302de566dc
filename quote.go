package stockquote

import (
	"context"
	"strings"
)

// Column labels of the historical prices table.
const (
	ColumnDate  = "Date"
	ColumnHigh  = "High"
	ColumnLow   = "Low"
	ColumnOpen  = "Open"
	ColumnClose = "Close*"
)

// Quote holds the prices of one trading session. Values are copied verbatim
// from the table cells; numeric interpretation is left to the caller.
type Quote struct {
	Date  string `json:"date"`
	High  string `json:"high"`
	Low   string `json:"low"`
	Open  string `json:"open"`
	Close string `json:"close"`
}

// Map returns the quote as a mapping with exactly the keys date, high, low,
// open and close.
func (q *Quote) Map() map[string]string {
	return map[string]string{
		"date":  q.Date,
		"high":  q.High,
		"low":   q.Low,
		"open":  q.Open,
		"close": q.Close,
	}
}

// QuoteService returns the most recent trading session of a symbol.
type QuoteService interface {
	// Quote returns the most recent session's prices for symbol.
	// Returns EINVALID for malformed or unknown symbols, ETRANSPORT when the
	// page cannot be fetched, ESCHEMA when the price table no longer has the
	// expected columns and ENODATA when it holds no price rows.
	Quote(ctx context.Context, symbol string) (*Quote, error)
}

// SelectQuote picks the most recent session from a parsed price table.
// Rows whose cell count differs from the header count, such as dividend
// and split notices, are skipped. A table without header labels holds no
// price data.
func SelectQuote(heads TableHeads, series TimeSeries) (*Quote, error) {
	if len(heads) == 0 {
		return nil, Errorf(ENODATA, "no historical price data found")
	}

	for _, row := range series {
		if len(row) != len(heads) {
			continue
		}

		var missing []string
		cell := func(name string) string {
			i := heads.Index(name)
			if i < 0 {
				missing = append(missing, name)
				return ""
			}
			return row[i]
		}

		q := &Quote{
			Date:  cell(ColumnDate),
			High:  cell(ColumnHigh),
			Low:   cell(ColumnLow),
			Open:  cell(ColumnOpen),
			Close: cell(ColumnClose),
		}
		if len(missing) > 0 {
			return nil, Errorf(ESCHEMA, "historical prices table schema has changed: missing columns %s", strings.Join(missing, ", "))
		}
		return q, nil
	}

	return nil, Errorf(ENODATA, "no historical price data found")
}
