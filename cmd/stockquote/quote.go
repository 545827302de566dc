package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fwojciec/stockquote"
)

// Run executes the quote command.
func (c *QuoteCmd) Run(deps *Dependencies) error {
	if c.History > 0 {
		return c.runHistory(deps)
	}

	q, err := deps.Quotes.Quote(deps.Ctx, c.Symbol)
	if err != nil {
		return err
	}

	if err := c.printQuote(deps.Stdout, q); err != nil {
		return err
	}

	if deps.Store == nil {
		return nil
	}

	r := &stockquote.QuoteRecord{Symbol: c.Symbol, Quote: *q}
	if err := deps.Store.CreateQuote(deps.Ctx, r); err != nil {
		return fmt.Errorf("failed to record quote: %w", err)
	}
	return nil
}

func (c *QuoteCmd) printQuote(w io.Writer, q *stockquote.Quote) error {
	if c.Format == "json" {
		return writeJSON(w, q)
	}

	fmt.Fprintf(w, "date:  %s\n", q.Date)
	fmt.Fprintf(w, "open:  %s\n", q.Open)
	fmt.Fprintf(w, "high:  %s\n", q.High)
	fmt.Fprintf(w, "low:   %s\n", q.Low)
	fmt.Fprintf(w, "close: %s\n", q.Close)
	return nil
}

func (c *QuoteCmd) runHistory(deps *Dependencies) error {
	if deps.Store == nil {
		return stockquote.Errorf(stockquote.EINVALID, "--history requires --db")
	}
	if err := stockquote.ValidateSymbol(c.Symbol); err != nil {
		return err
	}

	symbol := c.Symbol
	records, err := deps.Store.FindQuotes(deps.Ctx, stockquote.QuoteFilter{Symbol: &symbol, Limit: c.History})
	if err != nil {
		return err
	}

	if c.Format == "json" {
		if records == nil {
			records = []*stockquote.QuoteRecord{}
		}
		return writeJSON(deps.Stdout, records)
	}

	if len(records) == 0 {
		fmt.Fprintf(deps.Stdout, "No quotes recorded for %s.\n", c.Symbol)
		return nil
	}

	for _, r := range records {
		fmt.Fprintf(deps.Stdout, "%s  open=%s high=%s low=%s close=%s  (fetched %s)\n",
			r.Quote.Date, r.Quote.Open, r.Quote.High, r.Quote.Low, r.Quote.Close,
			r.FetchedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
