package main

import (
	"context"
	"io"
	"time"

	"github.com/fwojciec/stockquote"
)

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Timeout time.Duration `short:"t" default:"10s" env:"STOCKQUOTE_TIMEOUT" help:"Timeout for fetching the quote page"`
	Parser  string        `default:"html" enum:"html,goquery" help:"Table parser: streaming tokenizer (html) or DOM (goquery)"`
	Format  string        `short:"f" default:"text" enum:"text,json" help:"Output format (text, json)"`
	DB      string        `env:"STOCKQUOTE_DB" help:"Record returned quotes in this SQLite database"`
	History int           `help:"Print the last N recorded quotes of the symbol instead of fetching (requires --db)"`
	Retries int           `default:"0" help:"Retry transient fetch failures (5xx, 429, connection errors) this many times with backoff"`
	Verbose bool          `short:"v" help:"Log requests to stderr"`
	BaseURL string        `name:"base-url" hidden:"" default:"https://finance.yahoo.com" help:"Quote site origin"`
	Symbol  string        `arg:"" required:"" help:"Ticker symbol of the stock. Use -- before a symbol starting with a dash, e.g. stockquote -- -X"`
}

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	Quotes stockquote.QuoteService
	Store  stockquote.QuoteStore
}

// QuoteCmd prints the most recent session of a symbol.
type QuoteCmd struct {
	Symbol  string
	Format  string
	History int
}
