package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/stockquote"
	"github.com/fwojciec/stockquote/goquery"
	"github.com/fwojciec/stockquote/html"
	sqhttp "github.com/fwojciec/stockquote/http"
	sqslog "github.com/fwojciec/stockquote/slog"
	"github.com/fwojciec/stockquote/sqlite"
	"github.com/fwojciec/stockquote/yahoo"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// SQLite database holding the quote history. Opened only when --db is set.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("stockquote"),
		kong.Description("Print the most recent trading session's open, high, low and close prices of a stock"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("please specify the ticker symbol of the stock as an argument")
	}

	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		var parseErr *kong.ParseError
		if errors.As(err, &parseErr) {
			_ = parseErr.Context.PrintUsage(true)
		}
		return err
	}

	logger := slog.New(slog.DiscardHandler)
	if cli.Verbose {
		logger = slog.New(slog.NewTextHandler(stderr, nil))
	}

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	var fetcher stockquote.Fetcher = sqhttp.NewFetcher(
		sqhttp.WithTimeout(cli.Timeout),
		sqhttp.WithLimiter(sqhttp.NewDomainLimiter(1.0)),
	)
	if cli.Retries > 0 {
		fetcher = sqhttp.NewRetryFetcher(fetcher, retryDelays(cli.Retries))
	}
	defer fetcher.Close()

	svc := yahoo.NewQuoteService(
		sqslog.NewLoggingFetcher(fetcher, logger),
		yahoo.WithBaseURL(cli.BaseURL),
		yahoo.WithParser(parserFunc(cli.Parser)),
	)
	deps.Quotes = sqslog.NewLoggingQuoteService(svc, logger)

	if cli.DB != "" {
		m.DB = sqlite.NewDB(cli.DB)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintln(stderr, "Hint: Set STOCKQUOTE_DB to use a different database path")
			return fmt.Errorf("failed to open database at %q: %w", cli.DB, err)
		}
		defer m.Close()

		deps.Store = sqslog.NewLoggingQuoteStore(sqlite.NewQuoteStore(m.DB), logger)
	}

	cmd := &QuoteCmd{
		Symbol:  cli.Symbol,
		Format:  cli.Format,
		History: cli.History,
	}

	return cmd.Run(deps)
}

// retryDelays returns n backoff delays doubling from 500ms.
func retryDelays(n int) []time.Duration {
	delays := make([]time.Duration, n)
	d := 500 * time.Millisecond
	for i := range delays {
		delays[i] = d
		d *= 2
	}
	return delays
}

// parserFunc returns the TableParser constructor selected by name.
func parserFunc(name string) yahoo.ParserFunc {
	if name == "goquery" {
		return func() stockquote.TableParser { return goquery.NewParser(stockquote.DefaultTableMarker) }
	}
	return func() stockquote.TableParser { return html.NewParser() }
}
