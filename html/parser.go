// Package html provides a streaming implementation of stockquote.TableParser
// built on the golang.org/x/net/html tokenizer.
package html

import (
	"errors"
	"io"
	"strings"

	"github.com/fwojciec/stockquote"
	"golang.org/x/net/html"
)

// Ensure Parser implements stockquote.TableParser at compile time.
var _ stockquote.TableParser = (*Parser)(nil)

// Parser feeds tokenizer events into a stockquote.TableScanner in a single
// pass without building a document tree.
type Parser struct {
	scanner *stockquote.TableScanner
}

// Option configures a Parser.
type Option func(*Parser)

// WithMarker sets the attribute value identifying the target table.
// Defaults to stockquote.DefaultTableMarker.
func WithMarker(marker string) Option {
	return func(p *Parser) {
		keep := p.scanner.KeepBlankText
		p.scanner = stockquote.NewTableScanner(marker)
		p.scanner.KeepBlankText = keep
	}
}

// WithBlankText keeps whitespace-only text as header labels and cells.
func WithBlankText() Option {
	return func(p *Parser) {
		p.scanner.KeepBlankText = true
	}
}

// NewParser creates a new Parser.
func NewParser(opts ...Option) *Parser {
	p := &Parser{
		scanner: stockquote.NewTableScanner(stockquote.DefaultTableMarker),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Feed tokenizes doc and collects the target table. Malformed markup is
// recovered by the tokenizer; only non-EOF tokenizer errors are returned.
func (p *Parser) Feed(doc string) error {
	p.scanner.Reset()

	z := html.NewTokenizer(strings.NewReader(doc))
	for {
		switch z.Next() {
		case html.ErrorToken:
			if err := z.Err(); !errors.Is(err, io.EOF) {
				return err
			}
			return nil
		case html.StartTagToken:
			name, hasAttr := z.TagName()
			p.scanner.StartTag(string(name), attrValues(z, hasAttr))
		case html.SelfClosingTagToken:
			name, hasAttr := z.TagName()
			tag := string(name)
			p.scanner.StartTag(tag, attrValues(z, hasAttr))
			p.scanner.EndTag(tag)
		case html.EndTagToken:
			name, _ := z.TagName()
			p.scanner.EndTag(string(name))
		case html.TextToken:
			p.scanner.Text(string(z.Text()))
		}
	}
}

// Reset clears all parse state.
func (p *Parser) Reset() {
	p.scanner.Reset()
}

// TableHeads returns the header labels collected by the last Feed.
func (p *Parser) TableHeads() stockquote.TableHeads {
	return p.scanner.TableHeads()
}

// TimeSeries returns the body rows collected by the last Feed.
func (p *Parser) TimeSeries() stockquote.TimeSeries {
	return p.scanner.TimeSeries()
}

// attrValues returns the values of the current tag's attributes.
func attrValues(z *html.Tokenizer, hasAttr bool) []string {
	var values []string
	for hasAttr {
		var val []byte
		_, val, hasAttr = z.TagAttr()
		values = append(values, string(val))
	}
	return values
}
