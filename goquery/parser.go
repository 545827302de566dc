// Package goquery provides a DOM-based implementation of
// stockquote.TableParser using goquery.
//
// Unlike html.Parser, the document is first built into a tree by the HTML5
// parsing algorithm, so misnested or unclosed table markup is normalized
// before the table is scanned. Rows left unclosed in the source are closed
// by the tree builder and therefore produce records, and rows placed
// directly under <table> get an implied <tbody>.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/stockquote"
	"golang.org/x/net/html"
)

// Ensure Parser implements stockquote.TableParser at compile time.
var _ stockquote.TableParser = (*Parser)(nil)

// Parser locates the first table carrying the marker in the parsed document
// and replays its subtree as tag and text events into a TableScanner.
type Parser struct {
	scanner *stockquote.TableScanner
}

// NewParser creates a new Parser for tables carrying marker.
// An empty marker selects stockquote.DefaultTableMarker.
func NewParser(marker string) *Parser {
	if marker == "" {
		marker = stockquote.DefaultTableMarker
	}
	return &Parser{scanner: stockquote.NewTableScanner(marker)}
}

// Feed parses doc and collects the target table.
func (p *Parser) Feed(doc string) error {
	p.scanner.Reset()

	d, err := goquery.NewDocumentFromReader(strings.NewReader(doc))
	if err != nil {
		return stockquote.Errorf(stockquote.EINVALID, "failed to parse HTML: %v", err)
	}

	marker := p.scanner.Marker()
	table := d.Find("table").FilterFunction(func(_ int, sel *goquery.Selection) bool {
		for _, attr := range sel.Nodes[0].Attr {
			if attr.Val == marker {
				return true
			}
		}
		return false
	}).First()
	if table.Length() == 0 {
		return nil
	}

	p.walk(table.Nodes[0])
	return nil
}

// walk emits events for n and its descendants in document order.
func (p *Parser) walk(n *html.Node) {
	switch n.Type {
	case html.ElementNode:
		values := make([]string, 0, len(n.Attr))
		for _, attr := range n.Attr {
			values = append(values, attr.Val)
		}
		p.scanner.StartTag(n.Data, values)
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			p.walk(c)
		}
		p.scanner.EndTag(n.Data)
	case html.TextNode:
		p.scanner.Text(n.Data)
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
