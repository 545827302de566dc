package mock

import "github.com/fwojciec/stockquote"

var _ stockquote.TableParser = (*TableParser)(nil)

// TableParser is a mock implementation of stockquote.TableParser.
type TableParser struct {
	FeedFn       func(html string) error
	ResetFn      func()
	TableHeadsFn func() stockquote.TableHeads
	TimeSeriesFn func() stockquote.TimeSeries
}

func (p *TableParser) Feed(html string) error {
	return p.FeedFn(html)
}

func (p *TableParser) Reset() {
	p.ResetFn()
}

func (p *TableParser) TableHeads() stockquote.TableHeads {
	return p.TableHeadsFn()
}

func (p *TableParser) TimeSeries() stockquote.TimeSeries {
	return p.TimeSeriesFn()
}
