package stockquote

import "strings"

// DefaultTableMarker identifies the historical prices table on the quote page.
const DefaultTableMarker = "historical-prices"

// TableHeads holds the header labels of the target table in document order.
type TableHeads []string

// Index returns the position of the column labelled name, or -1.
func (h TableHeads) Index(name string) int {
	for i, label := range h {
		if label == name {
			return i
		}
	}
	return -1
}

// RowRecord holds the cell texts of a single body row in document order.
type RowRecord []string

// TimeSeries holds the body rows of the target table in document order,
// which is newest session first on the quote page.
type TimeSeries []RowRecord

// TableParser extracts the header labels and body rows of one table from
// an HTML document. Implementations are not safe for concurrent use.
type TableParser interface {
	// Feed parses the document in a single pass. Any state left over from
	// a previous call is discarded first.
	Feed(html string) error

	// Reset clears all parse state.
	Reset()

	// TableHeads returns the header labels collected by the last Feed.
	TableHeads() TableHeads

	// TimeSeries returns the body rows collected by the last Feed.
	TimeSeries() TimeSeries
}

// TableScanner is the state machine behind every TableParser. It consumes
// a flat stream of start-tag, end-tag and text events and keeps only the
// header labels and body rows of the first table carrying the marker.
//
// The head and body flags are driven independently by their own tags, so
// misnested markup can leave both set at once. Header collection wins in
// that case.
//
// Each non-blank text event inside the head adds one header label and each
// one inside the body adds one cell. Whitespace-only text events, such as
// the indentation between tags, are skipped unless KeepBlankText is set.
type TableScanner struct {
	// KeepBlankText records whitespace-only text events as header labels or
	// cells. They are dropped by default.
	KeepBlankText bool

	marker string

	inTable bool
	inHead  bool
	inBody  bool
	done    bool

	heads  TableHeads
	row    RowRecord
	series TimeSeries
}

// NewTableScanner returns a scanner looking for the table whose attribute
// values contain marker.
func NewTableScanner(marker string) *TableScanner {
	s := &TableScanner{marker: marker}
	s.Reset()
	return s
}

// Marker returns the attribute value identifying the target table.
func (s *TableScanner) Marker() string {
	return s.marker
}

// Reset returns the scanner to its initial state. It is safe to call any
// number of times.
func (s *TableScanner) Reset() {
	s.inTable = false
	s.inHead = false
	s.inBody = false
	s.done = false
	s.heads = TableHeads{}
	s.row = RowRecord{}
	s.series = TimeSeries{}
}

// StartTag handles an opening tag. attrValues holds the values of all the
// tag's attributes; the attribute names play no part in matching.
func (s *TableScanner) StartTag(name string, attrValues []string) {
	if s.inTable {
		switch name {
		case "thead":
			s.inHead = true
		case "tbody":
			s.inBody = true
		}
		return
	}

	if s.done || name != "table" {
		return
	}
	for _, v := range attrValues {
		if v == s.marker {
			s.inTable = true
			return
		}
	}
}

// EndTag handles a closing tag.
func (s *TableScanner) EndTag(name string) {
	if !s.inTable {
		return
	}

	switch name {
	case "thead":
		s.inHead = false
	case "tbody":
		s.inBody = false
	case "table":
		s.inTable = false
		s.inHead = false
		s.inBody = false
		s.done = true
	case "tr":
		if s.inBody && !s.inHead {
			s.series = append(s.series, s.row)
			s.row = RowRecord{}
		}
	}
}

// Text handles character data between tags.
func (s *TableScanner) Text(data string) {
	if !s.inTable {
		return
	}
	if !s.KeepBlankText && strings.TrimSpace(data) == "" {
		return
	}

	if s.inHead {
		s.heads = append(s.heads, data)
	} else if s.inBody {
		s.row = append(s.row, data)
	}
}

// TableHeads returns the header labels collected so far.
func (s *TableScanner) TableHeads() TableHeads {
	return s.heads
}

// TimeSeries returns the completed body rows collected so far.
func (s *TableScanner) TimeSeries() TimeSeries {
	return s.series
}
