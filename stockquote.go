// Package stockquote fetches the historical-prices page of a ticker symbol
// and extracts the most recent trading session's open, high, low and close
// prices from the price table embedded in that page.
//
// This package contains domain types, the table scanner state machine and
// the quote extraction logic. Implementations live in subdirectories named
// after their primary dependency (e.g., html/, goquery/, sqlite/).
package stockquote
