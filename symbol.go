package stockquote

// MaxSymbolLen is the longest ticker symbol accepted by ValidateSymbol.
const MaxSymbolLen = 128

// ValidateSymbol rejects symbols that are empty, longer than MaxSymbolLen or
// contain anything outside printable ASCII (33-126). It runs before any
// network access.
func ValidateSymbol(symbol string) error {
	if symbol == "" || len(symbol) > MaxSymbolLen {
		return Errorf(EINVALID, "invalid symbol: %q", symbol)
	}
	for i := 0; i < len(symbol); i++ {
		if c := symbol[i]; c <= 32 || c >= 127 {
			return Errorf(EINVALID, "illegal character %q found in symbol %q", c, symbol)
		}
	}
	return nil
}
