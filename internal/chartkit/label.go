package chartkit

// Abbreviator shortens display labels with a two-stage policy: a curated
// abbreviation table is consulted first, and only labels without a table entry
// are hard-truncated. Blind truncation of domain terms produces misleading
// labels, so the table always wins when it has an entry.
type Abbreviator struct {
	maxLen int
	table  map[string]string
}

// NewAbbreviator creates an abbreviator with the given length limit and
// curated abbreviation table. A nil table means truncate-only.
func NewAbbreviator(maxLen int, table map[string]string) *Abbreviator {
	copied := make(map[string]string, len(table))
	for k, v := range table {
		copied[k] = v
	}
	return &Abbreviator{maxLen: maxLen, table: copied}
}

// Shorten returns the display form of a label. Labels within the limit pass
// through unchanged. The limit counts characters, not bytes, so multibyte
// labels are never cut mid-rune.
func (a *Abbreviator) Shorten(label string) string {
	runes := []rune(label)
	if len(runes) <= a.maxLen {
		return label
	}
	if short, ok := a.table[label]; ok {
		return short
	}
	return string(runes[:a.maxLen])
}

// MaxLen returns the configured length limit.
func (a *Abbreviator) MaxLen() int {
	return a.maxLen
}
