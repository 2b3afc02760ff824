package chartkit

import (
	"strings"

	"github.com/wcharczuk/go-chart/v2/drawing"
)

// StyleEncoding holds the visual attributes derived from a record's category.
// Encodings are plain values: two records with the same category always get
// the exact same encoding back.
type StyleEncoding struct {
	Color       drawing.Color
	BorderColor drawing.Color
	BorderWidth float64
	Size        float64
}

// StyleResolver maps categories of a single dimension to their visual
// encoding. Distinct dimensions (severity vs. coverage) get distinct resolver
// instances with distinct tables. The lookup is pure; a missing entry is an
// *UnknownCategoryError, never a silent default.
type StyleResolver struct {
	name  string
	table map[Category]StyleEncoding
}

// NewStyleResolver creates a resolver over a fixed lookup table. The table is
// copied so later mutation of the argument cannot change resolution results.
func NewStyleResolver(name string, table map[Category]StyleEncoding) *StyleResolver {
	copied := make(map[Category]StyleEncoding, len(table))
	for k, v := range table {
		copied[k] = v
	}
	return &StyleResolver{name: name, table: copied}
}

// Name returns the dimension name the resolver was configured for.
func (r *StyleResolver) Name() string {
	return r.name
}

// Resolve returns the configured encoding for a category.
func (r *StyleResolver) Resolve(c Category) (StyleEncoding, error) {
	enc, ok := r.table[c]
	if !ok {
		return StyleEncoding{}, &UnknownCategoryError{Resolver: r.name, Category: c}
	}
	return enc, nil
}

// MustResolve is for table construction in literal configuration where the
// category is known to exist; it panics on a missing entry.
func (r *StyleResolver) MustResolve(c Category) StyleEncoding {
	enc, err := r.Resolve(c)
	if err != nil {
		panic(err)
	}
	return enc
}

// HexColor parses a "#RRGGBB" (or "RRGGBB") palette entry into a drawing
// color. Used when building style tables from literal hex palettes.
func HexColor(hex string) drawing.Color {
	return drawing.ColorFromHex(strings.TrimPrefix(hex, "#"))
}
