package chartkit

import "fmt"

// Assembler orchestrates the pipeline for one chart: per-record style
// resolution, trace building, synthetic primitive injection and a single
// layout composition. Any per-record failure aborts the whole assembly; no
// partial figure is ever produced.
type Assembler struct {
	// Styles resolves the primary categorical dimension (marker color/size).
	Styles *StyleResolver
	// Borders optionally resolves a secondary dimension onto the marker
	// border (color and width). Records with an empty Border skip it.
	Borders *StyleResolver
	// Builder converts each record into one primitive.
	Builder TraceBuilder
	// Offsets assigns records their alternating vertical placement.
	Offsets AlternatingOffsets
	// Layout is composed once, after all primitives are built.
	Layout LayoutConfig
	// Underlay primitives draw beneath the data records (timeline spine),
	// Overlay primitives above them (year markers, milestones). Neither set
	// is part of the semantic record collection.
	Underlay []Primitive
	Overlay  []Primitive
}

// Assemble runs the pipeline over the record set and returns the immutable
// figure. Iteration follows the insertion order of records, which determines
// draw order: later records draw on top.
func (a *Assembler) Assemble(records []Record) (*Figure, error) {
	prims := make([]Primitive, 0, len(a.Underlay)+len(records)+len(a.Overlay))
	prims = append(prims, a.Underlay...)

	for i, rec := range records {
		style, err := a.Styles.Resolve(rec.Category)
		if err != nil {
			return nil, err
		}
		if a.Borders != nil && rec.Border != "" {
			border, err := a.Borders.Resolve(rec.Border)
			if err != nil {
				return nil, err
			}
			style.BorderColor = border.BorderColor
			style.BorderWidth = border.BorderWidth
		}
		prim, err := a.Builder.Build(rec, style, a.Offsets.At(i))
		if err != nil {
			return nil, fmt.Errorf("failed to build trace for record %q: %w", rec.Label, err)
		}
		prims = append(prims, prim)
	}

	prims = append(prims, a.Overlay...)
	return NewFigure(ComposeLayout(a.Layout), prims...), nil
}
