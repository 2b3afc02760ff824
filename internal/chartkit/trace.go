package chartkit

import (
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// HoverFormatter builds the hover template for a record. It receives the
// record itself so the full, non-abbreviated label and every categorical
// field are available for interpolation.
type HoverFormatter func(Record) string

// AlternatingOffsets assigns event records one of two fixed vertical offsets
// in round-robin order, keeping adjacent labels on a shared timeline from
// overlapping. This is a fixed rotation, not a collision-detection layout.
type AlternatingOffsets struct {
	Lo, Hi    float64
	StartHigh bool
}

// At returns the offset for the record at index i.
func (o AlternatingOffsets) At(i int) float64 {
	odd := i%2 == 1
	if o.StartHigh != odd {
		return o.Hi
	}
	return o.Lo
}

// Midpoint returns the midpoint of the two offsets; the label anchor flips
// around it.
func (o AlternatingOffsets) Midpoint() float64 {
	return (o.Lo + o.Hi) / 2
}

// Above reports whether a primitive at offset y should anchor its label
// above the marker.
func (o AlternatingOffsets) Above(y float64) bool {
	return y > o.Midpoint()
}

// TraceBuilder converts one record plus its resolved style into one
// renderable primitive. Builders are pure; a failed build aborts the whole
// assembly.
type TraceBuilder interface {
	Build(rec Record, style StyleEncoding, y float64) (Primitive, error)
}

// MarkerBuilder renders event records as point markers along a shared
// horizontal timeline. Labels go through the two-stage abbreviation policy;
// hover text always interpolates the full label.
type MarkerBuilder struct {
	Abbrev     *Abbreviator
	Offsets    AlternatingOffsets
	FontSize   float64
	LabelColor drawing.Color
	Hover      HoverFormatter
}

func (b *MarkerBuilder) Build(rec Record, style StyleEncoding, y float64) (Primitive, error) {
	label := rec.Label
	if b.Abbrev != nil {
		label = b.Abbrev.Shorten(label)
	}
	var hover string
	if b.Hover != nil {
		hover = b.Hover(rec)
	}
	return &Marker{
		Name:       rec.Label,
		X:          rec.Position,
		Y:          y,
		Style:      style,
		Symbol:     SymbolCircle,
		Label:      label,
		LabelAbove: b.Offsets.Above(y),
		FontSize:   b.FontSize,
		LabelColor: b.LabelColor,
		HoverText:  hover,
	}, nil
}

// BarBuilder renders measured records as vertical bars anchored at a fixed
// baseline. The assembler's y offset does not apply to bars and is ignored.
type BarBuilder struct {
	Baseline   float64
	HalfWidth  float64
	FontSize   float64
	LabelColor drawing.Color
	Label      func(Record) string
	Hover      HoverFormatter
}

func (b *BarBuilder) Build(rec Record, style StyleEncoding, _ float64) (Primitive, error) {
	var label string
	if b.Label != nil {
		label = b.Label(rec)
	} else {
		label = rec.Label
	}
	var hover string
	if b.Hover != nil {
		hover = b.Hover(rec)
	}
	return &Bar{
		Name:       rec.Label,
		X:          rec.Position,
		HalfWidth:  b.HalfWidth,
		Baseline:   b.Baseline,
		Value:      rec.Value,
		Color:      style.Color,
		Label:      label,
		FontSize:   b.FontSize,
		LabelColor: b.LabelColor,
		HoverText:  hover,
	}, nil
}
