package chartkit

import (
	"math"
	"strings"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Primitive is one renderable mark (point, bar, line segment, shape) plus its
// label and hover text. Primitives live in data coordinates and translate to
// pixels at render time. They implement chart.Series so a Figure can hand
// them straight to the rendering library.
type Primitive interface {
	chart.Series

	// Hover returns the hover template for interactive output surfaces.
	// Static raster output ignores it.
	Hover() string
}

// MarkerSymbol selects the marker shape. Synthetic primitives use a distinct
// symbol so they are visually distinguishable from data records.
type MarkerSymbol int

const (
	SymbolCircle MarkerSymbol = iota
	SymbolDiamond
)

// Marker is a single point marker with an optional text label anchored above
// or below it.
type Marker struct {
	Name       string
	X, Y       float64
	Style      StyleEncoding
	Symbol     MarkerSymbol
	Label      string
	LabelAbove bool
	FontSize   float64
	LabelColor drawing.Color
	HoverText  string
}

func (m *Marker) GetName() string           { return m.Name }
func (m *Marker) GetStyle() chart.Style     { return chart.Style{} }
func (m *Marker) GetYAxis() chart.YAxisType { return chart.YAxisPrimary }
func (m *Marker) Len() int                  { return 1 }
func (m *Marker) Validate() error           { return nil }
func (m *Marker) Hover() string             { return m.HoverText }

func (m *Marker) Render(r chart.Renderer, canvasBox chart.Box, xrange, yrange chart.Range, defaults chart.Style) {
	cx := canvasBox.Left + xrange.Translate(m.X)
	cy := canvasBox.Bottom - yrange.Translate(m.Y)
	radius := int(m.Style.Size / 2)
	if radius < 2 {
		radius = 2
	}

	switch m.Symbol {
	case SymbolDiamond:
		r.SetFillColor(m.Style.Color)
		r.MoveTo(cx, cy-radius)
		r.LineTo(cx+radius, cy)
		r.LineTo(cx, cy+radius)
		r.LineTo(cx-radius, cy)
		r.Close()
		r.Fill()
		if m.Style.BorderWidth > 0 {
			r.SetStrokeColor(m.Style.BorderColor)
			r.SetStrokeWidth(m.Style.BorderWidth)
			r.MoveTo(cx, cy-radius)
			r.LineTo(cx+radius, cy)
			r.LineTo(cx, cy+radius)
			r.LineTo(cx-radius, cy)
			r.Close()
			r.Stroke()
		}
	default:
		strokeCircle(r, cx, cy, radius, m.Style.Color, drawing.ColorTransparent, 0)
		if m.Style.BorderWidth > 0 {
			strokeCircle(r, cx, cy, radius, drawing.ColorTransparent, m.Style.BorderColor, m.Style.BorderWidth)
		}
	}

	if m.Label != "" {
		ty := cy - radius - 6
		if !m.LabelAbove {
			ty = cy + radius + int(m.FontSize) + 6
		}
		drawCenteredText(r, m.Label, cx, ty, m.FontSize, m.LabelColor)
	}
}

// Bar is one vertical bar anchored at a baseline, with an optional value
// label drawn outside the bar top. Position is the bar center; HalfWidth is
// in data units.
type Bar struct {
	Name       string
	X          float64
	HalfWidth  float64
	Baseline   float64
	Value      float64
	Color      drawing.Color
	Label      string
	FontSize   float64
	LabelColor drawing.Color
	HoverText  string
}

func (b *Bar) GetName() string           { return b.Name }
func (b *Bar) GetStyle() chart.Style     { return chart.Style{} }
func (b *Bar) GetYAxis() chart.YAxisType { return chart.YAxisPrimary }
func (b *Bar) Len() int                  { return 1 }
func (b *Bar) Validate() error           { return nil }
func (b *Bar) Hover() string             { return b.HoverText }

func (b *Bar) Render(r chart.Renderer, canvasBox chart.Box, xrange, yrange chart.Range, defaults chart.Style) {
	x0 := canvasBox.Left + xrange.Translate(b.X-b.HalfWidth)
	x1 := canvasBox.Left + xrange.Translate(b.X+b.HalfWidth)
	y0 := canvasBox.Bottom - yrange.Translate(b.Baseline)
	y1 := canvasBox.Bottom - yrange.Translate(b.Value)
	if y1 > y0 {
		y0, y1 = y1, y0
	}

	r.SetFillColor(b.Color)
	r.MoveTo(x0, y0)
	r.LineTo(x0, y1)
	r.LineTo(x1, y1)
	r.LineTo(x1, y0)
	r.Close()
	r.Fill()

	if b.Label != "" {
		cx := (x0 + x1) / 2
		ty := y1 - 8
		for _, line := range splitLines(b.Label) {
			drawCenteredText(r, line, cx, ty, b.FontSize, b.LabelColor)
			ty -= int(b.FontSize) + 4
		}
	}
}

// Segment is a straight line between two data-space points; used for the
// timeline spine and similar non-data geometry.
type Segment struct {
	Name      string
	X0, Y0    float64
	X1, Y1    float64
	Color     drawing.Color
	Width     float64
	DashArray []float64
}

func (s *Segment) GetName() string           { return s.Name }
func (s *Segment) GetStyle() chart.Style     { return chart.Style{} }
func (s *Segment) GetYAxis() chart.YAxisType { return chart.YAxisPrimary }
func (s *Segment) Len() int                  { return 1 }
func (s *Segment) Validate() error           { return nil }
func (s *Segment) Hover() string             { return "" }

func (s *Segment) Render(r chart.Renderer, canvasBox chart.Box, xrange, yrange chart.Range, defaults chart.Style) {
	r.SetStrokeColor(s.Color)
	r.SetStrokeWidth(s.Width)
	if len(s.DashArray) > 0 {
		r.SetStrokeDashArray(s.DashArray)
	}
	r.MoveTo(canvasBox.Left+xrange.Translate(s.X0), canvasBox.Bottom-yrange.Translate(s.Y0))
	r.LineTo(canvasBox.Left+xrange.Translate(s.X1), canvasBox.Bottom-yrange.Translate(s.Y1))
	r.Stroke()
}

// NodeShape selects the outline used for a flow diagram node.
type NodeShape int

const (
	ShapeBox NodeShape = iota
	ShapeStadium
	ShapeDiamond
)

// Node is a flow-diagram node: a filled shape centered at (X, Y) with
// multi-line text inside. Extents are in data units.
type Node struct {
	Name        string
	X, Y        float64
	HalfW       float64
	HalfH       float64
	Shape       NodeShape
	Fill        drawing.Color
	Stroke      drawing.Color
	StrokeWidth float64
	Lines       []string
	FontSize    float64
	TextColor   drawing.Color
	HoverText   string
}

func (n *Node) GetName() string           { return n.Name }
func (n *Node) GetStyle() chart.Style     { return chart.Style{} }
func (n *Node) GetYAxis() chart.YAxisType { return chart.YAxisPrimary }
func (n *Node) Len() int                  { return 1 }
func (n *Node) Validate() error           { return nil }
func (n *Node) Hover() string             { return n.HoverText }

func (n *Node) Render(r chart.Renderer, canvasBox chart.Box, xrange, yrange chart.Range, defaults chart.Style) {
	x0 := canvasBox.Left + xrange.Translate(n.X-n.HalfW)
	x1 := canvasBox.Left + xrange.Translate(n.X+n.HalfW)
	y0 := canvasBox.Bottom - yrange.Translate(n.Y+n.HalfH)
	y1 := canvasBox.Bottom - yrange.Translate(n.Y-n.HalfH)
	cx := (x0 + x1) / 2
	cy := (y0 + y1) / 2

	switch n.Shape {
	case ShapeDiamond:
		r.SetFillColor(n.Fill)
		r.MoveTo(cx, y0)
		r.LineTo(x1, cy)
		r.LineTo(cx, y1)
		r.LineTo(x0, cy)
		r.Close()
		r.Fill()
		r.SetStrokeColor(n.Stroke)
		r.SetStrokeWidth(n.StrokeWidth)
		r.MoveTo(cx, y0)
		r.LineTo(x1, cy)
		r.LineTo(cx, y1)
		r.LineTo(x0, cy)
		r.Close()
		r.Stroke()
	case ShapeStadium:
		// approximate rounded ends with semicircular caps
		radius := (y1 - y0) / 2
		fillStadium(r, x0, y0, x1, y1, radius, n.Fill, n.Stroke, n.StrokeWidth)
	default:
		r.SetFillColor(n.Fill)
		r.MoveTo(x0, y0)
		r.LineTo(x1, y0)
		r.LineTo(x1, y1)
		r.LineTo(x0, y1)
		r.Close()
		r.Fill()
		r.SetStrokeColor(n.Stroke)
		r.SetStrokeWidth(n.StrokeWidth)
		r.MoveTo(x0, y0)
		r.LineTo(x1, y0)
		r.LineTo(x1, y1)
		r.LineTo(x0, y1)
		r.Close()
		r.Stroke()
	}

	lineHeight := int(n.FontSize) + 4
	startY := cy - (len(n.Lines)-1)*lineHeight/2 + int(n.FontSize)/2
	for i, line := range n.Lines {
		drawCenteredText(r, line, cx, startY+i*lineHeight, n.FontSize, n.TextColor)
	}
}

// Edge is a directed connector between two flow nodes, drawn with an
// arrowhead at the destination and an optional midpoint label.
type Edge struct {
	Name       string
	X0, Y0     float64
	X1, Y1     float64
	Color      drawing.Color
	Width      float64
	Label      string
	FontSize   float64
	LabelColor drawing.Color
}

func (e *Edge) GetName() string           { return e.Name }
func (e *Edge) GetStyle() chart.Style     { return chart.Style{} }
func (e *Edge) GetYAxis() chart.YAxisType { return chart.YAxisPrimary }
func (e *Edge) Len() int                  { return 1 }
func (e *Edge) Validate() error           { return nil }
func (e *Edge) Hover() string             { return "" }

func (e *Edge) Render(r chart.Renderer, canvasBox chart.Box, xrange, yrange chart.Range, defaults chart.Style) {
	x0 := canvasBox.Left + xrange.Translate(e.X0)
	y0 := canvasBox.Bottom - yrange.Translate(e.Y0)
	x1 := canvasBox.Left + xrange.Translate(e.X1)
	y1 := canvasBox.Bottom - yrange.Translate(e.Y1)

	r.SetStrokeColor(e.Color)
	r.SetStrokeWidth(e.Width)
	r.MoveTo(x0, y0)
	r.LineTo(x1, y1)
	r.Stroke()

	// arrowhead
	angle := math.Atan2(float64(y1-y0), float64(x1-x0))
	const headLen = 10.0
	const headAngle = math.Pi / 7
	lx := x1 - int(headLen*math.Cos(angle-headAngle))
	ly := y1 - int(headLen*math.Sin(angle-headAngle))
	rx := x1 - int(headLen*math.Cos(angle+headAngle))
	ry := y1 - int(headLen*math.Sin(angle+headAngle))
	r.SetFillColor(e.Color)
	r.MoveTo(x1, y1)
	r.LineTo(lx, ly)
	r.LineTo(rx, ry)
	r.Close()
	r.Fill()

	if e.Label != "" {
		mx := (x0 + x1) / 2
		my := (y0+y1)/2 - 6
		drawCenteredText(r, e.Label, mx, my, e.FontSize, e.LabelColor)
	}
}

// strokeCircle approximates a circle with a polygon path, the same way the
// rendering backend expects filled shapes to be drawn.
func strokeCircle(r chart.Renderer, cx, cy, radius int, fill, stroke drawing.Color, strokeWidth float64) {
	const steps = 32
	trace := func() {
		for i := 0; i <= steps; i++ {
			angle := 2 * math.Pi * float64(i) / float64(steps)
			px := cx + int(float64(radius)*math.Cos(angle))
			py := cy + int(float64(radius)*math.Sin(angle))
			if i == 0 {
				r.MoveTo(px, py)
			} else {
				r.LineTo(px, py)
			}
		}
		r.Close()
	}
	if fill.A > 0 {
		r.SetFillColor(fill)
		trace()
		r.Fill()
	}
	if strokeWidth > 0 && stroke.A > 0 {
		r.SetStrokeColor(stroke)
		r.SetStrokeWidth(strokeWidth)
		trace()
		r.Stroke()
	}
}

func fillStadium(r chart.Renderer, x0, y0, x1, y1, radius int, fill, stroke drawing.Color, strokeWidth float64) {
	// body rectangle plus end caps approximated as circles
	r.SetFillColor(fill)
	r.MoveTo(x0, y0)
	r.LineTo(x1, y0)
	r.LineTo(x1, y1)
	r.LineTo(x0, y1)
	r.Close()
	r.Fill()
	cy := (y0 + y1) / 2
	strokeCircle(r, x0, cy, radius, fill, drawing.ColorTransparent, 0)
	strokeCircle(r, x1, cy, radius, fill, drawing.ColorTransparent, 0)
	if strokeWidth > 0 {
		r.SetStrokeColor(stroke)
		r.SetStrokeWidth(strokeWidth)
		r.MoveTo(x0, y0)
		r.LineTo(x1, y0)
		r.Stroke()
		r.MoveTo(x0, y1)
		r.LineTo(x1, y1)
		r.Stroke()
	}
}

func drawCenteredText(r chart.Renderer, text string, cx, y int, fontSize float64, color drawing.Color) {
	if text == "" {
		return
	}
	style := chart.Style{FontSize: fontSize, FontColor: color}
	if style.FontColor.IsZero() {
		style.FontColor = drawing.ColorBlack
	}
	if f, err := chart.GetDefaultFont(); err == nil {
		style.Font = f
	}
	style.WriteTextOptionsToRenderer(r)
	box := r.MeasureText(text)
	chart.Draw.Text(r, text, cx-box.Width()/2, y, style)
}

func splitLines(s string) []string {
	return strings.Split(s, "\n")
}
