package chartkit

import (
	"io"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Figure is the complete assembled chart: an ordered list of primitives plus
// one composed layout. It is immutable once built; rendering the same figure
// twice produces identical bytes since nothing in it depends on time or map
// iteration order.
type Figure struct {
	layout     Layout
	primitives []Primitive
}

// NewFigure builds a figure from a composed layout and an ordered primitive
// list. Primitive order is draw order: later primitives draw on top.
func NewFigure(layout Layout, prims ...Primitive) *Figure {
	copied := make([]Primitive, len(prims))
	copy(copied, prims)
	return &Figure{layout: layout, primitives: copied}
}

// Primitives returns the draw-ordered primitive list.
func (f *Figure) Primitives() []Primitive {
	out := make([]Primitive, len(f.primitives))
	copy(out, f.primitives)
	return out
}

// Render draws the figure through the given renderer provider (chart.PNG for
// raster, chart.SVG for vector). Both formats render from the same in-memory
// figure so they cannot drift apart.
func (f *Figure) Render(provider chart.RendererProvider, w io.Writer) error {
	cfg := f.layout.config

	graph := chart.Chart{
		Title: cfg.Title,
		TitleStyle: chart.Style{
			FontSize:  titleSize(cfg),
			FontColor: drawing.ColorBlack,
		},
		Width:  cfg.Width,
		Height: cfg.Height,
		Background: chart.Style{
			Padding: cfg.Padding,
		},
		XAxis: f.layout.xaxis,
		YAxis: f.layout.yaxis,
	}

	for _, p := range f.primitives {
		graph.Series = append(graph.Series, p)
	}
	graph.Series = append(graph.Series, f.layout.overlays...)
	graph.Elements = append(graph.Elements, f.layout.elements...)

	return graph.Render(provider, w)
}

func titleSize(cfg LayoutConfig) float64 {
	if cfg.TitleSize > 0 {
		return cfg.TitleSize
	}
	return 16
}
