package chartkit

import (
	"fmt"
	"math"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// AxisConfig describes one axis with an explicit, non-auto-fit range.
// Out-of-range records render visibly wrong instead of silently rescaling
// the chart.
type AxisConfig struct {
	Title      string
	Min, Max   float64
	TickStep   float64
	TickSuffix string
	Hidden     bool
	FontSize   float64
	GridColor  drawing.Color
	// Ticks overrides generated ticks; used for categorical axes where
	// positions carry display names instead of numbers.
	Ticks []Tick
}

// Tick is one explicit axis tick.
type Tick struct {
	Value float64
	Label string
}

// LegendEntry is one swatch plus its display name.
type LegendEntry struct {
	Name   string
	Swatch StyleEncoding
}

// LegendGroup is the legend block for one categorical dimension, with its
// own title. A chart encoding two dimensions shows two groups.
type LegendGroup struct {
	Title   string
	Entries []LegendEntry
}

// Annotation is a fixed text label pinned to data-space coordinates.
type Annotation struct {
	X, Y     float64
	Text     string
	FontSize float64
	Color    drawing.Color
}

// Threshold is a horizontal reference line at a fixed value, independent of
// any data record, with its own dash pattern and label.
type Threshold struct {
	Value     float64
	Label     string
	Color     drawing.Color
	Width     float64
	DashArray []float64
	FontSize  float64
}

// LayoutConfig enumerates every global chart property. It is applied exactly
// once per figure, after all primitives are built.
type LayoutConfig struct {
	Title        string
	TitleSize    float64
	Width        int
	Height       int
	Padding      chart.Box
	XAxis        AxisConfig
	YAxis        AxisConfig
	LegendGroups []LegendGroup
	Annotations  []Annotation
	Thresholds   []Threshold
	Footnotes    []string
}

// Layout is the composed, render-ready form of a LayoutConfig.
type Layout struct {
	config   LayoutConfig
	xaxis    chart.XAxis
	yaxis    chart.YAxis
	overlays []chart.Series
	elements []chart.Renderable
}

// ComposeLayout turns a LayoutConfig into a Layout: axis definitions with
// generated ticks, threshold and annotation overlays, and the grouped legend
// panel. Composition is independent of the data records.
func ComposeLayout(cfg LayoutConfig) Layout {
	l := Layout{config: cfg}

	l.xaxis = composeXAxis(cfg.XAxis)
	l.yaxis = composeYAxis(cfg.YAxis)

	for _, t := range cfg.Thresholds {
		l.overlays = append(l.overlays, &thresholdLine{threshold: t, xMin: cfg.XAxis.Min, xMax: cfg.XAxis.Max})
	}
	for _, a := range cfg.Annotations {
		l.overlays = append(l.overlays, &annotationText{annotation: a})
	}
	if len(cfg.LegendGroups) > 0 {
		l.elements = append(l.elements, legendPanel(cfg.LegendGroups))
	}
	if len(cfg.Footnotes) > 0 {
		l.elements = append(l.elements, footnotePanel(cfg.Footnotes))
	}
	return l
}

func composeXAxis(cfg AxisConfig) chart.XAxis {
	ax := chart.XAxis{
		Name:      cfg.Title,
		NameStyle: chart.Style{FontSize: 12},
		Style:     chart.Style{FontSize: axisFontSize(cfg), Hidden: cfg.Hidden},
		Range:     &chart.ContinuousRange{Min: cfg.Min, Max: cfg.Max},
		Ticks:     axisTicks(cfg),
	}
	if !cfg.GridColor.IsZero() {
		ax.GridMajorStyle = chart.Style{StrokeColor: cfg.GridColor, StrokeWidth: 1}
	}
	return ax
}

func composeYAxis(cfg AxisConfig) chart.YAxis {
	ax := chart.YAxis{
		Name:      cfg.Title,
		NameStyle: chart.Style{FontSize: 12},
		Style:     chart.Style{FontSize: axisFontSize(cfg), Hidden: cfg.Hidden},
		Range:     &chart.ContinuousRange{Min: cfg.Min, Max: cfg.Max},
		Ticks:     axisTicks(cfg),
	}
	if !cfg.GridColor.IsZero() {
		ax.GridMajorStyle = chart.Style{StrokeColor: cfg.GridColor, StrokeWidth: 1}
	}
	return ax
}

func axisFontSize(cfg AxisConfig) float64 {
	if cfg.FontSize > 0 {
		return cfg.FontSize
	}
	return 10
}

// axisTicks generates evenly spaced ticks from an explicit range and step,
// unless the config names its ticks explicitly.
func axisTicks(cfg AxisConfig) []chart.Tick {
	if cfg.Hidden {
		return nil
	}
	if len(cfg.Ticks) > 0 {
		ticks := make([]chart.Tick, 0, len(cfg.Ticks))
		for _, t := range cfg.Ticks {
			ticks = append(ticks, chart.Tick{Value: t.Value, Label: t.Label})
		}
		return ticks
	}
	if cfg.TickStep <= 0 {
		return nil
	}
	var ticks []chart.Tick
	for v := cfg.Min; v <= cfg.Max+1e-9; v += cfg.TickStep {
		label := formatTick(v) + cfg.TickSuffix
		ticks = append(ticks, chart.Tick{Value: v, Label: label})
	}
	return ticks
}

func formatTick(v float64) string {
	if v == math.Trunc(v) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%g", v)
}

// thresholdLine draws one horizontal reference line across the plot area
// with a right-aligned label just above it.
type thresholdLine struct {
	threshold  Threshold
	xMin, xMax float64
}

func (t *thresholdLine) GetName() string           { return t.threshold.Label }
func (t *thresholdLine) GetStyle() chart.Style     { return chart.Style{} }
func (t *thresholdLine) GetYAxis() chart.YAxisType { return chart.YAxisPrimary }
func (t *thresholdLine) Len() int                  { return 1 }
func (t *thresholdLine) Validate() error           { return nil }
func (t *thresholdLine) Hover() string             { return "" }

func (t *thresholdLine) Render(r chart.Renderer, canvasBox chart.Box, xrange, yrange chart.Range, defaults chart.Style) {
	y := canvasBox.Bottom - yrange.Translate(t.threshold.Value)
	width := t.threshold.Width
	if width <= 0 {
		width = 2
	}
	r.SetStrokeColor(t.threshold.Color)
	r.SetStrokeWidth(width)
	if len(t.threshold.DashArray) > 0 {
		r.SetStrokeDashArray(t.threshold.DashArray)
	}
	r.MoveTo(canvasBox.Left, y)
	r.LineTo(canvasBox.Right, y)
	r.Stroke()

	if t.threshold.Label != "" {
		size := t.threshold.FontSize
		if size <= 0 {
			size = 12
		}
		style := chart.Style{FontSize: size, FontColor: t.threshold.Color}
		if f, err := chart.GetDefaultFont(); err == nil {
			style.Font = f
		}
		style.WriteTextOptionsToRenderer(r)
		box := r.MeasureText(t.threshold.Label)
		chart.Draw.Text(r, t.threshold.Label, canvasBox.Right-box.Width()-4, y-5, style)
	}
}

// annotationText draws a fixed text label at data-space coordinates.
type annotationText struct {
	annotation Annotation
}

func (a *annotationText) GetName() string           { return a.annotation.Text }
func (a *annotationText) GetStyle() chart.Style     { return chart.Style{} }
func (a *annotationText) GetYAxis() chart.YAxisType { return chart.YAxisPrimary }
func (a *annotationText) Len() int                  { return 1 }
func (a *annotationText) Validate() error           { return nil }
func (a *annotationText) Hover() string             { return "" }

func (a *annotationText) Render(r chart.Renderer, canvasBox chart.Box, xrange, yrange chart.Range, defaults chart.Style) {
	x := canvasBox.Left + xrange.Translate(a.annotation.X)
	y := canvasBox.Bottom - yrange.Translate(a.annotation.Y)
	size := a.annotation.FontSize
	if size <= 0 {
		size = 10
	}
	color := a.annotation.Color
	if color.IsZero() {
		color = drawing.ColorFromHex("808080")
	}
	drawCenteredText(r, a.annotation.Text, x, y, size, color)
}

// legendPanel renders grouped legend blocks in the right padding area, one
// block per categorical dimension with its own title. The built-in legend
// cannot group entries, hence the custom renderable.
func legendPanel(groups []LegendGroup) chart.Renderable {
	return func(r chart.Renderer, canvasBox chart.Box, defaults chart.Style) {
		font, _ := chart.GetDefaultFont()
		x := canvasBox.Right + 18
		y := canvasBox.Top + 10

		for _, g := range groups {
			titleStyle := chart.Style{Font: font, FontSize: 11, FontColor: drawing.ColorBlack}
			titleStyle.WriteTextOptionsToRenderer(r)
			chart.Draw.Text(r, g.Title, x, y, titleStyle)
			y += 18

			for _, e := range g.Entries {
				swatchR := int(e.Swatch.Size / 2)
				if swatchR < 4 {
					swatchR = 5
				}
				strokeCircle(r, x+swatchR, y-swatchR/2-2, swatchR, e.Swatch.Color, drawing.ColorTransparent, 0)
				if e.Swatch.BorderWidth > 0 {
					strokeCircle(r, x+swatchR, y-swatchR/2-2, swatchR, drawing.ColorTransparent, e.Swatch.BorderColor, e.Swatch.BorderWidth)
				}
				entryStyle := chart.Style{Font: font, FontSize: 10, FontColor: drawing.ColorBlack}
				entryStyle.WriteTextOptionsToRenderer(r)
				chart.Draw.Text(r, e.Name, x+2*swatchR+8, y, entryStyle)
				y += 16
			}
			y += 12
		}
	}
}

// footnotePanel renders metric summary lines pinned below the plot area,
// centered in the bottom padding.
func footnotePanel(lines []string) chart.Renderable {
	return func(r chart.Renderer, canvasBox chart.Box, defaults chart.Style) {
		font, _ := chart.GetDefaultFont()
		style := chart.Style{Font: font, FontSize: 11, FontColor: drawing.ColorFromHex("666666")}
		style.WriteTextOptionsToRenderer(r)
		y := canvasBox.Bottom + 40
		cx := (canvasBox.Left + canvasBox.Right) / 2
		for _, line := range lines {
			box := r.MeasureText(line)
			chart.Draw.Text(r, line, cx-box.Width()/2, y, style)
			y += 16
		}
	}
}
