package charts

import (
	"fmt"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/sev7enITA/DDPFramework/internal/chartkit"
	"github.com/sev7enITA/DDPFramework/internal/models"
)

const (
	timelineLabelMaxLen = 15
	timelineSpineY      = 1.0
	milestoneY          = 0.5
)

var timelineOffsets = chartkit.AlternatingOffsets{Lo: 1.5, Hi: 1.8}

// timelineAccent is the spine/milestone color shared with the brand palette.
func timelineAccent() chartkit.StyleEncoding {
	return chartkit.StyleEncoding{Color: chartkit.HexColor("#1FB8CD"), Size: 8}
}

// SeverityResolver maps threat severity to marker color. Marker size is
// uniform; severity encodes only through color.
func SeverityResolver() *chartkit.StyleResolver {
	table := make(map[chartkit.Category]chartkit.StyleEncoding)
	for level, hex := range models.SeverityPalette() {
		table[chartkit.Category(level)] = chartkit.StyleEncoding{
			Color: chartkit.HexColor(hex),
			Size:  18,
		}
	}
	return chartkit.NewStyleResolver("severity", table)
}

// CoverageResolver maps regulatory coverage to the marker border: color from
// the coverage palette, width from the coverage ladder (none=1 up to
// comprehensive=4). The neutral fill only shows in legend swatches.
func CoverageResolver() *chartkit.StyleResolver {
	widths := models.CoverageBorderWidths()
	table := make(map[chartkit.Category]chartkit.StyleEncoding)
	for level, hex := range models.CoveragePalette() {
		table[chartkit.Category(level)] = chartkit.StyleEncoding{
			Color:       chartkit.HexColor("#D3D3D3"),
			BorderColor: chartkit.HexColor(hex),
			BorderWidth: widths[level],
			Size:        12,
		}
	}
	return chartkit.NewStyleResolver("coverage", table)
}

// ThreatRecords converts the embedded threat dataset into chart records.
func ThreatRecords() []chartkit.Record {
	threats := models.ThreatTimeline()
	records := make([]chartkit.Record, 0, len(threats))
	for _, t := range threats {
		records = append(records, chartkit.Record{
			Label:      t.Name,
			Position:   float64(t.Year),
			Category:   chartkit.Category(t.Severity),
			Border:     chartkit.Category(t.Coverage),
			Annotation: t.Mitigation,
		})
	}
	return records
}

func threatHover(rec chartkit.Record) string {
	return fmt.Sprintf("<b>%s</b><br>Year: %.0f<br>Severity: %s<br>Reg Coverage: %s<br>DDP Response: %s",
		rec.Label, rec.Position, rec.Category, rec.Border, rec.Annotation)
}

// TimelineFigure assembles the privacy threat evolution timeline: threat
// markers alternating above a horizontal spine, year tick markers on the
// spine, and DDP milestone diamonds below it.
func (cg *ChartGenerator) TimelineFigure() (*chartkit.Figure, error) {
	abbrev := chartkit.NewAbbreviator(timelineLabelMaxLen, models.ThreatAbbreviations())
	accent := timelineAccent()

	underlay := []chartkit.Primitive{
		&chartkit.Segment{
			Name:  "timeline-spine",
			X0:    2020, Y0: timelineSpineY,
			X1:    2035, Y1: timelineSpineY,
			Color: accent.Color,
			Width: 4,
		},
	}

	var overlay []chartkit.Primitive
	for _, year := range models.TimelineYearMarkers() {
		overlay = append(overlay, &chartkit.Marker{
			Name:   fmt.Sprintf("year-%d", year),
			X:      float64(year),
			Y:      timelineSpineY,
			Style:  accent,
			Symbol: chartkit.SymbolCircle,
		})
	}
	for _, m := range models.Milestones() {
		overlay = append(overlay, &chartkit.Marker{
			Name:       m.Title,
			X:          float64(m.Year),
			Y:          milestoneY,
			Style:      chartkit.StyleEncoding{Color: accent.Color, Size: 15},
			Symbol:     chartkit.SymbolDiamond,
			Label:      abbrev.Shorten(m.Title),
			LabelAbove: false,
			FontSize:   8,
			LabelColor: accent.Color,
			HoverText:  fmt.Sprintf("<b>%s</b><br>Year: %d<br>%s", m.Title, m.Year, m.Description),
		})
	}

	asm := &chartkit.Assembler{
		Styles:  SeverityResolver(),
		Borders: CoverageResolver(),
		Builder: &chartkit.MarkerBuilder{
			Abbrev:   abbrev,
			Offsets:  timelineOffsets,
			FontSize: 9,
			Hover:    threatHover,
		},
		Offsets:  timelineOffsets,
		Underlay: underlay,
		Overlay:  overlay,
		Layout:   timelineLayout(),
	}
	return asm.Assemble(ThreatRecords())
}

func timelineLayout() chartkit.LayoutConfig {
	severity := SeverityResolver()
	coverage := CoverageResolver()
	return chartkit.LayoutConfig{
		Title:   "Privacy Threats Evolution & DDP Response",
		Width:   1200,
		Height:  520,
		Padding: chart.Box{Top: 50, Left: 50, Right: 230, Bottom: 60},
		XAxis: chartkit.AxisConfig{
			Title:     "Year",
			Min:       2019,
			Max:       2036,
			TickStep:  2,
			GridColor: chartkit.HexColor("#D3D3D3"),
		},
		YAxis: chartkit.AxisConfig{
			Min:    0,
			Max:    2.2,
			Hidden: true,
		},
		LegendGroups: []chartkit.LegendGroup{
			{
				Title: "Threat Severity",
				Entries: []chartkit.LegendEntry{
					{Name: "Low", Swatch: severity.MustResolve(models.SeverityLow)},
					{Name: "Medium", Swatch: severity.MustResolve(models.SeverityMedium)},
					{Name: "High", Swatch: severity.MustResolve(models.SeverityHigh)},
					{Name: "Critical", Swatch: severity.MustResolve(models.SeverityCritical)},
				},
			},
			{
				Title: "Reg Coverage",
				Entries: []chartkit.LegendEntry{
					{Name: "None", Swatch: coverage.MustResolve(models.CoverageNone)},
					{Name: "Limited", Swatch: coverage.MustResolve(models.CoverageLimited)},
					{Name: "Partial", Swatch: coverage.MustResolve(models.CoveragePartial)},
					{Name: "Comprehensive", Swatch: coverage.MustResolve(models.CoverageComprehensive)},
				},
			},
		},
		Annotations: []chartkit.Annotation{
			{X: 2022.5, Y: 2.1, Text: "Current Threats", FontSize: 10},
			{X: 2027, Y: 2.1, Text: "Near-term", FontSize: 10},
			{X: 2033, Y: 2.1, Text: "Future Threats", FontSize: 10},
		},
	}
}
