package charts

import (
	"fmt"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/sev7enITA/DDPFramework/internal/chartkit"
	"github.com/sev7enITA/DDPFramework/internal/models"
)

const complianceBaseline = 80.0

// ComplianceResolver maps compliance bands (derived from coverage
// percentages) to bar colors.
func ComplianceResolver() *chartkit.StyleResolver {
	table := make(map[chartkit.Category]chartkit.StyleEncoding)
	for band, hex := range models.ComplianceBandPalette() {
		table[chartkit.Category(band)] = chartkit.StyleEncoding{Color: chartkit.HexColor(hex)}
	}
	return chartkit.NewStyleResolver("compliance", table)
}

// ComplianceRecords converts the compliance dataset into chart records. The
// record category is the band derived from the coverage value, so a new
// entry whose band is missing from the palette fails fast at assembly.
func ComplianceRecords() []chartkit.Record {
	entries := models.ComplianceEntries()
	records := make([]chartkit.Record, 0, len(entries))
	for i, e := range entries {
		records = append(records, chartkit.Record{
			Label:      e.Regulation,
			Position:   float64(i),
			Category:   chartkit.Category(models.ComplianceBand(e.Coverage)),
			Value:      e.Coverage,
			Annotation: fmt.Sprintf("%d violations", e.Violations),
		})
	}
	return records
}

func complianceHover(rec chartkit.Record) string {
	return fmt.Sprintf("<b>%s</b><br>Coverage: %.0f%%<br>%s", rec.Label, rec.Value, rec.Annotation)
}

// ComplianceFigure assembles the compliance coverage bar chart with its
// three target threshold lines and metric footnotes.
func (cg *ChartGenerator) ComplianceFigure() (*chartkit.Figure, error) {
	asm := &chartkit.Assembler{
		Styles: ComplianceResolver(),
		Builder: &chartkit.BarBuilder{
			Baseline:  complianceBaseline,
			HalfWidth: 0.25,
			FontSize:  13,
			Label: func(rec chartkit.Record) string {
				return fmt.Sprintf("%.0f%%\n%s", rec.Value, rec.Annotation)
			},
			Hover: complianceHover,
		},
		Layout: complianceLayout(),
	}
	return asm.Assemble(ComplianceRecords())
}

func complianceLayout() chartkit.LayoutConfig {
	var xTicks []chartkit.Tick
	for i, e := range models.ComplianceEntries() {
		xTicks = append(xTicks, chartkit.Tick{Value: float64(i), Label: e.Regulation})
	}
	return chartkit.LayoutConfig{
		Title:     "Privacy Compliance Coverage",
		TitleSize: 20,
		Width:     900,
		Height:    560,
		Padding:   chart.Box{Top: 50, Left: 70, Right: 60, Bottom: 110},
		XAxis: chartkit.AxisConfig{
			Title: "Regulations",
			Min:   -0.5,
			Max:   2.5,
			Ticks: xTicks,
		},
		YAxis: chartkit.AxisConfig{
			Title:      "Coverage %",
			Min:        complianceBaseline,
			Max:        100,
			TickStep:   5,
			TickSuffix: "%",
			GridColor:  drawing.Color{R: 128, G: 128, B: 128, A: 50},
		},
		Thresholds: []chartkit.Threshold{
			{Value: 95, Label: "Excellent: 95%+", Color: chartkit.HexColor("#2E8B57"), Width: 2},
			{Value: 90, Label: "Good: 90%+", Color: chartkit.HexColor("#1FB8CD"), Width: 2, DashArray: []float64{6, 4}},
			{Value: 85, Label: "Warning: 85%+", Color: chartkit.HexColor("#D2BA4C"), Width: 2, DashArray: []float64{2, 3}},
		},
		Footnotes: models.DashboardFootnotes(),
	}
}
