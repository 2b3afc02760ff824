package charts

import (
	"fmt"
	"strings"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/sev7enITA/DDPFramework/internal/chartkit"
	"github.com/sev7enITA/DDPFramework/internal/models"
)

// flow diagram palette, matching the Mermaid class definitions
var (
	flowProcessFill    = chartkit.HexColor("#6B7280")
	flowProcessStroke  = chartkit.HexColor("#374151")
	flowDecisionFill   = chartkit.HexColor("#8B5CF6")
	flowDecisionStroke = chartkit.HexColor("#7C3AED")
	flowMetricFill     = chartkit.HexColor("#3B82F6")
	flowMetricStroke   = chartkit.HexColor("#1D4ED8")
	flowEdgeColor      = chartkit.HexColor("#374151")
	flowTextColor      = drawing.ColorWhite
)

// GovernanceFigure renders the three-tier governance model as a native flow
// diagram: entry and completion nodes, the routing decision, one box per
// tier with its live stats and stakeholders, and the framework metric row.
// Node positions live in a fixed 0-100 coordinate space with both axes
// hidden.
func (cg *ChartGenerator) GovernanceFigure() (*chartkit.Figure, error) {
	tiers := models.GovernanceTiers()
	if len(tiers) != 3 {
		return nil, fmt.Errorf("governance flow expects 3 tiers, got %d", len(tiers))
	}

	var prims []chartkit.Primitive

	prims = append(prims,
		&chartkit.Node{
			Name: "start", X: 50, Y: 94, HalfW: 9, HalfH: 3.2,
			Shape: chartkit.ShapeStadium,
			Fill:  flowProcessFill, Stroke: flowProcessStroke, StrokeWidth: 2,
			Lines: []string{"New Request", "Entry Point"},
			FontSize: 11, TextColor: flowTextColor,
		},
		&chartkit.Node{
			Name: "decision", X: 50, Y: 80, HalfW: 8, HalfH: 4.5,
			Shape: chartkit.ShapeDiamond,
			Fill:  flowDecisionFill, Stroke: flowDecisionStroke, StrokeWidth: 2,
			Lines: []string{"Route Request"},
			FontSize: 11, TextColor: flowTextColor,
		},
	)

	tierX := []float64{18, 50, 82}
	for i, tier := range tiers {
		prims = append(prims, &chartkit.Node{
			Name: tier.ID, X: tierX[i], Y: 57, HalfW: 14, HalfH: 10,
			Shape: chartkit.ShapeBox,
			Fill:  chartkit.HexColor(tier.Fill), Stroke: chartkit.HexColor(tier.Stroke), StrokeWidth: 3,
			Lines: tierLines(tier),
			FontSize: 9, TextColor: flowTextColor,
			HoverText: fmt.Sprintf("<b>%s</b><br>%s<br>Volume: %s<br>Success: %s<br>Avg Time: %s",
				tier.Title, tier.Subtitle, tier.Volume, tier.SuccessRate, tier.AvgTime),
		})
		prims = append(prims, &chartkit.Node{
			Name: "done-" + tier.ID, X: tierX[i], Y: 33, HalfW: 8, HalfH: 3,
			Shape: chartkit.ShapeStadium,
			Fill:  flowProcessFill, Stroke: flowProcessStroke, StrokeWidth: 2,
			Lines: []string{"Request Complete"},
			FontSize: 9, TextColor: flowTextColor,
		})
		prims = append(prims, &chartkit.Edge{
			Name: tier.ID + "-done", X0: tierX[i], Y0: 47, X1: tierX[i], Y1: 36.5,
			Color: flowEdgeColor, Width: 2,
		})
	}

	prims = append(prims,
		&chartkit.Edge{Name: "start-decision", X0: 50, Y0: 90.8, X1: 50, Y1: 85, Color: flowEdgeColor, Width: 2},
		&chartkit.Edge{Name: "decision-t1", X0: 44, Y0: 78, X1: 22, Y1: 67.5, Color: flowEdgeColor, Width: 2,
			Label: "Standard Policy", FontSize: 9, LabelColor: flowEdgeColor},
		&chartkit.Edge{Name: "t1-t2", X0: 32.2, Y0: 57, X1: 35.8, Y1: 57, Color: flowEdgeColor, Width: 2,
			Label: "Exception", FontSize: 9, LabelColor: flowEdgeColor},
		&chartkit.Edge{Name: "t2-t3", X0: 64.2, Y0: 57, X1: 67.8, Y1: 57, Color: flowEdgeColor, Width: 2,
			Label: "Novel/High Risk", FontSize: 9, LabelColor: flowEdgeColor},
		&chartkit.Edge{Name: "t3-t1", X0: 76, Y0: 69.5, X1: 24, Y1: 69.5, Color: flowEdgeColor, Width: 2,
			Label: "New Policy Created", FontSize: 9, LabelColor: flowEdgeColor},
	)

	metricX := []float64{14, 38, 62, 86}
	for i, metric := range models.FrameworkMetrics() {
		if i >= len(metricX) {
			break
		}
		prims = append(prims, &chartkit.Node{
			Name: fmt.Sprintf("metric-%d", i), X: metricX[i], Y: 12, HalfW: 11, HalfH: 5,
			Shape: chartkit.ShapeBox,
			Fill:  flowMetricFill, Stroke: flowMetricStroke, StrokeWidth: 2,
			Lines: []string{metric.Name, metric.Value, "Trend: " + metric.Trend},
			FontSize: 9, TextColor: flowTextColor,
		})
	}

	layout := chartkit.ComposeLayout(chartkit.LayoutConfig{
		Title:     "DDP Framework: Three-Tier Governance Model",
		TitleSize: 22,
		Width:     cg.width,
		Height:    cg.height,
		Padding:   chart.Box{Top: 60, Left: 30, Right: 30, Bottom: 30},
		XAxis:     chartkit.AxisConfig{Min: 0, Max: 100, Hidden: true},
		YAxis:     chartkit.AxisConfig{Min: 0, Max: 100, Hidden: true},
		Annotations: []chartkit.Annotation{
			{X: 50, Y: 21, Text: "Framework Performance Metrics", FontSize: 13, Color: flowMetricStroke},
		},
	})
	return chartkit.NewFigure(layout, prims...), nil
}

func tierLines(tier models.GovernanceTier) []string {
	lines := []string{
		tier.Title,
		tier.Subtitle,
		"Volume: " + tier.Volume,
		"Success Rate: " + tier.SuccessRate,
		"Avg Time: " + tier.AvgTime,
		"Stakeholders:",
	}
	return append(lines, tier.Stakeholders...)
}

// GovernanceMermaid emits the flow diagram as Mermaid source, so the same
// graph can be re-rendered by external tooling.
func GovernanceMermaid() string {
	tiers := models.GovernanceTiers()
	var b strings.Builder

	b.WriteString("flowchart TD\n")
	b.WriteString("    Start([New Request<br/>Entry Point]) --> Decision{Route Request}\n\n")

	routes := []string{"Standard Policy", "Exception<br/>Required", "Novel/High<br/>Risk Issue"}
	prev := "Decision"
	for i, tier := range tiers {
		b.WriteString(fmt.Sprintf("    %s --> |%s| %s[%s<br/>%s<br/>Volume: %s<br/>Success Rate: %s<br/>Avg Time: %s<br/>Stakeholders:<br/>%s]\n",
			prev, routes[i], tier.ID,
			tier.Title, tier.Subtitle, tier.Volume, tier.SuccessRate, tier.AvgTime,
			"• "+strings.Join(tier.Stakeholders, "<br/>• ")))
		prev = tier.ID
	}
	b.WriteString("\n")
	for i, tier := range tiers {
		b.WriteString(fmt.Sprintf("    %s --> Success%d([Request<br/>Complete])\n", tier.ID, i+1))
	}
	b.WriteString("\n    T3 --> |New Policy<br/>Created| T1\n\n")

	b.WriteString("    subgraph MetricsBox[\" Framework Performance Metrics \"]\n")
	b.WriteString("        direction TB\n")
	for i, metric := range models.FrameworkMetrics() {
		b.WriteString(fmt.Sprintf("        M%d[%s: %s<br/>Trend: %s]\n", i+1, metric.Name, metric.Value, metric.Trend))
	}
	b.WriteString("    end\n\n")

	for _, tier := range tiers {
		b.WriteString(fmt.Sprintf("    classDef %s fill:%s,stroke:%s,stroke-width:3px,color:#fff\n",
			strings.ToLower(tier.ID), tier.Fill, tier.Stroke))
	}
	b.WriteString("    classDef metric fill:#3B82F6,stroke:#1D4ED8,stroke-width:2px,color:#fff\n")
	b.WriteString("    classDef process fill:#6B7280,stroke:#374151,stroke-width:2px,color:#fff\n")
	b.WriteString("    classDef decision fill:#8B5CF6,stroke:#7C3AED,stroke-width:2px,color:#fff\n\n")

	for _, tier := range tiers {
		b.WriteString(fmt.Sprintf("    class %s %s\n", tier.ID, strings.ToLower(tier.ID)))
	}
	b.WriteString("    class M1,M2,M3,M4 metric\n")
	b.WriteString("    class Start,Success1,Success2,Success3 process\n")
	b.WriteString("    class Decision decision\n")

	return b.String()
}
