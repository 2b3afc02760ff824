package charts

import (
	"fmt"
	"path/filepath"

	"github.com/sev7enITA/DDPFramework/internal/chartkit"
)

// ChartGenerator handles creation of static chart images. Figure construction
// and saving are separate steps so figures can be tested without touching the
// filesystem.
type ChartGenerator struct {
	outputDir string
	width     int
	height    int
	exporter  *chartkit.Exporter
}

// NewChartGenerator creates a new chart generator writing into outputDir.
// Width and height apply to the governance flow diagram; the other charts
// carry their own fixed dimensions.
func NewChartGenerator(outputDir string, width, height int) *ChartGenerator {
	if width <= 0 {
		width = 1600
	}
	if height <= 0 {
		height = 1200
	}
	return &ChartGenerator{
		outputDir: outputDir,
		width:     width,
		height:    height,
		exporter:  chartkit.NewExporter(),
	}
}

// GenerateCharts builds and exports every chart. Each chart produces a raster
// and a vector artifact from the same figure; the flow diagram additionally
// emits its Mermaid source. Any failure aborts the whole run, so a partial
// chart set is never produced.
func (cg *ChartGenerator) GenerateCharts() ([]string, error) {
	var files []string

	type chartDef struct {
		name  string
		build func() (*chartkit.Figure, error)
	}
	defs := []chartDef{
		{name: "threat_timeline", build: cg.TimelineFigure},
		{name: "compliance_dashboard", build: cg.ComplianceFigure},
		{name: "governance_flow", build: cg.GovernanceFigure},
	}

	for _, def := range defs {
		fig, err := def.build()
		if err != nil {
			return nil, fmt.Errorf("failed to assemble %s chart: %w", def.name, err)
		}
		raster, vector, err := cg.exporter.Export(fig, chartkit.ExportPaths{
			Raster: filepath.Join(cg.outputDir, def.name+".png"),
			Vector: filepath.Join(cg.outputDir, def.name+".svg"),
		})
		if err != nil {
			return nil, err
		}
		files = append(files, raster, vector)
	}

	mermaidPath := filepath.Join(cg.outputDir, "governance_flow.mmd")
	if err := chartkit.WriteFileAtomic(mermaidPath, []byte(GovernanceMermaid())); err != nil {
		return nil, fmt.Errorf("failed to write governance flow source: %w", err)
	}
	files = append(files, mermaidPath)

	return files, nil
}
