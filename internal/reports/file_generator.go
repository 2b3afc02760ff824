package reports

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sev7enITA/DDPFramework/internal/charts"
	"github.com/sev7enITA/DDPFramework/internal/docs"
	"github.com/sev7enITA/DDPFramework/internal/logger"
	"github.com/sev7enITA/DDPFramework/internal/storage"
)

// FileGenerator handles generation of all report files
type FileGenerator struct {
	chartWidth  int
	chartHeight int
}

// GeneratedFiles contains all files generated for a report
type GeneratedFiles struct {
	IndexHTML     []byte
	DashboardHTML []byte
	Documents     map[string][]byte // markdown docs by filename
	Previews      map[string][]byte // HTML previews of the docs
	ChartFiles    map[string][]byte // chart artifacts by filename
	FolderPath    string
	Timestamp     time.Time
}

// NewFileGenerator creates a new file generator
func NewFileGenerator(chartWidth, chartHeight int) *FileGenerator {
	return &FileGenerator{
		chartWidth:  chartWidth,
		chartHeight: chartHeight,
	}
}

// GenerateAllFiles creates all report files: charts, documentation, the
// index page and the dashboard. Everything is built in memory or in a
// temporary directory; nothing touches the report destination here.
func (fg *FileGenerator) GenerateAllFiles(ctx context.Context) (*GeneratedFiles, error) {
	timestamp := time.Now().UTC()

	files := &GeneratedFiles{
		Documents:  make(map[string][]byte),
		Previews:   make(map[string][]byte),
		ChartFiles: make(map[string][]byte),
		FolderPath: storage.GenerateReportFolderPath(timestamp),
		Timestamp:  timestamp,
	}

	// 1. Generate chart artifacts in a scratch directory
	if err := fg.generateChartFiles(files); err != nil {
		return nil, fmt.Errorf("failed to generate charts: %w", err)
	}

	// 2. Generate documentation set
	docGen, err := docs.NewGenerator()
	if err != nil {
		return nil, fmt.Errorf("failed to create doc generator: %w", err)
	}
	documents, err := docGen.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate docs: %w", err)
	}

	var readme string
	for _, doc := range documents {
		files.Documents[doc.Name] = doc.Content
		previewName := doc.Name[:len(doc.Name)-len(".md")] + ".html"
		files.Previews[previewName] = docs.RenderPreview(doc.Content)
		if doc.Name == "README.md" {
			readme = string(doc.Content)
		}
	}
	logger.Debug("Generated documentation set", map[string]interface{}{"documents": len(files.Documents)})

	// 3. Build the index page with interactive snippets
	chartGen := charts.NewChartGenerator("", fg.chartWidth, fg.chartHeight)
	snippets, err := chartGen.GenerateSnippets()
	if err != nil {
		return nil, fmt.Errorf("failed to generate chart snippets: %w", err)
	}

	htmlBuilder := NewHTMLBuilder()
	indexHTML, err := htmlBuilder.BuildIndexHTML(readme, snippets, timestamp)
	if err != nil {
		return nil, fmt.Errorf("failed to build index page: %w", err)
	}
	files.IndexHTML = []byte(indexHTML)

	// 4. Build the dashboard page
	dashboardHTML, err := NewDashboardBuilder().BuildDashboardHTML(timestamp)
	if err != nil {
		return nil, fmt.Errorf("failed to build dashboard page: %w", err)
	}
	files.DashboardHTML = []byte(dashboardHTML)

	logger.Info("Generated report files", map[string]interface{}{
		"folder": files.FolderPath,
		"charts": len(files.ChartFiles),
	})
	return files, nil
}

// generateChartFiles renders all charts into a scratch directory and reads
// the artifacts back into memory
func (fg *FileGenerator) generateChartFiles(files *GeneratedFiles) error {
	tempDir, err := os.MkdirTemp("", "ddp_charts_*")
	if err != nil {
		return fmt.Errorf("failed to create scratch directory: %w", err)
	}
	defer os.RemoveAll(tempDir)

	chartGen := charts.NewChartGenerator(tempDir, fg.chartWidth, fg.chartHeight)
	chartFiles, err := chartGen.GenerateCharts()
	if err != nil {
		return err
	}

	for _, path := range chartFiles {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read chart artifact %s: %w", path, err)
		}
		files.ChartFiles[filepath.Base(path)] = data
	}
	return nil
}
