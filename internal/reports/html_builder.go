package reports

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/sev7enITA/DDPFramework/internal/charts"
	"github.com/sev7enITA/DDPFramework/internal/config"
	"github.com/sev7enITA/DDPFramework/internal/models"
)

// HTMLBuilder handles HTML generation with goldmark
type HTMLBuilder struct {
	goldmark goldmark.Markdown
}

// NewHTMLBuilder creates an HTML builder
func NewHTMLBuilder() *HTMLBuilder {
	// Configure goldmark with extensions
	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithHardWraps(),
			html.WithUnsafe(), // Allow raw HTML in markdown
		),
	)

	return &HTMLBuilder{
		goldmark: md,
	}
}

// TemplateData represents the data structure for the index page template
type TemplateData struct {
	Date        string
	GeneratedAt string
	Version     string
	Content     template.HTML
	Metrics     []models.FrameworkMetric

	// Interactive chart snippets
	TimelineChart   template.HTML
	ComplianceChart template.HTML
}

// ConvertMarkdownToHTML converts markdown to HTML using goldmark
func (h *HTMLBuilder) ConvertMarkdownToHTML(markdownContent string) (string, error) {
	var buf bytes.Buffer
	if err := h.goldmark.Convert([]byte(markdownContent), &buf); err != nil {
		return "", fmt.Errorf("failed to convert markdown: %w", err)
	}
	return buf.String(), nil
}

// BuildIndexHTML creates the complete report index page: the README content
// converted from markdown, the framework metric cards, the static chart
// images and the interactive snippet variants.
func (h *HTMLBuilder) BuildIndexHTML(readmeMarkdown string, snippets []charts.ChartSnippet, timestamp time.Time) (string, error) {
	htmlContent, err := h.ConvertMarkdownToHTML(readmeMarkdown)
	if err != nil {
		return "", err
	}

	data := TemplateData{
		Date:        timestamp.Format("2006-01-02"),
		GeneratedAt: timestamp.Format("2006-01-02 15:04:05 UTC"),
		Version:     config.GetVersion(),
		Content:     template.HTML(htmlContent),
		Metrics:     models.FrameworkMetrics(),
	}
	for _, snippet := range snippets {
		switch snippet.ID {
		case "chart-threat-timeline":
			data.TimelineChart = template.HTML(snippet.HTML)
		case "chart-compliance-coverage":
			data.ComplianceChart = template.HTML(snippet.HTML)
		}
	}

	tmpl, err := template.New("index").Parse(indexTemplate)
	if err != nil {
		return "", fmt.Errorf("failed to parse index template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute index template: %w", err)
	}
	return buf.String(), nil
}
