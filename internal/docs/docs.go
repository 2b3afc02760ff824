package docs

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/sev7enITA/DDPFramework/internal/models"
)

// Document is one generated markdown file.
type Document struct {
	Name    string
	Content []byte
}

// Generator renders the framework documentation set from the embedded
// datasets. The same literals that drive the charts drive the doc tables, so
// the two can never disagree.
type Generator struct {
	templates *template.Template
}

// NewGenerator parses the documentation templates.
func NewGenerator() (*Generator, error) {
	tmpl, err := template.New("docs").Funcs(template.FuncMap{
		"join": strings.Join,
	}).Parse(docTemplates)
	if err != nil {
		return nil, fmt.Errorf("failed to parse doc templates: %w", err)
	}
	return &Generator{templates: tmpl}, nil
}

// templateData is the shared context for every document template.
type templateData struct {
	Threats    []models.ThreatEntry
	Milestones []models.Milestone
	Compliance []models.ComplianceEntry
	Tiers      []models.GovernanceTier
	Metrics    []models.FrameworkMetric
}

func newTemplateData() templateData {
	return templateData{
		Threats:    models.ThreatTimeline(),
		Milestones: models.Milestones(),
		Compliance: models.ComplianceEntries(),
		Tiers:      models.GovernanceTiers(),
		Metrics:    models.FrameworkMetrics(),
	}
}

// Generate renders every document. Dataset validation runs first so a bad
// literal fails the run before any file is produced.
func (g *Generator) Generate() ([]Document, error) {
	if err := models.ValidateThreatTimeline(); err != nil {
		return nil, err
	}

	names := []string{"README.md", "IMPLEMENTATION.md", "ARCHITECTURE.md", "THREAT_MODEL.md"}
	data := newTemplateData()

	docs := make([]Document, 0, len(names))
	for _, name := range names {
		var buf bytes.Buffer
		if err := g.templates.ExecuteTemplate(&buf, name, data); err != nil {
			return nil, fmt.Errorf("failed to render %s: %w", name, err)
		}
		docs = append(docs, Document{Name: name, Content: buf.Bytes()})
	}
	return docs, nil
}
