package reports

import (
	"bytes"
	"fmt"
	"html/template"
	"strconv"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"github.com/sev7enITA/DDPFramework/internal/models"
)

// DashboardBuilder renders the standalone interactive dashboard page
type DashboardBuilder struct{}

// NewDashboardBuilder creates a dashboard builder
func NewDashboardBuilder() *DashboardBuilder {
	return &DashboardBuilder{}
}

// dashboardData is the context for the dashboard page template
type dashboardData struct {
	Date            string
	ComplianceChart template.HTML
	SeverityChart   template.HTML
}

// BuildDashboardHTML creates the dashboard page with live chart fragments
func (d *DashboardBuilder) BuildDashboardHTML(timestamp time.Time) (string, error) {
	complianceChart, err := d.buildComplianceChart()
	if err != nil {
		return "", fmt.Errorf("failed to build compliance chart: %w", err)
	}

	severityChart, err := d.buildSeverityChart()
	if err != nil {
		return "", fmt.Errorf("failed to build severity chart: %w", err)
	}

	tmpl, err := template.New("dashboard").Parse(dashboardTemplate)
	if err != nil {
		return "", fmt.Errorf("failed to parse dashboard template: %w", err)
	}

	var buf bytes.Buffer
	err = tmpl.Execute(&buf, dashboardData{
		Date:            timestamp.Format("2006-01-02"),
		ComplianceChart: template.HTML(complianceChart),
		SeverityChart:   template.HTML(severityChart),
	})
	if err != nil {
		return "", fmt.Errorf("failed to execute dashboard template: %w", err)
	}
	return buf.String(), nil
}

// buildComplianceChart creates a compliance coverage bar chart
func (d *DashboardBuilder) buildComplianceChart() (string, error) {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Theme:  types.ThemeWesteros,
			Width:  "900px",
			Height: "400px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Privacy Compliance Coverage",
			Subtitle: "Coverage percentage per regulation",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: "Regulation",
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: "Coverage %",
			Min:  80,
			Max:  100,
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show: true,
		}),
	)

	entries := models.ComplianceEntries()
	xAxis := make([]string, 0, len(entries))
	coverageData := make([]opts.BarData, 0, len(entries))
	for _, entry := range entries {
		xAxis = append(xAxis, entry.Regulation)
		coverageData = append(coverageData, opts.BarData{
			Value: entry.Coverage,
			Name:  fmt.Sprintf("%s (%d violations)", entry.Regulation, entry.Violations),
		})
	}

	bar.SetXAxis(xAxis).
		AddSeries("Coverage", coverageData)

	var buf bytes.Buffer
	if err := bar.Render(&buf); err != nil {
		return "", err
	}

	return buf.String(), nil
}

// buildSeverityChart creates a threat severity scatter over time
func (d *DashboardBuilder) buildSeverityChart() (string, error) {
	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Theme:  types.ThemeWesteros,
			Width:  "900px",
			Height: "400px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Threat Severity Over Time",
			Subtitle: "1=low, 2=medium, 3=high, 4=critical",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: "Year",
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: "Severity",
			Min:  0,
			Max:  5,
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show: true,
		}),
		charts.WithLegendOpts(opts.Legend{
			Show: true,
		}),
	)

	threats := models.ThreatTimeline()
	xAxis := make([]string, 0, len(threats))
	severityData := make([]opts.ScatterData, 0, len(threats))
	for _, threat := range threats {
		xAxis = append(xAxis, strconv.Itoa(threat.Year))
		severityData = append(severityData, opts.ScatterData{
			Name:       threat.Name,
			Value:      severityRank(threat.Severity),
			SymbolSize: 18,
		})
	}

	scatter.SetXAxis(xAxis).
		AddSeries("Severity", severityData)

	var buf bytes.Buffer
	if err := scatter.Render(&buf); err != nil {
		return "", err
	}

	return buf.String(), nil
}

// severityRank maps severity levels to their ordinal position
func severityRank(severity string) int {
	switch severity {
	case models.SeverityLow:
		return 1
	case models.SeverityMedium:
		return 2
	case models.SeverityHigh:
		return 3
	case models.SeverityCritical:
		return 4
	default:
		return 0
	}
}
