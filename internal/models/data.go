package models

import "fmt"

// Severity levels for privacy threats.
const (
	SeverityLow      = "low"
	SeverityMedium   = "medium"
	SeverityHigh     = "high"
	SeverityCritical = "critical"
)

// Regulatory coverage levels.
const (
	CoverageNone          = "none"
	CoverageLimited       = "limited"
	CoveragePartial       = "partial"
	CoverageComprehensive = "comprehensive"
)

// Compliance bands derived from coverage percentages.
const (
	BandExcellent = "excellent"
	BandGood      = "good"
	BandWarning   = "warning"
	BandCritical  = "critical"
)

// ThreatEntry is one privacy threat on the evolution timeline.
type ThreatEntry struct {
	Name       string
	Year       int
	Severity   string
	Coverage   string
	Mitigation string
}

// Milestone is one DDP framework milestone below the timeline spine.
type Milestone struct {
	Year        int
	Title       string
	Description string
}

// ComplianceEntry is one regulation's compliance posture.
type ComplianceEntry struct {
	Regulation string
	Coverage   float64
	Violations int
}

// GovernanceTier is one tier of the three-tier governance model.
type GovernanceTier struct {
	ID           string
	Title        string
	Subtitle     string
	Volume       string
	SuccessRate  string
	AvgTime      string
	Stakeholders []string
	Fill         string
	Stroke       string
}

// FrameworkMetric is one framework KPI with its target and trend.
type FrameworkMetric struct {
	Name   string
	Value  string
	Target string
	Trend  string
}

// ThreatTimeline returns the privacy threat evolution dataset, ordered by
// year. The order is render order.
func ThreatTimeline() []ThreatEntry {
	return []ThreatEntry{
		{Name: "Browser Fingerprinting", Year: 2020, Severity: SeverityMedium, Coverage: CoverageLimited, Mitigation: "Automated detection & blocking"},
		{Name: "IoT Data Collection", Year: 2022, Severity: SeverityHigh, Coverage: CoveragePartial, Mitigation: "Pervasive encryption enforcement"},
		{Name: "Inference Attacks on FL", Year: 2024, Severity: SeverityHigh, Coverage: CoverageNone, Mitigation: "Proactive threat modeling"},
		{Name: "Basic Brain-Computer Interfaces", Year: 2026, Severity: SeverityCritical, Coverage: CoverageNone, Mitigation: "Ethical framework development"},
		{Name: "Advanced AI Inference", Year: 2028, Severity: SeverityHigh, Coverage: CoverageLimited, Mitigation: "Dynamic policy adaptation"},
		{Name: "Quantum Computing Threat", Year: 2030, Severity: SeverityCritical, Coverage: CoverageNone, Mitigation: "Crypto-agility implementation"},
		{Name: "Pervasive Neural Monitoring", Year: 2032, Severity: SeverityCritical, Coverage: CoverageNone, Mitigation: "Neural data protection protocols"},
		{Name: "Quantum-Scale Data Breach", Year: 2035, Severity: SeverityCritical, Coverage: CoverageLimited, Mitigation: "Post-quantum governance model"},
	}
}

// SeverityPalette maps severity levels to their hex colors.
func SeverityPalette() map[string]string {
	return map[string]string{
		SeverityLow:      "#10B981",
		SeverityMedium:   "#F59E0B",
		SeverityHigh:     "#EF4444",
		SeverityCritical: "#7C2D12",
	}
}

// CoveragePalette maps regulatory coverage levels to their hex colors.
func CoveragePalette() map[string]string {
	return map[string]string{
		CoverageNone:          "#9CA3AF",
		CoverageLimited:       "#FCD34D",
		CoveragePartial:       "#FBBF24",
		CoverageComprehensive: "#10B981",
	}
}

// CoverageBorderWidths maps coverage levels to marker border widths.
func CoverageBorderWidths() map[string]float64 {
	return map[string]float64{
		CoverageNone:          1,
		CoverageLimited:       2,
		CoveragePartial:       3,
		CoverageComprehensive: 4,
	}
}

// ThreatAbbreviations is the curated abbreviation table for long threat
// names. Hard truncation of these terms would produce misleading labels.
func ThreatAbbreviations() map[string]string {
	return map[string]string{
		"Browser Fingerprinting":          "Browser Fingerp",
		"IoT Data Collection":             "IoT Data Collect",
		"Inference Attacks on FL":         "FL Inference Att",
		"Basic Brain-Computer Interfaces": "Basic BCIs",
		"Advanced AI Inference":           "AI Inference",
		"Quantum Computing Threat":        "Quantum Threat",
		"Pervasive Neural Monitoring":     "Neural Monitor",
		"Quantum-Scale Data Breach":       "Quantum Breach",
	}
}

// Milestones returns the DDP framework milestones shown below the timeline.
func Milestones() []Milestone {
	return []Milestone{
		{Year: 2025, Title: "DDP Framework Launch", Description: "IEEE ISOPE presentation"},
		{Year: 2027, Title: "Quantum Preparation", Description: "Crypto-agility protocols"},
		{Year: 2030, Title: "Neural Data Standards", Description: "BCI governance framework"},
		{Year: 2033, Title: "Post-Quantum Privacy", Description: "Full quantum-resistant model"},
	}
}

// TimelineYearMarkers returns the years that get a tick marker on the
// timeline spine.
func TimelineYearMarkers() []int {
	return []int{2020, 2022, 2024, 2026, 2028, 2030, 2032, 2035}
}

// ComplianceEntries returns the compliance coverage dataset.
func ComplianceEntries() []ComplianceEntry {
	return []ComplianceEntry{
		{Regulation: "GDPR", Coverage: 94, Violations: 3},
		{Regulation: "CCPA", Coverage: 91, Violations: 1},
		{Regulation: "CPRA", Coverage: 89, Violations: 2},
	}
}

// ComplianceBand classifies a coverage percentage into its display band.
func ComplianceBand(coverage float64) string {
	switch {
	case coverage >= 95:
		return BandExcellent
	case coverage >= 90:
		return BandGood
	case coverage >= 85:
		return BandWarning
	default:
		return BandCritical
	}
}

// ComplianceBandPalette maps compliance bands to their hex colors.
func ComplianceBandPalette() map[string]string {
	return map[string]string{
		BandExcellent: "#2E8B57",
		BandGood:      "#1FB8CD",
		BandWarning:   "#D2BA4C",
		BandCritical:  "#DB4545",
	}
}

// GovernanceTiers returns the three tiers of the governance model, ordered
// from routine automation to ethical deliberation.
func GovernanceTiers() []GovernanceTier {
	return []GovernanceTier{
		{
			ID:           "T1",
			Title:        "Tier 1: Automated Compliance",
			Subtitle:     "Routine Policy Enforcement",
			Volume:       "847 requests today",
			SuccessRate:  "88%",
			AvgTime:      "< 1 minute",
			Stakeholders: []string{"CI/CD System", "Policy Engine", "Code Repository"},
			Fill:         "#10B981",
			Stroke:       "#059669",
		},
		{
			ID:           "T2",
			Title:        "Tier 2: Managed Exceptions",
			Subtitle:     "Justified Deviations with Review",
			Volume:       "12 pending",
			SuccessRate:  "75% approved",
			AvgTime:      "6 hours",
			Stakeholders: []string{"Legal Team", "Security Team", "Product Team"},
			Fill:         "#F59E0B",
			Stroke:       "#D97706",
		},
		{
			ID:           "T3",
			Title:        "Tier 3: Ethical Deliberation",
			Subtitle:     "Novel Issues Requiring Judgment",
			Volume:       "2 active cases",
			SuccessRate:  "100% resolved",
			AvgTime:      "4.2 days",
			Stakeholders: []string{"Ethics Board", "External Experts", "Academics"},
			Fill:         "#EF4444",
			Stroke:       "#DC2626",
		},
	}
}

// FrameworkMetrics returns the framework performance KPIs.
func FrameworkMetrics() []FrameworkMetric {
	return []FrameworkMetric{
		{Name: "MTTR", Value: "8 minutes", Target: "< 10 minutes", Trend: "12% improvement"},
		{Name: "Policy Violation Rate", Value: "12%", Target: "< 15%", Trend: "2% increase"},
		{Name: "Exception Request Rate", Value: "0.3%", Target: "< 1%", Trend: "stable"},
		{Name: "Ethical Review Cycle", Value: "4.2 days", Target: "< 5 days", Trend: "8% improvement"},
	}
}

// DashboardFootnotes returns the metric summary lines pinned under the
// compliance chart.
func DashboardFootnotes() []string {
	return []string{
		"Key Metrics: MTTR 8min (Target <10) | Policy Violations 12% (Target <15) | Exception Rate 0.3% (Target <1)",
		"Daily Processing: 156 Builds | 134 Security Scans | 298 Policy Checks | 8 Blocked Deployments",
	}
}

// ValidateThreatTimeline checks that every threat references a severity and
// coverage level present in the palettes. A miss is a configuration error in
// the embedded data.
func ValidateThreatTimeline() error {
	severities := SeverityPalette()
	coverages := CoveragePalette()
	for _, threat := range ThreatTimeline() {
		if _, ok := severities[threat.Severity]; !ok {
			return fmt.Errorf("threat %q has unmapped severity %q", threat.Name, threat.Severity)
		}
		if _, ok := coverages[threat.Coverage]; !ok {
			return fmt.Errorf("threat %q has unmapped coverage %q", threat.Name, threat.Coverage)
		}
	}
	return nil
}
