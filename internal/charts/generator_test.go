package charts

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sev7enITA/DDPFramework/internal/chartkit"
	"github.com/sev7enITA/DDPFramework/internal/models"
)

func TestNewChartGenerator(t *testing.T) {
	generator := NewChartGenerator("/test/output", 1600, 1200)
	if generator == nil {
		t.Fatal("NewChartGenerator returned nil")
	}
	if generator.outputDir != "/test/output" {
		t.Errorf("Expected outputDir /test/output, got %s", generator.outputDir)
	}
}

func TestNewChartGeneratorDefaultDimensions(t *testing.T) {
	generator := NewChartGenerator("/test", 0, 0)
	if generator.width != 1600 || generator.height != 1200 {
		t.Errorf("expected default 1600x1200, got %dx%d", generator.width, generator.height)
	}
}

func TestTimelineFigure(t *testing.T) {
	fig, err := NewChartGenerator(t.TempDir(), 0, 0).TimelineFigure()
	if err != nil {
		t.Fatalf("TimelineFigure failed: %v", err)
	}

	prims := fig.Primitives()
	// spine + 8 threats + 8 year markers + 4 milestones
	if len(prims) != 21 {
		t.Errorf("expected 21 primitives, got %d", len(prims))
	}

	if _, ok := prims[0].(*chartkit.Segment); !ok {
		t.Errorf("timeline spine must draw first, got %T", prims[0])
	}

	// threat markers carry hover text with the full name
	marker, ok := prims[1].(*chartkit.Marker)
	if !ok {
		t.Fatalf("expected *chartkit.Marker after spine, got %T", prims[1])
	}
	if !strings.Contains(marker.Hover(), "Browser Fingerprinting") {
		t.Errorf("hover lacks full threat name: %q", marker.Hover())
	}
}

func TestTimelineAlternatesOffsets(t *testing.T) {
	fig, err := NewChartGenerator(t.TempDir(), 0, 0).TimelineFigure()
	if err != nil {
		t.Fatalf("TimelineFigure failed: %v", err)
	}

	var ys []float64
	for _, prim := range fig.Primitives() {
		if marker, ok := prim.(*chartkit.Marker); ok && marker.Hover() != "" && marker.Y > 1 {
			ys = append(ys, marker.Y)
		}
	}
	if len(ys) != len(models.ThreatTimeline()) {
		t.Fatalf("expected %d threat markers, got %d", len(models.ThreatTimeline()), len(ys))
	}
	for i, y := range ys {
		want := 1.5
		if i%2 == 1 {
			want = 1.8
		}
		if y != want {
			t.Errorf("threat %d placed at y=%v, want %v", i, y, want)
		}
	}
}

func TestComplianceFigure(t *testing.T) {
	fig, err := NewChartGenerator(t.TempDir(), 0, 0).ComplianceFigure()
	if err != nil {
		t.Fatalf("ComplianceFigure failed: %v", err)
	}

	prims := fig.Primitives()
	if len(prims) != 3 {
		t.Fatalf("expected 3 bars, got %d primitives", len(prims))
	}
	bar, ok := prims[0].(*chartkit.Bar)
	if !ok {
		t.Fatalf("expected *chartkit.Bar, got %T", prims[0])
	}
	if bar.Value != 94 {
		t.Errorf("GDPR bar value = %v, want 94", bar.Value)
	}
	if bar.Color != chartkit.HexColor("#1FB8CD") {
		t.Errorf("94%% coverage should color as the good band, got %+v", bar.Color)
	}
	if !strings.Contains(bar.Label, "3 violations") {
		t.Errorf("bar label lacks violation count: %q", bar.Label)
	}
}

func TestGovernanceFigure(t *testing.T) {
	fig, err := NewChartGenerator(t.TempDir(), 1600, 1200).GovernanceFigure()
	if err != nil {
		t.Fatalf("GovernanceFigure failed: %v", err)
	}

	var nodes, edges int
	for _, prim := range fig.Primitives() {
		switch prim.(type) {
		case *chartkit.Node:
			nodes++
		case *chartkit.Edge:
			edges++
		}
	}
	// start + decision + 3 tiers + 3 completions + 4 metrics
	if nodes != 12 {
		t.Errorf("expected 12 nodes, got %d", nodes)
	}
	// 3 tier->done + start->decision + decision->t1 + t1->t2 + t2->t3 + t3->t1
	if edges != 8 {
		t.Errorf("expected 8 edges, got %d", edges)
	}
}

func TestGovernanceMermaid(t *testing.T) {
	src := GovernanceMermaid()

	for _, want := range []string{
		"flowchart TD",
		"Tier 1: Automated Compliance",
		"Tier 2: Managed Exceptions",
		"Tier 3: Ethical Deliberation",
		"T3 --> |New Policy<br/>Created| T1",
		"classDef t1 fill:#10B981",
		"class Decision decision",
	} {
		if !strings.Contains(src, want) {
			t.Errorf("mermaid source missing %q", want)
		}
	}
}

func TestGenerateCharts(t *testing.T) {
	dir := t.TempDir()
	files, err := NewChartGenerator(dir, 800, 600).GenerateCharts()
	if err != nil {
		t.Fatalf("GenerateCharts failed: %v", err)
	}

	// 3 charts x 2 formats + mermaid source
	if len(files) != 7 {
		t.Fatalf("expected 7 artifacts, got %d: %v", len(files), files)
	}
	for _, f := range files {
		info, err := os.Stat(f)
		if err != nil {
			t.Errorf("artifact %s not written: %v", f, err)
			continue
		}
		if info.Size() == 0 {
			t.Errorf("artifact %s is empty", f)
		}
	}

	if _, err := os.Stat(filepath.Join(dir, "governance_flow.mmd")); err != nil {
		t.Errorf("mermaid source not written: %v", err)
	}
}

func TestGenerateSnippets(t *testing.T) {
	snippets, err := NewChartGenerator(t.TempDir(), 0, 0).GenerateSnippets()
	if err != nil {
		t.Fatalf("GenerateSnippets failed: %v", err)
	}
	if len(snippets) != 2 {
		t.Fatalf("expected 2 snippets, got %d", len(snippets))
	}
	for i, snippet := range snippets {
		if snippet.ID == "" {
			t.Errorf("Snippet %d has empty ID", i)
		}
		if snippet.Title == "" {
			t.Errorf("Snippet %d has empty Title", i)
		}
		if snippet.Div == "" {
			t.Errorf("Snippet %d has empty Div", i)
		}
		if snippet.Script == "" {
			t.Errorf("Snippet %d has empty Script", i)
		}
		if snippet.HTML == "" {
			t.Errorf("Snippet %d has empty HTML", i)
		}
	}
}

func TestTimelineSnippetCarriesHover(t *testing.T) {
	snippet, err := NewChartGenerator(t.TempDir(), 0, 0).TimelineSnippet()
	if err != nil {
		t.Fatalf("TimelineSnippet failed: %v", err)
	}
	if !strings.Contains(snippet.Script, "Pervasive Neural Monitoring") {
		t.Error("snippet tooltip lost the full threat name")
	}
	if !strings.Contains(snippet.Script, "DDP Response") {
		t.Error("snippet tooltip lost the mitigation field")
	}
}

func TestSnippetConsistency(t *testing.T) {
	generator := NewChartGenerator(t.TempDir(), 0, 0)

	first, err := generator.GenerateSnippets()
	if err != nil {
		t.Fatalf("first generation failed: %v", err)
	}
	second, err := generator.GenerateSnippets()
	if err != nil {
		t.Fatalf("second generation failed: %v", err)
	}
	if len(first) != len(second) {
		t.Fatalf("inconsistent snippet count: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].HTML != second[i].HTML {
			t.Errorf("snippet %d differs between identical runs", i)
		}
	}
}
