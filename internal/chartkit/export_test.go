package chartkit

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/wcharczuk/go-chart/v2"
)

func assembleTestFigure(t *testing.T) *Figure {
	t.Helper()
	fig, err := testAssembler().Assemble(testRecords())
	if err != nil {
		t.Fatalf("Assemble failed: %v", err)
	}
	return fig
}

func TestExportWritesBothFormats(t *testing.T) {
	dir := t.TempDir()
	paths := ExportPaths{
		Raster: filepath.Join(dir, "timeline.png"),
		Vector: filepath.Join(dir, "timeline.svg"),
	}

	raster, vector, err := NewExporter().Export(assembleTestFigure(t), paths)
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	if raster != paths.Raster || vector != paths.Vector {
		t.Errorf("returned paths (%q, %q) do not match requested (%q, %q)", raster, vector, paths.Raster, paths.Vector)
	}

	for _, p := range []string{paths.Raster, paths.Vector} {
		info, err := os.Stat(p)
		if err != nil {
			t.Fatalf("artifact %s not written: %v", p, err)
		}
		if info.Size() == 0 {
			t.Errorf("artifact %s is empty", p)
		}
	}

	svg, err := os.ReadFile(paths.Vector)
	if err != nil {
		t.Fatalf("failed to read vector artifact: %v", err)
	}
	if !strings.Contains(string(svg), "<svg") {
		t.Error("vector artifact does not look like SVG")
	}
}

func TestExportDeterministic(t *testing.T) {
	dirA, dirB := t.TempDir(), t.TempDir()
	exporter := NewExporter()

	fig := assembleTestFigure(t)
	if _, _, err := exporter.Export(fig, ExportPaths{Raster: filepath.Join(dirA, "c.png"), Vector: filepath.Join(dirA, "c.svg")}); err != nil {
		t.Fatalf("first export failed: %v", err)
	}
	if _, _, err := exporter.Export(fig, ExportPaths{Raster: filepath.Join(dirB, "c.png"), Vector: filepath.Join(dirB, "c.svg")}); err != nil {
		t.Fatalf("second export failed: %v", err)
	}

	for _, name := range []string{"c.png", "c.svg"} {
		a, err := os.ReadFile(filepath.Join(dirA, name))
		if err != nil {
			t.Fatalf("read %s: %v", name, err)
		}
		b, err := os.ReadFile(filepath.Join(dirB, name))
		if err != nil {
			t.Fatalf("read %s: %v", name, err)
		}
		if !bytes.Equal(a, b) {
			t.Errorf("%s differs between two exports of the same figure", name)
		}
	}
}

func TestExportUnwritablePath(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("running as root: directory permissions are not enforced, cannot create an unwritable path")
	}
	dir := t.TempDir()
	blocked := filepath.Join(dir, "blocked")
	if err := os.MkdirAll(blocked, 0o555); err != nil {
		t.Fatalf("failed to set up read-only dir: %v", err)
	}
	t.Cleanup(func() { os.Chmod(blocked, 0o755) })

	paths := ExportPaths{
		Raster: filepath.Join(blocked, "chart.png"),
		Vector: filepath.Join(dir, "chart.svg"),
	}
	raster, vector, err := NewExporter().Export(assembleTestFigure(t), paths)
	if err == nil {
		t.Fatal("expected error for unwritable raster path, got nil")
	}

	var exportErr *ExportError
	if !errors.As(err, &exportErr) {
		t.Fatalf("expected *ExportError, got %T: %v", err, err)
	}
	if exportErr.Target != TargetRaster {
		t.Errorf("error names target %q, want %q", exportErr.Target, TargetRaster)
	}

	// partial success is reported, not swallowed: the vector leg still wrote
	if raster != "" {
		t.Errorf("raster path reported as written despite failure: %q", raster)
	}
	if vector != paths.Vector {
		t.Errorf("vector path = %q, want %q", vector, paths.Vector)
	}

	// no zero-byte or corrupt file may appear at the failed path
	if _, statErr := os.Stat(paths.Raster); !os.IsNotExist(statErr) {
		t.Errorf("failed export left a file at %s", paths.Raster)
	}
}

func TestExportEndToEndScenario(t *testing.T) {
	// three records, severity table, both artifacts non-empty; swapping in an
	// unmapped category must fail loudly before anything is written
	dir := t.TempDir()
	asm := testAssembler()

	fig, err := asm.Assemble(testRecords())
	if err != nil {
		t.Fatalf("Assemble failed: %v", err)
	}
	paths := ExportPaths{Raster: filepath.Join(dir, "e2e.png"), Vector: filepath.Join(dir, "e2e.svg")}
	if _, _, err := NewExporter().Export(fig, paths); err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	bad := testRecords()
	bad[2].Category = "unknown"
	if _, err := asm.Assemble(bad); err == nil {
		t.Fatal("assembly with an unmapped category must fail")
	}
}

func TestFigureRenderSVG(t *testing.T) {
	var buf bytes.Buffer
	if err := assembleTestFigure(t).Render(chart.SVG, &buf); err != nil {
		t.Fatalf("SVG render failed: %v", err)
	}
	if buf.Len() == 0 {
		t.Error("SVG render produced no output")
	}
}
