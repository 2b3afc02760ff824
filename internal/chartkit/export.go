package chartkit

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/wcharczuk/go-chart/v2"
)

// ExportPaths names the two output artifacts of one chart.
type ExportPaths struct {
	Raster string
	Vector string
}

// Exporter serializes an assembled figure to both raster (PNG) and vector
// (SVG) files. Both formats render from the same in-memory figure. Each file
// is written to a temporary path in the target directory and renamed into
// place, so a failed export never leaves a partial file at the final path.
type Exporter struct{}

// NewExporter creates an exporter.
func NewExporter() *Exporter {
	return &Exporter{}
}

// Export writes both artifacts and returns the paths actually written.
// Failures are reported per target as *ExportError; a partial success (one
// format written, one failed) still returns a non-nil error naming the
// failed target.
func (e *Exporter) Export(fig *Figure, paths ExportPaths) (string, string, error) {
	var raster, vector bytes.Buffer
	if err := fig.Render(chart.PNG, &raster); err != nil {
		return "", "", &ExportError{Target: TargetRaster, Path: paths.Raster, Err: fmt.Errorf("render: %w", err)}
	}
	if err := fig.Render(chart.SVG, &vector); err != nil {
		return "", "", &ExportError{Target: TargetVector, Path: paths.Vector, Err: fmt.Errorf("render: %w", err)}
	}

	var errs []error
	var rasterPath, vectorPath string
	if err := WriteFileAtomic(paths.Raster, raster.Bytes()); err != nil {
		errs = append(errs, &ExportError{Target: TargetRaster, Path: paths.Raster, Err: err})
	} else {
		rasterPath = paths.Raster
	}
	if err := WriteFileAtomic(paths.Vector, vector.Bytes()); err != nil {
		errs = append(errs, &ExportError{Target: TargetVector, Path: paths.Vector, Err: err})
	} else {
		vectorPath = paths.Vector
	}
	if len(errs) > 0 {
		return rasterPath, vectorPath, errors.Join(errs...)
	}
	return rasterPath, vectorPath, nil
}

// WriteFileAtomic stages data in a temp file next to the target and renames it
// into place. The temp file is removed on every failure path.
func WriteFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, ".export-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file in %s: %w", dir, err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to chmod temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to rename into place: %w", err)
	}
	return nil
}
