package chartkit

import "fmt"

// UnknownCategoryError indicates that a record referenced a category that has
// no entry in the style table it was resolved against. This is a configuration
// error: the table is wrong, not the data, and chart assembly must abort.
type UnknownCategoryError struct {
	Resolver string
	Category Category
}

func (e *UnknownCategoryError) Error() string {
	return fmt.Sprintf("style resolver %q has no entry for category %q", e.Resolver, e.Category)
}

// ExportTarget identifies which output format an export failure belongs to.
type ExportTarget string

const (
	TargetRaster ExportTarget = "raster"
	TargetVector ExportTarget = "vector"
)

// ExportError reports a failed export of a single target format.
type ExportError struct {
	Target ExportTarget
	Path   string
	Err    error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("failed to export %s artifact to %s: %v", e.Target, e.Path, e.Err)
}

func (e *ExportError) Unwrap() error {
	return e.Err
}
