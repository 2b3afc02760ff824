package chartkit

// Category is one value of a closed categorical dimension (severity, status,
// regulatory coverage). Every category appearing in a record set must have an
// entry in the style table it is rendered with.
type Category string

// Record is one categorized, positioned data point to be rendered.
//
// Position is the ordering key along the shared horizontal axis (a year for
// timeline charts, a category index for bar charts). Border is the optional
// secondary categorical dimension encoded on the marker border; it is resolved
// against a separate style table. Value is only meaningful for records that
// represent a measured quantity (bars); qualitative events leave it zero.
type Record struct {
	Label      string
	Position   float64
	Category   Category
	Border     Category
	Value      float64
	Annotation string
}
