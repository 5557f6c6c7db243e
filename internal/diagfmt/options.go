package diagfmt

// PathMode specifies how file paths are displayed.
type PathMode uint8

const (
	// PathModeAuto keeps the path exactly as it was loaded.
	PathModeAuto PathMode = iota
	// PathModeAbsolute always uses absolute paths.
	PathModeAbsolute
	PathModeRelative
	PathModeBasename
)

// PrettyOpts configures pretty-printing of diagnostics.
type PrettyOpts struct {
	Color     bool
	Context   int8 // extra source lines around the primary line
	PathMode  PathMode
	Width     uint16 // maximum rendered line width, 0 for unlimited
	ShowNotes bool
}

// JSONOpts configures JSON output of diagnostics.
type JSONOpts struct {
	IncludePositions bool // add line/col to every location
	PathMode         PathMode
	Max              int // output truncation; the bag itself is untouched
	IncludeNotes     bool
}
