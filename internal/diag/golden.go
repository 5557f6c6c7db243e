package diag

import (
	"fmt"
	"strings"

	"qmlcheck/internal/source"
)

// FormatShort renders diagnostics one per line:
// <path>:<line>:<col>: <SEVERITY> <CODE>: <message>
// Order follows the bag; callers wanting deterministic multi-file output
// should Sort() first. Used for golden assertions and CLI short output.
func FormatShort(diags []Diagnostic, fs *source.FileSet) string {
	if fs == nil || len(diags) == 0 {
		return ""
	}

	var sb strings.Builder
	for _, d := range diags {
		start, _ := fs.Resolve(d.Primary)
		file := fs.Get(d.Primary.File)
		fmt.Fprintf(&sb, "%s:%d:%d: %s %s: %s\n",
			file.Path, start.Line, start.Col,
			d.Severity.String(), d.Code.ID(), d.Message)
		for _, n := range d.Notes {
			nstart, _ := fs.Resolve(n.Span)
			fmt.Fprintf(&sb, "  note: %s:%d:%d: %s\n",
				fs.Get(n.Span.File).Path, nstart.Line, nstart.Col, n.Msg)
		}
	}
	return sb.String()
}
