package diagfmt

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"qmlcheck/internal/diag"
	"qmlcheck/internal/source"
)

var (
	errColor   = color.New(color.FgRed, color.Bold)
	warnColor  = color.New(color.FgYellow, color.Bold)
	infoColor  = color.New(color.FgCyan, color.Bold)
	codeColor  = color.New(color.FgMagenta)
	caretColor = color.New(color.FgGreen, color.Bold)
	gutterFmt  = color.New(color.Faint)
)

// Pretty renders diagnostics for humans, one block per diagnostic:
//
//	<path>:<line>:<col>: <SEV> <CODE>: <message>
//	    12 | width: true
//	       |        ^~~~
//
// Items come out in bag order; callers wanting deterministic multi-file
// output should Sort() the bag first.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		prettyOne(w, d, fs, opts)
	}
}

func prettyOne(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) {
	file := fs.Get(d.Primary.File)
	start, end := fs.Resolve(d.Primary)

	sev := d.Severity.String()
	code := d.Code.ID()
	if opts.Color {
		sev = severityColor(d.Severity).Sprint(sev)
		code = codeColor.Sprint(code)
	}

	fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n",
		displayPath(file, fs, opts.PathMode), start.Line, start.Col, sev, code, d.Message)

	writeSnippet(w, file, start, end, opts)

	if opts.ShowNotes {
		for _, n := range d.Notes {
			nfile := fs.Get(n.Span.File)
			nstart, _ := fs.Resolve(n.Span)
			fmt.Fprintf(w, "  note: %s:%d:%d: %s\n",
				displayPath(nfile, fs, opts.PathMode), nstart.Line, nstart.Col, n.Msg)
		}
	}
}

// writeSnippet prints the offending line with a caret underline, plus
// up to opts.Context surrounding lines.
func writeSnippet(w io.Writer, file *source.File, start, end source.LineCol, opts PrettyOpts) {
	lineText := file.GetLine(start.Line)
	if lineText == "" && start.Line == 0 {
		return
	}

	first := start.Line
	if ctx := uint32(max(int(opts.Context), 0)); ctx < first {
		first -= ctx
	} else {
		first = 1
	}
	for ln := first; ln < start.Line; ln++ {
		writeGutterLine(w, ln, clip(file.GetLine(ln), opts.Width), opts.Color)
	}

	writeGutterLine(w, start.Line, clip(lineText, opts.Width), opts.Color)

	// Underline the span on its first line only; multi-line spans get a
	// caret to the end of the line.
	col := int(start.Col) - 1
	if col < 0 || col > len(lineText) {
		col = 0
	}
	underlined := lineText[col:]
	if end.Line == start.Line {
		if n := int(end.Col) - 1 - col; n >= 0 && n <= len(underlined) {
			underlined = underlined[:n]
		}
	}
	carets := runewidth.StringWidth(underlined)
	if carets < 1 {
		carets = 1
	}
	marker := "^" + strings.Repeat("~", carets-1)
	if opts.Color {
		marker = caretColor.Sprint(marker)
	}
	pad := strings.Repeat(" ", runewidth.StringWidth(lineText[:col]))
	writeGutterCont(w, pad+marker, opts.Color)

	for ln := start.Line + 1; ln <= start.Line+uint32(max(int(opts.Context), 0)); ln++ {
		text := file.GetLine(ln)
		if text == "" {
			break
		}
		writeGutterLine(w, ln, clip(text, opts.Width), opts.Color)
	}
}

func writeGutterLine(w io.Writer, line uint32, text string, colored bool) {
	gutter := fmt.Sprintf("%5d | ", line)
	if colored {
		gutter = gutterFmt.Sprint(gutter)
	}
	fmt.Fprintf(w, "%s%s\n", gutter, text)
}

func writeGutterCont(w io.Writer, text string, colored bool) {
	gutter := "      | "
	if colored {
		gutter = gutterFmt.Sprint(gutter)
	}
	fmt.Fprintf(w, "%s%s\n", gutter, text)
}

func severityColor(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return errColor
	case diag.SevWarning:
		return warnColor
	default:
		return infoColor
	}
}

func clip(text string, width uint16) string {
	if width == 0 || runewidth.StringWidth(text) <= int(width) {
		return text
	}
	return runewidth.Truncate(text, int(width), "...")
}

func displayPath(f *source.File, fs *source.FileSet, mode PathMode) string {
	switch mode {
	case PathModeBasename:
		return filepath.Base(f.Path)
	case PathModeRelative:
		if rel, err := filepath.Rel(fs.BaseDir(), f.Path); err == nil && !strings.HasPrefix(rel, "..") {
			return rel
		}
		return f.Path
	case PathModeAbsolute:
		if abs, err := filepath.Abs(f.Path); err == nil {
			return abs
		}
		return f.Path
	default:
		return f.Path
	}
}
