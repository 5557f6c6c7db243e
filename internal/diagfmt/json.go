package diagfmt

import (
	"encoding/json"
	"io"

	"qmlcheck/internal/diag"
	"qmlcheck/internal/source"
)

// LocationJSON is a span rendered for machine consumers.
type LocationJSON struct {
	File      string `json:"file"`
	StartByte uint32 `json:"start_byte"`
	EndByte   uint32 `json:"end_byte"`
	StartLine uint32 `json:"start_line,omitempty"`
	StartCol  uint32 `json:"start_col,omitempty"`
	EndLine   uint32 `json:"end_line,omitempty"`
	EndCol    uint32 `json:"end_col,omitempty"`
}

// NoteJSON is a secondary note attached to a diagnostic.
type NoteJSON struct {
	Message  string       `json:"message"`
	Location LocationJSON `json:"location"`
}

// DiagnosticJSON is one diagnostic record.
type DiagnosticJSON struct {
	Severity string       `json:"severity"`
	Code     string       `json:"code"`
	Message  string       `json:"message"`
	Location LocationJSON `json:"location"`
	Notes    []NoteJSON   `json:"notes,omitempty"`
}

// DiagnosticsOutput is the root of the JSON output.
type DiagnosticsOutput struct {
	Diagnostics []DiagnosticJSON `json:"diagnostics"`
	Count       int              `json:"count"`
}

func makeLocation(span source.Span, fs *source.FileSet, pathMode PathMode, includePositions bool) LocationJSON {
	f := fs.Get(span.File)
	loc := LocationJSON{
		File:      displayPath(f, fs, pathMode),
		StartByte: span.Start,
		EndByte:   span.End,
	}
	if includePositions {
		startPos, endPos := fs.Resolve(span)
		loc.StartLine = startPos.Line
		loc.StartCol = startPos.Col
		loc.EndLine = endPos.Line
		loc.EndCol = endPos.Col
	}
	return loc
}

// BuildDiagnosticsOutput assembles the JSON structure without encoding
// it, so callers can embed it into larger payloads.
func BuildDiagnosticsOutput(bag *diag.Bag, fs *source.FileSet, opts JSONOpts) DiagnosticsOutput {
	items := bag.Items()
	maxItems := len(items)
	if opts.Max > 0 && opts.Max < maxItems {
		maxItems = opts.Max
	}

	diagnostics := make([]DiagnosticJSON, 0, maxItems)
	for i := 0; i < maxItems; i++ {
		d := items[i]
		record := DiagnosticJSON{
			Severity: d.Severity.String(),
			Code:     d.Code.ID(),
			Message:  d.Message,
			Location: makeLocation(d.Primary, fs, opts.PathMode, opts.IncludePositions),
		}
		if opts.IncludeNotes && len(d.Notes) > 0 {
			record.Notes = make([]NoteJSON, len(d.Notes))
			for j, note := range d.Notes {
				record.Notes[j] = NoteJSON{
					Message:  note.Msg,
					Location: makeLocation(note.Span, fs, opts.PathMode, opts.IncludePositions),
				}
			}
		}
		diagnostics = append(diagnostics, record)
	}

	return DiagnosticsOutput{Diagnostics: diagnostics, Count: len(diagnostics)}
}

// JSON encodes diagnostics as indented JSON.
func JSON(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts JSONOpts) error {
	output := BuildDiagnosticsOutput(bag, fs, opts)
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
