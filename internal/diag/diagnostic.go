package diag

import (
	"qmlcheck/internal/source"
)

// Note attaches secondary context to a diagnostic.
type Note struct {
	Span source.Span
	Msg  string
}

// Diagnostic is the central record produced by every analysis phase.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Span
	Notes    []Note
}

// New constructs a diagnostic without notes.
func New(sev Severity, code Code, primary source.Span, msg string) Diagnostic {
	return Diagnostic{
		Severity: sev,
		Code:     code,
		Primary:  primary,
		Message:  msg,
	}
}

// NewError is a shortcut for SevError diagnostics.
func NewError(code Code, primary source.Span, msg string) Diagnostic {
	return New(SevError, code, primary, msg)
}

// NewWarning is a shortcut for SevWarning diagnostics.
func NewWarning(code Code, primary source.Span, msg string) Diagnostic {
	return New(SevWarning, code, primary, msg)
}

// WithNote returns a copy of the diagnostic with an extra note.
func (d Diagnostic) WithNote(sp source.Span, msg string) Diagnostic {
	d.Notes = append(d.Notes, Note{Span: sp, Msg: msg})
	return d
}
