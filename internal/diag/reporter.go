package diag

import "qmlcheck/internal/source"

// Reporter is the minimal contract for receiving diagnostics from phases.
// Implementations: BagReporter (stores into a Bag), NopReporter.
type Reporter interface {
	Report(code Code, sev Severity, primary source.Span, msg string)
}

// BagReporter adapts a *Bag to the Reporter interface.
type BagReporter struct{ Bag *Bag }

func (r BagReporter) Report(code Code, sev Severity, primary source.Span, msg string) {
	if r.Bag == nil {
		return
	}
	r.Bag.Add(Diagnostic{
		Severity: sev, Code: code, Message: msg, Primary: primary,
	})
}

// NopReporter swallows everything.
type NopReporter struct{}

func (NopReporter) Report(Code, Severity, source.Span, string) {}
