// Package diag defines the diagnostic model shared by all analysis phases.
//
// Diagnostic is the central record: a Severity, a stable numeric Code, a
// human-oriented Message and a primary source.Span. Phases emit through a
// diag.Reporter so that storage and formatting stay decoupled; BagReporter
// aggregates into a Bag, which supports capping, merging, sorting and
// warning filtering.
//
// Package diag performs no formatting or IO. Rendering lives in
// internal/diagfmt; orchestration in internal/driver.
//
// The semantic checker appends diagnostics in traversal discovery order
// and never sorts its own output; Bag.Sort exists for multi-file runs
// where deterministic cross-file ordering matters.
package diag
