package diag

import (
	"sort"
)

// Bag accumulates diagnostics up to a fixed cap. Insertion order is
// preserved; the checker relies on that for traversal-ordered output.
type Bag struct {
	items []Diagnostic
	max   int
}

func NewBag(max int) *Bag {
	if max < 0 {
		max = 0
	}
	return &Bag{
		items: make([]Diagnostic, 0, max),
		max:   max,
	}
}

// Add appends a diagnostic, honoring the cap.
// Returns false when the diagnostic was dropped (cap reached).
func (b *Bag) Add(d Diagnostic) bool {
	if len(b.items) >= b.max {
		return false
	}
	b.items = append(b.items, d)
	return true
}

func (b *Bag) Cap() int {
	return b.max
}

// HasErrors reports whether at least one diagnostic is an error.
func (b *Bag) HasErrors() bool {
	for i := range b.items {
		if b.items[i].Severity >= SevError {
			return true
		}
	}
	return false
}

// HasWarnings reports whether at least one diagnostic is a warning or worse.
func (b *Bag) HasWarnings() bool {
	for i := range b.items {
		if b.items[i].Severity >= SevWarning {
			return true
		}
	}
	return false
}

func (b *Bag) Len() int {
	return len(b.items)
}

// Items returns a read-only view of the diagnostics.
// Do not modify the returned slice; it aliases the Bag's storage.
func (b *Bag) Items() []Diagnostic {
	return b.items
}

// Merge appends diagnostics from another Bag, growing the cap as needed.
func (b *Bag) Merge(other *Bag) {
	newTotal := len(b.items) + len(other.items)
	if newTotal > b.max {
		b.max = newTotal
	}
	b.items = append(b.items, other.items...)
}

// Sort orders diagnostics by file, start, end, severity (desc), code for
// deterministic multi-file output. Single-document checker output is
// already in traversal order and is not sorted.
func (b *Bag) Sort() {
	sort.SliceStable(b.items, func(i, j int) bool {
		di, dj := b.items[i], b.items[j]
		if di.Primary.File != dj.Primary.File {
			return di.Primary.File < dj.Primary.File
		}
		if di.Primary.Start != dj.Primary.Start {
			return di.Primary.Start < dj.Primary.Start
		}
		if di.Primary.End != dj.Primary.End {
			return di.Primary.End < dj.Primary.End
		}
		if di.Severity != dj.Severity {
			return di.Severity > dj.Severity
		}
		return di.Code < dj.Code
	})
}

// DropWarnings removes every diagnostic below SevError.
func (b *Bag) DropWarnings() {
	kept := b.items[:0]
	for _, d := range b.items {
		if d.Severity >= SevError {
			kept = append(kept, d)
		}
	}
	b.items = kept
}

// PromoteWarnings raises every warning to an error.
func (b *Bag) PromoteWarnings() {
	for i := range b.items {
		if b.items[i].Severity == SevWarning {
			b.items[i].Severity = SevError
		}
	}
}
