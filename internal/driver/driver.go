// Package driver orchestrates whole-directory checks: file discovery,
// parallel parsing, snapshot assembly, parallel checking, and the disk
// cache that lets unchanged files skip the checker entirely.
package driver

import (
	"qmlcheck/internal/check"
	"qmlcheck/internal/diag"
	"qmlcheck/internal/qml"
	"qmlcheck/internal/source"
)

// Options configures a driver run. Zero values pick sensible defaults.
type Options struct {
	// Jobs bounds the number of concurrent workers; <= 0 means
	// GOMAXPROCS.
	Jobs int

	// MaxDiagnostics caps the per-file diagnostic list; <= 0 falls back
	// to the checker default.
	MaxDiagnostics int

	// IgnoreUnknownTypes suppresses "unknown type" diagnostics.
	IgnoreUnknownTypes bool

	// CheckScriptBindings enables resolution inside script expressions.
	CheckScriptBindings bool

	// ImportDirs lists extra directories whose documents join the
	// snapshot for component resolution. They are parsed but not
	// checked.
	ImportDirs []string

	// Cache, when non-nil, stores per-file diagnostics keyed by content
	// and snapshot so unchanged files are not re-checked.
	Cache *DiskCache

	// Observer, when non-nil, receives an event per file and stage.
	Observer func(Event)
}

// Stage names a per-file step of the run.
type Stage int

const (
	StageLoad Stage = iota
	StageParse
	StageCheck
	StageCached
	StageDone
)

func (s Stage) String() string {
	switch s {
	case StageLoad:
		return "load"
	case StageParse:
		return "parse"
	case StageCheck:
		return "check"
	case StageCached:
		return "cached"
	case StageDone:
		return "done"
	default:
		return "unknown"
	}
}

// Terminal reports whether the stage ends a file's processing.
func (s Stage) Terminal() bool {
	return s == StageCached || s == StageDone
}

// Event reports progress for observers (progress UI, logs).
type Event struct {
	Stage Stage
	Path  string
}

// CheckResult holds everything produced for one file: parse and check
// diagnostics merged into one bag, in traversal order.
type CheckResult struct {
	Path      string
	FileID    source.FileID
	Doc       *qml.Document
	Bag       *diag.Bag
	FromCache bool
}

func (o *Options) notify(stage Stage, path string) {
	if o.Observer != nil {
		o.Observer(Event{Stage: stage, Path: path})
	}
}

func (o *Options) maxDiagnostics() int {
	if o.MaxDiagnostics > 0 {
		return o.MaxDiagnostics
	}
	return check.DefaultMaxDiagnostics
}
