package lexer

import (
	"qmlcheck/internal/source"
)

// Reporter is a thin interface so the lexer does not depend on diag.
// The lexer only calls it; mapping to diagnostic codes happens outside.
type Reporter interface {
	Report(kind string, span source.Span, msg string)
}

// Error kinds passed to Reporter.
const (
	KindUnknownChar        = "unknown-char"
	KindUnterminatedString = "unterminated-string"
	KindBadNumber          = "bad-number"
)

type Options struct {
	Reporter Reporter // may be nil, errors are then dropped (lexing continues)
}

func (lx *Lexer) report(kind string, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(kind, sp, msg)
	}
}
