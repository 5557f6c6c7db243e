package lexer

import (
	"qmlcheck/internal/diag"
	"qmlcheck/internal/source"
)

// ReporterAdapter maps lexer error kinds onto diag codes and forwards
// them to a Bag.
type ReporterAdapter struct {
	Bag *diag.Bag
}

func (a *ReporterAdapter) Reporter() Reporter { return a }

func (a *ReporterAdapter) Report(kind string, span source.Span, msg string) {
	if a.Bag == nil {
		return
	}
	code := diag.LexInfo
	switch kind {
	case KindUnknownChar:
		code = diag.LexUnknownChar
	case KindUnterminatedString:
		code = diag.LexUnterminatedString
	case KindBadNumber:
		code = diag.LexBadNumber
	}
	a.Bag.Add(diag.NewError(code, span, msg))
}
