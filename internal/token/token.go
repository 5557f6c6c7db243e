package token

import (
	"qmlcheck/internal/source"
)

// Token represents a single source token with its location.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
}

// IsLiteral reports whether the token is a numeric, boolean, or string literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case NumberLit, StringLit, KwTrue, KwFalse:
		return true
	default:
		return false
	}
}

// IsKeyword reports whether the token is a language keyword.
func (t Token) IsKeyword() bool {
	switch t.Kind {
	case KwTrue, KwFalse, KwFunction, KwProperty, KwImport, KwOn:
		return true
	default:
		return false
	}
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }

var keywords = map[string]Kind{
	"true":     KwTrue,
	"false":    KwFalse,
	"function": KwFunction,
	"property": KwProperty,
	"import":   KwImport,
	"on":       KwOn,
}

// LookupKeyword maps identifier text to its keyword kind, or Ident.
func LookupKeyword(text string) Kind {
	if kind, ok := keywords[text]; ok {
		return kind
	}
	return Ident
}
