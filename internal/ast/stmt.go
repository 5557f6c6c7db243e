package ast

import (
	"qmlcheck/internal/source"
)

// ExpressionStatement wraps a bare expression used as a statement.
type ExpressionStatement struct {
	Expr    Expression
	SpanAll source.Span
}

func (e *ExpressionStatement) Span() source.Span { return e.SpanAll }
func (e *ExpressionStatement) stmtNode()         {}

// BlockStatement is a braced statement list. The checker does not look
// inside beyond generic expression traversal.
type BlockStatement struct {
	Statements []Statement
	SpanAll    source.Span
}

func (b *BlockStatement) Span() source.Span { return b.SpanAll }
func (b *BlockStatement) stmtNode()         {}
