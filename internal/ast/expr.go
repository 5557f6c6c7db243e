package ast

import (
	"qmlcheck/internal/source"
)

// StringLiteral is a quoted string; Value carries the unquoted text.
type StringLiteral struct {
	Value   string
	SpanAll source.Span
}

func (s *StringLiteral) Span() source.Span { return s.SpanAll }
func (s *StringLiteral) exprNode()         {}

// NumberLiteral is a decimal literal.
type NumberLiteral struct {
	Text    string
	Value   float64
	SpanAll source.Span
}

func (n *NumberLiteral) Span() source.Span { return n.SpanAll }
func (n *NumberLiteral) exprNode()         {}

// TrueLiteral is the `true` keyword.
type TrueLiteral struct {
	SpanAll source.Span
}

func (t *TrueLiteral) Span() source.Span { return t.SpanAll }
func (t *TrueLiteral) exprNode()         {}

// FalseLiteral is the `false` keyword.
type FalseLiteral struct {
	SpanAll source.Span
}

func (f *FalseLiteral) Span() source.Span { return f.SpanAll }
func (f *FalseLiteral) exprNode()         {}

// Identifier references a name in scope.
type Identifier struct {
	Name    string
	SpanAll source.Span
}

func (i *Identifier) Span() source.Span { return i.SpanAll }
func (i *Identifier) exprNode()         {}

// FieldMember accesses a member of a base expression: `base.name`.
// Name may be empty after error recovery.
type FieldMember struct {
	Base     Expression
	Name     string
	NameSpan source.Span
	SpanAll  source.Span
}

func (f *FieldMember) Span() source.Span { return f.SpanAll }
func (f *FieldMember) exprNode()         {}

// UnaryMinus negates its operand: `-12`.
type UnaryMinus struct {
	Operand Expression
	SpanAll source.Span
}

func (u *UnaryMinus) Span() source.Span { return u.SpanAll }
func (u *UnaryMinus) exprNode()         {}

// Call invokes a callee expression: `Qt.rgba(1, 0, 0, 1)`.
type Call struct {
	Callee  Expression
	Args    []Expression
	SpanAll source.Span
}

func (c *Call) Span() source.Span { return c.SpanAll }
func (c *Call) exprNode()         {}

// ArrayLiteral is a bracketed expression list: `[1, 2, 3]`.
type ArrayLiteral struct {
	Elements []Expression
	SpanAll  source.Span
}

func (a *ArrayLiteral) Span() source.Span { return a.SpanAll }
func (a *ArrayLiteral) exprNode()         {}
