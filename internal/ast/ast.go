// Package ast defines the syntax tree for the QML subset grammar.
//
// Nodes are plain structs behind small interfaces. The parser performs
// best-effort recovery: after a syntax error a node may carry empty
// segment names or nil statements, and every consumer is expected to
// treat those as "stop checking this branch" rather than a fault.
package ast

import (
	"qmlcheck/internal/source"
)

// Node is implemented by every syntax tree node.
type Node interface {
	Span() source.Span
}

// Member is an entry inside an object initializer: a nested object,
// a property binding, an array binding, or a function declaration.
type Member interface {
	Node
	memberNode()
}

// Statement is the right-hand side of a script binding or a function
// body entry.
type Statement interface {
	Node
	stmtNode()
}

// Expression is a script expression node.
type Expression interface {
	Node
	exprNode()
}

// Program is the root of a parsed document: an optional import list
// followed by a single root object.
type Program struct {
	Imports []*Import
	Root    *ObjectDefinition
	SpanAll source.Span
}

func (p *Program) Span() source.Span { return p.SpanAll }

// Import is an `import Name 1.0` header line. The checker ignores
// imports beyond recording them; type resolution happens in the context.
type Import struct {
	Name    string
	Version string
	SpanAll source.Span
}

func (i *Import) Span() source.Span { return i.SpanAll }
