package ast

import (
	"qmlcheck/internal/source"
)

// ObjectDefinition instantiates a type (or references a grouped property
// when the type name is lower case): `Rectangle { ... }`, `anchors { ... }`.
type ObjectDefinition struct {
	TypeID  *QualifiedID
	Members []Member
	SpanAll source.Span
}

func (o *ObjectDefinition) Span() source.Span { return o.SpanAll }
func (o *ObjectDefinition) memberNode()       {}

// ObjectBinding binds a property to an object literal:
// `property: Type { ... }`.
type ObjectBinding struct {
	Target  *QualifiedID
	TypeID  *QualifiedID
	Members []Member
	SpanAll source.Span
}

func (o *ObjectBinding) Span() source.Span { return o.SpanAll }
func (o *ObjectBinding) memberNode()       {}

// ScriptBinding binds a property to a statement: `width: parent.width`.
// Statement is nil when the right-hand side failed to parse.
type ScriptBinding struct {
	Target    *QualifiedID
	Statement Statement
	SpanAll   source.Span
}

func (s *ScriptBinding) Span() source.Span { return s.SpanAll }
func (s *ScriptBinding) memberNode()       {}

// ArrayBinding binds a property to a list of object literals:
// `states: [ State { ... }, State { ... } ]`.
type ArrayBinding struct {
	Target   *QualifiedID
	Elements []*ObjectDefinition
	SpanAll  source.Span
}

func (a *ArrayBinding) Span() source.Span { return a.SpanAll }
func (a *ArrayBinding) memberNode()       {}

// FunctionDeclaration is a JS function member:
// `function f(a, b) { ... }`.
type FunctionDeclaration struct {
	Name     string
	NameSpan source.Span
	Params   []Param
	Body     []Statement
	SpanAll  source.Span
}

func (f *FunctionDeclaration) Span() source.Span { return f.SpanAll }
func (f *FunctionDeclaration) memberNode()       {}

// Param is a formal parameter of a function declaration.
type Param struct {
	Name     string
	NameSpan source.Span
}
