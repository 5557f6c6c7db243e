// Package qml models the value and type side of the checker: the closed
// set of value variants, the object/type environment built from the
// embedded builtins description, documents and snapshots, and the scope
// chain threaded through a check run.
package qml

import (
	"slices"
)

// Value is the closed set of variants a property type or an evaluated
// expression can take. Dispatch is by type switch; the set is not meant
// to be extended outside this package.
type Value interface {
	valueNode()
}

// UndefinedValue marks an unknown or deliberately untyped value.
type UndefinedValue struct{}

func (*UndefinedValue) valueNode() {}

// NumberValue covers int and real properties.
type NumberValue struct{}

func (*NumberValue) valueNode() {}

// EnumValue is a number specialised with the set of valid key names.
type EnumValue struct {
	Name string
	Keys []string
}

func (*EnumValue) valueNode() {}

// HasKey reports whether name is a valid key of the enum.
func (e *EnumValue) HasKey(name string) bool {
	return slices.Contains(e.Keys, name)
}

// BooleanValue covers bool properties.
type BooleanValue struct{}

func (*BooleanValue) valueNode() {}

// StringValue covers string properties.
type StringValue struct{}

func (*StringValue) valueNode() {}

// URLValue is a string specialised as a URL; string targets get
// existence checks on top of the plain string rules.
type URLValue struct{}

func (*URLValue) valueNode() {}

// ColorValue covers color properties.
type ColorValue struct{}

func (*ColorValue) valueNode() {}

// AnchorLineValue covers anchor line properties (left, top, ...).
type AnchorLineValue struct{}

func (*AnchorLineValue) valueNode() {}

// Reference defers to another value resolved through the context.
type Reference struct {
	Target Value
}

func (*Reference) valueNode() {}

// Shared singletons for the stateless variants. Identity does not
// matter to the checker; only the dynamic type does.
var (
	Undefined  = &UndefinedValue{}
	Number     = &NumberValue{}
	Boolean    = &BooleanValue{}
	String     = &StringValue{}
	URL        = &URLValue{}
	Color      = &ColorValue{}
	AnchorLine = &AnchorLineValue{}
)

// IsStringy reports whether v is string-typed (including URL strings).
func IsStringy(v Value) bool {
	switch v.(type) {
	case *StringValue, *URLValue:
		return true
	}
	return false
}

// IsNumeric reports whether v is number-typed (including enums).
func IsNumeric(v Value) bool {
	switch v.(type) {
	case *NumberValue, *EnumValue:
		return true
	}
	return false
}
