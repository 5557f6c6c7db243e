package qml

// ObjectValue is a named property bag: a type from the builtin
// environment, a grouped-property sub-bag, or a synthetic scope (JS
// function frame, attached-types bag). Lookup walks the prototype chain.
type ObjectValue struct {
	className string
	members   map[string]Value
	prototype *ObjectValue
}

func NewObjectValue(className string) *ObjectValue {
	return &ObjectValue{
		className: className,
		members:   make(map[string]Value),
	}
}

func (o *ObjectValue) valueNode() {}

// ClassName is the name used in diagnostics ("'x' is not a member of 'Item'").
func (o *ObjectValue) ClassName() string {
	return o.className
}

// Prototype returns the base object, or nil.
func (o *ObjectValue) Prototype() *ObjectValue {
	return o.prototype
}

// SetPrototype links the base object for inherited member lookup.
func (o *ObjectValue) SetPrototype(proto *ObjectValue) {
	o.prototype = proto
}

// SetMember adds or replaces an own member.
func (o *ObjectValue) SetMember(name string, value Value) {
	o.members[name] = value
}

// LookupMember finds a member by name, walking the prototype chain.
// Returns nil when the name is unknown.
func (o *ObjectValue) LookupMember(name string) Value {
	for cur := o; cur != nil; cur = cur.prototype {
		if v, ok := cur.members[name]; ok {
			return v
		}
	}
	return nil
}

// OwnMembers returns the object's own (non-inherited) member names.
// Intended for introspection and tests.
func (o *ObjectValue) OwnMembers() []string {
	names := make([]string, 0, len(o.members))
	for name := range o.members {
		names = append(names, name)
	}
	return names
}
