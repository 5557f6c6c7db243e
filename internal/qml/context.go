package qml

import (
	"qmlcheck/internal/ast"
)

// ScopeChain is the ordered set of property bags visible at the current
// point of a traversal. QMLScopeObjects holds the enclosing elements'
// type objects, innermost last; JSScopes holds function frames; QMLTypes
// is the attached-types bag consulted for capitalised qualifiers.
type ScopeChain struct {
	QMLScopeObjects []*ObjectValue
	JSScopes        []*ObjectValue
	QMLTypes        *ObjectValue
}

// ClearObjects empties the QML scope-object list. Used after an unknown
// type to suppress cascading member-lookup errors inside that element.
func (s *ScopeChain) ClearObjects() {
	s.QMLScopeObjects = s.QMLScopeObjects[:0]
}

// Context holds the shared, read-only inputs of one check run — the
// type environment and the snapshot — plus the live scope chain, which
// is mutated only through a ScopeBuilder.
type Context struct {
	env      *TypeEnv
	snapshot *Snapshot
	scope    ScopeChain
}

// NewContext builds a linked-but-not-yet-scoped context.
func NewContext(env *TypeEnv, snapshot *Snapshot) *Context {
	return &Context{
		env:      env,
		snapshot: snapshot,
		scope: ScopeChain{
			QMLTypes: env.AttachedTypes(),
		},
	}
}

// ScopeChain returns the mutable scope chain handle.
func (c *Context) ScopeChain() *ScopeChain {
	return &c.scope
}

// Snapshot returns the snapshot of known documents.
func (c *Context) Snapshot() *Snapshot {
	return c.snapshot
}

// LookupType resolves a qualified type name for a document: builtin
// types first, then components exported by other snapshot documents.
// Returns nil for unknown types and for malformed ids.
func (c *Context) LookupType(doc *Document, typeID *ast.QualifiedID) *ObjectValue {
	if typeID == nil || len(typeID.Segments) == 0 {
		return nil
	}
	name := typeID.String()
	if obj := c.env.LookupType(name); obj != nil {
		return obj
	}
	if compDoc := c.snapshot.ComponentDocument(name); compDoc != nil && compDoc != doc {
		if root := compDoc.Program.Root; root != nil {
			// A component behaves as its root type for property lookup.
			if rootType := c.env.LookupType(root.TypeID.String()); rootType != nil {
				comp := NewObjectValue(name)
				comp.SetPrototype(rootType)
				return comp
			}
		}
	}
	return nil
}

// LookupReference resolves a deferred reference value.
func (c *Context) LookupReference(ref *Reference) Value {
	if ref == nil {
		return nil
	}
	return ref.Target
}

// scopeFrame snapshots the chain state so Pop restores it exactly,
// including any ClearObjects that happened inside the frame.
type scopeFrame struct {
	qmlObjects []*ObjectValue
	jsLen      int
}

// ScopeBuilder pushes and pops scope frames as the checker walks the
// tree. Pushes and pops are strictly balanced per AST node; Pop
// restores the chain to its exact state at the matching Push.
type ScopeBuilder struct {
	ctx    *Context
	doc    *Document
	frames []scopeFrame
}

func NewScopeBuilder(ctx *Context, doc *Document) *ScopeBuilder {
	return &ScopeBuilder{ctx: ctx, doc: doc}
}

// Push enters the scope introduced by node. Object nodes contribute
// their type object to the QML scope-object list; function nodes
// contribute a frame holding their parameters.
func (b *ScopeBuilder) Push(node ast.Node) {
	chain := b.ctx.ScopeChain()
	b.frames = append(b.frames, scopeFrame{
		qmlObjects: append([]*ObjectValue(nil), chain.QMLScopeObjects...),
		jsLen:      len(chain.JSScopes),
	})

	switch n := node.(type) {
	case *ast.ObjectDefinition:
		if obj := b.ctx.LookupType(b.doc, n.TypeID); obj != nil {
			chain.QMLScopeObjects = append(chain.QMLScopeObjects, obj)
		}
	case *ast.ObjectBinding:
		if obj := b.ctx.LookupType(b.doc, n.TypeID); obj != nil {
			chain.QMLScopeObjects = append(chain.QMLScopeObjects, obj)
		}
	case *ast.FunctionDeclaration:
		frame := NewObjectValue("function " + n.Name)
		for _, param := range n.Params {
			if param.Name != "" {
				frame.SetMember(param.Name, Undefined)
			}
		}
		chain.JSScopes = append(chain.JSScopes, frame)
	}
}

// Pop leaves the innermost frame, restoring the chain state captured by
// the matching Push.
func (b *ScopeBuilder) Pop() {
	if len(b.frames) == 0 {
		return
	}
	frame := b.frames[len(b.frames)-1]
	b.frames = b.frames[:len(b.frames)-1]

	chain := b.ctx.ScopeChain()
	chain.QMLScopeObjects = frame.qmlObjects
	chain.JSScopes = chain.JSScopes[:frame.jsLen]
}

// Depth returns the number of open frames.
func (b *ScopeBuilder) Depth() int {
	return len(b.frames)
}
