// Package check implements the semantic checker: a single depth-first
// pass over a parsed document that resolves property targets against
// the scope chain, validates right-hand sides against declared property
// types, and special-cases the `id:` binding. Diagnostics come back in
// discovery order; nothing is sorted.
package check

import (
	"unicode"
	"unicode/utf8"

	"qmlcheck/internal/ast"
	"qmlcheck/internal/diag"
	"qmlcheck/internal/qml"
	"qmlcheck/internal/source"
)

// DefaultMaxDiagnostics caps a run when Options.MaxDiagnostics is zero.
const DefaultMaxDiagnostics = 256

// Options tunes one checker instance.
type Options struct {
	// IgnoreTypeErrors suppresses "unknown type" diagnostics. Used when
	// the caller knows the type model is incomplete, e.g. a partially
	// loaded project.
	IgnoreTypeErrors bool

	// CheckScriptBindings enables identifier and member resolution
	// inside script expressions. Off by default: naive resolution over
	// general expressions flags too much working code.
	CheckScriptBindings bool

	// MaxDiagnostics caps the diagnostic list; zero means
	// DefaultMaxDiagnostics.
	MaxDiagnostics int
}

// Checker walks one document. Instances are single-shot and sequential:
// each Run starts from a fresh diagnostic list, and the scope chain is
// left exactly as found. Concurrent checks need one Checker (and one
// Context) per document.
type Checker struct {
	doc     *qml.Document
	ctx     *qml.Context
	builder *qml.ScopeBuilder
	eval    *qml.Evaluator
	opts    Options

	bag       *diag.Bag
	lastValue qml.Value
	running   bool
}

// New binds a checker to one document and one linked-but-not-yet-scoped
// context. The context carries the snapshot used for component lookup.
func New(doc *qml.Document, ctx *qml.Context, opts Options) *Checker {
	if opts.MaxDiagnostics <= 0 {
		opts.MaxDiagnostics = DefaultMaxDiagnostics
	}
	return &Checker{
		doc:     doc,
		ctx:     ctx,
		builder: qml.NewScopeBuilder(ctx, doc),
		eval:    qml.NewEvaluator(ctx),
		opts:    opts,
	}
}

// Run performs the full traversal and returns the diagnostics in the
// order they were discovered.
func (c *Checker) Run() []diag.Diagnostic {
	if c.running {
		panic("check: Run re-entered during a traversal")
	}
	c.running = true
	defer func() { c.running = false }()

	c.bag = diag.NewBag(c.opts.MaxDiagnostics)
	c.lastValue = nil

	if c.doc != nil && c.doc.Program != nil && c.doc.Program.Root != nil {
		root := c.doc.Program.Root
		c.checkObject(root, root.TypeID, root.Members)
	}
	return c.bag.Items()
}

// checkObject handles both element forms. A lower-case single-segment
// type name is a grouped-property reference (anchors { ... }), not a
// new element: it resolves like a property and contributes no scope
// frame. Everything else pushes a frame, verifies the type exists, and
// descends into the initializer.
func (c *Checker) checkObject(node ast.Node, typeID *ast.QualifiedID, members []ast.Member) {
	first := typeID.First()
	if first == "" {
		return
	}
	if r, _ := utf8.DecodeRuneInString(first); unicode.IsLower(r) && typeID.IsSingle() {
		c.resolveScopeMember(typeID)
		return
	}

	c.builder.Push(node)
	defer c.builder.Pop()

	if c.ctx.LookupType(c.doc, typeID) == nil {
		if !c.opts.IgnoreTypeErrors {
			c.error(diag.SemaUnknownType, typeID.Segments[0].NameSpan, "unknown type")
		}
		// Suppress cascading member-lookup errors for the rest of this
		// element's properties.
		c.ctx.ScopeChain().ClearObjects()
	}

	for _, member := range members {
		c.checkMember(member)
	}
}

func (c *Checker) checkMember(member ast.Member) {
	switch m := member.(type) {
	case *ast.ObjectDefinition:
		c.checkObject(m, m.TypeID, m.Members)
	case *ast.ObjectBinding:
		c.resolveScopeMember(m.Target)
		c.checkObject(m, m.TypeID, m.Members)
	case *ast.ScriptBinding:
		c.checkScriptBinding(m)
	case *ast.ArrayBinding:
		c.resolveScopeMember(m.Target)
		for _, elem := range m.Elements {
			c.checkObject(elem, elem.TypeID, elem.Members)
		}
	case *ast.FunctionDeclaration:
		c.checkFunction(m)
	}
}

func (c *Checker) checkScriptBinding(binding *ast.ScriptBinding) {
	if binding.Target.First() == "id" && binding.Target.IsSingle() {
		if !c.checkIDBinding(binding) {
			return
		}
	}

	lhs := c.resolveScopeMember(binding.Target)
	expStmt, _ := binding.Statement.(*ast.ExpressionStatement)
	if lhs != nil && expStmt != nil {
		// An undetermined right-hand value skips the compatibility
		// check; it is not an error of its own.
		if rhs := c.eval.Evaluate(expStmt.Expr); rhs != nil {
			if d, ok := CheckAssignment(c.doc, expStmt.Span(), lhs, rhs, expStmt.Expr); ok {
				c.bag.Add(d)
			}
		}
	}

	if binding.Statement != nil {
		c.checkStatement(binding.Statement)
	}
}

// checkIDBinding validates the special `id:` property. Reports at most
// one diagnostic and returns false when the binding is malformed enough
// that the normal property path should not run.
func (c *Checker) checkIDBinding(binding *ast.ScriptBinding) bool {
	if binding.Statement == nil {
		return false
	}
	loc := binding.Statement.Span()

	expStmt, ok := binding.Statement.(*ast.ExpressionStatement)
	if !ok {
		c.error(diag.SemaExpectedID, loc, "expected id")
		return false
	}

	var id string
	switch expr := expStmt.Expr.(type) {
	case *ast.Identifier:
		id = expr.Name
	case *ast.StringLiteral:
		id = expr.Value
		c.warning(diag.SemaIDStringLiteral, loc, "using string literals for ids is discouraged")
	default:
		c.error(diag.SemaExpectedID, loc, "expected id")
		return false
	}

	r, _ := utf8.DecodeRuneInString(id)
	if id == "" || !unicode.IsLower(r) {
		c.error(diag.SemaIDNotLowerCase, loc, "ids must be lower case")
		return false
	}
	return true
}

// checkFunction pushes a frame carrying the parameters and walks the
// body under it. The parameter list itself is declared in the outer
// scope and needs no checking here.
func (c *Checker) checkFunction(fn *ast.FunctionDeclaration) {
	c.builder.Push(fn)
	defer c.builder.Pop()

	for _, stmt := range fn.Body {
		c.checkStatement(stmt)
	}
}

func (c *Checker) checkStatement(stmt ast.Statement) {
	switch s := stmt.(type) {
	case *ast.ExpressionStatement:
		if c.opts.CheckScriptBindings {
			c.lastValue = nil
			c.checkExpression(s.Expr)
		}
	case *ast.BlockStatement:
		for _, inner := range s.Statements {
			c.checkStatement(inner)
		}
	}
}

// checkExpression resolves identifiers and member accesses inside
// script code, threading the resolved value through lastValue so member
// chains check left to right. Only reachable when CheckScriptBindings
// is set.
func (c *Checker) checkExpression(expr ast.Expression) {
	switch node := expr.(type) {
	case *ast.Identifier:
		c.lastValue = nil
		if node.Name == "" {
			return
		}
		value := c.eval.Evaluate(node)
		if value == nil {
			c.error(diag.SemaUnknownIdentifier, node.Span(), "unknown identifier")
			return
		}
		if ref, ok := value.(*qml.Reference); ok {
			value = c.ctx.LookupReference(ref)
			if value == nil {
				c.error(diag.SemaUnresolvedReference, node.Span(), "could not resolve")
				return
			}
		}
		c.lastValue = value

	case *ast.FieldMember:
		c.checkExpression(node.Base)
		if c.lastValue == nil {
			return
		}
		obj, ok := c.lastValue.(*qml.ObjectValue)
		if !ok {
			c.error(diag.SemaNoMembers, node.Base.Span(), "does not have members")
		}
		if !ok || node.Name == "" {
			c.lastValue = nil
			return
		}
		c.lastValue = obj.LookupMember(node.Name)
		if c.lastValue == nil {
			c.error(diag.SemaUnknownMember, node.NameSpan, "unknown member")
		}

	case *ast.UnaryMinus:
		c.checkExpression(node.Operand)
		c.lastValue = nil

	case *ast.Call:
		c.checkExpression(node.Callee)
		for _, arg := range node.Args {
			c.checkExpression(arg)
		}
		c.lastValue = nil

	case *ast.ArrayLiteral:
		for _, elem := range node.Elements {
			c.checkExpression(elem)
		}
		c.lastValue = nil

	default:
		c.lastValue = nil
	}
}

func (c *Checker) error(code diag.Code, span source.Span, msg string) {
	c.bag.Add(diag.NewError(code, span, msg))
}

func (c *Checker) warning(code diag.Code, span source.Span, msg string) {
	c.bag.Add(diag.NewWarning(code, span, msg))
}
