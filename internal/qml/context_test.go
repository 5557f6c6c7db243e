package qml

import (
	"testing"

	"qmlcheck/internal/ast"
	"qmlcheck/internal/source"
)

func testContext(t *testing.T) *Context {
	t.Helper()
	env, err := DefaultTypeEnv()
	if err != nil {
		t.Fatalf("DefaultTypeEnv: %v", err)
	}
	return NewContext(env, NewSnapshot())
}

func typeID(names ...string) *ast.QualifiedID {
	q := &ast.QualifiedID{}
	for _, name := range names {
		q.Segments = append(q.Segments, ast.IDSegment{Name: name})
	}
	return q
}

func TestScopeBuilder_PushPopBalance(t *testing.T) {
	ctx := testContext(t)
	builder := NewScopeBuilder(ctx, nil)

	outer := &ast.ObjectDefinition{TypeID: typeID("Rectangle")}
	inner := &ast.ObjectDefinition{TypeID: typeID("Text")}

	builder.Push(outer)
	if got := len(ctx.ScopeChain().QMLScopeObjects); got != 1 {
		t.Fatalf("after outer push: %d scope objects, want 1", got)
	}
	builder.Push(inner)
	if got := len(ctx.ScopeChain().QMLScopeObjects); got != 2 {
		t.Fatalf("after inner push: %d scope objects, want 2", got)
	}

	builder.Pop()
	if got := len(ctx.ScopeChain().QMLScopeObjects); got != 1 {
		t.Fatalf("after inner pop: %d scope objects, want 1", got)
	}
	builder.Pop()
	if got := len(ctx.ScopeChain().QMLScopeObjects); got != 0 {
		t.Fatalf("after outer pop: %d scope objects, want 0", got)
	}
	if builder.Depth() != 0 {
		t.Fatalf("builder depth = %d, want 0", builder.Depth())
	}
}

func TestScopeBuilder_PopRestoresAfterClear(t *testing.T) {
	ctx := testContext(t)
	builder := NewScopeBuilder(ctx, nil)

	builder.Push(&ast.ObjectDefinition{TypeID: typeID("Rectangle")})
	builder.Push(&ast.ObjectDefinition{TypeID: typeID("Text")})

	// Unknown-type handling clears the object list mid-frame.
	ctx.ScopeChain().ClearObjects()
	if len(ctx.ScopeChain().QMLScopeObjects) != 0 {
		t.Fatal("clear did not empty the chain")
	}

	builder.Pop()
	if got := len(ctx.ScopeChain().QMLScopeObjects); got != 1 {
		t.Fatalf("pop after clear restored %d objects, want 1", got)
	}
	builder.Pop()
	if got := len(ctx.ScopeChain().QMLScopeObjects); got != 0 {
		t.Fatalf("final pop restored %d objects, want 0", got)
	}
}

func TestScopeBuilder_FunctionFrame(t *testing.T) {
	ctx := testContext(t)
	builder := NewScopeBuilder(ctx, nil)

	fn := &ast.FunctionDeclaration{
		Name:   "calc",
		Params: []ast.Param{{Name: "a"}, {Name: "b"}},
	}
	builder.Push(fn)
	chain := ctx.ScopeChain()
	if len(chain.JSScopes) != 1 {
		t.Fatalf("JSScopes = %d, want 1", len(chain.JSScopes))
	}
	if chain.JSScopes[0].LookupMember("a") == nil || chain.JSScopes[0].LookupMember("b") == nil {
		t.Fatal("params not in function frame")
	}
	builder.Pop()
	if len(chain.JSScopes) != 0 {
		t.Fatalf("JSScopes after pop = %d, want 0", len(chain.JSScopes))
	}
}

func TestContext_LookupTypeComponent(t *testing.T) {
	env, err := DefaultTypeEnv()
	if err != nil {
		t.Fatalf("DefaultTypeEnv: %v", err)
	}

	fs := source.NewFileSet()
	compFile := fs.Get(fs.AddVirtual("widgets/Badge.qml", nil))
	compDoc := NewDocument(compFile, &ast.Program{
		Root: &ast.ObjectDefinition{TypeID: typeID("Rectangle")},
	})

	snapshot := NewSnapshot()
	snapshot.Insert(compDoc)
	ctx := NewContext(env, snapshot)

	mainFile := fs.Get(fs.AddVirtual("widgets/main.qml", nil))
	mainDoc := NewDocument(mainFile, &ast.Program{})

	badge := ctx.LookupType(mainDoc, typeID("Badge"))
	if badge == nil {
		t.Fatal("component Badge not resolved")
	}
	if badge.ClassName() != "Badge" {
		t.Errorf("ClassName = %q", badge.ClassName())
	}
	if _, ok := badge.LookupMember("color").(*ColorValue); !ok {
		t.Errorf("Badge.color = %T, want inherited *ColorValue", badge.LookupMember("color"))
	}

	if ctx.LookupType(mainDoc, typeID("Missing")) != nil {
		t.Error("unknown type resolved unexpectedly")
	}
	// A document does not export a component to itself.
	if ctx.LookupType(compDoc, typeID("Badge")) != nil {
		t.Error("component resolved within its own document")
	}
}

func TestEvaluator_Basics(t *testing.T) {
	ctx := testContext(t)
	builder := NewScopeBuilder(ctx, nil)
	builder.Push(&ast.ObjectDefinition{TypeID: typeID("Rectangle")})
	defer builder.Pop()

	eval := NewEvaluator(ctx)

	tests := []struct {
		name string
		expr ast.Expression
		want func(Value) bool
	}{
		{
			name: "string literal",
			expr: &ast.StringLiteral{Value: "x"},
			want: func(v Value) bool { _, ok := v.(*StringValue); return ok },
		},
		{
			name: "number literal",
			expr: &ast.NumberLiteral{Value: 4},
			want: func(v Value) bool { _, ok := v.(*NumberValue); return ok },
		},
		{
			name: "negated number",
			expr: &ast.UnaryMinus{Operand: &ast.NumberLiteral{Value: 4}},
			want: func(v Value) bool { _, ok := v.(*NumberValue); return ok },
		},
		{
			name: "boolean literal",
			expr: &ast.TrueLiteral{},
			want: func(v Value) bool { _, ok := v.(*BooleanValue); return ok },
		},
		{
			name: "scope property",
			expr: &ast.Identifier{Name: "width"},
			want: func(v Value) bool { _, ok := v.(*NumberValue); return ok },
		},
		{
			name: "anchor line through parent",
			expr: &ast.FieldMember{Base: &ast.Identifier{Name: "parent"}, Name: "left"},
			want: func(v Value) bool { _, ok := v.(*AnchorLineValue); return ok },
		},
		{
			name: "unknown identifier",
			expr: &ast.Identifier{Name: "nonsense"},
			want: func(v Value) bool { return v == nil },
		},
		{
			name: "call has no value",
			expr: &ast.Call{Callee: &ast.Identifier{Name: "width"}},
			want: func(v Value) bool { return v == nil },
		},
		{
			name: "member of non-object",
			expr: &ast.FieldMember{Base: &ast.Identifier{Name: "width"}, Name: "left"},
			want: func(v Value) bool { return v == nil },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := eval.Evaluate(tt.expr)
			if !tt.want(got) {
				t.Errorf("Evaluate() = %#v", got)
			}
		})
	}
}
