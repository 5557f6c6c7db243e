package qml

import (
	"qmlcheck/internal/ast"
)

// Evaluator maps an expression node to the value it denotes under the
// context's current scope chain. It is deliberately shallow: anything
// beyond literals, scope lookups and member chains evaluates to nil
// ("no value"), which consumers treat as "skip the check".
type Evaluator struct {
	ctx *Context
}

func NewEvaluator(ctx *Context) *Evaluator {
	return &Evaluator{ctx: ctx}
}

// Evaluate returns the value of expr, or nil when it cannot be
// determined.
func (e *Evaluator) Evaluate(expr ast.Expression) Value {
	switch node := expr.(type) {
	case *ast.StringLiteral:
		return String
	case *ast.NumberLiteral:
		return Number
	case *ast.TrueLiteral, *ast.FalseLiteral:
		return Boolean
	case *ast.UnaryMinus:
		operand := e.Evaluate(node.Operand)
		if _, ok := operand.(*NumberValue); ok {
			return Number
		}
		return nil
	case *ast.Identifier:
		return e.lookupName(node.Name)
	case *ast.FieldMember:
		if node.Name == "" {
			return nil
		}
		base := e.Evaluate(node.Base)
		obj, ok := base.(*ObjectValue)
		if !ok {
			return nil
		}
		return obj.LookupMember(node.Name)
	default:
		// Calls, arrays and anything else are beyond this evaluator.
		return nil
	}
}

// lookupName resolves a bare identifier: JS function frames innermost
// first, then QML scope objects innermost first.
func (e *Evaluator) lookupName(name string) Value {
	if name == "" {
		return nil
	}
	chain := e.ctx.ScopeChain()
	for i := len(chain.JSScopes) - 1; i >= 0; i-- {
		if v := chain.JSScopes[i].LookupMember(name); v != nil {
			return v
		}
	}
	for i := len(chain.QMLScopeObjects) - 1; i >= 0; i-- {
		if v := chain.QMLScopeObjects[i].LookupMember(name); v != nil {
			return v
		}
	}
	return nil
}
