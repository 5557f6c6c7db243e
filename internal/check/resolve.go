package check

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"qmlcheck/internal/ast"
	"qmlcheck/internal/diag"
	"qmlcheck/internal/qml"
)

// resolveScopeMember resolves a qualified property id against the
// current scope chain. Later-pushed scope objects shadow earlier ones,
// so the search runs innermost first. Failures are diagnosed as a side
// effect; the return value is the resolved property value, or nil when
// resolution stopped for any reason.
//
// A capitalised first segment addresses an attached type (Keys.enabled);
// the attached-types bag joins the search for that lookup only, and no
// member chain is followed past it.
func (c *Checker) resolveScopeMember(id *ast.QualifiedID) qml.Value {
	chain := c.ctx.ScopeChain()
	scopeObjects := chain.QMLScopeObjects
	if len(scopeObjects) == 0 {
		return nil
	}
	if id == nil || len(id.Segments) == 0 {
		return nil
	}

	name := id.Segments[0].Name
	if name == "" {
		// possible after parser error recovery
		return nil
	}
	if name == "id" && id.IsSingle() {
		// handled by the script-binding special case
		return nil
	}

	attached := false
	if r, _ := utf8.DecodeRuneInString(name); unicode.IsUpper(r) {
		attached = true
		if chain.QMLTypes != nil {
			scopeObjects = append(append([]*qml.ObjectValue(nil), scopeObjects...), chain.QMLTypes)
		}
	}

	var value qml.Value
	for i := len(scopeObjects) - 1; i >= 0; i-- {
		if v := scopeObjects[i].LookupMember(name); v != nil {
			value = v
			break
		}
	}
	if value == nil {
		c.error(diag.SemaInvalidPropertyName, id.Segments[0].NameSpan,
			fmt.Sprintf("'%s' is not a valid property name", name))
	}

	if attached {
		// attached properties do not support member chains
		return nil
	}

	for i := 1; i < len(id.Segments); i++ {
		obj, ok := value.(*qml.ObjectValue)
		if !ok {
			c.error(diag.SemaNoMembers, id.Segments[i-1].NameSpan,
				fmt.Sprintf("'%s' does not have members", name))
			return nil
		}

		next := id.Segments[i].Name
		if next == "" {
			// somebody typed "a." and recovery kept the tree; bail out
			return nil
		}
		name = next

		value = obj.LookupMember(name)
		if value == nil {
			c.error(diag.SemaNotAMember, id.Segments[i].NameSpan,
				fmt.Sprintf("'%s' is not a member of '%s'", name, obj.ClassName()))
			return nil
		}
	}

	return value
}
