package check

import (
	"net/url"
	"os"
	"path/filepath"

	"qmlcheck/internal/ast"
	"qmlcheck/internal/diag"
	"qmlcheck/internal/qml"
	"qmlcheck/internal/qmlcolor"
	"qmlcheck/internal/source"
)

// CheckAssignment decides whether a binding's right-hand side fits the
// declared property type. Dispatch is by the declared (left-hand)
// variant; the first matching rule wins, so at most one diagnostic is
// produced per call. A nil rhs means the evaluator could not determine
// a value; rules that consult the evaluated value are skipped then.
func CheckAssignment(doc *qml.Document, span source.Span, lhs, rhs qml.Value, expr ast.Expression) (diag.Diagnostic, bool) {
	if lhs == nil || expr == nil {
		return diag.Diagnostic{}, false
	}
	a := &assignmentCheck{doc: doc, span: span, rhs: rhs, expr: expr}
	return a.run(lhs)
}

type assignmentCheck struct {
	doc  *qml.Document
	span source.Span
	rhs  qml.Value
	expr ast.Expression
}

func (a *assignmentCheck) run(lhs qml.Value) (diag.Diagnostic, bool) {
	switch v := lhs.(type) {
	case *qml.EnumValue:
		return a.checkEnum(v)
	case *qml.NumberValue:
		if a.isBoolLiteral() {
			return a.fail(diag.SemaNumberExpected, "numerical value expected")
		}
	case *qml.BooleanValue:
		if a.isStringLiteral() || a.isNumberLiteral() {
			return a.fail(diag.SemaBooleanExpected, "boolean value expected")
		}
	case *qml.StringValue:
		return a.checkString()
	case *qml.URLValue:
		if d, ok := a.checkString(); ok {
			return d, ok
		}
		return a.checkURL()
	case *qml.ColorValue:
		lit, ok := a.expr.(*ast.StringLiteral)
		if !ok {
			return a.checkString()
		}
		if !qmlcolor.Parse(lit.Value).IsValid() {
			return a.fail(diag.SemaInvalidColor, "not a valid color")
		}
	case *qml.AnchorLineValue:
		if a.rhs == nil {
			break
		}
		switch a.rhs.(type) {
		case *qml.AnchorLineValue, *qml.UndefinedValue:
		default:
			return a.fail(diag.SemaExpectedAnchorLine, "expected anchor line")
		}
	}
	return diag.Diagnostic{}, false
}

func (a *assignmentCheck) checkEnum(enum *qml.EnumValue) (diag.Diagnostic, bool) {
	if lit, ok := a.expr.(*ast.StringLiteral); ok {
		if !enum.HasKey(lit.Value) {
			return a.fail(diag.SemaUnknownEnumValue, "unknown value for enum")
		}
		return diag.Diagnostic{}, false
	}
	if a.rhs == nil {
		return diag.Diagnostic{}, false
	}
	if _, ok := a.rhs.(*qml.UndefinedValue); ok {
		return a.warn(diag.SemaMaybeUndefined, "value might be 'undefined'")
	}
	if !qml.IsStringy(a.rhs) && !qml.IsNumeric(a.rhs) {
		return a.fail(diag.SemaEnumValueType, "enum value is not a string or number")
	}
	return diag.Diagnostic{}, false
}

func (a *assignmentCheck) checkString() (diag.Diagnostic, bool) {
	if a.isNumberLiteral() || a.isBoolLiteral() {
		return a.fail(diag.SemaStringExpected, "string value expected")
	}
	return diag.Diagnostic{}, false
}

// checkURL validates a string-literal url target: the text must parse,
// and a local file target must exist on disk, resolved against the
// document's directory when relative.
func (a *assignmentCheck) checkURL() (diag.Diagnostic, bool) {
	lit, ok := a.expr.(*ast.StringLiteral)
	if !ok {
		return diag.Diagnostic{}, false
	}
	u, err := url.Parse(lit.Value)
	if err != nil {
		if lit.Value != "" {
			return a.fail(diag.SemaInvalidURL, "not a valid url")
		}
		return diag.Diagnostic{}, false
	}

	fileName := localFile(u)
	if fileName == "" {
		return diag.Diagnostic{}, false
	}
	if !filepath.IsAbs(fileName) && a.doc != nil {
		fileName = filepath.Join(a.doc.Dir(), fileName)
	}
	if _, err := os.Stat(fileName); err != nil {
		return a.fail(diag.SemaFileMissing, "file or directory does not exist")
	}
	return diag.Diagnostic{}, false
}

// localFile extracts the filesystem path a url denotes, or "" when the
// url points somewhere else (http, qrc, mail, ...).
func localFile(u *url.URL) string {
	switch {
	case u.Scheme == "file":
		return u.Path
	case u.Scheme == "" && u.Host == "":
		return u.Path
	}
	return ""
}

func (a *assignmentCheck) isStringLiteral() bool {
	_, ok := a.expr.(*ast.StringLiteral)
	return ok
}

func (a *assignmentCheck) isBoolLiteral() bool {
	switch a.expr.(type) {
	case *ast.TrueLiteral, *ast.FalseLiteral:
		return true
	}
	return false
}

// isNumberLiteral also accepts a unary minus applied directly to a
// numeric literal, so `-12` counts as a number at the syntax level.
func (a *assignmentCheck) isNumberLiteral() bool {
	switch n := a.expr.(type) {
	case *ast.NumberLiteral:
		return true
	case *ast.UnaryMinus:
		_, ok := n.Operand.(*ast.NumberLiteral)
		return ok
	}
	return false
}

func (a *assignmentCheck) fail(code diag.Code, msg string) (diag.Diagnostic, bool) {
	return diag.NewError(code, a.span, msg), true
}

func (a *assignmentCheck) warn(code diag.Code, msg string) (diag.Diagnostic, bool) {
	return diag.NewWarning(code, a.span, msg), true
}
