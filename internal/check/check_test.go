package check

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"qmlcheck/internal/diag"
	"qmlcheck/internal/lexer"
	"qmlcheck/internal/parser"
	"qmlcheck/internal/qml"
	"qmlcheck/internal/source"
)

func parseDoc(t *testing.T, path, src string) *qml.Document {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual(path, []byte(src)))
	prog := parser.ParseDocument(lexer.New(file, lexer.Options{}), parser.Options{})
	return qml.NewDocument(file, prog)
}

func newContext(t *testing.T, snapshot *qml.Snapshot) *qml.Context {
	t.Helper()
	env, err := qml.DefaultTypeEnv()
	if err != nil {
		t.Fatalf("DefaultTypeEnv: %v", err)
	}
	if snapshot == nil {
		snapshot = qml.NewSnapshot()
	}
	return qml.NewContext(env, snapshot)
}

func runCheck(t *testing.T, src string, opts Options) []diag.Diagnostic {
	t.Helper()
	doc := parseDoc(t, "app/Main.qml", src)
	return New(doc, newContext(t, nil), opts).Run()
}

type wantDiag struct {
	sev  diag.Severity
	code diag.Code
	msg  string
}

func assertDiags(t *testing.T, got []diag.Diagnostic, want []wantDiag) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d diagnostics, want %d: %+v", len(got), len(want), got)
	}
	for i, w := range want {
		g := got[i]
		if g.Severity != w.sev || g.Code != w.code || g.Message != w.msg {
			t.Errorf("diagnostic %d = (%v, %v, %q), want (%v, %v, %q)",
				i, g.Severity, g.Code, g.Message, w.sev, w.code, w.msg)
		}
	}
}

func TestChecker_CleanDocument(t *testing.T) {
	src := `import QtQuick 1.0

Rectangle {
    id: root
    width: 100
    height: 100
    color: "red"
    anchors.leftMargin: 4
    anchors.left: parent.left

    Text {
        text: "hello"
        horizontalAlignment: "AlignLeft"
        font.pixelSize: 14
    }
}
`
	if got := runCheck(t, src, Options{}); len(got) != 0 {
		t.Fatalf("clean document produced diagnostics: %+v", got)
	}
}

func TestChecker_IDBinding(t *testing.T) {
	tests := []struct {
		name string
		decl string
		want []wantDiag
	}{
		{"lower identifier", `id: root`, nil},
		{
			"string literal", `id: "root"`,
			[]wantDiag{{diag.SevWarning, diag.SemaIDStringLiteral, "using string literals for ids is discouraged"}},
		},
		{
			"upper identifier", `id: Root`,
			[]wantDiag{{diag.SevError, diag.SemaIDNotLowerCase, "ids must be lower case"}},
		},
		{
			"upper string literal", `id: "Root"`,
			[]wantDiag{
				{diag.SevWarning, diag.SemaIDStringLiteral, "using string literals for ids is discouraged"},
				{diag.SevError, diag.SemaIDNotLowerCase, "ids must be lower case"},
			},
		},
		{
			"number literal", `id: 42`,
			[]wantDiag{{diag.SevError, diag.SemaExpectedID, "expected id"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := runCheck(t, "Rectangle { "+tt.decl+" }", Options{})
			assertDiags(t, got, tt.want)
		})
	}
}

func TestChecker_AssignmentRules(t *testing.T) {
	tests := []struct {
		name string
		body string
		want []wantDiag
	}{
		{
			"number gets boolean literal", `width: true`,
			[]wantDiag{{diag.SevError, diag.SemaNumberExpected, "numerical value expected"}},
		},
		{"number gets number", `width: 100`, nil},
		{"number gets negated number", `width: -100`, nil},
		{
			"boolean gets number", `visible: 1`,
			[]wantDiag{{diag.SevError, diag.SemaBooleanExpected, "boolean value expected"}},
		},
		{
			"boolean gets negated number", `visible: -1`,
			[]wantDiag{{diag.SevError, diag.SemaBooleanExpected, "boolean value expected"}},
		},
		{
			"boolean gets string", `visible: "yes"`,
			[]wantDiag{{diag.SevError, diag.SemaBooleanExpected, "boolean value expected"}},
		},
		{"boolean gets boolean", `visible: false`, nil},
		{
			"string gets number", `state: 12`,
			[]wantDiag{{diag.SevError, diag.SemaStringExpected, "string value expected"}},
		},
		{
			"string gets boolean", `state: true`,
			[]wantDiag{{diag.SevError, diag.SemaStringExpected, "string value expected"}},
		},
		{"string gets string", `state: "on"`, nil},
		{"color gets named color", `color: "red"`, nil},
		{"color gets alpha hex", `color: "#80FF0000"`, nil},
		{
			"color gets bad alpha hex", `color: "#ZZFF0000"`,
			[]wantDiag{{diag.SevError, diag.SemaInvalidColor, "not a valid color"}},
		},
		{
			"color gets nonsense string", `color: "definitely-not-a-color"`,
			[]wantDiag{{diag.SevError, diag.SemaInvalidColor, "not a valid color"}},
		},
		{
			"color gets number", `color: 12`,
			[]wantDiag{{diag.SevError, diag.SemaStringExpected, "string value expected"}},
		},
		{"anchor line gets anchor line", `anchors.left: parent.left`, nil},
		{
			"anchor line gets number", `anchors.left: 10`,
			[]wantDiag{{diag.SevError, diag.SemaExpectedAnchorLine, "expected anchor line"}},
		},
		{
			"enum gets unknown key", `transformOrigin: "Nowhere"`,
			[]wantDiag{{diag.SevError, diag.SemaUnknownEnumValue, "unknown value for enum"}},
		},
		{"enum gets valid key", `transformOrigin: "Center"`, nil},
		{"enum gets number", `transformOrigin: 3`, nil},
		{
			"enum gets boolean", `transformOrigin: true`,
			[]wantDiag{{diag.SevError, diag.SemaEnumValueType, "enum value is not a string or number"}},
		},
		{
			"undetermined rhs is skipped", `width: someUnknownName`,
			nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := runCheck(t, "Rectangle { "+tt.body+" }", Options{})
			assertDiags(t, got, tt.want)
		})
	}
}

func TestChecker_EnumUndefinedWarning(t *testing.T) {
	// onClicked is script-typed, so it evaluates to undefined; the outer
	// MouseArea scope is visible from the nested Text element.
	src := `MouseArea {
    Text {
        horizontalAlignment: onClicked
    }
}
`
	got := runCheck(t, src, Options{})
	assertDiags(t, got, []wantDiag{
		{diag.SevWarning, diag.SemaMaybeUndefined, "value might be 'undefined'"},
	})
}

func TestChecker_URLBindings(t *testing.T) {
	t.Run("remote url untouched", func(t *testing.T) {
		got := runCheck(t, `Image { source: "http://example.com/x.png" }`, Options{})
		assertDiags(t, got, nil)
	})

	t.Run("invalid url", func(t *testing.T) {
		got := runCheck(t, `Image { source: "%zz" }`, Options{})
		assertDiags(t, got, []wantDiag{
			{diag.SevError, diag.SemaInvalidURL, "not a valid url"},
		})
	})

	t.Run("missing relative file", func(t *testing.T) {
		got := runCheck(t, `Image { source: "does-not-exist.png" }`, Options{})
		assertDiags(t, got, []wantDiag{
			{diag.SevError, diag.SemaFileMissing, "file or directory does not exist"},
		})
	})

	t.Run("existing relative file", func(t *testing.T) {
		dir := t.TempDir()
		if err := os.WriteFile(filepath.Join(dir, "ok.png"), []byte{0}, 0o644); err != nil {
			t.Fatal(err)
		}
		doc := parseDoc(t, filepath.Join(dir, "Main.qml"), `Image { source: "ok.png" }`)
		got := New(doc, newContext(t, nil), Options{}).Run()
		assertDiags(t, got, nil)
	})
}

func TestChecker_PropertyResolution(t *testing.T) {
	tests := []struct {
		name string
		body string
		want []wantDiag
	}{
		{
			"unknown property", `colr: "red"`,
			[]wantDiag{{diag.SevError, diag.SemaInvalidPropertyName, "'colr' is not a valid property name"}},
		},
		{
			"non-object member chain stops after one error", `width.foo.bar: 1`,
			[]wantDiag{{diag.SevError, diag.SemaNoMembers, "'width' does not have members"}},
		},
		{
			"not a member", `anchors.nonsense: 1`,
			[]wantDiag{{diag.SevError, diag.SemaNotAMember, "'nonsense' is not a member of 'Anchors'"}},
		},
		{"attached property", `Keys.enabled: true`, nil},
		{
			"unknown attached qualifier", `Blah.enabled: true`,
			[]wantDiag{{diag.SevError, diag.SemaInvalidPropertyName, "'Blah' is not a valid property name"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := runCheck(t, "Rectangle { "+tt.body+" }", Options{})
			assertDiags(t, got, tt.want)
		})
	}
}

func TestChecker_GroupedProperty(t *testing.T) {
	t.Run("resolved group", func(t *testing.T) {
		got := runCheck(t, `Rectangle { anchors { leftMargin: 4 } }`, Options{})
		assertDiags(t, got, nil)
	})

	t.Run("unknown group", func(t *testing.T) {
		got := runCheck(t, `Rectangle { anchrs { leftMargin: 4 } }`, Options{})
		assertDiags(t, got, []wantDiag{
			{diag.SevError, diag.SemaInvalidPropertyName, "'anchrs' is not a valid property name"},
		})
	})

	t.Run("group members are not descended into", func(t *testing.T) {
		// Matches the reference behavior: a grouped-property block is
		// resolved as a property and its body is skipped.
		got := runCheck(t, `Rectangle { anchors { nonsense: 1 } }`, Options{})
		assertDiags(t, got, nil)
	})
}

func TestChecker_UnknownType(t *testing.T) {
	src := `Rectangle {
    Bogus {
        colr: 1
        width: true
    }
    width: true
}
`
	t.Run("reported once, members suppressed", func(t *testing.T) {
		got := runCheck(t, src, Options{})
		assertDiags(t, got, []wantDiag{
			{diag.SevError, diag.SemaUnknownType, "unknown type"},
			// The sibling binding after the bad element still checks.
			{diag.SevError, diag.SemaNumberExpected, "numerical value expected"},
		})
	})

	t.Run("suppressed by option", func(t *testing.T) {
		got := runCheck(t, src, Options{IgnoreTypeErrors: true})
		assertDiags(t, got, []wantDiag{
			{diag.SevError, diag.SemaNumberExpected, "numerical value expected"},
		})
	})
}

func TestChecker_ArrayBinding(t *testing.T) {
	src := `Rectangle {
    states: [
        State { name: "on" },
        State { nam: "off" }
    ]
}
`
	got := runCheck(t, src, Options{})
	assertDiags(t, got, []wantDiag{
		{diag.SevError, diag.SemaInvalidPropertyName, "'nam' is not a valid property name"},
	})
}

func TestChecker_ObjectBindingTarget(t *testing.T) {
	got := runCheck(t, `Rectangle { bordr: Pen { width: 2 } }`, Options{})
	assertDiags(t, got, []wantDiag{
		{diag.SevError, diag.SemaInvalidPropertyName, "'bordr' is not a valid property name"},
	})
}

func TestChecker_ComponentFromSnapshot(t *testing.T) {
	snapshot := qml.NewSnapshot()
	snapshot.Insert(parseDoc(t, "app/Badge.qml", `Rectangle { width: 20 }`))

	doc := parseDoc(t, "app/Main.qml", `Item { Badge { color: 12 } }`)
	got := New(doc, newContext(t, snapshot), Options{}).Run()
	assertDiags(t, got, []wantDiag{
		{diag.SevError, diag.SemaStringExpected, "string value expected"},
	})
}

func TestChecker_ScriptBindingResolution(t *testing.T) {
	src := `Rectangle {
    width: nonsense
    height: parent.nonsense
    opacity: width.foo
}
`
	t.Run("off by default", func(t *testing.T) {
		got := runCheck(t, src, Options{})
		assertDiags(t, got, nil)
	})

	t.Run("enabled", func(t *testing.T) {
		got := runCheck(t, src, Options{CheckScriptBindings: true})
		assertDiags(t, got, []wantDiag{
			{diag.SevError, diag.SemaUnknownIdentifier, "unknown identifier"},
			{diag.SevError, diag.SemaUnknownMember, "unknown member"},
			{diag.SevError, diag.SemaNoMembers, "does not have members"},
		})
	})
}

func TestChecker_FunctionScopes(t *testing.T) {
	src := `Rectangle {
    function calc(a, b) {
        a
        missing
    }
}
`
	t.Run("params resolve under the function frame", func(t *testing.T) {
		got := runCheck(t, src, Options{CheckScriptBindings: true})
		assertDiags(t, got, []wantDiag{
			{diag.SevError, diag.SemaUnknownIdentifier, "unknown identifier"},
		})
	})

	t.Run("params invisible outside", func(t *testing.T) {
		outer := `Rectangle {
    function calc(a) { a }
    width: a
}
`
		got := runCheck(t, outer, Options{CheckScriptBindings: true})
		assertDiags(t, got, []wantDiag{
			{diag.SevError, diag.SemaUnknownIdentifier, "unknown identifier"},
		})
	})
}

func TestChecker_ScopeBalance(t *testing.T) {
	srcs := map[string]string{
		"clean":        `Rectangle { Text { text: "x" } }`,
		"unknown type": `Rectangle { Bogus { Inner { } } }`,
		"malformed":    `Rectangle { width: ; Text { text: } `,
	}

	for name, src := range srcs {
		t.Run(name, func(t *testing.T) {
			doc := parseDoc(t, "app/Main.qml", src)
			ctx := newContext(t, nil)
			checker := New(doc, ctx, Options{})
			checker.Run()

			chain := ctx.ScopeChain()
			if len(chain.QMLScopeObjects) != 0 || len(chain.JSScopes) != 0 {
				t.Errorf("scope chain not restored: %d objects, %d js frames",
					len(chain.QMLScopeObjects), len(chain.JSScopes))
			}
		})
	}
}

func TestChecker_Idempotent(t *testing.T) {
	src := `Rectangle {
    id: "root"
    width: true
    colr: 1
    Bogus { }
}
`
	doc := parseDoc(t, "app/Main.qml", src)
	ctx := newContext(t, nil)
	checker := New(doc, ctx, Options{})

	first := append([]diag.Diagnostic(nil), checker.Run()...)
	second := checker.Run()
	if !reflect.DeepEqual(first, second) {
		t.Errorf("runs differ:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestChecker_TraversalOrder(t *testing.T) {
	src := `Rectangle {
    width: true
    Text {
        text: 12
    }
    visible: 1
}
`
	got := runCheck(t, src, Options{})
	assertDiags(t, got, []wantDiag{
		{diag.SevError, diag.SemaNumberExpected, "numerical value expected"},
		{diag.SevError, diag.SemaStringExpected, "string value expected"},
		{diag.SevError, diag.SemaBooleanExpected, "boolean value expected"},
	})
}

func TestChecker_MaxDiagnostics(t *testing.T) {
	src := `Rectangle {
    width: true
    visible: 1
    state: 12
}
`
	got := runCheck(t, src, Options{MaxDiagnostics: 2})
	if len(got) != 2 {
		t.Fatalf("cap ignored: got %d diagnostics", len(got))
	}
}
