package lexer

import (
	"testing"

	"qmlcheck/internal/source"
	"qmlcheck/internal/token"
)

func lexAll(t *testing.T, src string) []token.Token {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.qml", []byte(src))
	lx := New(fs.Get(id), Options{})

	var toks []token.Token
	for {
		tok := lx.Next()
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			return toks
		}
	}
}

func TestLexer_Tokens(t *testing.T) {
	tests := []struct {
		name  string
		src   string
		kinds []token.Kind
		texts []string
	}{
		{
			name:  "simple binding",
			src:   "width: 100",
			kinds: []token.Kind{token.Ident, token.Colon, token.NumberLit, token.EOF},
			texts: []string{"width", ":", "100", ""},
		},
		{
			name:  "object definition",
			src:   "Rectangle { }",
			kinds: []token.Kind{token.Ident, token.LBrace, token.RBrace, token.EOF},
			texts: []string{"Rectangle", "{", "}", ""},
		},
		{
			name:  "string literal strips quotes",
			src:   `color: "#FF0000"`,
			kinds: []token.Kind{token.Ident, token.Colon, token.StringLit, token.EOF},
			texts: []string{"color", ":", "#FF0000", ""},
		},
		{
			name:  "booleans are keywords",
			src:   "visible: true; clip: false",
			kinds: []token.Kind{token.Ident, token.Colon, token.KwTrue, token.Semicolon, token.Ident, token.Colon, token.KwFalse, token.EOF},
			texts: []string{"visible", ":", "true", ";", "clip", ":", "false", ""},
		},
		{
			name:  "dotted qualified id",
			src:   "anchors.left",
			kinds: []token.Kind{token.Ident, token.Dot, token.Ident, token.EOF},
			texts: []string{"anchors", ".", "left", ""},
		},
		{
			name:  "negative number",
			src:   "x: -12.5",
			kinds: []token.Kind{token.Ident, token.Colon, token.Minus, token.NumberLit, token.EOF},
			texts: []string{"x", ":", "-", "12.5", ""},
		},
		{
			name:  "comments skipped",
			src:   "a // line\n/* block */ b",
			kinds: []token.Kind{token.Ident, token.Ident, token.EOF},
			texts: []string{"a", "b", ""},
		},
		{
			name:  "function keyword",
			src:   "function f(a) { }",
			kinds: []token.Kind{token.KwFunction, token.Ident, token.LParen, token.Ident, token.RParen, token.LBrace, token.RBrace, token.EOF},
			texts: []string{"function", "f", "(", "a", ")", "{", "}", ""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks := lexAll(t, tt.src)
			if len(toks) != len(tt.kinds) {
				t.Fatalf("got %d tokens, want %d: %+v", len(toks), len(tt.kinds), toks)
			}
			for i, tok := range toks {
				if tok.Kind != tt.kinds[i] {
					t.Errorf("token %d kind = %v, want %v", i, tok.Kind, tt.kinds[i])
				}
				if tok.Text != tt.texts[i] {
					t.Errorf("token %d text = %q, want %q", i, tok.Text, tt.texts[i])
				}
			}
		})
	}
}

func TestLexer_Spans(t *testing.T) {
	toks := lexAll(t, "id: root")
	// id [0,2), :[2,3), root [4,8)
	wantSpans := []source.Span{
		{File: 0, Start: 0, End: 2},
		{File: 0, Start: 2, End: 3},
		{File: 0, Start: 4, End: 8},
	}
	for i, want := range wantSpans {
		if toks[i].Span != want {
			t.Errorf("token %d span = %+v, want %+v", i, toks[i].Span, want)
		}
	}
}

func TestLexer_UnterminatedStringReported(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.qml", []byte(`s: "abc`))

	var reports []string
	rep := reporterFunc(func(kind string, _ source.Span, _ string) {
		reports = append(reports, kind)
	})
	lx := New(fs.Get(id), Options{Reporter: rep})
	for {
		if lx.Next().Kind == token.EOF {
			break
		}
	}
	if len(reports) != 1 || reports[0] != KindUnterminatedString {
		t.Fatalf("reports = %v, want one unterminated-string", reports)
	}
}

func TestLexer_TrailingBackslashString(t *testing.T) {
	// A backslash as the final byte must not push the offset past the
	// buffer; the string is reported as unterminated like any other.
	for _, src := range []string{
		`text: "abc\`,
		`text: "\`,
		"text: \"a\\\\\\",
	} {
		fs := source.NewFileSet()
		id := fs.AddVirtual("test.qml", []byte(src))

		var reports []string
		rep := reporterFunc(func(kind string, _ source.Span, _ string) {
			reports = append(reports, kind)
		})
		lx := New(fs.Get(id), Options{Reporter: rep})
		for {
			if lx.Next().Kind == token.EOF {
				break
			}
		}
		if len(reports) != 1 || reports[0] != KindUnterminatedString {
			t.Errorf("%q: reports = %v, want one unterminated-string", src, reports)
		}
	}
}

type reporterFunc func(kind string, span source.Span, msg string)

func (f reporterFunc) Report(kind string, span source.Span, msg string) { f(kind, span, msg) }
