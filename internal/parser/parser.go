// Package parser builds the QML subset AST from a token stream.
//
// Recovery is best-effort: every error is reported through the diag
// reporter, the offending token is skipped, and parsing continues. The
// resulting tree may contain empty identifier segments or nil statements;
// downstream consumers treat those as "nothing to check".
package parser

import (
	"qmlcheck/internal/ast"
	"qmlcheck/internal/diag"
	"qmlcheck/internal/lexer"
	"qmlcheck/internal/source"
	"qmlcheck/internal/token"
)

type Options struct {
	MaxErrors uint
	Reporter  diag.Reporter
}

// Parser holds the parse state for one file.
type Parser struct {
	lx       *lexer.Lexer
	opts     Options
	errors   uint
	lastSpan source.Span // span of the last consumed token
}

// ParseDocument is the entry point for parsing one file. The lexer must
// be freshly constructed over the file being parsed.
func ParseDocument(lx *lexer.Lexer, opts Options) *ast.Program {
	p := &Parser{lx: lx, opts: opts}
	return p.parseProgram()
}

func (p *Parser) at(k token.Kind) bool {
	return p.lx.Peek().Kind == k
}

func (p *Parser) next() token.Token {
	tok := p.lx.Next()
	p.lastSpan = tok.Span
	return tok
}

func (p *Parser) expect(k token.Kind, code diag.Code, msg string) (token.Token, bool) {
	if p.at(k) {
		return p.next(), true
	}
	p.report(code, p.lx.Peek().Span, msg)
	return token.Token{Kind: token.Invalid, Span: p.lx.Peek().Span}, false
}

func (p *Parser) report(code diag.Code, span source.Span, msg string) {
	if p.opts.MaxErrors != 0 && p.errors >= p.opts.MaxErrors {
		return
	}
	p.errors++
	if p.opts.Reporter != nil {
		p.opts.Reporter.Report(code, diag.SevError, span, msg)
	}
}

func (p *Parser) parseProgram() *ast.Program {
	start := p.lx.Peek().Span
	prog := &ast.Program{}

	for p.at(token.KwImport) {
		prog.Imports = append(prog.Imports, p.parseImport())
	}

	if p.at(token.Ident) {
		typeID := p.parseQualifiedID()
		if p.at(token.LBrace) {
			prog.Root = p.parseObjectDefinition(typeID)
		} else {
			p.report(diag.SynUnclosedBrace, p.lx.Peek().Span, "expected '{' after type name")
		}
	} else if !p.at(token.EOF) {
		p.report(diag.SynUnexpectedToken, p.lx.Peek().Span, "expected a type name")
	}

	// Trailing garbage after the root object is reported once.
	if !p.at(token.EOF) {
		p.report(diag.SynUnexpectedToken, p.lx.Peek().Span, "unexpected token after root object")
	}

	prog.SpanAll = source.Between(start, p.lastSpan)
	return prog
}

func (p *Parser) parseImport() *ast.Import {
	kw := p.next() // import
	imp := &ast.Import{SpanAll: kw.Span}

	name, ok := p.expect(token.Ident, diag.SynExpectIdent, "expected module name after 'import'")
	if !ok {
		return imp
	}
	imp.Name = name.Text
	imp.SpanAll = source.Between(kw.Span, name.Span)

	if p.at(token.NumberLit) {
		ver := p.next()
		imp.Version = ver.Text
		imp.SpanAll = source.Between(kw.Span, ver.Span)
	}
	if p.at(token.Semicolon) {
		p.next()
	}
	return imp
}

// parseQualifiedID consumes `a.b.c`. A trailing dot with nothing behind
// it yields a final segment with an empty name, mirroring what editors
// produce mid-typing.
func (p *Parser) parseQualifiedID() *ast.QualifiedID {
	q := &ast.QualifiedID{}
	first := p.next() // caller guarantees Ident or keyword-as-name
	q.Segments = append(q.Segments, ast.IDSegment{Name: first.Text, NameSpan: first.Span})

	for p.at(token.Dot) {
		dot := p.next()
		if p.at(token.Ident) {
			seg := p.next()
			q.Segments = append(q.Segments, ast.IDSegment{Name: seg.Text, NameSpan: seg.Span})
			continue
		}
		// Recovery artifact: "name." with no continuation.
		q.Segments = append(q.Segments, ast.IDSegment{NameSpan: source.Span{
			File: dot.Span.File, Start: dot.Span.End, End: dot.Span.End,
		}})
		break
	}
	return q
}

func (p *Parser) parseObjectDefinition(typeID *ast.QualifiedID) *ast.ObjectDefinition {
	obj := &ast.ObjectDefinition{TypeID: typeID}
	open := p.next() // {
	obj.Members = p.parseMembers()
	obj.SpanAll = source.Between(typeID.Span(), p.lastSpan)
	if !p.at(token.RBrace) {
		p.report(diag.SynUnclosedBrace, open.Span, "unclosed '{'")
		return obj
	}
	closing := p.next()
	obj.SpanAll = source.Between(typeID.Span(), closing.Span)
	return obj
}

func (p *Parser) parseMembers() []ast.Member {
	var members []ast.Member
	for {
		switch p.lx.Peek().Kind {
		case token.RBrace, token.EOF:
			return members
		case token.Semicolon:
			p.next()
		case token.KwFunction:
			members = append(members, p.parseFunction())
		case token.Ident:
			if m := p.parseBindingOrObject(); m != nil {
				members = append(members, m)
			}
		default:
			p.report(diag.SynUnexpectedToken, p.lx.Peek().Span, "unexpected token in object body")
			p.next()
		}
	}
}

// parseBindingOrObject disambiguates after a leading qualified id:
//
//	Name { ... }        object definition (or grouped property)
//	name: Type { ... }  object binding
//	name: [ ... ]       array binding or array-literal script binding
//	name: expr          script binding
func (p *Parser) parseBindingOrObject() ast.Member {
	id := p.parseQualifiedID()

	if p.at(token.LBrace) {
		return p.parseObjectDefinition(id)
	}

	if _, ok := p.expect(token.Colon, diag.SynExpectColon, "expected ':' after property name"); !ok {
		p.next()
		return nil
	}

	switch p.lx.Peek().Kind {
	case token.Ident:
		typeID := p.parseQualifiedID()
		if p.at(token.LBrace) {
			obj := p.parseObjectDefinition(typeID)
			return &ast.ObjectBinding{
				Target:  id,
				TypeID:  obj.TypeID,
				Members: obj.Members,
				SpanAll: source.Between(id.Span(), obj.SpanAll),
			}
		}
		expr := p.continuePostfix(qualifiedIDToExpression(typeID))
		stmt := p.finishExpressionStatement(expr)
		return &ast.ScriptBinding{
			Target:    id,
			Statement: stmt,
			SpanAll:   source.Between(id.Span(), stmt.Span()),
		}
	case token.LBracket:
		return p.parseArrayOrListBinding(id)
	default:
		stmt := p.parseStatement()
		spanEnd := id.Span()
		if stmt != nil {
			spanEnd = stmt.Span()
		}
		return &ast.ScriptBinding{
			Target:    id,
			Statement: stmt,
			SpanAll:   source.Between(id.Span(), spanEnd),
		}
	}
}

// parseArrayOrListBinding handles `name: [ ... ]`. When the first element
// is an object literal the whole construct is an array binding; otherwise
// it degrades to an array-literal script binding.
func (p *Parser) parseArrayOrListBinding(id *ast.QualifiedID) ast.Member {
	open := p.next() // [

	var objects []*ast.ObjectDefinition
	var exprs []ast.Expression
	isObjectList := false
	firstItem := true

	for !p.at(token.RBracket) && !p.at(token.EOF) {
		if p.at(token.Ident) {
			typeID := p.parseQualifiedID()
			if p.at(token.LBrace) {
				if firstItem {
					isObjectList = true
				}
				obj := p.parseObjectDefinition(typeID)
				if isObjectList {
					objects = append(objects, obj)
				} else {
					p.report(diag.SynUnexpectedToken, obj.SpanAll, "object literal in expression list")
				}
			} else {
				expr := p.continuePostfix(qualifiedIDToExpression(typeID))
				exprs = append(exprs, expr)
			}
		} else {
			if expr := p.parseExpression(); expr != nil {
				exprs = append(exprs, expr)
			} else {
				p.next()
			}
		}
		firstItem = false
		if p.at(token.Comma) {
			p.next()
		}
	}

	closeSpan := p.lx.Peek().Span
	if p.at(token.RBracket) {
		closeSpan = p.next().Span
	} else {
		p.report(diag.SynUnclosedBracket, open.Span, "unclosed '['")
	}

	if isObjectList {
		return &ast.ArrayBinding{
			Target:   id,
			Elements: objects,
			SpanAll:  source.Between(id.Span(), closeSpan),
		}
	}

	lit := &ast.ArrayLiteral{
		Elements: exprs,
		SpanAll:  source.Between(open.Span, closeSpan),
	}
	stmt := &ast.ExpressionStatement{Expr: lit, SpanAll: lit.SpanAll}
	return &ast.ScriptBinding{
		Target:    id,
		Statement: stmt,
		SpanAll:   source.Between(id.Span(), closeSpan),
	}
}

func (p *Parser) parseFunction() *ast.FunctionDeclaration {
	kw := p.next() // function
	fn := &ast.FunctionDeclaration{SpanAll: kw.Span}

	if name, ok := p.expect(token.Ident, diag.SynExpectIdent, "expected function name"); ok {
		fn.Name = name.Text
		fn.NameSpan = name.Span
	}

	if _, ok := p.expect(token.LParen, diag.SynUnclosedParen, "expected '(' after function name"); ok {
		for p.at(token.Ident) {
			param := p.next()
			fn.Params = append(fn.Params, ast.Param{Name: param.Text, NameSpan: param.Span})
			if p.at(token.Comma) {
				p.next()
				continue
			}
			break
		}
		p.expect(token.RParen, diag.SynUnclosedParen, "unclosed '('")
	}

	if p.at(token.LBrace) {
		body := p.parseBlock()
		fn.Body = body.Statements
		fn.SpanAll = source.Between(kw.Span, body.SpanAll)
	} else {
		p.report(diag.SynUnclosedBrace, p.lx.Peek().Span, "expected function body")
		fn.SpanAll = source.Between(kw.Span, p.lastSpan)
	}
	return fn
}

func (p *Parser) parseBlock() *ast.BlockStatement {
	open := p.next() // {
	block := &ast.BlockStatement{SpanAll: open.Span}
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		if stmt := p.parseStatement(); stmt != nil {
			block.Statements = append(block.Statements, stmt)
		} else {
			p.next()
		}
	}
	if p.at(token.RBrace) {
		closing := p.next()
		block.SpanAll = source.Between(open.Span, closing.Span)
	} else {
		p.report(diag.SynUnclosedBrace, open.Span, "unclosed '{'")
		block.SpanAll = source.Between(open.Span, p.lastSpan)
	}
	return block
}

func (p *Parser) parseStatement() ast.Statement {
	if p.at(token.LBrace) {
		return p.parseBlock()
	}
	expr := p.parseExpression()
	if expr == nil {
		p.report(diag.SynExpectStatement, p.lx.Peek().Span, "expected statement")
		return nil
	}
	return p.finishExpressionStatement(expr)
}

func (p *Parser) finishExpressionStatement(expr ast.Expression) ast.Statement {
	span := expr.Span()
	if p.at(token.Semicolon) {
		p.next()
	}
	return &ast.ExpressionStatement{Expr: expr, SpanAll: span}
}
