package parser

import (
	"strconv"

	"qmlcheck/internal/ast"
	"qmlcheck/internal/diag"
	"qmlcheck/internal/source"
	"qmlcheck/internal/token"
)

// parseExpression parses the expression subset the checker inspects:
// literals, identifier/member chains, calls, unary minus/plus, arrays
// and parenthesised expressions. Returns nil when no expression starts
// at the current token.
func (p *Parser) parseExpression() ast.Expression {
	switch p.lx.Peek().Kind {
	case token.Minus:
		minus := p.next()
		operand := p.parseExpression()
		if operand == nil {
			p.report(diag.SynExpectStatement, p.lx.Peek().Span, "expected expression after '-'")
			return nil
		}
		return &ast.UnaryMinus{
			Operand: operand,
			SpanAll: source.Between(minus.Span, operand.Span()),
		}
	case token.Plus:
		// Unary plus is a no-op; keep the operand.
		p.next()
		return p.parseExpression()
	default:
		primary := p.parsePrimary()
		if primary == nil {
			return nil
		}
		return p.continuePostfix(primary)
	}
}

func (p *Parser) parsePrimary() ast.Expression {
	switch p.lx.Peek().Kind {
	case token.StringLit:
		tok := p.next()
		return &ast.StringLiteral{Value: tok.Text, SpanAll: tok.Span}
	case token.NumberLit:
		tok := p.next()
		value, err := strconv.ParseFloat(tok.Text, 64)
		if err != nil {
			p.report(diag.SynUnexpectedToken, tok.Span, "malformed number literal")
		}
		return &ast.NumberLiteral{Text: tok.Text, Value: value, SpanAll: tok.Span}
	case token.KwTrue:
		tok := p.next()
		return &ast.TrueLiteral{SpanAll: tok.Span}
	case token.KwFalse:
		tok := p.next()
		return &ast.FalseLiteral{SpanAll: tok.Span}
	case token.Ident:
		tok := p.next()
		return &ast.Identifier{Name: tok.Text, SpanAll: tok.Span}
	case token.LParen:
		p.next()
		expr := p.parseExpression()
		p.expect(token.RParen, diag.SynUnclosedParen, "unclosed '('")
		return expr
	case token.LBracket:
		open := p.next()
		var elems []ast.Expression
		for !p.at(token.RBracket) && !p.at(token.EOF) {
			el := p.parseExpression()
			if el == nil {
				p.next()
				continue
			}
			elems = append(elems, el)
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
		return &ast.ArrayLiteral{Elements: elems, SpanAll: source.Between(open.Span, closeSpan)}
	default:
		return nil
	}
}

// continuePostfix attaches `.name` member accesses and `(args)` calls to
// an already-parsed base expression.
func (p *Parser) continuePostfix(base ast.Expression) ast.Expression {
	for {
		switch p.lx.Peek().Kind {
		case token.Dot:
			dot := p.next()
			if p.at(token.Ident) {
				name := p.next()
				base = &ast.FieldMember{
					Base:     base,
					Name:     name.Text,
					NameSpan: name.Span,
					SpanAll:  source.Between(base.Span(), name.Span),
				}
				continue
			}
			// "base." with nothing behind the dot; keep an empty-name
			// member so the checker can bail out silently.
			base = &ast.FieldMember{
				Base:     base,
				NameSpan: source.Span{File: dot.Span.File, Start: dot.Span.End, End: dot.Span.End},
				SpanAll:  source.Between(base.Span(), dot.Span),
			}
			return base
		case token.LParen:
			open := p.next()
			call := &ast.Call{Callee: base}
			for !p.at(token.RParen) && !p.at(token.EOF) {
				arg := p.parseExpression()
				if arg == nil {
					p.next()
					continue
				}
				call.Args = append(call.Args, arg)
				if p.at(token.Comma) {
					p.next()
				}
			}
			closeSpan := open.Span
			if p.at(token.RParen) {
				closeSpan = p.next().Span
			} else {
				p.report(diag.SynUnclosedParen, open.Span, "unclosed '('")
			}
			call.SpanAll = source.Between(base.Span(), closeSpan)
			base = call
		default:
			return base
		}
	}
}

// qualifiedIDToExpression rebuilds an identifier/member chain from a
// qualified id that turned out to start an expression.
func qualifiedIDToExpression(id *ast.QualifiedID) ast.Expression {
	var expr ast.Expression
	for i, seg := range id.Segments {
		if i == 0 {
			expr = &ast.Identifier{Name: seg.Name, SpanAll: seg.NameSpan}
			continue
		}
		expr = &ast.FieldMember{
			Base:     expr,
			Name:     seg.Name,
			NameSpan: seg.NameSpan,
			SpanAll:  source.Between(expr.Span(), seg.NameSpan),
		}
	}
	return expr
}
