package lexer

import (
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"qmlcheck/internal/source"
	"qmlcheck/internal/token"
)

// Lexer produces tokens for the QML subset grammar: identifiers, number
// and string literals, keywords, and punctuation. Comments and whitespace
// are skipped.
type Lexer struct {
	file *source.File
	off  uint32
	opts Options
	look *token.Token // 1-element lookahead buffer
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file: file,
		opts: opts,
	}
}

// Next returns the next significant token. After EOF it always returns EOF.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	lx.skipTrivia()

	if lx.eof() {
		return token.Token{Kind: token.EOF, Span: lx.emptySpan()}
	}

	ch := lx.peek()
	switch {
	case isIdentStartByte(ch) || ch >= utf8.RuneSelf:
		return lx.scanIdentOrKeyword()
	case isDec(ch):
		return lx.scanNumber()
	case ch == '"' || ch == '\'':
		return lx.scanString(ch)
	default:
		return lx.scanPunct()
	}
}

// Peek returns the next token without consuming it.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

func (lx *Lexer) eof() bool {
	return int(lx.off) >= len(lx.file.Content)
}

func (lx *Lexer) peek() byte {
	return lx.file.Content[lx.off]
}

func (lx *Lexer) peekAt(n uint32) (byte, bool) {
	idx := int(lx.off + n)
	if idx >= len(lx.file.Content) {
		return 0, false
	}
	return lx.file.Content[idx], true
}

func (lx *Lexer) emptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.off, End: lx.off}
}

func (lx *Lexer) spanFrom(start uint32) source.Span {
	return source.Span{File: lx.file.ID, Start: start, End: lx.off}
}

// skipTrivia consumes whitespace, line comments and block comments.
func (lx *Lexer) skipTrivia() {
	for !lx.eof() {
		ch := lx.peek()
		switch {
		case ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r':
			lx.off++
		case ch == '/':
			next, ok := lx.peekAt(1)
			if !ok {
				return
			}
			switch next {
			case '/':
				for !lx.eof() && lx.peek() != '\n' {
					lx.off++
				}
			case '*':
				lx.off += 2
				for !lx.eof() {
					if lx.peek() == '*' {
						if n, ok := lx.peekAt(1); ok && n == '/' {
							lx.off += 2
							break
						}
					}
					lx.off++
				}
			default:
				return
			}
		default:
			return
		}
	}
}

func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.off
	for !lx.eof() {
		ch := lx.peek()
		if isIdentContinueByte(ch) {
			lx.off++
			continue
		}
		if ch >= utf8.RuneSelf {
			r, size := utf8.DecodeRune(lx.file.Content[lx.off:])
			if r == utf8.RuneError && size == 1 {
				break
			}
			lx.off += uint32(size)
			continue
		}
		break
	}
	span := lx.spanFrom(start)
	// NFC keeps identifier text stable for case classification and
	// member lookup regardless of the source's composition form.
	text := norm.NFC.String(string(lx.file.Content[start:lx.off]))
	return token.Token{
		Kind: token.LookupKeyword(text),
		Span: span,
		Text: text,
	}
}

func (lx *Lexer) scanNumber() token.Token {
	start := lx.off
	sawDot := false
	for !lx.eof() {
		ch := lx.peek()
		switch {
		case isDec(ch):
			lx.off++
		case ch == '.' && !sawDot:
			next, ok := lx.peekAt(1)
			if !ok || !isDec(next) {
				goto done
			}
			sawDot = true
			lx.off++
		default:
			goto done
		}
	}
done:
	span := lx.spanFrom(start)
	if !lx.eof() && isIdentStartByte(lx.peek()) {
		// "12px" style: consume the tail so the parser does not see a
		// bogus identifier, and report the malformed literal.
		for !lx.eof() && isIdentContinueByte(lx.peek()) {
			lx.off++
		}
		span = lx.spanFrom(start)
		lx.report(KindBadNumber, span, "malformed number literal")
		return token.Token{Kind: token.Invalid, Span: span, Text: string(lx.file.Content[start:lx.off])}
	}
	return token.Token{Kind: token.NumberLit, Span: span, Text: string(lx.file.Content[start:lx.off])}
}

func (lx *Lexer) scanString(quote byte) token.Token {
	start := lx.off
	lx.off++ // opening quote
	textStart := lx.off
	for !lx.eof() {
		ch := lx.peek()
		if ch == '\\' {
			if _, ok := lx.peekAt(1); !ok {
				// Lone backslash at end of input: consume it and fall
				// through to the unterminated-string report.
				lx.off++
				break
			}
			lx.off += 2
			continue
		}
		if ch == quote {
			text := string(lx.file.Content[textStart:lx.off])
			lx.off++
			return token.Token{Kind: token.StringLit, Span: lx.spanFrom(start), Text: text}
		}
		if ch == '\n' {
			break
		}
		lx.off++
	}
	span := lx.spanFrom(start)
	lx.report(KindUnterminatedString, span, "unterminated string literal")
	return token.Token{Kind: token.Invalid, Span: span, Text: string(lx.file.Content[textStart:lx.off])}
}

func (lx *Lexer) scanPunct() token.Token {
	start := lx.off
	ch := lx.peek()
	lx.off++

	var kind token.Kind
	switch ch {
	case ':':
		kind = token.Colon
	case ';':
		kind = token.Semicolon
	case ',':
		kind = token.Comma
	case '.':
		kind = token.Dot
	case '{':
		kind = token.LBrace
	case '}':
		kind = token.RBrace
	case '[':
		kind = token.LBracket
	case ']':
		kind = token.RBracket
	case '(':
		kind = token.LParen
	case ')':
		kind = token.RParen
	case '-':
		kind = token.Minus
	case '+':
		kind = token.Plus
	default:
		span := lx.spanFrom(start)
		lx.report(KindUnknownChar, span, "unknown character")
		return token.Token{Kind: token.Invalid, Span: span, Text: string(ch)}
	}
	return token.Token{Kind: kind, Span: lx.spanFrom(start), Text: string(ch)}
}

func isIdentStartByte(b byte) bool {
	return b == '_' || b == '$' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isIdentContinueByte(b byte) bool {
	return isIdentStartByte(b) || isDec(b)
}

func isDec(b byte) bool {
	return b >= '0' && b <= '9'
}
