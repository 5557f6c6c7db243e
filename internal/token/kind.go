package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token.
	Ident
	// NumberLit represents a numeric literal.
	NumberLit
	// StringLit represents a string literal (quotes stripped in Text).
	StringLit

	// KwTrue represents the 'true' keyword.
	KwTrue // true
	// KwFalse represents the 'false' keyword.
	KwFalse // false
	// KwFunction represents the 'function' keyword.
	KwFunction // function
	// KwProperty represents the 'property' keyword.
	KwProperty // property
	// KwImport represents the 'import' keyword.
	KwImport // import
	// KwOn represents the 'on' keyword.
	KwOn // on

	// Punctuation and operators.
	Colon     // :
	Semicolon // ;
	Comma     // ,
	Dot       // .
	LBrace    // {
	RBrace    // }
	LBracket  // [
	RBracket  // ]
	LParen    // (
	RParen    // )
	Minus     // -
	Plus      // +
)

var kindNames = map[Kind]string{
	Invalid:    "invalid",
	EOF:        "eof",
	Ident:      "identifier",
	NumberLit:  "number",
	StringLit:  "string",
	KwTrue:     "true",
	KwFalse:    "false",
	KwFunction: "function",
	KwProperty: "property",
	KwImport:   "import",
	KwOn:       "on",
	Colon:      ":",
	Semicolon:  ";",
	Comma:      ",",
	Dot:        ".",
	LBrace:     "{",
	RBrace:     "}",
	LBracket:   "[",
	RBracket:   "]",
	LParen:     "(",
	RParen:     ")",
	Minus:      "-",
	Plus:       "+",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}
