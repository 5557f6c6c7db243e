package diag

import (
	"fmt"
)

// Code is a compact numeric identifier with a stable string form.
// Ranges: 1000 lexical, 2000 syntactic, 3000 semantic, 4000 I/O.
type Code uint16

const (
	UnknownCode Code = 0

	// Lexical
	LexInfo               Code = 1000
	LexUnknownChar        Code = 1001
	LexUnterminatedString Code = 1002
	LexBadNumber          Code = 1003

	// Syntactic
	SynInfo            Code = 2000
	SynUnexpectedToken Code = 2001
	SynExpectIdent     Code = 2002
	SynExpectColon     Code = 2003
	SynUnclosedBrace   Code = 2004
	SynUnclosedBracket Code = 2005
	SynUnclosedParen   Code = 2006
	SynExpectStatement Code = 2007

	// Semantic (the checker's own taxonomy)
	SemaInfo                Code = 3000
	SemaUnknownType         Code = 3001
	SemaInvalidPropertyName Code = 3002
	SemaNoMembers           Code = 3003
	SemaNotAMember          Code = 3004
	SemaExpectedID          Code = 3005
	SemaIDStringLiteral     Code = 3006
	SemaIDNotLowerCase      Code = 3007
	SemaUnknownEnumValue    Code = 3008
	SemaMaybeUndefined      Code = 3009
	SemaEnumValueType       Code = 3010
	SemaNumberExpected      Code = 3011
	SemaBooleanExpected     Code = 3012
	SemaStringExpected      Code = 3013
	SemaInvalidURL          Code = 3014
	SemaFileMissing         Code = 3015
	SemaInvalidColor        Code = 3016
	SemaExpectedAnchorLine  Code = 3017
	SemaUnknownIdentifier   Code = 3018
	SemaUnresolvedReference Code = 3019
	SemaUnknownMember       Code = 3020

	// I/O and environment
	IOInfo          Code = 4000
	IOLoadFileError Code = 4001
)

var codeDescription = map[Code]string{
	UnknownCode: "unknown diagnostic",

	LexInfo:               "lexical info",
	LexUnknownChar:        "unknown character",
	LexUnterminatedString: "unterminated string literal",
	LexBadNumber:          "malformed number literal",

	SynInfo:            "syntax info",
	SynUnexpectedToken: "unexpected token",
	SynExpectIdent:     "expected identifier",
	SynExpectColon:     "expected ':'",
	SynUnclosedBrace:   "unclosed '{'",
	SynUnclosedBracket: "unclosed '['",
	SynUnclosedParen:   "unclosed '('",
	SynExpectStatement: "expected statement",

	SemaInfo:                "semantic info",
	SemaUnknownType:         "unknown type",
	SemaInvalidPropertyName: "not a valid property name",
	SemaNoMembers:           "value does not have members",
	SemaNotAMember:          "not a member",
	SemaExpectedID:          "expected id",
	SemaIDStringLiteral:     "string literal id",
	SemaIDNotLowerCase:      "id is not lower case",
	SemaUnknownEnumValue:    "unknown value for enum",
	SemaMaybeUndefined:      "value might be undefined",
	SemaEnumValueType:       "enum value is not a string or number",
	SemaNumberExpected:      "numerical value expected",
	SemaBooleanExpected:     "boolean value expected",
	SemaStringExpected:      "string value expected",
	SemaInvalidURL:          "not a valid url",
	SemaFileMissing:         "file or directory does not exist",
	SemaInvalidColor:        "not a valid color",
	SemaExpectedAnchorLine:  "expected anchor line",
	SemaUnknownIdentifier:   "unknown identifier",
	SemaUnresolvedReference: "could not resolve reference",
	SemaUnknownMember:       "unknown member",

	IOInfo:          "io info",
	IOLoadFileError: "failed to load file",
}

// ID renders the range-prefixed stable identifier, e.g. SEM3001.
func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("SEM%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[Code(0)]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
