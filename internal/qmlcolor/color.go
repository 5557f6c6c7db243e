// Package qmlcolor validates and parses QML color strings.
//
// On top of the usual named and #RGB/#RRGGBB forms it understands the
// QML-specific 9-character "#AARRGGBB" form, where the two digits after
// '#' carry the alpha channel and the remaining six the RGB value.
package qmlcolor

import (
	"strconv"
	"strings"
)

// Color is a parsed color. The zero value is invalid; use Parse to
// obtain valid instances.
type Color struct {
	R, G, B, A uint8
	valid      bool
}

// IsValid distinguishes a real color from a failed parse.
func (c Color) IsValid() bool {
	return c.valid
}

// Parse interprets a QML color string.
//
// A 9-character string starting with '#' is treated as #AARRGGBB: the
// first two hex digits are the alpha value, and "#"+the final six
// characters must form a valid 7-character color; the parsed alpha then
// overrides that color's alpha channel. Every other input is accepted
// iff it is a valid named or hex color on its own.
func Parse(text string) Color {
	if len(text) == 9 && text[0] == '#' {
		alpha, err := strconv.ParseUint(text[1:3], 16, 8)
		if err == nil {
			name := "#" + text[3:]
			if c := direct(name); c.valid {
				c.A = uint8(alpha)
				return c
			}
			return Color{}
		}
		// Bad alpha digits: fall through to direct validation, which
		// rejects 9-character strings anyway.
	}
	return direct(text)
}

// direct parses named colors and the #RGB / #RRGGBB hex forms.
func direct(text string) Color {
	if text == "" {
		return Color{}
	}
	if text[0] == '#' {
		return parseHex(text[1:])
	}
	if c, ok := namedColors[strings.ToLower(text)]; ok {
		return c
	}
	return Color{}
}

func parseHex(digits string) Color {
	switch len(digits) {
	case 3:
		r, okR := hexNibble(digits[0])
		g, okG := hexNibble(digits[1])
		b, okB := hexNibble(digits[2])
		if !okR || !okG || !okB {
			return Color{}
		}
		return Color{R: r * 17, G: g * 17, B: b * 17, A: 0xFF, valid: true}
	case 6:
		r, okR := hexByte(digits[0:2])
		g, okG := hexByte(digits[2:4])
		b, okB := hexByte(digits[4:6])
		if !okR || !okG || !okB {
			return Color{}
		}
		return Color{R: r, G: g, B: b, A: 0xFF, valid: true}
	default:
		return Color{}
	}
}

func hexNibble(b byte) (uint8, bool) {
	switch {
	case b >= '0' && b <= '9':
		return b - '0', true
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10, true
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10, true
	}
	return 0, false
}

func hexByte(s string) (uint8, bool) {
	hi, okHi := hexNibble(s[0])
	lo, okLo := hexNibble(s[1])
	if !okHi || !okLo {
		return 0, false
	}
	return hi<<4 | lo, true
}
