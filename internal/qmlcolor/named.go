package qmlcolor

func rgb(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 0xFF, valid: true}
}

// namedColors is the SVG 1.0 keyword set plus "transparent". Lookup is
// case-insensitive; keys are stored lower case.
var namedColors = map[string]Color{
	"transparent":          {valid: true},
	"aliceblue":            rgb(0xF0, 0xF8, 0xFF),
	"antiquewhite":         rgb(0xFA, 0xEB, 0xD7),
	"aqua":                 rgb(0x00, 0xFF, 0xFF),
	"aquamarine":           rgb(0x7F, 0xFF, 0xD4),
	"azure":                rgb(0xF0, 0xFF, 0xFF),
	"beige":                rgb(0xF5, 0xF5, 0xDC),
	"bisque":               rgb(0xFF, 0xE4, 0xC4),
	"black":                rgb(0x00, 0x00, 0x00),
	"blanchedalmond":       rgb(0xFF, 0xEB, 0xCD),
	"blue":                 rgb(0x00, 0x00, 0xFF),
	"blueviolet":           rgb(0x8A, 0x2B, 0xE2),
	"brown":                rgb(0xA5, 0x2A, 0x2A),
	"burlywood":            rgb(0xDE, 0xB8, 0x87),
	"cadetblue":            rgb(0x5F, 0x9E, 0xA0),
	"chartreuse":           rgb(0x7F, 0xFF, 0x00),
	"chocolate":            rgb(0xD2, 0x69, 0x1E),
	"coral":                rgb(0xFF, 0x7F, 0x50),
	"cornflowerblue":       rgb(0x64, 0x95, 0xED),
	"cornsilk":             rgb(0xFF, 0xF8, 0xDC),
	"crimson":              rgb(0xDC, 0x14, 0x3C),
	"cyan":                 rgb(0x00, 0xFF, 0xFF),
	"darkblue":             rgb(0x00, 0x00, 0x8B),
	"darkcyan":             rgb(0x00, 0x8B, 0x8B),
	"darkgoldenrod":        rgb(0xB8, 0x86, 0x0B),
	"darkgray":             rgb(0xA9, 0xA9, 0xA9),
	"darkgreen":            rgb(0x00, 0x64, 0x00),
	"darkgrey":             rgb(0xA9, 0xA9, 0xA9),
	"darkkhaki":            rgb(0xBD, 0xB7, 0x6B),
	"darkmagenta":          rgb(0x8B, 0x00, 0x8B),
	"darkolivegreen":       rgb(0x55, 0x6B, 0x2F),
	"darkorange":           rgb(0xFF, 0x8C, 0x00),
	"darkorchid":           rgb(0x99, 0x32, 0xCC),
	"darkred":              rgb(0x8B, 0x00, 0x00),
	"darksalmon":           rgb(0xE9, 0x96, 0x7A),
	"darkseagreen":         rgb(0x8F, 0xBC, 0x8F),
	"darkslateblue":        rgb(0x48, 0x3D, 0x8B),
	"darkslategray":        rgb(0x2F, 0x4F, 0x4F),
	"darkslategrey":        rgb(0x2F, 0x4F, 0x4F),
	"darkturquoise":        rgb(0x00, 0xCE, 0xD1),
	"darkviolet":           rgb(0x94, 0x00, 0xD3),
	"deeppink":             rgb(0xFF, 0x14, 0x93),
	"deepskyblue":          rgb(0x00, 0xBF, 0xFF),
	"dimgray":              rgb(0x69, 0x69, 0x69),
	"dimgrey":              rgb(0x69, 0x69, 0x69),
	"dodgerblue":           rgb(0x1E, 0x90, 0xFF),
	"firebrick":            rgb(0xB2, 0x22, 0x22),
	"floralwhite":          rgb(0xFF, 0xFA, 0xF0),
	"forestgreen":          rgb(0x22, 0x8B, 0x22),
	"fuchsia":              rgb(0xFF, 0x00, 0xFF),
	"gainsboro":            rgb(0xDC, 0xDC, 0xDC),
	"ghostwhite":           rgb(0xF8, 0xF8, 0xFF),
	"gold":                 rgb(0xFF, 0xD7, 0x00),
	"goldenrod":            rgb(0xDA, 0xA5, 0x20),
	"gray":                 rgb(0x80, 0x80, 0x80),
	"green":                rgb(0x00, 0x80, 0x00),
	"greenyellow":          rgb(0xAD, 0xFF, 0x2F),
	"grey":                 rgb(0x80, 0x80, 0x80),
	"honeydew":             rgb(0xF0, 0xFF, 0xF0),
	"hotpink":              rgb(0xFF, 0x69, 0xB4),
	"indianred":            rgb(0xCD, 0x5C, 0x5C),
	"indigo":               rgb(0x4B, 0x00, 0x82),
	"ivory":                rgb(0xFF, 0xFF, 0xF0),
	"khaki":                rgb(0xF0, 0xE6, 0x8C),
	"lavender":             rgb(0xE6, 0xE6, 0xFA),
	"lavenderblush":        rgb(0xFF, 0xF0, 0xF5),
	"lawngreen":            rgb(0x7C, 0xFC, 0x00),
	"lemonchiffon":         rgb(0xFF, 0xFA, 0xCD),
	"lightblue":            rgb(0xAD, 0xD8, 0xE6),
	"lightcoral":           rgb(0xF0, 0x80, 0x80),
	"lightcyan":            rgb(0xE0, 0xFF, 0xFF),
	"lightgoldenrodyellow": rgb(0xFA, 0xFA, 0xD2),
	"lightgray":            rgb(0xD3, 0xD3, 0xD3),
	"lightgreen":           rgb(0x90, 0xEE, 0x90),
	"lightgrey":            rgb(0xD3, 0xD3, 0xD3),
	"lightpink":            rgb(0xFF, 0xB6, 0xC1),
	"lightsalmon":          rgb(0xFF, 0xA0, 0x7A),
	"lightseagreen":        rgb(0x20, 0xB2, 0xAA),
	"lightskyblue":         rgb(0x87, 0xCE, 0xFA),
	"lightslategray":       rgb(0x77, 0x88, 0x99),
	"lightslategrey":       rgb(0x77, 0x88, 0x99),
	"lightsteelblue":       rgb(0xB0, 0xC4, 0xDE),
	"lightyellow":          rgb(0xFF, 0xFF, 0xE0),
	"lime":                 rgb(0x00, 0xFF, 0x00),
	"limegreen":            rgb(0x32, 0xCD, 0x32),
	"linen":                rgb(0xFA, 0xF0, 0xE6),
	"magenta":              rgb(0xFF, 0x00, 0xFF),
	"maroon":               rgb(0x80, 0x00, 0x00),
	"mediumaquamarine":     rgb(0x66, 0xCD, 0xAA),
	"mediumblue":           rgb(0x00, 0x00, 0xCD),
	"mediumorchid":         rgb(0xBA, 0x55, 0xD3),
	"mediumpurple":         rgb(0x93, 0x70, 0xDB),
	"mediumseagreen":       rgb(0x3C, 0xB3, 0x71),
	"mediumslateblue":      rgb(0x7B, 0x68, 0xEE),
	"mediumspringgreen":    rgb(0x00, 0xFA, 0x9A),
	"mediumturquoise":      rgb(0x48, 0xD1, 0xCC),
	"mediumvioletred":      rgb(0xC7, 0x15, 0x85),
	"midnightblue":         rgb(0x19, 0x19, 0x70),
	"mintcream":            rgb(0xF5, 0xFF, 0xFA),
	"mistyrose":            rgb(0xFF, 0xE4, 0xE1),
	"moccasin":             rgb(0xFF, 0xE4, 0xB5),
	"navajowhite":          rgb(0xFF, 0xDE, 0xAD),
	"navy":                 rgb(0x00, 0x00, 0x80),
	"oldlace":              rgb(0xFD, 0xF5, 0xE6),
	"olive":                rgb(0x80, 0x80, 0x00),
	"olivedrab":            rgb(0x6B, 0x8E, 0x23),
	"orange":               rgb(0xFF, 0xA5, 0x00),
	"orangered":            rgb(0xFF, 0x45, 0x00),
	"orchid":               rgb(0xDA, 0x70, 0xD6),
	"palegoldenrod":        rgb(0xEE, 0xE8, 0xAA),
	"palegreen":            rgb(0x98, 0xFB, 0x98),
	"paleturquoise":        rgb(0xAF, 0xEE, 0xEE),
	"palevioletred":        rgb(0xDB, 0x70, 0x93),
	"papayawhip":           rgb(0xFF, 0xEF, 0xD5),
	"peachpuff":            rgb(0xFF, 0xDA, 0xB9),
	"peru":                 rgb(0xCD, 0x85, 0x3F),
	"pink":                 rgb(0xFF, 0xC0, 0xCB),
	"plum":                 rgb(0xDD, 0xA0, 0xDD),
	"powderblue":           rgb(0xB0, 0xE0, 0xE6),
	"purple":               rgb(0x80, 0x00, 0x80),
	"red":                  rgb(0xFF, 0x00, 0x00),
	"rosybrown":            rgb(0xBC, 0x8F, 0x8F),
	"royalblue":            rgb(0x41, 0x69, 0xE1),
	"saddlebrown":          rgb(0x8B, 0x45, 0x13),
	"salmon":               rgb(0xFA, 0x80, 0x72),
	"sandybrown":           rgb(0xF4, 0xA4, 0x60),
	"seagreen":             rgb(0x2E, 0x8B, 0x57),
	"seashell":             rgb(0xFF, 0xF5, 0xEE),
	"sienna":               rgb(0xA0, 0x52, 0x2D),
	"silver":               rgb(0xC0, 0xC0, 0xC0),
	"skyblue":              rgb(0x87, 0xCE, 0xEB),
	"slateblue":            rgb(0x6A, 0x5A, 0xCD),
	"slategray":            rgb(0x70, 0x80, 0x90),
	"slategrey":            rgb(0x70, 0x80, 0x90),
	"snow":                 rgb(0xFF, 0xFA, 0xFA),
	"springgreen":          rgb(0x00, 0xFF, 0x7F),
	"steelblue":            rgb(0x46, 0x82, 0xB4),
	"tan":                  rgb(0xD2, 0xB4, 0x8C),
	"teal":                 rgb(0x00, 0x80, 0x80),
	"thistle":              rgb(0xD8, 0xBF, 0xD8),
	"tomato":               rgb(0xFF, 0x63, 0x47),
	"turquoise":            rgb(0x40, 0xE0, 0xD0),
	"violet":               rgb(0xEE, 0x82, 0xEE),
	"wheat":                rgb(0xF5, 0xDE, 0xB3),
	"white":                rgb(0xFF, 0xFF, 0xFF),
	"whitesmoke":           rgb(0xF5, 0xF5, 0xF5),
	"yellow":               rgb(0xFF, 0xFF, 0x00),
	"yellowgreen":          rgb(0x9A, 0xCD, 0x32),
}
