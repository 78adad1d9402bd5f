package core

import "strconv"

// Color is the foreground color of a screen cell. Games pick from this
// palette; the platform layer asks each color for its ANSI code.
type Color uint8

// The zero value renders with the terminal's own foreground.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange // the L piece; no basic ANSI equivalent
	ColorGray   // borders, labels and empty board cells

	colorCount
)

// palette is indexed by Color. code is the ANSI 256-color index, or -1 for
// the terminal default.
var palette = [colorCount]struct {
	name string
	code int
}{
	ColorDefault:       {"default", -1},
	ColorRed:           {"red", 1},
	ColorGreen:         {"green", 2},
	ColorYellow:        {"yellow", 3},
	ColorBlue:          {"blue", 4},
	ColorMagenta:       {"magenta", 5},
	ColorCyan:          {"cyan", 6},
	ColorWhite:         {"white", 7},
	ColorBrightRed:     {"bright red", 9},
	ColorBrightGreen:   {"bright green", 10},
	ColorBrightYellow:  {"bright yellow", 11},
	ColorBrightBlue:    {"bright blue", 12},
	ColorBrightMagenta: {"bright magenta", 13},
	ColorBrightCyan:    {"bright cyan", 14},
	ColorBrightWhite:   {"bright white", 15},
	ColorOrange:        {"orange", 208},
	ColorGray:          {"gray", 245},
}

// Colors lists every palette color in order.
func Colors() []Color {
	out := make([]Color, colorCount)
	for i := range out {
		out[i] = Color(i)
	}
	return out
}

// Valid reports whether c is a palette color.
func (c Color) Valid() bool {
	return c < colorCount
}

// ANSI returns the 256-color code of c as a string, or "" for the terminal
// default and for values outside the palette.
func (c Color) ANSI() string {
	if !c.Valid() || palette[c].code < 0 {
		return ""
	}
	return strconv.Itoa(palette[c].code)
}

// Bright returns the bright variant of a basic color. Every other color is
// returned as is.
func (c Color) Bright() Color {
	if c >= ColorRed && c <= ColorWhite {
		return c + (ColorBrightRed - ColorRed)
	}
	return c
}

func (c Color) String() string {
	if !c.Valid() {
		return "Color(" + strconv.Itoa(int(c)) + ")"
	}
	return palette[c].name
}
