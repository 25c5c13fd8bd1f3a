package core

// Color is a foreground colour for a screen cell, mapped to ANSI 256-colour
// codes by the platform renderer.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorGray
	ColorOrange
	ColorGold
)

// Attr is a set of text attributes for a screen cell.
type Attr uint8

const (
	AttrBold Attr = 1 << iota
	AttrReverse
	AttrBlink
)

// Has reports whether every attribute in mask is set.
func (a Attr) Has(mask Attr) bool {
	return a&mask == mask
}

// Style is the visual style of a cell.
type Style struct {
	Color Color
	Attr  Attr
}

// Plain is the default style.
var Plain = Style{}

// Fg returns a style with only a foreground colour.
func Fg(c Color) Style {
	return Style{Color: c}
}

// With returns a copy of s with the given attributes added.
func (s Style) With(a Attr) Style {
	s.Attr |= a
	return s
}
