package couleur

import (
	"cmp"
	"fmt"
	"strconv"
	"strings"
)

type colorKind uint8

const (
	kindClear colorKind = iota
	kindBlack
	kindRed
	kindGreen
	kindYellow
	kindBlue
	kindMagenta
	kindCyan
	kindWhite
	kindTrueColor
)

// Color is a foreground color: one of the named palette entries or an
// arbitrary 24-bit RGB value built with TrueColor.
//
// Colors are plain values and can be compared with ==. The zero value is
// ColorClear.
type Color struct {
	kind    colorKind
	r, g, b uint8
}

// Named colors, in declaration order.
var (
	ColorClear   = Color{kind: kindClear}
	ColorBlack   = Color{kind: kindBlack}
	ColorRed     = Color{kind: kindRed}
	ColorGreen   = Color{kind: kindGreen}
	ColorYellow  = Color{kind: kindYellow}
	ColorBlue    = Color{kind: kindBlue}
	ColorMagenta = Color{kind: kindMagenta}
	ColorCyan    = Color{kind: kindCyan}
	ColorWhite   = Color{kind: kindWhite}
)

var colorNames = map[string]Color{
	"black":   ColorBlack,
	"blue":    ColorBlue,
	"clear":   ColorClear,
	"cyan":    ColorCyan,
	"green":   ColorGreen,
	"magenta": ColorMagenta,
	"red":     ColorRed,
	"white":   ColorWhite,
	"yellow":  ColorYellow,
}

var colorKeywords = [...]string{
	kindClear:   "clear",
	kindBlack:   "black",
	kindRed:     "red",
	kindGreen:   "green",
	kindYellow:  "yellow",
	kindBlue:    "blue",
	kindMagenta: "magenta",
	kindCyan:    "cyan",
	kindWhite:   "white",
}

// TrueColor returns the RGB color (r, g, b).
func TrueColor(r, g, b uint8) Color {
	return Color{kind: kindTrueColor, r: r, g: g, b: b}
}

// Colors returns the named colors in declaration order, starting with ColorClear.
func Colors() []Color {
	return []Color{
		ColorClear, ColorBlack, ColorRed, ColorGreen, ColorYellow,
		ColorBlue, ColorMagenta, ColorCyan, ColorWhite,
	}
}

// ParseColor converts a color keyword to a Color, ignoring case.
// Anything that is not a named color, including attempts to spell a true
// color, yields ColorClear.
func ParseColor(s string) Color {
	if c, ok := colorNames[strings.ToLower(s)]; ok {
		return c
	}
	return ColorClear
}

// Code returns the SGR parameter for the color.
func (c Color) Code() string {
	switch c.kind {
	case kindClear:
		return "0"
	case kindTrueColor:
		return fmt.Sprintf("38;2;%d;%d;%d", c.r, c.g, c.b)
	default:
		return strconv.Itoa(29 + int(c.kind))
	}
}

// IsTrueColor reports whether c was built with TrueColor.
func (c Color) IsTrueColor() bool {
	return c.kind == kindTrueColor
}

// RGB returns the components of a true color. Named colors report zeros.
func (c Color) RGB() (r, g, b uint8) {
	return c.r, c.g, c.b
}

// String returns the color keyword, or rgb(r,g,b) for a true color.
func (c Color) String() string {
	if c.kind == kindTrueColor {
		return fmt.Sprintf("rgb(%d,%d,%d)", c.r, c.g, c.b)
	}
	return colorKeywords[c.kind]
}

// MarshalText implements encoding.TextMarshaler for named colors. True colors
// have no keyword that ParseColor would read back, so they return an error.
func (c Color) MarshalText() ([]byte, error) {
	if c.kind == kindTrueColor {
		return nil, fmt.Errorf("couleur: true color %s has no keyword", c)
	}
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler with the same fallback
// as ParseColor, so decoding never fails.
func (c *Color) UnmarshalText(text []byte) error {
	*c = ParseColor(string(text))
	return nil
}

// Compare orders colors by declaration order. True colors sort after every
// named color and among themselves by red, green, then blue.
func Compare(a, b Color) int {
	return cmp.Or(
		cmp.Compare(a.kind, b.kind),
		cmp.Compare(a.r, b.r),
		cmp.Compare(a.g, b.g),
		cmp.Compare(a.b, b.b),
	)
}
