package couleur

import "strings"

// Style is a text decoration. Declaration order is the canonical order in
// which styles are rendered.
type Style uint8

const (
	StyleClear Style = iota
	StyleBold
	StyleItalic
	StyleUnderline
	StyleStrikethrough
)

var styleCodes = [...]string{
	StyleClear:         "0",
	StyleBold:          "1",
	StyleItalic:        "3",
	StyleUnderline:     "4",
	StyleStrikethrough: "9",
}

var styleKeywords = [...]string{
	StyleClear:         "clear",
	StyleBold:          "bold",
	StyleItalic:        "italic",
	StyleUnderline:     "underline",
	StyleStrikethrough: "strikethrough",
}

// Styles returns every decoration except StyleClear, in canonical order.
func Styles() []Style {
	return []Style{StyleBold, StyleItalic, StyleUnderline, StyleStrikethrough}
}

// ParseStyle converts a style keyword to a Style, ignoring case.
// Unknown input, and "clear" itself, yield StyleClear.
func ParseStyle(s string) Style {
	switch strings.ToLower(s) {
	case "bold":
		return StyleBold
	case "italic":
		return StyleItalic
	case "underline":
		return StyleUnderline
	case "strikethrough":
		return StyleStrikethrough
	default:
		return StyleClear
	}
}

// Code returns the SGR parameter for the style.
func (s Style) Code() string {
	if int(s) >= len(styleCodes) {
		return styleCodes[StyleClear]
	}
	return styleCodes[s]
}

// String returns the style keyword.
func (s Style) String() string {
	if int(s) >= len(styleKeywords) {
		return styleKeywords[StyleClear]
	}
	return styleKeywords[s]
}

// MarshalText implements encoding.TextMarshaler.
func (s Style) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler with the same fallback
// as ParseStyle.
func (s *Style) UnmarshalText(text []byte) error {
	*s = ParseStyle(string(text))
	return nil
}

// StyleSet is the ordered, duplicate-free set of styles attached to a Text.
type StyleSet = UniqueSet[Style]

func styleCode(set StyleSet) string {
	codes := make([]string, 0, set.Len())
	for s := range set.All() {
		codes = append(codes, s.Code())
	}
	return strings.Join(codes, ";")
}
