package couleur

import (
	"slices"

	"github.com/mattn/go-runewidth"
)

const (
	escape = "\x1b["
	reset  = "\x1b[m"
)

// Text is a string decorated with a color and a set of styles.
//
// Text has value semantics: EditColor, AddStyle and Clear return a new Text
// and never change a value another variable holds. The zero value is empty,
// uncolored, unstyled text.
type Text struct {
	text   string
	color  Color
	styles StyleSet
}

// FromText wraps raw with no color and no styles.
func FromText(raw string) Text {
	return Text{text: raw}
}

// WithColor is FromText(raw).EditColor(c).
func WithColor(raw string, c Color) Text {
	return FromText(raw).EditColor(c)
}

// WithStyle is FromText(raw).AddStyle(s).
func WithStyle(raw string, s Style) Text {
	return FromText(raw).AddStyle(s)
}

// EditColor returns t with its color replaced by c.
func (t Text) EditColor(c Color) Text {
	t.color = c
	return t
}

// AddStyle returns t with s added to its styles. Adding a style that is
// already present leaves the result unchanged.
func (t Text) AddStyle(s Style) Text {
	t.styles = t.styles.Clone()
	t.styles.Insert(s)
	return t
}

// Clear returns t with the color reset to ColorClear and no styles.
func (t Text) Clear() Text {
	return Text{text: t.text}
}

// Color returns the current color.
func (t Text) Color() Color {
	return t.color
}

// Styles returns the styles in canonical order.
func (t Text) Styles() []Style {
	return t.styles.Values()
}

// Raw returns the undecorated text.
func (t Text) Raw() string {
	return t.text
}

// Width returns the number of terminal cells the text occupies once
// rendered. Escape codes take no space.
func (t Text) Width() int {
	return runewidth.StringWidth(t.text)
}

// Render produces the escape-coded string:
//
//	ESC [ <style codes> ; <color code> m <text> ESC [ m
//
// The style codes are joined with ";" in canonical order. With no styles the
// segment is empty and the separator is still written.
func (t Text) Render() string {
	return escape + styleCode(t.styles) + ";" + t.color.Code() + "m" + t.text + reset
}

// String implements fmt.Stringer by rendering t.
func (t Text) String() string {
	return t.Render()
}

// Equal reports whether t and o hold the same text, color and styles.
func (t Text) Equal(o Text) bool {
	return t.text == o.text &&
		t.color == o.color &&
		slices.Equal(t.styles.items, o.styles.items)
}
