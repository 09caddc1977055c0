package couleur

import (
	"encoding/json"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColorCodes(t *testing.T) {
	tests := []struct {
		color Color
		want  string
	}{
		{ColorClear, "0"},
		{ColorBlack, "30"},
		{ColorRed, "31"},
		{ColorGreen, "32"},
		{ColorYellow, "33"},
		{ColorBlue, "34"},
		{ColorMagenta, "35"},
		{ColorCyan, "36"},
		{ColorWhite, "37"},
		{TrueColor(100, 200, 100), "38;2;100;200;100"},
		{TrueColor(0, 0, 0), "38;2;0;0;0"},
		{TrueColor(255, 5, 255), "38;2;255;5;255"},
	}

	for _, tt := range tests {
		t.Run(tt.color.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.color.Code())
		})
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"red", ColorRed},
		{"RED", ColorRed},
		{"ReD", ColorRed},
		{"black", ColorBlack},
		{"Blue", ColorBlue},
		{"clear", ColorClear},
		{"CYAN", ColorCyan},
		{"green", ColorGreen},
		{"magenta", ColorMagenta},
		{"white", ColorWhite},
		{"yellow", ColorYellow},
		{"", ColorClear},
		{"purple", ColorClear},
		{" red", ColorClear},
		{"truecolor", ColorClear},
		{"rgb(1,2,3)", ColorClear},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseColor(tt.in))
		})
	}
}

func TestColorString(t *testing.T) {
	assert.Equal(t, "magenta", ColorMagenta.String())
	assert.Equal(t, "clear", Color{}.String())
	assert.Equal(t, "rgb(1,2,3)", TrueColor(1, 2, 3).String())
}

func TestColorsRoundTripThroughParse(t *testing.T) {
	for _, c := range Colors() {
		assert.Equal(t, c, ParseColor(c.String()))
	}
}

func TestTrueColorAccessors(t *testing.T) {
	c := TrueColor(10, 20, 30)
	r, g, b := c.RGB()

	assert.True(t, c.IsTrueColor())
	assert.Equal(t, [3]uint8{10, 20, 30}, [3]uint8{r, g, b})
	assert.False(t, ColorRed.IsTrueColor())
	assert.Equal(t, TrueColor(10, 20, 30), c)
}

func TestCompare(t *testing.T) {
	colors := []Color{
		TrueColor(1, 0, 0),
		ColorWhite,
		TrueColor(0, 9, 9),
		ColorClear,
		ColorRed,
		ColorBlack,
	}
	slices.SortFunc(colors, Compare)

	want := []Color{
		ColorClear,
		ColorBlack,
		ColorRed,
		ColorWhite,
		TrueColor(0, 9, 9),
		TrueColor(1, 0, 0),
	}
	assert.Equal(t, want, colors)
	assert.Zero(t, Compare(ColorBlue, ColorBlue))
}

func TestColorUnmarshalText(t *testing.T) {
	var c Color
	assert.NoError(t, c.UnmarshalText([]byte("Yellow")))
	assert.Equal(t, ColorYellow, c)

	assert.NoError(t, c.UnmarshalText([]byte("not-a-color")))
	assert.Equal(t, ColorClear, c)
}

func TestColorMarshalText(t *testing.T) {
	for _, c := range Colors() {
		text, err := c.MarshalText()
		require.NoError(t, err)

		var back Color
		require.NoError(t, back.UnmarshalText(text))
		assert.Equal(t, c, back)
	}

	_, err := TrueColor(200, 55, 55).MarshalText()
	assert.ErrorContains(t, err, "rgb(200,55,55)")
}

func TestColorMarshalJSON(t *testing.T) {
	out, err := json.Marshal(map[string]Color{"fg": ColorCyan})
	require.NoError(t, err)
	assert.JSONEq(t, `{"fg":"cyan"}`, string(out))
}
