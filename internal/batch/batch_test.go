package batch

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/law-makers/couleur/pkg/couleur"
)

const yamlDoc = `
entries:
  - text: testing
    color: Blue
    styles: [strikethrough, underline]
  - text: testing
    rgb: [200, 55, 55]
    styles: [strikethrough, underline, italic]
  - text: testing
    color: nope
    styles: [bold]
`

const tomlDoc = `
[[entries]]
text = "testing"
color = "Blue"
styles = ["strikethrough", "underline"]

[[entries]]
text = "testing"
rgb = [200, 55, 55]
styles = ["strikethrough", "underline", "italic"]

[[entries]]
text = "testing"
color = "nope"
styles = ["bold"]
`

var wantRendered = []string{
	"\x1b[4;9;34mtesting\x1b[m",
	"\x1b[3;4;9;38;2;200;55;55mtesting\x1b[m",
	"\x1b[1;0mtesting\x1b[m",
}

func rendered(texts []couleur.Text) []string {
	out := make([]string, len(texts))
	for i, t := range texts {
		out[i] = t.Render()
	}
	return out
}

func TestDecode_YAML(t *testing.T) {
	doc, err := Decode(strings.NewReader(yamlDoc), FormatYAML)
	require.NoError(t, err)
	require.Len(t, doc.Entries, 3)

	assert.Equal(t, couleur.ColorBlue, doc.Entries[0].Decorate().Color())
	assert.Equal(t, couleur.ColorClear, doc.Entries[2].Decorate().Color())
	assert.Equal(t, []string{"nope"}, doc.Entries[2].UnknownNames())
	assert.Equal(t, wantRendered, rendered(doc.Texts()))
}

func TestDecode_TOML(t *testing.T) {
	doc, err := Decode(strings.NewReader(tomlDoc), FormatTOML)
	require.NoError(t, err)
	require.Len(t, doc.Entries, 3)

	assert.Equal(t, wantRendered, rendered(doc.Texts()))
}

func TestDecode_FormatsAgree(t *testing.T) {
	y, err := Decode(strings.NewReader(yamlDoc), FormatYAML)
	require.NoError(t, err)
	tm, err := Decode(strings.NewReader(tomlDoc), FormatTOML)
	require.NoError(t, err)

	yt, tt := y.Texts(), tm.Texts()
	require.Len(t, tt, len(yt))
	for i := range yt {
		assert.True(t, yt[i].Equal(tt[i]), "entry %d differs", i)
	}
}

func TestDecode_EmptyYAML(t *testing.T) {
	doc, err := Decode(strings.NewReader(""), FormatYAML)
	require.NoError(t, err)
	assert.Empty(t, doc.Texts())
}

func TestDecode_InvalidRGB(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"too few", "entries:\n  - text: x\n    rgb: [1, 2]\n"},
		{"out of range", "entries:\n  - text: x\n    rgb: [1, 2, 300]\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.doc), FormatYAML)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidEntry))
			assert.True(t, errors.Is(err, &BatchError{Code: ErrCodeValidation}))

			var be *BatchError
			require.True(t, errors.As(err, &be))
			assert.Equal(t, 0, be.Index)
		})
	}
}

func TestDecode_Malformed(t *testing.T) {
	_, err := Decode(strings.NewReader("entries: [unclosed"), FormatYAML)
	assert.ErrorIs(t, err, ErrDecode)

	_, err = Decode(strings.NewReader("[[entries]\n"), FormatTOML)
	assert.ErrorIs(t, err, ErrDecode)

	_, err = Decode(strings.NewReader(""), Format("xml"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("YML")
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, f)

	f, err = ParseFormat("toml")
	require.NoError(t, err)
	assert.Equal(t, FormatTOML, f)

	_, err = ParseFormat("json")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestDetectFormat(t *testing.T) {
	assert.Equal(t, FormatTOML, DetectFormat("styles.toml"))
	assert.Equal(t, FormatYAML, DetectFormat("styles.yaml"))
	assert.Equal(t, FormatYAML, DetectFormat("styles.yml"))
	assert.Equal(t, FormatYAML, DetectFormat("-"))
	assert.Equal(t, FormatYAML, DetectFormat("styles.txt"))
}

func TestBatchError_Message(t *testing.T) {
	err := newError(ErrCodeValidation, 2, "bad rgb", ErrInvalidEntry)
	assert.Equal(t, "VALIDATION: entry 2: bad rgb: invalid entry", err.Error())

	err = newError(ErrCodeFormat, -1, "xml", nil)
	assert.Equal(t, "FORMAT: xml", err.Error())
}

func TestEntry_UnknownNames(t *testing.T) {
	doc, err := Decode(strings.NewReader("entries:\n  - text: a\n    color: Clear\n    styles: [BOLD, 7, clear, wavy]\n"), FormatYAML)
	require.NoError(t, err)
	require.Len(t, doc.Entries, 1)

	e := doc.Entries[0]
	assert.Equal(t, []string{"7", "wavy"}, e.UnknownNames())
	assert.Equal(t, "\x1b[0;1;0ma\x1b[m", e.Decorate().Render())
}

func TestEntry_UnknownNames_None(t *testing.T) {
	e := Entry{Text: "a", Color: "RED", Styles: []string{"Italic"}}
	assert.Empty(t, e.UnknownNames())

	e = Entry{Text: "a", RGB: []int{1, 2, 3}}
	assert.Empty(t, e.UnknownNames())
}
