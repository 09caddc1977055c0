// Package batch decodes documents that describe many decorated strings at once.
//
// A YAML document looks like:
//
//	entries:
//	  - text: warning
//	    color: yellow
//	    styles: [bold, underline]
//	  - text: custom
//	    rgb: [200, 55, 55]
//
// and the TOML equivalent uses [[entries]] tables with the same keys.
package batch

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/law-makers/couleur/pkg/couleur"
)

// Format identifies a document encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// Entry is one decorated string in a document. Color and Styles hold the
// names as written; unknown names render as clear. RGB, when present, must
// hold three components and takes precedence over Color.
type Entry struct {
	Text   string   `yaml:"text" toml:"text"`
	Color  string   `yaml:"color" toml:"color"`
	RGB    []int    `yaml:"rgb" toml:"rgb"`
	Styles []string `yaml:"styles" toml:"styles"`
}

// Document is the top-level shape of a batch file.
type Document struct {
	Entries []Entry `yaml:"entries" toml:"entries"`
}

// ParseFormat maps a format name to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	default:
		return "", newError(ErrCodeFormat, -1, name, ErrUnsupportedFormat)
	}
}

// DetectFormat picks a format from a file extension, defaulting to YAML
// for stdin and files without a recognized extension.
func DetectFormat(path string) Format {
	if f, err := ParseFormat(strings.TrimPrefix(filepath.Ext(path), ".")); err == nil {
		return f
	}
	return FormatYAML
}

// Decode reads a document in the given format.
func Decode(r io.Reader, format Format) (*Document, error) {
	var doc Document
	switch format {
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&doc); err != nil && err != io.EOF {
			return nil, newError(ErrCodeDecode, -1, "yaml", fmt.Errorf("%w: %v", ErrDecode, err))
		}
	case FormatTOML:
		if _, err := toml.NewDecoder(r).Decode(&doc); err != nil {
			return nil, newError(ErrCodeDecode, -1, "toml", fmt.Errorf("%w: %v", ErrDecode, err))
		}
	default:
		return nil, newError(ErrCodeFormat, -1, string(format), ErrUnsupportedFormat)
	}

	for i, e := range doc.Entries {
		if err := e.validate(); err != nil {
			return nil, newError(ErrCodeValidation, i, err.Error(), ErrInvalidEntry)
		}
	}
	return &doc, nil
}

func (e Entry) validate() error {
	if len(e.RGB) == 0 {
		return nil
	}
	if len(e.RGB) != 3 {
		return fmt.Errorf("rgb needs 3 components, got %d", len(e.RGB))
	}
	for _, v := range e.RGB {
		if v < 0 || v > 255 {
			return fmt.Errorf("rgb component %d out of range 0-255", v)
		}
	}
	return nil
}

// Decorate builds the decorated value the entry describes.
func (e Entry) Decorate() couleur.Text {
	c := couleur.ParseColor(e.Color)
	if len(e.RGB) == 3 {
		c = couleur.TrueColor(uint8(e.RGB[0]), uint8(e.RGB[1]), uint8(e.RGB[2]))
	}
	txt := couleur.WithColor(e.Text, c)
	for _, name := range e.Styles {
		txt = txt.AddStyle(couleur.ParseStyle(name))
	}
	return txt
}

// UnknownNames returns the color and style names that fell back to clear.
func (e Entry) UnknownNames() []string {
	var unknown []string
	if e.Color != "" && !isClear(e.Color) && couleur.ParseColor(e.Color) == couleur.ColorClear {
		unknown = append(unknown, e.Color)
	}
	for _, name := range e.Styles {
		if !isClear(name) && couleur.ParseStyle(name) == couleur.StyleClear {
			unknown = append(unknown, name)
		}
	}
	return unknown
}

func isClear(name string) bool {
	return strings.EqualFold(name, "clear")
}

// Texts builds every entry of the document, in document order.
func (d *Document) Texts() []couleur.Text {
	out := make([]couleur.Text, 0, len(d.Entries))
	for _, e := range d.Entries {
		out = append(out, e.Decorate())
	}
	return out
}
