package models

import (
	"github.com/law-makers/couleur/pkg/couleur"
)

// Rendering describes one decorated string and the escape sequence it produces.
type Rendering struct {
	Text     string   `json:"text"`
	Color    string   `json:"color"`
	Code     string   `json:"code"`
	Styles   []string `json:"styles,omitempty"`
	Rendered string   `json:"rendered"`
}

// FromText captures the state of t as a Rendering.
func FromText(t couleur.Text) Rendering {
	r := Rendering{
		Text:     t.Raw(),
		Color:    t.Color().String(),
		Code:     t.Color().Code(),
		Rendered: t.Render(),
	}
	for _, s := range t.Styles() {
		r.Styles = append(r.Styles, s.String())
	}
	return r
}

// OutputFormat selects how renderings are printed.
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
	FormatCSV  OutputFormat = "csv"
)
