package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/law-makers/couleur/pkg/couleur"
)

// Row is one line of a text table: a label, its code and a sample
type Row struct {
	Label  string
	Code   string
	Sample couleur.Text
}

// WriteTable writes rows as aligned columns. Widths are measured on the
// visible text, so escape codes in samples do not skew alignment.
func WriteTable(w io.Writer, rows []Row, format func(couleur.Text) string) error {
	labelWidth, codeWidth := 0, 0
	for _, r := range rows {
		labelWidth = max(labelWidth, runewidth.StringWidth(r.Label))
		codeWidth = max(codeWidth, runewidth.StringWidth(r.Code))
	}

	for _, r := range rows {
		_, err := fmt.Fprintf(w, "  %s%s  %s%s  %s\n",
			r.Label, pad(labelWidth, r.Label),
			r.Code, pad(codeWidth, r.Code),
			format(r.Sample))
		if err != nil {
			return err
		}
	}
	return nil
}

func pad(width int, s string) string {
	return strings.Repeat(" ", width-runewidth.StringWidth(s))
}
