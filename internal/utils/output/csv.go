package output

import (
	"encoding/csv"
	"io"
	"strings"

	"github.com/law-makers/couleur/pkg/models"
)

// WriteCSV writes one row per rendering. Returns an error on failure.
func WriteCSV(w io.Writer, renderings []models.Rendering) error {
	writer := csv.NewWriter(w)

	if err := writer.Write([]string{"text", "color", "code", "styles", "rendered"}); err != nil {
		return err
	}
	for _, r := range renderings {
		row := []string{r.Text, r.Color, r.Code, strings.Join(r.Styles, ";"), r.Rendered}
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}
