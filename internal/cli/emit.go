package cli

import (
	"fmt"

	"github.com/law-makers/couleur/internal/app"
	"github.com/law-makers/couleur/internal/utils/output"
	"github.com/law-makers/couleur/pkg/couleur"
	"github.com/law-makers/couleur/pkg/models"
)

// emit prints texts in the configured output format
func emit(a *app.Application, texts []couleur.Text) error {
	switch a.Config.Format {
	case models.FormatJSON, models.FormatCSV:
		renderings := make([]models.Rendering, 0, len(texts))
		for _, t := range texts {
			renderings = append(renderings, models.FromText(t))
		}
		if a.Config.Format == models.FormatJSON {
			return output.WriteJSON(a.Out, renderings)
		}
		return output.WriteCSV(a.Out, renderings)
	default:
		for _, t := range texts {
			if _, err := fmt.Fprintln(a.Out, a.Format(t)); err != nil {
				return err
			}
		}
		return nil
	}
}
