package output

import (
	"encoding/json"
	"io"

	"github.com/law-makers/couleur/pkg/models"
)

// WriteJSON writes the renderings as an indented JSON array.
func WriteJSON(w io.Writer, renderings []models.Rendering) error {
	if renderings == nil {
		renderings = []models.Rendering{}
	}
	content, err := json.MarshalIndent(renderings, "", "  ")
	if err != nil {
		return err
	}
	content = append(content, '\n')
	_, err = w.Write(content)
	return err
}
