// internal/cli/list.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/law-makers/couleur/internal/app"
	"github.com/law-makers/couleur/internal/ui"
	"github.com/law-makers/couleur/internal/utils/output"
	"github.com/law-makers/couleur/pkg/couleur"
	"github.com/law-makers/couleur/pkg/models"
)

func newListCmd() *cobra.Command {
	var sample string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show every named color and style",
		Example: `  couleur list
  couleur list --sample "The quick brown fox"
  couleur list --format csv`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := GetAppFromCmd(cmd)
			if a == nil {
				return fmt.Errorf("application not initialized")
			}
			return runList(a, sample)
		},
	}

	cmd.Flags().StringVar(&sample, "sample", "sample", "Text used for the sample column")
	return cmd
}

func runList(a *app.Application, sample string) error {
	var colors, styles []output.Row
	for _, c := range couleur.Colors() {
		colors = append(colors, output.Row{
			Label:  c.String(),
			Code:   c.Code(),
			Sample: couleur.WithColor(sample, c),
		})
	}
	for _, s := range couleur.Styles() {
		styles = append(styles, output.Row{
			Label:  s.String(),
			Code:   s.Code(),
			Sample: couleur.WithStyle(sample, s),
		})
	}

	if a.Config.Format != models.FormatText {
		texts := make([]couleur.Text, 0, len(colors)+len(styles))
		for _, r := range append(colors, styles...) {
			texts = append(texts, r.Sample)
		}
		return emit(a, texts)
	}

	if _, err := fmt.Fprintf(a.Out, "%s\n", ui.Heading("Colors")); err != nil {
		return err
	}
	if err := output.WriteTable(a.Out, colors, a.Format); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(a.Out, "\n%s\n", ui.Heading("Styles")); err != nil {
		return err
	}
	return output.WriteTable(a.Out, styles, a.Format)
}
