// internal/cli/batch.go
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/law-makers/couleur/internal/batch"
	"github.com/law-makers/couleur/internal/ui"
)

func newBatchCmd() *cobra.Command {
	var input string

	cmd := &cobra.Command{
		Use:   "batch [file]",
		Short: "Render every entry of a YAML or TOML document",
		Long: `Batch reads a document listing decorated strings and renders each entry
in order. Each entry has a text, and optionally a color, an rgb triple and a
list of styles.

The format is taken from the file extension (.yaml, .yml, .toml) unless
--input is given. With no file, or "-", the document is read from stdin as YAML.`,
		Example: `  # Render a YAML document
  couleur batch styles.yaml

  # TOML from stdin
  cat styles.toml | couleur batch --input toml

  # Export the renderings as JSON
  couleur batch styles.yaml --format json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatch(cmd, args, input)
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "Document format: yaml or toml (default: from extension)")
	return cmd
}

func runBatch(cmd *cobra.Command, args []string, input string) error {
	a := GetAppFromCmd(cmd)
	if a == nil {
		return fmt.Errorf("application not initialized")
	}

	path := "-"
	if len(args) == 1 {
		path = args[0]
	}

	format := batch.DetectFormat(path)
	if input != "" {
		f, err := batch.ParseFormat(input)
		if err != nil {
			return err
		}
		format = f
	}

	var r io.Reader = cmd.InOrStdin()
	if path != "-" {
		file, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("failed to open document: %w", err)
		}
		defer file.Close()
		r = file
	}

	doc, err := batch.Decode(r, format)
	if err != nil {
		a.Logger.Error().Err(err).Str("path", path).Msg("Failed to decode batch document")
		return err
	}

	a.Logger.Debug().
		Str("path", path).
		Str("format", string(format)).
		Int("entries", len(doc.Entries)).
		Msg("Batch document decoded")

	for i, e := range doc.Entries {
		for _, name := range e.UnknownNames() {
			a.Logger.Warn().
				Int("entry", i).
				Str("name", name).
				Msg("Unrecognized color or style, using clear")
		}
	}

	if err := emit(a, doc.Texts()); err != nil {
		return err
	}

	if a.Config.LogLevel != "error" {
		fmt.Fprintln(cmd.ErrOrStderr(), ui.Success(fmt.Sprintf("Rendered %d entries", len(doc.Entries))))
	}
	return nil
}
