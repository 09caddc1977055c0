// internal/cli/render.go
package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/law-makers/couleur/internal/config"
	"github.com/law-makers/couleur/pkg/couleur"
)

type renderOptions struct {
	color  string
	rgb    string
	styles []string
}

func newRenderCmd() *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render <text...>",
		Short: "Decorate text with a color and styles",
		Long: `Render prints the text wrapped in the escape sequence that applies the
requested foreground color and styles.

Styles are always emitted in the same order no matter how they are given, and
repeated styles are collapsed. Unknown color or style names fall back to
"clear" with a warning.

Without --color, --rgb or --style the decoration comes from the COULEUR_COLOR
and COULEUR_STYLES environment variables.`,
		Example: `  # Red text
  couleur render --color red "Hello, World!"

  # Bold, underlined blue text
  couleur render -c blue -s bold -s underline "Hello, World!"

  # True color
  couleur render --rgb 200,55,55 --style italic "Hello, World!"

  # Show the escape sequence instead of applying it
  couleur render --escape -c green ok`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, opts, args)
		},
	}

	cmd.Flags().StringVarP(&opts.color, "color", "c", "", "Color name: clear, black, red, green, yellow, blue, magenta, cyan, white")
	cmd.Flags().StringVar(&opts.rgb, "rgb", "", "True color as R,G,B (each 0-255); overrides --color")
	cmd.Flags().StringSliceVarP(&opts.styles, "style", "s", nil, "Style name: bold, italic, underline, strikethrough (repeatable)")

	return cmd
}

func runRender(cmd *cobra.Command, opts *renderOptions, args []string) error {
	a := GetAppFromCmd(cmd)
	if a == nil {
		return fmt.Errorf("application not initialized")
	}

	text := strings.Join(args, " ")

	var txt couleur.Text
	explicit := cmd.Flags().Changed("color") || cmd.Flags().Changed("rgb") || cmd.Flags().Changed("style")
	if explicit {
		txt = a.Decorate(text, opts.color, opts.styles)
	} else {
		txt = a.DefaultDecoration(text)
	}

	if opts.rgb != "" {
		c, err := parseRGB(opts.rgb)
		if err != nil {
			return fmt.Errorf("invalid --rgb: %w", err)
		}
		txt = txt.EditColor(c)
	}

	a.Logger.Debug().
		Str("color", txt.Color().String()).
		Int("styles", len(txt.Styles())).
		Int("width", txt.Width()).
		Msg("Rendering text")

	return emit(a, []couleur.Text{txt})
}

// parseRGB parses "R,G,B" into a true color
func parseRGB(s string) (couleur.Color, error) {
	parts := config.SplitList(s)
	if len(parts) != 3 {
		return couleur.ColorClear, fmt.Errorf("expected R,G,B, got %q", s)
	}

	var rgb [3]uint8
	for i, p := range parts {
		v, err := strconv.ParseUint(p, 10, 8)
		if err != nil {
			return couleur.ColorClear, fmt.Errorf("component %q: %w", p, err)
		}
		rgb[i] = uint8(v)
	}
	return couleur.TrueColor(rgb[0], rgb[1], rgb[2]), nil
}
