// internal/cli/root.go
package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/law-makers/couleur/internal/app"
	"github.com/law-makers/couleur/internal/config"
	"github.com/law-makers/couleur/internal/ui"
)

// NewRootCommand builds the couleur command tree
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "couleur",
		Short: "Decorate terminal text with colors and styles",
		Long: `Couleur wraps text in the escape sequence that gives it a foreground color
and any combination of bold, italic, underline and strikethrough.`,
		Version:       "0.1.0",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Initialize the application before running commands (skipped for -h/help)
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if GetAppFromCmd(cmd) != nil {
			return nil
		}

		cfg, err := config.Load(cmd)
		if err != nil {
			return err
		}

		appCtx, err := app.New(cfg, cmd.OutOrStdout())
		if err != nil {
			return err
		}

		SetApp(cmd, appCtx)
		return nil
	}

	config.RegisterFlags(rootCmd)

	rootCmd.AddCommand(newRenderCmd(), newListCmd(), newBatchCmd())

	// Disable the default completion command
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.SetHelpFunc(customHelpFunc)
	rootCmd.SetUsageFunc(customUsageFunc)

	return rootCmd
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	// Console logging until the application installs its configured logger
	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		log.Debug().Err(err).Msg("Command failed")
		fmt.Fprintln(os.Stderr, ui.Error("Error:"), err)
		os.Exit(1)
	}
}

// customHelpFunc provides a colorized help output
func customHelpFunc(cmd *cobra.Command, args []string) {
	out := cmd.OutOrStdout()

	// Header with command name
	fmt.Fprintf(out, "\n%s\n", ui.Title(strings.ToUpper(cmd.Name())))

	if cmd.Short != "" {
		fmt.Fprintf(out, "%s\n", cmd.Short)
	}

	if cmd.Long != "" && cmd.Long != cmd.Short {
		fmt.Fprintf(out, "\n%s\n", wrapText(cmd.Long, 80))
	}

	printUsage(out, cmd)

	if cmd.HasExample() {
		fmt.Fprintf(out, "\n%s\n", ui.Heading("Examples"))
		lastWasCommand := false
		for _, example := range strings.Split(cmd.Example, "\n") {
			trimmed := strings.TrimSpace(example)
			if trimmed == "" {
				continue
			}
			if strings.HasPrefix(trimmed, "#") {
				if lastWasCommand {
					fmt.Fprintln(out)
				}
				fmt.Fprintf(out, "  %s\n", ui.Muted(trimmed))
				lastWasCommand = false
			} else {
				fmt.Fprintf(out, "  %s\n", ui.Flag("$ "+trimmed))
				lastWasCommand = true
			}
		}
	}

	printCommands(out, cmd)

	if cmd.HasAvailableLocalFlags() {
		fmt.Fprintf(out, "\n%s\n", ui.Heading("Flags"))
		printFlagsTo(out, cmd.LocalFlags().FlagUsages())
	}

	if cmd.HasAvailableInheritedFlags() {
		fmt.Fprintf(out, "\n%s\n", ui.Heading("Global Flags"))
		printFlagsTo(out, cmd.InheritedFlags().FlagUsages())
	}

	if cmd.HasAvailableSubCommands() {
		fmt.Fprintf(out, "\nUse \"%s %s %s\" for more information about a command.\n",
			ui.Command(cmd.CommandPath()), ui.Placeholder("<command>"), ui.Flag("--help"))
	}
	fmt.Fprintln(out)
}

// customUsageFunc provides a colorized usage output
func customUsageFunc(cmd *cobra.Command) error {
	out := cmd.ErrOrStderr()

	printUsage(out, cmd)
	printCommands(out, cmd)

	if cmd.HasAvailableLocalFlags() {
		fmt.Fprintf(out, "\n%s\n", ui.Heading("Flags"))
		printFlagsTo(out, cmd.LocalFlags().FlagUsages())
	}

	fmt.Fprintf(out, "\nUse \"%s %s\" for more information.\n",
		ui.Command(cmd.CommandPath()), ui.Flag("--help"))
	return nil
}

func printUsage(out io.Writer, cmd *cobra.Command) {
	fmt.Fprintf(out, "\n%s\n", ui.Heading("Usage"))
	if cmd.Runnable() {
		fmt.Fprintf(out, "  %s\n", ui.Command(cmd.UseLine()))
	}
	if cmd.HasAvailableSubCommands() {
		fmt.Fprintf(out, "  %s %s %s\n",
			ui.Command(cmd.CommandPath()), ui.Placeholder("<command>"), ui.Muted("[flags]"))
	}
}

func printCommands(out io.Writer, cmd *cobra.Command) {
	if !cmd.HasAvailableSubCommands() {
		return
	}
	fmt.Fprintf(out, "\n%s\n", ui.Heading("Commands"))

	maxLen := 0
	var available []*cobra.Command
	for _, c := range cmd.Commands() {
		if c.IsAvailableCommand() && c.Name() != "help" {
			available = append(available, c)
			maxLen = max(maxLen, len(c.Name()))
		}
	}

	for _, c := range available {
		padding := strings.Repeat(" ", maxLen-len(c.Name())+2)
		fmt.Fprintf(out, "  %s%s%s\n", ui.Command(c.Name()), padding, ui.Muted(c.Short))
	}
}

// printFlagsTo prints flag usages with color formatting to the specified writer
func printFlagsTo(out io.Writer, flagUsages string) {
	lines := strings.Split(flagUsages, "\n")

	// Find maximum flag length for alignment
	maxFlagLen := 0
	for _, line := range lines {
		trimmed := strings.TrimLeft(line, " ")
		if strings.HasPrefix(trimmed, "-") {
			flagPart := strings.TrimSpace(strings.SplitN(trimmed, "  ", 2)[0])
			maxFlagLen = max(maxFlagLen, len(flagPart))
		}
	}
	maxFlagLen = max(maxFlagLen, 28)

	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}

		trimmed := strings.TrimLeft(line, " ")
		if !strings.HasPrefix(trimmed, "-") {
			// Continuation line
			fmt.Fprintf(out, "%s%s\n", strings.Repeat(" ", maxFlagLen+4), ui.Muted(trimmed))
			continue
		}

		parts := strings.SplitN(trimmed, "  ", 2)
		if len(parts) != 2 {
			fmt.Fprintf(out, "  %s\n", ui.Flag(trimmed))
			continue
		}
		flagPart := strings.TrimSpace(parts[0])
		descPart := strings.TrimSpace(parts[1])
		padding := strings.Repeat(" ", maxFlagLen-len(flagPart)+2)
		fmt.Fprintf(out, "  %s%s%s\n", ui.Flag(flagPart), padding, ui.Muted(descPart))
	}
}

// wrapText wraps text at the specified width while preserving paragraphs
func wrapText(text string, width int) string {
	var wrappedParagraphs []string

	for _, para := range strings.Split(text, "\n\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			continue
		}

		var lines []string
		var current strings.Builder
		for _, word := range words {
			switch {
			case current.Len() == 0:
				current.WriteString(word)
			case current.Len()+1+len(word) <= width:
				current.WriteString(" ")
				current.WriteString(word)
			default:
				lines = append(lines, current.String())
				current.Reset()
				current.WriteString(word)
			}
		}
		lines = append(lines, current.String())
		wrappedParagraphs = append(wrappedParagraphs, strings.Join(lines, "\n"))
	}

	return strings.Join(wrappedParagraphs, "\n\n")
}
