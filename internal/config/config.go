package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/law-makers/couleur/pkg/models"
)

// Config holds application configuration values
type Config struct {
	// Logging
	LogLevel string
	JSONLog  bool

	// Output
	Format models.OutputFormat
	Escape bool

	// Decoration applied by render when no --color/--rgb/--style is given
	DefaultColor  string
	DefaultStyles []string
}

// Load builds a Config by combining defaults, environment variables, and CLI flags.
// Caller should pass the root *cobra.Command so flags can be read.
func Load(cmd *cobra.Command) (*Config, error) {
	cfg := &Config{
		LogLevel:     DefaultLogLevel,
		JSONLog:      DefaultJSONLog,
		Format:       DefaultFormat,
		Escape:       DefaultEscape,
		DefaultColor: DefaultColor,
	}

	// Override from environment variables
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}
	if v := os.Getenv(EnvColor); v != "" {
		cfg.DefaultColor = v
	}
	if v := os.Getenv(EnvStyles); v != "" {
		cfg.DefaultStyles = SplitList(v)
	}

	// Read CLI flags if provided
	if cmd != nil {
		if f := cmd.Flags().Lookup("format"); f != nil {
			if s := f.Value.String(); s != "" {
				cfg.Format = models.OutputFormat(strings.ToLower(s))
			}
		}
		if f := cmd.Flags().Lookup("escape"); f != nil {
			if f.Value.String() == "true" {
				cfg.Escape = true
			}
		}
		if f := cmd.Flags().Lookup("json"); f != nil {
			if f.Value.String() == "true" {
				cfg.JSONLog = true
			}
		}
		if f := cmd.Flags().Lookup("quiet"); f != nil {
			if f.Value.String() == "true" {
				cfg.LogLevel = "error"
			}
		}
		if f := cmd.Flags().Lookup("verbose"); f != nil {
			if f.Value.String() == "true" {
				cfg.LogLevel = "debug"
			}
		}
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// SplitList splits a comma separated list, dropping blanks
func SplitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
