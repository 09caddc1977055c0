package config

import (
	"fmt"

	"github.com/law-makers/couleur/pkg/models"
)

func validate(c *Config) error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log level must be one of debug, info, warn, error (got %q)", c.LogLevel)
	}
	switch c.Format {
	case models.FormatText, models.FormatJSON, models.FormatCSV:
	default:
		return fmt.Errorf("output format must be one of text, json, csv (got %q)", c.Format)
	}
	return nil
}
