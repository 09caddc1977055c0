package config

import "github.com/law-makers/couleur/pkg/models"

// Default constants for application configuration
const (
	DefaultLogLevel = "warn"
	DefaultJSONLog  = false
	DefaultFormat   = models.FormatText
	DefaultEscape   = false
	DefaultColor    = "clear"
)

// Environment variables read by Load
const (
	EnvLogLevel = "COULEUR_LOG_LEVEL"
	EnvColor    = "COULEUR_COLOR"
	EnvStyles   = "COULEUR_STYLES"
)
