// Package app provides the core application initialization and lifecycle management.
package app

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/law-makers/couleur/internal/config"
	"github.com/law-makers/couleur/pkg/couleur"
)

// logOutput receives all log lines.
var logOutput io.Writer = os.Stderr

// Application holds the dependencies shared by every CLI command.
//
// It is created once per invocation, after flags are parsed.
type Application struct {
	Config *config.Config
	Logger *zerolog.Logger
	Out    io.Writer
}

// New creates an Application writing renderings to out and logs to stderr.
//
// It performs the following initialization steps:
//   - Configures the global log level from the config
//   - Selects JSON or console log output
//   - Installs the logger as the zerolog global logger
func New(cfg *config.Config, out io.Writer) (*Application, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}
	if out == nil {
		out = os.Stdout
	}

	// Warnings about unknown names show by default; -v enables debug
	logLevel := zerolog.WarnLevel
	switch cfg.LogLevel {
	case "debug":
		logLevel = zerolog.DebugLevel
	case "info":
		logLevel = zerolog.InfoLevel
	case "error":
		logLevel = zerolog.ErrorLevel
	}
	zerolog.SetGlobalLevel(logLevel)

	var logWriter io.Writer
	if cfg.JSONLog {
		logWriter = logOutput
	} else {
		logWriter = zerolog.ConsoleWriter{Out: logOutput}
	}

	logger := zerolog.New(logWriter).With().Timestamp().Logger()
	// Commands and main log through the global logger
	log.Logger = logger

	logger.Debug().
		Str("level", cfg.LogLevel).
		Bool("json", cfg.JSONLog).
		Str("format", string(cfg.Format)).
		Msg("Logger initialized")

	return &Application{
		Config: cfg,
		Logger: &logger,
		Out:    out,
	}, nil
}

// Decorate builds a Text from raw using the named color and styles.
// Unrecognized names fall back to Clear and are logged as warnings.
func (a *Application) Decorate(raw, color string, styles []string) couleur.Text {
	txt := couleur.WithColor(raw, a.ParseColor(color))
	for _, name := range styles {
		txt = txt.AddStyle(a.ParseStyle(name))
	}
	return txt
}

// DefaultDecoration applies the configured default color and styles to raw.
func (a *Application) DefaultDecoration(raw string) couleur.Text {
	return a.Decorate(raw, a.Config.DefaultColor, a.Config.DefaultStyles)
}

// ParseColor wraps couleur.ParseColor, warning when the name was not recognized.
func (a *Application) ParseColor(name string) couleur.Color {
	c := couleur.ParseColor(name)
	if c == couleur.ColorClear && name != "" && !strings.EqualFold(name, "clear") {
		a.Logger.Warn().Str("color", name).Msg("Unrecognized color, using clear")
	}
	return c
}

// ParseStyle wraps couleur.ParseStyle, warning when the name was not recognized.
func (a *Application) ParseStyle(name string) couleur.Style {
	s := couleur.ParseStyle(name)
	if s == couleur.StyleClear && !strings.EqualFold(name, "clear") {
		a.Logger.Warn().Str("style", name).Msg("Unrecognized style, using clear")
	}
	return s
}

// Format returns the string to print for t, quoting it when --escape is set.
func (a *Application) Format(t couleur.Text) string {
	if a.Config.Escape {
		return strconv.Quote(t.Render())
	}
	return t.Render()
}
