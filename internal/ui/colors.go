// Package ui styles the CLI's own chrome (help, headings, status lines).
package ui

import "github.com/law-makers/couleur/pkg/couleur"

// Heading renders section titles in help output
func Heading(s string) string {
	return couleur.WithStyle(s, couleur.StyleBold).EditColor(couleur.ColorWhite).Render()
}

// Title renders the command name banner
func Title(s string) string {
	return couleur.WithStyle(s, couleur.StyleBold).EditColor(couleur.ColorCyan).Render()
}

// Command highlights command names and usage lines
func Command(s string) string {
	return couleur.WithColor(s, couleur.ColorCyan).Render()
}

// Flag highlights flag names and example invocations
func Flag(s string) string {
	return couleur.WithColor(s, couleur.ColorGreen).Render()
}

// Placeholder highlights argument placeholders such as <command>
func Placeholder(s string) string {
	return couleur.WithColor(s, couleur.ColorYellow).Render()
}

// Muted de-emphasizes descriptions and comments
func Muted(s string) string {
	return couleur.WithStyle(s, couleur.StyleItalic).Render()
}

// Success marks completed operations
func Success(s string) string {
	return couleur.WithColor(s, couleur.ColorGreen).Render()
}

// Error marks failures
func Error(s string) string {
	return couleur.WithColor(s, couleur.ColorRed).AddStyle(couleur.StyleBold).Render()
}
