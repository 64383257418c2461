package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// IsTTY reports whether stdout is an interactive terminal.
// Piped or redirected output gets plain text.
func IsTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// ConfigureColor applies the color policy once at startup: styling is
// dropped when -no-color is set, NO_COLOR is present, or stdout is not
// a terminal.
func ConfigureColor(noColor bool) {
	if noColor || os.Getenv("NO_COLOR") != "" || !IsTTY() {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}
