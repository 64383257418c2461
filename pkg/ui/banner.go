// Package ui renders CLI output: banner, sections, status lines, and the
// styled pieces of the human-readable report. All helpers write plain
// strings when stdout is not a terminal.
package ui

import (
	"fmt"
	"os"

	"github.com/guardcheck/guardcheck/pkg/defaults"
)

// PrintBanner prints the program banner with version to stderr.
func PrintBanner() {
	fmt.Fprintf(os.Stderr, "%s %s\n",
		TitleStyle.Render("guardcheck"),
		SubtitleStyle.Render("v"+defaults.Version))
}

// PrintSection prints a section header.
func PrintSection(title string) {
	fmt.Println(SectionStyle.Render(title))
}

// PrintConfigLine prints an aligned "label: value" line.
func PrintConfigLine(key, value string) {
	fmt.Printf("  %s %s\n", LabelStyle.Render(key+":"), ValueStyle.Render(value))
}

// PrintSuccess prints a success message.
func PrintSuccess(message string) {
	fmt.Printf("%s %s\n", SuccessStyle.Render("[+]"), message)
}

// PrintWarning prints a warning message (to stderr).
func PrintWarning(message string) {
	fmt.Fprintf(os.Stderr, "%s %s\n", WarningStyle.Render("[!]"), message)
}

// PrintError prints an error message (to stderr).
func PrintError(message string) {
	fmt.Fprintf(os.Stderr, "%s %s\n", ErrorStyle.Render("[x]"), message)
}

// PrintInfo prints an informational message.
func PrintInfo(message string) {
	fmt.Printf("%s %s\n", SubtitleStyle.Render("[i]"), message)
}
