package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/guardcheck/guardcheck/pkg/verdict"
)

// Color palette. Verdict colors follow the usual traffic-light reading:
// the greener the verdict, the safer the text.
var (
	Primary   = lipgloss.Color("#7D56F4") // Purple - brand color
	Secondary = lipgloss.Color("#00D4AA")

	PassColor   = lipgloss.Color("#00D26A") // Green
	WatchColor  = lipgloss.Color("#FFD93D") // Yellow
	ReviewColor = lipgloss.Color("#FFB800") // Amber
	BlockColor  = lipgloss.Color("#FF3838") // Red

	Muted = lipgloss.Color("#6B7280") // Gray
)

// Pre-configured styles
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(Primary).
			Padding(0, 1)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	SectionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Bold(true).
			MarginTop(1)

	LabelStyle = lipgloss.NewStyle().
			Foreground(Muted).
			Width(13)

	ValueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA"))

	BracketStyle = lipgloss.NewStyle().
			Foreground(Muted)

	PolicyStyle = lipgloss.NewStyle().
			Foreground(Secondary)

	RuleIDStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Bold(true)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(PassColor).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(ReviewColor).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(BlockColor).
			Bold(true)

	verdictStyles = map[verdict.Verdict]lipgloss.Style{
		verdict.Pass:   lipgloss.NewStyle().Foreground(PassColor).Bold(true),
		verdict.Watch:  lipgloss.NewStyle().Foreground(WatchColor).Bold(true),
		verdict.Review: lipgloss.NewStyle().Foreground(ReviewColor).Bold(true),
		verdict.Block:  lipgloss.NewStyle().Foreground(BlockColor).Bold(true),
	}
)

// VerdictStyle returns the style for a verdict badge.
func VerdictStyle(v verdict.Verdict) lipgloss.Style {
	if s, ok := verdictStyles[v]; ok {
		return s
	}
	return ValueStyle
}
