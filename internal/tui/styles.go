// Package tui provides the interactive verse editor.
package tui

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	ColorPrimary   = lipgloss.Color("#FF6B6B") // Red - titles, errors
	ColorSecondary = lipgloss.Color("#4ecdc4") // Teal - subtitles, bars
	ColorAccent    = lipgloss.Color("#ffe66d") // Yellow - current line, big count
	ColorMuted     = lipgloss.Color("#666666") // Gray - help text
	ColorSuccess   = lipgloss.Color("#a8e6cf") // Green - status
	ColorText      = lipgloss.Color("#f1faee") // Light text
	ColorLabel     = lipgloss.Color("#a8dadc") // Label color
	ColorBg        = lipgloss.Color("#1a1a2e") // Dark background
	ColorBgAlt     = lipgloss.Color("#2d3436") // Alt background
	ColorBorder    = lipgloss.Color("#3d5a80") // Border color
)

// groupColors cycles through rhyme group labels so lines of the same group
// share a color.
var groupColors = []lipgloss.Color{
	"#FF6B6B", "#4ecdc4", "#ffe66d", "#a8e6cf", "#c3a6ff", "#ffa45b", "#7fb7ff", "#ff8fab",
}

// Title styles
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Background(ColorBg).
			Padding(0, 1)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary)
)

// Editor and panel styles
var (
	EditorStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder)

	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	PanelHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorLabel)

	PanelRowStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	PanelRowActiveStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorAccent).
				Background(ColorBgAlt)

	NoRhymeStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	BigCountStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			MarginTop(1)
)

// Structure chart styles
var (
	BarStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary)

	BarLabelStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)
)

// Status styles
var (
	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	StatusStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess).
			Bold(true)
)

// labelStyle returns the style of a rhyme group label.
func labelStyle(label string) lipgloss.Style {
	if label == "" || label == "-" {
		return NoRhymeStyle
	}
	var n int
	for _, r := range label {
		n = n*26 + int(r-'A')
	}
	return lipgloss.NewStyle().Bold(true).Foreground(groupColors[n%len(groupColors)])
}
