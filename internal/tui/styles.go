// Package tui provides the interactive kana quiz.
package tui

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	ColorPrimary   = lipgloss.Color("#FF6B6B") // Red - titles, mistakes
	ColorSecondary = lipgloss.Color("#4ecdc4") // Teal - subtitles, input
	ColorAccent    = lipgloss.Color("#ffe66d") // Yellow - prompt glyphs
	ColorMuted     = lipgloss.Color("#666666") // Gray - help text
	ColorSuccess   = lipgloss.Color("#a8e6cf") // Green - correct answers
	ColorText      = lipgloss.Color("#f1faee")
	ColorLabel     = lipgloss.Color("#a8dadc")
	ColorBg        = lipgloss.Color("#1a1a2e")
	ColorBgAlt     = lipgloss.Color("#2d3436")
	ColorBorder    = lipgloss.Color("#3d5a80")
)

var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Background(ColorBg).
			Padding(0, 1)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary)

	ProgressStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888"))
)

// Prompt card styles
var (
	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(1, 4).
			Align(lipgloss.Center)

	GlyphStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent).
			Background(ColorBgAlt).
			Padding(1, 4).
			Align(lipgloss.Center)

	BigGlyphStyle = lipgloss.NewStyle().
			Foreground(ColorAccent)

	ScriptLabelStyle = lipgloss.NewStyle().
				Foreground(ColorSecondary).
				Italic(true).
				Align(lipgloss.Center)
)

// Feedback styles
var (
	CorrectStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess).
			Bold(true)

	WrongStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorLabel).
			Bold(true).
			Width(12)

	ValueStyle = lipgloss.NewStyle().
			Foreground(ColorText)
)

var (
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(1, 2)

	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)
)

// ContentStyle pads the whole view.
var ContentStyle = lipgloss.NewStyle().
	Padding(1, 2)
