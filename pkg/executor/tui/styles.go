package tui

import "github.com/charmbracelet/lipgloss"

// Color Palette
// This is the single source of truth for all TUI colors.
// Use these constants throughout the TUI to ensure visual consistency.
var (
	// Primary Colors - Core brand colors
	lavender    = lipgloss.Color("#B39DDB") // Soft lavender - primary accent
	skyBlue     = lipgloss.Color("#90CAF9") // Light sky blue - secondary accent
	mintGreen   = lipgloss.Color("#A8E6CF") // Soft mint green - success states
	amber       = lipgloss.Color("#FFD54F") // Warm amber - warnings
	mutedGray   = lipgloss.Color("#6B7280") // Muted gray - secondary text
	brightWhite = lipgloss.Color("#F9FAFB") // Bright white - primary text
	errorRed    = lipgloss.Color("203")     // Errors
)

// Common Styles
// Pre-configured styles for common UI elements.
var (
	headerStyle = lipgloss.NewStyle().
			Foreground(lavender).
			Bold(true)

	tipsStyle = lipgloss.NewStyle().
			Foreground(mutedGray)

	titleStyle = lipgloss.NewStyle().
			Foreground(skyBlue).
			Bold(true)

	activeToolStyle = lipgloss.NewStyle().
			Foreground(lavender).
			Bold(true).
			Underline(true)

	idleToolStyle = lipgloss.NewStyle().
			Foreground(mutedGray)

	successStyle = lipgloss.NewStyle().
			Foreground(mintGreen)

	warningStyle = lipgloss.NewStyle().
			Foreground(amber)

	errorStyle = lipgloss.NewStyle().
			Foreground(errorRed)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(mutedGray).
			Padding(0, 1)

	inputBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lavender).
			Padding(0, 1)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(mutedGray).
			Padding(0, 1)

	selectedStyle = lipgloss.NewStyle().
			Foreground(brightWhite).
			Background(lavender)
)

// applyTheme adjusts the palette for the configured UI theme. The dark
// palette above is the default; "light" swaps the text colors that assume a
// dark terminal background and rebuilds the styles that use them.
func applyTheme(theme string) {
	if theme != "light" {
		return
	}

	mutedGray = lipgloss.Color("#4B5563")
	brightWhite = lipgloss.Color("#111827")

	tipsStyle = tipsStyle.Foreground(mutedGray)
	idleToolStyle = idleToolStyle.Foreground(mutedGray)
	statusBarStyle = statusBarStyle.Foreground(mutedGray)
	panelStyle = panelStyle.BorderForeground(mutedGray)
	selectedStyle = selectedStyle.Foreground(brightWhite)
}
