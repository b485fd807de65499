package tui

import "github.com/charmbracelet/lipgloss"

var (
	accentColor  = lipgloss.Color("#38bdf8")
	textColor    = lipgloss.Color("#e2e8f0")
	mutedColor   = lipgloss.Color("#94a3b8")
	surfaceColor = lipgloss.Color("#1e293b")
	successColor = lipgloss.Color("#a6e3a1")
)

var navbarStyle = lipgloss.NewStyle().
	Padding(0, 1).
	BorderStyle(lipgloss.NormalBorder()).
	BorderBottom(true).
	BorderForeground(surfaceColor)

// Same height as navbarStyle so the viewport does not jump.
var navbarScrolledStyle = navbarStyle.
	Background(surfaceColor).
	BorderForeground(accentColor)

var (
	brandStyle   = lipgloss.NewStyle().Bold(true).Foreground(textColor).MarginRight(2)
	tabStyle     = lipgloss.NewStyle().Foreground(mutedColor).Padding(0, 1)
	activeTab    = tabStyle.Foreground(accentColor).Bold(true).Underline(true)
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(accentColor)
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(textColor)
	mutedStyle   = lipgloss.NewStyle().Foreground(mutedColor)
	accentStyle  = lipgloss.NewStyle().Foreground(accentColor)
	statusStyle  = lipgloss.NewStyle().Foreground(successColor)
	cursorStyle  = lipgloss.NewStyle().Foreground(accentColor).Blink(true)
	splashStyle  = lipgloss.NewStyle().Foreground(accentColor).Bold(true)
	pageStyle    = lipgloss.NewStyle().Padding(1, 2)
	statNumber   = lipgloss.NewStyle().Bold(true).Foreground(accentColor)
	statBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(surfaceColor).Padding(0, 2).Align(lipgloss.Center)
	cardStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(surfaceColor).Padding(0, 1)
	chipStyle    = lipgloss.NewStyle().Foreground(mutedColor).Padding(0, 1)
	activeChip   = chipStyle.Foreground(surfaceColor).Background(accentColor)
	footerStyle  = lipgloss.NewStyle().Padding(0, 1)
	techTagStyle = lipgloss.NewStyle().Foreground(textColor).Background(surfaceColor).Padding(0, 1).MarginRight(1)
)
