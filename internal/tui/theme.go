package tui

import "github.com/charmbracelet/lipgloss"

// Poimandres color palette
// Reference: https://github.com/drcmda/poimandres-theme
var (
	colorFg       = lipgloss.Color("#a6accd")
	colorFgMuted  = lipgloss.Color("#767c9d")
	colorFgSubtle = lipgloss.Color("#506477")

	colorTeal   = lipgloss.Color("#5DE4c7")
	colorCyan   = lipgloss.Color("#89ddff")
	colorBlue   = lipgloss.Color("#ADD7FF")
	colorPink   = lipgloss.Color("#f087bd")
	colorYellow = lipgloss.Color("#fffac2")
)

// Level indicator symbols
const (
	LevelGlobalIndicator  = "[G]"
	LevelProjectIndicator = "[P]"
)

var (
	// Sidebar panel boxes
	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorFgSubtle).
			Padding(0, 1)

	PanelFocusedStyle = PanelStyle.
				BorderForeground(colorTeal)

	PanelTitleStyle = lipgloss.NewStyle().
			Foreground(colorBlue).
			Bold(true)

	PanelTitleFocusedStyle = PanelTitleStyle.
				Foreground(colorTeal)

	// List rows inside panels
	ItemStyle = lipgloss.NewStyle().
			Foreground(colorFg)

	ItemSelectedStyle = lipgloss.NewStyle().
				Foreground(colorTeal).
				Bold(true)

	ItemErrorStyle = lipgloss.NewStyle().
			Foreground(colorPink)

	ItemLevelStyle = lipgloss.NewStyle().
			Foreground(colorFgMuted)

	// Detail pane
	DetailTitleStyle = lipgloss.NewStyle().
				Foreground(colorTeal).
				Bold(true).
				Padding(0, 1)

	DetailTabStyle = lipgloss.NewStyle().
			Foreground(colorFgMuted).
			Padding(0, 1)

	DetailTabActiveStyle = lipgloss.NewStyle().
				Foreground(colorYellow).
				Bold(true).
				Padding(0, 1)

	ErrorTextStyle = lipgloss.NewStyle().
			Foreground(colorPink)

	// Status header and footer
	StatusStyle = lipgloss.NewStyle().
			Foreground(colorCyan).
			Padding(0, 1)

	StatusValueStyle = lipgloss.NewStyle().
				Foreground(colorFg).
				Bold(true)

	HelpStyle = lipgloss.NewStyle().
			Foreground(colorFgMuted).
			Padding(0, 1)

	SearchPromptStyle = lipgloss.NewStyle().
				Foreground(colorYellow)
)
