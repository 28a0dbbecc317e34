package tui

import "github.com/charmbracelet/lipgloss"

// Color palette.
var (
	colorRed       = lipgloss.Color("#ff5555")
	colorGreen     = lipgloss.Color("#50fa7b")
	colorYellow    = lipgloss.Color("#f1fa8c")
	colorBlue      = lipgloss.Color("#8be9fd")
	colorPurple    = lipgloss.Color("#bd93f9")
	colorDim       = lipgloss.Color("#6272a4")
	colorBgLight   = lipgloss.Color("#343746")
	colorFg        = lipgloss.Color("#f8f8f2")
	colorBorder    = lipgloss.Color("#44475a")
	colorHighlight = lipgloss.Color("#44475a")
)

// Style definitions.
var (
	headerStyle = lipgloss.NewStyle().
			Foreground(colorBlue).
			Bold(true)

	ruleStyle = lipgloss.NewStyle().
			Foreground(colorPurple).
			Bold(true)

	messageStyle = lipgloss.NewStyle().
			Foreground(colorFg)

	locationStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	previewStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1)

	lineNumberStyle = lipgloss.NewStyle().
			Foreground(colorDim).
			Width(5).
			Align(lipgloss.Right)

	warningLineStyle = lipgloss.NewStyle().
				Foreground(colorFg).
				Background(colorHighlight).
				Bold(true)

	insertedLineStyle = lipgloss.NewStyle().
				Foreground(colorGreen)

	styleNameStyle = lipgloss.NewStyle().
			Foreground(colorYellow).
			Bold(true)

	styleUnavailableStyle = lipgloss.NewStyle().
				Foreground(colorDim)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(colorFg).
			Background(colorBgLight).
			Padding(0, 1)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorRed)

	statsHeaderStyle = lipgloss.NewStyle().
				Foreground(colorBlue).
				Bold(true).
				Padding(0, 0, 1, 0)

	statsAddressedStyle = lipgloss.NewStyle().
				Foreground(colorGreen)

	statsPendingStyle = lipgloss.NewStyle().
				Foreground(colorYellow)

	helpBarStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	helpKeyStyle = lipgloss.NewStyle().
			Foreground(colorYellow)
)
