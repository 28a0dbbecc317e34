package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	PrevWarning key.Binding
	NextWarning key.Binding
	StyleUp     key.Binding
	StyleDown   key.Binding
	Search      key.Binding
	Stats       key.Binding
	Help        key.Binding
	SaveExit    key.Binding
	Quit        key.Binding
}

var keys = keyMap{
	PrevWarning: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/h", "previous warning"),
	),
	NextWarning: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→/l", "next warning"),
	),
	StyleUp: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "cycle style forward"),
	),
	StyleDown: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "cycle style back"),
	),
	Search: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "filter warnings"),
	),
	Stats: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "statistics"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	SaveExit: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "apply and exit"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit without saving"),
	),
}
