package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keybindings for the TUI.
type keyMap struct {
	// Navigation
	Up       key.Binding
	Down     key.Binding
	Top      key.Binding
	Bottom   key.Binding
	PageDown key.Binding
	PageUp   key.Binding

	// Panels
	NextPanel key.Binding
	PrevPanel key.Binding
	Panel1    key.Binding
	Panel2    key.Binding
	Panel3    key.Binding
	Panel4    key.Binding
	Panel5    key.Binding
	Panel6    key.Binding
	Enter     key.Binding
	Escape    key.Binding

	// Detail views
	PrevView key.Binding
	NextView key.Binding

	// Filters
	FilterAll     key.Binding
	FilterGlobal  key.Binding
	FilterProject key.Binding
	Search        key.Binding

	// Operations
	Refresh key.Binding

	// UI
	Help key.Binding
	Quit key.Binding
}

// newKeyMap creates a new keyMap with all keybindings configured.
func newKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Top: key.NewBinding(
			key.WithKeys("home"),
			key.WithHelp("home", "top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("end"),
			key.WithHelp("end", "bottom"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("ctrl+d", "page down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("ctrl+u"),
			key.WithHelp("ctrl+u", "page up"),
		),
		NextPanel: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next panel"),
		),
		PrevPanel: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev panel"),
		),
		Panel1: key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "commands")),
		Panel2: key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "agents")),
		Panel3: key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "skills")),
		Panel4: key.NewBinding(key.WithKeys("4"), key.WithHelp("4", "rules")),
		Panel5: key.NewBinding(key.WithKeys("5"), key.WithHelp("5", "mcps")),
		Panel6: key.NewBinding(key.WithKeys("6"), key.WithHelp("6", "plugins")),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "inspect"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		PrevView: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "prev view"),
		),
		NextView: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "next view"),
		),
		FilterAll: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "all levels"),
		),
		FilterGlobal: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "global only"),
		),
		FilterProject: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "project only"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
