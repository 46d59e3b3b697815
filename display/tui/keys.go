package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the key bindings for the dashboard.
type keyMap struct {
	Quit       key.Binding
	Refresh    key.Binding
	CycleStyle key.Binding
}

// ShortHelp returns the compact set of keybindings shown in the footer.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.CycleStyle, k.Refresh, k.Quit}
}

// FullHelp returns the expanded keybinding groups.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.CycleStyle, k.Refresh, k.Quit}}
}

// keys holds the default key bindings used by the application.
var keys = keyMap{
	Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	Refresh:    key.NewBinding(key.WithKeys("r", "ctrl+r"), key.WithHelp("r", "refresh")),
	CycleStyle: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "gauge style")),
}
