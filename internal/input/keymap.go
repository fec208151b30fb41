package input

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"quicklaunch/internal/selection"
)

// KeyMap translates key presses into selection actions.
// Bindings match only the bare key, so alt+up and friends fall through as text.
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Activate key.Binding
	Cancel   key.Binding

	// Shell-level bindings, handled outside the selection machine
	Refresh key.Binding
	Quit    key.Binding
}

// DefaultKeyMap returns the standard launcher bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "down"),
		),
		Activate: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "launch"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "dismiss"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "rescan"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// Action returns the selection action bound to msg, or ActionNone when the key
// belongs to the query buffer.
func (k KeyMap) Action(msg tea.KeyMsg) selection.Action {
	switch {
	case key.Matches(msg, k.Up):
		return selection.ActionMoveUp
	case key.Matches(msg, k.Down):
		return selection.ActionMoveDown
	case key.Matches(msg, k.Activate):
		return selection.ActionActivate
	case key.Matches(msg, k.Cancel):
		return selection.ActionCancel
	}
	return selection.ActionNone
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Activate, k.Cancel}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Activate, k.Cancel},
		{k.Refresh, k.Quit},
	}
}
