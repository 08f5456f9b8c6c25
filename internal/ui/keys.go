package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines key bindings for the picker states.
type KeyMap struct {
	// Common
	Cancel     key.Binding
	Done       key.Binding
	ToggleHelp key.Binding

	// Text input
	Commit key.Binding
	Focus  key.Binding

	// Lists
	Left  key.Binding
	Right key.Binding
	Up    key.Binding
	Down  key.Binding
	Pick  key.Binding
	Clear key.Binding
	Edit  key.Binding
	Quit  key.Binding
}

// DefaultKeys returns the default key bindings for the picker.
func DefaultKeys() KeyMap {
	return KeyMap{
		Cancel: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "cancel"),
		),
		Done: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "done"),
		),
		ToggleHelp: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Commit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
		Focus: key.NewBinding(
			key.WithKeys("tab", "shift+tab"),
			key.WithHelp("tab", "switch focus"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "prev list"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next list"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Pick: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "pick"),
		),
		Clear: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "clear"),
		),
		Edit: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "edit text"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
	}
}

// NewHelpModel returns a configured help model.
func NewHelpModel() help.Model {
	h := help.New()
	return h
}

// stateKeyMap adapts bindings to the current UI state for contextual help.
type stateKeyMap struct {
	keys  KeyMap
	state state
}

// ForState returns a contextual key map implementing help.KeyMap for the given state.
func (k KeyMap) ForState(s state) help.KeyMap {
	return stateKeyMap{keys: k, state: s}
}

// ShortHelp implements help.KeyMap for contextual help (compact).
func (s stateKeyMap) ShortHelp() []key.Binding {
	switch s.state {
	case stateInput:
		return []key.Binding{s.keys.Commit, s.keys.Focus, s.keys.Done, s.keys.Cancel}
	case statePanel:
		return []key.Binding{s.keys.Pick, s.keys.Left, s.keys.Right, s.keys.Done, s.keys.ToggleHelp, s.keys.Quit}
	default:
		return []key.Binding{s.keys.ToggleHelp, s.keys.Cancel}
	}
}

// FullHelp implements help.KeyMap for contextual help (expanded).
func (s stateKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{s.keys.Commit, s.keys.Focus, s.keys.Edit},
		{s.keys.Up, s.keys.Down, s.keys.Left, s.keys.Right},
		{s.keys.Pick, s.keys.Clear},
		{s.keys.Done, s.keys.Cancel, s.keys.Quit, s.keys.ToggleHelp},
	}
}
