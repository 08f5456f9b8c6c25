// Package ui provides the terminal time picker.
package ui

import "github.com/charmbracelet/lipgloss"

// Colors defines the color scheme used throughout the picker
type Colors struct {
	Subtle    lipgloss.AdaptiveColor
	Highlight lipgloss.AdaptiveColor
	Special   lipgloss.AdaptiveColor
	Error     lipgloss.AdaptiveColor
}

var defaultColors = Colors{
	Subtle:    lipgloss.AdaptiveColor{Light: "#666666", Dark: "#999999"},
	Highlight: lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"},
	Special:   lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"},
	Error:     lipgloss.AdaptiveColor{Light: "#FF0000", Dark: "#FF4040"},
}

// Style represents a collection of styles used in the picker
type Style struct {
	Title        lipgloss.Style
	Label        lipgloss.Style
	InputBox     lipgloss.Style
	InputFocused lipgloss.Style
	Column       lipgloss.Style
	ColumnActive lipgloss.Style
	Item         lipgloss.Style
	PickedItem   lipgloss.Style
	CursorItem   lipgloss.Style
	Status       lipgloss.Style
	Help         lipgloss.Style
	Error        lipgloss.Style
}

// DefaultStyle returns the default style configuration
func DefaultStyle() Style {
	base := lipgloss.NewStyle().
		PaddingLeft(1).
		PaddingRight(1)

	column := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(defaultColors.Subtle).
		MarginRight(1)

	return Style{
		Title: base.
			Bold(true).
			Foreground(defaultColors.Highlight),

		Label: base.
			Foreground(defaultColors.Subtle),

		InputBox: base.
			Border(lipgloss.RoundedBorder()).
			BorderForeground(defaultColors.Subtle).
			Padding(0, 1),

		InputFocused: base.
			Border(lipgloss.RoundedBorder()).
			BorderForeground(defaultColors.Highlight).
			Padding(0, 1),

		Column: column,

		ColumnActive: column.
			BorderForeground(defaultColors.Highlight),

		Item: base,

		PickedItem: base.
			Bold(true).
			Foreground(defaultColors.Special),

		CursorItem: base.
			Reverse(true),

		Status: base.
			Foreground(defaultColors.Special),

		Help: base.
			Foreground(defaultColors.Subtle),

		Error: base.
			Foreground(defaultColors.Error),
	}
}

// Current holds the current style configuration
var Current = DefaultStyle()
