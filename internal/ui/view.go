package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the current state of the model to a string.
func View(m Model) string {
	var out string
	if m.State == stateHelp {
		out = helpView(m)
	} else {
		out = pickerView(m)
	}
	if m.zones != nil {
		out = m.zones.Scan(out)
	}
	return out
}

func pickerView(m Model) string {
	var b strings.Builder

	b.WriteString(Current.Title.Render("Pick a Time"))
	b.WriteString("\n\n")

	box := Current.InputBox
	if m.State == stateInput {
		box = Current.InputFocused
	}
	b.WriteString(mark(m, inputZone, box.Render(m.Input.View())))
	b.WriteString("\n")

	columns := make([]string, 0, numColumns)
	for c := column(0); c < numColumns; c++ {
		columns = append(columns, columnView(m, c))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, columns...))
	b.WriteString("\n")

	b.WriteString(statusView(m))

	if m.ErrorMessage != "" {
		b.WriteString("\n" + Current.Error.Render(m.ErrorMessage))
	}

	b.WriteString("\n\n" + Current.Help.Render(m.help.View(m.keys.ForState(m.State))))
	return b.String()
}

func columnView(m Model, c column) string {
	l := m.lists[c]
	t, picked := m.Selection.Value()
	active := m.State == statePanel && m.Column == c

	start, end := window(m.Cursor[c], len(l.values), m.Rows)
	rows := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		style := Current.Item
		switch {
		case active && i == m.Cursor[c]:
			style = Current.CursorItem
		case picked && l.values[i] == pickedValue(c, t):
			style = Current.PickedItem
		}
		rows = append(rows, mark(m, zoneID(c, i), style.Render(l.labels[i])))
	}

	frame := Current.Column
	if active {
		frame = Current.ColumnActive
	}
	return frame.Render(strings.Join(rows, "\n"))
}

func statusView(m Model) string {
	t, ok := m.Selection.Value()
	if !ok {
		return Current.Label.Render("nothing selected")
	}
	return Current.Status.Render(fmt.Sprintf("hours %d  minutes %d  seconds %d", t.Hour(), t.Minute(), t.Second()))
}

func helpView(m Model) string {
	text := `Time Picker Help

Type a time and press enter, or pick from the lists.

Accepted input:
  12:15:50 PM   full time with period
  11PM, 9 am    hour with period
  23:45:00      24-hour time
  7             7 to 11 read as morning, 12 and 1 to 6 as afternoon, 0 as midnight

Press any key to close help`

	h := m.help
	h.ShowAll = true
	return Current.Help.Render(text) + "\n\n" + h.View(m.keys.ForState(stateHelp))
}

func mark(m Model, id, s string) string {
	if m.zones == nil {
		return s
	}
	return m.zones.Mark(id, s)
}
