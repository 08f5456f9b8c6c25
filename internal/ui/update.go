package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const rejectedMessage = "Not a valid time"

// Update handles messages and updates the model accordingly.
func Update(msg tea.Msg, m Model) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil
	case tea.MouseMsg:
		return m.handleMouse(msg)
	}

	switch m.State {
	case stateInput:
		return updateInput(msg, m)
	case statePanel:
		return updatePanel(msg, m)
	case stateHelp:
		if _, ok := msg.(tea.KeyMsg); ok {
			m.State = m.prev
		}
		return m, nil
	}
	return m, nil
}

func updateInput(msg tea.Msg, m Model) (Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Cancel):
			m.cancelled = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Done):
			m.commitPending()
			m.done = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Commit):
			m.commit()
			return m, nil
		case key.Matches(msg, m.keys.Focus):
			m.commit()
			m.focusPanel()
			return m, nil
		}
		m.ErrorMessage = ""
	}

	var cmd tea.Cmd
	m.Input, cmd = m.Input.Update(msg)
	return m, cmd
}

func updatePanel(msg tea.Msg, m Model) (Model, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(km, m.keys.Cancel), key.Matches(km, m.keys.Quit):
		m.cancelled = true
		return m, tea.Quit
	case key.Matches(km, m.keys.Done):
		m.done = true
		return m, tea.Quit
	case key.Matches(km, m.keys.ToggleHelp):
		m.prev = m.State
		m.State = stateHelp
	case key.Matches(km, m.keys.Focus), key.Matches(km, m.keys.Edit):
		return m, m.focusInput()
	case key.Matches(km, m.keys.Left):
		if m.Column > 0 {
			m.Column--
		}
	case key.Matches(km, m.keys.Right):
		if m.Column < numColumns-1 {
			m.Column++
		}
	case key.Matches(km, m.keys.Up):
		if m.Cursor[m.Column] > 0 {
			m.Cursor[m.Column]--
		}
	case key.Matches(km, m.keys.Down):
		if m.Cursor[m.Column] < len(m.lists[m.Column].values)-1 {
			m.Cursor[m.Column]++
		}
	case key.Matches(km, m.keys.Pick):
		m.pick(m.Column, m.Cursor[m.Column])
	case key.Matches(km, m.keys.Clear):
		m.Selection.Clear()
		m.Input.SetValue("")
		m.ErrorMessage = ""
		m.logger.Debug("selection cleared")
	}
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	if m.zones == nil || msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	if z := m.zones.Get(inputZone); z != nil && z.InBounds(msg) {
		return m, m.focusInput()
	}
	for c := column(0); c < numColumns; c++ {
		for i := range m.lists[c].values {
			if z := m.zones.Get(zoneID(c, i)); z != nil && z.InBounds(msg) {
				m.pick(c, i)
				return m, nil
			}
		}
	}
	return m, nil
}

// commit parses the text field. A rejected entry puts the last good value back.
func (m *Model) commit() {
	raw := m.Input.Value()
	t, err := m.Selection.Commit(raw)
	if err != nil {
		m.logger.Debug("entry rejected", "input", raw, "restored", m.Selection.Text())
		m.ErrorMessage = rejectedMessage
	} else {
		m.logger.Debug("entry accepted", "input", raw, "value", t.String())
		m.ErrorMessage = ""
		m.syncCursors()
	}
	m.Input.SetValue(m.Selection.Text())
	m.Input.CursorEnd()
}

// commitPending commits the text field only if it was edited since the last commit.
func (m *Model) commitPending() {
	if m.Input.Value() != m.Selection.Text() {
		m.commit()
	}
}

// pick selects item index of column c. Uncommitted text in the field is discarded.
func (m *Model) pick(c column, index int) {
	l := m.lists[c]
	if index < 0 || index >= len(l.values) {
		return
	}
	t, err := apply(&m.Selection, c, l.values[index])
	if err != nil {
		m.logger.Warn("list pick failed", "column", c.String(), "value", l.values[index], "error", err)
		return
	}
	m.logger.Debug("list pick", "column", c.String(), "value", t.String())

	m.Column = c
	m.ErrorMessage = ""
	m.Input.SetValue(m.Selection.Text())
	m.Input.CursorEnd()
	m.syncCursors()
}

func (m *Model) focusPanel() {
	m.State = statePanel
	m.Input.Blur()
}

func (m *Model) focusInput() tea.Cmd {
	m.State = stateInput
	return m.Input.Focus()
}
