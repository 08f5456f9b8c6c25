package ui

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/stigoleg/timepicker/internal/clock"
	"github.com/stigoleg/timepicker/internal/selection"
)

// Options configures a new picker.
type Options struct {
	Initial    *clock.Time
	MinuteStep int
	SecondStep int
	Rows       int
	Logger     *slog.Logger
}

// DefaultOptions returns one-second lists with seven visible rows.
func DefaultOptions() Options {
	return Options{MinuteStep: 1, SecondStep: 1, Rows: 7}
}

// Model holds the state of the picker: the text field, the committed
// selection and the list cursors.
type Model struct {
	State        state
	Input        textinput.Model
	Selection    selection.Selection
	Column       column
	Cursor       [numColumns]int
	Rows         int
	ErrorMessage string

	prev      state
	lists     [numColumns]list
	keys      KeyMap
	help      help.Model
	zones     *zone.Manager
	logger    *slog.Logger
	done      bool
	cancelled bool
}

// InitialModel returns a picker with default options.
func InitialModel() Model {
	return New(DefaultOptions())
}

// New returns a picker with the text field focused.
func New(opts Options) Model {
	if opts.Rows < 1 {
		opts.Rows = DefaultOptions().Rows
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	ti := textinput.New()
	ti.Placeholder = "e.g. 9:30 AM"
	ti.Prompt = ""
	ti.CharLimit = 32
	ti.Width = 16
	ti.Focus()

	m := Model{
		State: stateInput,
		Input: ti,
		Rows:  opts.Rows,
		lists: newLists(opts.MinuteStep, opts.SecondStep),
		keys:  DefaultKeys(),
		help:  NewHelpModel(),
		zones: zone.New(),

		logger: logger,
	}
	if opts.Initial != nil {
		m.Selection.Set(*opts.Initial)
		m.Input.SetValue(m.Selection.Text())
		m.Input.CursorEnd()
	}
	m.syncCursors()
	return m
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := Update(msg, m)
	return newModel, cmd
}

// View implements tea.Model
func (m Model) View() string {
	return View(m)
}

// Result returns the picked time once the user is done.
func (m Model) Result() (clock.Time, bool) {
	if !m.done {
		return clock.Time{}, false
	}
	return m.Selection.Value()
}

// Cancelled reports whether the user left without confirming.
func (m Model) Cancelled() bool {
	return m.cancelled
}

// Close releases the mouse zone tracker.
func (m Model) Close() {
	if m.zones != nil {
		m.zones.Close()
	}
}

// syncCursors moves every list cursor onto the committed value where the list has it.
func (m *Model) syncCursors() {
	t, ok := m.Selection.Value()
	if !ok {
		return
	}
	for c := column(0); c < numColumns; c++ {
		if i := m.lists[c].indexOf(pickedValue(c, t)); i >= 0 {
			m.Cursor[c] = i
		}
	}
}
