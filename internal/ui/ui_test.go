package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/stigoleg/timepicker/internal/clock"
)

func typeText(m Model, s string) Model {
	for _, r := range s {
		m, _ = Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}, m)
	}
	return m
}

func press(m Model, k tea.KeyType) Model {
	m, _ = Update(tea.KeyMsg{Type: k}, m)
	return m
}

func clearInput(m Model) Model {
	for range len(m.Input.Value()) {
		m = press(m, tea.KeyBackspace)
	}
	return m
}

// pickHour selects an hour item the way a click on the hour list does.
func pickHour(m Model, hour12 int) Model {
	m.pick(columnHour, m.lists[columnHour].indexOf(hour12))
	return m
}

func selected(t *testing.T, m Model) (int, int, int) {
	t.Helper()
	v, ok := m.Selection.Value()
	if !ok {
		t.Fatalf("expected a selected time, field is %q", m.Input.Value())
	}
	return v.Hour(), v.Minute(), v.Second()
}

func TestInitialModel(t *testing.T) {
	m := InitialModel()
	if m.State != stateInput {
		t.Errorf("expected initial state to be stateInput, got %v", m.State)
	}
	if m.Input.Value() != "" {
		t.Error("expected initial input to be empty")
	}
	if _, ok := m.Selection.Value(); ok {
		t.Error("expected nothing selected initially")
	}
	if m.ErrorMessage != "" {
		t.Error("expected initial error message to be empty")
	}
}

func TestNewWithInitial(t *testing.T) {
	initial, _ := clock.New(21, 30, 0)
	opts := DefaultOptions()
	opts.Initial = &initial
	opts.MinuteStep = 15
	m := New(opts)

	if m.Input.Value() != "9:30:00 PM" {
		t.Errorf("input = %q, want %q", m.Input.Value(), "9:30:00 PM")
	}
	if got := m.lists[columnMinute].values[m.Cursor[columnMinute]]; got != 30 {
		t.Errorf("minute cursor on %d, want 30", got)
	}
	if got := m.lists[columnHour].values[m.Cursor[columnHour]]; got != 9 {
		t.Errorf("hour cursor on %d, want 9", got)
	}
	if got := m.lists[columnPeriod].values[m.Cursor[columnPeriod]]; got != int(clock.PM) {
		t.Errorf("period cursor on %d, want PM", got)
	}
}

func TestManualEntry(t *testing.T) {
	tests := []struct {
		input                 string
		want                  string
		hour, minute, seconds int
	}{
		{"12:15:50 PM", "12:15:50 PM", 12, 15, 50},
		{"11 PM", "11:00:00 PM", 23, 0, 0},
		{"11PM", "11:00:00 PM", 23, 0, 0},
		{"23 AM", "11:00:00 PM", 23, 0, 0},
		{"   9    AM   ", "9:00:00 AM", 9, 0, 0},
		{"23:45:00", "11:45:00 PM", 23, 45, 0},
		{"12 AM", "12:00:00 AM", 0, 0, 0},
		{"0", "12:00:00 AM", 0, 0, 0},
		{"0PM", "12:00:00 PM", 12, 0, 0},
		{"7", "7:00:00 AM", 7, 0, 0},
		{"11", "11:00:00 AM", 11, 0, 0},
		{"12", "12:00:00 PM", 12, 0, 0},
		{"1", "1:00:00 PM", 13, 0, 0},
		{"6", "6:00:00 PM", 18, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			m := typeText(InitialModel(), tt.input)
			m = press(m, tea.KeyEnter)

			if m.Input.Value() != tt.want {
				t.Errorf("input = %q, want %q", m.Input.Value(), tt.want)
			}
			h, min, s := selected(t, m)
			if h != tt.hour || min != tt.minute || s != tt.seconds {
				t.Errorf("selected %d:%d:%d, want %d:%d:%d", h, min, s, tt.hour, tt.minute, tt.seconds)
			}
			if !strings.Contains(View(m), tt.want) {
				t.Errorf("expected view to show %q", tt.want)
			}
		})
	}
}

func TestManualEntryRejected(t *testing.T) {
	inputs := []string{
		"blarg",
		"b 12:00:00 PM b",
		"-1:00:00 AM",
		"25:00:00 PM",
		"12:60:00 PM",
		"12:-1:00 PM",
		"12:00:60 PM",
		"12:00:-1 PM",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			m := typeText(InitialModel(), input)
			m = press(m, tea.KeyEnter)

			if m.Input.Value() != "" {
				t.Errorf("input = %q, want empty", m.Input.Value())
			}
			if _, ok := m.Selection.Value(); ok {
				t.Error("expected nothing selected")
			}
			if m.ErrorMessage != rejectedMessage {
				t.Errorf("error message = %q, want %q", m.ErrorMessage, rejectedMessage)
			}
			if !strings.Contains(View(m), "nothing selected") {
				t.Error("expected view to show empty status")
			}
		})
	}
}

func TestPickHourDefaultsToPM(t *testing.T) {
	tests := []struct {
		hour12   int
		want     string
		wantHour int
	}{
		{hour12: 5, want: "5:00:00 PM", wantHour: 17},
		{hour12: 12, want: "12:00:00 PM", wantHour: 12},
	}

	for _, tt := range tests {
		m := pickHour(InitialModel(), tt.hour12)
		if m.Input.Value() != tt.want {
			t.Errorf("pick %d: input = %q, want %q", tt.hour12, m.Input.Value(), tt.want)
		}
		if h, min, s := selected(t, m); h != tt.wantHour || min != 0 || s != 0 {
			t.Errorf("pick %d: selected %d:%d:%d, want %d:0:0", tt.hour12, h, min, s, tt.wantHour)
		}
	}
}

func TestPickDiscardsUncommittedText(t *testing.T) {
	m := typeText(InitialModel(), "1:00:00 AM")
	m = pickHour(m, 5)

	if m.Input.Value() != "5:00:00 PM" {
		t.Errorf("input = %q, want %q", m.Input.Value(), "5:00:00 PM")
	}
	if h, _, _ := selected(t, m); h != 17 {
		t.Errorf("selected hour %d, want 17", h)
	}
}

func TestPickUsesCommittedPeriod(t *testing.T) {
	m := typeText(InitialModel(), "1:00:00 AM")
	m = press(m, tea.KeyEnter)
	if m.Input.Value() != "1:00:00 AM" {
		t.Fatalf("input = %q, want %q", m.Input.Value(), "1:00:00 AM")
	}

	m = pickHour(m, 5)
	if m.Input.Value() != "5:00:00 AM" {
		t.Errorf("input = %q, want %q", m.Input.Value(), "5:00:00 AM")
	}
	if h, min, s := selected(t, m); h != 5 || min != 0 || s != 0 {
		t.Errorf("selected %d:%d:%d, want 5:0:0", h, min, s)
	}
}

func TestTypedTimeReplacesPick(t *testing.T) {
	m := pickHour(InitialModel(), 5)
	m = clearInput(m)
	m = typeText(m, "1:00:00 AM")
	m = press(m, tea.KeyEnter)

	if m.Input.Value() != "1:00:00 AM" {
		t.Errorf("input = %q, want %q", m.Input.Value(), "1:00:00 AM")
	}
	if h, min, s := selected(t, m); h != 1 || min != 0 || s != 0 {
		t.Errorf("selected %d:%d:%d, want 1:0:0", h, min, s)
	}
}

func TestInvalidTypedTimeRestoresPick(t *testing.T) {
	m := pickHour(InitialModel(), 5)
	m = clearInput(m)
	m = typeText(m, "27:00:00 AM")
	m = press(m, tea.KeyEnter)

	if m.Input.Value() != "5:00:00 PM" {
		t.Errorf("input = %q, want %q", m.Input.Value(), "5:00:00 PM")
	}
	if h, min, s := selected(t, m); h != 17 || min != 0 || s != 0 {
		t.Errorf("selected %d:%d:%d, want 17:0:0", h, min, s)
	}

	// The hint goes away on the next keystroke.
	m = typeText(m, "x")
	if m.ErrorMessage != "" {
		t.Errorf("error message = %q, want it cleared", m.ErrorMessage)
	}
}

func TestTabCommitsAndFocusesPanel(t *testing.T) {
	m := typeText(InitialModel(), "3:45")
	m = press(m, tea.KeyTab)

	if m.State != statePanel {
		t.Fatalf("state = %v, want %v", m.State, statePanel)
	}
	if m.Input.Value() != "3:45:00 PM" {
		t.Errorf("input = %q, want %q", m.Input.Value(), "3:45:00 PM")
	}
	if m.Input.Focused() {
		t.Error("expected text field to lose focus")
	}
}

func TestPanelNavigation(t *testing.T) {
	m := press(InitialModel(), tea.KeyTab)
	if m.State != statePanel {
		t.Fatalf("state = %v, want %v", m.State, statePanel)
	}

	// Hour list starts at 12; two rows down is 2.
	m = press(m, tea.KeyDown)
	m = press(m, tea.KeyDown)
	m = press(m, tea.KeyEnter)
	if m.Input.Value() != "2:00:00 PM" {
		t.Errorf("input = %q, want %q", m.Input.Value(), "2:00:00 PM")
	}

	// Minute list, five rows down.
	m = press(m, tea.KeyRight)
	for range 5 {
		m = press(m, tea.KeyDown)
	}
	m = press(m, tea.KeySpace)
	if m.Input.Value() != "2:05:00 PM" {
		t.Errorf("input = %q, want %q", m.Input.Value(), "2:05:00 PM")
	}

	// Period list: AM.
	m = press(m, tea.KeyRight)
	m = press(m, tea.KeyRight)
	m = press(m, tea.KeyUp)
	m = press(m, tea.KeyEnter)
	if m.Input.Value() != "2:05:00 AM" {
		t.Errorf("input = %q, want %q", m.Input.Value(), "2:05:00 AM")
	}

	m = press(m, tea.KeyRight)
	if m.Column != columnPeriod {
		t.Errorf("column = %v, want it to stay on the last list", m.Column)
	}
}

func TestPanelClear(t *testing.T) {
	m := pickHour(InitialModel(), 7)
	m = press(m, tea.KeyTab)
	m, _ = Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}}, m)

	if _, ok := m.Selection.Value(); ok {
		t.Error("expected selection to be cleared")
	}
	if m.Input.Value() != "" {
		t.Errorf("input = %q, want empty", m.Input.Value())
	}
}

func TestHelpToggle(t *testing.T) {
	m := press(InitialModel(), tea.KeyTab)
	m, _ = Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}}, m)
	if m.State != stateHelp {
		t.Fatalf("state = %v, want %v", m.State, stateHelp)
	}
	if !strings.Contains(View(m), "Time Picker Help") {
		t.Error("expected help view")
	}
	m = press(m, tea.KeyEnter)
	if m.State != statePanel {
		t.Errorf("state = %v, want back to %v", m.State, statePanel)
	}
}

func TestDoneAndCancel(t *testing.T) {
	m := typeText(InitialModel(), "11PM")
	m, cmd := Update(tea.KeyMsg{Type: tea.KeyCtrlS}, m)
	if cmd == nil {
		t.Fatal("expected quit command on done")
	}
	got, ok := m.Result()
	if !ok || got.Hour() != 23 {
		t.Errorf("Result() = %v, %v; want 11:00:00 PM", got, ok)
	}

	m = typeText(InitialModel(), "11PM")
	m, cmd = Update(tea.KeyMsg{Type: tea.KeyEsc}, m)
	if cmd == nil {
		t.Fatal("expected quit command on cancel")
	}
	if !m.Cancelled() {
		t.Error("expected model to be cancelled")
	}
	if _, ok := m.Result(); ok {
		t.Error("expected no result after cancel")
	}
}

func TestViewShowsStatus(t *testing.T) {
	m := pickHour(InitialModel(), 5)
	view := View(m)
	if !strings.Contains(view, "hours 17  minutes 0  seconds 0") {
		t.Error("expected view to show the selected components")
	}
	if !strings.Contains(view, "5:00:00 PM") {
		t.Error("expected view to show the display value")
	}
}

func TestWindow(t *testing.T) {
	tests := []struct {
		cursor, length, rows int
		start, end           int
	}{
		{cursor: 0, length: 12, rows: 7, start: 0, end: 7},
		{cursor: 6, length: 12, rows: 7, start: 3, end: 10},
		{cursor: 11, length: 12, rows: 7, start: 5, end: 12},
		{cursor: 1, length: 2, rows: 7, start: 0, end: 2},
	}
	for _, tt := range tests {
		start, end := window(tt.cursor, tt.length, tt.rows)
		if start != tt.start || end != tt.end {
			t.Errorf("window(%d, %d, %d) = [%d, %d), want [%d, %d)", tt.cursor, tt.length, tt.rows, start, end, tt.start, tt.end)
		}
	}
}
