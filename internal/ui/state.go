package ui

// state represents the different states of the picker.
type state int

const (
	stateInput state = iota
	statePanel
	stateHelp
)

func (s state) String() string {
	switch s {
	case stateInput:
		return "Input"
	case statePanel:
		return "Panel"
	case stateHelp:
		return "Help"
	default:
		return "Unknown"
	}
}
