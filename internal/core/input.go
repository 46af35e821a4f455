package core

// Action represents a semantic wheel action, abstracted from physical key presses.
// This lets the platform bind keys once and hand plain intents to the model.
type Action int

const (
	ActionNone       Action = iota
	ActionSpin              // Space, Enter - start a spin
	ActionReset             // R - restore the original segments
	ActionScreenshot        // Ctrl+S - export the wheel as PNG
	ActionHelp              // ? - toggle full help
	ActionQuit              // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionSpin:
		return "Spin"
	case ActionReset:
		return "Reset"
	case ActionScreenshot:
		return "Screenshot"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
