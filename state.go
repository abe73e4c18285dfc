package opentk

// State is the lifecycle stage of a window. Transitions only move forward:
// Uncreated → Created → Running → Exiting → Destroyed.
type State int

const (
	StateUncreated State = iota
	StateCreated
	StateRunning
	StateExiting
	StateDestroyed
)

func (s State) String() string {
	switch s {
	case StateUncreated:
		return "uncreated"
	case StateCreated:
		return "created"
	case StateRunning:
		return "running"
	case StateExiting:
		return "exiting"
	case StateDestroyed:
		return "destroyed"
	default:
		return "invalid"
	}
}
