package input

// Action is a logical game input, independent of the physical key bound to it.
type Action uint8

const (
	LookLeft Action = iota
	LookRight
	LookUp
	LookDown
	StepForward
	StepBack
	StepLeft
	StepRight
	StepUp // jump; a double press toggles flight
	StepDown
	CameraToggle
	Quit
	Respawn
	Run

	actionCount
)

var actionNames = [actionCount]string{
	"look-left", "look-right", "look-up", "look-down",
	"step-forward", "step-back", "step-left", "step-right",
	"step-up", "step-down", "camera-toggle", "quit", "respawn", "run",
}

func (a Action) String() string {
	if a >= actionCount {
		return "unknown"
	}
	return actionNames[a]
}

// Snapshot is the state of every action for a single frame. The zero value
// has nothing held and nothing pressed.
type Snapshot struct {
	held    uint32
	pressed uint32
}

// Held reports whether the action is currently down.
func (s Snapshot) Held(a Action) bool { return s.held&(1<<a) != 0 }

// Pressed reports whether the action went down this frame.
func (s Snapshot) Pressed(a Action) bool { return s.pressed&(1<<a) != 0 }

// WithHeld returns a copy with the actions marked as held.
func (s Snapshot) WithHeld(actions ...Action) Snapshot {
	for _, a := range actions {
		s.held |= 1 << a
	}
	return s
}

// WithPressed returns a copy with the actions marked as pressed this frame.
// A press implies the action is also held.
func (s Snapshot) WithPressed(actions ...Action) Snapshot {
	for _, a := range actions {
		s.pressed |= 1 << a
		s.held |= 1 << a
	}
	return s
}

// Source produces one snapshot per frame.
type Source interface {
	Poll() Snapshot
}
