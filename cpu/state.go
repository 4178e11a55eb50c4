package cpu

// State defines the interpreter loop state.
type State int

// Known interpreter states.
const (
	Running State = iota // Fetching and executing instructions.
	KeyWait              // Suspended on Fx0A until a key is pressed.
	Halted               // Stopped by a fatal error; requires a reset.
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case KeyWait:
		return "key-wait"
	case Halted:
		return "halted"
	}
	return "unknown"
}
