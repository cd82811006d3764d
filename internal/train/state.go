package train

// State is the training loop's position in its lifecycle.
type State int

const (
	// StateInitialized: constructed, no step taken yet.
	StateInitialized State = iota
	// StateIterating: at least one step taken, budget and tolerance not
	// yet reached.
	StateIterating
	// StateConverged: total loss dropped to the configured tolerance.
	// Terminal success.
	StateConverged
	// StateExhausted: iteration budget spent without reaching tolerance.
	// Terminal; still a success, the best parameters found are returned.
	StateExhausted
	// StateDiverged: loss became non-finite. Terminal failure.
	StateDiverged
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateInitialized:
		return "initialized"
	case StateIterating:
		return "iterating"
	case StateConverged:
		return "converged"
	case StateExhausted:
		return "exhausted"
	case StateDiverged:
		return "diverged"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further steps may be taken.
func (s State) Terminal() bool {
	return s == StateConverged || s == StateExhausted || s == StateDiverged
}
