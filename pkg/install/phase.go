package install

// Phase is where an install run currently is.
//
//	Idle -> Extracting -> Classifying -> Merging -> RevealingResult -> Completed
//
// Extracting, Classifying and Merging may end in Failed instead.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseExtracting
	PhaseClassifying
	PhaseMerging
	PhaseRevealingResult
	PhaseCompleted
	PhaseFailed
)

// String returns the string representation of the phase
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseExtracting:
		return "extracting"
	case PhaseClassifying:
		return "classifying"
	case PhaseMerging:
		return "merging"
	case PhaseRevealingResult:
		return "revealing-result"
	case PhaseCompleted:
		return "completed"
	case PhaseFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further transition can happen
func (p Phase) Terminal() bool {
	return p == PhaseCompleted || p == PhaseFailed
}
