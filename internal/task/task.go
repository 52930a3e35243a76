package task

// Marker is the single-character state code of a checklist line.
type Marker byte

const (
	MarkerIncomplete Marker = ' '
	MarkerInProgress Marker = '>'
	MarkerDone       Marker = 'x'
	MarkerBlocked    Marker = '!'
)

// IsValidMarker checks if a byte is one of the four recognized markers.
func IsValidMarker(m Marker) bool {
	switch m {
	case MarkerIncomplete, MarkerInProgress, MarkerDone, MarkerBlocked:
		return true
	default:
		return false
	}
}

// CanTransition reports whether moving from m to target is a legal state
// change. Incomplete tasks may become in-progress, done, or blocked;
// in-progress tasks may become done or blocked. Done and blocked are terminal.
func (m Marker) CanTransition(target Marker) bool {
	switch m {
	case MarkerIncomplete:
		return target == MarkerInProgress || target == MarkerDone || target == MarkerBlocked
	case MarkerInProgress:
		return target == MarkerDone || target == MarkerBlocked
	default:
		return false
	}
}

// String returns the human-readable name of the marker.
func (m Marker) String() string {
	switch m {
	case MarkerIncomplete:
		return "incomplete"
	case MarkerInProgress:
		return "in-progress"
	case MarkerDone:
		return "done"
	case MarkerBlocked:
		return "blocked"
	default:
		return "unknown"
	}
}
