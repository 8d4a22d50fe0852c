package steady

import "fmt"

// BufferMode selects which transition directions are subject to
// stabilization. Transitions in a direction the mode does not cover
// commit on the first report.
type BufferMode int32

const (
	// BufferBoth stabilizes rising and falling transitions.
	BufferBoth BufferMode = iota

	// BufferTrueToFalse stabilizes only true→false transitions.
	// false→true commits immediately.
	BufferTrueToFalse

	// BufferFalseToTrue stabilizes only false→true transitions.
	// true→false commits immediately.
	BufferFalseToTrue

	// BufferNone disables stabilization entirely. Every report commits
	// immediately, regardless of thresholds.
	BufferNone
)

// String returns the string representation of the mode.
func (m BufferMode) String() string {
	switch m {
	case BufferBoth:
		return "both"
	case BufferTrueToFalse:
		return "true-to-false"
	case BufferFalseToTrue:
		return "false-to-true"
	case BufferNone:
		return "none"
	default:
		return "unknown"
	}
}

// ParseBufferMode converts a mode name (as produced by String) back into a
// BufferMode. Unknown names fail with ErrInvalidConfig.
func ParseBufferMode(s string) (BufferMode, error) {
	switch s {
	case "both":
		return BufferBoth, nil
	case "true-to-false":
		return BufferTrueToFalse, nil
	case "false-to-true":
		return BufferFalseToTrue, nil
	case "none":
		return BufferNone, nil
	default:
		return BufferBoth, fmt.Errorf("%w: unknown buffer mode %q", ErrInvalidConfig, s)
	}
}

// stabilizes reports whether transitions in the given direction are subject
// to count/duration gating under this mode.
func (m BufferMode) stabilizes(dir Direction) bool {
	switch m {
	case BufferBoth:
		return true
	case BufferTrueToFalse:
		return dir == DirectionFall
	case BufferFalseToTrue:
		return dir == DirectionRise
	default:
		return false
	}
}

// Direction identifies a boolean transition.
type Direction int32

const (
	// DirectionRise is a false→true transition.
	DirectionRise Direction = iota

	// DirectionFall is a true→false transition.
	DirectionFall
)

// String returns the string representation of the direction.
func (d Direction) String() string {
	if d == DirectionRise {
		return "rise"
	}
	return "fall"
}

// directionTo returns the direction of a transition landing on newValue.
func directionTo(newValue bool) Direction {
	if newValue {
		return DirectionRise
	}
	return DirectionFall
}
