package steady

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// validate is the shared validator instance.
var validate = validator.New()

// Thresholds holds the persistence requirements a pending candidate must
// satisfy before it is committed. Count and Duration are symmetric defaults
// applied to both directions; the per-direction pointer fields override them
// when set.
//
// Both requirements must be met for a commit: a burst of reports within a
// single instant cannot satisfy the duration requirement, and a single
// long-held report cannot satisfy the count requirement.
type Thresholds struct {
	// Count is the number of consecutive reports of the candidate
	// required before it can commit. Minimum 1.
	Count int `validate:"min=1"`

	// Duration is how long the candidate must have been pending before
	// it can commit.
	Duration time.Duration `validate:"min=0"`

	// Per-direction overrides. Nil falls back to the symmetric default.
	RiseCount    *int           `validate:"omitempty,min=1"`
	FallCount    *int           `validate:"omitempty,min=1"`
	RiseDuration *time.Duration `validate:"omitempty,min=0"`
	FallDuration *time.Duration `validate:"omitempty,min=0"`
}

// DefaultThresholds returns the zero configuration: one report, no wait.
// Every transition commits on first sight.
func DefaultThresholds() Thresholds {
	return Thresholds{Count: 1}
}

// Validate checks the thresholds against their constraints.
func (t Thresholds) Validate() error {
	if err := validate.Struct(t); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// count resolves the count requirement for a transition direction.
func (t Thresholds) count(dir Direction) int {
	switch {
	case dir == DirectionRise && t.RiseCount != nil:
		return *t.RiseCount
	case dir == DirectionFall && t.FallCount != nil:
		return *t.FallCount
	default:
		return t.Count
	}
}

// duration resolves the duration requirement for a transition direction.
func (t Thresholds) duration(dir Direction) time.Duration {
	switch {
	case dir == DirectionRise && t.RiseDuration != nil:
		return *t.RiseDuration
	case dir == DirectionFall && t.FallDuration != nil:
		return *t.FallDuration
	default:
		return t.Duration
	}
}
