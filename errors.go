package steady

import "errors"

// Sentinel errors returned by constructors and registry operations.
// They are always wrapped with context; test with errors.Is.
var (
	// ErrDuplicateName is returned by Registry.Add when the name is taken.
	ErrDuplicateName = errors.New("signal already exists")

	// ErrNotFound is returned by registry operations referencing an
	// unknown name.
	ErrNotFound = errors.New("signal not found")

	// ErrInvalidConfig is returned when thresholds or parsed configuration
	// fail validation.
	ErrInvalidConfig = errors.New("invalid configuration")
)
