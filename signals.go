package steady

import "github.com/zoobzio/capitan"

// Transition lifecycle signals.
var (
	// PendingStarted is emitted when a report proposes a new candidate value.
	PendingStarted = capitan.NewSignal(
		"steady.bool.pending.started",
		"Candidate value proposed, stabilization in progress",
	)

	// PendingCanceled is emitted when a pending candidate is abandoned
	// because the committed value was reported again.
	PendingCanceled = capitan.NewSignal(
		"steady.bool.pending.canceled",
		"Pending candidate abandoned",
	)

	// Committed is emitted when the committed value changes, whether by
	// satisfying thresholds, bypassing buffering, or an immediate report.
	Committed = capitan.NewSignal(
		"steady.bool.committed",
		"Committed value changed",
	)

	// SignalReset is emitted when pending state is cleared by Reset or ResetTo.
	SignalReset = capitan.NewSignal(
		"steady.bool.reset",
		"Pending state cleared administratively",
	)
)

// Registry lifecycle signals.
var (
	// RegistryAdded is emitted when a signal is added to a registry.
	RegistryAdded = capitan.NewSignal(
		"steady.registry.added",
		"Signal added to registry",
	)

	// RegistryRemoved is emitted when a signal is removed from a registry.
	RegistryRemoved = capitan.NewSignal(
		"steady.registry.removed",
		"Signal removed from registry",
	)
)
