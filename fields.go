package steady

import "github.com/zoobzio/capitan"

// Field keys for stabilization events.
var (
	// KeyName is the name of the signal the event concerns.
	KeyName = capitan.NewStringKey("name")

	// KeyValue is the committed value after the operation.
	KeyValue = capitan.NewBoolKey("value")

	// KeyPendingValue is the candidate value under stabilization.
	KeyPendingValue = capitan.NewBoolKey("pending_value")

	// KeyPendingCount is the consecutive-report count of the candidate.
	KeyPendingCount = capitan.NewIntKey("pending_count")

	// KeyElapsed is how long the candidate had been pending.
	KeyElapsed = capitan.NewDurationKey("elapsed")

	// KeyMode is the buffer mode in effect when the event fired.
	KeyMode = capitan.NewStringKey("mode")
)
