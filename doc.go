/*
Package steady stabilizes boolean signals against flicker. A reported change
only becomes the committed value after it has persisted for a configurable
number of consecutive reports and a configurable wall-clock duration. Both
must be satisfied, so neither a burst of reports nor a single long-held one
can commit on its own. Typical uses are debouncing sensor inputs, UI state,
or any binary signal prone to rapid noise.

# Basic Usage

Create a signal with the thresholds a candidate must overcome:

	door, err := steady.NewBool("door-open",
	    steady.WithCountThreshold(3),
	    steady.WithDurationThreshold(500*time.Millisecond),
	)

	// Feed observations; the return value is the committed value.
	open := door.Report(ctx, sample)

# Buffer Modes

Stabilization can be restricted to one transition direction. The other
direction then commits on the first report:

	steady.WithMode(steady.BufferFalseToTrue)  // only gate rising edges
	steady.WithMode(steady.BufferTrueToFalse)  // only gate falling edges
	steady.WithMode(steady.BufferNone)         // no gating at all

Thresholds can also differ per direction, e.g. quick to turn on, slow to
turn off:

	steady.WithRiseCountThreshold(2),
	steady.WithFallCountThreshold(5),

# Registries

A Registry manages many signals under unique names and supplies defaults to
newly added ones:

	reg, err := steady.NewRegistry(steady.WithCountThreshold(3))
	reg.Add(ctx, "pump-running", steady.WithInitialValue(true))
	reg.Report(ctx, "pump-running", false)

# Declarative Configuration

Registries can be described in YAML or JSON (format auto-detected):

	reg, err := steady.NewRegistryFromConfig(ctx, data)

# Time

Signals never read the global clock. Time comes from an injected
clockz.Clock, so duration gating is deterministic under test:

	clock := clockz.NewFakeClock()
	b, _ := steady.NewBool("x", steady.WithClock(clock), ...)
	clock.Advance(time.Second)

# Observability

Lifecycle events are emitted via capitan signals:

	capitan.Hook(steady.Committed, func(_ context.Context, e *capitan.Event) {
	    name, _ := steady.KeyName.From(e)
	    value, _ := steady.KeyValue.From(e)
	    log.Printf("%s settled to %t", name, value)
	})
*/
package steady
