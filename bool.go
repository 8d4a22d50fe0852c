package steady

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/zoobzio/capitan"
	"github.com/zoobzio/clockz"
)

// Bool is a boolean signal stabilized against flicker. A reported value that
// differs from the committed value becomes a pending candidate and is only
// committed once it has been reported a configurable number of consecutive
// times AND has been pending for a configurable duration. Which transition
// directions are gated at all is governed by the BufferMode.
//
// A Bool is safe for concurrent use; every operation runs as a critical
// section under the signal's own lock. Reports on the same signal must be
// delivered in observation order; the state machine is inherently
// sequential.
type Bool struct {
	name  string
	clock clockz.Clock

	mu         sync.Mutex
	value      bool
	mode       BufferMode
	thresholds Thresholds

	// Pending candidate state. pendingCount > 0 marks a transition in
	// progress; pendingValue and pendingSince are meaningful only then.
	pendingValue bool
	pendingCount int
	pendingSince time.Time
}

// config holds construction options for a Bool.
type config struct {
	initial    bool
	mode       BufferMode
	thresholds Thresholds
	clock      clockz.Clock
}

func defaultConfig() config {
	return config{
		mode:       BufferBoth,
		thresholds: DefaultThresholds(),
		clock:      clockz.RealClock,
	}
}

// Option configures a Bool at construction time.
type Option func(*config)

// WithInitialValue sets the committed value the signal starts with.
// The default is false.
func WithInitialValue(v bool) Option {
	return func(c *config) {
		c.initial = v
	}
}

// WithMode sets the buffer mode. The default is BufferBoth.
func WithMode(m BufferMode) Option {
	return func(c *config) {
		c.mode = m
	}
}

// WithCountThreshold sets the symmetric count threshold: the number of
// consecutive reports a candidate needs before it can commit. Must be at
// least 1; the default is 1.
func WithCountThreshold(n int) Option {
	return func(c *config) {
		c.thresholds.Count = n
	}
}

// WithDurationThreshold sets the symmetric duration threshold: how long a
// candidate must have been pending before it can commit. The default is 0.
func WithDurationThreshold(d time.Duration) Option {
	return func(c *config) {
		c.thresholds.Duration = d
	}
}

// WithRiseCountThreshold overrides the count threshold for false→true
// transitions only.
func WithRiseCountThreshold(n int) Option {
	return func(c *config) {
		c.thresholds.RiseCount = &n
	}
}

// WithFallCountThreshold overrides the count threshold for true→false
// transitions only.
func WithFallCountThreshold(n int) Option {
	return func(c *config) {
		c.thresholds.FallCount = &n
	}
}

// WithRiseDurationThreshold overrides the duration threshold for false→true
// transitions only.
func WithRiseDurationThreshold(d time.Duration) Option {
	return func(c *config) {
		c.thresholds.RiseDuration = &d
	}
}

// WithFallDurationThreshold overrides the duration threshold for true→false
// transitions only.
func WithFallDurationThreshold(d time.Duration) Option {
	return func(c *config) {
		c.thresholds.FallDuration = &d
	}
}

// WithThresholds replaces the whole threshold set at once.
func WithThresholds(t Thresholds) Option {
	return func(c *config) {
		c.thresholds = t
	}
}

// WithClock sets a custom clock for time operations.
// Use this with clockz.FakeClock for deterministic duration testing.
func WithClock(clock clockz.Clock) Option {
	return func(c *config) {
		c.clock = clock
	}
}

// NewBool creates a stabilized boolean signal.
//
// Example:
//
//	door, err := steady.NewBool("door-open",
//	    steady.WithCountThreshold(3),
//	    steady.WithDurationThreshold(500*time.Millisecond),
//	    steady.WithMode(steady.BufferFalseToTrue),
//	)
//
// The signal is live immediately with no pending state. Invalid thresholds
// fail with an error wrapping ErrInvalidConfig.
func NewBool(name string, opts ...Option) (*Bool, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.thresholds.Validate(); err != nil {
		return nil, fmt.Errorf("bool %q: %w", name, err)
	}

	return &Bool{
		name:       name,
		clock:      cfg.clock,
		value:      cfg.initial,
		mode:       cfg.mode,
		thresholds: cfg.thresholds,
	}, nil
}

// Name returns the signal's immutable identifier.
func (b *Bool) Name() string {
	return b.name
}

// Value returns the committed value.
func (b *Bool) Value() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.value
}

// Pending returns the candidate value under stabilization and true, or
// false,false if no transition is in progress.
func (b *Bool) Pending() (value, ok bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.pendingCount == 0 {
		return false, false
	}
	return b.pendingValue, true
}

// PendingCount returns the consecutive-report count of the current pending
// candidate, or 0 if no transition is in progress.
func (b *Bool) PendingCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.pendingCount
}

// PendingDuration returns how long the current candidate has been pending.
// It is never negative and is 0 when no transition is in progress.
func (b *Bool) PendingDuration() time.Duration {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.pendingCount == 0 {
		return 0
	}
	if d := b.clock.Now().Sub(b.pendingSince); d > 0 {
		return d
	}
	return 0
}

// Mode returns the buffer mode in effect.
func (b *Bool) Mode() BufferMode {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.mode
}

// SetMode changes the buffer mode. It takes effect on the next Report call;
// it never retroactively alters the committed value and never auto-commits a
// pending candidate, even when the new mode would not have gated it.
func (b *Bool) SetMode(m BufferMode) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.mode = m
}

// Thresholds returns a copy of the threshold configuration.
func (b *Bool) Thresholds() Thresholds {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.thresholds
}

// SetThresholds replaces the threshold configuration. Like SetMode, the
// change applies to subsequent Report calls only. Invalid thresholds fail
// with an error wrapping ErrInvalidConfig and leave the signal untouched.
func (b *Bool) SetThresholds(t Thresholds) error {
	if err := t.Validate(); err != nil {
		return fmt.Errorf("bool %q: %w", b.name, err)
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.thresholds = t
	return nil
}

// Report feeds one observation into the state machine and returns the
// committed value after processing.
//
// Reporting the committed value cancels any in-flight transition. Reporting
// a differing value in a direction the mode does not stabilize commits it
// immediately. Otherwise the value becomes (or extends) the pending
// candidate, and commits once both the count and duration thresholds
// resolved for its direction are satisfied. Switching candidates restarts
// both counters: stabilization answers "has THIS candidate persisted", not
// "has there been recent disagreement".
func (b *Bool) Report(ctx context.Context, newValue bool) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if newValue == b.value {
		b.cancelPending(ctx)
		return b.value
	}

	dir := directionTo(newValue)
	if !b.mode.stabilizes(dir) {
		return b.commit(ctx, newValue)
	}

	now := b.clock.Now()
	if b.pendingCount == 0 || b.pendingValue != newValue {
		b.pendingValue = newValue
		b.pendingCount = 1
		b.pendingSince = now
		capitan.Emit(ctx, PendingStarted,
			KeyName.Field(b.name),
			KeyPendingValue.Field(newValue),
			KeyMode.Field(b.mode.String()),
		)
	} else {
		b.pendingCount++
	}

	countMet := b.pendingCount >= b.thresholds.count(dir)
	durationMet := now.Sub(b.pendingSince) >= b.thresholds.duration(dir)
	if countMet && durationMet {
		return b.commit(ctx, newValue)
	}
	return b.value
}

// ReportImmediate commits newValue regardless of buffer mode and thresholds,
// leaving both untouched for subsequent reports. Any pending candidate is
// cleared. Returns the committed value.
func (b *Bool) ReportImmediate(ctx context.Context, newValue bool) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if newValue == b.value {
		b.cancelPending(ctx)
		return b.value
	}
	return b.commit(ctx, newValue)
}

// Reset abandons any pending candidate. The committed value is preserved.
func (b *Bool) Reset(ctx context.Context) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.clearPending()
	capitan.Emit(ctx, SignalReset,
		KeyName.Field(b.name),
		KeyValue.Field(b.value),
	)
}

// ResetTo abandons any pending candidate and overrides the committed value,
// bypassing all thresholds. This is an administrative override, not a
// reported observation.
func (b *Bool) ResetTo(ctx context.Context, value bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.value = value
	b.clearPending()
	capitan.Emit(ctx, SignalReset,
		KeyName.Field(b.name),
		KeyValue.Field(b.value),
	)
}

// String returns a debug representation of the signal.
func (b *Bool) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return fmt.Sprintf("Bool(%s value=%t mode=%s count=%d/%d duration=%s)",
		b.name, b.value, b.mode, b.pendingCount, b.thresholds.Count, b.thresholds.Duration)
}

// commit atomically promotes newValue to the committed value and clears the
// pending state. Caller holds b.mu.
func (b *Bool) commit(ctx context.Context, newValue bool) bool {
	elapsed := time.Duration(0)
	count := 0
	if b.pendingCount > 0 {
		elapsed = b.clock.Now().Sub(b.pendingSince)
		count = b.pendingCount
	}

	b.value = newValue
	b.clearPending()

	capitan.Emit(ctx, Committed,
		KeyName.Field(b.name),
		KeyValue.Field(newValue),
		KeyPendingCount.Field(count),
		KeyElapsed.Field(elapsed),
		KeyMode.Field(b.mode.String()),
	)
	return b.value
}

// cancelPending drops an in-flight transition, if any. Caller holds b.mu.
func (b *Bool) cancelPending(ctx context.Context) {
	if b.pendingCount == 0 {
		return
	}
	capitan.Emit(ctx, PendingCanceled,
		KeyName.Field(b.name),
		KeyPendingValue.Field(b.pendingValue),
		KeyPendingCount.Field(b.pendingCount),
	)
	b.clearPending()
}

func (b *Bool) clearPending() {
	b.pendingValue = false
	b.pendingCount = 0
	b.pendingSince = time.Time{}
}
