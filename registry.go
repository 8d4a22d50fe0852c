package steady

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/zoobzio/capitan"
)

// Registry owns a set of named stabilized booleans and the default
// configuration applied to newly added ones. Defaults are resolved once, at
// Add time: a signal owns its own configuration copy and is unaffected by
// anything the registry does afterwards.
//
// A Registry is safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	defaults []Option
	signals  map[string]*Bool
}

// NewRegistry creates a registry. The given options become the defaults for
// every signal added without explicit overrides. Invalid default thresholds
// fail with an error wrapping ErrInvalidConfig.
func NewRegistry(defaults ...Option) (*Registry, error) {
	cfg := defaultConfig()
	for _, opt := range defaults {
		opt(&cfg)
	}
	if err := cfg.thresholds.Validate(); err != nil {
		return nil, fmt.Errorf("registry defaults: %w", err)
	}

	return &Registry{
		defaults: defaults,
		signals:  make(map[string]*Bool),
	}, nil
}

// Add creates a signal under the given name and stores it. Per-call options
// are applied on top of the registry defaults. Fails with ErrDuplicateName
// if the name is already present.
func (r *Registry) Add(ctx context.Context, name string, opts ...Option) (*Bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.signals[name]; ok {
		return nil, fmt.Errorf("bool %q: %w", name, ErrDuplicateName)
	}

	merged := make([]Option, 0, len(r.defaults)+len(opts))
	merged = append(merged, r.defaults...)
	merged = append(merged, opts...)

	b, err := NewBool(name, merged...)
	if err != nil {
		return nil, err
	}
	r.signals[name] = b

	capitan.Emit(ctx, RegistryAdded,
		KeyName.Field(name),
		KeyValue.Field(b.Value()),
	)
	return b, nil
}

// Remove deletes the named signal. Fails with ErrNotFound if absent.
// Callers must not retain references to a removed signal.
func (r *Registry) Remove(ctx context.Context, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.signals[name]; !ok {
		return fmt.Errorf("bool %q: %w", name, ErrNotFound)
	}
	delete(r.signals, name)

	capitan.Emit(ctx, RegistryRemoved,
		KeyName.Field(name),
	)
	return nil
}

// Get returns the named signal. Fails with ErrNotFound if absent.
func (r *Registry) Get(name string) (*Bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.signals[name]
	if !ok {
		return nil, fmt.Errorf("bool %q: %w", name, ErrNotFound)
	}
	return b, nil
}

// Report feeds an observation into the named signal and returns its
// committed value after processing. Fails with ErrNotFound if absent.
func (r *Registry) Report(ctx context.Context, name string, newValue bool) (bool, error) {
	b, err := r.Get(name)
	if err != nil {
		return false, err
	}
	return b.Report(ctx, newValue), nil
}

// Value returns the committed value of the named signal.
// Fails with ErrNotFound if absent.
func (r *Registry) Value(name string) (bool, error) {
	b, err := r.Get(name)
	if err != nil {
		return false, err
	}
	return b.Value(), nil
}

// Values returns a snapshot of every signal's committed value.
func (r *Registry) Values() map[string]bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	values := make(map[string]bool, len(r.signals))
	for name, b := range r.signals {
		values[name] = b.Value()
	}
	return values
}

// ResetAll abandons the pending candidate of every managed signal.
// Committed values are preserved.
func (r *Registry) ResetAll(ctx context.Context) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, b := range r.signals {
		b.Reset(ctx)
	}
}

// Len returns the number of managed signals.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.signals)
}

// Contains reports whether a signal with the given name exists.
func (r *Registry) Contains(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.signals[name]
	return ok
}

// Names returns the managed signal names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.signals))
	for name := range r.signals {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// String returns a debug representation of the registry.
func (r *Registry) String() string {
	return fmt.Sprintf("Registry(%d signals: %v)", r.Len(), r.Names())
}
