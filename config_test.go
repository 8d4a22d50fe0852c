package steady

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestParseConfig_YAML(t *testing.T) {
	ctx := context.Background()

	data := []byte(`
defaults:
  count_threshold: 2
signals:
  door-open:
    mode: false-to-true
  pump-running:
    initial: true
    fall_count_threshold: 5
`)

	reg, err := NewRegistryFromConfig(ctx, data)
	if err != nil {
		t.Fatalf("NewRegistryFromConfig failed: %v", err)
	}

	if got := reg.Len(); got != 2 {
		t.Fatalf("expected 2 signals, got %d", got)
	}

	door, err := reg.Get("door-open")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if door.Mode() != BufferFalseToTrue {
		t.Errorf("expected mode false-to-true, got %s", door.Mode())
	}
	if got := door.Thresholds().Count; got != 2 {
		t.Errorf("expected inherited count threshold 2, got %d", got)
	}

	pump, err := reg.Get("pump-running")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !pump.Value() {
		t.Error("expected pump-running to start true")
	}
	fc := pump.Thresholds().FallCount
	if fc == nil || *fc != 5 {
		t.Errorf("expected fall count override 5, got %v", fc)
	}
}

func TestParseConfig_JSON(t *testing.T) {
	ctx := context.Background()

	data := []byte(`{
  "defaults": {"count_threshold": 3},
  "signals": {"valve": {"mode": "none"}}
}`)

	reg, err := NewRegistryFromConfig(ctx, data)
	if err != nil {
		t.Fatalf("NewRegistryFromConfig failed: %v", err)
	}

	valve, err := reg.Get("valve")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if valve.Mode() != BufferNone {
		t.Errorf("expected mode none, got %s", valve.Mode())
	}

	// Mode none bypasses the inherited count threshold.
	if !valve.Report(ctx, true) {
		t.Error("expected immediate commit under mode none")
	}
}

func TestParseConfig_DurationSeconds(t *testing.T) {
	ctx := context.Background()

	data := []byte(`
signals:
  heater:
    duration_threshold: 0.5
    rise_duration_threshold: 1.5
`)

	reg, err := NewRegistryFromConfig(ctx, data)
	if err != nil {
		t.Fatalf("NewRegistryFromConfig failed: %v", err)
	}

	heater, err := reg.Get("heater")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}

	th := heater.Thresholds()
	if th.Duration != 500*time.Millisecond {
		t.Errorf("expected duration 500ms, got %s", th.Duration)
	}
	if th.RiseDuration == nil || *th.RiseDuration != 1500*time.Millisecond {
		t.Errorf("expected rise duration 1.5s, got %v", th.RiseDuration)
	}
}

func TestParseConfig_InvalidCountThreshold(t *testing.T) {
	data := []byte(`
signals:
  broken:
    count_threshold: -1
`)

	if _, err := ParseConfig(data); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestParseConfig_InvalidMode(t *testing.T) {
	data := []byte(`
defaults:
  mode: sideways
`)

	if _, err := ParseConfig(data); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestParseConfig_Malformed(t *testing.T) {
	if _, err := ParseConfig([]byte(`{"defaults": `)); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("JSON: expected ErrInvalidConfig, got %v", err)
	}
	if _, err := ParseConfig([]byte("signals:\n  x: [")); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("YAML: expected ErrInvalidConfig, got %v", err)
	}
}

func TestParseConfig_DefaultsOnly(t *testing.T) {
	ctx := context.Background()

	data := []byte(`
defaults:
  count_threshold: 4
`)

	cfg, err := ParseConfig(data)
	if err != nil {
		t.Fatalf("ParseConfig failed: %v", err)
	}

	reg, err := cfg.Registry(ctx)
	if err != nil {
		t.Fatalf("Registry failed: %v", err)
	}
	if got := reg.Len(); got != 0 {
		t.Errorf("expected empty registry, got %d signals", got)
	}

	// Signals added later inherit the document defaults.
	b, err := reg.Add(ctx, "late")
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if got := b.Thresholds().Count; got != 4 {
		t.Errorf("expected count threshold 4, got %d", got)
	}
}
