package steady

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is a declarative description of a registry: document-level defaults
// plus per-signal entries. Durations are expressed in seconds, modes by
// their String form.
//
// Example (YAML):
//
//	defaults:
//	  count_threshold: 3
//	  duration_threshold: 0.5
//	signals:
//	  door-open:
//	    mode: false-to-true
//	  pump-running:
//	    initial: true
//	    fall_count_threshold: 5
type Config struct {
	// Defaults apply to every signal that does not override them.
	Defaults SignalConfig `yaml:"defaults" json:"defaults"`

	// Signals maps signal names to their configuration.
	Signals map[string]SignalConfig `yaml:"signals" json:"signals" validate:"dive"`
}

// SignalConfig configures one stabilized boolean. Zero-valued fields fall
// back to the document defaults, then to the package defaults.
type SignalConfig struct {
	Initial           bool    `yaml:"initial" json:"initial"`
	Mode              string  `yaml:"mode" json:"mode" validate:"omitempty,oneof=both true-to-false false-to-true none"`
	CountThreshold    int     `yaml:"count_threshold" json:"count_threshold" validate:"omitempty,min=1"`
	DurationThreshold float64 `yaml:"duration_threshold" json:"duration_threshold" validate:"omitempty,min=0"`

	RiseCountThreshold    *int     `yaml:"rise_count_threshold" json:"rise_count_threshold" validate:"omitempty,min=1"`
	FallCountThreshold    *int     `yaml:"fall_count_threshold" json:"fall_count_threshold" validate:"omitempty,min=1"`
	RiseDurationThreshold *float64 `yaml:"rise_duration_threshold" json:"rise_duration_threshold" validate:"omitempty,min=0"`
	FallDurationThreshold *float64 `yaml:"fall_duration_threshold" json:"fall_duration_threshold" validate:"omitempty,min=0"`
}

// ParseConfig unmarshals and validates a configuration document. The format
// is detected from content: documents starting with '{' or '[' are parsed as
// JSON, everything else as YAML (which also accepts JSON).
func ParseConfig(data []byte) (*Config, error) {
	var cfg Config

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[') {
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
	} else {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
	}

	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return &cfg, nil
}

// Registry builds a registry from the parsed document: defaults first, then
// one Add per signal entry.
func (c *Config) Registry(ctx context.Context) (*Registry, error) {
	defaults, err := c.Defaults.options()
	if err != nil {
		return nil, fmt.Errorf("defaults: %w", err)
	}

	r, err := NewRegistry(defaults...)
	if err != nil {
		return nil, err
	}

	for name, sc := range c.Signals {
		opts, err := sc.options()
		if err != nil {
			return nil, fmt.Errorf("bool %q: %w", name, err)
		}
		if _, err := r.Add(ctx, name, opts...); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// NewRegistryFromConfig parses a configuration document and builds the
// registry it describes.
func NewRegistryFromConfig(ctx context.Context, data []byte) (*Registry, error) {
	cfg, err := ParseConfig(data)
	if err != nil {
		return nil, err
	}
	return cfg.Registry(ctx)
}

// options converts the set fields into construction options.
func (c SignalConfig) options() ([]Option, error) {
	var opts []Option

	if c.Initial {
		opts = append(opts, WithInitialValue(true))
	}
	if c.Mode != "" {
		m, err := ParseBufferMode(c.Mode)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithMode(m))
	}
	if c.CountThreshold != 0 {
		opts = append(opts, WithCountThreshold(c.CountThreshold))
	}
	if c.DurationThreshold != 0 {
		opts = append(opts, WithDurationThreshold(seconds(c.DurationThreshold)))
	}
	if c.RiseCountThreshold != nil {
		opts = append(opts, WithRiseCountThreshold(*c.RiseCountThreshold))
	}
	if c.FallCountThreshold != nil {
		opts = append(opts, WithFallCountThreshold(*c.FallCountThreshold))
	}
	if c.RiseDurationThreshold != nil {
		opts = append(opts, WithRiseDurationThreshold(seconds(*c.RiseDurationThreshold)))
	}
	if c.FallDurationThreshold != nil {
		opts = append(opts, WithFallDurationThreshold(seconds(*c.FallDurationThreshold)))
	}
	return opts, nil
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
