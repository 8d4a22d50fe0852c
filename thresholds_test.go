package steady

import (
	"errors"
	"testing"
	"time"
)

func TestThresholds_Resolution(t *testing.T) {
	rise := 2
	fallDur := 5 * time.Second

	th := Thresholds{
		Count:        3,
		Duration:     time.Second,
		RiseCount:    &rise,
		FallDuration: &fallDur,
	}

	if got := th.count(DirectionRise); got != 2 {
		t.Errorf("rise count: expected override 2, got %d", got)
	}
	if got := th.count(DirectionFall); got != 3 {
		t.Errorf("fall count: expected symmetric default 3, got %d", got)
	}
	if got := th.duration(DirectionRise); got != time.Second {
		t.Errorf("rise duration: expected symmetric default 1s, got %s", got)
	}
	if got := th.duration(DirectionFall); got != 5*time.Second {
		t.Errorf("fall duration: expected override 5s, got %s", got)
	}
}

func TestThresholds_ResolutionWithoutOverrides(t *testing.T) {
	th := DefaultThresholds()

	for _, dir := range []Direction{DirectionRise, DirectionFall} {
		if got := th.count(dir); got != 1 {
			t.Errorf("%s count: expected 1, got %d", dir, got)
		}
		if got := th.duration(dir); got != 0 {
			t.Errorf("%s duration: expected 0, got %s", dir, got)
		}
	}
}

func TestThresholds_Validate(t *testing.T) {
	zero := 0
	negative := -time.Second

	cases := []struct {
		name    string
		th      Thresholds
		wantErr bool
	}{
		{"defaults", DefaultThresholds(), false},
		{"full valid", Thresholds{Count: 2, Duration: time.Second}, false},
		{"zero count", Thresholds{Count: 0}, true},
		{"negative duration", Thresholds{Count: 1, Duration: -1}, true},
		{"zero count override", Thresholds{Count: 1, FallCount: &zero}, true},
		{"negative duration override", Thresholds{Count: 1, RiseDuration: &negative}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.th.Validate()
			if tc.wantErr && !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("expected ErrInvalidConfig, got %v", err)
			}
			if !tc.wantErr && err != nil {
				t.Errorf("expected valid, got %v", err)
			}
		})
	}
}
