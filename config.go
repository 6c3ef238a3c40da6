package presence

import (
	"fmt"
	"time"
)

// Config carries the timing of a transition. Construct one with NewConfig
// or NewAsymmetricConfig; the zero value is valid and means instant
// transitions in both directions.
type Config struct {
	enter        time.Duration
	exit         time.Duration
	initialEnter bool
}

// NewConfig creates a Config that uses the same duration for entry and
// exit. Negative durations are rejected.
func NewConfig(d time.Duration) (Config, error) {
	if d < 0 {
		return Config{}, fmt.Errorf(
			"presence: transition duration must be non-negative, got %s", d)
	}
	return Config{enter: d, exit: d}, nil
}

// NewAsymmetricConfig creates a Config with separate entry and exit
// durations. Negative durations are rejected.
func NewAsymmetricConfig(enter, exit time.Duration) (Config, error) {
	if enter < 0 {
		return Config{}, fmt.Errorf(
			"presence: enter duration must be non-negative, got %s", enter)
	}
	if exit < 0 {
		return Config{}, fmt.Errorf(
			"presence: exit duration must be non-negative, got %s", exit)
	}
	return Config{enter: enter, exit: exit}, nil
}

// WithInitialEnter returns a copy of the Config that controls whether the
// very first mount animates. By default an element that starts visible is
// treated as already settled.
func (c Config) WithInitialEnter(on bool) Config {
	c.initialEnter = on
	return c
}

// EnterDuration returns the duration of the entry transition.
func (c Config) EnterDuration() time.Duration { return c.enter }

// ExitDuration returns the duration of the exit transition.
func (c Config) ExitDuration() time.Duration { return c.exit }

// InitialEnter reports whether the first mount animates.
func (c Config) InitialEnter() bool { return c.initialEnter }
