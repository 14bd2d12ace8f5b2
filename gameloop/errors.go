package gameloop

import (
	"errors"
	"fmt"
	"time"
)

// ErrStopped is returned by Run and Tick on a driver that has already
// stopped. A stopped driver cannot be restarted; construct a new one.
var ErrStopped = errors.New("gameloop: driver is stopped")

// ErrRunning is returned by Run on a driver that is already running.
var ErrRunning = errors.New("gameloop: driver is already running")

// ConfigError reports an invalid timing configuration passed to New. It is
// only ever produced at construction, never mid-run.
type ConfigError struct {
	FixedDelta   time.Duration
	MaxFrameTime time.Duration
	Reason       string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("gameloop: invalid configuration: %s (fixed_delta=%v, max_frame_time=%v)",
		e.Reason, e.FixedDelta, e.MaxFrameTime)
}

// StepError wraps an error returned by Game.Step. The loop stops before
// propagating it; no further steps or renders run.
type StepError struct {
	SimTime time.Duration
	Err     error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("gameloop: simulation step at %v failed: %v", e.SimTime, e.Err)
}

func (e *StepError) Unwrap() error { return e.Err }

// RenderError wraps an error returned by Game.Render. The loop stops before
// propagating it.
type RenderError struct {
	Alpha float64
	Err   error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("gameloop: render at alpha %.4f failed: %v", e.Alpha, e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }
