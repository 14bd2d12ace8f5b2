package gameloop

import "time"

// accumulator converts irregular frame deltas into whole fixed simulation
// steps plus a bounded remainder.
//
// Invariant: after every Drain, 0 <= accumulated < fixedDelta.
type accumulator struct {
	fixedDelta   time.Duration
	maxFrameTime time.Duration
	accumulated  time.Duration
}

func newAccumulator(fixedDelta, maxFrameTime time.Duration) (*accumulator, error) {
	if fixedDelta <= 0 {
		return nil, &ConfigError{
			FixedDelta:   fixedDelta,
			MaxFrameTime: maxFrameTime,
			Reason:       "fixed delta must be positive",
		}
	}
	if maxFrameTime < fixedDelta {
		return nil, &ConfigError{
			FixedDelta:   fixedDelta,
			MaxFrameTime: maxFrameTime,
			Reason:       "max frame time must be at least the fixed delta",
		}
	}
	return &accumulator{fixedDelta: fixedDelta, maxFrameTime: maxFrameTime}, nil
}

// Drain adds a raw frame delta to the accumulator and returns the number of
// fixed steps it now covers, leaving the sub-step remainder accumulated.
//
// The delta is clamped to maxFrameTime first, so a single stalled frame can
// contribute at most maxFrameTime/fixedDelta catch-up steps. A zero delta
// (duplicate poll) returns zero steps and leaves the state unchanged.
func (a *accumulator) Drain(raw time.Duration) int {
	if raw < 0 {
		raw = 0
	}
	if raw > a.maxFrameTime {
		raw = a.maxFrameTime
	}
	a.accumulated += raw
	steps := int(a.accumulated / a.fixedDelta)
	a.accumulated -= time.Duration(steps) * a.fixedDelta
	return steps
}

// Alpha returns the remainder normalized to [0, 1): the fraction of a fixed
// step the accumulator currently holds.
func (a *accumulator) Alpha() float64 {
	return float64(a.accumulated) / float64(a.fixedDelta)
}
