package gameloop

import (
	"sync/atomic"
	"time"
)

// Default timing: 100 simulation steps per second, with a quarter second cap
// on how much real time a single frame may feed into the accumulator.
const (
	DefaultFixedDelta   = 10 * time.Millisecond
	DefaultMaxFrameTime = 250 * time.Millisecond
)

// State is the lifecycle state of a Driver.
type State int

const (
	// StateIdle is a constructed driver that has not run yet.
	StateIdle State = iota
	// StateRunning is a driver inside Run, or between manual Ticks.
	StateRunning
	// StateStopped is terminal: a stopped driver cannot be restarted.
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Driver orchestrates the frame cycle: poll the clock, drain the accumulator
// into fixed steps, invoke Step per drained step, invoke Render once with the
// interpolation alpha.
//
// A Driver is single-threaded: Run, Tick and the inspectors must be called
// from one goroutine. Stop is the exception, it may be called from a callback
// or, if the host synchronizes access to the Driver itself, from another
// goroutine.
type Driver struct {
	clock *clock
	acc   *accumulator

	state   State
	simTime time.Duration
	frames  uint64
	steps   uint64
	clamps  uint64

	skipFinalRender bool
	stopRequested   atomic.Bool
}

// New creates a Driver advancing the simulation in fixedDelta increments,
// with any single frame contributing at most maxFrameTime of real time.
//
// It returns a ConfigError if fixedDelta is not positive or maxFrameTime is
// smaller than fixedDelta (in which case no step could ever run).
func New(fixedDelta, maxFrameTime time.Duration, opts ...Option) (*Driver, error) {
	acc, err := newAccumulator(fixedDelta, maxFrameTime)
	if err != nil {
		return nil, err
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Driver{
		clock:           newClock(o.source),
		acc:             acc,
		state:           StateIdle,
		skipFinalRender: o.skipFinalRender,
	}, nil
}

// Run drives g until Stop is called or a callback fails. It blocks the
// calling goroutine.
//
// Run returns nil after an orderly stop. A callback failure is returned
// wrapped in StepError or RenderError; the driver is stopped either way.
// Run on a stopped driver returns ErrStopped, on a running one ErrRunning.
func (d *Driver) Run(g Game) error {
	switch d.state {
	case StateStopped:
		return ErrStopped
	case StateRunning:
		return ErrRunning
	}
	d.state = StateRunning

	for d.state == StateRunning {
		if err := d.tick(g); err != nil {
			return err
		}
	}
	return nil
}

// Tick advances the loop by exactly one frame: one clock poll, the resulting
// simulation steps, one render. Hosts that own the outer frame loop (a
// windowing library, a test) call Tick instead of Run.
//
// The first Tick moves an idle driver to StateRunning. Tick on a stopped
// driver returns ErrStopped.
func (d *Driver) Tick(g Game) error {
	switch d.state {
	case StateStopped:
		return ErrStopped
	case StateIdle:
		d.state = StateRunning
	}
	return d.tick(g)
}

// Stop requests an orderly stop. The request is honored before the next
// simulation step begins; the pending render still runs unless the driver
// was built with WithSkipFinalRender. Calling Stop again is a no-op.
func (d *Driver) Stop() {
	d.stopRequested.Store(true)
}

// State returns the driver's lifecycle state.
func (d *Driver) State() State { return d.state }

// SimulationTime returns the total simulated time so far. It only ever
// advances, in fixed delta increments.
func (d *Driver) SimulationTime() time.Duration { return d.simTime }

// Alpha returns the current interpolation alpha, the fraction of a fixed
// step held back in the accumulator. Always in [0, 1).
func (d *Driver) Alpha() float64 { return d.acc.Alpha() }

// Stats returns progress counters for the loop so far.
func (d *Driver) Stats() Stats {
	return Stats{
		Steps:         d.steps,
		Frames:        d.frames,
		ClampedFrames: d.clamps,
		Simulated:     d.simTime,
	}
}

// tick runs one full frame cycle. Steps for a frame strictly precede its
// render, and a stop request is observed between steps, never inside one.
func (d *Driver) tick(g Game) error {
	raw := d.clock.Elapsed()
	if raw > d.acc.maxFrameTime {
		d.clamps++
	}
	steps := d.acc.Drain(raw)

	for i := 0; i < steps; i++ {
		if d.stopRequested.Load() {
			break
		}
		// Advance before the call so the callback observes the time at
		// the end of the step it is computing.
		d.simTime += d.acc.fixedDelta
		d.steps++
		if err := g.Step(d.simTime, d.acc.fixedDelta); err != nil {
			d.state = StateStopped
			return &StepError{SimTime: d.simTime, Err: err}
		}
	}

	if d.stopRequested.Load() && d.skipFinalRender {
		d.state = StateStopped
		return nil
	}

	alpha := d.acc.Alpha()
	d.frames++
	if err := g.Render(alpha); err != nil {
		d.state = StateStopped
		return &RenderError{Alpha: alpha, Err: err}
	}

	if d.stopRequested.Load() {
		d.state = StateStopped
	}
	return nil
}
