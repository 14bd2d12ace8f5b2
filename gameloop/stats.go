package gameloop

import "time"

// Stats holds progress counters for a Driver, read via Driver.Stats.
type Stats struct {
	// Steps is the number of simulation steps executed.
	Steps uint64
	// Frames is the number of render calls issued.
	Frames uint64
	// ClampedFrames counts frames whose raw delta exceeded the max frame
	// time and was clamped. A nonzero value means the spiral-of-death
	// guard engaged and simulation time fell behind wall time.
	ClampedFrames uint64
	// Simulated is the total simulated time, Steps times the fixed delta.
	Simulated time.Duration
}
