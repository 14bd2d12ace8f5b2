package gameloop

import "time"

// Game is the capability the loop drives: one interface, two operations.
//
// Step advances the world by exactly dt. The simTime argument is the total
// simulated time at the end of the step being computed, so the first step of
// a fresh loop observes simTime == dt. By convention Step mutates state and
// never draws.
//
// Render draws the world once per frame. The alpha argument is the fraction
// of a fixed step left in the accumulator, in [0, 1); renderers that keep the
// previous and current simulation snapshots blend them by alpha for smooth
// motion. By convention Render draws and never mutates simulation state.
//
// An error from either method stops the loop and propagates out of Run or
// Tick, wrapped in StepError or RenderError.
type Game interface {
	Step(simTime, dt time.Duration) error
	Render(alpha float64) error
}

// GameFuncs adapts plain functions to the Game interface. A nil field is
// treated as a no-op that returns nil.
type GameFuncs struct {
	StepFunc   func(simTime, dt time.Duration) error
	RenderFunc func(alpha float64) error
}

// Step implements Game.
func (g GameFuncs) Step(simTime, dt time.Duration) error {
	if g.StepFunc == nil {
		return nil
	}
	return g.StepFunc(simTime, dt)
}

// Render implements Game.
func (g GameFuncs) Render(alpha float64) error {
	if g.RenderFunc == nil {
		return nil
	}
	return g.RenderFunc(alpha)
}
