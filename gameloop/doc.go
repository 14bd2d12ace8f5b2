// Package gameloop implements a fixed-timestep game loop.
//
// # Overview
//
// The loop decouples simulation frequency from rendering frequency: the
// simulation advances in constant increments of FixedDelta while rendering
// runs as fast as the host allows. Irregular frame deltas are converted into
// a whole number of fixed simulation steps plus a bounded remainder, and the
// remainder is exposed to the renderer as an interpolation alpha so motion
// stays smooth at frame rates above the simulation rate.
//
// # Quick Start
//
//	import "github.com/rustic-games/prototype/gameloop"
//
//	driver, err := gameloop.New(gameloop.DefaultFixedDelta, gameloop.DefaultMaxFrameTime)
//	if err != nil {
//	    // invalid timing configuration
//	}
//
//	err = driver.Run(gameloop.GameFuncs{
//	    StepFunc: func(simTime, dt time.Duration) error {
//	        // advance the world by exactly dt
//	        return nil
//	    },
//	    RenderFunc: func(alpha float64) error {
//	        // draw, blending the last two simulation states by alpha
//	        return nil
//	    },
//	})
//
// Run blocks until Stop is called (from inside a callback or, with external
// synchronization, from elsewhere). Hosts that own their own frame loop, such
// as a windowing library, can call Tick once per host frame instead of Run.
//
// # Stability
//
// A single slow frame contributes at most MaxFrameTime to the accumulator, so
// the number of catch-up steps per frame is bounded and a stall cannot spiral
// into ever longer frames. Under normal load simulation time tracks wall time
// exactly, because the clamp only engages on abnormal frames.
//
// # Interpolation
//
// The loop itself never blends state. The renderer keeps the previous and
// current simulation snapshots and interpolates between them with the alpha
// passed to Render. See Lerp for the blend formula and the references below
// for the technique:
//
//   - https://gafferongames.com/post/fix_your_timestep/
//   - https://www.koonsolo.com/news/dewitters-gameloop/
//   - http://gameprogrammingpatterns.com/game-loop.html
//
// # Logging
//
// By default the package produces no log output. Call SetLogger to receive
// warnings about clock anomalies (backward jumps of the underlying time
// source, which the loop clamps to zero and survives).
package gameloop
