// Package game holds the prototype's simulation state: a handful of bodies
// bouncing inside a box, advanced at a fixed timestep and double-buffered so
// the renderer can interpolate between the last two steps.
package game

import (
	"slices"
	"time"

	"github.com/rustic-games/prototype/gameloop"
)

// Vec2 is a 2D vector in world units (pixels).
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Scale returns v scaled by s.
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Entity is a circular body moving at constant velocity until it hits a wall.
type Entity struct {
	Pos    Vec2
	Vel    Vec2 // units per second
	Radius float64
}

// World is the simulation state. It keeps two owned snapshot buffers, the
// previous and current completed step, swapped (never aliased) on every step
// so Blend can safely read both while the next step is being computed.
type World struct {
	width, height float64

	prev    []Entity
	curr    []Entity
	blended []Entity
}

// New creates a world of the given extent with a fixed set of bodies. The
// layout is deterministic so two worlds stepped identically stay identical.
func New(width, height float64) *World {
	seed := []Entity{
		{Pos: Vec2{width * 0.2, height * 0.3}, Vel: Vec2{180, 120}, Radius: 24},
		{Pos: Vec2{width * 0.7, height * 0.6}, Vel: Vec2{-140, 90}, Radius: 32},
		{Pos: Vec2{width * 0.5, height * 0.8}, Vel: Vec2{100, -160}, Radius: 16},
		{Pos: Vec2{width * 0.85, height * 0.15}, Vel: Vec2{-220, 60}, Radius: 12},
	}
	return &World{
		width:   width,
		height:  height,
		prev:    slices.Clone(seed),
		curr:    slices.Clone(seed),
		blended: make([]Entity, len(seed)),
	}
}

// Step advances every body by exactly dt, reflecting velocities at the box
// walls. It implements the step half of gameloop.Game.
func (w *World) Step(_ time.Duration, dt time.Duration) error {
	// Rotate the buffers: the last completed step becomes the previous
	// snapshot, and the new step is computed into the other buffer.
	w.prev, w.curr = w.curr, w.prev
	copy(w.curr, w.prev)

	secs := dt.Seconds()
	for i := range w.curr {
		e := &w.curr[i]
		e.Pos = e.Pos.Add(e.Vel.Scale(secs))

		if e.Pos.X < e.Radius {
			e.Pos.X = 2*e.Radius - e.Pos.X
			e.Vel.X = -e.Vel.X
		} else if e.Pos.X > w.width-e.Radius {
			e.Pos.X = 2*(w.width-e.Radius) - e.Pos.X
			e.Vel.X = -e.Vel.X
		}
		if e.Pos.Y < e.Radius {
			e.Pos.Y = 2*e.Radius - e.Pos.Y
			e.Vel.Y = -e.Vel.Y
		} else if e.Pos.Y > w.height-e.Radius {
			e.Pos.Y = 2*(w.height-e.Radius) - e.Pos.Y
			e.Vel.Y = -e.Vel.Y
		}
	}
	return nil
}

// Blend returns the world as seen alpha of the way between the previous and
// current step. The returned slice is reused on the next call; callers must
// not retain it across frames.
func (w *World) Blend(alpha float64) []Entity {
	for i := range w.curr {
		w.blended[i] = w.curr[i]
		w.blended[i].Pos = Vec2{
			X: gameloop.Lerp(w.prev[i].Pos.X, w.curr[i].Pos.X, alpha),
			Y: gameloop.Lerp(w.prev[i].Pos.Y, w.curr[i].Pos.Y, alpha),
		}
	}
	return w.blended
}
