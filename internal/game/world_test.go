package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVec2(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Vec2{3, 5}, Vec2{1, 2}.Add(Vec2{2, 3}))
	assert.Equal(t, Vec2{2, -4}, Vec2{1, -2}.Scale(2))
}

func TestWorld_StepIntegratesPositions(t *testing.T) {
	t.Parallel()

	w := &World{
		width:   1000,
		height:  1000,
		prev:    []Entity{{Pos: Vec2{100, 100}, Vel: Vec2{10, -20}, Radius: 5}},
		curr:    []Entity{{Pos: Vec2{100, 100}, Vel: Vec2{10, -20}, Radius: 5}},
		blended: make([]Entity, 1),
	}

	require.NoError(t, w.Step(time.Second, time.Second))

	assert.Equal(t, Vec2{110, 80}, w.curr[0].Pos)
	// The previous snapshot still holds the pre-step position.
	assert.Equal(t, Vec2{100, 100}, w.prev[0].Pos)
}

func TestWorld_StepBouncesOffWalls(t *testing.T) {
	t.Parallel()

	w := &World{
		width:   100,
		height:  100,
		prev:    []Entity{{Pos: Vec2{95, 50}, Vel: Vec2{20, 0}, Radius: 5}},
		curr:    []Entity{{Pos: Vec2{95, 50}, Vel: Vec2{20, 0}, Radius: 5}},
		blended: make([]Entity, 1),
	}

	require.NoError(t, w.Step(time.Second, time.Second))

	// Would land at x=115; reflects off the x=95 wall back to 75.
	assert.Equal(t, Vec2{75, 50}, w.curr[0].Pos)
	assert.Equal(t, Vec2{-20, 0}, w.curr[0].Vel)
}

func TestWorld_BuffersSwapNotAlias(t *testing.T) {
	t.Parallel()

	w := New(640, 480)
	require.NoError(t, w.Step(0, 16*time.Millisecond))

	w.curr[0].Pos = Vec2{-1, -1}
	assert.NotEqual(t, w.curr[0].Pos, w.prev[0].Pos, "snapshots must not share backing storage")
}

func TestWorld_Blend(t *testing.T) {
	t.Parallel()

	w := &World{
		width:   1000,
		height:  1000,
		prev:    []Entity{{Pos: Vec2{100, 200}, Radius: 5}},
		curr:    []Entity{{Pos: Vec2{110, 220}, Radius: 5}},
		blended: make([]Entity, 1),
	}

	assert.Equal(t, Vec2{100, 200}, w.Blend(0)[0].Pos)
	assert.Equal(t, Vec2{105, 210}, w.Blend(0.5)[0].Pos)

	near := w.Blend(0.99)[0].Pos
	assert.InDelta(t, 109.9, near.X, 1e-9)
	assert.InDelta(t, 219.8, near.Y, 1e-9)
}

func TestWorld_DeterministicAcrossInstances(t *testing.T) {
	t.Parallel()

	a, b := New(640, 480), New(640, 480)
	for i := 0; i < 120; i++ {
		require.NoError(t, a.Step(0, 16*time.Millisecond))
		require.NoError(t, b.Step(0, 16*time.Millisecond))
	}
	assert.Equal(t, a.curr, b.curr)
}
