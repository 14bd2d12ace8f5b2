package render

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustic-games/prototype/internal/game"
)

func TestRenderer_FrameDimensions(t *testing.T) {
	t.Parallel()

	r := New(64, 48)
	img, err := r.Frame(nil)
	require.NoError(t, err)

	assert.Equal(t, 64, img.Bounds().Dx())
	assert.Equal(t, 48, img.Bounds().Dy())
}

func TestRenderer_FrameDrawsEntities(t *testing.T) {
	t.Parallel()

	r := New(64, 64)
	entities := []game.Entity{
		{Pos: game.Vec2{X: 32, Y: 32}, Radius: 10},
	}

	img, err := r.Frame(entities)
	require.NoError(t, err)

	center := img.RGBAAt(32, 32)
	corner := img.RGBAAt(1, 1)
	assert.NotEqual(t, corner, center, "entity center should differ from background")

	// First palette entry is red-dominant.
	assert.Greater(t, center.R, center.B)
}

func TestRenderer_FrameIsACopy(t *testing.T) {
	t.Parallel()

	r := New(32, 32)
	a, err := r.Frame(nil)
	require.NoError(t, err)

	b, err := r.Frame([]game.Entity{{Pos: game.Vec2{X: 16, Y: 16}, Radius: 8}})
	require.NoError(t, err)

	// Drawing the second frame must not mutate the first.
	assert.NotEqual(t, a.RGBAAt(16, 16), b.RGBAAt(16, 16))
}

func TestRenderer_SavePNG(t *testing.T) {
	t.Parallel()

	r := New(32, 32)
	path := filepath.Join(t.TempDir(), "frame.png")

	err := r.SavePNG(path, []game.Entity{{Pos: game.Vec2{X: 16, Y: 16}, Radius: 8}})
	require.NoError(t, err)
	assert.FileExists(t, path)
}
