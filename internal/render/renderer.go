// Package render draws world snapshots into RGBA frames using gg. It is
// deliberately dumb: it is handed an already-blended snapshot and never
// touches simulation state.
package render

import (
	"fmt"
	"image"

	"github.com/gogpu/gg"

	"github.com/rustic-games/prototype/internal/game"
)

// background is the clear color behind the bodies.
var background = gg.RGB(0.08, 0.09, 0.12)

// palette cycles per entity.
var palette = []gg.RGBA{
	gg.RGB(0.90, 0.30, 0.24),
	gg.RGB(0.23, 0.51, 0.87),
	gg.RGB(0.27, 0.72, 0.42),
	gg.RGB(0.93, 0.74, 0.20),
}

// Renderer rasterizes entity snapshots into a fixed-size frame.
type Renderer struct {
	dc     *gg.Context
	width  int
	height int
}

// New creates a renderer producing width x height frames.
func New(width, height int) *Renderer {
	return &Renderer{
		dc:     gg.NewContext(width, height),
		width:  width,
		height: height,
	}
}

// Frame draws the entities and returns the finished frame. The image is a
// fresh copy each call, safe for the host to blit or retain.
func (r *Renderer) Frame(entities []game.Entity) (*image.RGBA, error) {
	r.dc.ClearWithColor(background)

	for i, e := range entities {
		c := palette[i%len(palette)]
		r.dc.SetRGB(c.R, c.G, c.B)
		r.dc.DrawCircle(e.Pos.X, e.Pos.Y, e.Radius)
		if err := r.dc.Fill(); err != nil {
			return nil, fmt.Errorf("render: fill entity %d: %w", i, err)
		}
	}

	img, ok := r.dc.Image().(*image.RGBA)
	if !ok {
		return nil, fmt.Errorf("render: unexpected frame image type %T", r.dc.Image())
	}
	return img, nil
}

// SavePNG renders the entities and writes the frame to path.
func (r *Renderer) SavePNG(path string, entities []game.Entity) error {
	if _, err := r.Frame(entities); err != nil {
		return err
	}
	return r.dc.SavePNG(path)
}
