// Command prototype opens a desktop window and runs the fixed-timestep loop:
// the simulation advances at 100 steps per second while rendering runs at
// whatever rate the display sync allows, with positions interpolated between
// the last two simulation steps.
package main

import (
	"errors"
	"log"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/rustic-games/prototype/gameloop"
	"github.com/rustic-games/prototype/internal/game"
	"github.com/rustic-games/prototype/internal/render"
)

const (
	screenWidth  = 640
	screenHeight = 480
)

// host adapts the loop driver to ebiten's Update/Draw split. Update ticks the
// driver (clock poll plus simulation steps) and records the interpolation
// alpha; Draw blends the last two snapshots with that alpha and blits the
// rasterized frame.
type host struct {
	driver *gameloop.Driver
	world  *game.World
	ren    *render.Renderer
	frame  *ebiten.Image
	alpha  float64
}

func (h *host) Update() error {
	err := h.driver.Tick(gameloop.GameFuncs{
		StepFunc: h.world.Step,
		RenderFunc: func(alpha float64) error {
			h.alpha = alpha
			return nil
		},
	})
	if errors.Is(err, gameloop.ErrStopped) {
		return ebiten.Termination
	}
	return err
}

func (h *host) Draw(screen *ebiten.Image) {
	img, err := h.ren.Frame(h.world.Blend(h.alpha))
	if err != nil {
		// Draw cannot fail the game; skip the frame and keep the last one.
		log.Printf("skipping frame: %v", err)
		return
	}

	if h.frame == nil {
		h.frame = ebiten.NewImage(screenWidth, screenHeight)
	}
	h.frame.WritePixels(img.Pix)
	screen.DrawImage(h.frame, nil)
}

func (h *host) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	gameloop.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	driver, err := gameloop.New(gameloop.DefaultFixedDelta, gameloop.DefaultMaxFrameTime)
	if err != nil {
		log.Fatalf("Failed to configure game loop: %v", err)
	}

	h := &host{
		driver: driver,
		world:  game.New(screenWidth, screenHeight),
		ren:    render.New(screenWidth, screenHeight),
	}

	ebiten.SetWindowTitle("prototype")
	ebiten.SetWindowSize(screenWidth*2, screenHeight*2)
	// The driver owns the timestep; let ebiten call Update once per frame.
	ebiten.SetTPS(ebiten.SyncWithFPS)

	if err := ebiten.RunGame(h); err != nil {
		log.Fatalf("Game exited with error: %v", err)
	}
}
