package ebitenrender

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/phanxgames/sprig"
)

// RunConfig configures the window opened by Run. Zero values fall back to
// the scene camera's resolution and 30 ticks per second.
type RunConfig struct {
	Title  string
	Width  int
	Height int
	// TPS is the number of scene frames per second.
	TPS int
	// Frames stops the game after this many frames. Zero runs until the
	// window is closed.
	Frames int
	// ShowFPS draws the measured FPS and TPS in the top-left corner.
	ShowFPS bool
	// Sink, when set, receives every rendered frame.
	Sink sprig.Sink
	// StopOnError ends the game on the first update error instead of
	// logging it to the window title.
	StopOnError bool
}

// game adapts a sprig.Scene to ebiten.Game. Ebitengine owns the loop, so
// quit polling and pacing happen here rather than in sprig.Driver.
type game struct {
	scene  *sprig.Scene
	r      *Renderer
	cfg    RunConfig
	fps    *fpsOverlay
	saved  int
	err    error
	frames int
}

// Run opens a window and plays scene until it is closed, Escape is pressed,
// cfg.Frames have run or a frame sink fails. Closing the window is not an
// error.
func Run(scene *sprig.Scene, cfg RunConfig) error {
	if scene == nil {
		return fmt.Errorf("run: %w", sprig.ErrDanglingReference)
	}
	res := scene.Camera().Resolution
	if cfg.Width <= 0 {
		cfg.Width = int(res.X)
	}
	if cfg.Height <= 0 {
		cfg.Height = int(res.Y)
	}
	if cfg.TPS <= 0 {
		cfg.TPS = 30
	}
	if cfg.Title == "" {
		cfg.Title = "sprig"
	}

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowClosingHandled(true)

	g := &game{scene: scene, r: New(nil), cfg: cfg}
	if cfg.ShowFPS {
		g.fps = newFPSOverlay(cfg.TPS)
	}
	err := ebiten.RunGame(g)
	if errors.Is(err, ebiten.Termination) {
		err = nil
	}
	if err == nil {
		err = g.err
	}
	return err
}

// Update implements ebiten.Game.
func (g *game) Update() error {
	if g.err != nil {
		return g.err
	}
	if ebiten.IsWindowBeingClosed() || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if g.cfg.Frames > 0 && g.frames >= g.cfg.Frames {
		return ebiten.Termination
	}
	g.frames++
	if err := g.scene.Update(); err != nil {
		if g.cfg.StopOnError {
			return err
		}
		ebiten.SetWindowTitle(fmt.Sprintf("%s: %v", g.cfg.Title, err))
	}
	if g.fps != nil {
		g.fps.update()
	}
	return nil
}

// Draw implements ebiten.Game.
func (g *game) Draw(screen *ebiten.Image) {
	g.r.SetTarget(screen)
	g.scene.Render(g.r)
	if g.fps != nil {
		g.fps.draw(screen)
	}
	if g.cfg.Sink == nil || g.err != nil {
		return
	}
	img, err := g.r.Capture()
	if err == nil {
		err = g.cfg.Sink.SaveFrame(img, g.saved)
	}
	if err != nil {
		// Draw cannot fail; the next Update stops the game.
		g.err = fmt.Errorf("save frame %d: %w", g.saved, err)
		return
	}
	g.saved++
}

// Layout implements ebiten.Game with a fixed logical resolution.
func (g *game) Layout(int, int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}

// fpsOverlay shows the measured FPS and TPS, refreshed about twice a second.
type fpsOverlay struct {
	img   *ebiten.Image
	every int
	ticks int
}

func newFPSOverlay(tps int) *fpsOverlay {
	// 100x32 is enough for "FPS: 60.0\nTPS: 60.0".
	return &fpsOverlay{img: ebiten.NewImage(100, 32), every: max(tps/2, 1), ticks: -1}
}

func (o *fpsOverlay) update() {
	o.ticks++
	if o.ticks%o.every != 0 {
		return
	}
	o.img.Fill(sprig.Color{A: 0.5}.ToRGBA())
	ebitenutil.DebugPrint(o.img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
}

func (o *fpsOverlay) draw(screen *ebiten.Image) {
	screen.DrawImage(o.img, nil)
}
