package sprig

import (
	"fmt"
	"time"

	"github.com/shirou/gopsutil/v3/process"
)

// Scene is the top-level object that owns the camera and the canvas, the
// full-window container every graph hangs from.
//
// A frame is one Update followed by one Render. Update advances the camera,
// then the whole canvas tree; Render clears the target, draws the tree and
// any overlays, and presents. Drawing never starts before the whole tree
// has updated.
type Scene struct {
	// Background is the clear color. Defaults to black.
	Background Color

	camera *Camera
	canvas *Container

	beforeUpdate []func(frame int) error
	overlays     []func(r Renderer, frame int)

	frame int
	debug bool
	stats debugStats
	proc  *process.Process
}

// NewScene creates a scene for a width x height pixel target. The camera
// starts centered on (0.5, 0.5) at zoom 1, so the canvas fills the screen.
func NewScene(width, height int) *Scene {
	cam := NewCamera(Vec2{0.5, 0.5}, 1, Vec2{float64(width), float64(height)})
	return &Scene{
		Background: ColorBlack,
		camera:     cam,
		canvas:     NewContainer(cam, ContainerConfig{Name: "canvas"}),
	}
}

// Camera returns the scene camera, the root of every frame chain.
func (s *Scene) Camera() *Camera {
	return s.camera
}

// Canvas returns the full-window root container.
func (s *Scene) Canvas() *Container {
	return s.canvas
}

// Frame returns the number of completed updates.
func (s *Scene) Frame() int {
	return s.frame
}

// BeforeUpdate registers fn to run at the start of every Update, before the
// camera and the tree advance. Scripts use it to queue the next segment's
// tweens from outside any Animator's Update.
func (s *Scene) BeforeUpdate(fn func(frame int) error) {
	s.beforeUpdate = append(s.beforeUpdate, fn)
}

// OnFrame registers fn to draw on top of the tree every frame, before the
// frame is presented. Useful for text overlays in pixel space.
func (s *Scene) OnFrame(fn func(r Renderer, frame int)) {
	s.overlays = append(s.overlays, fn)
}

// Update advances the scene by one frame: hooks, camera, then the canvas
// depth-first. Errors from individual nodes are joined and returned after
// every node has had its turn.
func (s *Scene) Update() error {
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	for _, fn := range s.beforeUpdate {
		if err := fn(s.frame); err != nil {
			return fmt.Errorf("frame %d: %w", s.frame, err)
		}
	}
	s.camera.Update()
	err := s.canvas.Update()
	s.frame++

	if s.debug {
		s.stats.updateTime = time.Since(t0)
	}
	if err != nil {
		return fmt.Errorf("frame %d: %w", s.frame-1, err)
	}
	return nil
}

// Draw draws the canvas tree to r without clearing or presenting.
func (s *Scene) Draw(r Renderer) {
	s.canvas.Draw(r)
}

// Render clears r, draws the tree and overlays, and presents. The camera
// resolution is refreshed from r first.
func (s *Scene) Render(r Renderer) {
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	s.camera.SetResolution(r.Size())
	r.Clear(s.Background)
	s.Draw(r)
	for _, fn := range s.overlays {
		fn(r, s.frame)
	}
	r.Present()

	if s.debug {
		s.stats.drawTime = time.Since(t0)
		s.stats.nodeCount, s.stats.tweenCount = 0, s.camera.anim.Len()
		countTree(s.canvas, &s.stats)
		s.debugLog(s.stats)
	}
}

// Tick runs one full frame against r. The frame is rendered even when some
// nodes failed to update; the update error is returned afterwards.
func (s *Scene) Tick(r Renderer) error {
	err := s.Update()
	s.Render(r)
	return err
}

// SetDebugMode enables or disables debug mode. When enabled, frame depth
// and child count warnings are printed, and per-frame timing stats are
// logged to stderr.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
}

// globalDebug mirrors the most recently set Scene debug flag so that node
// operations (which lack a Scene pointer) can check it cheaply. Only valid
// with a single Scene; multiple Scenes with differing debug modes will
// reflect whichever called SetDebugMode last.
var globalDebug bool
