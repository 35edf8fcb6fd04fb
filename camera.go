package sprig

// Camera is the root of every frame chain. Its viewport spans a unit square
// of normalized scene coordinates at Zoom 1, centered on Center, and maps it
// onto the device Resolution.
//
// The camera is also animatable: PanTo and ZoomTo queue tweens on Center and
// Zoom that Update advances once per frame.
type Camera struct {
	// Center is the scene-space point shown in the middle of the screen.
	Center Vec2
	// Zoom is the magnification (1.0 = unit square fills the screen, >1 =
	// zoom in). It must stay positive; the camera does not clamp it.
	Zoom float64
	// Resolution is the device size in pixels. The driver refreshes it from
	// the renderer once per frame.
	Resolution Vec2

	anim Animator
}

// NewCamera creates a camera centered on center with the given zoom and
// device resolution.
func NewCamera(center Vec2, zoom float64, resolution Vec2) *Camera {
	return &Camera{Center: center, Zoom: zoom, Resolution: resolution}
}

// PanTo animates Center to target. The start is the center at the time the
// tween activates, after any delay.
func (c *Camera) PanTo(target Vec2, timing Timing) (*Tween, error) {
	return c.anim.Animate(timing, To(&c.Center.X, target.X), To(&c.Center.Y, target.Y))
}

// PanBy animates Center by offset.
func (c *Camera) PanBy(offset Vec2, timing Timing) (*Tween, error) {
	return c.anim.Animate(timing, By(&c.Center.X, offset.X), By(&c.Center.Y, offset.Y))
}

// ZoomTo animates Zoom to target. A target <= 0 yields a degenerate viewport.
func (c *Camera) ZoomTo(target float64, timing Timing) (*Tween, error) {
	return c.anim.Animate(timing, To(&c.Zoom, target))
}

// Update advances the camera's pan and zoom tweens by one frame.
func (c *Camera) Update() {
	c.anim.Update()
}

// Stop cancels every queued pan and zoom.
func (c *Camera) Stop() {
	c.anim.Clear()
}

// Animator exposes the camera's tween queue.
func (c *Camera) Animator() *Animator {
	return &c.anim
}

// SetResolution sets the device size in pixels.
func (c *Camera) SetResolution(width, height int) {
	c.Resolution = Vec2{X: float64(width), Y: float64(height)}
}

// topLeft returns the scene-space corner of the viewport.
func (c *Camera) topLeft() Vec2 {
	half := (1 / c.Zoom) / 2
	return Vec2{c.Center.X - half, c.Center.Y - half}
}

// ToPixel converts a point in normalized scene coordinates to device pixels.
func (c *Camera) ToPixel(p Vec2) Vec2 {
	rel := p.Sub(c.topLeft()).Scale(c.Zoom)
	return rel.Mul(c.Resolution)
}

// PixelMatrix returns the matrix equivalent of ToPixel.
func (c *Camera) PixelMatrix() Matrix {
	sx := c.Zoom * c.Resolution.X
	sy := c.Zoom * c.Resolution.Y
	tl := c.topLeft()
	return Matrix{sx, 0, 0, sy, -tl.X * sx, -tl.Y * sy}
}

// FromPixel converts device pixels back to normalized scene coordinates.
func (c *Camera) FromPixel(px Vec2) Vec2 {
	return c.PixelMatrix().Invert().Apply(px)
}

// VisibleBounds returns the scene-space rectangle currently on screen.
func (c *Camera) VisibleBounds() Rect {
	tl := c.topLeft()
	size := 1 / c.Zoom
	return Rect{X: tl.X, Y: tl.Y, Width: size, Height: size}
}
