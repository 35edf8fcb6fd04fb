package sprig

import "math"

// CircleConfig configures a Circle.
type CircleConfig struct {
	Name   string
	Center Vec2
	// Radius defaults to 1, in the parent's units.
	Radius float64
	// Color defaults to white.
	Color Color
	// Filled fills the circle instead of stroking its outline.
	Filled bool
	// Resolution is the number of outline samples. Default 100.
	Resolution int
}

// Circle is a sampled circle in its parent's coordinates, so it appears as an
// ellipse inside graphs whose axes are scaled differently.
type Circle struct {
	identitySpace
	Name   string
	Center Vec2
	Radius float64
	Color  Color
	Filled bool

	resolution int
	anim       Animator
	points     []Vec2
	pixelBuf   []Vec2
}

// NewCircle creates a circle under parent and samples its outline.
func NewCircle(parent Frame, cfg CircleConfig) *Circle {
	if parent == nil {
		panic("sprig: circle needs a parent frame")
	}
	if cfg.Radius == 0 {
		cfg.Radius = 1
	}
	if cfg.Color == (Color{}) {
		cfg.Color = ColorWhite
	}
	if cfg.Resolution < 3 {
		cfg.Resolution = 100
	}
	c := &Circle{
		Name:       cfg.Name,
		Center:     cfg.Center,
		Radius:     cfg.Radius,
		Color:      cfg.Color,
		Filled:     cfg.Filled,
		resolution: cfg.Resolution,
	}
	c.parent = parent
	c.resample()
	return c
}

// NodeName returns the circle's name.
func (c *Circle) NodeName() string { return c.Name }

// ToPixel converts a point in the parent's space to pixels.
func (c *Circle) ToPixel(p Vec2) Vec2 { return ChainToPixel(c, p) }

// SetParent re-parents the circle.
func (c *Circle) SetParent(parent Frame) error { return c.reparent(c, parent) }

// Animator exposes the circle's tween queue.
func (c *Circle) Animator() *Animator { return &c.anim }

// Points returns the sampled outline in local coordinates. The returned
// slice MUST NOT be mutated.
func (c *Circle) Points() []Vec2 { return c.points }

// MoveTo animates Center.
func (c *Circle) MoveTo(center Vec2, timing Timing) (*Tween, error) {
	return c.anim.Animate(timing, To(&c.Center.X, center.X), To(&c.Center.Y, center.Y))
}

// ResizeTo animates Radius.
func (c *Circle) ResizeTo(radius float64, timing Timing) (*Tween, error) {
	return c.anim.Animate(timing, To(&c.Radius, radius))
}

// ChangeColorTo animates the color. The default easing is Linear.
func (c *Circle) ChangeColorTo(col Color, timing Timing) (*Tween, error) {
	return c.anim.Animate(linearByDefault(timing), colorChannels(&c.Color, col)...)
}

// Update resamples the outline, then advances the circle's tweens.
func (c *Circle) Update() error {
	c.resample()
	c.anim.Update()
	return nil
}

// Draw fills or strokes the outline.
func (c *Circle) Draw(r Renderer) {
	c.pixelBuf = ToPixels(c, c.points, c.pixelBuf)
	if c.Filled {
		r.DrawFilledPolygon(c.pixelBuf, c.Color)
		return
	}
	r.DrawPolygonOutline(c.pixelBuf, c.Color)
}

func (c *Circle) resample() {
	if cap(c.points) < c.resolution {
		c.points = make([]Vec2, c.resolution)
	}
	c.points = c.points[:c.resolution]
	step := 2 * math.Pi / float64(c.resolution-1)
	for i := range c.points {
		c.points[i] = c.Center.Add(Polar(c.Radius, float64(i)*step))
	}
}
