package sprig

// PointConfig configures a Point.
type PointConfig struct {
	Name string
	Pos  Vec2
	// Func, when set, recomputes Pos on every Update.
	Func func() Vec2
	// Color defaults to red.
	Color Color
	// Radius is in pixels. Default 2.
	Radius float64
	// Width is the outline width in pixels; 0 fills the dot.
	Width float64
}

// Point is a dot of fixed pixel size at a position in its parent's space.
// Its position can follow a function, which makes it a natural leader for a
// Trace.
type Point struct {
	identitySpace
	Name   string
	Pos    Vec2
	Func   func() Vec2
	Color  Color
	Radius float64
	Width  float64

	anim Animator
}

// NewPoint creates a point under parent.
func NewPoint(parent Frame, cfg PointConfig) *Point {
	if parent == nil {
		panic("sprig: point needs a parent frame")
	}
	if cfg.Color == (Color{}) {
		cfg.Color = ColorRed
	}
	if cfg.Radius <= 0 {
		cfg.Radius = 2
	}
	p := &Point{
		Name:   cfg.Name,
		Pos:    cfg.Pos,
		Func:   cfg.Func,
		Color:  cfg.Color,
		Radius: cfg.Radius,
		Width:  cfg.Width,
	}
	p.parent = parent
	if p.Func != nil {
		p.Pos = p.Func()
	}
	return p
}

// NodeName returns the point's name.
func (p *Point) NodeName() string { return p.Name }

// ToPixel converts a point in the parent's space to pixels.
func (p *Point) ToPixel(v Vec2) Vec2 { return ChainToPixel(p, v) }

// SetParent re-parents the point.
func (p *Point) SetParent(parent Frame) error { return p.reparent(p, parent) }

// Animator exposes the point's tween queue.
func (p *Point) Animator() *Animator { return &p.anim }

// Position returns the current position in the parent's space.
func (p *Point) Position() Vec2 { return p.Pos }

// MoveTo animates Pos. Has no visible effect while Func is set.
func (p *Point) MoveTo(target Vec2, timing Timing) (*Tween, error) {
	return p.anim.Animate(timing, To(&p.Pos.X, target.X), To(&p.Pos.Y, target.Y))
}

// Update re-evaluates Func, then advances the point's tweens.
func (p *Point) Update() error {
	if p.Func != nil {
		p.Pos = p.Func()
	}
	p.anim.Update()
	return nil
}

// Draw draws the dot, unless it lies entirely off screen.
func (p *Point) Draw(r Renderer) {
	c := p.ToPixel(p.Pos)
	ext := p.Radius + p.Width/2
	if !viewport(r).Intersects(Rect{X: c.X - ext, Y: c.Y - ext, Width: 2 * ext, Height: 2 * ext}) {
		return
	}
	r.DrawCircle(c, p.Radius, p.Width, p.Color)
}
