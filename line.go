package sprig

// LineConfig configures a Line. Widths and arrow sizes are in the parent's
// local units.
type LineConfig struct {
	Name       string
	Start, End Vec2
	// Color defaults to white.
	Color Color
	// Width defaults to 0.001, which renders as a hairline outline.
	Width float64
	// StartArrow and EndArrow draw triangular heads.
	StartArrow, EndArrow bool
	// ArrowWidth is the half-width of an arrow head. Default 0.1.
	ArrowWidth float64
	// ArrowLength defaults to 0.15.
	ArrowLength float64
	// Pivot is the point Rotation turns the line about.
	Pivot Vec2
}

// Line is a straight segment drawn as a filled quad of the configured width,
// with optional arrow heads. Start, End, Rotation, Width, and Color may be
// animated.
type Line struct {
	identitySpace
	Name       string
	Start, End Vec2
	Color      Color
	Width      float64
	// Rotation turns the segment about Pivot, in radians.
	Rotation float64
	Pivot    Vec2

	startArrow, endArrow bool
	arrowWidth           float64
	arrowLength          float64

	anim Animator

	// Derived geometry, rebuilt on every Update.
	vertices   [4]Vec2
	startHead  [3]Vec2
	endHead    [3]Vec2
	pixelBuf   []Vec2
	unit       Vec2
	normal     Vec2
	start, end Vec2 // endpoints after rotation
}

// NewLine creates a line under parent and computes its initial geometry.
func NewLine(parent Frame, cfg LineConfig) *Line {
	if parent == nil {
		panic("sprig: line needs a parent frame")
	}
	if cfg.Color == (Color{}) {
		cfg.Color = ColorWhite
	}
	if cfg.Width <= 0 {
		cfg.Width = 0.001
	}
	if cfg.ArrowWidth <= 0 {
		cfg.ArrowWidth = 0.1
	}
	if cfg.ArrowLength <= 0 {
		cfg.ArrowLength = 0.15
	}
	l := &Line{
		Name:        cfg.Name,
		Start:       cfg.Start,
		End:         cfg.End,
		Color:       cfg.Color,
		Width:       cfg.Width,
		Pivot:       cfg.Pivot,
		startArrow:  cfg.StartArrow,
		endArrow:    cfg.EndArrow,
		arrowWidth:  cfg.ArrowWidth,
		arrowLength: cfg.ArrowLength,
	}
	l.parent = parent
	l.rebuild()
	return l
}

// NodeName returns the line's name.
func (l *Line) NodeName() string { return l.Name }

// ToPixel converts a point in the parent's space to pixels.
func (l *Line) ToPixel(p Vec2) Vec2 { return ChainToPixel(l, p) }

// SetParent re-parents the line.
func (l *Line) SetParent(parent Frame) error { return l.reparent(l, parent) }

// Animator exposes the line's tween queue.
func (l *Line) Animator() *Animator { return &l.anim }

// Midpoint returns the midpoint of the (rotated) segment.
func (l *Line) Midpoint() Vec2 {
	return l.start.Lerp(l.end, 0.5)
}

// Vertices returns the body quad in local coordinates.
func (l *Line) Vertices() [4]Vec2 {
	return l.vertices
}

// MoveTo animates both endpoints.
func (l *Line) MoveTo(start, end Vec2, timing Timing) (*Tween, error) {
	return l.anim.Animate(timing,
		To(&l.Start.X, start.X), To(&l.Start.Y, start.Y),
		To(&l.End.X, end.X), To(&l.End.Y, end.Y),
	)
}

// RotateBy animates Rotation by angle radians about Pivot.
func (l *Line) RotateBy(angle float64, timing Timing) (*Tween, error) {
	return l.anim.Animate(timing, By(&l.Rotation, angle))
}

// ChangeColorTo animates all four color components. The default easing for
// color changes is Linear.
func (l *Line) ChangeColorTo(c Color, timing Timing) (*Tween, error) {
	return l.anim.Animate(linearByDefault(timing), colorChannels(&l.Color, c)...)
}

// Update rebuilds the geometry from the current parameters, then advances
// the line's tweens.
func (l *Line) Update() error {
	l.rebuild()
	l.anim.Update()
	return nil
}

// Draw fills the body and arrow heads and strokes the anti-aliased outline.
func (l *Line) Draw(r Renderer) {
	l.pixelBuf = ToPixels(l, l.vertices[:], l.pixelBuf)
	r.DrawPolygonOutline(l.pixelBuf, l.Color)
	r.DrawFilledPolygon(l.pixelBuf, l.Color)
	if l.startArrow {
		l.pixelBuf = ToPixels(l, l.startHead[:], l.pixelBuf)
		r.DrawFilledPolygon(l.pixelBuf, l.Color)
	}
	if l.endArrow {
		l.pixelBuf = ToPixels(l, l.endHead[:], l.pixelBuf)
		r.DrawFilledPolygon(l.pixelBuf, l.Color)
	}
}

func (l *Line) rebuild() {
	l.start = l.Start
	l.end = l.End
	if l.Rotation != 0 {
		l.start = l.start.RotateAbout(l.Pivot, l.Rotation)
		l.end = l.end.RotateAbout(l.Pivot, l.Rotation)
	}
	l.unit = Displacement(l.start, l.end).Norm()
	l.normal = l.unit.Perp()

	// The body stops where an arrow head begins.
	bodyStart, bodyEnd := l.start, l.end
	if l.startArrow {
		bodyStart = l.start.Add(l.unit.Scale(l.arrowLength))
		l.startHead = l.arrowHead(bodyStart, l.unit.Scale(-1))
	}
	if l.endArrow {
		bodyEnd = l.end.Sub(l.unit.Scale(l.arrowLength))
		l.endHead = l.arrowHead(bodyEnd, l.unit)
	}

	halfW := l.normal.Scale(l.Width / 2)
	l.vertices = [4]Vec2{
		bodyEnd.Add(halfW),
		bodyEnd.Sub(halfW),
		bodyStart.Sub(halfW),
		bodyStart.Add(halfW),
	}
}

// arrowHead returns a triangle with its base centered on base, pointing
// along dir.
func (l *Line) arrowHead(base, dir Vec2) [3]Vec2 {
	n := dir.Perp().Scale(l.arrowWidth)
	return [3]Vec2{
		base.Add(n),
		base.Sub(n),
		base.Add(dir.Scale(l.arrowLength)),
	}
}

// colorChannels drives every component of *c toward target.
func colorChannels(c *Color, target Color) []Channel {
	return []Channel{
		To(&c.R, target.R),
		To(&c.G, target.G),
		To(&c.B, target.B),
		To(&c.A, target.A),
	}
}

func linearByDefault(t Timing) Timing {
	if t.Easing == nil {
		t.Easing = Linear
	}
	return t
}
