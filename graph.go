package sprig

// GraphConfig configures a Graph. Zero values pick the defaults noted on
// each field.
type GraphConfig struct {
	Name string
	// Pos and Dim place the graph as fractions of its parent. Dim defaults
	// to (1, 1).
	Pos, Dim Vec2
	// XRange and YRange are the visible data ranges. Default [-10, 10].
	XRange, YRange Range
	// TickInterval is the spacing of axis ticks. Default 0.5.
	TickInterval float64
	// GridlineInterval is the spacing of gridlines. Default 1.
	GridlineInterval float64
	// AxisColor and TickColor default to white, GridlineColor to dark gray.
	AxisColor, TickColor, GridlineColor Color
	// HideAxes skips creating the axes.
	HideAxes bool
}

func (cfg *GraphConfig) defaults() {
	if cfg.Dim == (Vec2{}) {
		cfg.Dim = Vec2{1, 1}
	}
	if cfg.XRange == (Range{}) {
		cfg.XRange = Range{-10, 10}
	}
	if cfg.YRange == (Range{}) {
		cfg.YRange = Range{-10, 10}
	}
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = 0.5
	}
	if cfg.GridlineInterval <= 0 {
		cfg.GridlineInterval = 1
	}
	if cfg.AxisColor == (Color{}) {
		cfg.AxisColor = ColorWhite
	}
	if cfg.TickColor == (Color{}) {
		cfg.TickColor = ColorWhite
	}
	if cfg.GridlineColor == (Color{}) {
		cfg.GridlineColor = ColorGray
	}
}

// Graph is a rectangular region of its parent with its own data coordinate
// system: XRange maps left to right and YRange bottom to top. Children added
// through the Add* methods are positioned in data coordinates.
type Graph struct {
	link
	Name   string
	Pos    Vec2
	Dim    Vec2
	XRange Range
	YRange Range

	// XAxis and YAxis are nil when the graph was created with HideAxes.
	XAxis, YAxis *Axis

	cfg      GraphConfig
	builtX   Range
	builtY   Range
	anim     Animator
	children group
}

// NewGraph creates a graph under parent. Panics if parent is nil.
func NewGraph(parent Frame, cfg GraphConfig) *Graph {
	if parent == nil {
		panic("sprig: graph needs a parent frame")
	}
	cfg.defaults()
	g := &Graph{
		link:   link{parent: parent},
		Name:   cfg.Name,
		Pos:    cfg.Pos,
		Dim:    cfg.Dim,
		XRange: cfg.XRange,
		YRange: cfg.YRange,
		cfg:    cfg,
	}
	g.buildAxes()
	return g
}

// NodeName returns the graph's name.
func (g *Graph) NodeName() string { return g.Name }

// ToParent maps a data-space point to the unit square of the graph (with Y
// flipped so larger values sit higher) and then into the parent's space.
func (g *Graph) ToParent(p Vec2) Vec2 {
	x := (p.X-g.XRange.Min)/g.XRange.Span()*g.Dim.X + g.Pos.X
	y := (g.YRange.Max-p.Y)/g.YRange.Span()*g.Dim.Y + g.Pos.Y
	return Vec2{x, y}
}

// ParentMatrix returns the matrix equivalent of ToParent.
func (g *Graph) ParentMatrix() Matrix {
	sx := g.Dim.X / g.XRange.Span()
	sy := g.Dim.Y / g.YRange.Span()
	return Matrix{sx, 0, 0, -sy, g.Pos.X - g.XRange.Min*sx, g.Pos.Y + g.YRange.Max*sy}
}

// ToPixel converts a data-space point to device pixels.
func (g *Graph) ToPixel(p Vec2) Vec2 {
	return ChainToPixel(g, p)
}

// SetParent re-parents the graph.
func (g *Graph) SetParent(parent Frame) error {
	return g.reparent(g, parent)
}

func (g *Graph) members() *group { return &g.children }

// AddChild moves child under this graph; it is then positioned in data
// coordinates.
func (g *Graph) AddChild(child Child) error {
	return attach(g, child)
}

// RemoveChild removes child from the update and draw passes.
func (g *Graph) RemoveChild(child Element) bool {
	return g.children.remove(child)
}

// Children returns the child list, axes excluded. The returned slice MUST
// NOT be mutated.
func (g *Graph) Children() []Element {
	return g.children.items
}

// AddCurve creates a curve in data coordinates. The curve is sampled once
// immediately so configuration errors surface here.
func (g *Graph) AddCurve(cfg CurveConfig) (*Curve, error) {
	c, err := NewCurve(g, cfg)
	if err != nil {
		return nil, err
	}
	g.children.add(c)
	return c, nil
}

// AddLine creates a line in data coordinates.
func (g *Graph) AddLine(cfg LineConfig) *Line {
	l := NewLine(g, cfg)
	g.children.add(l)
	return l
}

// AddCircle creates a circle in data coordinates.
func (g *Graph) AddCircle(cfg CircleConfig) *Circle {
	c := NewCircle(g, cfg)
	g.children.add(c)
	return c
}

// AddPoint creates a point in data coordinates.
func (g *Graph) AddPoint(cfg PointConfig) *Point {
	p := NewPoint(g, cfg)
	g.children.add(p)
	return p
}

// AddTrace creates an empty trace; bind it with SetLeader.
func (g *Graph) AddTrace(cfg TraceConfig) *Trace {
	t := NewTrace(g, cfg)
	g.children.add(t)
	return t
}

// AddLabel creates a text label anchored at a data-space position.
func (g *Graph) AddLabel(cfg LabelConfig) *Label {
	l := NewLabel(g, cfg)
	g.children.add(l)
	return l
}

// MoveTo animates Pos to target.
func (g *Graph) MoveTo(target Vec2, timing Timing) (*Tween, error) {
	return g.anim.Animate(timing, To(&g.Pos.X, target.X), To(&g.Pos.Y, target.Y))
}

// RangeTo animates the visible data ranges. Axes are rebuilt on frames where
// the ranges changed.
func (g *Graph) RangeTo(x, y Range, timing Timing) (*Tween, error) {
	return g.anim.Animate(timing,
		To(&g.XRange.Min, x.Min), To(&g.XRange.Max, x.Max),
		To(&g.YRange.Min, y.Min), To(&g.YRange.Max, y.Max),
	)
}

// Animator exposes the graph's tween queue.
func (g *Graph) Animator() *Animator { return &g.anim }

// Update advances the graph's tweens, rebuilds the axes if the ranges moved,
// then updates the children in order.
func (g *Graph) Update() error {
	g.anim.Update()
	if g.XRange != g.builtX || g.YRange != g.builtY {
		g.buildAxes()
	}
	return g.children.update()
}

// Draw draws the axes and then the children.
func (g *Graph) Draw(r Renderer) {
	if g.XAxis != nil {
		g.XAxis.Draw(r)
	}
	if g.YAxis != nil {
		g.YAxis.Draw(r)
	}
	g.children.draw(r)
}

func (g *Graph) buildAxes() {
	g.builtX, g.builtY = g.XRange, g.YRange
	if g.cfg.HideAxes {
		return
	}
	g.XAxis = NewAxis(g, AxisConfig{
		Name:             "x axis",
		Angle:            0,
		Domain:           g.XRange,
		Extent:           g.YRange,
		TickInterval:     g.cfg.TickInterval,
		GridlineInterval: g.cfg.GridlineInterval,
		AxisColor:        g.cfg.AxisColor,
		TickColor:        g.cfg.TickColor,
		GridlineColor:    g.cfg.GridlineColor,
	})
	g.YAxis = NewAxis(g, AxisConfig{
		Name:             "y axis",
		Angle:            halfPi,
		Domain:           g.YRange,
		Extent:           g.XRange,
		TickInterval:     g.cfg.TickInterval,
		GridlineInterval: g.cfg.GridlineInterval,
		AxisColor:        g.cfg.AxisColor,
		TickColor:        g.cfg.TickColor,
		GridlineColor:    g.cfg.GridlineColor,
	})
}
