package sprig

import "math"

const halfPi = math.Pi / 2

// AxisConfig configures an Axis. Graphs build their axes from their own
// config; standalone axes are rarely needed.
type AxisConfig struct {
	Name string
	// Angle is the direction of the axis in radians (0 = x, Pi/2 = y).
	Angle float64
	// Domain is the extent of the axis line along Angle.
	Domain Range
	// Extent is how far gridlines reach perpendicular to the axis.
	Extent Range
	// TickInterval and GridlineInterval default to 1.
	TickInterval     float64
	GridlineInterval float64
	// TickLength is the full tick length in data units. Default 0.1.
	TickLength float64
	// LineWidth is the axis line width in data units. Default 0.01.
	LineWidth float64
	AxisColor     Color
	TickColor     Color
	GridlineColor Color
}

// Axis draws an axis line with ticks and gridlines at regular intervals.
// Zero is skipped for ticks and gridlines since the other axis crosses there.
type Axis struct {
	identitySpace
	Name string

	line      *Line
	ticks     []*Line
	gridlines []*Line
}

// NewAxis builds the axis geometry under parent.
func NewAxis(parent Frame, cfg AxisConfig) *Axis {
	if parent == nil {
		panic("sprig: axis needs a parent frame")
	}
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = 1
	}
	if cfg.GridlineInterval <= 0 {
		cfg.GridlineInterval = 1
	}
	if cfg.TickLength <= 0 {
		cfg.TickLength = 0.1
	}
	if cfg.LineWidth <= 0 {
		cfg.LineWidth = 0.01
	}
	a := &Axis{Name: cfg.Name}
	a.parent = parent

	a.line = NewLine(a, LineConfig{
		Start: Polar(cfg.Domain.Min, cfg.Angle),
		End:   Polar(cfg.Domain.Max, cfg.Angle),
		Width: cfg.LineWidth,
		Color: cfg.AxisColor,
	})

	tickDir := cfg.Angle + halfPi
	for _, n := range axisStops(cfg.Domain, cfg.TickInterval) {
		pos := Polar(n, cfg.Angle)
		half := Polar(cfg.TickLength/2, tickDir)
		a.ticks = append(a.ticks, NewLine(a, LineConfig{
			Start: pos.Add(half),
			End:   pos.Sub(half),
			Color: cfg.TickColor,
		}))
	}

	// Folded into [0, Pi) so a vertical axis gets horizontal gridlines
	// pointing along +X.
	gridDir := math.Mod(cfg.Angle+halfPi, math.Pi)
	for _, n := range axisStops(cfg.Domain, cfg.GridlineInterval) {
		pos := Polar(n, cfg.Angle)
		a.gridlines = append(a.gridlines, NewLine(a, LineConfig{
			Start: pos.Add(Polar(cfg.Extent.Min, gridDir)),
			End:   pos.Add(Polar(cfg.Extent.Max, gridDir)),
			Color: cfg.GridlineColor,
		}))
	}
	return a
}

// axisStops returns min, min+step, ... up to and including max (within
// rounding), skipping zero. Stops never overshoot max.
func axisStops(domain Range, step float64) []float64 {
	const eps = 1e-9
	if domain.Span() < 0 {
		return nil
	}
	n := int(math.Floor(domain.Span()/step+eps)) + 1
	stops := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		v := domain.Min + float64(i)*step
		if math.Abs(v) < eps {
			continue
		}
		stops = append(stops, v)
	}
	return stops
}

// NodeName returns the axis name.
func (a *Axis) NodeName() string { return a.Name }

// ToPixel converts a point in the parent's data space to pixels.
func (a *Axis) ToPixel(p Vec2) Vec2 { return ChainToPixel(a, p) }

// SetParent re-parents the axis.
func (a *Axis) SetParent(parent Frame) error { return a.reparent(a, parent) }

// Ticks returns the tick lines. The returned slice MUST NOT be mutated.
func (a *Axis) Ticks() []*Line { return a.ticks }

// Gridlines returns the gridlines. The returned slice MUST NOT be mutated.
func (a *Axis) Gridlines() []*Line { return a.gridlines }

// Line returns the axis line.
func (a *Axis) Line() *Line { return a.line }

// Update rebuilds the geometry of every line.
func (a *Axis) Update() error {
	for _, l := range a.gridlines {
		l.Update()
	}
	a.line.Update()
	for _, l := range a.ticks {
		l.Update()
	}
	return nil
}

// Draw draws gridlines, then the axis line, then ticks.
func (a *Axis) Draw(r Renderer) {
	for _, l := range a.gridlines {
		l.Draw(r)
	}
	a.line.Draw(r)
	for _, l := range a.ticks {
		l.Draw(r)
	}
}
