package sprig

import (
	"fmt"
	"math"
)

// EtaFunc is a shape perturbation added to a curve as Eps*eta(x, a, b).
type EtaFunc func(x, a, b float64) float64

// BatchFunc evaluates a curve over all sample positions at once. It must
// return exactly one value per input.
type BatchFunc func(xs []float64) ([]float64, error)

// CurveConfig configures a Curve. Exactly one of Func and Batch is used;
// Batch wins when both are set. With neither, the curve plots sin(x).
type CurveConfig struct {
	Name  string
	Func  func(x float64) float64
	Batch BatchFunc
	// Domain is the sampled x interval. Default [-Pi, Pi].
	Domain Range
	// Color defaults to blue.
	Color Color
	// Width is the stroke width in pixels. Default 2.
	Width float64
	// Resolution is the number of samples. Default 100.
	Resolution int

	// Eta, Eps, A and B set the initial perturbation.
	Eta  EtaFunc
	Eps  float64
	A, B float64
}

// Curve plots y = f(x) + Eps*Eta(x, A, B) over a fixed grid of samples.
// The samples are recomputed on every Update, before the curve's own tweens
// run, so Eps, A and B can be animated with VaryBy.
type Curve struct {
	identitySpace
	Name   string
	Domain Range
	Color  Color
	Width  float64

	// Perturbation parameters.
	Eta  EtaFunc
	Eps  float64
	A, B float64

	fn         func(float64) float64
	batch      BatchFunc
	resolution int

	anim     Animator
	xs, ys   []float64
	points   []Vec2
	pixelBuf []Vec2
}

func newCurve(parent Frame, cfg CurveConfig) *Curve {
	if parent == nil {
		panic("sprig: curve needs a parent frame")
	}
	if cfg.Func == nil && cfg.Batch == nil {
		cfg.Func = math.Sin
	}
	if cfg.Domain == (Range{}) {
		cfg.Domain = Range{-math.Pi, math.Pi}
	}
	if cfg.Color == (Color{}) {
		cfg.Color = ColorBlue
	}
	if cfg.Width <= 0 {
		cfg.Width = 2
	}
	if cfg.Resolution < 2 {
		cfg.Resolution = 100
	}
	c := &Curve{
		Name:       cfg.Name,
		Domain:     cfg.Domain,
		Color:      cfg.Color,
		Width:      cfg.Width,
		Eta:        cfg.Eta,
		Eps:        cfg.Eps,
		A:          cfg.A,
		B:          cfg.B,
		fn:         cfg.Func,
		batch:      cfg.Batch,
		resolution: cfg.Resolution,
	}
	c.parent = parent
	return c
}

// NewCurve creates a curve under parent and samples it once.
func NewCurve(parent Frame, cfg CurveConfig) (*Curve, error) {
	c := newCurve(parent, cfg)
	if err := c.resample(); err != nil {
		return nil, err
	}
	return c, nil
}

// NodeName returns the curve's name.
func (c *Curve) NodeName() string { return c.Name }

// ToPixel converts a data-space point to pixels.
func (c *Curve) ToPixel(p Vec2) Vec2 { return ChainToPixel(c, p) }

// SetParent re-parents the curve.
func (c *Curve) SetParent(parent Frame) error { return c.reparent(c, parent) }

// Animator exposes the curve's tween queue.
func (c *Curve) Animator() *Animator { return &c.anim }

// Resolution returns the number of samples.
func (c *Curve) Resolution() int { return c.resolution }

// Samples returns the sample positions and values from the last Update.
// The returned slices MUST NOT be mutated.
func (c *Curve) Samples() (xs, ys []float64) {
	return c.xs, c.ys
}

// Variation describes a perturbation animation. Nil ranges leave that
// parameter untouched; non-nil ranges are written to the curve when the
// variation activates and then driven to their Max.
type Variation struct {
	Eta    EtaFunc
	Eps    *Range
	A, B   *Range
	Timing Timing
}

// VaryBy queues a variation. Eta replaces the curve's perturbation function
// on the variation's first active frame, not before, so a delayed variation
// does not disturb one that is still running.
func (c *Curve) VaryBy(v Variation) (*Tween, error) {
	var channels []Channel
	add := func(field *float64, r *Range) {
		if r != nil {
			channels = append(channels, FromTo(field, r.Min, r.Max).SnapToStart())
		}
	}
	add(&c.Eps, v.Eps)
	add(&c.A, v.A)
	add(&c.B, v.B)
	if len(channels) == 0 {
		// Still takes a frame slot so a bare Eta swap happens on schedule.
		channels = append(channels, By(&c.Eps, 0))
	}
	tw, err := NewTween(v.Timing, channels...)
	if err != nil {
		return nil, fmt.Errorf("vary %s: %w", elementName(c), err)
	}
	if v.Eta != nil {
		eta := v.Eta
		tw.onStart = func() { c.Eta = eta }
	}
	c.anim.Add(tw)
	return tw, nil
}

// ChangeColorTo animates the stroke color. The default easing is Linear.
func (c *Curve) ChangeColorTo(col Color, timing Timing) (*Tween, error) {
	return c.anim.Animate(linearByDefault(timing), colorChannels(&c.Color, col)...)
}

// Update recomputes the samples and then advances the curve's tweens. A
// sample function that returns the wrong number of values fails with
// ErrDimensionMismatch and skips the tween step for this frame.
func (c *Curve) Update() error {
	if err := c.resample(); err != nil {
		return err
	}
	c.anim.Update()
	return nil
}

// Draw strokes the sampled polyline.
func (c *Curve) Draw(r Renderer) {
	c.pixelBuf = ToPixels(c, c.points, c.pixelBuf)
	drawPolyline(r, c.pixelBuf, c.Width, c.Color)
}

func (c *Curve) resample() error {
	c.xs = linspace(c.xs, c.Domain.Min, c.Domain.Max, c.resolution)
	if c.batch != nil {
		ys, err := c.batch(c.xs)
		if err != nil {
			return err
		}
		if len(ys) != len(c.xs) {
			return fmt.Errorf("%w: %d samples, batch function returned %d",
				ErrDimensionMismatch, len(c.xs), len(ys))
		}
		c.ys = append(c.ys[:0], ys...)
	} else {
		if cap(c.ys) < len(c.xs) {
			c.ys = make([]float64, len(c.xs))
		}
		c.ys = c.ys[:len(c.xs)]
		for i, x := range c.xs {
			c.ys[i] = c.fn(x)
		}
	}
	if c.Eta != nil && c.Eps != 0 {
		for i, x := range c.xs {
			c.ys[i] += c.Eps * c.Eta(x, c.A, c.B)
		}
	}
	if cap(c.points) < len(c.xs) {
		c.points = make([]Vec2, len(c.xs))
	}
	c.points = c.points[:len(c.xs)]
	for i := range c.xs {
		c.points[i] = Vec2{c.xs[i], c.ys[i]}
	}
	return nil
}
