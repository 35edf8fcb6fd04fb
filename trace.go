package sprig

import (
	"fmt"
	"math"
)

// Leader is what a Trace follows. Points are the usual leaders.
type Leader interface {
	Child
	Position() Vec2
}

// TraceConfig configures a Trace.
type TraceConfig struct {
	Name string
	// Domain and Resolution set the gating distance Domain.Span()/Resolution.
	// Defaults [-Pi, Pi] and 100.
	Domain     Range
	Resolution int
	// Color defaults to blue.
	Color Color
	// FadeTo, when set, shades the path from FadeTo at the oldest point to
	// Color at the newest.
	FadeTo Color
	// Width is the stroke width in pixels. Default 2.
	Width float64
}

// Trace records the path of a leader. A new point is appended only when the
// leader has moved more than the gating distance from the last recorded
// point, so a stationary leader does not grow the history.
type Trace struct {
	identitySpace
	Name   string
	Color  Color
	FadeTo Color
	Width  float64

	domain     Range
	resolution int
	leader     Leader
	points     []Vec2
	pixelBuf   []Vec2
	anim       Animator
}

// NewTrace creates a trace with no leader. It draws nothing until SetLeader
// is called.
func NewTrace(parent Frame, cfg TraceConfig) *Trace {
	if parent == nil {
		panic("sprig: trace needs a parent frame")
	}
	if cfg.Domain == (Range{}) {
		cfg.Domain = Range{-math.Pi, math.Pi}
	}
	if cfg.Resolution <= 0 {
		cfg.Resolution = 100
	}
	if cfg.Color == (Color{}) {
		cfg.Color = ColorBlue
	}
	if cfg.Width <= 0 {
		cfg.Width = 2
	}
	t := &Trace{
		Name:       cfg.Name,
		Color:      cfg.Color,
		FadeTo:     cfg.FadeTo,
		Width:      cfg.Width,
		domain:     cfg.Domain,
		resolution: cfg.Resolution,
	}
	t.parent = parent
	return t
}

// NodeName returns the trace's name.
func (t *Trace) NodeName() string { return t.Name }

// ToPixel converts a point in the parent's space to pixels.
func (t *Trace) ToPixel(p Vec2) Vec2 { return ChainToPixel(t, p) }

// SetParent re-parents the trace.
func (t *Trace) SetParent(parent Frame) error { return t.reparent(t, parent) }

// Animator exposes the trace's tween queue.
func (t *Trace) Animator() *Animator { return &t.anim }

// SetLeader binds the trace to leader, moves the leader under the trace, and
// seeds the history with two copies of its current position. The trace now
// updates and draws the leader; a leader that was a member of a container or
// graph is removed from it, and one that led another trace leaves that trace
// empty.
func (t *Trace) SetLeader(leader Leader) error {
	if leader == nil {
		return fmt.Errorf("%w: nil trace leader", ErrDanglingReference)
	}
	old := leader.Parent()
	if err := leader.SetParent(t); err != nil {
		return fmt.Errorf("set leader: %w", err)
	}
	release(old, leader)
	t.leader = leader
	pos := leader.Position()
	t.points = append(t.points[:0], pos, pos)
	return nil
}

// dropLeader unbinds e if it is the current leader and clears the history.
func (t *Trace) dropLeader(e Element) {
	if t.leader == nil || Element(t.leader) != e {
		return
	}
	t.leader = nil
	clear(t.points)
	t.points = t.points[:0]
}

// Leader returns the bound leader, or nil.
func (t *Trace) Leader() Leader { return t.leader }

// Threshold returns the gating distance.
func (t *Trace) Threshold() float64 {
	return t.domain.Span() / float64(t.resolution)
}

// Points returns the recorded history. The returned slice MUST NOT be
// mutated.
func (t *Trace) Points() []Vec2 { return t.points }

// Reset truncates the history back to its two-point seed, for replaying a
// run. A trace with no leader is left empty.
func (t *Trace) Reset() {
	if len(t.points) > 2 {
		clear(t.points[2:])
		t.points = t.points[:2]
	}
}

// Update updates the leader and records its position if it moved far
// enough, then advances the trace's tweens. Without a leader only the tweens
// run.
func (t *Trace) Update() error {
	if t.leader != nil {
		if err := t.leader.Update(); err != nil {
			return fmt.Errorf("leader %s: %w", elementName(t.leader), err)
		}
		pos := t.leader.Position()
		if pos.Dist(t.points[len(t.points)-1]) > t.Threshold() {
			t.points = append(t.points, pos)
		}
	}
	t.anim.Update()
	return nil
}

// Draw strokes the recorded path, then draws the leader on top.
func (t *Trace) Draw(r Renderer) {
	if t.leader == nil {
		return
	}
	if len(t.points) > 1 {
		t.pixelBuf = ToPixels(t, t.points, t.pixelBuf)
		if t.FadeTo == (Color{}) {
			drawPolyline(r, t.pixelBuf, t.Width, t.Color)
		} else {
			last := float64(len(t.pixelBuf) - 2)
			for i := 0; i+1 < len(t.pixelBuf); i++ {
				f := 1.0
				if last > 0 {
					f = float64(i) / last
				}
				r.DrawLine(t.pixelBuf[i], t.pixelBuf[i+1], t.Width, t.FadeTo.Blend(t.Color, f))
			}
		}
	}
	t.leader.Draw(r)
}
