package script

import (
	"context"
	"errors"
	"fmt"

	"github.com/phanxgames/sprig"
)

type (
	panner interface {
		PanTo(sprig.Vec2, sprig.Timing) (*sprig.Tween, error)
		PanBy(sprig.Vec2, sprig.Timing) (*sprig.Tween, error)
	}
	zoomer interface {
		ZoomTo(float64, sprig.Timing) (*sprig.Tween, error)
	}
	mover interface {
		MoveTo(sprig.Vec2, sprig.Timing) (*sprig.Tween, error)
	}
	ranger interface {
		RangeTo(x, y sprig.Range, timing sprig.Timing) (*sprig.Tween, error)
	}
	colorer interface {
		ChangeColorTo(sprig.Color, sprig.Timing) (*sprig.Tween, error)
	}
	resetter interface {
		Reset()
	}
	animated interface {
		Animator() *sprig.Animator
	}
)

// Player applies a timeline's segments as the scene reaches them.
type Player struct {
	tl  *Timeline
	reg *Registry

	base      int
	next      int
	nextStart int
	current   string
	attached  bool
}

// NewPlayer checks every action against reg and returns a player for tl.
// All unknown targets and perturbations are reported together.
func NewPlayer(tl *Timeline, reg *Registry) (*Player, error) {
	var errs []error
	for i := range tl.Segments {
		seg := &tl.Segments[i]
		for j := range seg.Actions {
			if err := resolve(reg, &seg.Actions[j]); err != nil {
				errs = append(errs, fmt.Errorf("segment %s, action %d: %w", segName(seg, i), j, err))
			}
		}
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return &Player{tl: tl, reg: reg}, nil
}

// resolve checks that an action's target exists and has the right kind.
func resolve(reg *Registry, a *Action) error {
	var err error
	switch a.Do {
	case DoPan, DoPanBy:
		_, err = lookup[panner](reg, a.Target)
	case DoZoom:
		_, err = lookup[zoomer](reg, a.Target)
	case DoMove:
		_, err = lookup[mover](reg, a.Target)
	case DoRange:
		_, err = lookup[ranger](reg, a.Target)
	case DoVary:
		if _, err = lookup[*sprig.Curve](reg, a.Target); err == nil {
			_, err = reg.eta(a.Eta)
		}
	case DoColor:
		_, err = lookup[colorer](reg, a.Target)
	case DoReset:
		_, err = lookup[resetter](reg, a.Target)
	case DoStop:
		_, err = lookup[animated](reg, a.Target)
	}
	return err
}

// TotalFrames returns the timeline length.
func (p *Player) TotalFrames() int {
	return p.tl.TotalFrames()
}

// Segment returns the name of the segment playing now.
func (p *Player) Segment() string {
	return p.current
}

// Done reports whether every segment has been started.
func (p *Player) Done() bool {
	return p.next >= len(p.tl.Segments)
}

// Attach hooks the player into scene so segments start on their frame. The
// timeline starts at the scene's current frame. Attaching twice is a no-op.
func (p *Player) Attach(scene *sprig.Scene) {
	if p.attached {
		return
	}
	p.attached = true
	p.base = scene.Frame()
	p.nextStart = p.base
	scene.BeforeUpdate(p.step)
}

// step starts every segment due at frame. Zero-length segments start
// together with the segment that follows them.
func (p *Player) step(frame int) error {
	for !p.Done() && frame >= p.nextStart {
		seg := &p.tl.Segments[p.next]
		if err := p.apply(seg); err != nil {
			return fmt.Errorf("segment %s: %w", segName(seg, p.next), err)
		}
		p.current = seg.Name
		p.nextStart += p.tl.segmentFrames(seg)
		p.next++
	}
	return nil
}

func (p *Player) apply(seg *Segment) error {
	for i := range seg.Actions {
		if err := p.do(seg, &seg.Actions[i]); err != nil {
			return fmt.Errorf("%s %s: %w", seg.Actions[i].Do, seg.Actions[i].Target, err)
		}
	}
	return nil
}

func (p *Player) do(seg *Segment, a *Action) error {
	switch a.Do {
	case DoReset:
		t, err := lookup[resetter](p.reg, a.Target)
		if err != nil {
			return err
		}
		t.Reset()
		return nil
	case DoStop:
		t, err := lookup[animated](p.reg, a.Target)
		if err != nil {
			return err
		}
		t.Animator().Clear()
		return nil
	}

	timing, err := p.tl.timing(seg, a)
	if err != nil {
		return err
	}
	switch a.Do {
	case DoPan, DoPanBy:
		t, err := lookup[panner](p.reg, a.Target)
		if err != nil {
			return err
		}
		v := sprig.V(a.To[0], a.To[1])
		if a.Do == DoPan {
			_, err = t.PanTo(v, timing)
		} else {
			_, err = t.PanBy(v, timing)
		}
		return err
	case DoZoom:
		t, err := lookup[zoomer](p.reg, a.Target)
		if err != nil {
			return err
		}
		_, err = t.ZoomTo(a.To[0], timing)
		return err
	case DoMove:
		t, err := lookup[mover](p.reg, a.Target)
		if err != nil {
			return err
		}
		_, err = t.MoveTo(sprig.V(a.To[0], a.To[1]), timing)
		return err
	case DoRange:
		t, err := lookup[ranger](p.reg, a.Target)
		if err != nil {
			return err
		}
		_, err = t.RangeTo(*rangeOf(a.X), *rangeOf(a.Y), timing)
		return err
	case DoVary:
		c, err := lookup[*sprig.Curve](p.reg, a.Target)
		if err != nil {
			return err
		}
		eta, err := p.reg.eta(a.Eta)
		if err != nil {
			return err
		}
		_, err = c.VaryBy(sprig.Variation{
			Eta:    eta,
			Eps:    rangeOf(a.Eps),
			A:      rangeOf(a.A),
			B:      rangeOf(a.B),
			Timing: timing,
		})
		return err
	case DoColor:
		t, err := lookup[colorer](p.reg, a.Target)
		if err != nil {
			return err
		}
		col, err := sprig.Hex(a.Color)
		if err != nil {
			return err
		}
		_, err = t.ChangeColorTo(col, timing)
		return err
	}
	return fmt.Errorf("%w: unknown verb %q", ErrBadAction, a.Do)
}

// Run plays the whole timeline through d, attaching the player to d's scene.
func Run(ctx context.Context, d *sprig.Driver, p *Player) error {
	if d.Scene == nil {
		return fmt.Errorf("run script: %w", sprig.ErrDanglingReference)
	}
	p.Attach(d.Scene)
	remaining := p.base + p.TotalFrames() - d.Scene.Frame()
	if remaining <= 0 {
		return nil
	}
	return d.Play(ctx, remaining)
}
