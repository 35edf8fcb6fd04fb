package sprig

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestLineVertices(t *testing.T) {
	_, g := newTestGraph()
	l := g.AddLine(LineConfig{Start: V(0, 0), End: V(1, 0), Width: 0.2})
	want := [4]Vec2{{1, 0.1}, {1, -0.1}, {0, -0.1}, {0, 0.1}}
	if diff := cmp.Diff(want, l.Vertices(), cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		t.Errorf("vertices (-want +got):\n%s", diff)
	}
}

func TestLineEndArrowShortensBody(t *testing.T) {
	_, g := newTestGraph()
	l := g.AddLine(LineConfig{End: V(1, 0), Width: 0.2, EndArrow: true})
	v := l.Vertices()
	if !approxEqual(v[0].X, 0.85, epsilon) {
		t.Errorf("body ends at x = %f, want 0.85", v[0].X)
	}
	r := newRecordingRenderer(100, 100)
	l.Draw(r)
	if n := r.count("fill"); n != 2 {
		t.Errorf("fills = %d, want body + arrow", n)
	}
}

func TestLineDefaults(t *testing.T) {
	_, g := newTestGraph()
	l := g.AddLine(LineConfig{End: V(1, 1)})
	if l.Color != ColorWhite || l.Width != 0.001 {
		t.Errorf("defaults: color %v, width %v", l.Color, l.Width)
	}
}

func TestLineRotateBy(t *testing.T) {
	_, g := newTestGraph()
	l := g.AddLine(LineConfig{End: V(1, 0), Width: 0.2})
	if _, err := l.RotateBy(math.Pi/2, Over(1).With(Linear)); err != nil {
		t.Fatal(err)
	}
	l.Update() // rebuilds at 0, then rotates
	l.Update() // rebuilds at Pi/2
	want := [4]Vec2{{-0.1, 1}, {0.1, 1}, {0.1, 0}, {-0.1, 0}}
	if diff := cmp.Diff(want, l.Vertices(), cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("rotated vertices (-want +got):\n%s", diff)
	}
	if !approxVec(l.Midpoint(), V(0, 0.5), 1e-9) {
		t.Errorf("Midpoint = %v", l.Midpoint())
	}
}

func TestChangeColorToDefaultsToLinear(t *testing.T) {
	_, g := newTestGraph()
	l := g.AddLine(LineConfig{End: V(1, 0), Color: ColorBlack})
	l.ChangeColorTo(ColorWhite, Over(4))
	l.Update()
	if !approxEqual(l.Color.R, 0.25, epsilon) {
		t.Errorf("R after one of four frames = %f, want 0.25", l.Color.R)
	}
	for i := 0; i < 3; i++ {
		l.Update()
	}
	if diff := cmp.Diff(ColorWhite, l.Color, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("final color (-want +got):\n%s", diff)
	}
}

func TestCirclePoints(t *testing.T) {
	_, g := newTestGraph()
	c := g.AddCircle(CircleConfig{Center: V(1, 2), Radius: 3, Resolution: 5})
	pts := c.Points()
	if len(pts) != 5 {
		t.Fatalf("len = %d, want 5", len(pts))
	}
	if !approxVec(pts[0], V(4, 2), epsilon) || !approxVec(pts[4], V(4, 2), 1e-9) {
		t.Errorf("outline is not closed: %v ... %v", pts[0], pts[4])
	}
	for _, p := range pts {
		if !approxEqual(p.Dist(V(1, 2)), 3, 1e-9) {
			t.Errorf("%v is not on the circle", p)
		}
	}
}

func TestCircleResizeAndFill(t *testing.T) {
	_, g := newTestGraph()
	c := g.AddCircle(CircleConfig{Filled: true})
	c.ResizeTo(2, Over(2))
	c.Update()
	c.Update()
	c.Update()
	if !approxEqual(c.Points()[0].X, 2, 1e-9) {
		t.Errorf("radius after resize = %f, want 2", c.Points()[0].X)
	}
	r := newRecordingRenderer(100, 100)
	c.Draw(r)
	if r.count("fill") != 1 || r.count("outline") != 0 {
		t.Errorf("filled circle drew %v", r.calls)
	}
}

func TestPointFollowsFunc(t *testing.T) {
	_, g := newTestGraph()
	x := 1.0
	p := g.AddPoint(PointConfig{Func: func() Vec2 { return V(x, 2*x) }})
	if p.Position() != V(1, 2) {
		t.Errorf("initial Position = %v", p.Position())
	}
	x = 3
	p.Update()
	if p.Position() != V(3, 6) {
		t.Errorf("Position = %v, want (3, 6)", p.Position())
	}
	if p.Color != ColorRed || p.Radius != 2 {
		t.Errorf("defaults: %v, %v", p.Color, p.Radius)
	}
}

func TestLabel(t *testing.T) {
	s, g := newTestGraph()
	n := 0
	l := g.AddLabel(LabelConfig{Pos: V(-10, 10), Func: func() string {
		n++
		return "Action: 42"
	}})
	if err := s.Update(); err != nil {
		t.Fatal(err)
	}
	r := newRecordingRenderer(1200, 600)
	l.Draw(r)
	if len(r.texts) != 1 || r.texts[0] != "Action: 42" {
		t.Fatalf("texts = %v", r.texts)
	}
	if !approxVec(r.textAt[0], V(0, 0), epsilon) {
		t.Errorf("label at %v, want (0, 0)", r.textAt[0])
	}
	if n != 2 {
		t.Errorf("Func called %d times, want 2", n)
	}
	// Renderers without text support skip labels.
	l.Draw(plainRenderer{r})
	if len(r.texts) != 1 {
		t.Error("label drawn on a renderer without text support")
	}
}

func TestOffscreenPointsAndLabelsAreCulled(t *testing.T) {
	s, g := newTestGraph()
	cam := s.Camera()
	cam.Center, cam.Zoom = V(0.25, 0.25), 2

	// Data (-5, 5) sits at the view center, (5, -5) in the hidden quadrant.
	in := g.AddPoint(PointConfig{Pos: V(-5, 5)})
	out := g.AddPoint(PointConfig{Pos: V(5, -5)})
	inLabel := g.AddLabel(LabelConfig{Text: "in", Pos: V(-5, 5)})
	outLabel := g.AddLabel(LabelConfig{Text: "out", Pos: V(5, -5)})

	vb := cam.VisibleBounds()
	if !vb.Contains(0.25, 0.25) || vb.Contains(0.75, 0.75) {
		t.Fatalf("VisibleBounds = %+v", vb)
	}

	r := newRecordingRenderer(1200, 600)
	in.Draw(r)
	out.Draw(r)
	inLabel.Draw(r)
	outLabel.Draw(r)
	if got := r.count("circle"); got != 1 {
		t.Errorf("drew %d points, want 1", got)
	}
	if len(r.texts) != 1 || r.texts[0] != "in" {
		t.Errorf("texts = %v, want [in]", r.texts)
	}
	if !approxVec(r.textAt[0], V(600, 300), epsilon) {
		t.Errorf("label at %v, want (600, 300)", r.textAt[0])
	}
}

func TestPointOnScreenEdgeIsDrawn(t *testing.T) {
	_, g := newTestGraph()
	// x = -10 maps to pixel 0; half of the dot is still visible.
	p := g.AddPoint(PointConfig{Pos: V(-10, 0), Radius: 4})
	r := newRecordingRenderer(1200, 600)
	p.Draw(r)
	if r.count("circle") != 1 {
		t.Error("point straddling the left edge was culled")
	}
}

func TestRectIntersects(t *testing.T) {
	a := Rect{X: 0, Y: 0, Width: 10, Height: 10}
	for _, tt := range []struct {
		b    Rect
		want bool
	}{
		{Rect{X: 5, Y: 5, Width: 10, Height: 10}, true},
		{Rect{X: 10, Y: 0, Width: 5, Height: 5}, true},
		{Rect{X: 11, Y: 0, Width: 5, Height: 5}, false},
		{Rect{X: -3, Y: -3, Width: 2, Height: 2}, false},
	} {
		if got := a.Intersects(tt.b); got != tt.want {
			t.Errorf("Intersects(%+v) = %v, want %v", tt.b, got, tt.want)
		}
	}
}
