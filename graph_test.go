package sprig

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestAxisStops(t *testing.T) {
	tests := []struct {
		domain Range
		step   float64
		want   []float64
	}{
		{Range{-1, 6}, 1, []float64{-1, 1, 2, 3, 4, 5, 6}},
		{Range{0, 120}, 10, []float64{10, 20, 30, 40, 50, 60, 70, 80, 90, 100, 110, 120}},
		{Range{-1, 1}, 0.5, []float64{-1, -0.5, 0.5, 1}},
		{Range{0.5, 2}, 1, []float64{0.5, 1.5}},
	}
	for _, tt := range tests {
		got := axisStops(tt.domain, tt.step)
		if diff := cmp.Diff(tt.want, got, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
			t.Errorf("axisStops(%v, %v) mismatch (-want +got):\n%s", tt.domain, tt.step, diff)
		}
	}
	if n := len(axisStops(Range{-10, 10}, 0.5)); n != 40 {
		t.Errorf("default x axis has %d ticks, want 40", n)
	}
}

func TestGraphBuildsAxes(t *testing.T) {
	s := NewScene(1200, 600)
	g := s.Canvas().AddGraph(GraphConfig{
		XRange:       Range{-1, 6},
		YRange:       Range{-5, 20},
		TickInterval: 1,
	})
	if g.XAxis == nil || g.YAxis == nil {
		t.Fatal("axes not created")
	}
	if n := len(g.XAxis.Ticks()); n != 7 {
		t.Errorf("x ticks = %d, want 7", n)
	}
	if n := len(g.YAxis.Gridlines()); n != 25 {
		t.Errorf("y gridlines = %d, want 25", n)
	}
	// A y gridline spans the whole x range at its height.
	gl := g.YAxis.Gridlines()[0]
	want := []Vec2{{-1, -5}, {6, -5}}
	got := []Vec2{gl.Start, gl.End}
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("first y gridline (-want +got):\n%s", diff)
	}
	// Axis line runs along the domain.
	if l := g.XAxis.Line(); !approxVec(l.Start, V(-1, 0), epsilon) || !approxVec(l.End, V(6, 0), epsilon) {
		t.Errorf("x axis line = %v..%v", l.Start, l.End)
	}
	if l := g.YAxis.Line(); !approxVec(l.Start, V(0, -5), epsilon) || !approxVec(l.End, V(0, 20), epsilon) {
		t.Errorf("y axis line = %v..%v", l.Start, l.End)
	}
}

func TestGraphHideAxes(t *testing.T) {
	s := NewScene(100, 100)
	g := s.Canvas().AddGraph(GraphConfig{HideAxes: true})
	if g.XAxis != nil || g.YAxis != nil {
		t.Error("HideAxes still created axes")
	}
}

func TestGraphDefaults(t *testing.T) {
	s := NewScene(100, 100)
	g := s.Canvas().AddGraph(GraphConfig{})
	if g.XRange != (Range{-10, 10}) || g.YRange != (Range{-10, 10}) {
		t.Errorf("ranges = %v, %v", g.XRange, g.YRange)
	}
	if g.Dim != V(1, 1) {
		t.Errorf("Dim = %v", g.Dim)
	}
	if len(g.XAxis.Ticks()) != 40 || len(g.XAxis.Gridlines()) != 20 {
		t.Errorf("default ticks/gridlines = %d/%d, want 40/20",
			len(g.XAxis.Ticks()), len(g.XAxis.Gridlines()))
	}
}

func TestGraphRangeToRebuildsAxes(t *testing.T) {
	s := NewScene(100, 100)
	g := s.Canvas().AddGraph(GraphConfig{XRange: Range{0, 4}, YRange: Range{0, 4}, TickInterval: 1})
	before := g.XAxis
	g.RangeTo(Range{0, 8}, Range{0, 4}, Over(2).With(Linear))
	for i := 0; i < 2; i++ {
		if err := g.Update(); err != nil {
			t.Fatal(err)
		}
	}
	if g.XAxis == before {
		t.Error("axes were not rebuilt")
	}
	if g.XRange != (Range{0, 8}) {
		t.Errorf("XRange = %v, want [0, 8]", g.XRange)
	}
	if n := len(g.XAxis.Ticks()); n != 8 {
		t.Errorf("ticks after rebuild = %d, want 8", n)
	}
	// No change, no rebuild.
	after := g.XAxis
	g.Update()
	if g.XAxis != after {
		t.Error("axes rebuilt without a range change")
	}
}

func TestGraphMoveTo(t *testing.T) {
	s := NewScene(100, 100)
	g := s.Canvas().AddGraph(GraphConfig{Dim: V(0.5, 0.5), HideAxes: true})
	g.MoveTo(V(0.5, 0.5), Over(3))
	for i := 0; i < 3; i++ {
		g.Update()
	}
	if !approxVec(g.Pos, V(0.5, 0.5), epsilon) {
		t.Errorf("Pos = %v", g.Pos)
	}
	// Data-space top-left now sits at the screen center.
	if got := g.ToPixel(V(-10, 10)); !approxVec(got, V(50, 50), 1e-9) {
		t.Errorf("ToPixel = %v, want (50, 50)", got)
	}
}

func TestAxisGridlineDirectionFolded(t *testing.T) {
	cam := NewCamera(V(0.5, 0.5), 1, V(1, 1))
	a := NewAxis(cam, AxisConfig{Angle: math.Pi / 2, Domain: Range{-1, 1}, Extent: Range{-2, 3}})
	gl := a.Gridlines()[0]
	// Horizontal gridline at y = -1 pointing along +X.
	if !approxVec(gl.Start, V(-2, -1), 1e-9) || !approxVec(gl.End, V(3, -1), 1e-9) {
		t.Errorf("gridline = %v..%v", gl.Start, gl.End)
	}
}
