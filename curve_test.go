package sprig

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func newTestGraph() (*Scene, *Graph) {
	s := NewScene(1200, 600)
	g := s.Canvas().AddGraph(GraphConfig{HideAxes: true})
	return s, g
}

func TestCurveSamples(t *testing.T) {
	_, g := newTestGraph()
	c, err := g.AddCurve(CurveConfig{Func: math.Sin, Domain: Range{0, math.Pi}, Resolution: 3})
	if err != nil {
		t.Fatal(err)
	}
	xs, ys := c.Samples()
	opt := cmpopts.EquateApprox(0, 1e-12)
	if diff := cmp.Diff([]float64{0, math.Pi / 2, math.Pi}, xs, opt); diff != "" {
		t.Errorf("xs (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]float64{0, 1, 0}, ys, opt); diff != "" {
		t.Errorf("ys (-want +got):\n%s", diff)
	}
}

func TestCurveDefaults(t *testing.T) {
	_, g := newTestGraph()
	c, _ := g.AddCurve(CurveConfig{})
	if c.Resolution() != 100 || c.Domain != (Range{-math.Pi, math.Pi}) || c.Color != ColorBlue || c.Width != 2 {
		t.Errorf("defaults = res %d, domain %v, color %v, width %v", c.Resolution(), c.Domain, c.Color, c.Width)
	}
	xs, ys := c.Samples()
	if len(xs) != 100 || len(ys) != 100 {
		t.Fatalf("len = %d/%d", len(xs), len(ys))
	}
	if !approxEqual(ys[25], math.Sin(xs[25]), epsilon) {
		t.Error("default function is not sin")
	}
}

func TestCurveBatchDimensionMismatch(t *testing.T) {
	_, g := newTestGraph()
	c, err := g.AddCurve(CurveConfig{
		Resolution: 50,
		Batch:      func(xs []float64) ([]float64, error) { return make([]float64, 49), nil },
	})
	if !errors.Is(err, ErrDimensionMismatch) {
		t.Fatalf("err = %v, want ErrDimensionMismatch", err)
	}
	if c != nil {
		t.Error("curve returned alongside an error")
	}
	if len(g.Children()) != 0 {
		t.Error("failed curve was added to the graph")
	}
}

func TestCurveBatchErrorPropagates(t *testing.T) {
	_, g := newTestGraph()
	boom := errors.New("boom")
	fail := false
	c, err := g.AddCurve(CurveConfig{Batch: func(xs []float64) ([]float64, error) {
		if fail {
			return nil, boom
		}
		return xs, nil
	}})
	if err != nil {
		t.Fatal(err)
	}
	c.Animator().Add(mustTween(t, Over(1), By(&c.Eps, 1)))
	fail = true
	if err := c.Update(); !errors.Is(err, boom) {
		t.Errorf("Update err = %v, want boom", err)
	}
	if c.Animator().Len() != 1 {
		t.Error("tweens advanced on a failed frame")
	}
}

func mustTween(t *testing.T, timing Timing, chans ...Channel) *Tween {
	t.Helper()
	tw, err := NewTween(timing, chans...)
	if err != nil {
		t.Fatal(err)
	}
	return tw
}

func TestCurvePerturbation(t *testing.T) {
	_, g := newTestGraph()
	c, _ := g.AddCurve(CurveConfig{
		Func:       func(x float64) float64 { return 2 * x },
		Domain:     Range{0, 2},
		Resolution: 3,
		Eta:        func(x, a, b float64) float64 { return a*x + b },
		Eps:        0.5,
		A:          2,
		B:          1,
	})
	_, ys := c.Samples()
	// 2x + 0.5*(2x+1)
	want := []float64{0.5, 3.5, 6.5}
	if diff := cmp.Diff(want, ys, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		t.Errorf("ys (-want +got):\n%s", diff)
	}
}

func TestCurveVaryBy(t *testing.T) {
	_, g := newTestGraph()
	c, _ := g.AddCurve(CurveConfig{
		Func:       func(float64) float64 { return 0 },
		Domain:     Range{0, 1},
		Resolution: 4,
	})
	one := func(x, a, b float64) float64 { return 1 }

	tw, err := c.VaryBy(Variation{Eta: one, Eps: &Range{3, 5}, Timing: Over(2).After(1).With(Linear)})
	if err != nil {
		t.Fatal(err)
	}
	if c.Eta != nil || c.Eps != 0 {
		t.Fatal("variation touched the curve before activating")
	}

	c.Update() // delay frame
	if c.Eta != nil || c.Eps != 0 {
		t.Fatal("variation touched the curve during its delay")
	}
	c.Update() // activates: Eps snaps to 3, then moves halfway
	if c.Eta == nil {
		t.Fatal("eta not installed on activation")
	}
	if !approxEqual(c.Eps, 4, epsilon) {
		t.Errorf("Eps = %f after first active frame, want 4", c.Eps)
	}
	c.Update()
	if !tw.Done() || !approxEqual(c.Eps, 5, epsilon) {
		t.Errorf("Eps = %f, done = %v; want 5, true", c.Eps, tw.Done())
	}

	// Geometry lags the parameters by one frame.
	_, ys := c.Samples()
	if !approxEqual(ys[0], 4, epsilon) {
		t.Errorf("ys[0] = %f, want 4", ys[0])
	}
	c.Update()
	_, ys = c.Samples()
	if !approxEqual(ys[0], 5, epsilon) {
		t.Errorf("ys[0] = %f, want 5", ys[0])
	}
}

func TestCurveVaryByRejectsBadTiming(t *testing.T) {
	_, g := newTestGraph()
	c, _ := g.AddCurve(CurveConfig{})
	if _, err := c.VaryBy(Variation{Eps: &Range{0, 1}, Timing: Over(0)}); !errors.Is(err, ErrInvalidDuration) {
		t.Errorf("err = %v, want ErrInvalidDuration", err)
	}
	if c.Animator().Len() != 0 {
		t.Error("invalid variation was queued")
	}
}

func TestCurveVaryByEtaOnly(t *testing.T) {
	_, g := newTestGraph()
	c, _ := g.AddCurve(CurveConfig{Eps: 1})
	eta := func(x, a, b float64) float64 { return 7 }
	c.VaryBy(Variation{Eta: eta, Timing: Over(1)})
	c.Update()
	if c.Eta == nil || c.Eps != 1 {
		t.Errorf("eta-only variation: Eta set = %v, Eps = %f", c.Eta != nil, c.Eps)
	}
}

func TestCurveDrawsPolyline(t *testing.T) {
	_, g := newTestGraph()
	c, _ := g.AddCurve(CurveConfig{Resolution: 10, Width: 3})
	r := newRecordingRenderer(1200, 600)
	c.Draw(r)
	if n := r.count("line"); n != 9 {
		t.Errorf("segments = %d, want 9", n)
	}
	if r.calls[0].Width != 3 {
		t.Errorf("width = %f, want 3", r.calls[0].Width)
	}
}
