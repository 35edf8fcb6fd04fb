package sprig

import (
	"errors"
	"strings"
	"testing"
)

func TestContainerToParent(t *testing.T) {
	cam := NewCamera(V(0.5, 0.5), 1, V(100, 100))
	c := NewContainer(cam, ContainerConfig{Pos: V(0.5, 0.25), Dim: V(0.5, 0.5)})
	if got := c.ToParent(V(1, 1)); got != V(1, 0.75) {
		t.Errorf("ToParent(1,1) = %v, want (1, 0.75)", got)
	}
	if got := c.ToPixel(V(0, 0)); !approxVec(got, V(50, 25), epsilon) {
		t.Errorf("ToPixel(0,0) = %v, want (50, 25)", got)
	}
}

func TestContainerDefaultDimFillsParent(t *testing.T) {
	cam := NewCamera(V(0.5, 0.5), 1, V(100, 100))
	c := NewContainer(cam, ContainerConfig{})
	if c.Dim != V(1, 1) {
		t.Errorf("Dim = %v, want (1, 1)", c.Dim)
	}
}

func TestNewContainerNilParentPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	NewContainer(nil, ContainerConfig{})
}

func TestContainerUpdatesOwnTweensThenChildren(t *testing.T) {
	s := NewScene(100, 100)
	outer := s.Canvas().AddContainer(ContainerConfig{})
	var seen []float64
	g := outer.AddGraph(GraphConfig{HideAxes: true})
	g.AddPoint(PointConfig{Func: func() Vec2 {
		seen = append(seen, outer.Pos.X)
		return Vec2{}
	}})
	outer.MoveTo(V(1, 0), Over(1))

	seen = nil
	if err := outer.Update(); err != nil {
		t.Fatal(err)
	}
	if len(seen) != 1 || !approxEqual(seen[0], 1, epsilon) {
		t.Errorf("child saw Pos.X = %v, want [1]", seen)
	}
}

func TestUpdateErrorsDoNotStopSiblings(t *testing.T) {
	s := NewScene(100, 100)
	g := s.Canvas().AddGraph(GraphConfig{HideAxes: true})

	broken := false
	_, err := g.AddCurve(CurveConfig{
		Name:       "lagrangian",
		Resolution: 10,
		Batch: func(xs []float64) ([]float64, error) {
			if broken {
				return xs[1:], nil
			}
			return make([]float64, len(xs)), nil
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	calls := 0
	g.AddPoint(PointConfig{Func: func() Vec2 { calls++; return Vec2{} }})
	calls = 0

	broken = true
	err = s.Update()
	if !errors.Is(err, ErrDimensionMismatch) {
		t.Fatalf("Update err = %v, want ErrDimensionMismatch", err)
	}
	if !strings.Contains(err.Error(), "lagrangian") {
		t.Errorf("error %q does not name the failing node", err)
	}
	if calls != 1 {
		t.Errorf("sibling updated %d times, want 1", calls)
	}

	broken = false
	if err := s.Update(); err != nil {
		t.Errorf("recovered Update err = %v", err)
	}
}

func TestAddChildMovesBetweenHolders(t *testing.T) {
	s := NewScene(100, 100)
	a := s.Canvas().AddContainer(ContainerConfig{Name: "a"})
	b := s.Canvas().AddContainer(ContainerConfig{Name: "b"})
	g := a.AddGraph(GraphConfig{Name: "g"})

	if err := b.AddChild(g); err != nil {
		t.Fatal(err)
	}
	if len(a.Children()) != 0 || len(b.Children()) != 1 {
		t.Errorf("children: a=%d b=%d, want 0 and 1", len(a.Children()), len(b.Children()))
	}
	if g.Parent() != Frame(b) {
		t.Error("graph parent not updated")
	}
}

func TestRemoveChild(t *testing.T) {
	s := NewScene(100, 100)
	g := s.Canvas().AddGraph(GraphConfig{HideAxes: true})
	l := g.AddLine(LineConfig{End: V(1, 0)})
	c := g.AddCircle(CircleConfig{})

	if !g.RemoveChild(l) {
		t.Fatal("RemoveChild returned false")
	}
	if g.RemoveChild(l) {
		t.Error("second RemoveChild returned true")
	}
	if kids := g.Children(); len(kids) != 1 || kids[0] != Element(c) {
		t.Errorf("Children = %v, want only the circle", kids)
	}
	// Removed nodes keep converting coordinates.
	_ = l.ToPixel(V(0, 0))
}

func TestDrawFollowsTreeOrder(t *testing.T) {
	s := NewScene(100, 100)
	g := s.Canvas().AddGraph(GraphConfig{HideAxes: true})
	g.AddLine(LineConfig{End: V(1, 0)})
	g.AddPoint(PointConfig{})
	g.AddCircle(CircleConfig{})

	r := newRecordingRenderer(100, 100)
	s.Draw(r)
	var kinds []string
	for _, c := range r.calls {
		kinds = append(kinds, c.Kind)
	}
	want := []string{"outline", "fill", "circle", "outline"}
	if strings.Join(kinds, ",") != strings.Join(want, ",") {
		t.Errorf("draw order = %v, want %v", kinds, want)
	}
}
