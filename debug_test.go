package sprig

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"
)

// captureStderr runs fn and returns what it wrote to os.Stderr.
func captureStderr(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stderr
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	os.Stderr = w
	defer func() { os.Stderr = old }()

	fn()
	w.Close()
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		t.Fatal(err)
	}
	return buf.String()
}

func TestDebugModeLogsFrameStats(t *testing.T) {
	s := NewScene(100, 100)
	s.SetDebugMode(true)
	defer s.SetDebugMode(false)

	g := s.Canvas().AddGraph(GraphConfig{HideAxes: true})
	g.AddCurve(CurveConfig{Resolution: 10})
	s.Camera().ZoomTo(2, Over(10))

	out := captureStderr(t, func() {
		if err := s.Tick(newRecordingRenderer(100, 100)); err != nil {
			t.Error(err)
		}
	})
	if !strings.Contains(out, "[sprig] frame 1") {
		t.Errorf("missing frame line in %q", out)
	}
	// canvas, graph, curve; one camera tween.
	if !strings.Contains(out, "nodes: 3 | tweens: 1") {
		t.Errorf("missing tree stats in %q", out)
	}
}

func TestDebugModeOffIsSilent(t *testing.T) {
	s := NewScene(100, 100)
	out := captureStderr(t, func() {
		s.Tick(newRecordingRenderer(100, 100))
	})
	if out != "" {
		t.Errorf("unexpected output %q", out)
	}
}

func TestDebugChildCountWarning(t *testing.T) {
	s := NewScene(100, 100)
	s.SetDebugMode(true)
	defer s.SetDebugMode(false)

	g := s.Canvas().AddGraph(GraphConfig{Name: "crowded", HideAxes: true})
	for i := 0; i < debugMaxChildCount; i++ {
		g.AddPoint(PointConfig{})
	}
	extra := NewPoint(s.Canvas(), PointConfig{})
	out := captureStderr(t, func() {
		if err := g.AddChild(extra); err != nil {
			t.Error(err)
		}
	})
	if !strings.Contains(out, `"crowded" has 1001 children`) {
		t.Errorf("missing child count warning in %q", out)
	}
}

func TestDebugFrameDepthWarning(t *testing.T) {
	s := NewScene(100, 100)
	s.SetDebugMode(true)
	defer s.SetDebugMode(false)

	c := s.Canvas()
	for i := 0; i < debugMaxFrameDepth; i++ {
		c = c.AddContainer(ContainerConfig{})
	}
	leaf := NewContainer(s.Canvas(), ContainerConfig{Name: "deep"})
	out := captureStderr(t, func() {
		if err := c.AddChild(leaf); err != nil {
			t.Error(err)
		}
	})
	if !strings.Contains(out, "frame depth") || !strings.Contains(out, `"deep"`) {
		t.Errorf("missing depth warning in %q", out)
	}
}
