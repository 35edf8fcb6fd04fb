package sprig

import (
	"errors"
	"testing"
)

func TestTweenReachesEnd(t *testing.T) {
	easings := map[string]Easing{"linear": Linear, "smooth": Smooth}
	for name, e := range easings {
		for _, delay := range []int{0, 1, 5} {
			v := 2.0
			tw, err := NewTween(Over(17).After(delay).With(e), FromTo(&v, 2, 7))
			if err != nil {
				t.Fatal(err)
			}
			for i := 0; i < delay+17; i++ {
				tw.Step()
			}
			if !tw.Done() {
				t.Errorf("%s delay %d: not done after delay+frames steps", name, delay)
			}
			if !approxEqual(v, 7, epsilon) {
				t.Errorf("%s delay %d: v = %f, want 7", name, delay, v)
			}
		}
	}
}

func TestTweenDelayIsInert(t *testing.T) {
	v := 1.0
	tw, err := NewTween(Over(4).After(5).With(Linear), To(&v, 9))
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 5; i++ {
		tw.Step()
		if v != 1 {
			t.Fatalf("step %d inside delay changed v to %f", i+1, v)
		}
		if i < 4 && !tw.Waiting() {
			t.Fatalf("step %d: Waiting = false inside delay", i+1)
		}
	}
	tw.Step()
	if !approxEqual(v, 3, epsilon) {
		t.Errorf("first active step: v = %f, want 3", v)
	}
}

func TestTweenZeroDelayFirstStepActive(t *testing.T) {
	v := 0.0
	tw, _ := NewTween(Over(2).With(Linear), To(&v, 1))
	tw.Step()
	if !approxEqual(v, 0.5, epsilon) {
		t.Errorf("v = %f after first step, want 0.5", v)
	}
	if tw.Elapsed() != 1 || !approxEqual(tw.Progress(), 0.5, epsilon) {
		t.Errorf("Elapsed = %d, Progress = %f", tw.Elapsed(), tw.Progress())
	}
}

func TestTweenCompletionIsIdempotent(t *testing.T) {
	v := 0.0
	tw, _ := NewTween(Over(3), To(&v, 10))
	for i := 0; i < 3; i++ {
		tw.Step()
	}
	want := v
	for i := 0; i < 10; i++ {
		tw.Step()
		if v != want {
			t.Fatalf("step after completion changed v to %f", v)
		}
		if !tw.Done() {
			t.Fatal("Done flipped back to false")
		}
	}
}

func TestTweenLazyStartSnapshotsAfterDelay(t *testing.T) {
	v := 0.0
	tw, _ := NewTween(Over(4).After(2).With(Linear), To(&v, 10))
	tw.Step()
	v = 6 // moved by someone else during the delay window
	tw.Step()
	for i := 0; i < 4; i++ {
		tw.Step()
	}
	if !approxEqual(v, 10, epsilon) {
		t.Errorf("v = %f, want 10", v)
	}
}

func TestTweensAccumulate(t *testing.T) {
	v := 0.0
	a, _ := NewTween(Over(4), By(&v, 1))
	b, _ := NewTween(Over(2).After(1), By(&v, 2))
	for i := 0; i < 4; i++ {
		a.Step()
		b.Step()
	}
	if !approxEqual(v, 3, epsilon) {
		t.Errorf("v = %f, want 3", v)
	}
}

func TestTweenSnapToStart(t *testing.T) {
	v := 100.0
	tw, _ := NewTween(Over(2).After(1).With(Linear), FromTo(&v, 0, 4).SnapToStart())
	tw.Step()
	if v != 100 {
		t.Fatalf("snap happened during delay: v = %f", v)
	}
	tw.Step()
	if !approxEqual(v, 2, epsilon) {
		t.Errorf("v = %f after first active step, want 2", v)
	}
	tw.Step()
	if !approxEqual(v, 4, epsilon) {
		t.Errorf("v = %f at end, want 4", v)
	}
}

func TestTweenSnapIgnoredForTo(t *testing.T) {
	c := To(new(float64), 1).SnapToStart()
	if c.snap {
		t.Error("SnapToStart should be a no-op for To channels")
	}
}

func TestTweenConstructionErrors(t *testing.T) {
	v := 0.0
	tests := []struct {
		name   string
		timing Timing
		chans  []Channel
		want   error
	}{
		{"zero frames", Over(0), []Channel{To(&v, 1)}, ErrInvalidDuration},
		{"negative frames", Over(-3), []Channel{To(&v, 1)}, ErrInvalidDuration},
		{"negative delay", Over(3).After(-1), []Channel{To(&v, 1)}, ErrInvalidDelay},
		{"no channels", Over(3), nil, ErrNoChannels},
		{"nil field", Over(3), []Channel{To(nil, 1)}, ErrDanglingReference},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tw, err := NewTween(tt.timing, tt.chans...)
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
			if tw != nil {
				t.Error("tween returned alongside an error")
			}
		})
	}
}

func TestTweenStartHookRunsOnActivation(t *testing.T) {
	v := 0.0
	calls := 0
	tw, _ := NewTween(Over(2).After(2), By(&v, 1))
	tw.onStart = func() { calls++ }
	for i := 0; i < 6; i++ {
		tw.Step()
		if i < 2 && calls != 0 {
			t.Fatalf("hook ran during delay (step %d)", i+1)
		}
	}
	if calls != 1 {
		t.Errorf("hook ran %d times, want 1", calls)
	}
}
