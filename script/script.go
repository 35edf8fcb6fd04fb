// Package script plays YAML timelines against a sprig scene.
//
// A timeline is a list of segments. Each segment queues a few actions (camera
// moves, curve variations, color changes, trace resets) and then lets the
// scene run for a number of frames:
//
//	fps: 30
//	segments:
//	  - name: intro
//	    seconds: 2
//	    actions:
//	      - do: zoom
//	        to: [2]
//	        seconds: 1
//	        easing: in-out-cubic
//	      - do: vary
//	        target: position
//	        eta: bump
//	        eps: [0, 1]
//	        a: [2, 2]
//	        b: [2.5, 2.5]
//
// Actions are checked when the timeline is loaded; targets are resolved
// against a Registry before the first frame runs.
package script

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/phanxgames/sprig"
)

var (
	// ErrBadAction is returned for malformed actions.
	ErrBadAction = errors.New("bad action")
	// ErrUnknownTarget is returned when an action names a target the
	// registry does not know, or one of the wrong kind.
	ErrUnknownTarget = errors.New("unknown target")
)

// Action verbs.
const (
	DoPan   = "pan"
	DoPanBy = "pan-by"
	DoZoom  = "zoom"
	DoMove  = "move"
	DoRange = "range"
	DoVary  = "vary"
	DoColor = "color"
	DoReset = "reset"
	DoStop  = "stop"
)

// Timeline is a parsed script.
type Timeline struct {
	// FPS converts seconds to frames. Defaults to 30.
	FPS      int       `yaml:"fps"`
	Segments []Segment `yaml:"segments"`
}

// Segment queues its actions and then runs the scene for its duration.
type Segment struct {
	Name    string   `yaml:"name"`
	Frames  int      `yaml:"frames"`
	Seconds float64  `yaml:"seconds"`
	Actions []Action `yaml:"actions"`
}

// Action is one animation request. Which fields apply depends on Do.
type Action struct {
	Do     string `yaml:"do"`
	Target string `yaml:"target"`

	// To is the pan target (x, y), pan offset (dx, dy), zoom level (z) or
	// move target (x, y).
	To []float64 `yaml:"to"`
	// X and Y are the new data ranges for "range".
	X []float64 `yaml:"x"`
	Y []float64 `yaml:"y"`

	// Eta names a registered perturbation for "vary"; Eps, A and B are
	// (start, end) pairs.
	Eta string    `yaml:"eta"`
	Eps []float64 `yaml:"eps"`
	A   []float64 `yaml:"a"`
	B   []float64 `yaml:"b"`

	// Color is a "#rrggbb" target for "color".
	Color string `yaml:"color"`

	// Frames or Seconds set the tween length; the segment length is used
	// when both are zero.
	Frames  int     `yaml:"frames"`
	Seconds float64 `yaml:"seconds"`
	Delay   int     `yaml:"delay"`
	Easing  string  `yaml:"easing"`
}

// Load reads and checks a timeline file.
func Load(path string) (*Timeline, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	tl, err := Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return tl, nil
}

// Parse decodes and checks a timeline. Unknown fields are rejected.
func Parse(r io.Reader) (*Timeline, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var tl Timeline
	if err := dec.Decode(&tl); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if tl.FPS <= 0 {
		tl.FPS = 30
	}
	if err := tl.check(); err != nil {
		return nil, err
	}
	return &tl, nil
}

// TotalFrames returns the length of the whole timeline.
func (tl *Timeline) TotalFrames() int {
	n := 0
	for i := range tl.Segments {
		n += tl.segmentFrames(&tl.Segments[i])
	}
	return n
}

func (tl *Timeline) seconds(s float64) int {
	return int(math.Round(s * float64(tl.FPS)))
}

func (tl *Timeline) segmentFrames(s *Segment) int {
	if s.Frames > 0 {
		return s.Frames
	}
	return tl.seconds(s.Seconds)
}

// timing resolves an action's duration and easing.
func (tl *Timeline) timing(seg *Segment, a *Action) (sprig.Timing, error) {
	frames := a.Frames
	if frames == 0 && a.Seconds > 0 {
		frames = tl.seconds(a.Seconds)
	}
	if frames == 0 {
		frames = tl.segmentFrames(seg)
	}
	t := sprig.Over(frames).After(a.Delay)
	if frames <= 0 {
		return t, fmt.Errorf("%s lasts no frames: %w", a.Do, sprig.ErrInvalidDuration)
	}
	if a.Easing != "" {
		e, ok := sprig.EasingByName(a.Easing)
		if !ok {
			return t, fmt.Errorf("%w: unknown easing %q", ErrBadAction, a.Easing)
		}
		t = t.With(e)
	}
	return t, nil
}

func (tl *Timeline) check() error {
	for i := range tl.Segments {
		seg := &tl.Segments[i]
		if seg.Frames < 0 || seg.Seconds < 0 {
			return fmt.Errorf("segment %s: negative duration: %w", segName(seg, i), sprig.ErrInvalidDuration)
		}
		for j := range seg.Actions {
			if err := tl.checkAction(seg, &seg.Actions[j]); err != nil {
				return fmt.Errorf("segment %s, action %d: %w", segName(seg, i), j, err)
			}
		}
	}
	return nil
}

func (tl *Timeline) checkAction(seg *Segment, a *Action) error {
	if a.Delay < 0 {
		return fmt.Errorf("%w: negative delay", ErrBadAction)
	}
	need := func(field string, v []float64, n int) error {
		if len(v) != n {
			return fmt.Errorf("%w: %s %q needs %d values in %s, got %d", ErrBadAction, a.Do, a.Target, n, field, len(v))
		}
		return nil
	}
	pair := func(field string, v []float64) error {
		if v == nil {
			return nil
		}
		return need(field, v, 2)
	}

	var err error
	switch a.Do {
	case DoPan, DoPanBy, DoMove:
		err = need("to", a.To, 2)
	case DoZoom:
		err = need("to", a.To, 1)
		if err == nil && a.To[0] <= 0 {
			err = fmt.Errorf("%w: zoom must be positive", ErrBadAction)
		}
	case DoRange:
		err = errors.Join(need("x", a.X, 2), need("y", a.Y, 2))
	case DoVary:
		err = errors.Join(pair("eps", a.Eps), pair("a", a.A), pair("b", a.B))
		if err == nil && a.Eta == "" && a.Eps == nil && a.A == nil && a.B == nil {
			err = fmt.Errorf("%w: vary changes nothing", ErrBadAction)
		}
	case DoColor:
		_, err = sprig.Hex(a.Color)
	case DoReset, DoStop:
		return nil
	default:
		return fmt.Errorf("%w: unknown verb %q", ErrBadAction, a.Do)
	}
	if err != nil {
		return err
	}
	_, err = tl.timing(seg, a)
	return err
}

func segName(seg *Segment, i int) string {
	if seg.Name != "" {
		return seg.Name
	}
	return fmt.Sprintf("#%d", i)
}

func rangeOf(v []float64) *sprig.Range {
	if v == nil {
		return nil
	}
	return &sprig.Range{Min: v[0], Max: v[1]}
}
