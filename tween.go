package sprig

import "fmt"

// Timing describes when and how fast a Tween runs. Frames is the number of
// active frames and must be positive. Delay is the number of frames to wait
// before the first active frame. A nil Easing means Smooth.
type Timing struct {
	Frames int
	Delay  int
	Easing Easing
}

// Over is shorthand for a Timing of the given length with the default easing.
func Over(frames int) Timing {
	return Timing{Frames: frames}
}

// After returns a copy of t delayed by the given number of frames.
func (t Timing) After(delay int) Timing {
	t.Delay = delay
	return t
}

// With returns a copy of t using the given easing.
func (t Timing) With(e Easing) Timing {
	t.Easing = e
	return t
}

func (t Timing) validate() error {
	if t.Frames <= 0 {
		return fmt.Errorf("%w: got %d frames", ErrInvalidDuration, t.Frames)
	}
	if t.Delay < 0 {
		return fmt.Errorf("%w: got %d frames", ErrInvalidDelay, t.Delay)
	}
	return nil
}

type channelMode uint8

const (
	channelTo     channelMode = iota // start snapshotted lazily
	channelFromTo                    // start supplied explicitly
	channelBy                        // relative change
)

// Channel binds one float64 field to the change a Tween applies to it.
// Build channels with To, FromTo, or By.
type Channel struct {
	field *float64
	mode  channelMode
	start float64
	end   float64
	delta float64 // change per unit of progress, valid once the tween is active
	snap  bool
}

// To drives field to end. The start value is read from the field on the
// tween's first active frame, not at construction, so earlier tweens and
// the delay window are taken into account.
func To(field *float64, end float64) Channel {
	return Channel{field: field, mode: channelTo, end: end}
}

// FromTo drives field by end-start over the tween. The field is not reset to
// start unless SnapToStart is used.
func FromTo(field *float64, start, end float64) Channel {
	return Channel{field: field, mode: channelFromTo, start: start, end: end}
}

// By changes field by delta over the tween.
func By(field *float64, delta float64) Channel {
	return Channel{field: field, mode: channelBy, end: delta}
}

// SnapToStart makes an explicit-start channel write its start value to the
// field when the tween activates. No-op for To and By channels.
func (c Channel) SnapToStart() Channel {
	if c.mode == channelFromTo {
		c.snap = true
	}
	return c
}

// Tween is a time-bounded, delay-then-run, eased interpolation applied
// additively to one or more float64 fields. It is advanced by exactly one
// Step per frame, normally by the Animator that owns it.
//
// The fields a tween points at must outlive it. Tweens created through a
// node's Animator point into that node, so the node owns both.
type Tween struct {
	channels []Channel
	frames   int
	t        int // frames elapsed since the end of the delay window
	easing   Easing
	onStart  func()
}

// NewTween validates timing and returns a tween that has not run yet.
func NewTween(timing Timing, channels ...Channel) (*Tween, error) {
	if err := timing.validate(); err != nil {
		return nil, err
	}
	if len(channels) == 0 {
		return nil, ErrNoChannels
	}
	for i := range channels {
		if channels[i].field == nil {
			return nil, fmt.Errorf("%w: channel %d has a nil field", ErrDanglingReference, i)
		}
	}
	easing := timing.Easing
	if easing == nil {
		easing = Smooth
	}
	tw := &Tween{
		channels: append([]Channel(nil), channels...),
		frames:   timing.Frames,
		t:        -timing.Delay,
		easing:   easing,
	}
	for i := range tw.channels {
		c := &tw.channels[i]
		switch c.mode {
		case channelFromTo:
			c.delta = c.end - c.start
		case channelBy:
			c.delta = c.end
		}
	}
	return tw, nil
}

// Step advances the tween by one frame. Frames inside the delay window have
// no effect. Once Done reports true, Step is a no-op.
func (tw *Tween) Step() {
	frame := tw.t
	if frame >= tw.frames {
		return
	}
	tw.t++
	if frame < 0 {
		return
	}
	if frame == 0 {
		tw.activate()
	}
	inc := tw.easing.Increment(frame, tw.frames)
	for i := range tw.channels {
		c := &tw.channels[i]
		*c.field += c.delta * inc
	}
}

// activate resolves lazy starts on the first active frame.
func (tw *Tween) activate() {
	if tw.onStart != nil {
		tw.onStart()
	}
	for i := range tw.channels {
		c := &tw.channels[i]
		switch c.mode {
		case channelTo:
			c.start = *c.field
			c.delta = c.end - c.start
		case channelFromTo:
			if c.snap {
				*c.field = c.start
			}
		}
	}
}

// Done reports whether every active frame has been applied.
func (tw *Tween) Done() bool {
	return tw.t >= tw.frames
}

// Waiting reports whether the tween is still inside its delay window.
func (tw *Tween) Waiting() bool {
	return tw.t < 0
}

// Elapsed returns the number of active frames applied so far.
func (tw *Tween) Elapsed() int {
	if tw.t < 0 {
		return 0
	}
	return tw.t
}

// Frames returns the number of active frames.
func (tw *Tween) Frames() int {
	return tw.frames
}

// Progress returns the fraction of active frames applied, in [0, 1].
func (tw *Tween) Progress() float64 {
	return float64(tw.Elapsed()) / float64(tw.frames)
}
