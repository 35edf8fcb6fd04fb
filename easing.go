package sprig

import (
	"strings"

	fease "github.com/fogleman/ease"
	"github.com/tanema/gween/ease"
)

// Easing shapes the timing of a Tween. Increment returns the fraction of the
// total change to apply on a given frame. It is called once per active frame
// with frame increasing from 0 to total-1; the returned increments must sum
// to 1 over that range so the driven field lands exactly on its end value.
type Easing interface {
	Increment(frame, total int) float64
}

// linearEasing advances by the same amount every frame.
type linearEasing struct{}

func (linearEasing) Increment(frame, total int) float64 {
	if frame < 0 || frame >= total {
		return 0
	}
	return 1 / float64(total)
}

// Linear is the constant-rate easing: every frame applies 1/total.
var Linear Easing = linearEasing{}

// EaseFunc adapts a progress curve p over [0, 1] into an Easing. The
// increment for frame f is p((f+1)/total) - p(f/total), divided by
// p(1) - p(0), so the increments telescope to exactly 1 even for curves
// whose endpoints are only approximately 0 and 1 (elastic, bounce).
type EaseFunc func(x float64) float64

// Increment implements Easing.
func (fn EaseFunc) Increment(frame, total int) float64 {
	if frame < 0 || frame >= total {
		return 0
	}
	span := fn(1) - fn(0)
	if span == 0 {
		return 1 / float64(total)
	}
	n := float64(total)
	return (fn(float64(frame+1)/n) - fn(float64(frame)/n)) / span
}

// Smooth is the default ease-in/ease-out: a raised cosine profile.
var Smooth Easing = EaseFunc(fease.InOutSine)

// GweenEasing adapts a gween easing function (t, begin, change, duration) to
// the Easing contract by sampling it over a unit range.
func GweenEasing(fn ease.TweenFunc) Easing {
	return EaseFunc(func(x float64) float64 {
		return float64(fn(float32(x), 0, 1, 1))
	})
}

// easingsByName maps lower-cased names to easings for script and config
// lookup. The gween catalogue supplies the classic Penner curves.
var easingsByName = map[string]Easing{
	"linear":       Linear,
	"smooth":       Smooth,
	"insine":       GweenEasing(ease.InSine),
	"outsine":      GweenEasing(ease.OutSine),
	"inoutsine":    Smooth,
	"inquad":       GweenEasing(ease.InQuad),
	"outquad":      GweenEasing(ease.OutQuad),
	"inoutquad":    GweenEasing(ease.InOutQuad),
	"incubic":      GweenEasing(ease.InCubic),
	"outcubic":     GweenEasing(ease.OutCubic),
	"inoutcubic":   GweenEasing(ease.InOutCubic),
	"inquart":      GweenEasing(ease.InQuart),
	"outquart":     GweenEasing(ease.OutQuart),
	"inoutquart":   GweenEasing(ease.InOutQuart),
	"inexpo":       GweenEasing(ease.InExpo),
	"outexpo":      GweenEasing(ease.OutExpo),
	"inoutexpo":    GweenEasing(ease.InOutExpo),
	"incirc":       GweenEasing(ease.InCirc),
	"outcirc":      GweenEasing(ease.OutCirc),
	"inoutcirc":    GweenEasing(ease.InOutCirc),
	"inback":       EaseFunc(fease.InBack),
	"outback":      EaseFunc(fease.OutBack),
	"inoutback":    EaseFunc(fease.InOutBack),
	"inelastic":    EaseFunc(fease.InElastic),
	"outelastic":   EaseFunc(fease.OutElastic),
	"inoutelastic": EaseFunc(fease.InOutElastic),
	"inbounce":     GweenEasing(ease.InBounce),
	"outbounce":    GweenEasing(ease.OutBounce),
	"inoutbounce":  GweenEasing(ease.InOutBounce),
}

// EasingByName returns the easing registered under name (case-insensitive,
// dashes and underscores ignored), e.g. "in-out-cubic" or "Smooth".
func EasingByName(name string) (Easing, bool) {
	key := strings.ToLower(name)
	key = strings.NewReplacer("-", "", "_", "", " ", "").Replace(key)
	e, ok := easingsByName[key]
	return e, ok
}
