package sprig

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at render submission time.
type Color struct {
	R, G, B, A float64
}

// Common colors used as defaults by the drawable constructors.
var (
	ColorWhite  = Color{1, 1, 1, 1}
	ColorBlack  = Color{0, 0, 0, 1}
	ColorRed    = Color{1, 0, 0, 1}
	ColorGreen  = Color{0, 1, 0, 1}
	ColorBlue   = Color{0, 0, 1, 1}
	ColorOrange = Color{1, 0.5, 0, 1}
	ColorGray   = Color{50.0 / 255, 50.0 / 255, 50.0 / 255, 1}
)

// Hex parses a "#rrggbb" (or "#rgb") string into an opaque Color.
func Hex(s string) (Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	return Color{R: c.R, G: c.G, B: c.B, A: 1}, nil
}

// MustHex is like Hex but panics on malformed input. Intended for package-level
// palette declarations.
func MustHex(s string) Color {
	c, err := Hex(s)
	if err != nil {
		panic("sprig: " + err.Error())
	}
	return c
}

// RGB255 builds an opaque Color from 0-255 channel values.
func RGB255(r, g, b uint8) Color {
	return Color{float64(r) / 255, float64(g) / 255, float64(b) / 255, 1}
}

// Blend interpolates between c and other in HCL space, which keeps perceived
// lightness stable along the way. t is clamped to [0, 1]; alpha is linear.
func (c Color) Blend(other Color, t float64) Color {
	if t <= 0 {
		return c
	}
	if t >= 1 {
		return other
	}
	a := colorful.Color{R: c.R, G: c.G, B: c.B}
	b := colorful.Color{R: other.R, G: other.G, B: other.B}
	m := a.BlendHcl(b, t).Clamped()
	return Color{R: m.R, G: m.G, B: m.B, A: c.A + (other.A-c.A)*t}
}

// ToRGBA returns the color as a premultiplied color.RGBA with components
// clamped to [0, 1].
func (c Color) ToRGBA() color.RGBA {
	a := clamp01(c.A)
	return color.RGBA{
		R: uint8(clamp01(c.R)*a*255 + 0.5),
		G: uint8(clamp01(c.G)*a*255 + 0.5),
		B: uint8(clamp01(c.B)*a*255 + 0.5),
		A: uint8(a*255 + 0.5),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Range is a closed interval used for data ranges and sampling domains.
type Range struct {
	Min, Max float64
}

// Span returns Max - Min.
func (r Range) Span() float64 {
	return r.Max - r.Min
}

// Contains reports whether v lies inside the range, edges included.
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// Rect is an axis-aligned box, Y down. Camera.VisibleBounds returns one in
// scene coordinates; the draw pass culls against one in pixels.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether (x, y) is inside r, edges included.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width && y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and o share at least one point.
func (r Rect) Intersects(o Rect) bool {
	return r.X <= o.X+o.Width && o.X <= r.X+r.Width &&
		r.Y <= o.Y+o.Height && o.Y <= r.Y+r.Height
}
