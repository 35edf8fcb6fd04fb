package sprig

import "math"

// Vec2 is a 2D vector used for positions, offsets, sizes, and directions
// throughout the API.
type Vec2 struct {
	X, Y float64
}

// V is shorthand for Vec2{X: x, Y: y}.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Polar builds a vector of length r pointing at angle radians, measured
// counter-clockwise from the +X axis.
func Polar(r, angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return Vec2{X: r * cos, Y: r * sin}
}

// Displacement returns the vector from a to b.
func Displacement(a, b Vec2) Vec2 {
	return Vec2{X: b.X - a.X, Y: b.Y - a.Y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Scale returns v * s.
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Mul returns the component-wise product of v and o.
func (v Vec2) Mul(o Vec2) Vec2 { return Vec2{v.X * o.X, v.Y * o.Y} }

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }

// Dist returns the Euclidean distance between v and o.
func (v Vec2) Dist(o Vec2) float64 { return math.Hypot(o.X-v.X, o.Y-v.Y) }

// Norm returns v scaled to unit length. The zero vector is returned unchanged.
func (v Vec2) Norm() Vec2 {
	ln := v.Len()
	if ln < 1e-12 {
		return v
	}
	return Vec2{v.X / ln, v.Y / ln}
}

// Rotate returns v rotated counter-clockwise by angle radians.
func (v Vec2) Rotate(angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return Vec2{X: v.X*cos - v.Y*sin, Y: v.X*sin + v.Y*cos}
}

// RotateAbout rotates v by angle radians around pivot.
func (v Vec2) RotateAbout(pivot Vec2, angle float64) Vec2 {
	return v.Sub(pivot).Rotate(angle).Add(pivot)
}

// Perp returns the left perpendicular of v (v rotated by +90 degrees).
func (v Vec2) Perp() Vec2 { return Vec2{-v.Y, v.X} }

// Lerp interpolates linearly between v and o.
func (v Vec2) Lerp(o Vec2, t float64) Vec2 {
	return Vec2{v.X + (o.X-v.X)*t, v.Y + (o.Y-v.Y)*t}
}
