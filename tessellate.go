package sprig

import "math"

// Tessellation helpers shared by the rendering backends. They turn the
// Renderer primitives into plain pixel-space polygons so a backend only has
// to know how to fill one.

// StrokeQuad returns the four corners of a segment from p1 to p2 thickened to
// width pixels, in winding order. A degenerate segment yields a collapsed
// quad at p1.
func StrokeQuad(p1, p2 Vec2, width float64) [4]Vec2 {
	n := p2.Sub(p1).Norm().Perp().Scale(width / 2)
	return [4]Vec2{p1.Add(n), p2.Add(n), p2.Sub(n), p1.Sub(n)}
}

// CircleSegments picks a segment count for a circle of the given pixel
// radius: enough that no chord strays more than a quarter pixel from the arc.
func CircleSegments(radius float64) int {
	if radius <= 0.5 {
		return 8
	}
	n := int(math.Ceil(math.Pi / math.Acos(1-0.25/radius)))
	return max(8, min(n, 256))
}

// CirclePolygon samples a circle into n vertices, not repeating the first.
func CirclePolygon(center Vec2, radius float64, n int) []Vec2 {
	if n < 3 {
		n = 3
	}
	pts := make([]Vec2, n)
	step := 2 * math.Pi / float64(n)
	for i := range pts {
		pts[i] = center.Add(Polar(radius, float64(i)*step))
	}
	return pts
}

// FanTriangles returns triangle indices fanning out from the first vertex of
// a convex polygon with n vertices.
func FanTriangles(n int) []int {
	if n < 3 {
		return nil
	}
	idx := make([]int, 0, (n-2)*3)
	for i := 1; i < n-1; i++ {
		idx = append(idx, 0, i, i+1)
	}
	return idx
}
