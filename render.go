package sprig

import "image"

// Renderer is the drawing backend the scene submits pixel-space geometry to.
// All coordinates are device pixels with the origin at the top-left.
type Renderer interface {
	// DrawLine strokes a segment width pixels wide.
	DrawLine(p1, p2 Vec2, width float64, c Color)
	// DrawFilledPolygon fills the polygon described by points.
	DrawFilledPolygon(points []Vec2, c Color)
	// DrawPolygonOutline strokes the closed, anti-aliased outline of points.
	DrawPolygonOutline(points []Vec2, c Color)
	// DrawCircle strokes a circle width pixels wide, or fills it if width is 0.
	DrawCircle(center Vec2, radius, width float64, c Color)
	// Clear fills the whole target with c.
	Clear(c Color)
	// Present finishes the frame.
	Present()
	// Size returns the device resolution in pixels.
	Size() (width, height int)
}

// TextRenderer is implemented by backends that can draw text. Labels are
// skipped on backends that do not implement it.
type TextRenderer interface {
	// DrawText draws s centered on at.
	DrawText(s string, at Vec2, c Color)
}

// Capturer is implemented by backends that can hand back the last presented
// frame as an image, for recording.
type Capturer interface {
	Capture() (image.Image, error)
}

// viewport is the pixel area of r. Leaves with a single anchor skip drawing
// when it falls outside, which is common once the camera zooms in.
func viewport(r Renderer) Rect {
	w, h := r.Size()
	return Rect{Width: float64(w), Height: float64(h)}
}

// drawPolyline strokes consecutive points as individual segments.
func drawPolyline(r Renderer, pts []Vec2, width float64, c Color) {
	for i := 0; i+1 < len(pts); i++ {
		r.DrawLine(pts[i], pts[i+1], width, c)
	}
}

// linspace returns n evenly spaced samples over [lo, hi], endpoints included,
// reusing buf when it is large enough.
func linspace(buf []float64, lo, hi float64, n int) []float64 {
	if cap(buf) < n {
		buf = make([]float64, n)
	}
	buf = buf[:n]
	if n == 1 {
		buf[0] = lo
		return buf
	}
	step := (hi - lo) / float64(n-1)
	for i := range buf {
		buf[i] = lo + float64(i)*step
	}
	buf[n-1] = hi
	return buf
}
