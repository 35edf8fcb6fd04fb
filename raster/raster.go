// Package raster is a headless sprig backend that draws into an in-memory
// image with an anti-aliased software rasterizer. It needs no GPU or window,
// which makes it the backend for offline rendering and recording.
package raster

import (
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/phanxgames/sprig"
)

// Renderer draws sprig primitives into an *image.RGBA.
type Renderer struct {
	img  *image.RGBA
	z    *vector.Rasterizer
	face font.Face

	presented int
}

// New returns a Renderer with a width x height canvas.
func New(width, height int) *Renderer {
	return &Renderer{
		img:  image.NewRGBA(image.Rect(0, 0, width, height)),
		z:    vector.NewRasterizer(0, 0),
		face: basicfont.Face7x13,
	}
}

// Image returns the live canvas. It is overwritten by the next frame; use
// Capture for a stable copy.
func (r *Renderer) Image() *image.RGBA {
	return r.img
}

// Presented returns how many frames have been finished.
func (r *Renderer) Presented() int {
	return r.presented
}

// Size implements sprig.Renderer.
func (r *Renderer) Size() (int, int) {
	b := r.img.Bounds()
	return b.Dx(), b.Dy()
}

// Clear implements sprig.Renderer.
func (r *Renderer) Clear(c sprig.Color) {
	draw.Draw(r.img, r.img.Bounds(), image.NewUniform(c.ToRGBA()), image.Point{}, draw.Src)
}

// Present implements sprig.Renderer. Drawing is immediate, so it only counts
// frames.
func (r *Renderer) Present() {
	r.presented++
}

// DrawLine implements sprig.Renderer.
func (r *Renderer) DrawLine(p1, p2 sprig.Vec2, width float64, c sprig.Color) {
	q := sprig.StrokeQuad(p1, p2, max(width, 1))
	r.fill(c, q[:])
}

// DrawFilledPolygon implements sprig.Renderer.
func (r *Renderer) DrawFilledPolygon(points []sprig.Vec2, c sprig.Color) {
	r.fill(c, points)
}

// DrawPolygonOutline implements sprig.Renderer with a one pixel stroke.
func (r *Renderer) DrawPolygonOutline(points []sprig.Vec2, c sprig.Color) {
	n := len(points)
	if n < 2 {
		return
	}
	for i := range points {
		q := sprig.StrokeQuad(points[i], points[(i+1)%n], 1)
		r.fill(c, q[:])
	}
}

// DrawCircle implements sprig.Renderer.
func (r *Renderer) DrawCircle(center sprig.Vec2, radius, width float64, c sprig.Color) {
	pts := sprig.CirclePolygon(center, radius, sprig.CircleSegments(radius))
	if width <= 0 {
		r.fill(c, pts)
		return
	}
	for i := range pts {
		q := sprig.StrokeQuad(pts[i], pts[(i+1)%len(pts)], width)
		r.fill(c, q[:])
	}
}

// DrawText implements sprig.TextRenderer with the 7x13 bitmap face, centered
// on at.
func (r *Renderer) DrawText(s string, at sprig.Vec2, c sprig.Color) {
	if s == "" {
		return
	}
	d := font.Drawer{Dst: r.img, Src: image.NewUniform(c.ToRGBA()), Face: r.face}
	m := r.face.Metrics()
	w := d.MeasureString(s)
	x := fixed.I(int(math.Round(at.X))) - w/2
	y := fixed.I(int(math.Round(at.Y))) + (m.Ascent-m.Descent)/2
	d.Dot = fixed.Point26_6{X: x, Y: y}
	d.DrawString(s)
}

// Capture implements sprig.Capturer. The returned image is a copy, safe to
// encode while the next frame draws.
func (r *Renderer) Capture() (image.Image, error) {
	out := image.NewRGBA(r.img.Bounds())
	copy(out.Pix, r.img.Pix)
	return out, nil
}

// fill rasterizes one closed polygon. The rasterizer is sized to the
// polygon's clipped bounding box so small shapes stay cheap on large canvases.
func (r *Renderer) fill(c sprig.Color, pts []sprig.Vec2) {
	if len(pts) < 3 || c.A <= 0 {
		return
	}
	box := bounds(pts).Intersect(r.img.Bounds())
	if box.Empty() {
		return
	}
	ox, oy := float64(box.Min.X), float64(box.Min.Y)
	r.z.Reset(box.Dx(), box.Dy())
	r.z.DrawOp = draw.Over
	r.z.MoveTo(float32(pts[0].X-ox), float32(pts[0].Y-oy))
	for _, p := range pts[1:] {
		r.z.LineTo(float32(p.X-ox), float32(p.Y-oy))
	}
	r.z.ClosePath()
	r.z.Draw(r.img, box, image.NewUniform(c.ToRGBA()), image.Point{})
}

// bounds returns the integer pixel rectangle covering pts.
func bounds(pts []sprig.Vec2) image.Rectangle {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range pts {
		if math.IsNaN(p.X) || math.IsNaN(p.Y) {
			return image.Rectangle{}
		}
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}
	const limit = 1 << 24
	clampInt := func(v float64) int { return int(math.Max(-limit, math.Min(limit, v))) }
	return image.Rect(
		clampInt(math.Floor(minX)), clampInt(math.Floor(minY)),
		clampInt(math.Ceil(maxX)), clampInt(math.Ceil(maxY)),
	)
}
