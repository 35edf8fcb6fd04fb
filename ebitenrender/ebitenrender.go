// Package ebitenrender draws sprig scenes with Ebitengine.
//
// Renderer implements sprig.Renderer, sprig.TextRenderer and sprig.Capturer
// on top of an *ebiten.Image. Every primitive is tessellated into triangles
// and submitted with DrawTriangles against a shared white pixel, so one frame
// costs a handful of draw calls regardless of how the scene is built.
//
// Run opens a window and plays a scene until it is closed:
//
//	scene := sprig.NewScene(1200, 600)
//	// ... populate scene.Canvas() ...
//	if err := ebitenrender.Run(scene, ebitenrender.RunConfig{Title: "demo"}); err != nil {
//		log.Fatal(err)
//	}
package ebitenrender

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/phanxgames/sprig"
)

// Width and height in pixels of one glyph cell of the debug font.
const (
	glyphW = 6
	glyphH = 16
)

var whitePixelImage *ebiten.Image

// ensureWhitePixel returns a lazily-initialized 3x3 white image. Vertices
// sample its center texel so edge filtering never bleeds in transparency.
func ensureWhitePixel() *ebiten.Image {
	if whitePixelImage == nil {
		whitePixelImage = ebiten.NewImage(3, 3)
		whitePixelImage.Fill(color.White)
	}
	return whitePixelImage
}

// Renderer submits sprig primitives to an *ebiten.Image.
type Renderer struct {
	target *ebiten.Image

	// AntiAlias enables Ebitengine's anti-aliasing on every triangle batch.
	AntiAlias bool

	verts []ebiten.Vertex
	inds  []uint16
}

// New returns a Renderer that draws into target.
func New(target *ebiten.Image) *Renderer {
	return &Renderer{target: target, AntiAlias: true}
}

// SetTarget switches the image drawn into. Run calls it with each frame's
// screen image.
func (r *Renderer) SetTarget(target *ebiten.Image) {
	r.target = target
}

// Target returns the image currently drawn into.
func (r *Renderer) Target() *ebiten.Image {
	return r.target
}

// Size implements sprig.Renderer.
func (r *Renderer) Size() (int, int) {
	if r.target == nil {
		return 0, 0
	}
	b := r.target.Bounds()
	return b.Dx(), b.Dy()
}

// Clear implements sprig.Renderer.
func (r *Renderer) Clear(c sprig.Color) {
	r.verts, r.inds = r.verts[:0], r.inds[:0]
	r.target.Fill(c.ToRGBA())
}

// Present flushes the pending triangles.
func (r *Renderer) Present() {
	r.flush()
}

// DrawLine implements sprig.Renderer.
func (r *Renderer) DrawLine(p1, p2 sprig.Vec2, width float64, c sprig.Color) {
	q := sprig.StrokeQuad(p1, p2, max(width, 1))
	r.addConvex(q[:], c)
}

// DrawFilledPolygon implements sprig.Renderer. Polygons are fan-triangulated,
// which is exact for the convex shapes the scene produces.
func (r *Renderer) DrawFilledPolygon(points []sprig.Vec2, c sprig.Color) {
	r.addConvex(points, c)
}

// DrawPolygonOutline implements sprig.Renderer with a one pixel stroke.
func (r *Renderer) DrawPolygonOutline(points []sprig.Vec2, c sprig.Color) {
	n := len(points)
	for i := 0; i < n && n > 1; i++ {
		q := sprig.StrokeQuad(points[i], points[(i+1)%n], 1)
		r.addConvex(q[:], c)
	}
}

// DrawCircle implements sprig.Renderer.
func (r *Renderer) DrawCircle(center sprig.Vec2, radius, width float64, c sprig.Color) {
	pts := sprig.CirclePolygon(center, radius, sprig.CircleSegments(radius))
	if width <= 0 {
		r.addConvex(pts, c)
		return
	}
	for i := range pts {
		q := sprig.StrokeQuad(pts[i], pts[(i+1)%len(pts)], width)
		r.addConvex(q[:], c)
	}
}

// DrawText implements sprig.TextRenderer using the built-in debug font.
// Text is centered on at.
func (r *Renderer) DrawText(s string, at sprig.Vec2, c sprig.Color) {
	// The debug font is fixed white; tinted text goes through an
	// intermediate image.
	r.flush()
	w, h := textSize(s)
	if w == 0 {
		return
	}
	x, y := int(at.X)-w/2, int(at.Y)-h/2
	if c == sprig.ColorWhite {
		ebitenutil.DebugPrintAt(r.target, s, x, y)
		return
	}
	img := ebiten.NewImage(w, h)
	defer img.Deallocate()
	ebitenutil.DebugPrintAt(img, s, 0, 0)
	var op ebiten.DrawImageOptions
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.Scale(float32(c.R*c.A), float32(c.G*c.A), float32(c.B*c.A), float32(c.A))
	r.target.DrawImage(img, &op)
}

// Capture implements sprig.Capturer. It reads back the target after Present
// and returns it as straight-alpha NRGBA.
func (r *Renderer) Capture() (image.Image, error) {
	r.flush()
	w, h := r.Size()
	pixels := make([]byte, 4*w*h)
	r.target.ReadPixels(pixels)
	return unpremultiply(pixels, w, h), nil
}

// addConvex queues a convex polygon. Batches are flushed before the uint16
// index space overflows.
func (r *Renderer) addConvex(points []sprig.Vec2, c sprig.Color) {
	if len(points) < 3 || c.A <= 0 {
		return
	}
	if len(r.verts)+len(points) > 1<<16-1 {
		r.flush()
	}
	base := uint16(len(r.verts))
	cr, cg, cb, ca := premultiplied(c)
	for _, p := range points {
		r.verts = append(r.verts, ebiten.Vertex{
			DstX: float32(p.X), DstY: float32(p.Y),
			SrcX: 1.5, SrcY: 1.5,
			ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca,
		})
	}
	for _, i := range sprig.FanTriangles(len(points)) {
		r.inds = append(r.inds, base+uint16(i))
	}
}

func (r *Renderer) flush() {
	if r.target == nil || len(r.inds) == 0 {
		r.verts, r.inds = r.verts[:0], r.inds[:0]
		return
	}
	var triOp ebiten.DrawTrianglesOptions
	triOp.ColorScaleMode = ebiten.ColorScaleModePremultipliedAlpha
	triOp.AntiAlias = r.AntiAlias
	r.target.DrawTriangles(r.verts, r.inds, ensureWhitePixel(), &triOp)
	r.verts, r.inds = r.verts[:0], r.inds[:0]
}

func premultiplied(c sprig.Color) (r, g, b, a float32) {
	a = float32(min(max(c.A, 0), 1))
	return float32(c.R) * a, float32(c.G) * a, float32(c.B) * a, a
}

// textSize measures s in debug font cells.
func textSize(s string) (w, h int) {
	cols, line := 0, 0
	rows := 1
	for _, ch := range s {
		if ch == '\n' {
			rows++
			line = 0
			continue
		}
		line++
		cols = max(cols, line)
	}
	if cols == 0 {
		return 0, 0
	}
	return cols * glyphW, rows * glyphH
}

// unpremultiply converts premultiplied RGBA bytes into straight-alpha NRGBA.
func unpremultiply(pixels []byte, w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i+3 < len(pixels); i += 4 {
		r, g, b, a := pixels[i], pixels[i+1], pixels[i+2], pixels[i+3]
		if a > 0 && a < 255 {
			r = uint8(min(int(r)*255/int(a), 255))
			g = uint8(min(int(g)*255/int(a), 255))
			b = uint8(min(int(b)*255/int(a), 255))
		}
		img.Pix[i] = r
		img.Pix[i+1] = g
		img.Pix[i+2] = b
		img.Pix[i+3] = a
	}
	return img
}
