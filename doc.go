// Package sprig is a frame-stepped animation toolkit for mathematical
// scenes: graphs, curves, axes and traces, arranged in nested coordinate
// frames and viewed through an animatable camera.
//
// # Quick start
//
// Create a [Scene], add graphs to its canvas, queue tweens, then run it with
// a backend. The windowed backend lives in sprig/ebitenrender and a headless
// rasterizer in sprig/raster:
//
//	scene := sprig.NewScene(1200, 600)
//	g := scene.Canvas().AddGraph(sprig.GraphConfig{
//		Pos: sprig.V(0.01, 0.01), Dim: sprig.V(0.48, 0.48),
//		XRange: sprig.Range{Min: -1, Max: 6}, YRange: sprig.Range{Min: -5, Max: 20},
//	})
//	g.AddCurve(sprig.CurveConfig{Func: math.Sin, Domain: sprig.Range{Min: 0, Max: 5}})
//	scene.Camera().PanTo(sprig.V(0.25, 0.25), sprig.Over(45))
//
//	d := &sprig.Driver{Scene: scene, Renderer: raster.New(1200, 600)}
//	d.Play(ctx, 45)
//
// # Tweens
//
// A [Tween] drives one or more float64 fields over a fixed number of frames,
// after an optional delay, shaped by an [Easing]. Changes are applied
// additively, so tweens on the same field compose. Every animatable object
// owns an [Animator] that steps its tweens once per frame and drops the
// finished ones. [To] channels read their start value on the first active
// frame, not when the tween is created.
//
// # Frames
//
// Every node converts its local coordinates to its parent's ([Space]); the
// [Camera] converts normalized scene coordinates to pixels and ends every
// chain. [ChainToPixel] composes the steps, and [ToPixels] flattens affine
// chains into one [Matrix] for long point lists.
//
// # Frame loop
//
// [Scene.Update] advances the camera and then the whole canvas tree;
// [Scene.Render] draws it. A [Driver] runs that loop for push-style
// backends, polling [Events], pacing with a [Pacer] and handing frames to a
// [Sink].
package sprig
