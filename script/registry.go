package script

import (
	"fmt"
	"math"

	"github.com/phanxgames/sprig"
)

// Registry maps the names used in a timeline to scene objects and
// perturbation functions.
type Registry struct {
	camera *sprig.Camera
	nodes  map[string]any
	etas   map[string]sprig.EtaFunc
}

// Bump is a Gaussian bump of width a centered on b.
func Bump(x, a, b float64) float64 {
	return math.Exp(-a * (x - b) * (x - b))
}

// WavyBump is Bump modulated by sin(3x).
func WavyBump(x, a, b float64) float64 {
	return Bump(x, a, b) * math.Sin(3*x)
}

// NewRegistry returns a registry holding the scene camera (as "camera"),
// every named node under the canvas and the built-in perturbations "bump"
// and "wavy-bump".
func NewRegistry(scene *sprig.Scene) *Registry {
	r := &Registry{
		camera: scene.Camera(),
		nodes:  make(map[string]any),
		etas: map[string]sprig.EtaFunc{
			"bump":      Bump,
			"wavy-bump": WavyBump,
		},
	}
	r.AddTree(scene.Canvas())
	return r
}

// Register binds name to a scene object, replacing any earlier binding.
func (r *Registry) Register(name string, target any) {
	r.nodes[name] = target
}

// RegisterEta binds name to a perturbation function.
func (r *Registry) RegisterEta(name string, fn sprig.EtaFunc) {
	r.etas[name] = fn
}

// AddTree registers e and its descendants under their node names. Unnamed
// nodes are skipped; a trace's leader counts as its descendant.
func (r *Registry) AddTree(e sprig.Element) {
	if n, ok := e.(interface{ NodeName() string }); ok && n.NodeName() != "" {
		r.nodes[n.NodeName()] = e
	}
	if h, ok := e.(interface{ Children() []sprig.Element }); ok {
		for _, c := range h.Children() {
			r.AddTree(c)
		}
	}
	if t, ok := e.(*sprig.Trace); ok && t.Leader() != nil {
		r.AddTree(t.Leader())
	}
}

// Names returns the registered node names, in no particular order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.nodes))
	for n := range r.nodes {
		names = append(names, n)
	}
	return names
}

// lookup resolves name to a T. The camera answers to "camera" and to the
// empty name.
func lookup[T any](r *Registry, name string) (T, error) {
	var target any
	if name == "" || name == "camera" {
		target = r.camera
	} else {
		target = r.nodes[name]
	}
	t, ok := target.(T)
	if !ok {
		var zero T
		if target == nil {
			return zero, fmt.Errorf("%w: %q", ErrUnknownTarget, name)
		}
		return zero, fmt.Errorf("%w: %q is a %T", ErrUnknownTarget, name, target)
	}
	return t, nil
}

func (r *Registry) eta(name string) (sprig.EtaFunc, error) {
	if name == "" {
		return nil, nil
	}
	fn, ok := r.etas[name]
	if !ok {
		return nil, fmt.Errorf("%w: no perturbation %q", ErrUnknownTarget, name)
	}
	return fn, nil
}
