package sprig

import "fmt"

// Frame is a coordinate space that can convert its own local coordinates to
// device pixels. The Camera is the root Frame; every other frame is a Space.
type Frame interface {
	ToPixel(p Vec2) Vec2
}

// Space is a non-root Frame. It only knows how to map its local coordinates
// into its immediate parent's space; conversion to pixels composes those
// steps up to the root (see ChainToPixel).
type Space interface {
	Frame
	ToParent(p Vec2) Vec2
	Parent() Frame
}

// ChainToPixel converts p from s's local space to pixels by handing the
// parent-space point to the parent. Every Space implements ToPixel with it.
func ChainToPixel(s Space, p Vec2) Vec2 {
	return s.Parent().ToPixel(s.ToParent(p))
}

// IsRoot reports whether f terminates the frame chain.
func IsRoot(f Frame) bool {
	_, ok := f.(Space)
	return !ok
}

// Root walks parent links from f and returns the root frame.
func Root(f Frame) Frame {
	for {
		s, ok := f.(Space)
		if !ok || s.Parent() == nil {
			return f
		}
		f = s.Parent()
	}
}

// Depth returns the number of parent links between f and the root.
func Depth(f Frame) int {
	depth := 0
	for {
		s, ok := f.(Space)
		if !ok || s.Parent() == nil {
			return depth
		}
		depth++
		f = s.Parent()
	}
}

// isAncestor reports whether candidate is f or one of f's ancestors.
func isAncestor(candidate, f Frame) bool {
	for p := f; p != nil; {
		if p == candidate {
			return true
		}
		s, ok := p.(Space)
		if !ok {
			return false
		}
		p = s.Parent()
	}
	return false
}

// link is the parent edge carried by every non-root frame. It is set by the
// constructor before the node is returned and changes only through reparent.
type link struct {
	parent Frame
}

// Parent returns the frame this node's local space is expressed in.
func (l *link) Parent() Frame {
	return l.parent
}

// reparent moves self under parent, rejecting nil parents and back-edges.
func (l *link) reparent(self Space, parent Frame) error {
	if parent == nil {
		return fmt.Errorf("%w: nil parent frame", ErrDanglingReference)
	}
	if isAncestor(self, parent) {
		return ErrCycle
	}
	l.parent = parent
	if globalDebug {
		debugCheckFrameDepth(self)
	}
	return nil
}

// identitySpace is a Space that shares its parent's coordinates. Drawables
// that have no placement of their own use it so they still take part in the
// frame chain.
type identitySpace struct {
	link
}

// ToParent returns p unchanged.
func (s *identitySpace) ToParent(p Vec2) Vec2 { return p }

// ParentMatrix returns the identity matrix.
func (s *identitySpace) ParentMatrix() Matrix { return IdentityMatrix }
