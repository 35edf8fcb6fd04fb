package sprig

import (
	"errors"
	"fmt"
)

// Element is anything the scene updates and draws once per frame. Update runs
// for the whole tree before Draw runs for any of it.
type Element interface {
	Update() error
	Draw(r Renderer)
}

// Child is an Element that lives in the frame chain and can be moved under a
// different parent.
type Child interface {
	Element
	Space
	// SetParent re-parents the node. It fails with ErrCycle if parent is the
	// node itself or one of its descendants.
	SetParent(parent Frame) error
}

// Animated is implemented by every node that owns a tween queue.
type Animated interface {
	Animator() *Animator
}

// holder is a frame that keeps an ordered list of child elements.
type holder interface {
	Frame
	members() *group
}

// group is an ordered list of elements updated and drawn depth-first.
type group struct {
	items []Element
}

func (g *group) add(e Element) {
	g.items = append(g.items, e)
}

// remove deletes e. Uses copy+nil to avoid retaining a dangling pointer in
// the backing array.
func (g *group) remove(e Element) bool {
	for i, it := range g.items {
		if it == e {
			copy(g.items[i:], g.items[i+1:])
			g.items[len(g.items)-1] = nil
			g.items = g.items[:len(g.items)-1]
			return true
		}
	}
	return false
}

// update updates every member in order. A failing member does not stop its
// siblings; all failures are joined.
func (g *group) update() error {
	var errs []error
	for _, it := range g.items {
		if err := it.Update(); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", elementName(it), err))
		}
	}
	return errors.Join(errs...)
}

func (g *group) draw(r Renderer) {
	for _, it := range g.items {
		it.Draw(r)
	}
}

// attach moves child under h and appends it to h's members, removing it from
// its previous holder.
// release drops e from whatever its previous parent used to update and draw
// it: a member list, or a trace's leader slot.
func release(old Frame, e Element) {
	switch o := old.(type) {
	case holder:
		o.members().remove(e)
	case *Trace:
		o.dropLeader(e)
	}
}

func attach(h holder, child Child) error {
	if child == nil {
		panic("sprig: cannot add nil child")
	}
	old := child.Parent()
	if err := child.SetParent(h); err != nil {
		return err
	}
	release(old, child)
	h.members().add(child)
	if globalDebug {
		debugCheckChildCount(h)
	}
	return nil
}

// named is implemented by nodes that carry a Name.
type named interface {
	NodeName() string
}

func elementName(e Element) string {
	if n, ok := e.(named); ok && n.NodeName() != "" {
		return n.NodeName()
	}
	return fmt.Sprintf("%T", e)
}

// ContainerConfig configures a Container. A zero Dim means (1, 1): the
// container fills its parent.
type ContainerConfig struct {
	Name string
	// Pos is the top-left corner as a fraction of the parent.
	Pos Vec2
	// Dim is the width and height as a fraction of the parent.
	Dim Vec2
}

// Container is a plain rectangular region of its parent. Its local space
// spans [0,1]x[0,1] over the rectangle Pos..Pos+Dim.
type Container struct {
	link
	Name string
	Pos  Vec2
	Dim  Vec2

	anim     Animator
	children group
}

// NewContainer creates a container under parent. Panics if parent is nil.
func NewContainer(parent Frame, cfg ContainerConfig) *Container {
	if parent == nil {
		panic("sprig: container needs a parent frame")
	}
	if cfg.Dim == (Vec2{}) {
		cfg.Dim = Vec2{1, 1}
	}
	return &Container{link: link{parent: parent}, Name: cfg.Name, Pos: cfg.Pos, Dim: cfg.Dim}
}

// NodeName returns the container's name.
func (c *Container) NodeName() string { return c.Name }

// ToParent maps a fraction-of-self point into the parent's space.
func (c *Container) ToParent(p Vec2) Vec2 {
	return c.Pos.Add(p.Mul(c.Dim))
}

// ParentMatrix returns the matrix equivalent of ToParent.
func (c *Container) ParentMatrix() Matrix {
	return ScaleTranslate(c.Dim, c.Pos)
}

// ToPixel converts a local point to device pixels through the parent chain.
func (c *Container) ToPixel(p Vec2) Vec2 {
	return ChainToPixel(c, p)
}

// SetParent re-parents the container.
func (c *Container) SetParent(parent Frame) error {
	return c.reparent(c, parent)
}

func (c *Container) members() *group { return &c.children }

// AddChild moves child under this container. It fails with ErrCycle if the
// child is this container or one of its ancestors.
func (c *Container) AddChild(child Child) error {
	return attach(c, child)
}

// RemoveChild removes child from the update and draw passes. The child keeps
// its parent link so it can still convert coordinates.
func (c *Container) RemoveChild(child Element) bool {
	return c.children.remove(child)
}

// Children returns the child list. The returned slice MUST NOT be mutated.
func (c *Container) Children() []Element {
	return c.children.items
}

// AddContainer creates a nested container and appends it.
func (c *Container) AddContainer(cfg ContainerConfig) *Container {
	child := NewContainer(c, cfg)
	c.children.add(child)
	return child
}

// AddGraph creates a graph inside this container and appends it.
func (c *Container) AddGraph(cfg GraphConfig) *Graph {
	g := NewGraph(c, cfg)
	c.children.add(g)
	return g
}

// MoveTo animates Pos to target.
func (c *Container) MoveTo(target Vec2, timing Timing) (*Tween, error) {
	return c.anim.Animate(timing, To(&c.Pos.X, target.X), To(&c.Pos.Y, target.Y))
}

// ResizeTo animates Dim to target.
func (c *Container) ResizeTo(target Vec2, timing Timing) (*Tween, error) {
	return c.anim.Animate(timing, To(&c.Dim.X, target.X), To(&c.Dim.Y, target.Y))
}

// Animator exposes the container's tween queue.
func (c *Container) Animator() *Animator { return &c.anim }

// Update advances the container's own tweens, then updates its children in
// order.
func (c *Container) Update() error {
	c.anim.Update()
	return c.children.update()
}

// Draw draws the children in order.
func (c *Container) Draw(r Renderer) {
	c.children.draw(r)
}
