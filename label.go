package sprig

// LabelConfig configures a Label.
type LabelConfig struct {
	Name string
	Text string
	// Func, when set, replaces Text on every Update.
	Func func() string
	// Pos is the label's center in the parent's space.
	Pos Vec2
	// Color defaults to white.
	Color Color
}

// Label is a line of text centered on a position in its parent's space. It
// is drawn only by renderers that implement TextRenderer.
type Label struct {
	identitySpace
	Name  string
	Text  string
	Func  func() string
	Pos   Vec2
	Color Color

	anim Animator
}

// NewLabel creates a label under parent.
func NewLabel(parent Frame, cfg LabelConfig) *Label {
	if parent == nil {
		panic("sprig: label needs a parent frame")
	}
	if cfg.Color == (Color{}) {
		cfg.Color = ColorWhite
	}
	l := &Label{Name: cfg.Name, Text: cfg.Text, Func: cfg.Func, Pos: cfg.Pos, Color: cfg.Color}
	l.parent = parent
	if l.Func != nil {
		l.Text = l.Func()
	}
	return l
}

// NodeName returns the label's name.
func (l *Label) NodeName() string { return l.Name }

// ToPixel converts a point in the parent's space to pixels.
func (l *Label) ToPixel(p Vec2) Vec2 { return ChainToPixel(l, p) }

// SetParent re-parents the label.
func (l *Label) SetParent(parent Frame) error { return l.reparent(l, parent) }

// Animator exposes the label's tween queue.
func (l *Label) Animator() *Animator { return &l.anim }

// MoveTo animates Pos.
func (l *Label) MoveTo(target Vec2, timing Timing) (*Tween, error) {
	return l.anim.Animate(timing, To(&l.Pos.X, target.X), To(&l.Pos.Y, target.Y))
}

// ChangeColorTo animates the text color. The default easing is Linear.
func (l *Label) ChangeColorTo(c Color, timing Timing) (*Tween, error) {
	return l.anim.Animate(linearByDefault(timing), colorChannels(&l.Color, c)...)
}

// Update refreshes the text, then advances the label's tweens.
func (l *Label) Update() error {
	if l.Func != nil {
		l.Text = l.Func()
	}
	l.anim.Update()
	return nil
}

// Draw draws the text if r can and its anchor is on screen.
func (l *Label) Draw(r Renderer) {
	tr, ok := r.(TextRenderer)
	if !ok || l.Text == "" {
		return
	}
	at := l.ToPixel(l.Pos)
	if !viewport(r).Contains(at.X, at.Y) {
		return
	}
	tr.DrawText(l.Text, at, l.Color)
}
