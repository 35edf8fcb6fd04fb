package sprig

// Animator owns the queue of active tweens for one animatable object. Call
// Update once per frame; finished tweens are dropped after the frame they
// complete on.
//
// There is no global animation manager. Every node carries its own Animator
// and the scene advances them during its update pass.
type Animator struct {
	tweens   []*Tween
	updating bool
}

// Add queues tw. Tweens are stepped in insertion order. Panics if tw is nil
// or if called from inside Update on the same Animator.
func (a *Animator) Add(tw *Tween) {
	if tw == nil {
		panic("sprig: cannot add nil tween")
	}
	if a.updating {
		panic("sprig: Animator.Add called during Update")
	}
	a.tweens = append(a.tweens, tw)
}

// Animate builds a tween from timing and channels and queues it. Construction
// errors are returned and nothing is queued.
func (a *Animator) Animate(timing Timing, channels ...Channel) (*Tween, error) {
	tw, err := NewTween(timing, channels...)
	if err != nil {
		return nil, err
	}
	a.Add(tw)
	return tw, nil
}

// Update steps every queued tween once, then drops the ones that finished.
// The queue is never modified while it is being stepped.
func (a *Animator) Update() {
	if len(a.tweens) == 0 {
		return
	}

	a.step()

	kept := a.tweens[:0]
	for _, tw := range a.tweens {
		if !tw.Done() {
			kept = append(kept, tw)
		}
	}
	// Nil the tail so finished tweens can be collected.
	clear(a.tweens[len(kept):])
	a.tweens = kept
}

// step advances every tween. The updating guard is lifted even if a tween
// panics, so the Animator stays usable after a recovered panic.
func (a *Animator) step() {
	a.updating = true
	defer func() { a.updating = false }()
	for _, tw := range a.tweens {
		tw.Step()
	}
}

// Remove cancels tw before it completes. Reports whether it was queued.
func (a *Animator) Remove(tw *Tween) bool {
	if a.updating {
		panic("sprig: Animator.Remove called during Update")
	}
	for i, q := range a.tweens {
		if q == tw {
			copy(a.tweens[i:], a.tweens[i+1:])
			a.tweens[len(a.tweens)-1] = nil
			a.tweens = a.tweens[:len(a.tweens)-1]
			return true
		}
	}
	return false
}

// Clear cancels every queued tween. Owners must clear their queue before
// releasing the object the tweens point into.
func (a *Animator) Clear() {
	if a.updating {
		panic("sprig: Animator.Clear called during Update")
	}
	clear(a.tweens)
	a.tweens = a.tweens[:0]
}

// Len returns the number of queued tweens.
func (a *Animator) Len() int {
	return len(a.tweens)
}

// Busy reports whether any tween is queued.
func (a *Animator) Busy() bool {
	return len(a.tweens) > 0
}

// Tweens returns the queue. The returned slice MUST NOT be mutated.
func (a *Animator) Tweens() []*Tween {
	return a.tweens
}
