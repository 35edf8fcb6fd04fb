package sprig

import "errors"

// Errors returned by the animation engine and the scene graph. All of them
// indicate a caller contract violation; none are transient.
var (
	// ErrInvalidDuration is returned when a tween is requested with a
	// non-positive frame count.
	ErrInvalidDuration = errors.New("sprig: tween duration must be positive")
	// ErrInvalidDelay is returned when a tween is requested with a negative
	// delay.
	ErrInvalidDelay = errors.New("sprig: tween delay must not be negative")
	// ErrNoChannels is returned when a tween is requested without any field
	// to drive.
	ErrNoChannels = errors.New("sprig: tween has no channels")
	// ErrDimensionMismatch is returned when a sampling function produces a
	// different number of samples than the cached geometry it feeds.
	ErrDimensionMismatch = errors.New("sprig: sample count does not match geometry")
	// ErrDanglingReference is returned when a tween channel or a scene node
	// would reference a missing target.
	ErrDanglingReference = errors.New("sprig: reference to missing target")
	// ErrCycle is returned when re-parenting would make a frame its own
	// ancestor.
	ErrCycle = errors.New("sprig: frame parent chain would contain a cycle")
)
