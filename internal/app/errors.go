package app

import "errors"

var (
	// ErrNilDependency is returned by [New] when a required dependency is nil.
	ErrNilDependency = errors.New("nil dependency")
	// ErrNonPositiveDuration is returned by [New] for a zero or negative run
	// duration.
	ErrNonPositiveDuration = errors.New("duration must be positive")
)
