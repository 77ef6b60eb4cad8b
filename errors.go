package lru

import "errors"

var (
	// ErrInvalidCapacity is returned when a cache is built with a capacity
	// below one.
	ErrInvalidCapacity = errors.New("lru: capacity must be positive")

	// ErrNoLoader is returned by GetOrLoad when no loader was configured.
	ErrNoLoader = errors.New("lru: no loader configured")
)
