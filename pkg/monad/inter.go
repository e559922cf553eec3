package monad

import "time"

type Container[T any] interface {
	// Get returns the contained value
	Get() T
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

// WithPresence defines an interface for containers whose value may be absent
type WithPresence[T any] interface {
	// Get returns the contained value, or the zero value when absent
	Get() T
	// IsSome returns true if a value is present
	IsSome() bool
	// IsNone returns true if no value is present
	IsNone() bool
}
