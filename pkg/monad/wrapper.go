package monad

import (
	"time"

	"github.com/google/uuid"
)

// Wrapper holds exactly one immutable value of type T together with
// container metadata. It is never mutated after construction, so no
// synchronization is needed around the value.
type Wrapper[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
}

// Unit wraps a value verbatim. It always succeeds.
func Unit[T any](v T) Wrapper[T] {
	return Wrapper[T]{
		value:     v,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Bind applies f to the unwrapped value and returns its result directly,
// without double-wrapping. Bind has no error branch: if f can fail, the
// failure must live in its return type (e.g. a maybe.Maybe).
//
// Bind is a free function because Go methods cannot introduce the new
// type parameter S.
func Bind[T, S any](w Wrapper[T], f func(v T) Wrapper[S]) Wrapper[S] {
	return f(w.value)
}

// Map transforms the wrapped value and rewraps the result.
func Map[T, S any](w Wrapper[T], f func(v T) S) Wrapper[S] {
	return Bind(w, func(v T) Wrapper[S] {
		return Unit(f(v))
	})
}

// Then rebinds within the same value type. It exists so same-type
// pipelines can chain fluently without the free-function form.
func (w Wrapper[T]) Then(f func(v T) Wrapper[T]) Wrapper[T] {
	return Bind(w, f)
}

// Get returns the wrapped value. The value is guaranteed present at
// construction, so there is no failure mode.
func (w Wrapper[T]) Get() T {
	return w.value
}

func (w Wrapper[T]) CreatedAt() time.Time {
	return w.createdAt
}

func (w Wrapper[T]) Id() uuid.UUID {
	return w.id
}
