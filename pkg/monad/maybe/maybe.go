package maybe

import (
	"github.com/ib-77/monads/pkg/monad"
)

// Maybe represents presence or absence of a value of type T. It replaces
// null-based signaling: constructing from a nil-like input yields None,
// and chained binds short-circuit on the first absent value.
type Maybe[T any] struct {
	value   T
	present bool
}

func Some[T any](v T) Maybe[T] {
	return Maybe[T]{
		value:   v,
		present: true,
	}
}

func None[T any]() Maybe[T] {
	return Maybe[T]{}
}

// OfNillable lifts a pointer into a Maybe. A nil pointer yields None;
// this construction rule is the replacement for manual nil checks.
func OfNillable[T any](v *T) Maybe[T] {
	if v == nil {
		return None[T]()
	}
	return Some(*v)
}

// OfValue lifts any value into a Maybe, treating nil interfaces and nil
// pointers as absent.
func OfValue[T any](v T) Maybe[T] {
	if monad.IsNil(v) {
		return None[T]()
	}
	return Some(v)
}

func (m Maybe[T]) IsSome() bool {
	return m.present
}

func (m Maybe[T]) IsNone() bool {
	return !m.present
}

// Get returns the contained value, or the zero value of T when absent.
func (m Maybe[T]) Get() T {
	return m.value
}

func (m Maybe[T]) GetOrElse(def T) T {
	if m.present {
		return m.value
	}
	return def
}

func (m Maybe[T]) OrElse(alternative Maybe[T]) Maybe[T] {
	if m.present {
		return m
	}
	return alternative
}

// Bind applies f to the contained value when present; an absent input
// short-circuits without calling f.
func Bind[In, Out any](m Maybe[In], f func(v In) Maybe[Out]) Maybe[Out] {
	if m.IsNone() {
		return None[Out]()
	}
	return f(m.value)
}

// Map transforms the contained value when present.
func Map[In, Out any](m Maybe[In], f func(v In) Out) Maybe[Out] {
	return Bind(m, func(v In) Maybe[Out] {
		return Some(f(v))
	})
}

// Filter keeps a present value only while the predicate holds.
func Filter[T any](m Maybe[T], keep func(v T) bool) Maybe[T] {
	return Bind(m, func(v T) Maybe[T] {
		if keep(v) {
			return m
		}
		return None[T]()
	})
}
