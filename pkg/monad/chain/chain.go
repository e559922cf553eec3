package chain

import (
	"context"

	"github.com/ib-77/monads/pkg/monad/maybe"
)

// Chain wraps a maybe.Maybe with context to enable fluent chaining of
// optional lookups.
type Chain[T any] struct {
	ctx context.Context
	m   maybe.Maybe[T]
}

// Start creates a new chain from a maybe.Maybe
func Start[T any](ctx context.Context, m maybe.Maybe[T]) Chain[T] {
	return Chain[T]{ctx: ctx, m: m}
}

// FromValue creates a new chain from a present value
func FromValue[T any](ctx context.Context, v T) Chain[T] {
	return Start(ctx, maybe.Some(v))
}

// FromNillable creates a new chain from a pointer; nil starts the chain absent
func FromNillable[T any](ctx context.Context, v *T) Chain[T] {
	return Start(ctx, maybe.OfNillable(v))
}

// Maybe returns the underlying maybe.Maybe
func (c Chain[T]) Maybe() maybe.Maybe[T] {
	return c.m
}

// Then composes functions that already return maybe.Maybe[T]; an absent
// value short-circuits the rest of the chain.
func (c Chain[T]) Then(onPresent func(ctx context.Context, v T) maybe.Maybe[T]) Chain[T] {
	if c.m.IsNone() {
		return c
	}
	return Chain[T]{ctx: c.ctx, m: onPresent(c.ctx, c.m.Get())}
}

// Map transforms the present value to a new value
func (c Chain[T]) Map(onPresent func(ctx context.Context, v T) T) Chain[T] {
	if c.m.IsNone() {
		return c
	}
	return Chain[T]{ctx: c.ctx, m: maybe.Some(onPresent(c.ctx, c.m.Get()))}
}

// Filter drops the value when the predicate does not hold
func (c Chain[T]) Filter(keep func(ctx context.Context, v T) bool) Chain[T] {
	if c.m.IsNone() || keep(c.ctx, c.m.Get()) {
		return c
	}
	return Chain[T]{ctx: c.ctx, m: maybe.None[T]()}
}

// Ensure triggers side effects for presence/absence without changing the value
func (c Chain[T]) Ensure(onPresent func(context.Context, T), onAbsent func(context.Context)) Chain[T] {
	if c.m.IsNone() {
		if onAbsent != nil {
			onAbsent(c.ctx)
		}
		return c
	}

	if onPresent != nil {
		onPresent(c.ctx, c.m.Get())
	}
	return c
}

// GetOrElse collapses the chain to a concrete value
func (c Chain[T]) GetOrElse(def T) T {
	return c.m.GetOrElse(def)
}

// Finally collapses the chain to a final value via handlers
func (c Chain[T]) Finally(
	onPresent func(context.Context, T) T,
	onAbsent func(context.Context) T,
) T {
	if c.m.IsNone() {
		return onAbsent(c.ctx)
	}
	return onPresent(c.ctx, c.m.Get())
}

// Then switches a chain to a new value type via a maybe-returning function.
// It is a free function because Go methods cannot introduce type parameters.
func Then[T, U any](c Chain[T], onPresent func(ctx context.Context, v T) maybe.Maybe[U]) Chain[U] {
	return Chain[U]{
		ctx: c.ctx,
		m:   maybe.Bind(c.m, func(v T) maybe.Maybe[U] { return onPresent(c.ctx, v) }),
	}
}

// Map transforms a chain to a new value type via a pure function.
func Map[T, U any](c Chain[T], onPresent func(ctx context.Context, v T) U) Chain[U] {
	return Chain[U]{
		ctx: c.ctx,
		m:   maybe.Map(c.m, func(v T) U { return onPresent(c.ctx, v) }),
	}
}
