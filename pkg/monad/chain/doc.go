// Package chain provides a fluent wrapper around maybe.Maybe[T]
// for building optional-value pipelines without branching at each step.
//
// Key operations:
// - Start/FromValue/FromNillable: begin a chain from a Maybe, value, or pointer
// - Then: compose maybe-returning functions, short-circuiting on None
// - Map/Filter: transform or drop the present value
// - Ensure: run side effects without changing the value
// - GetOrElse/Finally: collapse the chain into a concrete value
//
// Free functions Then and Map switch the chain to a new value type; the
// methods keep the same type for fluent use.
package chain
