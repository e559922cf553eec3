// Package monad contains the generic single-value container Wrapper[T]
// and the shared interfaces and utilities used by the concrete monads
// (maybe, seq, future).
//
// Highlights:
// - Unit: wrap a plain value verbatim
// - Bind: extract, transform, rewrap in one step (no double-wrapping)
// - Map: transform the wrapped value with a plain function
// - Get: read the wrapped value back out
//
// Wrapper satisfies the monad laws up to the wrapped value: container
// metadata (id, creation time) is stamped per construction and excluded
// from law equivalence.
package monad
