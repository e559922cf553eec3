// Package maybe provides the optional-value monad Maybe[T].
//
// Highlights:
// - Some/None: construct present and absent values
// - OfNillable/OfValue: lift nil-able inputs, nil becomes None
// - Bind/Map/Filter: compose, short-circuiting on the first None
// - GetOrElse/OrElse: collapse to a concrete value or alternative
//
// Maybe is the recommended replacement for manual nil checks and silent
// nil returns: absence is encoded in the container, so chained lookups
// stop at the first missing value instead of dereferencing nil.
package maybe
