// Package census is the optional-chaining demonstration domain: an
// in-memory person index looked up two ways, the naive nil-returning
// style and the Maybe-based style that short-circuits on absence.
//
// There is no real census service; the index is a stand-in for the
// concept being taught.
package census
