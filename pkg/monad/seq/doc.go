// Package seq treats slices as the list monad.
//
// Highlights:
// - Unit: wrap one value into a one-element slice
// - Bind: flatMap, apply an element-to-slice function and flatten
// - Map/Filter: element-wise transforms built on Bind
// - Product: cartesian product of two slices as ordered pairs
//
// Order is always preserved: Bind visits elements left to right and
// appends results in place, so nested binds enumerate like nested loops.
package seq
