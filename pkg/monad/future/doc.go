// Package future provides a minimal future/promise monad over goroutines
// and channels.
//
// Highlights:
// - Go: spawn work and get the Future of its result
// - Resolved/Failed: already-resolved futures
// - Await: block for the result or context cancellation
// - Bind: sequence two asynchronous calls, feeding the first result
//   into the second
// - Map: pure transform of the resolved value
// - All: await a set of futures and collect values in order
//
// The package demonstrates composition only: there is no scheduler,
// retry, or timeout machinery beyond what context.Context provides.
package future
