// Package orders is the asynchronous-composition demonstration domain:
// a simulated user/order store whose fetches resolve as futures, chained
// with future.Bind and finished with a numeric future.Map.
//
// There is no real store or order API; the latency is simulated and the
// data lives in memory.
package orders
