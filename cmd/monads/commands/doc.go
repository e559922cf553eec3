// Package commands defines the monads demo CLI.
//
// Commands
//
//   - lookup   Look up a person naively and with Maybe chaining
//   - orders   Chain two asynchronous fetches and total an order
//   - grid     Print the list-monad cartesian product and bind chains
//
// Every command runs against in-memory stand-in data; the CLI exists to
// print the demonstrations, not to expose an API.
package commands
