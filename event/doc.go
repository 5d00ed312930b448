// Package event carries the solver's callback surface to the host
// (spec §6 "Callbacks to the host"), grounded on the original Rust
// port's dedicated event module. A Bus fans events out synchronously on
// the solver goroutine, so a listener must never block or call back
// into the director.
package event
