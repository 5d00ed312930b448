// Package solver drives an ordered list of phases to completion,
// dispatching the spec §6 callback list on the way (spec §4.M).
package solver
