package phase

import "github.com/lattice-forge/lattice-solver/terminate"

// Phase is one stage of a solve: construction, local search, or
// exhaustive branch-and-bound (spec §4.M "ordered list of phases").
type Phase interface {
	TypeName() string
	// Run drives state.Director until term fires or the phase runs out
	// of work on its own (e.g. no accepted move, every entity placed).
	Run(state *State, term terminate.Termination) error
}
