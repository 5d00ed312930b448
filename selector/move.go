package selector

import (
	"github.com/lattice-forge/lattice-solver/move"
	"github.com/lattice-forge/lattice-solver/solve"
)

// MoveSelector yields concrete, ready-to-try Move values.
type MoveSelector interface {
	Size(director solve.ScoreDirector) int64
	IsNeverEnding() bool
	Select(director solve.ScoreDirector, index int64) move.Move
}
