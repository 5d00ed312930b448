package selector

import (
	"github.com/lattice-forge/lattice-solver/domain"
	"github.com/lattice-forge/lattice-solver/move"
	"github.com/lattice-forge/lattice-solver/solve"
)

// SwapMoveSelector yields move.Swap over every unordered pair of
// distinct entities from the same EntitySelector.
type SwapMoveSelector struct {
	Entities EntitySelector
	Variable domain.VariableDescriptor
}

// NewSwapMoveSelector constructs a SwapMoveSelector over entities.
func NewSwapMoveSelector(entities EntitySelector, variable domain.VariableDescriptor) *SwapMoveSelector {
	return &SwapMoveSelector{Entities: entities, Variable: variable}
}

func (s *SwapMoveSelector) n(director solve.ScoreDirector) int64 { return s.Entities.Size(director) }

func (s *SwapMoveSelector) Size(director solve.ScoreDirector) int64 {
	n := s.n(director)
	if n < 2 {
		return 0
	}
	return n * (n - 1) / 2
}

func (s *SwapMoveSelector) IsNeverEnding() bool { return false }

// Select maps index onto the index'th unordered pair (i, j), i < j, in
// row-major triangular order.
func (s *SwapMoveSelector) Select(director solve.ScoreDirector, index int64) move.Move {
	n := s.n(director)
	for i := int64(0); i < n-1; i++ {
		rowSize := n - 1 - i
		if index < rowSize {
			j := i + 1 + index
			refA := s.Entities.Select(director, i)
			refB := s.Entities.Select(director, j)
			return move.NewSwap(refA, refB, s.Variable)
		}
		index -= rowSize
	}
	return nil
}
