package selector

import (
	"github.com/lattice-forge/lattice-solver/domain"
	"github.com/lattice-forge/lattice-solver/move"
	"github.com/lattice-forge/lattice-solver/solve"
)

// PillarSwapMoveSelector groups every entity from Entities by its
// current Variable value into pillars, then yields move.PillarSwap over
// every unordered pair of distinct pillars.
type PillarSwapMoveSelector struct {
	Entities EntitySelector
	Variable domain.VariableDescriptor
}

// NewPillarSwapMoveSelector constructs a PillarSwapMoveSelector over entities.
func NewPillarSwapMoveSelector(entities EntitySelector, variable domain.VariableDescriptor) *PillarSwapMoveSelector {
	return &PillarSwapMoveSelector{Entities: entities, Variable: variable}
}

// pillars groups Entities by their current Variable value, in
// first-seen order, so results are deterministic across calls on the
// same solution.
func (s *PillarSwapMoveSelector) pillars(director solve.ScoreDirector) [][]domain.EntityRef {
	n := s.Entities.Size(director)
	order := make([]interface{}, 0)
	groups := make(map[interface{}][]domain.EntityRef)
	for i := int64(0); i < n; i++ {
		ref := s.Entities.Select(director, i)
		val := s.Variable.Get(director.WorkingSolution(), ref.EntityIndex)
		if _, ok := groups[val]; !ok {
			order = append(order, val)
		}
		groups[val] = append(groups[val], ref)
	}
	out := make([][]domain.EntityRef, 0, len(order))
	for _, v := range order {
		out = append(out, groups[v])
	}
	return out
}

func (s *PillarSwapMoveSelector) Size(director solve.ScoreDirector) int64 {
	p := int64(len(s.pillars(director)))
	if p < 2 {
		return 0
	}
	return p * (p - 1) / 2
}

func (s *PillarSwapMoveSelector) IsNeverEnding() bool { return false }

func (s *PillarSwapMoveSelector) Select(director solve.ScoreDirector, index int64) move.Move {
	pillars := s.pillars(director)
	p := int64(len(pillars))
	for i := int64(0); i < p-1; i++ {
		rowSize := p - 1 - i
		if index < rowSize {
			j := i + 1 + index
			return move.NewPillarSwap(pillars[i], pillars[j], s.Variable)
		}
		index -= rowSize
	}
	return nil
}
