package selector

import (
	"github.com/lattice-forge/lattice-solver/domain"
	"github.com/lattice-forge/lattice-solver/move"
	"github.com/lattice-forge/lattice-solver/solve"
)

// ChangeMoveSelector pairs an EntitySelector with a ValueSelector,
// flattening the cross product into move.Change instances.
type ChangeMoveSelector struct {
	Entities EntitySelector
	Values   ValueSelector
	Variable domain.VariableDescriptor
}

// NewChangeMoveSelector constructs a ChangeMoveSelector over entities x values.
func NewChangeMoveSelector(entities EntitySelector, values ValueSelector, variable domain.VariableDescriptor) *ChangeMoveSelector {
	return &ChangeMoveSelector{Entities: entities, Values: values, Variable: variable}
}

func (s *ChangeMoveSelector) Size(director solve.ScoreDirector) int64 {
	entityCount := s.Entities.Size(director)
	if entityCount == 0 {
		return 0
	}
	var total int64
	for i := int64(0); i < entityCount; i++ {
		ref := s.Entities.Select(director, i)
		total += s.Values.Size(director, ref)
	}
	return total
}

func (s *ChangeMoveSelector) IsNeverEnding() bool { return false }

// Select decodes a flat index into (entity, value) by scanning entities
// in order and consuming each one's value-count slice of the index
// space. Fine for the entity counts this solver targets; a sorted
// prefix-sum index would be the scale-up if entity counts grew large.
func (s *ChangeMoveSelector) Select(director solve.ScoreDirector, index int64) move.Move {
	entityCount := s.Entities.Size(director)
	for i := int64(0); i < entityCount; i++ {
		ref := s.Entities.Select(director, i)
		n := s.Values.Size(director, ref)
		if index < n {
			value := s.Values.Select(director, ref, index)
			return move.NewChange(ref, s.Variable, value)
		}
		index -= n
	}
	return nil
}
