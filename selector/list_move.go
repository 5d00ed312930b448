package selector

import (
	"github.com/lattice-forge/lattice-solver/domain"
	"github.com/lattice-forge/lattice-solver/move"
	"github.com/lattice-forge/lattice-solver/solve"
)

// listOf reads a list-variable value off the working solution.
func listOf(director solve.ScoreDirector, variable domain.VariableDescriptor, ref domain.EntityRef) []interface{} {
	v := variable.Get(director.WorkingSolution(), ref.EntityIndex)
	if v == nil {
		return nil
	}
	return v.([]interface{})
}

// ListChangeMoveSelector enumerates every (srcRef, srcPos, dstRef,
// dstPos) combination across Entities' list variable as move.ListChange
// candidates. Candidates are materialized eagerly: simple and correct
// for the entity/list sizes this solver targets, at the cost of an
// O(total elements * total slots) Size call.
type ListChangeMoveSelector struct {
	Entities EntitySelector
	Variable domain.VariableDescriptor
}

// NewListChangeMoveSelector constructs a ListChangeMoveSelector over entities.
func NewListChangeMoveSelector(entities EntitySelector, variable domain.VariableDescriptor) *ListChangeMoveSelector {
	return &ListChangeMoveSelector{Entities: entities, Variable: variable}
}

func (s *ListChangeMoveSelector) candidates(director solve.ScoreDirector) []move.Move {
	n := s.Entities.Size(director)
	refs := make([]domain.EntityRef, n)
	for i := int64(0); i < n; i++ {
		refs[i] = s.Entities.Select(director, i)
	}

	var out []move.Move
	for _, srcRef := range refs {
		srcList := listOf(director, s.Variable, srcRef)
		for srcPos := range srcList {
			for _, dstRef := range refs {
				dstList := listOf(director, s.Variable, dstRef)
				limit := len(dstList)
				if dstRef == srcRef {
					limit = len(srcList)
				}
				for dstPos := 0; dstPos <= limit; dstPos++ {
					m := move.NewListChange(s.Variable, srcRef, srcPos, dstRef, dstPos)
					if m.IsDoable(nil) {
						out = append(out, m)
					}
				}
			}
		}
	}
	return out
}

func (s *ListChangeMoveSelector) Size(director solve.ScoreDirector) int64 {
	return int64(len(s.candidates(director)))
}

func (s *ListChangeMoveSelector) IsNeverEnding() bool { return false }

func (s *ListChangeMoveSelector) Select(director solve.ScoreDirector, index int64) move.Move {
	c := s.candidates(director)
	if index < 0 || index >= int64(len(c)) {
		return nil
	}
	return c[index]
}

// ListSwapMoveSelector enumerates every pair of distinct (ref, pos)
// element slots across Entities' list variable as move.ListSwap
// candidates.
type ListSwapMoveSelector struct {
	Entities EntitySelector
	Variable domain.VariableDescriptor
}

// NewListSwapMoveSelector constructs a ListSwapMoveSelector over entities.
func NewListSwapMoveSelector(entities EntitySelector, variable domain.VariableDescriptor) *ListSwapMoveSelector {
	return &ListSwapMoveSelector{Entities: entities, Variable: variable}
}

type listSlot struct {
	ref domain.EntityRef
	pos int
}

func (s *ListSwapMoveSelector) slots(director solve.ScoreDirector) []listSlot {
	n := s.Entities.Size(director)
	var out []listSlot
	for i := int64(0); i < n; i++ {
		ref := s.Entities.Select(director, i)
		list := listOf(director, s.Variable, ref)
		for pos := range list {
			out = append(out, listSlot{ref: ref, pos: pos})
		}
	}
	return out
}

func (s *ListSwapMoveSelector) pairs(director solve.ScoreDirector) []move.Move {
	slots := s.slots(director)
	var out []move.Move
	for i := 0; i < len(slots); i++ {
		for j := i + 1; j < len(slots); j++ {
			out = append(out, move.NewListSwap(s.Variable, slots[i].ref, slots[i].pos, slots[j].ref, slots[j].pos))
		}
	}
	return out
}

func (s *ListSwapMoveSelector) Size(director solve.ScoreDirector) int64 {
	return int64(len(s.pairs(director)))
}

func (s *ListSwapMoveSelector) IsNeverEnding() bool { return false }

func (s *ListSwapMoveSelector) Select(director solve.ScoreDirector, index int64) move.Move {
	p := s.pairs(director)
	if index < 0 || index >= int64(len(p)) {
		return nil
	}
	return p[index]
}
