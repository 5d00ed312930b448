package selector

import (
	"github.com/lattice-forge/lattice-solver/domain"
	"github.com/lattice-forge/lattice-solver/move"
	"github.com/lattice-forge/lattice-solver/solve"
)

// SubListChangeMoveSelector enumerates contiguous ranges up to
// MaxSegmentLength long in every source list and every destination
// insertion point as move.SubListChange candidates.
type SubListChangeMoveSelector struct {
	Entities          EntitySelector
	Variable          domain.VariableDescriptor
	MaxSegmentLength  int
}

// NewSubListChangeMoveSelector constructs a SubListChangeMoveSelector;
// maxSegmentLength bounds how long a relocated range may be.
func NewSubListChangeMoveSelector(entities EntitySelector, variable domain.VariableDescriptor, maxSegmentLength int) *SubListChangeMoveSelector {
	return &SubListChangeMoveSelector{Entities: entities, Variable: variable, MaxSegmentLength: maxSegmentLength}
}

func (s *SubListChangeMoveSelector) candidates(director solve.ScoreDirector) []move.Move {
	n := s.Entities.Size(director)
	refs := make([]domain.EntityRef, n)
	for i := int64(0); i < n; i++ {
		refs[i] = s.Entities.Select(director, i)
	}

	var out []move.Move
	for _, srcRef := range refs {
		srcList := listOf(director, s.Variable, srcRef)
		for start := 0; start < len(srcList); start++ {
			maxEnd := len(srcList)
			if s.MaxSegmentLength > 0 && start+s.MaxSegmentLength < maxEnd {
				maxEnd = start + s.MaxSegmentLength
			}
			for end := start + 1; end <= maxEnd; end++ {
				for _, dstRef := range refs {
					dstList := listOf(director, s.Variable, dstRef)
					limit := len(dstList)
					if dstRef == srcRef {
						limit = len(srcList)
					}
					for dstPos := 0; dstPos <= limit; dstPos++ {
						m := move.NewSubListChange(s.Variable, srcRef, start, end, dstRef, dstPos)
						if m.IsDoable(nil) {
							out = append(out, m)
						}
					}
				}
			}
		}
	}
	return out
}

func (s *SubListChangeMoveSelector) Size(director solve.ScoreDirector) int64 {
	return int64(len(s.candidates(director)))
}

func (s *SubListChangeMoveSelector) IsNeverEnding() bool { return false }

func (s *SubListChangeMoveSelector) Select(director solve.ScoreDirector, index int64) move.Move {
	c := s.candidates(director)
	if index < 0 || index >= int64(len(c)) {
		return nil
	}
	return c[index]
}

// SubListSwapMoveSelector enumerates pairs of non-overlapping ranges
// (intra- or inter-entity), each up to MaxSegmentLength long, as
// move.SubListSwap candidates. The two ranges of a pair need not have
// the same length.
type SubListSwapMoveSelector struct {
	Entities         EntitySelector
	Variable         domain.VariableDescriptor
	MaxSegmentLength int
}

// NewSubListSwapMoveSelector constructs a SubListSwapMoveSelector.
func NewSubListSwapMoveSelector(entities EntitySelector, variable domain.VariableDescriptor, maxSegmentLength int) *SubListSwapMoveSelector {
	return &SubListSwapMoveSelector{Entities: entities, Variable: variable, MaxSegmentLength: maxSegmentLength}
}

type rangeSlot struct {
	ref        domain.EntityRef
	start, end int
}

func (s *SubListSwapMoveSelector) ranges(director solve.ScoreDirector) []rangeSlot {
	n := s.Entities.Size(director)
	var out []rangeSlot
	for i := int64(0); i < n; i++ {
		ref := s.Entities.Select(director, i)
		list := listOf(director, s.Variable, ref)
		for start := 0; start < len(list); start++ {
			maxEnd := len(list)
			if s.MaxSegmentLength > 0 && start+s.MaxSegmentLength < maxEnd {
				maxEnd = start + s.MaxSegmentLength
			}
			for end := start + 1; end <= maxEnd; end++ {
				out = append(out, rangeSlot{ref: ref, start: start, end: end})
			}
		}
	}
	return out
}

func (s *SubListSwapMoveSelector) candidates(director solve.ScoreDirector) []move.Move {
	ranges := s.ranges(director)
	var out []move.Move
	for i := 0; i < len(ranges); i++ {
		for j := i + 1; j < len(ranges); j++ {
			a, b := ranges[i], ranges[j]
			if a.ref == b.ref && a.end > b.start && b.end > a.start {
				continue // overlapping, same entity
			}
			m := move.NewSubListSwap(s.Variable, a.ref, a.start, a.end, b.ref, b.start, b.end)
			if m.IsDoable(nil) {
				out = append(out, m)
			}
		}
	}
	return out
}

func (s *SubListSwapMoveSelector) Size(director solve.ScoreDirector) int64 {
	return int64(len(s.candidates(director)))
}

func (s *SubListSwapMoveSelector) IsNeverEnding() bool { return false }

func (s *SubListSwapMoveSelector) Select(director solve.ScoreDirector, index int64) move.Move {
	c := s.candidates(director)
	if index < 0 || index >= int64(len(c)) {
		return nil
	}
	return c[index]
}
