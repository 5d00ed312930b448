package selector

import (
	"github.com/lattice-forge/lattice-solver/domain"
	"github.com/lattice-forge/lattice-solver/move"
	"github.com/lattice-forge/lattice-solver/solve"
)

// ListRuinMoveSelector enumerates contiguous windows of BatchSize
// elements (sliding across every list in Entities) as move.ListRuin
// candidates, each one's removed batch reinserted across
// DstDescriptorIndex by the move's own internal greedy search.
type ListRuinMoveSelector struct {
	Entities           EntitySelector
	Variable           domain.VariableDescriptor
	BatchSize          int
	DstDescriptorIndex int
}

// NewListRuinMoveSelector constructs a ListRuinMoveSelector.
func NewListRuinMoveSelector(entities EntitySelector, variable domain.VariableDescriptor, batchSize, dstDescriptorIndex int) *ListRuinMoveSelector {
	return &ListRuinMoveSelector{Entities: entities, Variable: variable, BatchSize: batchSize, DstDescriptorIndex: dstDescriptorIndex}
}

func (s *ListRuinMoveSelector) candidates(director solve.ScoreDirector) []move.Move {
	n := s.Entities.Size(director)
	var out []move.Move
	for i := int64(0); i < n; i++ {
		ref := s.Entities.Select(director, i)
		list := listOf(director, s.Variable, ref)
		if s.BatchSize <= 0 || s.BatchSize > len(list) {
			continue
		}
		for start := 0; start+s.BatchSize <= len(list); start++ {
			targets := make([]move.RuinTarget, s.BatchSize)
			for k := 0; k < s.BatchSize; k++ {
				targets[k] = move.RuinTarget{Ref: ref, Pos: start + k}
			}
			out = append(out, move.NewListRuin(s.Variable, targets, s.DstDescriptorIndex))
		}
	}
	return out
}

func (s *ListRuinMoveSelector) Size(director solve.ScoreDirector) int64 {
	return int64(len(s.candidates(director)))
}

func (s *ListRuinMoveSelector) IsNeverEnding() bool { return false }

func (s *ListRuinMoveSelector) Select(director solve.ScoreDirector, index int64) move.Move {
	c := s.candidates(director)
	if index < 0 || index >= int64(len(c)) {
		return nil
	}
	return c[index]
}

// KOptMoveSelector enumerates the classic 2-opt neighborhood: for every
// list in Entities, every interior sub-range [i,j) with a single cut
// pair, reversed in place. This is the common concrete instance of
// move.KOpt's general cut-and-reassemble contract.
type KOptMoveSelector struct {
	Entities EntitySelector
	Variable domain.VariableDescriptor
}

// NewKOptMoveSelector constructs a KOptMoveSelector.
func NewKOptMoveSelector(entities EntitySelector, variable domain.VariableDescriptor) *KOptMoveSelector {
	return &KOptMoveSelector{Entities: entities, Variable: variable}
}

func (s *KOptMoveSelector) candidates(director solve.ScoreDirector) []move.Move {
	n := s.Entities.Size(director)
	var out []move.Move
	for i := int64(0); i < n; i++ {
		ref := s.Entities.Select(director, i)
		list := listOf(director, s.Variable, ref)
		for start := 1; start < len(list); start++ {
			for end := start + 1; end <= len(list); end++ {
				out = append(out, m2opt(s.Variable, ref, start, end))
			}
		}
	}
	return out
}

func m2opt(variable domain.VariableDescriptor, ref domain.EntityRef, start, end int) *move.KOpt {
	return move.NewKOpt(variable, ref, []int{start, end}, []int{0, 1, 2}, []bool{false, true, false})
}

func (s *KOptMoveSelector) Size(director solve.ScoreDirector) int64 {
	return int64(len(s.candidates(director)))
}

func (s *KOptMoveSelector) IsNeverEnding() bool { return false }

func (s *KOptMoveSelector) Select(director solve.ScoreDirector, index int64) move.Move {
	c := s.candidates(director)
	if index < 0 || index >= int64(len(c)) {
		return nil
	}
	return c[index]
}
