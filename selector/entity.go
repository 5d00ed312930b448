package selector

import (
	"github.com/lattice-forge/lattice-solver/domain"
	"github.com/lattice-forge/lattice-solver/solve"
)

// EntitySelector yields planning entities by index.
type EntitySelector interface {
	Size(director solve.ScoreDirector) int64
	IsNeverEnding() bool
	Select(director solve.ScoreDirector, index int64) domain.EntityRef
}

// FromSolutionEntitySelector walks every entity in one descriptor's
// collection, in storage order.
type FromSolutionEntitySelector struct {
	DescriptorIndex int
}

// NewFromSolutionEntitySelector constructs a selector over every entity
// at descriptorIndex.
func NewFromSolutionEntitySelector(descriptorIndex int) *FromSolutionEntitySelector {
	return &FromSolutionEntitySelector{DescriptorIndex: descriptorIndex}
}

func (s *FromSolutionEntitySelector) Size(director solve.ScoreDirector) int64 {
	return int64(director.EntityCount(s.DescriptorIndex))
}

func (s *FromSolutionEntitySelector) IsNeverEnding() bool { return false }

func (s *FromSolutionEntitySelector) Select(director solve.ScoreDirector, index int64) domain.EntityRef {
	return domain.EntityRef{DescriptorIndex: s.DescriptorIndex, EntityIndex: int(index)}
}
