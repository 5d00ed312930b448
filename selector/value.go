package selector

import (
	"github.com/lattice-forge/lattice-solver/domain"
	"github.com/lattice-forge/lattice-solver/solve"
)

// ValueSelector yields candidate values for one planning variable.
type ValueSelector interface {
	Size(director solve.ScoreDirector, ref domain.EntityRef) int64
	IsNeverEnding() bool
	Select(director solve.ScoreDirector, ref domain.EntityRef, index int64) interface{}
}

// StaticValueSelector offers a fixed list of candidate values, the same
// for every entity (e.g. a pool of qualified employees).
type StaticValueSelector struct {
	Values []interface{}
}

// NewStaticValueSelector constructs a selector over a fixed value pool.
func NewStaticValueSelector(values []interface{}) *StaticValueSelector {
	return &StaticValueSelector{Values: values}
}

func (s *StaticValueSelector) Size(solve.ScoreDirector, domain.EntityRef) int64 {
	return int64(len(s.Values))
}

func (s *StaticValueSelector) IsNeverEnding() bool { return false }

func (s *StaticValueSelector) Select(_ solve.ScoreDirector, _ domain.EntityRef, index int64) interface{} {
	return s.Values[index]
}

// RangeValueSelector offers every value in a variable's declared
// ValueRange.
type RangeValueSelector struct {
	Range domain.ValueRange
}

// NewRangeValueSelector constructs a selector over rng's full extent.
func NewRangeValueSelector(rng domain.ValueRange) *RangeValueSelector {
	return &RangeValueSelector{Range: rng}
}

func (s *RangeValueSelector) Size(solve.ScoreDirector, domain.EntityRef) int64 {
	return int64(s.Range.Size())
}

func (s *RangeValueSelector) IsNeverEnding() bool { return false }

func (s *RangeValueSelector) Select(_ solve.ScoreDirector, _ domain.EntityRef, index int64) interface{} {
	return s.Range.At(int(index))
}
