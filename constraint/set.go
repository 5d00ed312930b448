package constraint

import (
	"github.com/lattice-forge/lattice-solver/domain"
	"github.com/lattice-forge/lattice-solver/score"
)

// ConstraintSet is an ordered collection of constraints that are
// initialized, inserted into, retracted from, and evaluated together,
// fanning every call out across all members and summing the resulting
// scores (spec §4.D).
//
// All constraints in a set must agree on score Shape; NewConstraintSet
// checks this once so the hot insert/retract path never has to.
type ConstraintSet struct {
	constraints []Constraint
	zeroScore   score.Score
	shape       score.Shape
	total       score.Score
}

// NewConstraintSet validates that every constraint's zero-valued score
// shares zero's Shape and returns a ConstraintSet ready for Initialize.
// zero fixes the set's Shape and is the identity returned for an empty
// insert/retract fan-out.
func NewConstraintSet(zero score.Score, constraints ...Constraint) (*ConstraintSet, error) {
	shape := zero.Shape()
	for _, c := range constraints {
		if c.Shape() != shape {
			return nil, ErrShapeMismatch
		}
	}
	return &ConstraintSet{constraints: constraints, zeroScore: zero, shape: shape, total: zero}, nil
}

// Constraints returns the set's members in construction order.
func (s *ConstraintSet) Constraints() []Constraint { return s.constraints }

// Total returns the score accumulated by the most recent
// InitializeAll/OnInsertAll/OnRetractAll call.
func (s *ConstraintSet) Total() score.Score { return s.total }

// ResetAll clears every constraint's internal state and the cached
// running total.
func (s *ConstraintSet) ResetAll() {
	for _, c := range s.constraints {
		c.Reset()
	}
	s.total = s.zeroScore
}

// InitializeAll rebuilds every constraint's indices from solution and
// returns the summed total score.
func (s *ConstraintSet) InitializeAll(solution interface{}) (score.Score, error) {
	total := s.zeroScore
	for _, c := range s.constraints {
		delta, err := c.Initialize(solution)
		if err != nil {
			return nil, err
		}
		total, err = total.Add(delta)
		if err != nil {
			return nil, err
		}
	}
	s.total = total
	return total, nil
}

// OnInsertAll fans the insertion of the entity at ref out to every
// constraint touching its descriptor, summing their deltas and updating
// the running total.
func (s *ConstraintSet) OnInsertAll(solution interface{}, ref domain.EntityRef) (score.Score, error) {
	delta := s.zeroScore
	for _, c := range s.constraints {
		d, err := c.OnInsert(solution, ref)
		if err != nil {
			return nil, err
		}
		delta, err = delta.Add(d)
		if err != nil {
			return nil, err
		}
	}
	total, err := s.total.Add(delta)
	if err != nil {
		return nil, err
	}
	s.total = total
	return delta, nil
}

// OnRetractAll fans the retraction of the entity at ref out to every
// constraint touching its descriptor, summing their deltas and updating
// the running total. Call before the entity is actually removed from
// solution, per the descriptor contract (spec §4.B).
func (s *ConstraintSet) OnRetractAll(solution interface{}, ref domain.EntityRef) (score.Score, error) {
	delta := s.zeroScore
	for _, c := range s.constraints {
		d, err := c.OnRetract(solution, ref)
		if err != nil {
			return nil, err
		}
		delta, err = delta.Add(d)
		if err != nil {
			return nil, err
		}
	}
	total, err := s.total.Add(delta)
	if err != nil {
		return nil, err
	}
	s.total = total
	return delta, nil
}

// EvaluateAll recomputes the full score from scratch across every
// constraint, consulting no cached state. Useful for verifying the
// incremental total against a full rescan.
func (s *ConstraintSet) EvaluateAll(solution interface{}) (score.Score, error) {
	total := s.zeroScore
	for _, c := range s.constraints {
		delta, err := c.Evaluate(solution)
		if err != nil {
			return nil, err
		}
		total, err = total.Add(delta)
		if err != nil {
			return nil, err
		}
	}
	return total, nil
}
