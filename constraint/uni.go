package constraint

import (
	"github.com/lattice-forge/lattice-solver/domain"
	"github.com/lattice-forge/lattice-solver/score"
)

// Uni is the degenerate arity-1 self-join: a match is a single entity
// (e,) for which Filter holds. No join key index is needed since there
// is nothing to join against.
type Uni struct {
	name      string
	ref       string
	hard      bool
	descIndex int
	desc      *domain.SolutionDescriptor
	zeroScore score.Score
	filter    func(entity interface{}) bool
	weight    func(entity interface{}) score.Score
	penalize  bool

	matches map[int]score.Score // entityIndex -> signed weight, for entities currently matching
}

// NewUni constructs a uni (arity-1) constraint. zero must be the zero
// value of whatever Score shape weight returns (e.g. score.HardSoft{}),
// so Evaluate/Initialize can start an accumulator of the right shape
// even when no entity currently matches.
func NewUni(
	name, ref string, hard bool,
	desc *domain.SolutionDescriptor, descIndex int,
	zero score.Score,
	filter func(entity interface{}) bool,
	weight func(entity interface{}) score.Score,
	penalize bool,
) *Uni {
	return &Uni{
		name: name, ref: ref, hard: hard,
		desc: desc, descIndex: descIndex, zeroScore: zero,
		filter: filter, weight: weight, penalize: penalize,
		matches: make(map[int]score.Score),
	}
}

func (c *Uni) Name() string          { return c.name }
func (c *Uni) IsHard() bool          { return c.hard }
func (c *Uni) ConstraintRef() string { return c.ref }
func (c *Uni) Shape() score.Shape          { return c.zeroScore.Shape() }

func (c *Uni) Reset() { c.matches = make(map[int]score.Score) }

func (c *Uni) Evaluate(solution interface{}) (score.Score, error) {
	total := c.zero()
	n := c.desc.EntityCount(solution, c.descIndex)
	for i := 0; i < n; i++ {
		e := c.desc.GetEntity(solution, domain.EntityRef{DescriptorIndex: c.descIndex, EntityIndex: i})
		if !c.filter(e) {
			continue
		}
		w := signedWeight(c.penalize, c.weight(e))
		var err error
		total, err = total.Add(w)
		if err != nil {
			return nil, err
		}
	}
	return total, nil
}

func (c *Uni) MatchCount(solution interface{}) (int, error) {
	n := c.desc.EntityCount(solution, c.descIndex)
	count := 0
	for i := 0; i < n; i++ {
		e := c.desc.GetEntity(solution, domain.EntityRef{DescriptorIndex: c.descIndex, EntityIndex: i})
		if c.filter(e) {
			count++
		}
	}
	return count, nil
}

func (c *Uni) Initialize(solution interface{}) (score.Score, error) {
	c.Reset()
	n := c.desc.EntityCount(solution, c.descIndex)
	total := c.zero()
	for i := 0; i < n; i++ {
		e := c.desc.GetEntity(solution, domain.EntityRef{DescriptorIndex: c.descIndex, EntityIndex: i})
		if !c.filter(e) {
			continue
		}
		w := signedWeight(c.penalize, c.weight(e))
		c.matches[i] = w
		var err error
		total, err = total.Add(w)
		if err != nil {
			return nil, err
		}
	}
	return total, nil
}

func (c *Uni) OnInsert(solution interface{}, ref domain.EntityRef) (score.Score, error) {
	if ref.DescriptorIndex != c.descIndex {
		return c.zero(), nil
	}
	e := c.desc.GetEntity(solution, ref)
	if e == nil || !c.filter(e) {
		return c.zero(), nil
	}
	w := signedWeight(c.penalize, c.weight(e))
	c.matches[ref.EntityIndex] = w
	return w, nil
}

func (c *Uni) OnRetract(solution interface{}, ref domain.EntityRef) (score.Score, error) {
	if ref.DescriptorIndex != c.descIndex {
		return c.zero(), nil
	}
	w, ok := c.matches[ref.EntityIndex]
	if !ok {
		return c.zero(), nil
	}
	delete(c.matches, ref.EntityIndex)
	return w.Negate(), nil
}

func (c *Uni) GetMatches(solution interface{}) ([]Match, error) {
	n := c.desc.EntityCount(solution, c.descIndex)
	var out []Match
	for i := 0; i < n; i++ {
		e := c.desc.GetEntity(solution, domain.EntityRef{DescriptorIndex: c.descIndex, EntityIndex: i})
		if !c.filter(e) {
			continue
		}
		out = append(out, Match{
			Entities: []domain.EntityRef{{DescriptorIndex: c.descIndex, EntityIndex: i}},
			Weight:   signedWeight(c.penalize, c.weight(e)),
		})
	}
	return out, nil
}

func (c *Uni) zero() score.Score { return c.zeroScore }
