package constraint

import (
	"github.com/lattice-forge/lattice-solver/constraint/collector"
	"github.com/lattice-forge/lattice-solver/domain"
	"github.com/lattice-forge/lattice-solver/score"
)

// Grouped implements the group-by + collector pattern (spec §4.C
// "Grouped"): entities are partitioned by KeyOf, each group folds its
// members' Extract(entity) values through a fresh collector.Accumulator,
// and the group's score contribution is Weight(accumulator.Finish()).
//
// Insert/retract recompute only the affected group's pre- and
// post-fold score and return their difference — the delta contract of
// spec §4.C ("Insert caches entity_to_group/entity_to_value, computes
// pre-score and post-score of the affected accumulator from scratch at
// each step").
type Grouped struct {
	name         string
	ref          string
	hard         bool
	descIndex    int
	desc         *domain.SolutionDescriptor
	zeroScore    score.Score
	keyOf        func(entity interface{}) interface{}
	extract      func(entity interface{}) interface{}
	newCollector collector.Collector
	weight       func(groupResult interface{}) score.Score
	penalize     bool

	groups          map[interface{}]collector.Accumulator
	groupScore      map[interface{}]score.Score
	groupMemberCnt  map[interface{}]int
	entityToGroup   map[int]interface{}
	entityToValue   map[int]interface{}
}

// NewGrouped constructs a grouped constraint.
func NewGrouped(
	name, ref string, hard bool,
	desc *domain.SolutionDescriptor, descIndex int,
	zero score.Score,
	keyOf func(entity interface{}) interface{},
	extract func(entity interface{}) interface{},
	newCollector collector.Collector,
	weight func(groupResult interface{}) score.Score,
	penalize bool,
) *Grouped {
	g := &Grouped{
		name: name, ref: ref, hard: hard,
		desc: desc, descIndex: descIndex, zeroScore: zero,
		keyOf: keyOf, extract: extract, newCollector: newCollector, weight: weight, penalize: penalize,
	}
	g.Reset()
	return g
}

func (c *Grouped) Name() string          { return c.name }
func (c *Grouped) IsHard() bool          { return c.hard }
func (c *Grouped) ConstraintRef() string { return c.ref }
func (c *Grouped) Shape() score.Shape          { return c.zeroScore.Shape() }

func (c *Grouped) Reset() {
	c.groups = make(map[interface{}]collector.Accumulator)
	c.groupScore = make(map[interface{}]score.Score)
	c.groupMemberCnt = make(map[interface{}]int)
	c.entityToGroup = make(map[int]interface{})
	c.entityToValue = make(map[int]interface{})
}

func (c *Grouped) entity(solution interface{}, i int) interface{} {
	return c.desc.GetEntity(solution, domain.EntityRef{DescriptorIndex: c.descIndex, EntityIndex: i})
}

func (c *Grouped) groupWeight(key interface{}) score.Score {
	acc, ok := c.groups[key]
	if !ok {
		return c.zeroScore
	}
	return signedWeight(c.penalize, c.weight(acc.Finish()))
}

func (c *Grouped) Evaluate(solution interface{}) (score.Score, error) {
	n := c.desc.EntityCount(solution, c.descIndex)
	groups := make(map[interface{}]collector.Accumulator)
	for i := 0; i < n; i++ {
		e := c.entity(solution, i)
		key := c.keyOf(e)
		acc, ok := groups[key]
		if !ok {
			acc = c.newCollector.CreateAccumulator()
			groups[key] = acc
		}
		acc.Accumulate(c.extract(e))
	}
	total := c.zeroScore
	for _, acc := range groups {
		var err error
		total, err = total.Add(signedWeight(c.penalize, c.weight(acc.Finish())))
		if err != nil {
			return nil, err
		}
	}
	return total, nil
}

func (c *Grouped) MatchCount(solution interface{}) (int, error) {
	n := c.desc.EntityCount(solution, c.descIndex)
	keys := make(map[interface{}]struct{})
	for i := 0; i < n; i++ {
		keys[c.keyOf(c.entity(solution, i))] = struct{}{}
	}
	return len(keys), nil
}

func (c *Grouped) Initialize(solution interface{}) (score.Score, error) {
	c.Reset()
	n := c.desc.EntityCount(solution, c.descIndex)
	total := c.zeroScore
	for i := 0; i < n; i++ {
		delta, err := c.insertEntity(solution, i)
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

func (c *Grouped) insertEntity(solution interface{}, i int) (score.Score, error) {
	e := c.entity(solution, i)
	key := c.keyOf(e)
	value := c.extract(e)

	acc, ok := c.groups[key]
	if !ok {
		acc = c.newCollector.CreateAccumulator()
		c.groups[key] = acc
		c.groupScore[key] = c.zeroScore
	}
	pre := c.groupScore[key]
	acc.Accumulate(value)
	post := signedWeight(c.penalize, c.weight(acc.Finish()))
	c.groupScore[key] = post
	c.groupMemberCnt[key]++
	c.entityToGroup[i] = key
	c.entityToValue[i] = value

	return post.Subtract(pre)
}

func (c *Grouped) OnInsert(solution interface{}, ref domain.EntityRef) (score.Score, error) {
	if ref.DescriptorIndex != c.descIndex {
		return c.zeroScore, nil
	}
	return c.insertEntity(solution, ref.EntityIndex)
}

func (c *Grouped) OnRetract(solution interface{}, ref domain.EntityRef) (score.Score, error) {
	if ref.DescriptorIndex != c.descIndex {
		return c.zeroScore, nil
	}
	i := ref.EntityIndex
	key, had := c.entityToGroup[i]
	if !had {
		return c.zeroScore, nil
	}
	value := c.entityToValue[i]
	acc := c.groups[key]
	pre := c.groupScore[key]
	acc.Retract(value)
	post := signedWeight(c.penalize, c.weight(acc.Finish()))
	c.groupScore[key] = post
	delete(c.entityToGroup, i)
	delete(c.entityToValue, i)
	c.groupMemberCnt[key]--
	if c.groupMemberCnt[key] <= 0 {
		delete(c.groups, key)
		delete(c.groupScore, key)
		delete(c.groupMemberCnt, key)
	}

	return post.Subtract(pre)
}

func (c *Grouped) GetMatches(solution interface{}) ([]Match, error) {
	n := c.desc.EntityCount(solution, c.descIndex)
	groupEntities := make(map[interface{}][]domain.EntityRef)
	groupAcc := make(map[interface{}]collector.Accumulator)
	var order []interface{}
	for i := 0; i < n; i++ {
		e := c.entity(solution, i)
		key := c.keyOf(e)
		if _, ok := groupAcc[key]; !ok {
			groupAcc[key] = c.newCollector.CreateAccumulator()
			order = append(order, key)
		}
		groupAcc[key].Accumulate(c.extract(e))
		groupEntities[key] = append(groupEntities[key], domain.EntityRef{DescriptorIndex: c.descIndex, EntityIndex: i})
	}
	out := make([]Match, 0, len(order))
	for _, key := range order {
		out = append(out, Match{
			Entities: groupEntities[key],
			Weight:   signedWeight(c.penalize, c.weight(groupAcc[key].Finish())),
		})
	}
	return out, nil
}
