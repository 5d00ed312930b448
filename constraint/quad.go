package constraint

import (
	"sort"

	"github.com/lattice-forge/lattice-solver/domain"
	"github.com/lattice-forge/lattice-solver/score"
)

// Quad is the arity-4 self-join, generated from the BiSelf template
// (spec §9): a match is the strictly-ordered quadruple sharing a join
// key and satisfying Filter.
type Quad struct {
	name      string
	ref       string
	hard      bool
	descIndex int
	desc      *domain.SolutionDescriptor
	zeroScore score.Score
	keyOf     func(entity interface{}) interface{}
	filter    func(entities [4]interface{}) bool
	weight    func(entities [4]interface{}) score.Score
	penalize  bool

	keyToIndices  map[interface{}][]int
	indexToKey    map[int]interface{}
	matches       map[[4]int]score.Score
	entityMatches map[int]map[[4]int]struct{}
}

// NewQuad constructs an arity-4 self-join constraint.
func NewQuad(
	name, ref string, hard bool,
	desc *domain.SolutionDescriptor, descIndex int,
	zero score.Score,
	keyOf func(entity interface{}) interface{},
	filter func(entities [4]interface{}) bool,
	weight func(entities [4]interface{}) score.Score,
	penalize bool,
) *Quad {
	if filter == nil {
		filter = func([4]interface{}) bool { return true }
	}
	q := &Quad{
		name: name, ref: ref, hard: hard,
		desc: desc, descIndex: descIndex, zeroScore: zero,
		keyOf: keyOf, filter: filter, weight: weight, penalize: penalize,
	}
	q.Reset()
	return q
}

func (c *Quad) Name() string          { return c.name }
func (c *Quad) IsHard() bool          { return c.hard }
func (c *Quad) ConstraintRef() string { return c.ref }
func (c *Quad) Shape() score.Shape          { return c.zeroScore.Shape() }

func (c *Quad) Reset() {
	c.keyToIndices = make(map[interface{}][]int)
	c.indexToKey = make(map[int]interface{})
	c.matches = make(map[[4]int]score.Score)
	c.entityMatches = make(map[int]map[[4]int]struct{})
}

func (c *Quad) entity(solution interface{}, i int) interface{} {
	return c.desc.GetEntity(solution, domain.EntityRef{DescriptorIndex: c.descIndex, EntityIndex: i})
}

func (c *Quad) entities(solution interface{}, tup [4]int) [4]interface{} {
	var out [4]interface{}
	for i, idx := range tup {
		out[i] = c.entity(solution, idx)
	}
	return out
}

func (c *Quad) applyFilterWeight(solution interface{}, tup [4]int) (bool, score.Score) {
	es := c.entities(solution, tup)
	if !c.filter(es) {
		return false, nil
	}
	return true, signedWeight(c.penalize, c.weight(es))
}

func (c *Quad) Evaluate(solution interface{}) (score.Score, error) {
	n := c.desc.EntityCount(solution, c.descIndex)
	groups := make(map[interface{}][]int)
	for i := 0; i < n; i++ {
		k := c.keyOf(c.entity(solution, i))
		groups[k] = append(groups[k], i)
	}
	total := c.zeroScore
	for _, members := range groups {
		for _, combo := range combinations(members, 4) {
			tup := [4]int{combo[0], combo[1], combo[2], combo[3]}
			ok, w := c.applyFilterWeight(solution, tup)
			if !ok {
				continue
			}
			var err error
			total, err = total.Add(w)
			if err != nil {
				return nil, err
			}
		}
	}
	return total, nil
}

func (c *Quad) MatchCount(solution interface{}) (int, error) {
	matches, err := c.GetMatches(solution)
	if err != nil {
		return 0, err
	}
	return len(matches), nil
}

func (c *Quad) Initialize(solution interface{}) (score.Score, error) {
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

func (c *Quad) insertEntity(solution interface{}, e int) (score.Score, error) {
	entity := c.entity(solution, e)
	key := c.keyOf(entity)
	c.indexToKey[e] = key
	c.keyToIndices[key] = sortedInsert(c.keyToIndices[key], e)

	var peers []int
	for _, idx := range c.keyToIndices[key] {
		if idx != e {
			peers = append(peers, idx)
		}
	}

	delta := c.zeroScore
	for _, sub := range combinations(peers, 3) {
		xs := []int{sub[0], sub[1], sub[2], e}
		sortInts(xs)
		tup := [4]int{xs[0], xs[1], xs[2], xs[3]}
		if _, seen := c.matches[tup]; seen {
			continue
		}
		ok, w := c.applyFilterWeight(solution, tup)
		if !ok {
			continue
		}
		c.matches[tup] = w
		for _, member := range tup {
			c.addEntityMatch(member, tup)
		}
		var err error
		delta, err = delta.Add(w)
		if err != nil {
			return nil, err
		}
	}
	return delta, nil
}

func (c *Quad) addEntityMatch(entityIndex int, tup [4]int) {
	set, ok := c.entityMatches[entityIndex]
	if !ok {
		set = make(map[[4]int]struct{})
		c.entityMatches[entityIndex] = set
	}
	set[tup] = struct{}{}
}

func (c *Quad) OnInsert(solution interface{}, ref domain.EntityRef) (score.Score, error) {
	if ref.DescriptorIndex != c.descIndex {
		return c.zeroScore, nil
	}
	return c.insertEntity(solution, ref.EntityIndex)
}

func (c *Quad) OnRetract(solution interface{}, ref domain.EntityRef) (score.Score, error) {
	if ref.DescriptorIndex != c.descIndex {
		return c.zeroScore, nil
	}
	e := ref.EntityIndex
	key, had := c.indexToKey[e]
	if !had {
		return c.zeroScore, nil
	}
	c.keyToIndices[key] = sortedRemove(c.keyToIndices[key], e)
	delete(c.indexToKey, e)

	delta := c.zeroScore
	for tup := range c.entityMatches[e] {
		w := c.matches[tup]
		delete(c.matches, tup)
		for _, member := range tup {
			if member == e {
				continue
			}
			delete(c.entityMatches[member], tup)
		}
		var err error
		delta, err = delta.Add(w.Negate())
		if err != nil {
			return nil, err
		}
	}
	delete(c.entityMatches, e)
	return delta, nil
}

func (c *Quad) GetMatches(solution interface{}) ([]Match, error) {
	n := c.desc.EntityCount(solution, c.descIndex)
	groups := make(map[interface{}][]int)
	for i := 0; i < n; i++ {
		k := c.keyOf(c.entity(solution, i))
		groups[k] = append(groups[k], i)
	}
	var out []Match
	for _, members := range groups {
		for _, combo := range combinations(members, 4) {
			tup := [4]int{combo[0], combo[1], combo[2], combo[3]}
			ok, w := c.applyFilterWeight(solution, tup)
			if !ok {
				continue
			}
			refs := make([]domain.EntityRef, 4)
			for i, idx := range tup {
				refs[i] = domain.EntityRef{DescriptorIndex: c.descIndex, EntityIndex: idx}
			}
			out = append(out, Match{Entities: refs, Weight: w})
		}
	}
	sort.Slice(out, func(x, y int) bool {
		ex, ey := out[x].Entities, out[y].Entities
		for k := range ex {
			if ex[k].EntityIndex != ey[k].EntityIndex {
				return ex[k].EntityIndex < ey[k].EntityIndex
			}
		}
		return false
	})
	return out, nil
}
