package constraint

import (
	"sort"

	"github.com/lattice-forge/lattice-solver/domain"
	"github.com/lattice-forge/lattice-solver/score"
)

// BiSelf is the arity-2 self-join: entities sharing the same join key
// value are candidates, and a match is the strictly-ordered pair
// (i0 < i1) that also satisfies Filter. This is the template tri.go,
// quad.go and penta.go generalize to k=3,4,5 (spec §9: "generating the
// arity-3/4/5 self-join implementations from the arity-2 template by
// code generation or macros keeps the arithmetic identical").
type BiSelf struct {
	name      string
	ref       string
	hard      bool
	descIndex int
	desc      *domain.SolutionDescriptor
	zeroScore score.Score
	keyOf     func(entity interface{}) interface{}
	filter    func(a, b interface{}) bool
	weight    func(a, b interface{}) score.Score
	penalize  bool

	keyToIndices map[interface{}][]int      // join key -> sorted entity indices carrying it
	indexToKey   map[int]interface{}        // entity index -> its current join key
	matches      map[[2]int]score.Score     // tuple -> signed weight
	entityMatches map[int]map[[2]int]struct{} // entity index -> set of tuples it participates in
}

// NewBiSelf constructs an arity-2 self-join constraint. keyOf extracts
// the join key per entity; filter and weight receive the two entities in
// ascending-index order.
func NewBiSelf(
	name, ref string, hard bool,
	desc *domain.SolutionDescriptor, descIndex int,
	zero score.Score,
	keyOf func(entity interface{}) interface{},
	filter func(a, b interface{}) bool,
	weight func(a, b interface{}) score.Score,
	penalize bool,
) *BiSelf {
	if filter == nil {
		filter = func(interface{}, interface{}) bool { return true }
	}
	c := &BiSelf{
		name: name, ref: ref, hard: hard,
		desc: desc, descIndex: descIndex, zeroScore: zero,
		keyOf: keyOf, filter: filter, weight: weight, penalize: penalize,
	}
	c.Reset()
	return c
}

func (c *BiSelf) Name() string          { return c.name }
func (c *BiSelf) IsHard() bool          { return c.hard }
func (c *BiSelf) ConstraintRef() string { return c.ref }
func (c *BiSelf) Shape() score.Shape          { return c.zeroScore.Shape() }

func (c *BiSelf) Reset() {
	c.keyToIndices = make(map[interface{}][]int)
	c.indexToKey = make(map[int]interface{})
	c.matches = make(map[[2]int]score.Score)
	c.entityMatches = make(map[int]map[[2]int]struct{})
}

func (c *BiSelf) entity(solution interface{}, i int) interface{} {
	return c.desc.GetEntity(solution, domain.EntityRef{DescriptorIndex: c.descIndex, EntityIndex: i})
}

func (c *BiSelf) Evaluate(solution interface{}) (score.Score, error) {
	n := c.desc.EntityCount(solution, c.descIndex)
	groups := make(map[interface{}][]int)
	for i := 0; i < n; i++ {
		k := c.keyOf(c.entity(solution, i))
		groups[k] = append(groups[k], i)
	}
	total := c.zeroScore
	for _, members := range groups {
		for _, tup := range combinations(members, 2) {
			a, b := c.entity(solution, tup[0]), c.entity(solution, tup[1])
			if !c.filter(a, b) {
				continue
			}
			w := signedWeight(c.penalize, c.weight(a, b))
			var err error
			total, err = total.Add(w)
			if err != nil {
				return nil, err
			}
		}
	}
	return total, nil
}

func (c *BiSelf) MatchCount(solution interface{}) (int, error) {
	matches, err := c.GetMatches(solution)
	if err != nil {
		return 0, err
	}
	return len(matches), nil
}

func (c *BiSelf) Initialize(solution interface{}) (score.Score, error) {
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

// insertEntity performs the arity-2 insert algorithm of spec §4.C: index
// the entity under its key, enumerate candidate pairs against its
// existing peers, and accumulate the delta from newly-firing matches.
func (c *BiSelf) insertEntity(solution interface{}, e int) (score.Score, error) {
	entity := c.entity(solution, e)
	key := c.keyOf(entity)
	c.indexToKey[e] = key
	c.keyToIndices[key] = sortedInsert(c.keyToIndices[key], e)

	delta := c.zeroScore
	for _, peer := range c.keyToIndices[key] {
		if peer == e {
			continue
		}
		lo, hi := peer, e
		if lo > hi {
			lo, hi = hi, lo
		}
		tup := [2]int{lo, hi}
		if _, seen := c.matches[tup]; seen {
			continue
		}
		a, b := c.entity(solution, lo), c.entity(solution, hi)
		if !c.filter(a, b) {
			continue
		}
		w := signedWeight(c.penalize, c.weight(a, b))
		c.matches[tup] = w
		c.addEntityMatch(lo, tup)
		c.addEntityMatch(hi, tup)
		var err error
		delta, err = delta.Add(w)
		if err != nil {
			return nil, err
		}
	}
	return delta, nil
}

func (c *BiSelf) addEntityMatch(entityIndex int, tup [2]int) {
	set, ok := c.entityMatches[entityIndex]
	if !ok {
		set = make(map[[2]int]struct{})
		c.entityMatches[entityIndex] = set
	}
	set[tup] = struct{}{}
}

func (c *BiSelf) OnInsert(solution interface{}, ref domain.EntityRef) (score.Score, error) {
	if ref.DescriptorIndex != c.descIndex {
		return c.zeroScore, nil
	}
	return c.insertEntity(solution, ref.EntityIndex)
}

func (c *BiSelf) OnRetract(solution interface{}, ref domain.EntityRef) (score.Score, error) {
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

func (c *BiSelf) GetMatches(solution interface{}) ([]Match, error) {
	n := c.desc.EntityCount(solution, c.descIndex)
	groups := make(map[interface{}][]int)
	for i := 0; i < n; i++ {
		k := c.keyOf(c.entity(solution, i))
		groups[k] = append(groups[k], i)
	}
	var out []Match
	for _, members := range groups {
		for _, tup := range combinations(members, 2) {
			a, b := c.entity(solution, tup[0]), c.entity(solution, tup[1])
			if !c.filter(a, b) {
				continue
			}
			out = append(out, Match{
				Entities: []domain.EntityRef{
					{DescriptorIndex: c.descIndex, EntityIndex: tup[0]},
					{DescriptorIndex: c.descIndex, EntityIndex: tup[1]},
				},
				Weight: signedWeight(c.penalize, c.weight(a, b)),
			})
		}
	}
	sort.Slice(out, func(x, y int) bool {
		ex, ey := out[x].Entities, out[y].Entities
		if ex[0].EntityIndex != ey[0].EntityIndex {
			return ex[0].EntityIndex < ey[0].EntityIndex
		}
		return ex[1].EntityIndex < ey[1].EntityIndex
	})
	return out, nil
}
