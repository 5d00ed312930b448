package constraint

import (
	"sort"

	"github.com/lattice-forge/lattice-solver/domain"
	"github.com/lattice-forge/lattice-solver/score"
)

// Tri is the arity-3 self-join, generated from the BiSelf template
// (spec §9): a match is the strictly-ordered triple (i0<i1<i2) sharing a
// join key and satisfying Filter.
type Tri struct {
	name      string
	ref       string
	hard      bool
	descIndex int
	desc      *domain.SolutionDescriptor
	zeroScore score.Score
	keyOf     func(entity interface{}) interface{}
	filter    func(a, b, c interface{}) bool
	weight    func(a, b, c interface{}) score.Score
	penalize  bool

	keyToIndices  map[interface{}][]int
	indexToKey    map[int]interface{}
	matches       map[[3]int]score.Score
	entityMatches map[int]map[[3]int]struct{}
}

// NewTri constructs an arity-3 self-join constraint.
func NewTri(
	name, ref string, hard bool,
	desc *domain.SolutionDescriptor, descIndex int,
	zero score.Score,
	keyOf func(entity interface{}) interface{},
	filter func(a, b, c interface{}) bool,
	weight func(a, b, c interface{}) score.Score,
	penalize bool,
) *Tri {
	if filter == nil {
		filter = func(interface{}, interface{}, interface{}) bool { return true }
	}
	t := &Tri{
		name: name, ref: ref, hard: hard,
		desc: desc, descIndex: descIndex, zeroScore: zero,
		keyOf: keyOf, filter: filter, weight: weight, penalize: penalize,
	}
	t.Reset()
	return t
}

func (c *Tri) Name() string          { return c.name }
func (c *Tri) IsHard() bool          { return c.hard }
func (c *Tri) ConstraintRef() string { return c.ref }
func (c *Tri) Shape() score.Shape          { return c.zeroScore.Shape() }

func (c *Tri) Reset() {
	c.keyToIndices = make(map[interface{}][]int)
	c.indexToKey = make(map[int]interface{})
	c.matches = make(map[[3]int]score.Score)
	c.entityMatches = make(map[int]map[[3]int]struct{})
}

func (c *Tri) entity(solution interface{}, i int) interface{} {
	return c.desc.GetEntity(solution, domain.EntityRef{DescriptorIndex: c.descIndex, EntityIndex: i})
}

func (c *Tri) applyFilterWeight(solution interface{}, tup [3]int) (bool, score.Score) {
	a, b, d := c.entity(solution, tup[0]), c.entity(solution, tup[1]), c.entity(solution, tup[2])
	if !c.filter(a, b, d) {
		return false, nil
	}
	return true, signedWeight(c.penalize, c.weight(a, b, d))
}

func (c *Tri) Evaluate(solution interface{}) (score.Score, error) {
	n := c.desc.EntityCount(solution, c.descIndex)
	groups := make(map[interface{}][]int)
	for i := 0; i < n; i++ {
		k := c.keyOf(c.entity(solution, i))
		groups[k] = append(groups[k], i)
	}
	total := c.zeroScore
	for _, members := range groups {
		for _, combo := range combinations(members, 3) {
			tup := [3]int{combo[0], combo[1], combo[2]}
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

func (c *Tri) MatchCount(solution interface{}) (int, error) {
	matches, err := c.GetMatches(solution)
	if err != nil {
		return 0, err
	}
	return len(matches), nil
}

func (c *Tri) Initialize(solution interface{}) (score.Score, error) {
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

func (c *Tri) insertEntity(solution interface{}, e int) (score.Score, error) {
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
	for _, sub := range combinations(peers, 2) {
		tup := sortedTriple(sub[0], sub[1], e)
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

func (c *Tri) addEntityMatch(entityIndex int, tup [3]int) {
	set, ok := c.entityMatches[entityIndex]
	if !ok {
		set = make(map[[3]int]struct{})
		c.entityMatches[entityIndex] = set
	}
	set[tup] = struct{}{}
}

func (c *Tri) OnInsert(solution interface{}, ref domain.EntityRef) (score.Score, error) {
	if ref.DescriptorIndex != c.descIndex {
		return c.zeroScore, nil
	}
	return c.insertEntity(solution, ref.EntityIndex)
}

func (c *Tri) OnRetract(solution interface{}, ref domain.EntityRef) (score.Score, error) {
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

func (c *Tri) GetMatches(solution interface{}) ([]Match, error) {
	n := c.desc.EntityCount(solution, c.descIndex)
	groups := make(map[interface{}][]int)
	for i := 0; i < n; i++ {
		k := c.keyOf(c.entity(solution, i))
		groups[k] = append(groups[k], i)
	}
	var out []Match
	for _, members := range groups {
		for _, combo := range combinations(members, 3) {
			tup := [3]int{combo[0], combo[1], combo[2]}
			ok, w := c.applyFilterWeight(solution, tup)
			if !ok {
				continue
			}
			out = append(out, Match{
				Entities: []domain.EntityRef{
					{DescriptorIndex: c.descIndex, EntityIndex: tup[0]},
					{DescriptorIndex: c.descIndex, EntityIndex: tup[1]},
					{DescriptorIndex: c.descIndex, EntityIndex: tup[2]},
				},
				Weight: w,
			})
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

// sortedTriple returns (a,b,c) arranged in ascending order.
func sortedTriple(a, b, c int) [3]int {
	xs := []int{a, b, c}
	for i := 1; i < len(xs); i++ {
		for j := i; j > 0 && xs[j-1] > xs[j]; j-- {
			xs[j-1], xs[j] = xs[j], xs[j-1]
		}
	}
	return [3]int{xs[0], xs[1], xs[2]}
}
