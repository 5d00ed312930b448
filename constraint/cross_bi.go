package constraint

import (
	"github.com/lattice-forge/lattice-solver/domain"
	"github.com/lattice-forge/lattice-solver/score"
)

// CrossBi joins two distinct entity collections A and B on a shared key:
// a match is a pair (aIdx, bIdx) whose join keys agree and which
// satisfies Filter (spec §4.C "Cross-entity bi-join").
type CrossBi struct {
	name       string
	ref        string
	hard       bool
	descA      int
	descB      int
	desc       *domain.SolutionDescriptor
	zeroScore  score.Score
	keyOfA     func(a interface{}) interface{}
	keyOfB     func(b interface{}) interface{}
	filter     func(a, b interface{}) bool
	weight     func(a, b interface{}) score.Score
	penalize   bool

	kaIndex map[interface{}][]int // key -> sorted A indices
	kbIndex map[interface{}][]int // key -> sorted B indices
	keyOfAIdx map[int]interface{}
	keyOfBIdx map[int]interface{}
	matches       map[[2]int]score.Score // [aIdx, bIdx] -> signed weight
	aToMatches    map[int]map[[2]int]struct{}
	bToMatches    map[int]map[[2]int]struct{}
}

// NewCrossBi constructs a cross-entity bi-join constraint between
// collection descA and collection descB.
func NewCrossBi(
	name, ref string, hard bool,
	desc *domain.SolutionDescriptor, descA, descB int,
	zero score.Score,
	keyOfA, keyOfB func(entity interface{}) interface{},
	filter func(a, b interface{}) bool,
	weight func(a, b interface{}) score.Score,
	penalize bool,
) *CrossBi {
	if filter == nil {
		filter = func(interface{}, interface{}) bool { return true }
	}
	c := &CrossBi{
		name: name, ref: ref, hard: hard,
		desc: desc, descA: descA, descB: descB, zeroScore: zero,
		keyOfA: keyOfA, keyOfB: keyOfB, filter: filter, weight: weight, penalize: penalize,
	}
	c.Reset()
	return c
}

func (c *CrossBi) Name() string          { return c.name }
func (c *CrossBi) IsHard() bool          { return c.hard }
func (c *CrossBi) ConstraintRef() string { return c.ref }
func (c *CrossBi) Shape() score.Shape          { return c.zeroScore.Shape() }

func (c *CrossBi) Reset() {
	c.kaIndex = make(map[interface{}][]int)
	c.kbIndex = make(map[interface{}][]int)
	c.keyOfAIdx = make(map[int]interface{})
	c.keyOfBIdx = make(map[int]interface{})
	c.matches = make(map[[2]int]score.Score)
	c.aToMatches = make(map[int]map[[2]int]struct{})
	c.bToMatches = make(map[int]map[[2]int]struct{})
}

func (c *CrossBi) entityA(solution interface{}, i int) interface{} {
	return c.desc.GetEntity(solution, domain.EntityRef{DescriptorIndex: c.descA, EntityIndex: i})
}
func (c *CrossBi) entityB(solution interface{}, i int) interface{} {
	return c.desc.GetEntity(solution, domain.EntityRef{DescriptorIndex: c.descB, EntityIndex: i})
}

func (c *CrossBi) Evaluate(solution interface{}) (score.Score, error) {
	na := c.desc.EntityCount(solution, c.descA)
	nb := c.desc.EntityCount(solution, c.descB)
	bGroups := make(map[interface{}][]int)
	for j := 0; j < nb; j++ {
		k := c.keyOfB(c.entityB(solution, j))
		bGroups[k] = append(bGroups[k], j)
	}
	total := c.zeroScore
	for i := 0; i < na; i++ {
		a := c.entityA(solution, i)
		k := c.keyOfA(a)
		for _, j := range bGroups[k] {
			b := c.entityB(solution, j)
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

func (c *CrossBi) MatchCount(solution interface{}) (int, error) {
	matches, err := c.GetMatches(solution)
	if err != nil {
		return 0, err
	}
	return len(matches), nil
}

func (c *CrossBi) Initialize(solution interface{}) (score.Score, error) {
	c.Reset()
	na := c.desc.EntityCount(solution, c.descA)
	nb := c.desc.EntityCount(solution, c.descB)
	total := c.zeroScore
	for j := 0; j < nb; j++ {
		delta, err := c.insertB(solution, j)
		if err != nil {
			return nil, err
		}
		total, err = total.Add(delta)
		if err != nil {
			return nil, err
		}
	}
	for i := 0; i < na; i++ {
		delta, err := c.insertA(solution, i)
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

func (c *CrossBi) addMatch(i, j int, w score.Score) {
	tup := [2]int{i, j}
	c.matches[tup] = w
	if c.aToMatches[i] == nil {
		c.aToMatches[i] = make(map[[2]int]struct{})
	}
	c.aToMatches[i][tup] = struct{}{}
	if c.bToMatches[j] == nil {
		c.bToMatches[j] = make(map[[2]int]struct{})
	}
	c.bToMatches[j][tup] = struct{}{}
}

func (c *CrossBi) insertA(solution interface{}, i int) (score.Score, error) {
	a := c.entityA(solution, i)
	key := c.keyOfA(a)
	c.keyOfAIdx[i] = key
	c.kaIndex[key] = sortedInsert(c.kaIndex[key], i)

	delta := c.zeroScore
	for _, j := range c.kbIndex[key] {
		tup := [2]int{i, j}
		if _, seen := c.matches[tup]; seen {
			continue
		}
		b := c.entityB(solution, j)
		if !c.filter(a, b) {
			continue
		}
		w := signedWeight(c.penalize, c.weight(a, b))
		c.addMatch(i, j, w)
		var err error
		delta, err = delta.Add(w)
		if err != nil {
			return nil, err
		}
	}
	return delta, nil
}

func (c *CrossBi) insertB(solution interface{}, j int) (score.Score, error) {
	b := c.entityB(solution, j)
	key := c.keyOfB(b)
	c.keyOfBIdx[j] = key
	c.kbIndex[key] = sortedInsert(c.kbIndex[key], j)

	delta := c.zeroScore
	for _, i := range c.kaIndex[key] {
		tup := [2]int{i, j}
		if _, seen := c.matches[tup]; seen {
			continue
		}
		a := c.entityA(solution, i)
		if !c.filter(a, b) {
			continue
		}
		w := signedWeight(c.penalize, c.weight(a, b))
		c.addMatch(i, j, w)
		var err error
		delta, err = delta.Add(w)
		if err != nil {
			return nil, err
		}
	}
	return delta, nil
}

func (c *CrossBi) OnInsert(solution interface{}, ref domain.EntityRef) (score.Score, error) {
	switch ref.DescriptorIndex {
	case c.descA:
		return c.insertA(solution, ref.EntityIndex)
	case c.descB:
		return c.insertB(solution, ref.EntityIndex)
	default:
		return c.zeroScore, nil
	}
}

func (c *CrossBi) retractMatches(e int, side map[int]map[[2]int]struct{}, other map[int]map[[2]int]struct{}, otherOf func(tup [2]int) int) (score.Score, error) {
	delta := c.zeroScore
	for tup := range side[e] {
		w := c.matches[tup]
		delete(c.matches, tup)
		o := otherOf(tup)
		delete(other[o], tup)
		var err error
		delta, err = delta.Add(w.Negate())
		if err != nil {
			return nil, err
		}
	}
	delete(side, e)
	return delta, nil
}

func (c *CrossBi) OnRetract(solution interface{}, ref domain.EntityRef) (score.Score, error) {
	switch ref.DescriptorIndex {
	case c.descA:
		i := ref.EntityIndex
		key, had := c.keyOfAIdx[i]
		if !had {
			return c.zeroScore, nil
		}
		c.kaIndex[key] = sortedRemove(c.kaIndex[key], i)
		delete(c.keyOfAIdx, i)
		return c.retractMatches(i, c.aToMatches, c.bToMatches, func(tup [2]int) int { return tup[1] })
	case c.descB:
		j := ref.EntityIndex
		key, had := c.keyOfBIdx[j]
		if !had {
			return c.zeroScore, nil
		}
		c.kbIndex[key] = sortedRemove(c.kbIndex[key], j)
		delete(c.keyOfBIdx, j)
		return c.retractMatches(j, c.bToMatches, c.aToMatches, func(tup [2]int) int { return tup[0] })
	default:
		return c.zeroScore, nil
	}
}

func (c *CrossBi) GetMatches(solution interface{}) ([]Match, error) {
	na := c.desc.EntityCount(solution, c.descA)
	nb := c.desc.EntityCount(solution, c.descB)
	bGroups := make(map[interface{}][]int)
	for j := 0; j < nb; j++ {
		k := c.keyOfB(c.entityB(solution, j))
		bGroups[k] = append(bGroups[k], j)
	}
	var out []Match
	for i := 0; i < na; i++ {
		a := c.entityA(solution, i)
		k := c.keyOfA(a)
		for _, j := range bGroups[k] {
			b := c.entityB(solution, j)
			if !c.filter(a, b) {
				continue
			}
			out = append(out, Match{
				Entities: []domain.EntityRef{
					{DescriptorIndex: c.descA, EntityIndex: i},
					{DescriptorIndex: c.descB, EntityIndex: j},
				},
				Weight: signedWeight(c.penalize, c.weight(a, b)),
			})
		}
	}
	return out, nil
}
