package constraint

import (
	"github.com/lattice-forge/lattice-solver/domain"
	"github.com/lattice-forge/lattice-solver/score"
)

// pairKey composes a join key and a secondary key into one comparable
// map key (spec §4.C flattened-join "c_index: (join_key, c_key) ->
// list of (b_entity_idx, c_value)").
type pairKey struct{ Join, Sub interface{} }

// flatItem is one exploded element produced by Flatten(b), tagged with
// its position so retraction can address it precisely.
type flatItem struct {
	Pos   int
	Value interface{}
}

// FlattenedBi implements the bi-join-with-one-side-exploded pattern
// (spec §4.C "Flattened-join"): B is expanded via Flatten into a slice
// of C items, each carrying its own secondary key; a match is
// (aIdx, bIdx, cPos) where A's join key and lookup value agree with B's
// join key and the flattened item's secondary key.
type FlattenedBi struct {
	name      string
	ref       string
	hard      bool
	descA     int
	descB     int
	desc      *domain.SolutionDescriptor
	zeroScore score.Score
	keyOfA    func(a interface{}) interface{}
	keyOfB    func(b interface{}) interface{}
	flatten   func(b interface{}) []interface{}
	cKeyOf    func(c interface{}) interface{}
	aLookup   func(a interface{}) interface{}
	filter    func(a, b, c interface{}) bool
	weight    func(a, b, c interface{}) score.Score
	penalize  bool

	aIndex map[pairKey][]int      // (joinKey, aLookup value) -> aIdx list
	cIndex map[pairKey][]flatItemRef // (joinKey, cKey) -> (bIdx, cPos)

	aKeyOfIdx map[int]pairKey
	bKeyOfIdx map[int]interface{} // b's own join key, for cleanup

	matches       map[[3]int]score.Score // (aIdx, bIdx, cPos)
	aToMatches    map[int]map[[3]int]struct{}
	bToMatches    map[int]map[[3]int]struct{}
}

type flatItemRef struct {
	BIdx int
	Pos  int
}

// NewFlattenedBi constructs a flattened-join constraint. filter may be
// nil (always true).
func NewFlattenedBi(
	name, ref string, hard bool,
	desc *domain.SolutionDescriptor, descA, descB int,
	zero score.Score,
	keyOfA, keyOfB func(entity interface{}) interface{},
	flatten func(b interface{}) []interface{},
	cKeyOf func(c interface{}) interface{},
	aLookup func(a interface{}) interface{},
	filter func(a, b, c interface{}) bool,
	weight func(a, b, c interface{}) score.Score,
	penalize bool,
) *FlattenedBi {
	if filter == nil {
		filter = func(interface{}, interface{}, interface{}) bool { return true }
	}
	c := &FlattenedBi{
		name: name, ref: ref, hard: hard,
		desc: desc, descA: descA, descB: descB, zeroScore: zero,
		keyOfA: keyOfA, keyOfB: keyOfB, flatten: flatten, cKeyOf: cKeyOf, aLookup: aLookup,
		filter: filter, weight: weight, penalize: penalize,
	}
	c.Reset()
	return c
}

func (c *FlattenedBi) Name() string          { return c.name }
func (c *FlattenedBi) IsHard() bool          { return c.hard }
func (c *FlattenedBi) ConstraintRef() string { return c.ref }
func (c *FlattenedBi) Shape() score.Shape          { return c.zeroScore.Shape() }

func (c *FlattenedBi) Reset() {
	c.aIndex = make(map[pairKey][]int)
	c.cIndex = make(map[pairKey][]flatItemRef)
	c.aKeyOfIdx = make(map[int]pairKey)
	c.bKeyOfIdx = make(map[int]interface{})
	c.matches = make(map[[3]int]score.Score)
	c.aToMatches = make(map[int]map[[3]int]struct{})
	c.bToMatches = make(map[int]map[[3]int]struct{})
}

func (c *FlattenedBi) entityA(solution interface{}, i int) interface{} {
	return c.desc.GetEntity(solution, domain.EntityRef{DescriptorIndex: c.descA, EntityIndex: i})
}
func (c *FlattenedBi) entityB(solution interface{}, j int) interface{} {
	return c.desc.GetEntity(solution, domain.EntityRef{DescriptorIndex: c.descB, EntityIndex: j})
}

func (c *FlattenedBi) Evaluate(solution interface{}) (score.Score, error) {
	na := c.desc.EntityCount(solution, c.descA)
	nb := c.desc.EntityCount(solution, c.descB)
	total := c.zeroScore
	for i := 0; i < na; i++ {
		a := c.entityA(solution, i)
		for j := 0; j < nb; j++ {
			b := c.entityB(solution, j)
			if c.keyOfA(a) != c.keyOfB(b) {
				continue
			}
			for _, item := range c.flatten(b) {
				if c.cKeyOf(item) != c.aLookup(a) {
					continue
				}
				if !c.filter(a, b, item) {
					continue
				}
				w := signedWeight(c.penalize, c.weight(a, b, item))
				var err error
				total, err = total.Add(w)
				if err != nil {
					return nil, err
				}
			}
		}
	}
	return total, nil
}

func (c *FlattenedBi) MatchCount(solution interface{}) (int, error) {
	matches, err := c.GetMatches(solution)
	if err != nil {
		return 0, err
	}
	return len(matches), nil
}

func (c *FlattenedBi) Initialize(solution interface{}) (score.Score, error) {
	c.Reset()
	nb := c.desc.EntityCount(solution, c.descB)
	na := c.desc.EntityCount(solution, c.descA)
	total := c.zeroScore
	for j := 0; j < nb; j++ {
		c.indexB(solution, j)
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

// indexB adds the c_index entries contributed by b, without checking
// for new matches: Initialize relies on the insertA calls that follow to
// discover them, and insertB probes aIndex itself after calling it.
func (c *FlattenedBi) indexB(solution interface{}, j int) {
	b := c.entityB(solution, j)
	joinKey := c.keyOfB(b)
	c.bKeyOfIdx[j] = joinKey
	for pos, item := range c.flatten(b) {
		key := pairKey{Join: joinKey, Sub: c.cKeyOf(item)}
		c.cIndex[key] = append(c.cIndex[key], flatItemRef{BIdx: j, Pos: pos})
	}
}

func (c *FlattenedBi) addMatch(i, j, pos int, w score.Score) {
	tup := [3]int{i, j, pos}
	c.matches[tup] = w
	if c.aToMatches[i] == nil {
		c.aToMatches[i] = make(map[[3]int]struct{})
	}
	c.aToMatches[i][tup] = struct{}{}
	if c.bToMatches[j] == nil {
		c.bToMatches[j] = make(map[[3]int]struct{})
	}
	c.bToMatches[j][tup] = struct{}{}
}

func (c *FlattenedBi) insertA(solution interface{}, i int) (score.Score, error) {
	a := c.entityA(solution, i)
	key := pairKey{Join: c.keyOfA(a), Sub: c.aLookup(a)}
	c.aKeyOfIdx[i] = key
	c.aIndex[key] = sortedInsert(c.aIndex[key], i)

	delta := c.zeroScore
	for _, ref := range c.cIndex[key] {
		tup := [3]int{i, ref.BIdx, ref.Pos}
		if _, seen := c.matches[tup]; seen {
			continue
		}
		b := c.entityB(solution, ref.BIdx)
		item := c.flatten(b)[ref.Pos]
		if !c.filter(a, b, item) {
			continue
		}
		w := signedWeight(c.penalize, c.weight(a, b, item))
		c.addMatch(i, ref.BIdx, ref.Pos, w)
		var err error
		delta, err = delta.Add(w)
		if err != nil {
			return nil, err
		}
	}
	return delta, nil
}

func (c *FlattenedBi) insertB(solution interface{}, j int) (score.Score, error) {
	c.indexB(solution, j)
	b := c.entityB(solution, j)
	delta := c.zeroScore
	for pos, item := range c.flatten(b) {
		key := pairKey{Join: c.keyOfB(b), Sub: c.cKeyOf(item)}
		for _, i := range c.aIndex[key] {
			tup := [3]int{i, j, pos}
			if _, seen := c.matches[tup]; seen {
				continue
			}
			a := c.entityA(solution, i)
			if !c.filter(a, b, item) {
				continue
			}
			w := signedWeight(c.penalize, c.weight(a, b, item))
			c.addMatch(i, j, pos, w)
			var err error
			delta, err = delta.Add(w)
			if err != nil {
				return nil, err
			}
		}
	}
	return delta, nil
}

func (c *FlattenedBi) OnInsert(solution interface{}, ref domain.EntityRef) (score.Score, error) {
	switch ref.DescriptorIndex {
	case c.descA:
		return c.insertA(solution, ref.EntityIndex)
	case c.descB:
		return c.insertB(solution, ref.EntityIndex)
	default:
		return c.zeroScore, nil
	}
}

func (c *FlattenedBi) OnRetract(solution interface{}, ref domain.EntityRef) (score.Score, error) {
	switch ref.DescriptorIndex {
	case c.descA:
		return c.retractA(ref.EntityIndex)
	case c.descB:
		return c.retractB(ref.EntityIndex)
	default:
		return c.zeroScore, nil
	}
}

func (c *FlattenedBi) retractA(i int) (score.Score, error) {
	key, had := c.aKeyOfIdx[i]
	if !had {
		return c.zeroScore, nil
	}
	c.aIndex[key] = sortedRemove(c.aIndex[key], i)
	delete(c.aKeyOfIdx, i)

	delta := c.zeroScore
	for tup := range c.aToMatches[i] {
		w := c.matches[tup]
		delete(c.matches, tup)
		delete(c.bToMatches[tup[1]], tup)
		var err error
		delta, err = delta.Add(w.Negate())
		if err != nil {
			return nil, err
		}
	}
	delete(c.aToMatches, i)
	return delta, nil
}

func (c *FlattenedBi) retractB(j int) (score.Score, error) {
	joinKey, had := c.bKeyOfIdx[j]
	if !had {
		return c.zeroScore, nil
	}
	delete(c.bKeyOfIdx, j)

	delta := c.zeroScore
	for tup := range c.bToMatches[j] {
		w := c.matches[tup]
		delete(c.matches, tup)
		delete(c.aToMatches[tup[0]], tup)
		var err error
		delta, err = delta.Add(w.Negate())
		if err != nil {
			return nil, err
		}
	}
	delete(c.bToMatches, j)

	// Drop every c_index entry contributed by this b. We do not know
	// the flattened items any more without re-reading b (it may already
	// be gone from the solution), so scan every c_index key and filter
	// those under joinKey; this is the one O(distinct c_index keys) cost
	// flattened-join pays on retraction instead of keeping a per-b
	// reverse list.
	for key, refs := range c.cIndex {
		if key.Join != joinKey {
			continue
		}
		kept := refs[:0]
		for _, r := range refs {
			if r.BIdx != j {
				kept = append(kept, r)
			}
		}
		if len(kept) == 0 {
			delete(c.cIndex, key)
		} else {
			c.cIndex[key] = kept
		}
	}
	return delta, nil
}

func (c *FlattenedBi) GetMatches(solution interface{}) ([]Match, error) {
	na := c.desc.EntityCount(solution, c.descA)
	nb := c.desc.EntityCount(solution, c.descB)
	var out []Match
	for i := 0; i < na; i++ {
		a := c.entityA(solution, i)
		for j := 0; j < nb; j++ {
			b := c.entityB(solution, j)
			if c.keyOfA(a) != c.keyOfB(b) {
				continue
			}
			for _, item := range c.flatten(b) {
				if c.cKeyOf(item) != c.aLookup(a) {
					continue
				}
				if !c.filter(a, b, item) {
					continue
				}
				out = append(out, Match{
					Entities: []domain.EntityRef{
						{DescriptorIndex: c.descA, EntityIndex: i},
						{DescriptorIndex: c.descB, EntityIndex: j},
					},
					Weight: signedWeight(c.penalize, c.weight(a, b, item)),
				})
			}
		}
	}
	return out, nil
}
