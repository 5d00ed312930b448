package constraint

import (
	"github.com/lattice-forge/lattice-solver/domain"
	"github.com/lattice-forge/lattice-solver/score"
)

// ExistsMode selects between if-exists and if-not-exists semantics for
// an Exists constraint.
type ExistsMode int

const (
	// ModeExists contributes weight(a) for every A-entity that has at
	// least one matching B-entity.
	ModeExists ExistsMode = iota
	// ModeNotExists contributes weight(a) for every A-entity that has
	// zero matching B-entities.
	ModeNotExists
)

func (m ExistsMode) holds(count int) bool {
	if m == ModeExists {
		return count > 0
	}
	return count == 0
}

// Exists implements if-exists / if-not-exists (spec §4.C): like CrossBi,
// except the B-collection is only probed for key membership (optionally
// refined by Filter), and the score weight is a function of the A-entity
// alone.
type Exists struct {
	name       string
	ref        string
	hard       bool
	descA      int
	descB      int
	desc       *domain.SolutionDescriptor
	zeroScore  score.Score
	mode       ExistsMode
	keyOfA     func(a interface{}) interface{}
	keyOfB     func(b interface{}) interface{}
	filter     func(a, b interface{}) bool
	weight     func(a interface{}) score.Score
	penalize   bool

	kaIndex      map[interface{}][]int
	kbIndex      map[interface{}][]int
	keyOfAIdx    map[int]interface{}
	keyOfBIdx    map[int]interface{}
	matchSet     map[int]map[int]struct{} // aIdx -> set of bIdx currently satisfying filter
	currentHolds map[int]bool             // aIdx -> whether mode currently holds (i.e. contributes)
}

// NewExists constructs an if-exists/if-not-exists constraint.
func NewExists(
	name, ref string, hard bool,
	desc *domain.SolutionDescriptor, descA, descB int,
	zero score.Score,
	mode ExistsMode,
	keyOfA, keyOfB func(entity interface{}) interface{},
	filter func(a, b interface{}) bool,
	weight func(a interface{}) score.Score,
	penalize bool,
) *Exists {
	if filter == nil {
		filter = func(interface{}, interface{}) bool { return true }
	}
	c := &Exists{
		name: name, ref: ref, hard: hard,
		desc: desc, descA: descA, descB: descB, zeroScore: zero,
		mode: mode, keyOfA: keyOfA, keyOfB: keyOfB, filter: filter, weight: weight, penalize: penalize,
	}
	c.Reset()
	return c
}

func (c *Exists) Name() string          { return c.name }
func (c *Exists) IsHard() bool          { return c.hard }
func (c *Exists) ConstraintRef() string { return c.ref }
func (c *Exists) Shape() score.Shape          { return c.zeroScore.Shape() }

func (c *Exists) Reset() {
	c.kaIndex = make(map[interface{}][]int)
	c.kbIndex = make(map[interface{}][]int)
	c.keyOfAIdx = make(map[int]interface{})
	c.keyOfBIdx = make(map[int]interface{})
	c.matchSet = make(map[int]map[int]struct{})
	c.currentHolds = make(map[int]bool)
}

func (c *Exists) entityA(solution interface{}, i int) interface{} {
	return c.desc.GetEntity(solution, domain.EntityRef{DescriptorIndex: c.descA, EntityIndex: i})
}
func (c *Exists) entityB(solution interface{}, j int) interface{} {
	return c.desc.GetEntity(solution, domain.EntityRef{DescriptorIndex: c.descB, EntityIndex: j})
}

func (c *Exists) Evaluate(solution interface{}) (score.Score, error) {
	na := c.desc.EntityCount(solution, c.descA)
	nb := c.desc.EntityCount(solution, c.descB)
	bGroups := make(map[interface{}][]int)
	for j := 0; j < nb; j++ {
		bGroups[c.keyOfB(c.entityB(solution, j))] = append(bGroups[c.keyOfB(c.entityB(solution, j))], j)
	}
	total := c.zeroScore
	for i := 0; i < na; i++ {
		a := c.entityA(solution, i)
		count := 0
		for _, j := range bGroups[c.keyOfA(a)] {
			if c.filter(a, c.entityB(solution, j)) {
				count++
			}
		}
		if c.mode.holds(count) {
			var err error
			total, err = total.Add(signedWeight(c.penalize, c.weight(a)))
			if err != nil {
				return nil, err
			}
		}
	}
	return total, nil
}

func (c *Exists) MatchCount(solution interface{}) (int, error) {
	matches, err := c.GetMatches(solution)
	if err != nil {
		return 0, err
	}
	return len(matches), nil
}

func (c *Exists) Initialize(solution interface{}) (score.Score, error) {
	c.Reset()
	nb := c.desc.EntityCount(solution, c.descB)
	na := c.desc.EntityCount(solution, c.descA)
	total := c.zeroScore
	for j := 0; j < nb; j++ {
		b := c.entityB(solution, j)
		key := c.keyOfB(b)
		c.keyOfBIdx[j] = key
		c.kbIndex[key] = sortedInsert(c.kbIndex[key], j)
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

func (c *Exists) insertA(solution interface{}, i int) (score.Score, error) {
	a := c.entityA(solution, i)
	key := c.keyOfA(a)
	c.keyOfAIdx[i] = key
	c.kaIndex[key] = sortedInsert(c.kaIndex[key], i)

	set := make(map[int]struct{})
	for _, j := range c.kbIndex[key] {
		if c.filter(a, c.entityB(solution, j)) {
			set[j] = struct{}{}
		}
	}
	c.matchSet[i] = set
	holds := c.mode.holds(len(set))
	c.currentHolds[i] = holds
	if holds {
		return signedWeight(c.penalize, c.weight(a)), nil
	}
	return c.zeroScore, nil
}

func (c *Exists) OnInsert(solution interface{}, ref domain.EntityRef) (score.Score, error) {
	switch ref.DescriptorIndex {
	case c.descA:
		return c.insertA(solution, ref.EntityIndex)
	case c.descB:
		return c.insertB(solution, ref.EntityIndex)
	default:
		return c.zeroScore, nil
	}
}

func (c *Exists) insertB(solution interface{}, j int) (score.Score, error) {
	b := c.entityB(solution, j)
	key := c.keyOfB(b)
	c.keyOfBIdx[j] = key
	c.kbIndex[key] = sortedInsert(c.kbIndex[key], j)

	delta := c.zeroScore
	for _, i := range c.kaIndex[key] {
		a := c.entityA(solution, i)
		if !c.filter(a, b) {
			continue
		}
		oldHolds := c.currentHolds[i]
		c.matchSet[i][j] = struct{}{}
		newHolds := c.mode.holds(len(c.matchSet[i]))
		c.currentHolds[i] = newHolds
		if oldHolds == newHolds {
			continue
		}
		w := signedWeight(c.penalize, c.weight(a))
		var err error
		if newHolds {
			delta, err = delta.Add(w)
		} else {
			delta, err = delta.Add(w.Negate())
		}
		if err != nil {
			return nil, err
		}
	}
	return delta, nil
}

func (c *Exists) OnRetract(solution interface{}, ref domain.EntityRef) (score.Score, error) {
	switch ref.DescriptorIndex {
	case c.descA:
		return c.retractA(solution, ref.EntityIndex)
	case c.descB:
		return c.retractB(solution, ref.EntityIndex)
	default:
		return c.zeroScore, nil
	}
}

func (c *Exists) retractA(solution interface{}, i int) (score.Score, error) {
	key, had := c.keyOfAIdx[i]
	if !had {
		return c.zeroScore, nil
	}
	a := c.entityA(solution, i)
	c.kaIndex[key] = sortedRemove(c.kaIndex[key], i)
	delete(c.keyOfAIdx, i)
	holds := c.currentHolds[i]
	delete(c.matchSet, i)
	delete(c.currentHolds, i)
	if holds {
		return signedWeight(c.penalize, c.weight(a)).Negate(), nil
	}
	return c.zeroScore, nil
}

func (c *Exists) retractB(solution interface{}, j int) (score.Score, error) {
	key, had := c.keyOfBIdx[j]
	if !had {
		return c.zeroScore, nil
	}
	c.kbIndex[key] = sortedRemove(c.kbIndex[key], j)
	delete(c.keyOfBIdx, j)

	delta := c.zeroScore
	for _, i := range c.kaIndex[key] {
		if _, ok := c.matchSet[i][j]; !ok {
			continue
		}
		a := c.entityA(solution, i)
		oldHolds := c.currentHolds[i]
		delete(c.matchSet[i], j)
		newHolds := c.mode.holds(len(c.matchSet[i]))
		c.currentHolds[i] = newHolds
		if oldHolds == newHolds {
			continue
		}
		w := signedWeight(c.penalize, c.weight(a))
		var err error
		if newHolds {
			delta, err = delta.Add(w)
		} else {
			delta, err = delta.Add(w.Negate())
		}
		if err != nil {
			return nil, err
		}
	}
	return delta, nil
}

func (c *Exists) GetMatches(solution interface{}) ([]Match, error) {
	na := c.desc.EntityCount(solution, c.descA)
	nb := c.desc.EntityCount(solution, c.descB)
	bGroups := make(map[interface{}][]int)
	for j := 0; j < nb; j++ {
		bGroups[c.keyOfB(c.entityB(solution, j))] = append(bGroups[c.keyOfB(c.entityB(solution, j))], j)
	}
	var out []Match
	for i := 0; i < na; i++ {
		a := c.entityA(solution, i)
		count := 0
		for _, j := range bGroups[c.keyOfA(a)] {
			if c.filter(a, c.entityB(solution, j)) {
				count++
			}
		}
		if c.mode.holds(count) {
			out = append(out, Match{
				Entities: []domain.EntityRef{{DescriptorIndex: c.descA, EntityIndex: i}},
				Weight:   signedWeight(c.penalize, c.weight(a)),
			})
		}
	}
	return out, nil
}
