package selector

import (
	"github.com/lattice-forge/lattice-solver/domain"
	"github.com/lattice-forge/lattice-solver/move"
	"github.com/lattice-forge/lattice-solver/solve"
)

// Union chains several MoveSelectors into one, offering every move from
// the first, then every move from the second, and so on.
type Union struct {
	Selectors []MoveSelector
}

// NewUnion constructs a Union over selectors, tried in order.
func NewUnion(selectors ...MoveSelector) *Union {
	return &Union{Selectors: selectors}
}

func (u *Union) Size(director solve.ScoreDirector) int64 {
	var total int64
	for _, s := range u.Selectors {
		total += s.Size(director)
	}
	return total
}

func (u *Union) IsNeverEnding() bool {
	for _, s := range u.Selectors {
		if s.IsNeverEnding() {
			return true
		}
	}
	return false
}

func (u *Union) Select(director solve.ScoreDirector, index int64) move.Move {
	for _, s := range u.Selectors {
		n := s.Size(director)
		if index < n {
			return s.Select(director, index)
		}
		index -= n
	}
	return nil
}

// CartesianProduct pairs every move from A with every move from B into a
// move.Composite(a, b).
type CartesianProduct struct {
	A, B MoveSelector
}

// NewCartesianProduct constructs a CartesianProduct of a and b.
func NewCartesianProduct(a, b MoveSelector) *CartesianProduct {
	return &CartesianProduct{A: a, B: b}
}

func (c *CartesianProduct) Size(director solve.ScoreDirector) int64 {
	return c.A.Size(director) * c.B.Size(director)
}

func (c *CartesianProduct) IsNeverEnding() bool {
	return c.A.IsNeverEnding() || c.B.IsNeverEnding()
}

func (c *CartesianProduct) Select(director solve.ScoreDirector, index int64) move.Move {
	bSize := c.B.Size(director)
	if bSize == 0 {
		return nil
	}
	a := c.A.Select(director, index/bSize)
	b := c.B.Select(director, index%bSize)
	if a == nil || b == nil {
		return nil
	}
	return move.NewComposite(a, b)
}

// DistanceFunc reports how far apart two values are, for Nearby
// pruning; smaller is closer.
type DistanceFunc func(a, b interface{}) float64

// NearbyValueSelector restricts a base ValueSelector to the K values
// closest to the entity's current value, by Distance. K == 0 or
// K >= the base selector's size degenerates to the base selector
// unchanged.
type NearbyValueSelector struct {
	Base     ValueSelector
	Current  func(director solve.ScoreDirector, ref domain.EntityRef) interface{}
	Distance DistanceFunc
	K        int
}

// NewNearbyValueSelector constructs a Nearby decorator around base.
func NewNearbyValueSelector(base ValueSelector, current func(director solve.ScoreDirector, ref domain.EntityRef) interface{}, distance DistanceFunc, k int) *NearbyValueSelector {
	return &NearbyValueSelector{Base: base, Current: current, Distance: distance, K: k}
}

func (n *NearbyValueSelector) nearestIndices(director solve.ScoreDirector, ref domain.EntityRef) []int64 {
	size := n.Base.Size(director, ref)
	k := int64(n.K)
	if k <= 0 || k >= size {
		out := make([]int64, size)
		for i := range out {
			out[i] = int64(i)
		}
		return out
	}

	current := n.Current(director, ref)
	type scored struct {
		idx  int64
		dist float64
	}
	all := make([]scored, size)
	for i := int64(0); i < size; i++ {
		v := n.Base.Select(director, ref, i)
		all[i] = scored{idx: i, dist: n.Distance(current, v)}
	}
	// Partial selection sort for the K smallest; K is expected small.
	for i := int64(0); i < k; i++ {
		best := i
		for j := i + 1; j < size; j++ {
			if all[j].dist < all[best].dist {
				best = j
			}
		}
		all[i], all[best] = all[best], all[i]
	}
	out := make([]int64, k)
	for i := int64(0); i < k; i++ {
		out[i] = all[i].idx
	}
	return out
}

func (n *NearbyValueSelector) Size(director solve.ScoreDirector, ref domain.EntityRef) int64 {
	k := n.K
	size := n.Base.Size(director, ref)
	if k <= 0 || int64(k) >= size {
		return size
	}
	return int64(k)
}

func (n *NearbyValueSelector) IsNeverEnding() bool { return n.Base.IsNeverEnding() }

func (n *NearbyValueSelector) Select(director solve.ScoreDirector, ref domain.EntityRef, index int64) interface{} {
	indices := n.nearestIndices(director, ref)
	return n.Base.Select(director, ref, indices[index])
}
